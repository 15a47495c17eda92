// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

// Package api defines the JSON request and response types of the
// frontend surface.
package api

import "github.com/Joakimpedev/protocol-sub000/internal/protocoldb"

// RoomMember is a member of a referral room.
type RoomMember struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// Room is a referral room as exposed to the client.
type Room struct {
	Code        string       `json:"code"`
	OwnerID     string       `json:"ownerId"`
	Members     []RoomMember `json:"members"`
	MemberCount int          `json:"memberCount"`
	IsUnlocked  bool         `json:"isUnlocked"`
}

// RoomFromDB converts a stored room to its API shape.
func RoomFromDB(rm *protocoldb.Room) *Room {
	if rm == nil {
		return nil
	}
	members := make([]RoomMember, len(rm.Members))
	for i, m := range rm.Members {
		members[i] = RoomMember{UserID: m.UserID, Name: m.Name}
	}
	return &Room{
		Code:        rm.Code,
		OwnerID:     rm.OwnerID,
		Members:     members,
		MemberCount: rm.MemberCount,
		IsUnlocked:  rm.IsUnlocked,
	}
}

type GetUserRoomRequest struct{}

type GetUserRoomResponse struct {
	Room *Room `json:"room"`
}

type CreateRoomRequest struct {
	DisplayName string `json:"displayName"`
}

type CreateRoomResponse struct {
	Room *Room `json:"room"`
}

type JoinRoomRequest struct {
	Code        string `json:"code"`
	DisplayName string `json:"displayName"`
}

// JoinRoomResponse reports the join result inline; the client renders
// Error next to the code input rather than treating it as a failure.
type JoinRoomResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Room    *Room  `json:"room,omitempty"`
}

type FillRoomRequest struct {
	DisplayName string `json:"displayName"`
}

type FillRoomResponse struct {
	Room *Room `json:"room"`
}

type GenerateCodeRequest struct{}

type GenerateCodeResponse struct {
	Code string `json:"code"`
}

type RedeemCodeRequest struct {
	Code string `json:"code"`
}

type RedeemCodeResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type ReferralStatusRequest struct{}

type ReferralStatusResponse struct {
	Code        string `json:"code,omitempty"`
	Eligibility string `json:"eligibility"`
}

type StartTrialRequest struct{}

type StartTrialResponse struct{}

type SaveProgressRequest struct {
	Screen      string                       `json:"screen"`
	ScreenIndex int                          `json:"screenIndex"`
	Answers     protocoldb.OnboardingAnswers `json:"answers"`
}

type SaveProgressResponse struct{}

type GetProgressRequest struct {
	ForceRestart bool `json:"forceRestart"`
}

type GetProgressResponse struct {
	Screen      string                        `json:"screen"`
	ScreenIndex int                           `json:"screenIndex"`
	Answers     *protocoldb.OnboardingAnswers `json:"answers,omitempty"`
}

type ClearProgressRequest struct{}

type ClearProgressResponse struct{}

type GetRoutineRequest struct {
	Concerns []string `json:"concerns"`
}

// GetRoutineResponse is the assembled routine for the protocol overview
// screen. IncrementalMinutes carries the per-concern "+N min" labels,
// which sum to TotalMinutes.
type GetRoutineResponse struct {
	IngredientIDs      []string       `json:"ingredientIds"`
	ExerciseIDs        []string       `json:"exerciseIds"`
	TotalMinutes       int            `json:"totalMinutes"`
	IncrementalMinutes map[string]int `json:"incrementalMinutes"`
}

// IngredientSelection is a persisted routine ingredient selection.
type IngredientSelection struct {
	IngredientID       string `json:"ingredientId"`
	ProductName        string `json:"productName,omitempty"`
	State              string `json:"state"`
	WaitingForDelivery bool   `json:"waitingForDelivery"`
}

// ExerciseSelection is a persisted routine exercise selection.
type ExerciseSelection struct {
	ExerciseID string `json:"exerciseId"`
	State      string `json:"state"`
}

type ActivateRoutineRequest struct{}

type ActivateRoutineResponse struct {
	Ingredients []IngredientSelection `json:"ingredients"`
	Exercises   []ExerciseSelection   `json:"exercises"`
}

type UploadPhotosRequest struct {
	// FrontBase64 is the required front photo, base64-encoded JPEG.
	FrontBase64 string `json:"frontBase64"`

	// SideBase64 is the optional side photo, base64-encoded JPEG.
	SideBase64 string `json:"sideBase64,omitempty"`
}

type UploadPhotosResponse struct {
	FrontURL string `json:"frontUrl"`
	SideURL  string `json:"sideUrl,omitempty"`
}

type GetPhotosRequest struct{}

type GetPhotosResponse struct {
	FrontURL string `json:"frontUrl,omitempty"`
	SideURL  string `json:"sideUrl,omitempty"`
}

type ScoreFaceRequest struct {
	// Gender overrides the gender hint from the user's profile.
	Gender string `json:"gender,omitempty"`
}

type ScoreFaceResponse struct {
	Analysis *protocoldb.FaceAnalysis `json:"analysis"`
}
