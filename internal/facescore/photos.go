// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package facescore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Joakimpedev/protocol-sub000/internal/file"
)

// ErrFrontPhotoRequired means a save was attempted without the front
// photo. The side photo is optional, the front is not.
var ErrFrontPhotoRequired = errors.New("facescore: front photo is required")

// PhotoSet is the user's current selfie set. There is at most one set
// per user; saving a new set replaces the previous one.
type PhotoSet struct {
	Front    []byte
	Side     []byte
	FrontURL string
	SideURL  string
}

func NewPhotoStore(files *file.IO) *PhotoStore {
	return &PhotoStore{files: files}
}

type PhotoStore struct {
	files *file.IO
}

func photoPath(uid string, name string) string {
	return "users/" + uid + "/photos/" + name
}

// Save persists the photo set, deleting any previously persisted photos
// first. Cleanup failures are logged and do not block the save.
func (p *PhotoStore) Save(ctx context.Context, uid string, front []byte, side []byte) (*PhotoSet, error) {
	if len(front) == 0 {
		return nil, ErrFrontPhotoRequired
	}

	for _, name := range []string{"front.jpg", "side.jpg"} {
		if err := p.files.DeleteFile(ctx, photoPath(uid, name)); err != nil {
			slog.WarnContext(ctx, "facescore: deleting previous photo", "path", photoPath(uid, name), "error", err)
		}
	}

	set := &PhotoSet{Front: front, Side: side}
	var grp errgroup.Group
	grp.Go(func() error {
		url, err := p.files.WriteFile(ctx, photoPath(uid, "front.jpg"), "image/jpeg", front)
		if err != nil {
			return fmt.Errorf("facescore: saving front photo: %w", err)
		}
		set.FrontURL = url
		return nil
	})
	if len(side) > 0 {
		grp.Go(func() error {
			url, err := p.files.WriteFile(ctx, photoPath(uid, "side.jpg"), "image/jpeg", side)
			if err != nil {
				return fmt.Errorf("facescore: saving side photo: %w", err)
			}
			set.SideURL = url
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return set, nil
}

// Load returns the user's current photo set, or nil if no front photo
// is persisted.
func (p *PhotoStore) Load(ctx context.Context, uid string) (*PhotoSet, error) {
	front, err := p.files.ReadFile(ctx, photoPath(uid, "front.jpg"))
	if err != nil {
		return nil, fmt.Errorf("facescore: loading front photo: %w", err)
	}
	if front == nil {
		return nil, nil
	}

	set := &PhotoSet{
		Front:    front,
		FrontURL: p.files.URL(photoPath(uid, "front.jpg")),
	}
	side, err := p.files.ReadFile(ctx, photoPath(uid, "side.jpg"))
	if err != nil {
		return nil, fmt.Errorf("facescore: loading side photo: %w", err)
	}
	if side != nil {
		set.Side = side
		set.SideURL = p.files.URL(photoPath(uid, "side.jpg"))
	}
	return set, nil
}
