// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/curioswitch/go-curiostack/server"
	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Joakimpedev/protocol-sub000/internal/catalog"
	"github.com/Joakimpedev/protocol-sub000/internal/config"
	"github.com/Joakimpedev/protocol-sub000/internal/facescore"
	"github.com/Joakimpedev/protocol-sub000/internal/file"
	"github.com/Joakimpedev/protocol-sub000/internal/handler/activateroutine"
	"github.com/Joakimpedev/protocol-sub000/internal/handler/clearprogress"
	"github.com/Joakimpedev/protocol-sub000/internal/handler/createroom"
	"github.com/Joakimpedev/protocol-sub000/internal/handler/fillroom"
	"github.com/Joakimpedev/protocol-sub000/internal/handler/generatecode"
	"github.com/Joakimpedev/protocol-sub000/internal/handler/getphotos"
	"github.com/Joakimpedev/protocol-sub000/internal/handler/getprogress"
	"github.com/Joakimpedev/protocol-sub000/internal/handler/getroutine"
	"github.com/Joakimpedev/protocol-sub000/internal/handler/getuserroom"
	"github.com/Joakimpedev/protocol-sub000/internal/handler/joinroom"
	"github.com/Joakimpedev/protocol-sub000/internal/handler/redeemcode"
	"github.com/Joakimpedev/protocol-sub000/internal/handler/referralstatus"
	"github.com/Joakimpedev/protocol-sub000/internal/handler/saveprogress"
	"github.com/Joakimpedev/protocol-sub000/internal/handler/scoreface"
	"github.com/Joakimpedev/protocol-sub000/internal/handler/starttrial"
	"github.com/Joakimpedev/protocol-sub000/internal/handler/uploadphotos"
	"github.com/Joakimpedev/protocol-sub000/internal/httpapi"
	"github.com/Joakimpedev/protocol-sub000/internal/i18n"
	"github.com/Joakimpedev/protocol-sub000/internal/progress"
	"github.com/Joakimpedev/protocol-sub000/internal/referral"
	"github.com/Joakimpedev/protocol-sub000/internal/room"
	"github.com/Joakimpedev/protocol-sub000/internal/routine"
)

//go:embed conf/*.yaml
var confFiles embed.FS

func main() {
	conf, _ := fs.Sub(confFiles, "conf")
	os.Exit(server.Main(&config.Config{}, conf, setupServer))
}

func setupServer(ctx context.Context, conf *config.Config, s *server.Server) error {
	mux := server.Mux(s)

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: conf.Google.Project})
	if err != nil {
		return fmt.Errorf("main: create firebase app: %w", err)
	}

	fbAuth, err := fbApp.Auth(ctx)
	if err != nil {
		return fmt.Errorf("main: create firebase auth client: %w", err)
	}

	store, err := fbApp.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("main: create firestore client: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close firestore client", "error", err)
		}
	}()

	gcs, err := storage.NewGRPCClient(ctx)
	if err != nil {
		return fmt.Errorf("main: create storage client: %w", err)
	}
	defer func() {
		if err := gcs.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close storage client", "error", err)
		}
	}()
	uploads := file.NewIO(gcs, conf.Google.Project+"-uploads")

	cat, err := catalog.New()
	if err != nil {
		return fmt.Errorf("main: loading catalog: %w", err)
	}
	assembler := routine.NewAssembler(cat)

	rooms := room.NewService(store)
	referrals := referral.NewService(store)
	prog := progress.NewStore(store)
	photos := facescore.NewPhotoStore(uploads)

	apiKey := conf.Scoring.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	scorer := facescore.NewClient(facescore.Config{
		Endpoint: conf.Scoring.Endpoint,
		Model:    conf.Scoring.Model,
		APIKey:   apiKey,
	})

	fbMW := firebaseauth.NewMiddleware(fbAuth)
	mux.Use(middleware.Maybe(fbMW, func(r *http.Request) bool {
		return !strings.HasPrefix(r.URL.Path, "/internal/")
	}))

	mux.Use(i18n.Middleware())

	httpapi.Handle(mux, "/api/room/get", getuserroom.NewHandler(rooms).GetUserRoom)
	httpapi.Handle(mux, "/api/room/create", createroom.NewHandler(rooms).CreateRoom)
	httpapi.Handle(mux, "/api/room/join", joinroom.NewHandler(rooms).JoinRoom)

	httpapi.Handle(mux, "/api/referral/generate", generatecode.NewHandler(referrals).GenerateCode)
	httpapi.Handle(mux, "/api/referral/redeem", redeemcode.NewHandler(referrals).RedeemCode)
	httpapi.Handle(mux, "/api/referral/status", referralstatus.NewHandler(referrals).ReferralStatus)
	httpapi.Handle(mux, "/api/trial/start", starttrial.NewHandler(referrals).StartTrial)

	httpapi.Handle(mux, "/api/progress/save", saveprogress.NewHandler(prog, referrals).SaveProgress)
	httpapi.Handle(mux, "/api/progress/get", getprogress.NewHandler(prog).GetProgress)
	httpapi.Handle(mux, "/api/progress/clear", clearprogress.NewHandler(prog).ClearProgress)

	httpapi.Handle(mux, "/api/routine/get", getroutine.NewHandler(assembler, prog).GetRoutine)
	httpapi.Handle(mux, "/api/routine/activate", activateroutine.NewHandler(store, assembler, prog).ActivateRoutine)

	httpapi.Handle(mux, "/api/photos/upload", uploadphotos.NewHandler(photos).UploadPhotos)
	httpapi.Handle(mux, "/api/photos/get", getphotos.NewHandler(photos).GetPhotos)
	httpapi.Handle(mux, "/api/face/score", scoreface.NewHandler(photos, scorer, store).ScoreFace)

	if conf.DevTools.Enabled {
		httpapi.Handle(mux, "/api/room/fill", fillroom.NewHandler(rooms).FillRoom)
	}

	if err := server.Start(ctx, s); err != nil {
		return fmt.Errorf("main: starting server: %w", err)
	}
	return nil
}
