package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/brightcoat/showcase/config"
	"github.com/brightcoat/showcase/internal/adminapi"
	"github.com/brightcoat/showcase/internal/app"
	"github.com/brightcoat/showcase/internal/publicapi"
	"github.com/brightcoat/showcase/internal/webserver"
)

var (
	conffile = flag.String("c", "showcase.yml", "config file")
	initdb   = flag.Bool("initdb", false, "reset persisted state to seed data and exit")
	showVer  = flag.Bool("v", false, "show version")
)

var version = "dev"

func main() {
	flag.Parse()

	if *showVer {
		fmt.Println(version)
		return
	}

	cfg := config.LoadConfig(*conffile)

	application := app.NewApplication(cfg)
	if err := application.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "init error: %v\n", err)
		os.Exit(1)
	}
	defer application.Release()

	if *initdb {
		if err := application.InitState(); err != nil {
			zap.L().Error("state reset failed", zap.Error(err))
			os.Exit(1)
		}
		zap.L().Info("state reset to seed data")
		return
	}

	server := webserver.New(application)
	publicapi.Register(server)
	adminapi.Register(server)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("server exited with error", zap.Error(err))
	}
}
