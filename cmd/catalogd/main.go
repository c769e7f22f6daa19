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

	"github.com/tastedir/catalogd/config"
	"github.com/tastedir/catalogd/internal/adminapi"
	"github.com/tastedir/catalogd/internal/app"
	"github.com/tastedir/catalogd/internal/webserver"
)

var (
	cfile   = flag.String("c", "catalogd.yml", "config file")
	initdb  = flag.Bool("initdb", false, "drop and recreate the schema, then exit")
	showVer = flag.Bool("v", false, "print version and exit")
)

var version = "dev"

func main() {
	flag.Parse()

	if *showVer {
		fmt.Println("catalogd", version)
		return
	}

	cfg := config.LoadConfig(*cfile)
	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initdb {
		application.InitDb()
		zap.S().Info("database initialized")
		return
	}

	webserver.Init(cfg)
	adminapi.Init(application)

	errCh := make(chan error, 1)
	go func() {
		errCh <- webserver.Listen()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zap.S().Fatalf("web server failed: %v", err)
		}
	case sig := <-quit:
		zap.S().Infof("received signal %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := webserver.Shutdown(ctx); err != nil {
			zap.S().Errorf("shutdown error: %v", err)
		}
	}
}
