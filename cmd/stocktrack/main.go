package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"stocktrack/config"
	"stocktrack/internal/app"
	"stocktrack/internal/webserver"
	"stocktrack/internal/webui"
)

var (
	h        bool
	x        bool
	initdb   bool
	conffile string
)

func init() {
	flag.BoolVar(&h, "h", false, "help usage")
	flag.BoolVar(&x, "x", false, "debug mode")
	flag.BoolVar(&initdb, "initdb", false, "drop and recreate all tables")
	flag.StringVar(&conffile, "c", "", "config yaml file")
}

func main() {
	flag.Parse()
	if h {
		flag.Usage()
		return
	}

	cfg, err := config.LoadConfig(conffile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if x {
		cfg.System.Debug = true
		cfg.Database.Debug = true
	}
	if err := cfg.InitDirs(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if initdb {
		application.InitDb()
		zap.S().Info("database initialized")
		return
	}

	ws := webserver.New(application)
	webui.Register(ws)

	go func() {
		if err := ws.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.S().Info("shutting down")
}
