package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"pvpsim/internal/api"
	"pvpsim/internal/combat"
	"pvpsim/internal/config"
	"pvpsim/internal/util"
)

func main() {
	var cfgDir, addr string
	var debug bool
	flag.StringVar(&cfgDir, "config", "assets", "config dir")
	flag.StringVar(&addr, "addr", "", "listen address (defaults to :$PORT or :8080)")
	flag.BoolVar(&debug, "debug", false, "debug logging")
	flag.Parse()

	log, err := util.NewLogger(debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if addr == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		addr = ":" + port
	}

	gm, sc, roster, err := config.LoadAll(cfgDir)
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}
	dex, err := combat.NewDex(gm)
	if err != nil {
		log.Fatal("build dex", zap.Error(err))
	}
	settings, err := combat.SettingsFrom(sc.Settings)
	if err != nil {
		log.Fatal("settings", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           api.NewServer(dex, settings, roster, log).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("serve", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("shutdown", zap.Error(err))
	}
}
