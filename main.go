package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/quickly-tally/auth"
	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/console"
	"github.com/danielhkuo/quickly-tally/middleware"
	"github.com/danielhkuo/quickly-tally/router"
	"github.com/danielhkuo/quickly-tally/session"
	"github.com/danielhkuo/quickly-tally/tally"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Logs go to stderr so they stay out of the console screens
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	t, err := tally.New(cfg.Candidates)
	if err != nil {
		slog.Error("invalid candidate roster", "error", err)
		os.Exit(1)
	}

	sess := session.New(t)
	slog.Info("session started", "session_id", sess.ID(), "candidates", t.Size(), "ui", cfg.UI)

	switch cfg.UI {
	case cliparse.UIWeb:
		err = runWeb(sess, cfg)
	default:
		err = runConsole(sess)
	}
	if err != nil {
		slog.Error("front-end stopped", "error", err)
		os.Exit(1)
	}
}

func runConsole(sess *session.Session) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := console.New(os.Stdin, os.Stdout).Run(ctx, sess)
	if err == context.Canceled {
		return nil
	}
	return err
}

func runWeb(sess *session.Session, cfg cliparse.Config) error {
	if cfg.SessionKeySalt == "" {
		salt, err := auth.GenerateSalt(32)
		if err != nil {
			return err
		}
		cfg.SessionKeySalt = salt
	}

	mux := router.NewRouter(sess, cfg)

	server := http.Server{
		Handler:           middleware.LoopbackOnly(middleware.CORS(mux)),
		Addr:              "127.0.0.1:" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(ctrlc)

	go func() {
		// Wait for Ctrl-C or a confirmed exit
		select {
		case <-ctrlc:
			server.Close()
		case <-sess.Done():
			// The browser still has to follow the redirect to the goodbye page
			time.Sleep(time.Second)
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			server.Shutdown(ctx)
		}
	}()

	url := fmt.Sprintf("http://127.0.0.1:%d/?key=%s", cfg.Port, auth.GenerateSessionKey(sess.ID(), cfg.SessionKeySalt))
	fmt.Fprintf(os.Stdout, "Open %s to start voting\n", url)

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	slog.Info("Server closed", "session_id", sess.ID())
	return nil
}
