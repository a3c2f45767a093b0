package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cheetahbyte/clavekey/internal/api"
	"github.com/cheetahbyte/clavekey/internal/cli"
	"github.com/cheetahbyte/clavekey/internal/config"
	"github.com/cheetahbyte/clavekey/internal/entropy"
	"github.com/cheetahbyte/clavekey/internal/handlers"
	"github.com/cheetahbyte/clavekey/internal/services"
	"github.com/go-chi/chi/v5"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		config.Exitf("%v", err)
	}
}

// run dispatches on the subcommand. The default command reads no
// configuration beyond the debug switch.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("clavekey", flag.ContinueOnError)
	fs.SetOutput(stderr)
	debug := fs.Bool("debug", false, "log the seed used to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		logger := newLogger(stderr, *debug || config.DebugFromEnv())
		producer, err := entropy.NewProducer()
		if err != nil {
			return fmt.Errorf("collect seed: %w", err)
		}
		if err := cli.Run(stdout, producer, logger); err != nil {
			return fmt.Errorf("generate key: %w", err)
		}
		return nil
	}

	switch cmd := fs.Arg(0); cmd {
	case "serve":
		opts, err := parseServeArgs(fs.Args()[1:], stderr)
		if err != nil {
			return err
		}
		opts.debug = opts.debug || *debug
		return runServe(opts, stderr)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

type serveOptions struct {
	debug bool
	addr  string
}

func parseServeArgs(args []string, stderr io.Writer) (serveOptions, error) {
	var opts serveOptions
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	fs.StringVar(&opts.addr, "addr", "", "listen address (overrides CLAVEKEY_ADDR)")
	if err := fs.Parse(args); err != nil {
		return serveOptions{}, err
	}
	if fs.NArg() > 0 {
		return serveOptions{}, fmt.Errorf("serve: unexpected arguments %q", fs.Args())
	}
	return opts, nil
}

func runServe(opts serveOptions, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.addr != "" {
		cfg.Addr = opts.addr
	}
	slog.SetDefault(newLogger(stderr, opts.debug || cfg.Debug))

	if err := serve(cfg); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func serve(cfg config.Config) error {
	stack, err := services.InitServices(cfg)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	api.Register(r, handlers.New(stack), cfg.RequestTimeout)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
