package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/realtor/pkg/config"
	"github.com/umputun/realtor/pkg/crm"
	"github.com/umputun/realtor/pkg/favorites"
	"github.com/umputun/realtor/pkg/leads"
	"github.com/umputun/realtor/pkg/listing"
	"github.com/umputun/realtor/pkg/repository"
	"github.com/umputun/realtor/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"configuration file, demo mode with defaults if not set"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	DBPath string `long:"db" env:"DB" description:"database DSN, overrides config"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

const (
	storageCheckInterval = 30 * time.Second
	storageMaxFailures   = 3
)

// pinger checks availability of a dependency
type pinger interface {
	Ping(ctx context.Context) error
}

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	color.NoColor = color.NoColor || opts.NoColor
	setupLog(opts.Debug)
	log.Printf("[INFO] starting realtor version %s", revision)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1)
	}
	log.Print("[INFO] shutdown complete")
}

// run wires storage, CRM client and services, then serves HTTP until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.DBPath != "" {
		cfg.Database.DSN = opts.DBPath
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close storage: %v", err)
		}
	}()

	// without CRM the widget serves demo listings and keeps all submissions locally
	var source listing.Source
	var poster leads.Poster
	if crmCfg := cfg.GetCRMConfig(); crmCfg.BaseURL != "" {
		client := crm.NewClient(crm.Params{BaseURL: crmCfg.BaseURL, Timeout: crmCfg.Timeout, UserAgent: crmCfg.UserAgent})
		source, poster = client, client
		log.Printf("[INFO] crm api %s, timeout %v", crmCfg.BaseURL, crmCfg.Timeout)
	} else {
		log.Printf("[INFO] crm api is not configured, demo mode")
	}

	fav := favorites.New(ctx, repos.Storage)
	log.Printf("[DEBUG] loaded %d favorites", fav.Count())

	srv := server.New(cfg, server.Params{
		Listings:  listing.NewRepository(source),
		Favorites: fav,
		Leads:     leads.NewSubmitter(poster, repos.Storage),
		Version:   revision,
		Debug:     opts.Debug,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		return watchStorage(gctx, repos, storageCheckInterval, storageMaxFailures)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// watchStorage pings storage every interval and fails after maxFailures consecutive errors,
// which stops the server. Returns nil when ctx is canceled.
func watchStorage(ctx context.Context, p pinger, interval time.Duration, maxFailures int) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			err := p.Ping(ctx)
			if err == nil {
				failures = 0
				continue
			}
			if ctx.Err() != nil {
				return nil
			}
			failures++
			log.Printf("[WARN] storage ping failed (%d/%d): %v", failures, maxFailures, err)
			if failures >= maxFailures {
				return fmt.Errorf("storage unavailable: %w", err)
			}
		}
	}
}

func setupLog(dbg bool) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
