// Package cmd implements the CLI application to manage a bet ledger.
package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/bankroll"
	"github.com/etnz/bankroll/config"
	"github.com/etnz/bankroll/kv"
	"github.com/google/subcommands"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "bets")
	c.Register(&removeCmd{}, "bets")
	c.Register(&clearCmd{}, "bets")
	c.Register(&bankrollCmd{}, "bets")
	c.Register(&importCmd{}, "bets")
	c.Register(&fmtCmd{}, "bets")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile   = flag.String("config", config.DefaultFile, "Path to the YAML configuration file")
	storeBackend = flag.String("store", "", "Key-value backend (file, sqlite, redis, memory). Overrides the configuration.")
	storePath    = flag.String("path", "", "Path of the file or sqlite store. Overrides the configuration.")
	currency     = flag.String("currency", "", "Currency code used to display amounts. Overrides the configuration.")
	Verbose      = flag.Bool("v", false, "Enable debug logging")
)

// stdin and stdout are swapped by tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// openKV opens the key-value store selected by the configuration.
var openKV = func(ctx context.Context, cfg config.Config) (kv.Store, error) {
	switch cfg.Store {
	case config.BackendSQLite:
		return kv.OpenSQLite(cfg.Path)
	case config.BackendRedis:
		return kv.DialRedis(ctx, &redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Redis.Prefix)
	case config.BackendMemory:
		return kv.NewMemory(), nil
	default:
		return kv.NewFile(cfg.Path), nil
	}
}

// loadConfig reads the configuration and applies the global flags on top of it.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return cfg, err
	}
	if *storeBackend != "" {
		cfg.Store = *storeBackend
	}
	if *storePath != "" {
		cfg.Path = *storePath
	}
	if *currency != "" {
		cfg.Currency = strings.ToUpper(*currency)
	}
	if *Verbose {
		cfg.LogLevel = zerolog.LevelDebugValue
	}
	return cfg, cfg.Validate()
}

// setupLogging configures the global logger for a terminal.
func setupLogging(cfg config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// app is what every command needs: the opened ledger store and the display currency.
type app struct {
	store    *bankroll.Store
	currency string
	kv       kv.Store
}

// Close releases the underlying key-value store.
func (a *app) Close() error { return a.kv.Close() }

// openApp is the central function to open the ledger store.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("could not load configuration: %w", err)
	}
	setupLogging(cfg)
	s, err := openKV(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not open %s store: %w", cfg.Store, err)
	}
	log.Debug().Str("store", cfg.Store).Str("path", cfg.Path).Msg("opened store")
	return &app{
		store:    bankroll.Open(ctx, s, bankroll.WithLogger(log.Logger)),
		currency: cfg.Currency,
		kv:       s,
	}, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw text.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// confirm prints the prompt and reports whether the answer is yes.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
