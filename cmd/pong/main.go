package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"

	"termpong/internal/ansii"
	"termpong/internal/audio"
	"termpong/internal/client"
	"termpong/internal/config"
	"termpong/internal/pong"
	"termpong/internal/telemetry"
)

const serviceName = "termpong"

func usage() {
	fmt.Fprintln(os.Stderr, "usage: pong [config-path]")
	fmt.Fprintln(os.Stderr, "       pong history [n] [config-path]")
}

func main() {
	args := os.Args[1:]

	var err error
	if len(args) > 0 && args[0] == "history" {
		err = runHistory(args[1:])
	} else if len(args) > 1 {
		usage()
		os.Exit(2)
	} else {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		err = runGame(path)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "pong:", err)
		os.Exit(1)
	}
}

func setup(path string) (config.Configuration, func(), error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return cfg, nil, err
	}

	var out io.Writer = io.Discard
	closeLog := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return cfg, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeLog = func() { f.Close() }
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.Level(cfg.LogLevel)})))

	return cfg, closeLog, nil
}

func runGame(path string) error {
	cfg, closeLog, err := setup(path)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, serviceName, cfg.OtelEndpoint)
	if err != nil {
		slog.Warn("tracing disabled", slog.Any("error", err))
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Warn("failed to flush traces", slog.Any("error", err))
		}
	}()

	store := client.OpenStoreOrMemory(cfg)
	defer store.Close()

	var player audio.Player = audio.Silent{}
	if cfg.Sound {
		beeper, err := audio.NewBeeper(cfg.Volume)
		if err != nil {
			slog.Warn("sound disabled, speaker unavailable", slog.Any("error", err))
		} else {
			player = beeper
		}
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	return client.NewGame(screen, cfg, store, player).Run(ctx)
}

type historyDoc struct {
	Matches []pong.MatchRecord `yaml:"matches"`
}

var errUsage = errors.New("bad arguments")

// parseHistoryArgs reads `[n] [config-path]`. n is 0 when omitted.
func parseHistoryArgs(args []string) (n int, path string, err error) {
	if len(args) > 0 {
		if v, err := strconv.Atoi(args[0]); err == nil {
			if v < 0 {
				return 0, "", fmt.Errorf("%w: negative count %d", errUsage, v)
			}
			n = v
			args = args[1:]
		}
	}
	if len(args) > 1 {
		return 0, "", fmt.Errorf("%w: too many arguments", errUsage)
	}
	if len(args) == 1 {
		path = args[0]
	}
	return n, path, nil
}

func runHistory(args []string) error {
	n, path, err := parseHistoryArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pong:", err)
		usage()
		os.Exit(2)
	}

	cfg, closeLog, err := setup(path)
	if err != nil {
		return err
	}
	defer closeLog()
	if n == 0 {
		n = cfg.HistoryLimit
	}

	store, err := client.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.LoadRecent(context.Background(), n)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	if !ansii.IsTerminal(os.Stdout) {
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(historyDoc{Matches: records})
	}

	width, _, err := ansii.GetTermSize(os.Stdout)
	if err != nil {
		width = 0
	}
	return ansii.Printer{W: os.Stdout, Color: true, Width: width}.WriteHistory(records)
}
