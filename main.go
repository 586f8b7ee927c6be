package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"github.com/adrg/xdg"
	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/focusboard/focusboard/pkg/evkeys"
	"github.com/focusboard/focusboard/pkg/focusboard"
	"github.com/focusboard/focusboard/pkg/hotkey"
	"github.com/focusboard/focusboard/pkg/hyprland"
	"github.com/focusboard/focusboard/pkg/layoutstore"
	"github.com/focusboard/focusboard/pkg/layoutstore/jsonfile"
	"github.com/focusboard/focusboard/pkg/layoutstore/sqlite"
	"github.com/focusboard/focusboard/pkg/x11"
	"github.com/focusboard/focusboard/pkg/xkb"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"
)

func main() {
	err := run()
	if err != nil {
		log.Fatalf("error: %+v", err)
	}
}

func run() error {
	configFlag := flag.String("config", "", "path to the json config (default: in the XDG config dir)")
	storeFlag := flag.String("store", "json", "mapping store backend: json or sqlite")
	dbFlag := flag.String("db", "", "path to the sqlite database (default: in the XDG data dir)")
	sourceFlag := flag.String("source", "auto", "focus source: auto, hyprland or x11")
	pollFlag := flag.Duration("poll", focusboard.DefaultPollInterval, "focus poll interval for the x11 source")
	cooldownFlag := flag.Duration("cooldown", hotkey.DefaultCooldown, "minimum time between hotkey fires")
	evdevXMLPath := flag.String("evdev-xml-path", xkb.DefaultRegistryPath, "path to evdev.xml")
	debug := flag.Bool("debug", false, "enable debug logging")
	add := flag.Bool("add", false, "remember the focused window's layout and exit")
	flag.Parse()

	log, err := newLogger(*debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		store     focusboard.MappingStore
		jsonStore *jsonfile.Store
	)
	switch *storeFlag {
	case "json":
		path, err := resolveConfigPath(*configFlag)
		if err != nil {
			return err
		}
		jsonStore, err = jsonfile.Open(path, log)
		if err != nil {
			return fmt.Errorf("open config: %w", err)
		}
		store = jsonStore
	case "sqlite":
		path, err := resolveDBPath(*dbFlag)
		if err != nil {
			return err
		}
		dbStore, err := sqlite.Open(path, log)
		if err != nil {
			return fmt.Errorf("open layout db: %w", err)
		}
		defer dbStore.Close()
		store = dbStore
	default:
		return fmt.Errorf("unknown store backend %q", *storeFlag)
	}

	var (
		querier  focusboard.WindowQuerier
		layouts  focusboard.LayoutSwitcher
		listener focusboard.FocusListener
	)
	switch src := detectSource(*sourceFlag); src {
	case "hyprland":
		registry, err := xkb.ParseRegistry(*evdevXMLPath)
		if err != nil {
			return fmt.Errorf("parse xkb registry: %w", err)
		}

		ctl := hyprland.NewHyprctl()
		querier = ctl
		layouts = hyprland.NewLayoutAdapter(ctl, registry)

		if !*add {
			events, err := hyprland.ConnectEvents(log)
			if err != nil {
				return fmt.Errorf("connect to hyprland: %w", err)
			}
			defer events.Close()
			listener = events
		}
	case "x11":
		client := x11.New(log)
		querier = client
		layouts = client
		listener = focusboard.NewPollListener(client, *pollFlag, log)
	default:
		return fmt.Errorf("unknown focus source %q", src)
	}

	recorder := focusboard.NewRecorder(querier, layouts, store, log)

	if *add {
		class, layout, err := recorder.RememberActiveWindow()
		if err != nil {
			return err
		}
		fmt.Printf("%s -> layout %d\n", class, layout)
		return nil
	}

	sw := focusboard.NewSwitcher(listener, layouts, store, log)

	log.Info("started focusboard")

	errChan := make(chan error, 4)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		err := sw.Watch(ctx)
		if err != nil {
			errChan <- fmt.Errorf("watch focus: %w", err)
		}
	}()

	keySource, err := evkeys.OpenAll(log)
	if err != nil {
		log.Warnf("global hotkeys disabled: %v", err)
	} else {
		defer keySource.Close()

		hotkeys := hotkey.NewListener(keySource, store, *cooldownFlag, log)
		hotkeys.Bind(layoutstore.ActionAddWindow, func() error {
			_, _, err := recorder.RememberActiveWindow()
			return err
		})

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := hotkeys.Run(ctx)
			if err != nil {
				errChan <- fmt.Errorf("hotkey listener: %w", err)
			}
		}()
	}

	if jsonStore != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := jsonStore.Watch(ctx)
			if err != nil {
				errChan <- fmt.Errorf("watch config: %w", err)
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		err := systemdNotifyLoop(ctx)
		if err != nil {
			errChan <- fmt.Errorf("systemd notify: %w", err)
		}
	}()

	err = <-errChan
	switch {
	case errors.Is(err, context.Canceled):
		log.Info("shutting down")
		wg.Wait()
		return nil
	case err != nil:
		return err
	}

	return nil
}

func systemdNotifyLoop(ctx context.Context) error {
	// tell systemd that we're ready
	supported, err := daemon.SdNotify(false, daemon.SdNotifyReady)
	if err != nil {
		return fmt.Errorf("notify systemd: %w", err)
	}
	if !supported {
		return nil
	}

	// set funky message
	_, _ = daemon.SdNotify(false, "STATUS=Following your focus, remembering your layouts! ⌨️")

	// notify watchdog
	t, err := daemon.SdWatchdogEnabled(false)
	if err != nil {
		return fmt.Errorf("check watchdog: %w", err)
	}
	// if watchdog is not enabled, we don't need to notify it
	if t == 0 {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-time.After(t / 2):
			_, err := daemon.SdNotify(false, daemon.SdNotifyWatchdog)
			if err != nil {
				return fmt.Errorf("notify watchdog: %w", err)
			}
		}
	}
}

func detectSource(explicit string) string {
	if explicit != "auto" {
		return explicit
	}
	if os.Getenv("HYPRLAND_INSTANCE_SIGNATURE") != "" {
		return "hyprland"
	}
	return "x11"
}

func resolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		err := os.MkdirAll(filepath.Dir(explicit), 0755)
		if err != nil {
			return "", fmt.Errorf("create config dir: %w", err)
		}
		return explicit, nil
	}

	path, err := xdg.ConfigFile("focusboard/config.json")
	if err != nil {
		return "", fmt.Errorf("locate config file: %w", err)
	}

	return path, nil
}

func resolveDBPath(explicit string) (string, error) {
	if explicit != "" {
		err := os.MkdirAll(filepath.Dir(explicit), 0755)
		if err != nil {
			return "", fmt.Errorf("create data dir: %w", err)
		}
		return explicit, nil
	}

	path, err := xdg.DataFile("focusboard/layouts.db")
	if err != nil {
		return "", fmt.Errorf("locate data file: %w", err)
	}

	return path, nil
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	loggerConfig := zap.NewDevelopmentConfig()

	loggerConfig.OutputPaths = []string{"stdout"}
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if !debug {
		loggerConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger.Sugar(), nil
}
