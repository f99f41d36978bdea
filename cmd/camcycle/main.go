package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/l1jgo/camcycle/internal/camera"
	"github.com/l1jgo/camcycle/internal/config"
	"github.com/l1jgo/camcycle/internal/core/event"
	coresys "github.com/l1jgo/camcycle/internal/core/system"
	"github.com/l1jgo/camcycle/internal/input"
	"github.com/l1jgo/camcycle/internal/scene"
	"github.com/l1jgo/camcycle/internal/scripting"
	"github.com/l1jgo/camcycle/internal/system"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(w io.Writer, name string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Fprintf(w, "\033[36;1m  │\033[0m %-41s \033[36;1m│\033[0m\n", centered(name, 41))
	fmt.Fprintln(w, "\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Fprintln(w)
}

func centered(s string, width int) string {
	pad := (width - len(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

func printSection(w io.Writer, title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Fprintf(w, "  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(w io.Writer, label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Fprintf(w, "  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(w io.Writer, msg string) {
	fmt.Fprintf(w, "  \033[32m✓\033[0m %s\n", msg)
}

func printReady(w io.Writer, msg string) {
	fmt.Fprintf(w, "  \033[32m▶\033[0m %s\n", msg)
}

// ── Main loop ─────────────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/camcycle.toml"
	if p := os.Getenv("CAMCYCLE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	out := os.Stdout
	printBanner(out, cfg.App.Name)

	// 3. Scene description
	printSection(out, "Scene")
	desc := scene.Default()
	if cfg.Scene.Path != "" {
		if desc, err = scene.Load(cfg.Scene.Path); err != nil {
			return fmt.Errorf("scene: %w", err)
		}
		printOK(out, "loaded "+cfg.Scene.Path)
	} else {
		printOK(out, "built-in scene")
	}

	// 4. World, resources and systems
	sc := scene.New()
	reg := camera.NewRegistry()
	keys := input.NewKeys()
	bus := event.NewBus()
	ctrl := camera.NewController(cfg.Camera.InitialSlot)

	reader := input.NewReader(os.Stdin, cfg.Input.QueueSize, log)

	runner := coresys.NewRunner()
	runner.AddStartup("scene", func() error {
		return sc.Setup(desc, cfg.Camera.InitialSlot, reg)
	})
	runner.Register(system.NewInputSystem(reader.Events(), keys, cfg.Input.QueueSize, log))
	runner.Register(system.NewEventDispatchSystem(bus))
	system.RegisterCamera(runner, system.CameraDeps{
		Controller: ctrl,
		Registry:   reg,
		Scene:      sc,
		Keys:       keys,
		CycleKey:   cfg.Input.CycleKey,
		Bus:        bus,
		Out:        out,
		Log:        log,
	})
	runner.Register(system.NewCleanupSystem(sc.World, keys))

	// 5. Lua hooks
	if cfg.Scripting.Enabled {
		lua, err := scripting.NewEngine(cfg.Scripting.Dir, log)
		if err != nil {
			return fmt.Errorf("scripting: %w", err)
		}
		defer lua.Close()
		system.SubscribeScripts(bus, lua, runner)
		printOK(out, "lua hooks from "+cfg.Scripting.Dir)
	}

	if err := runner.Startup(); err != nil {
		return err
	}
	printStat(out, "entities", sc.World.Len())
	printStat(out, "cameras", sc.Cameras.Len())
	printStat(out, "active labels", reg.Len())
	fmt.Fprintln(out)

	// 6. Start game loop
	go reader.ReadLoop()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Loop.TickRate)
	defer ticker.Stop()

	printSection(out, "Ready")
	printReady(out, fmt.Sprintf("press %q + enter to cycle cameras, \"quit\" to exit", cfg.Input.CycleKey.String()))
	printReady(out, fmt.Sprintf("active camera: %s (tick: %s)", ctrl.Current(), cfg.Loop.TickRate))
	fmt.Fprintln(out)

	for {
		select {
		case <-ticker.C:
			runner.Tick(cfg.Loop.TickRate)
		case <-reader.Done():
			// Let the last queued keys through before stopping.
			runner.Tick(cfg.Loop.TickRate)
			runner.Tick(cfg.Loop.TickRate)
			log.Info("key source closed, stopping", zap.Uint64("ticks", runner.Ticks()))
			teardown(runner, sc, reg, log)
			return nil
		case sig := <-shutdownCh:
			log.Info("shutdown signal", zap.String("signal", sig.String()))
			teardown(runner, sc, reg, log)
			return nil
		}
	}
}

// teardown despawns the scene through the cleanup phase.
func teardown(runner *coresys.Runner, sc *scene.Scene, reg *camera.Registry, log *zap.Logger) {
	n := sc.Despawn(reg)
	runner.TickPhase(coresys.PhaseCleanup, 0)
	log.Info("scene despawned",
		zap.Int("entities", n),
		zap.Int("remaining", sc.World.Len()),
	)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	// Console reports go to stdout; keep logs on stderr.
	zapCfg.OutputPaths = []string{"stderr"}

	return zapCfg.Build()
}
