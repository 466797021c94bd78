package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lgs/server/internal/component"
	"github.com/lgs/server/internal/config"
	coresys "github.com/lgs/server/internal/core/system"
	"github.com/lgs/server/internal/data"
	"github.com/lgs/server/internal/module"
	"github.com/lgs/server/internal/module/baseentity"
	"github.com/lgs/server/internal/module/selfemote"
	"github.com/lgs/server/internal/scripting"
	"github.com/lgs/server/internal/system"
	"github.com/lgs/server/internal/world"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// startHook is the global Lua function called once after scripts load.
const startHook = "onServerStart"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Main server logic ─────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/server.toml"
	if p := os.Getenv("LGS_CONFIG"); p != "" {
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

	printBanner(cfg.Server.Name, cfg.Server.ID)

	// 3. Build the host
	srv, err := setup(cfg, system.NewLogSink(log), log)
	if err != nil {
		return err
	}
	defer srv.engine.Close()

	// 4. Game loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Network.TickRate)
	defer ticker.Stop()

	printSection("ready")
	printReady(fmt.Sprintf("modules: %s", strings.Join(srv.modules.Names(), ", ")))
	printReady(fmt.Sprintf("game loop (tick: %s)", cfg.Network.TickRate))
	fmt.Println()

	for {
		select {
		case <-ticker.C:
			srv.runner.Tick(cfg.Network.TickRate)
		case sig := <-shutdownCh:
			log.Info("shutdown signal received", zap.String("signal", sig.String()))
			return nil
		}
	}
}

// server is everything the game loop needs after startup.
type server struct {
	world   *world.State
	engine  *scripting.Engine
	modules *module.Registry
	runner  *coresys.Runner
}

// setup builds the host in dependency order: data tables, world, Lua
// engine, modules (OnInit before any script runs), scripts, systems.
func setup(cfg *config.Config, sink system.Sink, log *zap.Logger) (*server, error) {
	printSection("data")
	emotes, err := data.LoadEmoteTable(cfg.Data.Emotes)
	if err != nil {
		return nil, fmt.Errorf("emote table: %w", err)
	}
	printStat("emotes", emotes.Count())

	spawns, err := data.LoadSpawnList(cfg.Data.Spawns)
	if err != nil {
		return nil, fmt.Errorf("spawn list: %w", err)
	}

	ws := world.NewState()
	for _, sp := range spawns {
		if err := spawn(ws, sp, cfg.Network.OutQueueSize); err != nil {
			return nil, err
		}
	}
	printStat("entities", ws.Count())
	fmt.Println()

	printSection("scripting")
	engine, err := scripting.NewEngine(cfg.Scripting.Dir, log)
	if err != nil {
		return nil, fmt.Errorf("lua engine: %w", err)
	}

	modules := module.NewRegistry()
	for _, m := range []module.Module{baseentity.New(), selfemote.New()} {
		if err := modules.Add(m); err != nil {
			engine.Close()
			return nil, err
		}
	}
	if err := modules.Enable(cfg.Scripting.Modules); err != nil {
		engine.Close()
		return nil, fmt.Errorf("modules: %w", err)
	}
	if err := modules.InitAll(&module.Host{World: ws, Engine: engine, Emotes: emotes, Log: log}); err != nil {
		engine.Close()
		return nil, err
	}
	printStat("modules", len(modules.Names()))

	n, err := engine.LoadScripts()
	if err != nil {
		engine.Close()
		return nil, fmt.Errorf("lua scripts: %w", err)
	}
	printStat("scripts", n)
	if err := engine.CallHook(startHook); err != nil {
		engine.Close()
		return nil, err
	}
	printOK("scripts loaded")
	fmt.Println()

	runner := coresys.NewRunner()
	runner.Register(system.NewScriptSystem(engine, log))
	runner.Register(system.NewOutputSystem(ws, sink))
	runner.Register(system.NewCleanupSystem(ws))

	return &server{world: ws, engine: engine, modules: modules, runner: runner}, nil
}

func spawn(ws *world.State, sp data.Spawn, outboxCap int) error {
	var err error
	if sp.Kind == component.KindPC {
		_, err = ws.SpawnCharacter(sp.Name, sp.ID, outboxCap)
	} else {
		_, err = ws.SpawnEntity(sp.Kind, sp.Name, sp.ID)
	}
	return err
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

	return zapCfg.Build()
}
