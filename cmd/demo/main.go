package main

import (
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/voxforge/voxforge/internal/config"
	"github.com/voxforge/voxforge/internal/core/engine"
	"github.com/voxforge/voxforge/internal/core/entity"
	"github.com/voxforge/voxforge/internal/core/events"
	"github.com/voxforge/voxforge/internal/core/observability/log"
	"github.com/voxforge/voxforge/internal/core/render"
	"github.com/voxforge/voxforge/internal/core/voxel"
	"github.com/voxforge/voxforge/internal/core/world"
	"github.com/voxforge/voxforge/internal/entities"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config; defaults apply when empty")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			log.New(log.LevelInfo).Fatal("loading config", log.Error(err))
		}
		cfg = loaded
	}

	logger := log.New(logLevel(cfg.Log.Level))
	logger.Info("voxforge demo starting",
		log.Int("frames", cfg.Run.Frames),
		log.Float64("frame_seconds", cfg.Run.FrameSeconds))

	bus := events.NewBus()
	bus.Subscribe(events.TypeEntitySpawned, func(e events.Event) error {
		data := e.Data.(events.EntitySpawned)
		logger.Info("spawned", log.String("tag", data.Tag))
		return nil
	})
	bus.Subscribe(events.TypeEntityRemoved, func(e events.Event) error {
		data := e.Data.(events.EntityRemoved)
		logger.Info("removed", log.String("tag", data.Tag))
		return nil
	})

	w := world.New(logger, bus)
	resources := render.NewProceduralResources()

	w.Spawn(entities.ClearScreen{})

	if cfg.Scene.Enabled {
		rng := rand.New(rand.NewSource(cfg.Scene.Seed))
		scene, err := entities.NewShapeScene(rng, logger, resources,
			voxel.Position{X: cfg.Scene.Min[0], Y: cfg.Scene.Min[1], Z: cfg.Scene.Min[2]},
			voxel.Position{X: cfg.Scene.Max[0], Y: cfg.Scene.Max[1], Z: cfg.Scene.Max[2]},
			cfg.Scene.Spheres)
		if err != nil {
			logger.Fatal("building shape scene", log.Error(err))
		}
		w.Spawn(scene)
	}

	if cfg.Terrain.Enabled {
		seed := cfg.Terrain.Seed
		if cfg.Terrain.RandomSeed {
			seed = rand.New(rand.NewSource(time.Now().UnixNano())).Uint32()
			logger.Info("drew terrain seed", log.Uint32("seed", seed))
		}
		w.Spawn(entities.NewTerrainScene(seed, cfg.Terrain.Size, logger, resources))
	}

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM)

	eng := engine.NewHeadless()
	input := entity.NopInput{}

	frames := cfg.Run.Frames
	if frames <= 0 {
		frames = 1
	}

	var secondAcc, cycleAcc float64
	start := time.Now()
	for frame := 0; frame < frames; frame++ {
		select {
		case <-stopCh:
			logger.Info("interrupted", log.Int("frame", frame))
			return
		default:
		}

		delta := cfg.Run.FrameSeconds
		secondAcc += delta
		cycleAcc += delta

		w.UpdateFast(delta, input)
		if secondAcc >= 1 {
			secondAcc -= 1
			w.UpdateOnSecond(delta, input)
		}
		if cycleAcc >= cfg.Run.CycleSeconds {
			cycleAcc -= cfg.Run.CycleSeconds
			w.UpdateOnCycle(delta, input)
		}

		if err := w.Render(eng); err != nil {
			logger.Fatal("render aggregation failed", log.Error(err))
		}
	}

	logger.Info("demo finished",
		log.Duration("elapsed", time.Since(start)),
		log.Int("objects", w.CountObjects()),
		log.Int("updateables", w.CountUpdateables()),
		log.Int("renderables", w.CountRenderables()),
		log.Int("mesh_batches", len(eng.Batches())),
		log.Int("buffers_created", eng.CreatedBuffers()))
}

func logLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
