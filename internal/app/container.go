package app

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/HarshaNaik703/Shibu-Robo/internal/application/doctor"
	"github.com/HarshaNaik703/Shibu-Robo/internal/application/resolver"
	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
	"github.com/HarshaNaik703/Shibu-Robo/internal/infrastructure/advisory"
	"github.com/HarshaNaik703/Shibu-Robo/internal/infrastructure/ai"
	"github.com/HarshaNaik703/Shibu-Robo/internal/infrastructure/config"
	"github.com/HarshaNaik703/Shibu-Robo/internal/infrastructure/executor"
	"github.com/HarshaNaik703/Shibu-Robo/internal/infrastructure/history"
	"github.com/HarshaNaik703/Shibu-Robo/internal/infrastructure/match"
	"github.com/HarshaNaik703/Shibu-Robo/internal/infrastructure/narration"
	"github.com/HarshaNaik703/Shibu-Robo/internal/infrastructure/registry"
	"github.com/HarshaNaik703/Shibu-Robo/internal/pkg/logger"
	"github.com/HarshaNaik703/Shibu-Robo/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	ResolverService *resolver.Service
	DoctorService   *doctor.Service
	ConfigLoader    *config.FileLoader
	Registry        *registry.DirRegistry
	HistoryStore    ports.HistoryRepository
	Config          domain.Config
	Logger          ports.Logger

	narrationWorker *narration.Worker
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	// The advisory credential traditionally lives in a .env file next to the
	// robot's working directory; loading it is best-effort.
	_ = godotenv.Load()

	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)
	reg := registry.NewDirRegistry(cfg.Registry.Dir)

	// ai.NewClient returns nil when no endpoint is configured; keep the
	// interface nil in that case so the matcher stays in overlap mode.
	var backend ports.ModelBackend
	if client := ai.NewClient(cfg.Model); client != nil {
		backend = client
	}

	var narrator ports.Narrator = narration.Nop{}
	var worker *narration.Worker
	if cfg.Narration.Enabled {
		worker = narration.NewWorker(narration.NewSpeaker(cfg.Narration.SpeechProgram), cfg.Narration.QueueSize, log)
		narrator = worker
	}

	var historyStore ports.HistoryRepository
	if cfg.History.Enabled {
		historyStore = history.NewSQLiteStore()
	}

	resolverService := &resolver.Service{
		Registry:      reg,
		ExactMatcher:  match.NewExactMatcher(),
		ApproxMatcher: match.NewApproximateMatcher(backend, cfg.Model.MaxTokens, log),
		Advisory:      advisory.NewGemini(cfg.Advisory, log),
		Executor:      executor.NewLocalExecutor(cfg.Registry, cfg.Execution),
		Narrator:      narrator,
		HistoryStore:  historyStore,
		Logger:        log,
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		Registry:       reg,
	}

	return &Container{
		ResolverService: resolverService,
		DoctorService:   doctorService,
		ConfigLoader:    cfgLoader,
		Registry:        reg,
		HistoryStore:    historyStore,
		Config:          cfg,
		Logger:          log,
		narrationWorker: worker,
	}, nil
}

// Close drains the narration queue so final status lines get spoken.
func (c *Container) Close() {
	if c.narrationWorker != nil {
		c.narrationWorker.Close()
	}
}
