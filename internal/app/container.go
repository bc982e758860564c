package app

import (
	"context"

	"github.com/doeshing/wiz/internal/application/command"
	"github.com/doeshing/wiz/internal/application/doctor"
	"github.com/doeshing/wiz/internal/application/logs"
	"github.com/doeshing/wiz/internal/application/spell"
	"github.com/doeshing/wiz/internal/domain"
	"github.com/doeshing/wiz/internal/infrastructure/config"
	"github.com/doeshing/wiz/internal/infrastructure/llm"
	"github.com/doeshing/wiz/internal/infrastructure/logstore"
	"github.com/doeshing/wiz/internal/pkg/filesystem"
	"github.com/doeshing/wiz/internal/pkg/logger"
	"github.com/doeshing/wiz/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config         domain.Config
	Logger         *logger.ZapLogger
	CommandService *command.Service
	SpellService   *spell.Service
	LogsService    *logs.Service
	DoctorService  *doctor.Service
}

// ProgressFactory builds the indicator from the loaded settings.
type ProgressFactory func(domain.ProgressSettings) ports.Progress

// BuildContainer constructs the dependency graph. Both tasks share one
// progress indicator so a process never animates twice.
func BuildContainer(ctx context.Context, verbose bool, newProgress ProgressFactory) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.New(verbose)
	log.Debug("configuration loaded", map[string]interface{}{"path": cfgLoader.Path(), "model": cfg.LLM.Model})

	progress := newProgress(cfg.Progress)
	stores := filesystem.StoreLocator{Override: cfg.DataDir}
	invoker := llm.NewSubprocessInvoker(cfg.LLM, log)
	logStore := logstore.NewSQLiteStore()

	return &Container{
		Config: cfg,
		Logger: log,
		CommandService: &command.Service{
			Invoker:  invoker,
			Progress: progress,
			Stores:   stores,
			Logger:   log,
			Shell:    cfg.GetShell(),
		},
		SpellService: &spell.Service{
			Invoker:  invoker,
			Progress: progress,
			Stores:   stores,
			Logger:   log,
		},
		LogsService: &logs.Service{
			Store:        logStore,
			Stores:       stores,
			Logger:       log,
			DefaultLimit: cfg.GetHistoryLimit(),
		},
		DoctorService: &doctor.Service{
			ConfigProvider: cfgLoader,
			Stores:         stores,
			LogStore:       logStore,
		},
	}, nil
}
