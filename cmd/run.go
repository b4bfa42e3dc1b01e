package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/abhisek/keypals/internal/content"
	"github.com/abhisek/keypals/internal/lessonplan"
	"github.com/abhisek/keypals/internal/llm"
	"github.com/abhisek/keypals/internal/logger"
	"github.com/abhisek/keypals/internal/store"
)

// engine holds everything a command needs to build and run lesson plans.
type engine struct {
	store   *store.Store
	log     *logger.Logger
	service *lessonplan.Service

	// live is false when no LLM provider is configured and every session
	// comes from the fallback library.
	live bool
}

// newEngine opens the store, builds the logger and provider, and wires the
// lesson service. When logToFile is set the log goes next to the database
// so it does not draw over the TUI.
func newEngine(ctx context.Context, logToFile bool) (*engine, error) {
	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}

	var paths []string
	if logToFile {
		paths = []string{filepath.Join(filepath.Dir(dbPath), "keypals.log")}
	}
	log, err := logger.New(viper.GetString("log-mode"), viper.GetString("log-level"), paths...)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	repo := st.EventRepo()

	cfg := lessonplan.DefaultConfig()
	cfg.OutlineEnabled = viper.GetBool("outline")

	sink := lessonplan.MultiSink{
		lessonplan.StoreSink{Repo: repo, Log: log},
		lessonplan.LogSink{Log: log},
	}

	e := &engine{store: st, log: log}

	var provider content.Provider
	p, err := llm.NewProviderFromEnv(ctx, repo, log)
	if err != nil {
		log.Warn("llm provider not configured, using built-in lessons", "error", err)
	} else {
		provider = content.NewLLMProvider(p, cfg.ContentConfig())
		e.live = true
	}

	e.service = lessonplan.NewService(provider, cfg, sink)
	return e, nil
}

func (e *engine) Close() {
	e.log.Sync()
	_ = e.store.Close()
}
