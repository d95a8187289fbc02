package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirakinb/drop-card/internal/adapters/driven/config/file"
	"github.com/sirakinb/drop-card/internal/adapters/driven/llm/openai"
	"github.com/sirakinb/drop-card/internal/adapters/driven/storage/sqlite"
	"github.com/sirakinb/drop-card/internal/adapters/driving/cli"
	"github.com/sirakinb/drop-card/internal/core/ports/driven"
	"github.com/sirakinb/drop-card/internal/core/services"
	"github.com/sirakinb/drop-card/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	store, err := sqlite.NewStore(configStore.GetString(driven.ConfigKeyDataDir))
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing store: %v", err)
		}
	}()

	cardService := services.NewCardService(store)
	contactService := services.NewContactService(store)
	settingsService := services.NewSettingsService(store)

	settings, err := settingsService.Get(context.Background())
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	// The backend is optional; without a key the follow-up service
	// falls back to canned templates.
	var llm driven.LLMService
	if settings.AIAPIKey != "" {
		llm, err = openai.NewLLMService(openai.LLMConfig{
			APIKey:  settings.AIAPIKey,
			BaseURL: configStore.GetString(driven.ConfigKeyAIBaseURL),
			Model:   configStore.GetString(driven.ConfigKeyAIModel),
		})
		if err != nil {
			logger.Warn("AI backend unavailable: %v", err)
			llm = nil
		}
	}

	followUpService := services.NewFollowUpService(llm, settings.AIAPIKey)
	promptStore, err := file.NewPromptStore("")
	if err != nil {
		logger.Warn("prompt store unavailable, using built-in prompts: %v", err)
	} else {
		followUpService.SetPromptStore(promptStore)
	}

	cli.SetServices(cli.Services{
		Card:     cardService,
		Contact:  contactService,
		Settings: settingsService,
		FollowUp: followUpService,
		Config:   configStore,
	})

	return cli.Execute()
}
