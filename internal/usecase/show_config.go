package usecase

import (
	"context"

	"github.com/runoshun/todo/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct{}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	Effective *domain.Config    // Configuration in effect (defaults merged with the file)
	File      domain.ConfigInfo // Config file info
	TasksPath string            // Tasks file in use
}

// ShowConfig displays configuration file information.
type ShowConfig struct {
	configManager domain.ConfigManager
	configLoader  domain.ConfigLoader
	taskFile      domain.TaskFile
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configManager domain.ConfigManager, configLoader domain.ConfigLoader, taskFile domain.TaskFile) *ShowConfig {
	return &ShowConfig{
		configManager: configManager,
		configLoader:  configLoader,
		taskFile:      taskFile,
	}
}

// Execute retrieves configuration file information.
func (uc *ShowConfig) Execute(_ context.Context, _ ShowConfigInput) (*ShowConfigOutput, error) {
	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, err
	}
	return &ShowConfigOutput{
		Effective: cfg,
		File:      uc.configManager.ConfigInfo(),
		TasksPath: uc.taskFile.Path(),
	}, nil
}
