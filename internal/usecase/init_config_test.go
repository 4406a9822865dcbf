package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Execute(t *testing.T) {
	manager := testutil.NewMockConfigManager()
	uc := NewInitConfig(manager)

	out, err := uc.Execute(context.Background(), InitConfigInput{})

	require.NoError(t, err)
	assert.True(t, manager.InitCalled)
	assert.Equal(t, domain.NewDefaultConfig(), manager.InitWith)
	assert.Equal(t, "/home/test/.config/todo/config.toml", out.Path)
}

func TestInitConfig_Execute_Exists(t *testing.T) {
	manager := testutil.NewMockConfigManager()
	manager.InitErr = domain.ErrConfigExists
	uc := NewInitConfig(manager)

	_, err := uc.Execute(context.Background(), InitConfigInput{Config: domain.NewDefaultConfig()})

	assert.ErrorIs(t, err, domain.ErrConfigExists)
}
