package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandfox-dev/foxchat/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"FOXCHAT_RUNTIME_PATH" envDefault:".foxchat"`

	// Search result cap for history lookups
	SearchLimit int `env:"FOXCHAT_SEARCH_LIMIT" envDefault:"50"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse app config")
	}
	if !filepath.IsAbs(c.RuntimePath) {
		c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "foxchat.db")
}

func (c AppConfig) GetLogPath() string {
	return filepath.Join(c.RuntimePath, "foxchat.log")
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}
