package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandfox-dev/foxchat/pkg/log"
)

// GeminiConfig carries the external API credential and model selection.
// APIKey is deliberately not required: a missing key degrades the app to
// history/fact operations instead of refusing to start.
type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"FOXCHAT_MODEL" envDefault:"gemini-2.5-flash"`
}

func NewGeminiConfig(ctx context.Context) *GeminiConfig {
	c := &GeminiConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse gemini config")
	}
	return c
}

func (c GeminiConfig) IsConfigured() bool {
	return c.APIKey != ""
}
