package main

import (
	"strings"

	"github.com/Belphemur/tvfinder/internal/client"
	"github.com/Belphemur/tvfinder/internal/config"
)

type clientFactory func(cfg *config.Config) client.Client

type commandContext struct {
	baseURLFlag *string
	newClient   clientFactory
}

func newCommandContext(baseURLFlag *string) *commandContext {
	return &commandContext{
		baseURLFlag: baseURLFlag,
		newClient:   client.NewClient,
	}
}

// configValue returns a copy of the loaded configuration with command-line
// overrides applied.
func (c *commandContext) configValue() *config.Config {
	cfg := &config.Config{}
	if loaded := config.GetConfig(); loaded != nil {
		copied := *loaded
		cfg = &copied
	}

	if c.baseURLFlag != nil {
		if baseURL := strings.TrimSpace(*c.baseURLFlag); baseURL != "" {
			cfg.TVMazeBaseURL = strings.TrimRight(baseURL, "/")
		}
	}
	return cfg
}

func (c *commandContext) withClient(fn func(client.Client) error) error {
	tvClient := c.newClient(c.configValue())
	defer tvClient.Close()
	return fn(tvClient)
}
