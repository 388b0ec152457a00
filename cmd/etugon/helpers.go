package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/edulog/etugon/internal/api"
	"github.com/edulog/etugon/internal/common"
	"github.com/edulog/etugon/internal/config"
	"github.com/edulog/etugon/internal/form"
	"github.com/edulog/etugon/internal/sample"
	"github.com/edulog/etugon/internal/service"
	"github.com/spf13/viper"
)

// loadSettings reads the typed configuration from the global viper instance.
func loadSettings() (*config.Settings, error) {
	s, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("Invalid configuration: %v", err), err)
	}
	return s, nil
}

// newClient builds the backend client from settings.
func newClient(s *config.Settings) (*api.Client, error) {
	burst := max(1, int(s.API.RateLimit))
	client, err := api.NewClient(s.API.BaseURL,
		api.WithTimeout(s.API.Timeout),
		api.WithRateLimit(s.API.RateLimit, burst),
		api.WithRetry(service.RetryOptions{
			MaxAttempts:  s.API.MaxAttempts,
			InitialDelay: 250 * time.Millisecond,
			MaxDelay:     4 * time.Second,
			Multiplier:   2,
		}),
		api.WithUserAgent("etugon-cli/"+version),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create backend client: %w", err)
	}
	return client, nil
}

// reportBackend returns the in-memory sample store when useSample is set and
// the HTTP client otherwise.
func reportBackend(useSample bool, s *config.Settings) (service.ReportService, error) {
	if useSample {
		return sample.NewStore(), nil
	}
	return newClient(s)
}

// userID picks the flag value, then the configured id. With --sample the
// sample owner is used so "My Reports" is not empty.
func userID(flagValue int, useSample bool, s *config.Settings) int {
	switch {
	case flagValue > 0:
		return flagValue
	case s.UserID > 0:
		return s.UserID
	case useSample:
		return sample.OwnerID
	default:
		return 0
	}
}

// configPath is where settings are written back to.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return config.DefaultFile()
}

// formError turns a validation failure into the message shown to the user.
func formError(err error) error {
	var ve *form.ValidationError
	if errors.As(err, &ve) {
		return common.NewUserError(ve.Message, err)
	}
	return err
}
