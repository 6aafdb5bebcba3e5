// README: Optional New Relic application for request tracing.
package infra

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"gocab/internal/config"
)

// NewNewRelic returns nil without error when APM is disabled or unlicensed.
func NewNewRelic(cfg config.NewRelicConfig) (*newrelic.Application, error) {
	if !cfg.Enabled || cfg.LicenseKey == "" {
		return nil, nil
	}
	return newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.AppName),
		newrelic.ConfigLicense(cfg.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
}
