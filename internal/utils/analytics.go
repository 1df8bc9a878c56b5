// analytics.go wraps the PostHog client so callers never have to care
// whether event capture is configured.
package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// AnalyticsClient wraps posthog.Client and degrades to a no-op when no API
// key is configured or the client fails to start.
type AnalyticsClient struct {
	client posthog.Client
	logger *slog.Logger
}

func NewAnalyticsClient(apiKey, endpoint string, logger *slog.Logger) *AnalyticsClient {
	if apiKey == "" {
		logger.Warn("Analytics API key is empty, event capture disabled.")
		return &AnalyticsClient{}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Error("Failed to initialize analytics client", slog.String("error", err.Error()))
		return &AnalyticsClient{}
	}
	return &AnalyticsClient{client: client, logger: logger}
}

func (a *AnalyticsClient) IsInitialized() bool {
	return a.client != nil
}

// Enqueue buffers one event for delivery. Enqueueing never blocks the
// request path; delivery failures are the client library's problem.
func (a *AnalyticsClient) Enqueue(distinctID, event string, properties map[string]any) {
	if a.client == nil {
		return
	}
	if err := a.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	}); err != nil && a.logger != nil {
		a.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes buffered events. Call on shutdown.
func (a *AnalyticsClient) Close() {
	if a.client == nil {
		return
	}
	a.client.Close()
}
