// Package health derives the normalized health record shared by every
// transport. This is the only component with decision logic: it folds
// the downstream connectivity outcome into one status value.
package health

import (
	"context"
	"time"

	"github.com/metalops/ironic-aio/internal/config"
	"github.com/metalops/ironic-aio/internal/metrics"
)

// Status is the overall health of the service.
type Status string

const (
	// StatusHealthy means the service and its downstream are fine.
	StatusHealthy Status = "healthy"
	// StatusDegraded means the service is up but Ironic is unreachable.
	StatusDegraded Status = "degraded"
	// StatusUnhealthy is reserved for a failed local self-check. No
	// code path produces it today.
	StatusUnhealthy Status = "unhealthy"
)

// Record is the health payload returned by every transport. It is
// built fresh on each check and never mutated.
type Record struct {
	Status           Status    `json:"status"`
	Version          string    `json:"version"`
	Timestamp        time.Time `json:"timestamp"`
	IronicConnected  bool      `json:"ironic_connected"`
	IronicAPIVersion *string   `json:"ironic_api_version"`
}

// ConnectivityChecker reports downstream reachability. Failures have
// already been absorbed into the boolean by the implementation.
type ConnectivityChecker interface {
	CheckConnectivity(ctx context.Context) bool
}

// Service aggregates local settings and downstream connectivity into a
// Record.
type Service struct {
	settings config.Settings
	checker  ConnectivityChecker
}

// NewService creates a health service from a settings snapshot and a
// connectivity checker.
func NewService(settings config.Settings, checker ConnectivityChecker) *Service {
	return &Service{settings: settings, checker: checker}
}

// Check performs one health aggregation. It never fails: the
// connectivity checker has already converted every downstream error
// into false.
func (s *Service) Check(ctx context.Context) Record {
	connected := s.checker.CheckConnectivity(ctx)

	status := StatusHealthy
	if !connected {
		status = StatusDegraded
	}

	var apiVersion *string
	if connected {
		v := s.settings.IronicAPIVersion
		apiVersion = &v
	}

	metrics.HealthChecks.WithLabelValues(string(status)).Inc()

	return Record{
		Status:           status,
		Version:          s.settings.ServiceVersion,
		Timestamp:        time.Now().UTC(),
		IronicConnected:  connected,
		IronicAPIVersion: apiVersion,
	}
}
