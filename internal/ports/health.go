package ports

import "context"

// HealthChecker defines the contract for component health checking
type HealthChecker interface {
	Check(ctx context.Context) HealthStatus
}

// HealthStatus represents the health status of a component
type HealthStatus struct {
	Component string                 `json:"component" yaml:"component"`
	Status    string                 `json:"status" yaml:"status"`
	Details   map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
	Error     string                 `json:"error,omitempty" yaml:"error,omitempty"`
}

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker interface {
	CheckAll(ctx context.Context) map[string]HealthStatus
}
