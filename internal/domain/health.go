package domain

// HealthStatus grades one doctor check. Warn covers degraded-but-usable
// states, such as a missing speech program or an empty commands directory.
type HealthStatus string

const (
	HealthOK    HealthStatus = "ok"
	HealthWarn  HealthStatus = "warn"
	HealthError HealthStatus = "error"
)

// HealthCheck is one diagnostic result.
type HealthCheck struct {
	Name    string
	Status  HealthStatus
	Details string
}

// HealthReport aggregates the doctor checks for one run.
type HealthReport struct {
	Checks []HealthCheck
}

// Healthy reports whether no check failed outright. Warnings do not count
// against health.
func (r HealthReport) Healthy() bool {
	for _, check := range r.Checks {
		if check.Status == HealthError {
			return false
		}
	}
	return true
}
