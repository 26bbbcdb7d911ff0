package codebuildapi

import "time"

// BuildStatus is the status of a CodeBuild build as reported by the service
type BuildStatus string

const (
	BuildStatusSucceeded  BuildStatus = "SUCCEEDED"
	BuildStatusFailed     BuildStatus = "FAILED"
	BuildStatusFault      BuildStatus = "FAULT"
	BuildStatusTimedOut   BuildStatus = "TIMED_OUT"
	BuildStatusInProgress BuildStatus = "IN_PROGRESS"
	BuildStatusStopped    BuildStatus = "STOPPED"
)

// Build is a read-only view of a CodeBuild build
type Build struct {
	ID          string      `json:"id"`
	ProjectName string      `json:"projectName,omitempty"`
	Status      BuildStatus `json:"status"`
	StartTime   *time.Time  `json:"startTime,omitempty"`
}

// IsInProgress returns true if the build is still running
func (b Build) IsInProgress() bool {
	return b.Status == BuildStatusInProgress
}
