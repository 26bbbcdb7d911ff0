package trigger

import (
	"fmt"
	"net/http"
)

const (
	// RecentBuildsLimit is the number of most recent builds inspected to decide whether a project is active
	RecentBuildsLimit = 5

	// ReasonAlreadyRunning is the skip reason for projects with a build in progress
	ReasonAlreadyRunning = "Already running"
)

// Activity tells whether a project currently has a build in progress
type Activity string

const (
	ActivityIdle   Activity = "IDLE"
	ActivityActive Activity = "ACTIVE"
)

// Status is the per-project result of a trigger invocation
type Status string

const (
	StatusStarted Status = "STARTED"
	StatusSkipped Status = "SKIPPED"
	StatusError   Status = "ERROR"
)

// Outcome is the result for a single project; use Started, Skipped or Failed to create one
type Outcome struct {
	Project string `json:"project"`
	Status  Status `json:"status"`
	BuildID string `json:"buildId,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Started(project, buildID string) Outcome {
	return Outcome{Project: project, Status: StatusStarted, BuildID: buildID}
}

func Skipped(project, reason string) Outcome {
	return Outcome{Project: project, Status: StatusSkipped, Reason: reason}
}

func Failed(project string, err error) Outcome {
	return Outcome{Project: project, Status: StatusError, Error: err.Error()}
}

// Batch holds one outcome per configured project, in configured order
type Batch []Outcome

// Count returns the number of outcomes with the given status
func (b Batch) Count(status Status) (count int) {
	for _, o := range b {
		if o.Status == status {
			count++
		}
	}
	return
}

// ResponseBody is the body of the invocation response
type ResponseBody struct {
	Message string `json:"message"`
	Results Batch  `json:"results"`
}

// Response is the envelope returned by every successful invocation, even if all outcomes are errors
type Response struct {
	StatusCode int          `json:"statusCode"`
	Body       ResponseBody `json:"body"`
}

// NewResponse wraps a batch in the response envelope
func NewResponse(batch Batch) Response {
	return Response{
		StatusCode: http.StatusOK,
		Body: ResponseBody{
			Message: fmt.Sprintf("Processed %v projects", len(batch)),
			Results: batch,
		},
	}
}
