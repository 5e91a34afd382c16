package model

import "time"

// Step status values recorded in a RunResult.
const (
	StepExecuted = "executed"
	StepSkipped  = "skipped"
	StepPlanned  = "planned"
)

// StepResult records the outcome of a single workflow step.
type StepResult struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// RunResult summarizes a release run.
type RunResult struct {
	Timestamp   time.Time    `json:"timestamp"`
	DryRun      bool         `json:"dryRun"`
	Repo        RepoRef      `json:"repo"`
	PackageName string       `json:"packageName"`
	Version     string       `json:"version"`
	Tag         string       `json:"tag"`
	TagCreated  bool         `json:"tagCreated"`
	ReleaseNew  bool         `json:"releaseNew"`
	Artifacts   []string     `json:"artifacts,omitempty"`
	Steps       []StepResult `json:"steps"`
}

// AddStep appends a step outcome to the run.
func (r *RunResult) AddStep(name, status, detail string) {
	r.Steps = append(r.Steps, StepResult{Name: name, Status: status, Detail: detail})
}
