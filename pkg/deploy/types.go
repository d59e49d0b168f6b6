package deploy

import (
	"fmt"
	"strings"
	"time"
)

// StepStatus is the outcome of a single provisioning step.
type StepStatus string

const (
	// StepOK means the step completed successfully.
	StepOK StepStatus = "ok"
	// StepFailed means the step failed and aborted the run.
	StepFailed StepStatus = "failed"
	// StepSkipped means the step did not run, either by configuration
	// or because an earlier step failed.
	StepSkipped StepStatus = "skipped"
)

// Step names in execution order.
const (
	StepPreflight = "preflight"
	StepEnvFile   = "envfile"
	StepLogDir    = "logdir"
	StepLaunch    = "launch"
	StepProbe     = "probe"
)

// StepResult records the outcome of one provisioning step.
type StepResult struct {
	Name     string        `json:"name" yaml:"name"`
	Status   StepStatus    `json:"status" yaml:"status"`
	Detail   string        `json:"detail,omitempty" yaml:"detail,omitempty"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Result aggregates the outcome of a deployment run.
type Result struct {
	Status    StepStatus    `json:"status" yaml:"status"`
	Steps     []StepResult  `json:"steps" yaml:"steps"`
	StartedAt time.Time     `json:"startedAt" yaml:"startedAt"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
}

// Failed reports whether any step failed.
func (r *Result) Failed() bool {
	return r.Status == StepFailed
}

// Summary renders the run as console text, one line per step.
func (r *Result) Summary() string {
	var b strings.Builder
	for _, step := range r.Steps {
		mark := "✓"
		switch step.Status {
		case StepFailed:
			mark = "✗"
		case StepSkipped:
			mark = "-"
		}
		fmt.Fprintf(&b, "%s %-10s %s\n", mark, step.Name, step.Detail)
	}
	if r.Failed() {
		fmt.Fprintf(&b, "\nDeployment failed after %s\n", r.Duration.Round(time.Millisecond))
	} else {
		fmt.Fprintf(&b, "\nDeployment completed in %s\n", r.Duration.Round(time.Millisecond))
	}
	return b.String()
}

// ToolCheck is the result of resolving one required executable on PATH.
type ToolCheck struct {
	Tool string `json:"tool" yaml:"tool"`
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
	Err  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// OK reports whether the tool was found.
func (c ToolCheck) OK() bool {
	return c.Err == ""
}
