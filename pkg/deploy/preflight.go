package deploy

import (
	"fmt"
	"os/exec"
)

// CheckTools resolves each required executable on PATH. Every tool is
// checked, even after a failure, so the operator sees all missing tools
// in a single run.
func CheckTools(tools []string) []ToolCheck {
	out := make([]ToolCheck, 0, len(tools))
	for _, tool := range tools {
		check := ToolCheck{Tool: tool}
		path, err := exec.LookPath(tool)
		if err != nil {
			check.Err = fmt.Sprintf("%q not found on PATH", tool)
		} else {
			check.Path = path
		}
		out = append(out, check)
	}
	return out
}

// FirstMissing returns the first failed check, if any.
func FirstMissing(checks []ToolCheck) (ToolCheck, bool) {
	for _, c := range checks {
		if !c.OK() {
			return c, true
		}
	}
	return ToolCheck{}, false
}
