package deploy

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
)

// Launch starts the daemon in the background with stdout and stderr
// redirected to a log file under logDir. The process is placed in its own
// process group so it outlives the deployer. Returns the child PID.
func Launch(daemon string, args []string, logDir string) (int, error) {
	logPath := filepath.Join(logDir, filepath.Base(daemon)+".log")
	logFile, err := os.OpenFile(logPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o640)
	if err != nil {
		return 0, fmt.Errorf("failed to open daemon log %q: %w", logPath, err)
	}
	defer logFile.Close()

	cmd := exec.Command(daemon, args...)
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start daemon %q: %w", daemon, err)
	}

	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		return pid, fmt.Errorf("failed to release daemon process: %w", err)
	}
	return pid, nil
}
