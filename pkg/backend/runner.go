package backend

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/arthur-debert/edir/pkg/logging"
)

// Runner executes external commands such as git and the trash program
type Runner interface {
	// Run executes name with args and returns trimmed stdout and stderr.
	// err is non-nil when the command could not start or exited non-zero.
	Run(name string, args ...string) (stdout, stderr string, err error)
}

// ExecRunner runs commands with os/exec in the current directory
type ExecRunner struct{}

// NewExecRunner creates a runner for real commands
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run implements Runner
func (r *ExecRunner) Run(name string, args ...string) (string, string, error) {
	logging.LogCommand(name, args)

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return strings.TrimSpace(stdout.String()), strings.TrimSpace(stderr.String()), err
}

// commandDetail picks the most useful text from a failed command
func commandDetail(stderr string, err error) string {
	if stderr != "" {
		return stderr
	}
	return err.Error()
}
