package e2etests

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
)

// Runner executes configreader commands against a sandbox directory.
type Runner struct {
	Cmd string // path to the configreader binary
}

// RunResult holds the output of a command execution.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// SandboxFile is the INI file every command in a sandbox operates on.
func SandboxFile(sandbox string) string {
	return filepath.Join(sandbox, "settings.ini")
}

// Run executes a configreader command with the given arguments.
// It sets CONFIGREADER_FILE so the command uses the sandbox's file, and
// runs in the sandbox so relative paths land there too.
func (r *Runner) Run(sandbox string, env []string, args ...string) RunResult {
	cmd := exec.Command(r.Cmd, args...)
	cmd.Dir = sandbox
	cmd.Env = append(os.Environ(), "CONFIGREADER_FILE="+SandboxFile(sandbox))
	cmd.Env = append(cmd.Env, env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
	}

	return RunResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// RunJSON executes a configreader command with --json appended.
func (r *Runner) RunJSON(sandbox string, args ...string) RunResult {
	fullArgs := append(args, "--json")
	return r.Run(sandbox, nil, fullArgs...)
}
