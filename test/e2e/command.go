package e2e

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/vladimirvivien/gexe/exec"
)

// CommandOutput holds what a finished command wrote.
type CommandOutput struct {
	Stdout string
	Stderr string
}

func runCommand(command string, env []string) (CommandOutput, error) {
	stdout := bytes.NewBufferString("")
	stderr := bytes.NewBufferString("")

	proc := exec.NewProc(command)
	proc.Command().Stdout = stdout
	proc.Command().Stderr = stderr

	if len(env) > 0 {
		proc.Command().Env = env
	}

	proc.Start().Wait()

	ret := CommandOutput{Stdout: stdout.String(), Stderr: stderr.String()}

	err := proc.Err()
	if err != nil {
		return ret, fmt.Errorf("failed to run command (%w): stdout:%s stderr:%s", err, ret.Stdout, ret.Stderr)
	}

	return ret, nil
}

// BuildNotifier compiles the notifier binary into output.
func BuildNotifier(output string) error {
	_, err := runCommand(fmt.Sprintf("go build -o %s ../../cmd/eks-notifier", output), nil)
	if err != nil {
		return fmt.Errorf("failed to build notifier: %w", err)
	}

	return nil
}

func runNotifier(binary string, args []string, env map[string]string) (CommandOutput, error) {
	envs := make([]string, 0, len(env))
	for key, value := range env {
		envs = append(envs, fmt.Sprintf("%s=%s", key, value))
	}

	command := strings.Join(append([]string{binary}, args...), " ")

	return runCommand(command, envs)
}
