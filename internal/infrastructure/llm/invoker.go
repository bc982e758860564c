package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/doeshing/wiz/internal/domain"
	"github.com/doeshing/wiz/internal/ports"
)

// SubprocessInvoker runs the external `llm` tool once per request.
type SubprocessInvoker struct {
	binary    string
	model     string
	extraArgs []string
	logger    ports.Logger
}

// NewSubprocessInvoker builds an invoker, binary and model default to the llm CLI defaults.
func NewSubprocessInvoker(settings domain.LLMSettings, log ports.Logger) *SubprocessInvoker {
	binary := settings.Binary
	if binary == "" {
		binary = domain.DefaultLLMBinary
	}
	model := settings.Model
	if model == "" {
		model = domain.DefaultLLMModel
	}
	return &SubprocessInvoker{
		binary:    binary,
		model:     model,
		extraArgs: settings.ExtraArgs,
		logger:    log,
	}
}

// Args returns the argument vector for req, without the binary name.
func (i *SubprocessInvoker) Args(req domain.InvocationRequest) []string {
	args := []string{"-m", i.model, "--no-stream", "--log"}
	args = append(args, i.extraArgs...)
	args = append(args, "-d", req.LogStorePath, "-s", req.SystemPrompt)
	if !req.Kind.PipesPayload() {
		args = append(args, req.Payload)
	}
	return args
}

// Invoke implements ports.Invoker. There are no retries.
func (i *SubprocessInvoker) Invoke(ctx context.Context, req domain.InvocationRequest) (domain.InvocationResult, error) {
	c := exec.CommandContext(ctx, i.binary, i.Args(req)...)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	if req.Kind.PipesPayload() {
		c.Stdin = strings.NewReader(req.Payload)
	}

	i.debug("spawning llm", req, map[string]interface{}{"binary": i.binary, "model": i.model})

	start := time.Now()
	err := c.Run()
	duration := time.Since(start).Milliseconds()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result := domain.InvocationResult{
			Succeeded: false,
			ExitCode:  exitErr.ExitCode(),
			Stderr:    stderr.String(),
		}
		i.debug("llm exited non-zero", req, map[string]interface{}{"exit_code": result.ExitCode, "duration_ms": duration})
		return result, &domain.SubprocessError{ExitCode: result.ExitCode, Stderr: result.Stderr}
	}
	if err != nil {
		return domain.InvocationResult{}, fmt.Errorf("%w: %s: %w", domain.ErrToolUnavailable, i.binary, err)
	}

	i.debug("llm finished", req, map[string]interface{}{"duration_ms": duration, "stdout_bytes": stdout.Len()})
	return domain.InvocationResult{
		Succeeded: true,
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
	}, nil
}

func (i *SubprocessInvoker) debug(msg string, req domain.InvocationRequest, fields map[string]interface{}) {
	if i.logger == nil {
		return
	}
	fields["invocation_id"] = req.ID
	fields["task"] = req.Kind.String()
	i.logger.Debug(msg, fields)
}

var _ ports.Invoker = (*SubprocessInvoker)(nil)
