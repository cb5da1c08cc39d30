package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/aretw0/prettifier/pkg/domain"
)

// DefaultWaitDelay bounds how long Invoke waits for a killed child's pipes to close.
const DefaultWaitDelay = 2 * time.Second

// Invoker runs external renderers as child processes.
// It is stateless and safe for concurrent use.
type Invoker struct {
	defaultTimeout time.Duration
	waitDelay      time.Duration
	env            []string
}

// InvokerOption configures the invoker.
type InvokerOption func(*Invoker)

// WithTimeout sets the timeout used when a call passes zero.
func WithTimeout(d time.Duration) InvokerOption {
	return func(i *Invoker) {
		i.defaultTimeout = d
	}
}

// WithWaitDelay sets how long to wait for I/O after the child is killed.
func WithWaitDelay(d time.Duration) InvokerOption {
	return func(i *Invoker) {
		i.waitDelay = d
	}
}

// WithEnv appends KEY=VALUE pairs to the inherited environment of every child.
func WithEnv(env ...string) InvokerOption {
	return func(i *Invoker) {
		i.env = append(i.env, env...)
	}
}

// NewInvoker creates a new process Invoker.
func NewInvoker(opts ...InvokerOption) *Invoker {
	i := &Invoker{
		defaultTimeout: domain.DefaultTimeout,
		waitDelay:      DefaultWaitDelay,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Invoke runs argv with stdin as its standard input.
// Success requires a zero exit status and non-blank stdout. On timeout or
// cancellation the child's process group is killed and reaped before returning.
func (i *Invoker) Invoke(ctx context.Context, argv []string, stdin string, timeout time.Duration) domain.Outcome {
	if len(argv) == 0 || argv[0] == "" {
		return domain.Failure("empty command")
	}
	if timeout <= 0 {
		timeout = i.defaultTimeout
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, argv[0], argv[1:]...)
	if len(i.env) > 0 {
		cmd.Env = append(cmd.Environ(), i.env...)
	}
	cmd.Stdin = strings.NewReader(stdin)
	cmd.WaitDelay = i.waitDelay
	configureProcessGroup(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctx.Err() != nil {
		return domain.Failure("canceled")
	}
	if err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return domain.Failure(domain.ErrTimedOut.Error())
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				return domain.Failure(msg)
			}
			return domain.Failure(fmt.Sprintf("execution failed: %v", err))
		}
		return domain.Failure(fmt.Sprintf("launch failed: %v", err))
	}

	output := stdout.String()
	if strings.TrimSpace(output) == "" {
		return domain.Failure(domain.ErrEmptyOutput.Error())
	}
	return domain.Success(output)
}
