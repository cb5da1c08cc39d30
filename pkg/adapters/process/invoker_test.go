package process_test

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/aretw0/prettifier/pkg/adapters/process"
	"github.com/aretw0/prettifier/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX shell utilities")
	}
}

func TestInvoker_Invoke(t *testing.T) {
	skipOnWindows(t)
	inv := process.NewInvoker()
	ctx := context.Background()

	t.Run("Feeds Stdin And Returns Stdout", func(t *testing.T) {
		out := inv.Invoke(ctx, []string{"cat"}, "hello\n", time.Second)
		assert.True(t, out.Succeeded)
		assert.Equal(t, "hello\n", out.Output, "successful output is returned untrimmed")
	})

	t.Run("Blank Output Is A Failure", func(t *testing.T) {
		out := inv.Invoke(ctx, []string{"sh", "-c", "printf '  \\n'"}, "ignored", time.Second)
		assert.False(t, out.Succeeded)
		assert.Equal(t, "empty output", out.Output)
	})

	t.Run("Non-Zero Exit Reports Stderr", func(t *testing.T) {
		out := inv.Invoke(ctx, []string{"sh", "-c", "echo boom >&2; exit 3"}, "", time.Second)
		assert.False(t, out.Succeeded)
		assert.Equal(t, "boom", out.Output)
	})

	t.Run("Non-Zero Exit Without Stderr Reports Status", func(t *testing.T) {
		out := inv.Invoke(ctx, []string{"sh", "-c", "echo partial; exit 4"}, "", time.Second)
		assert.False(t, out.Succeeded)
		assert.Contains(t, out.Output, "exit status 4")
	})

	t.Run("Launch Error Carries Underlying Error", func(t *testing.T) {
		out := inv.Invoke(ctx, []string{"prettifier-no-such-renderer"}, "", time.Second)
		assert.False(t, out.Succeeded)
		assert.Contains(t, out.Output, "launch failed")
		assert.Contains(t, out.Output, "prettifier-no-such-renderer")
	})

	t.Run("Empty Command", func(t *testing.T) {
		out := inv.Invoke(ctx, nil, "", time.Second)
		assert.False(t, out.Succeeded)
		assert.Equal(t, "empty command", out.Output)
	})
}

func TestInvoker_Timeout(t *testing.T) {
	skipOnWindows(t)
	inv := process.NewInvoker(process.WithWaitDelay(500 * time.Millisecond))

	start := time.Now()
	out := inv.Invoke(context.Background(), []string{"sleep", "5"}, "", 100*time.Millisecond)
	elapsed := time.Since(start)

	assert.False(t, out.Succeeded)
	assert.Equal(t, domain.ErrTimedOut.Error(), out.Output)
	assert.Less(t, elapsed, 3*time.Second, "the child must be killed, not awaited")
}

func TestInvoker_TimeoutKillsProcessGroup(t *testing.T) {
	skipOnWindows(t)
	inv := process.NewInvoker(process.WithWaitDelay(500 * time.Millisecond))

	// The grandchild inherits stdout; without a group kill Run would block until it exits.
	start := time.Now()
	out := inv.Invoke(context.Background(), []string{"sh", "-c", "sleep 5 & sleep 5"}, "", 100*time.Millisecond)

	assert.False(t, out.Succeeded)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestInvoker_ParentCancellation(t *testing.T) {
	skipOnWindows(t)
	inv := process.NewInvoker()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	out := inv.Invoke(ctx, []string{"sleep", "5"}, "", 10*time.Second)

	assert.False(t, out.Succeeded)
	assert.Equal(t, "canceled", out.Output)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestInvoker_Env(t *testing.T) {
	skipOnWindows(t)
	inv := process.NewInvoker(process.WithEnv("PRETTIFIER_TEST_VALUE=SecretMessage"))

	out := inv.Invoke(context.Background(), []string{"sh", "-c", "echo $PRETTIFIER_TEST_VALUE"}, "", time.Second)
	assert.True(t, out.Succeeded)
	assert.Contains(t, out.Output, "SecretMessage")
}
