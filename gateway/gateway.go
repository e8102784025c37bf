// Package gateway spawns concrete invocations as child processes under a
// hard timeout and reports every outcome as data.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/ryanreadbooks/cmdgate/pkg/process"
	"github.com/ryanreadbooks/cmdgate/pkg/xstring"
	"github.com/ryanreadbooks/cmdgate/platform"
)

// How long a child that ignored the kill gets before its pipes are
// abandoned.
const killGracePeriod = 3 * time.Second

// Result is the closed set of execution outcomes. Exactly one failure field
// is meaningful: SpawnErr when the process never started, TimedOut when it
// was killed at the deadline; otherwise Exited and ExitCode describe a
// completed run. Output holds combined stdout and stderr in either case.
type Result struct {
	Output    string
	ExitCode  int
	Exited    bool
	TimedOut  bool
	Truncated bool
	SpawnErr  error
}

// Gateway runs invocations with a bounded number of concurrent child
// processes.
type Gateway struct {
	pool      *ants.Pool
	maxOutput int
}

func New(maxConcurrent, maxOutputChars int) (*Gateway, error) {
	pool, err := ants.NewPool(maxConcurrent, ants.WithPanicHandler(func(p any) {
		slog.Error("execution worker panic", "panic", p)
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to create execution pool: %w", err)
	}

	return &Gateway{
		pool:      pool,
		maxOutput: maxOutputChars,
	}, nil
}

// Close releases the worker pool.
func (g *Gateway) Close() {
	g.pool.Release()
}

// Run executes inv under timeout and never returns an error: every failure
// mode is a Result variant. The child is hard-killed when the timeout
// elapses; it receives no other cancellation signal.
func (g *Gateway) Run(ctx context.Context, inv platform.Invocation, workingDir string, timeout time.Duration) Result {
	done := make(chan Result, 1)
	err := g.pool.Submit(func() {
		done <- g.run(ctx, inv, workingDir, timeout)
	})
	if err != nil {
		return Result{SpawnErr: fmt.Errorf("execution pool rejected the request: %w", err)}
	}

	return <-done
}

func (g *Gateway) run(ctx context.Context, inv platform.Invocation, workingDir string, timeout time.Duration) Result {
	if wg := process.GetRootWaitGroup(ctx); wg != nil {
		wg.Add(1)
		defer wg.Done()
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, inv.Name, inv.Args...)
	cmd.WaitDelay = killGracePeriod
	if workingDir != "" {
		cmd.Dir = workingDir
	}

	output, err := cmd.CombinedOutput()

	var res Result
	res.Output, res.Truncated = g.truncate(output)

	if ctx.Err() == context.DeadlineExceeded {
		res.TimedOut = true
		return res
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.Exited = true
			res.ExitCode = exitErr.ExitCode()
			return res
		}

		res.SpawnErr = err
		return res
	}

	res.Exited = true
	return res
}

func (g *Gateway) truncate(output []byte) (string, bool) {
	if len(output) <= g.maxOutput {
		return xstring.FromBytes(output), false
	}

	more := len(output) - g.maxOutput
	return string(output[:g.maxOutput]) + fmt.Sprintf("\n... (truncated, %d more chars)", more), true
}
