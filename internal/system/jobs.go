package system

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v4/process"
)

// ProcessTable answers parent/child questions about running processes.
type ProcessTable interface {
	Parent(ctx context.Context, pid int32) (int32, error)
	ChildCount(ctx context.Context, pid int32) (int, error)
}

// GopsutilTable reads the process table through gopsutil.
type GopsutilTable struct{}

func (GopsutilTable) Parent(ctx context.Context, pid int32) (int32, error) {
	proc, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return 0, err
	}
	return proc.PpidWithContext(ctx)
}

func (GopsutilTable) ChildCount(ctx context.Context, pid int32) (int, error) {
	proc, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return 0, err
	}
	children, err := proc.ChildrenWithContext(ctx)
	if errors.Is(err, process.ErrorNoChildren) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return len(children), nil
}

// JobCounter counts the background jobs of the interactive shell.
//
// The prompt runs inside a command substitution, so the parent process is a
// subshell and the interactive shell is one level further up. Every child of
// that shell except the subshell is a job.
type JobCounter struct {
	table ProcessTable
	ppid  func() int
}

// NewJobCounter creates a counter. A nil table uses gopsutil.
func NewJobCounter(table ProcessTable) *JobCounter {
	if table == nil {
		table = GopsutilTable{}
	}
	return &JobCounter{table: table, ppid: os.Getppid}
}

// Count returns the number of shell jobs.
func (c *JobCounter) Count(ctx context.Context) (int, error) {
	shell, err := c.table.Parent(ctx, int32(c.ppid()))
	if err != nil {
		return 0, fmt.Errorf("resolve shell pid: %w", err)
	}

	children, err := c.table.ChildCount(ctx, shell)
	if err != nil {
		return 0, fmt.Errorf("list shell children: %w", err)
	}

	if children <= 1 {
		return 0, nil
	}
	return children - 1, nil
}
