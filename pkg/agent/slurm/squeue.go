// Package slurm reads the workload scheduler's queue.
package slurm

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// StateRunning is the scheduler state of interest to the grace sweep.
const StateRunning = "RUNNING"

// Job is one row of the scheduler queue.
type Job struct {
	JobID          int
	Username       string
	State          string
	RunTimeSeconds int
}

// Client reads the queue via the squeue binary.
type Client struct {
	squeuePath string
}

// NewClient creates a queue reader using the given squeue binary.
func NewClient(squeuePath string) *Client {
	return &Client{squeuePath: squeuePath}
}

// Queue returns the current scheduler queue. An empty queue yields an
// empty slice.
func (c *Client) Queue(ctx context.Context) ([]Job, error) {
	cmd := exec.CommandContext(ctx, c.squeuePath, "--noheader", "--format=%A\t%u\t%T\t%M")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("squeue failed: %w", err)
	}
	return ParseQueue(stdout.String())
}

// ParseQueue parses squeue output: one job per line with tab-separated
// job id, user, state and run time.
func ParseQueue(output string) ([]Job, error) {
	var jobs []Job
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 4 {
			return nil, fmt.Errorf("malformed squeue line %q", line)
		}

		jobID, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("bad job id in squeue line %q", line)
		}
		runTime, err := ParseRunTime(fields[3])
		if err != nil {
			return nil, err
		}

		jobs = append(jobs, Job{
			JobID:          jobID,
			Username:       fields[1],
			State:          fields[2],
			RunTimeSeconds: runTime,
		})
	}
	return jobs, nil
}

// ParseRunTime converts squeue's elapsed time format, [[DD-]HH:]MM:SS,
// to seconds.
func ParseRunTime(value string) (int, error) {
	days := 0
	rest := value
	if before, after, found := strings.Cut(value, "-"); found {
		d, err := strconv.Atoi(before)
		if err != nil {
			return 0, fmt.Errorf("bad run time %q", value)
		}
		days = d
		rest = after
	}

	parts := strings.Split(rest, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("bad run time %q", value)
	}

	seconds := 0
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("bad run time %q", value)
		}
		seconds = seconds*60 + n
	}
	return days*24*3600 + seconds, nil
}
