//go:build !windows

package cli

import (
	"context"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_SIGTERMStopsWhileChildRuns(t *testing.T) {
	if testing.Short() {
		t.Skip("launches real child processes and signals the test process")
	}
	args := stubArgs(t, "5s", "0")

	timer := time.AfterFunc(500*time.Millisecond, func() {
		syscall.Kill(os.Getpid(), syscall.SIGTERM)
	})
	defer timer.Stop()

	start := time.Now()
	stdout, stderr, err := execute(t, context.Background(), args...)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Equal(t, ExitInterrupted, ExitCode(err))
	assert.Less(t, elapsed, 3*time.Second, "the running child is not waited for")
	assert.Empty(t, stdout, "the interrupted run is not printed")
	assert.Contains(t, strings.ToLower(stderr), "iterations", "summary is still printed")
}
