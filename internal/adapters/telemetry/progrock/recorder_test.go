package progrock_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pipstep/internal/adapters/telemetry/progrock"
	"go.trai.ch/pipstep/internal/adapters/tui"
	"go.trai.ch/pipstep/internal/core/domain"
)

func TestRecorder_ReportsStepProgress(t *testing.T) {
	var buf bytes.Buffer
	recorder := progrock.NewRecorder(tui.NewProgress(&buf))
	ctx := context.Background()

	_, vertex := recorder.Record(ctx, "python-prettytable")

	_, err := vertex.Stdout().Write([]byte("Collecting PrettyTable==0.7.2\n"))
	require.NoError(t, err)
	_, err = vertex.Stderr().Write([]byte("DEPRECATION: python 2.7\n"))
	require.NoError(t, err)

	vertex.Log(domain.LogLevelInfo, "installed")
	vertex.Complete(nil)

	_, failed := recorder.Record(ctx, "broken")
	failed.Complete(errors.New("exit status 1"))

	require.NoError(t, recorder.Close())

	out := buf.String()
	assert.Contains(t, out, "▶ python-prettytable")
	assert.Contains(t, out, "✓ python-prettytable")
	assert.Contains(t, out, "✗ broken: exit status 1")
	assert.NotContains(t, out, "Collecting", "installer output stays in the vertex logs")
	assert.Equal(t, 1, strings.Count(out, "✓ python-prettytable"))
}
