package neighbours_test

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/proxima/neighbours"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions pins the documented defaults.
func TestDefaultOptions(t *testing.T) {
	o := neighbours.DefaultOptions()
	assert.Equal(t, 3.0, o.Cutoff)
	assert.Equal(t, neighbours.DefaultWorkers, o.Workers)
	assert.Nil(t, o.Logger)
	assert.Equal(t, o, neighbours.NewOptions())
}

// TestNewOptions applies functional options in order.
func TestNewOptions(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	o := neighbours.NewOptions(
		neighbours.WithCutoff(1.5),
		neighbours.WithWorkers(4),
		neighbours.WithLogger(logger),
		neighbours.WithRadii(0.5, 0.25),
	)
	assert.Equal(t, 0.75, o.Cutoff, "later option wins")
	assert.Equal(t, 4, o.Workers)
	assert.Same(t, logger, o.Logger)
}

// TestOptionConstructors_Panic verifies programmer-error panics.
func TestOptionConstructors_Panic(t *testing.T) {
	assert.Panics(t, func() { neighbours.WithCutoff(-0.1) })
	assert.Panics(t, func() { neighbours.WithCutoff(math.NaN()) })
	assert.Panics(t, func() { neighbours.WithWorkers(-2) })
	assert.Panics(t, func() { neighbours.WithRadii(-1, 2) })
	assert.NotPanics(t, func() { neighbours.WithWorkers(neighbours.AutoWorkers) })
	assert.NotPanics(t, func() { neighbours.WithCutoff(0) })
}

// TestCutoffFromRadii reproduces the reference derivation 1 + 2 = 3.
func TestCutoffFromRadii(t *testing.T) {
	c, err := neighbours.CutoffFromRadii(1, 2)
	require.NoError(t, err)
	assert.Equal(t, neighbours.DefaultCutoff, c)

	_, err = neighbours.CutoffFromRadii(-1, 2)
	assert.ErrorIs(t, err, neighbours.ErrBadRadius)
	_, err = neighbours.CutoffFromRadii(1, math.NaN())
	assert.ErrorIs(t, err, neighbours.ErrBadRadius)
}
