package parity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCompareDefaultFixture(t *testing.T) {
	rep, err := Compare(context.Background(), DefaultFixture(), WithLogger(quietLogger()))
	require.NoError(t, err)

	assert.Equal(t, DefaultPlaces, rep.Places)
	assert.InDelta(t, 7.34635279, rep.Ours, 1e-8)
	assert.InDelta(t, 7.34635, rep.Rounded, 1e-12)
	require.Len(t, rep.References, 2)
	for _, r := range rep.References {
		assert.Equal(t, rep.Rounded, r.Rounded, r.Name)
	}
}

func TestCompareMismatch(t *testing.T) {
	off := Oracle{
		Name: "off",
		Func: func(a, b, d [][]float64) (float64, error) { return 7.3464, nil },
	}

	rep, err := Compare(context.Background(), DefaultFixture(),
		WithLogger(quietLogger()),
		WithOracles(off),
	)
	assert.ErrorIs(t, err, ErrMismatch)
	require.Len(t, rep.References, 1)
	assert.InDelta(t, 7.3464, rep.References[0].Rounded, 1e-12)

	// The same oracle agrees at three places.
	_, err = Compare(context.Background(), DefaultFixture(),
		WithLogger(quietLogger()),
		WithOracles(off),
		WithPlaces(3),
	)
	assert.NoError(t, err)
}

func TestCompareOracleError(t *testing.T) {
	boom := errors.New("boom")
	failing := Oracle{
		Name: "failing",
		Func: func(a, b, d [][]float64) (float64, error) { return 0, boom },
	}

	_, err := Compare(context.Background(), DefaultFixture(),
		WithLogger(quietLogger()),
		WithOracles(failing),
	)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrMismatch)
}

func TestCompareCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Compare(ctx, DefaultFixture(), WithLogger(quietLogger()))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOursShapeErrors(t *testing.T) {
	f := DefaultFixture()
	f.D = [][]float64{{1, 2}, {3, 4}}

	_, err := Ours(f)
	assert.Error(t, err)

	_, err = Compare(context.Background(), f, WithLogger(quietLogger()))
	assert.Error(t, err)
}
