package statvis_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/statvis"
)

func TestEagerResolveCopies(t *testing.T) {
	e := statvis.Eager{1, 2, 3}
	got, err := e.Resolve(context.Background())
	require.NoError(t, err)
	got[0] = 99
	assert.Equal(t, statvis.Eager{1, 2, 3}, e)
}

func TestDeferredFetchesOnce(t *testing.T) {
	var calls atomic.Int32
	d := statvis.NewDeferred(func() ([]float64, error) {
		calls.Add(1)
		return []float64{4, 5}, nil
	})
	assert.Zero(t, calls.Load(), "fetch must wait for Resolve")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := d.Resolve(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, []float64{4, 5}, got)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
}

func TestDeferredCancelOnlyStopsWaiting(t *testing.T) {
	release := make(chan struct{})
	d := statvis.NewDeferred(func() ([]float64, error) {
		<-release
		return []float64{7}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := d.Resolve(ctx)
	require.ErrorIs(t, err, context.Canceled)

	close(release)
	got, err := d.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, got)
}

func TestDeferredError(t *testing.T) {
	boom := errors.New("boom")
	d := statvis.NewDeferred(func() ([]float64, error) { return nil, boom })
	_, err := d.Resolve(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = statvis.NewDeferred(nil).Resolve(context.Background())
	assert.ErrorIs(t, err, statvis.ErrInvalidInput)
}

func TestNewSample(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		data any
		want []float64
	}{
		{[]float64{1.5, 2}, []float64{1.5, 2}},
		{[]int{1, -2, 3}, []float64{1, -2, 3}},
		{[]uint8{7}, []float64{7}},
		{[3]float32{0.5, 1, 2}, []float64{0.5, 1, 2}},
		{statvis.Eager{9}, []float64{9}},
		{func() ([]int64, error) { return []int64{4, 2}, nil }, []float64{4, 2}},
		{func() ([]float64, error) { return []float64{8}, nil }, []float64{8}},
	}
	for i, tc := range tests {
		s, err := statvis.NewSample(tc.data)
		require.NoError(t, err, "case %d", i)
		got, err := s.Resolve(ctx)
		require.NoError(t, err, "case %d", i)
		assert.Equal(t, tc.want, got, "case %d", i)
	}
}

func TestNewSampleRejectsNilFunctions(t *testing.T) {
	var ints func() ([]int, error)
	var floats func() ([]float64, error)
	var deferred *statvis.Deferred
	for _, data := range []any{ints, floats, deferred} {
		_, err := statvis.NewSample(data)
		assert.ErrorIs(t, err, statvis.ErrInvalidInput, "%T", data)
	}
}

func TestNewSampleRejects(t *testing.T) {
	for _, data := range []any{nil, "1 2 3", []string{"1"}, 42, func() int { return 1 }} {
		_, err := statvis.NewSample(data)
		assert.ErrorIs(t, err, statvis.ErrInvalidInput, "%T", data)
	}

	s, err := statvis.NewSample(func() ([]string, error) { return []string{"x"}, nil })
	require.NoError(t, err)
	_, err = s.Resolve(context.Background())
	assert.ErrorIs(t, err, statvis.ErrInvalidInput)
}
