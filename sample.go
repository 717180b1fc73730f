package statvis

import (
	"context"
	"fmt"
	"reflect"
	"sync"
)

// Sample is the data drawn by a widget: either an Eager slice of values
// or a Deferred fetch which yields them on first use.
type Sample interface {
	// Resolve returns the values of the sample. It blocks until a
	// deferred fetch completes or ctx is done.
	Resolve(ctx context.Context) ([]float64, error)

	sample()
}

// Eager is a sample whose values are known up front.
type Eager []float64

var _ Sample = Eager(nil)

// Resolve returns a copy of e.
func (e Eager) Resolve(ctx context.Context) ([]float64, error) {
	c := make([]float64, len(e))
	copy(c, e)
	return c, nil
}

func (Eager) sample() {}

// Deferred is a sample produced by a fetch function. The fetch runs at
// most once, on the first call to Resolve; all callers share its result.
type Deferred struct {
	fetch func() ([]float64, error)
	once  sync.Once
	done  chan struct{}

	values []float64
	err    error
}

var _ Sample = (*Deferred)(nil)

// NewDeferred wraps fetch into a Sample.
func NewDeferred(fetch func() ([]float64, error)) *Deferred {
	return &Deferred{
		fetch: fetch,
		done:  make(chan struct{}),
	}
}

// Resolve starts the fetch if needed and waits for it. A cancelled ctx
// only stops the waiting; the fetch itself runs to completion and its
// result serves later calls.
func (d *Deferred) Resolve(ctx context.Context) ([]float64, error) {
	d.once.Do(func() {
		go func() {
			defer close(d.done)
			if d.fetch == nil {
				d.err = fmt.Errorf("Deferred: nil fetch: %w", ErrInvalidInput)
				return
			}
			d.values, d.err = d.fetch()
		}()
	})

	select {
	case <-d.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if d.err != nil {
		return nil, d.err
	}
	c := make([]float64, len(d.values))
	copy(c, d.values)
	return c, nil
}

func (*Deferred) sample() {}

// NewSample converts data into a Sample. Data may already be a Sample,
// a slice or array of any integer or floating point type, or a function
// returning such a slice and an error, which becomes a Deferred sample.
func NewSample(data any) (Sample, error) {
	if data == nil {
		return nil, fmt.Errorf("NewSample: nil data: %w", ErrInvalidInput)
	}
	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Func, reflect.Pointer:
		if v.IsNil() {
			return nil, fmt.Errorf("NewSample: nil %T: %w", data, ErrInvalidInput)
		}
	}

	switch d := data.(type) {
	case Sample:
		return d, nil
	case []float64:
		return Eager(d), nil
	case func() ([]float64, error):
		return NewDeferred(d), nil
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return numbers(v)
	case reflect.Func:
		t := v.Type()
		if t.NumIn() == 0 && t.NumOut() == 2 && t.Out(1) == reflect.TypeOf((*error)(nil)).Elem() {
			return NewDeferred(func() ([]float64, error) {
				out := v.Call(nil)
				if err, _ := out[1].Interface().(error); err != nil {
					return nil, err
				}
				s, err := numbers(out[0])
				if err != nil {
					return nil, err
				}
				return s.(Eager), nil
			}), nil
		}
	}
	return nil, fmt.Errorf("NewSample: cannot use %T as sample: %w", data, ErrInvalidInput)
}

// numbers copies the numeric elements of the slice or array v.
func numbers(v reflect.Value) (Sample, error) {
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, fmt.Errorf("NewSample: %s is not a slice: %w", v.Type(), ErrInvalidInput)
	}
	n := v.Len()
	e := make(Eager, n)
	for i := 0; i < n; i++ {
		elem := v.Index(i)
		switch elem.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			e[i] = float64(elem.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			e[i] = float64(elem.Uint())
		case reflect.Float32, reflect.Float64:
			e[i] = elem.Float()
		default:
			return nil, fmt.Errorf("NewSample: element type %s is not numeric: %w",
				elem.Type(), ErrInvalidInput)
		}
	}
	return e, nil
}
