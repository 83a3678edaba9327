package md2html

import (
	"context"
	"runtime"
	"sync"
	"testing"
)

func TestConverterPoolAcquireRelease(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(2)
	if pool.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", pool.Size())
	}

	a := pool.Acquire()
	b := pool.Acquire()
	if a == nil || b == nil {
		t.Fatal("Acquire returned nil converter")
	}

	pool.Release(a)
	c := pool.Acquire()
	if c != a {
		t.Error("expected released converter to be reused")
	}
	pool.Release(b)
	pool.Release(c)
}

func TestConverterPoolSharesOptions(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(1, WithBaseURL("https://cdn.example"))
	conv := pool.Acquire()
	defer pool.Release(conv)

	result, err := conv.Convert(context.Background(), "[a](x.md)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<p>\n<a href=\"https://cdn.example/x.md\">a</a>\n</p>\n\n"
	if result.HTML != want {
		t.Errorf("HTML = %q, want %q", result.HTML, want)
	}
}

func TestConverterPoolMinimumSize(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(0)
	if pool.Size() != 1 {
		t.Errorf("Size() = %d, want 1", pool.Size())
	}
}

func TestConverterPoolConcurrent(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(4)
	var wg sync.WaitGroup

	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conv := pool.Acquire()
			defer pool.Release(conv)

			if _, err := conv.Convert(context.Background(), "# ok"); err != nil {
				t.Errorf("convert: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestConverterPoolClose(t *testing.T) {
	t.Parallel()

	t.Run("release after close is a no-op", func(t *testing.T) {
		t.Parallel()

		pool := NewConverterPool(1)
		conv := pool.Acquire()
		pool.Close()

		// Must not panic on the closed semaphore.
		pool.Release(conv)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		t.Parallel()

		pool := NewConverterPool(2)
		pool.Close()
		pool.Close()
	})

	t.Run("close unblocks a waiting acquire", func(t *testing.T) {
		t.Parallel()

		pool := NewConverterPool(1)
		conv := pool.Acquire()

		done := make(chan *Converter)
		go func() {
			done <- pool.Acquire()
		}()

		pool.Close()
		if got := <-done; got != nil {
			t.Errorf("Acquire on closed pool = %v, want nil", got)
		}
		_ = conv
	})
}

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{name: "explicit workers win", workers: 3, want: 3},
		{name: "explicit workers above cap still win", workers: 12, want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ResolvePoolSize(tt.workers); got != tt.want {
				t.Errorf("ResolvePoolSize(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}

	t.Run("auto-calculated size stays within bounds", func(t *testing.T) {
		t.Parallel()

		got := ResolvePoolSize(0)
		if got < MinPoolSize || got > MaxPoolSize {
			t.Errorf("ResolvePoolSize(0) = %d, want within [%d, %d] (GOMAXPROCS=%d)",
				got, MinPoolSize, MaxPoolSize, runtime.GOMAXPROCS(0))
		}
	})
}
