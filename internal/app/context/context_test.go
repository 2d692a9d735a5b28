package appctx_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appctx "github.com/jsamuelsen11/tenant-console/internal/app/context"
)

type tenantView struct {
	ID   string
	Name string
}

var errNotFound = errors.New("tenant not found")

func counting(v *tenantView, err error) (func(context.Context) (*tenantView, error), *atomic.Int32) {
	var calls atomic.Int32
	return func(context.Context) (*tenantView, error) {
		calls.Add(1)
		return v, err
	}, &calls
}

func TestFetch(t *testing.T) {
	t.Parallel()

	acme := &tenantView{ID: "t-1", Name: "Acme"}

	tests := []struct {
		name      string
		result    *tenantView
		err       error
		wantCalls int32
	}{
		{name: "value memoized", result: acme, wantCalls: 1},
		{name: "error memoized", err: errNotFound, wantCalls: 1},
		{name: "cancellation not memoized", err: context.Canceled, wantCalls: 2},
		{name: "deadline not memoized", err: context.DeadlineExceeded, wantCalls: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rc := appctx.New(context.Background())
			key := appctx.NewKey[*tenantView]("tenant:t-1")
			fetch, calls := counting(tt.result, tt.err)

			for range 2 {
				got, err := appctx.Fetch(rc, key, fetch)
				if tt.err != nil {
					require.ErrorIs(t, err, tt.err)
					continue
				}
				require.NoError(t, err)
				assert.Same(t, tt.result, got)
			}
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestFetch_PassesBaseContext(t *testing.T) {
	t.Parallel()

	type marker struct{}
	base := context.WithValue(context.Background(), marker{}, "req-7")
	rc := appctx.New(base)

	_, err := appctx.Fetch(rc, appctx.NewKey[string]("k"), func(ctx context.Context) (string, error) {
		assert.Equal(t, "req-7", ctx.Value(marker{}))
		return "", nil
	})
	require.NoError(t, err)
}

func TestFetch_TypeMismatch(t *testing.T) {
	t.Parallel()

	rc := appctx.New(context.Background())
	appctx.Put(rc, appctx.NewKey[string]("tenant:t-1"), "Acme")

	_, err := appctx.Fetch(rc, appctx.NewKey[int]("tenant:t-1"), func(context.Context) (int, error) {
		t.Fatal("fetch called despite a memoized value")
		return 0, nil
	})
	assert.ErrorIs(t, err, appctx.ErrTypeMismatch)
}

func TestPut_ReplacesError(t *testing.T) {
	t.Parallel()

	rc := appctx.New(context.Background())
	key := appctx.NewKey[*tenantView]("tenant:t-1")
	fetch, calls := counting(nil, errNotFound)

	_, err := appctx.Fetch(rc, key, fetch)
	require.ErrorIs(t, err, errNotFound)

	updated := &tenantView{ID: "t-1", Name: "Acme Ltd"}
	appctx.Put(rc, key, updated)

	got, err := appctx.Fetch(rc, key, fetch)
	require.NoError(t, err)
	assert.Same(t, updated, got)
	assert.Equal(t, int32(1), calls.Load())
}

func TestForget(t *testing.T) {
	t.Parallel()

	rc := appctx.New(context.Background())
	key := appctx.NewKey[*tenantView]("tenant:t-1")
	fetch, calls := counting(&tenantView{ID: "t-1"}, nil)

	_, _ = appctx.Fetch(rc, key, fetch)
	appctx.Forget(rc, key)
	_, _ = appctx.Fetch(rc, key, fetch)

	assert.Equal(t, int32(2), calls.Load())
}

func TestPut_ConcurrentWriters(t *testing.T) {
	t.Parallel()

	rc := appctx.New(context.Background())
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Go(func() {
			appctx.Put(rc, appctx.NewKey[int]("n"), i)
		})
	}
	wg.Wait()

	_, err := appctx.Fetch(rc, appctx.NewKey[int]("n"), func(context.Context) (int, error) {
		t.Fatal("fetch called after concurrent puts")
		return 0, nil
	})
	assert.NoError(t, err)
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("stored", func(t *testing.T) {
		t.Parallel()
		rc := appctx.New(context.Background())
		ctx := appctx.WithRequestContext(context.Background(), rc)
		assert.Same(t, rc, appctx.FromContext(ctx))
	})

	t.Run("absent yields fresh memo", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		assert.NotSame(t, appctx.FromContext(ctx), appctx.FromContext(ctx))
	})
}

func TestKey_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "tenant:t-9", appctx.NewKey[*tenantView]("tenant:t-9").String())
}
