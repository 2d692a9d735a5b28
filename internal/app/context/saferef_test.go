package appctx_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appctx "github.com/jsamuelsen11/tenant-console/internal/app/context"
)

type sessionState struct {
	Step   int
	Values map[string]string
}

func TestSafeRef_GetReturnsCopy(t *testing.T) {
	t.Parallel()

	ref := appctx.NewRef(sessionState{Step: 1})
	got := ref.Get()
	got.Step = 9

	assert.Equal(t, 1, ref.Get().Step)
}

func TestSafeRef_Update(t *testing.T) {
	t.Parallel()

	ref := appctx.NewRef(sessionState{Step: 1})
	ref.Update(func(s *sessionState) { s.Step++ })

	assert.Equal(t, 2, ref.Get().Step)
}

func TestSafeRef_Try(t *testing.T) {
	t.Parallel()

	errRejected := errors.New("step incomplete")

	tests := []struct {
		name     string
		fn       func(*sessionState) error
		wantErr  error
		wantStep int
		wantName string
	}{
		{
			name: "success is kept",
			fn: func(s *sessionState) error {
				s.Step = 2
				s.Values = map[string]string{"name": "Acme"}
				return nil
			},
			wantStep: 2,
			wantName: "Acme",
		},
		{
			name: "failure rolls back",
			fn: func(s *sessionState) error {
				s.Step = 3
				s.Values = map[string]string{"name": "Partial"}
				return errRejected
			},
			wantErr:  errRejected,
			wantStep: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ref := appctx.NewRef(sessionState{Step: 1})
			err := ref.Try(tt.fn)
			require.ErrorIs(t, err, tt.wantErr)

			got := ref.Get()
			assert.Equal(t, tt.wantStep, got.Step)
			assert.Equal(t, tt.wantName, got.Values["name"])
		})
	}
}

func TestSafeRef_SerializesWriters(t *testing.T) {
	t.Parallel()

	ref := appctx.NewRef(sessionState{})

	const writers = 50
	var wg sync.WaitGroup
	for i := range writers {
		wg.Go(func() {
			if i%2 == 0 {
				ref.Update(func(s *sessionState) { s.Step++ })
				return
			}
			_ = ref.Try(func(s *sessionState) error {
				s.Step++
				return nil
			})
		})
		wg.Go(func() { _ = ref.Get() })
	}
	wg.Wait()

	assert.Equal(t, writers, ref.Get().Step)
}
