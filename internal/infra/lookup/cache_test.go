package lookup

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"persons/config"
	"persons/internal/domain/entity"
	domainerrors "persons/internal/domain/errors"
	"persons/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingLookup is a fake provider that records how many outbound calls
// were made per code.
type countingLookup struct {
	calls   atomic.Int64
	results map[string]*entity.AddressInfo
}

func (f *countingLookup) Resolve(_ context.Context, cep entity.CEP) (*entity.AddressInfo, error) {
	f.calls.Add(1)

	info, ok := f.results[cep.String()]
	if !ok {
		return nil, domainerrors.ErrCEPNotFound.WrapMessage("unknown cep")
	}

	return info, nil
}

func newCachedForTest(t *testing.T, inner service.AddressLookupService, size int) service.AddressLookupService {
	t.Helper()

	cfg := &config.Config{Lookup: &config.LookupConfig{CacheSize: size}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cached, err := NewCachedService(inner, cfg, logger)
	require.NoError(t, err)

	return cached
}

func mustCEP(t *testing.T, raw string) entity.CEP {
	t.Helper()

	cep, err := entity.NewCEP(raw)
	require.NoError(t, err)

	return cep
}

func TestCachedService_MemoizesPositiveResult(t *testing.T) {
	t.Parallel()

	street := "Praça da Sé"
	inner := &countingLookup{
		results: map[string]*entity.AddressInfo{
			"01001000": {CEP: "01001000", Street: &street},
		},
	}
	cached := newCachedForTest(t, inner, 10)

	ctx := context.Background()
	first, err := cached.Resolve(ctx, mustCEP(t, "01001000"))
	require.NoError(t, err)

	second, err := cached.Resolve(ctx, mustCEP(t, "01001-000"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), inner.calls.Load(), "second resolution must not hit the provider")
}

func TestCachedService_MemoizesNotFound(t *testing.T) {
	t.Parallel()

	inner := &countingLookup{results: map[string]*entity.AddressInfo{}}
	cached := newCachedForTest(t, inner, 10)

	ctx := context.Background()
	for range 3 {
		_, err := cached.Resolve(ctx, mustCEP(t, "99999999"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrCEPNotFound))
	}

	assert.Equal(t, int64(1), inner.calls.Load(), "negative outcome must be cached too")
}

func TestCachedService_BoundedEviction(t *testing.T) {
	t.Parallel()

	inner := &countingLookup{
		results: map[string]*entity.AddressInfo{
			"11111111": {CEP: "11111111"},
			"22222222": {CEP: "22222222"},
			"33333333": {CEP: "33333333"},
		},
	}
	cached := newCachedForTest(t, inner, 2)

	ctx := context.Background()

	// Fill the two slots, then insert a third code to force an eviction.
	_, err := cached.Resolve(ctx, mustCEP(t, "11111111"))
	require.NoError(t, err)
	_, err = cached.Resolve(ctx, mustCEP(t, "22222222"))
	require.NoError(t, err)
	_, err = cached.Resolve(ctx, mustCEP(t, "33333333"))
	require.NoError(t, err)

	assert.Equal(t, int64(3), inner.calls.Load())

	// The least recently used code was evicted and resolves upstream again.
	_, err = cached.Resolve(ctx, mustCEP(t, "11111111"))
	require.NoError(t, err)
	assert.Equal(t, int64(4), inner.calls.Load())

	// A still-cached code does not.
	_, err = cached.Resolve(ctx, mustCEP(t, "33333333"))
	require.NoError(t, err)
	assert.Equal(t, int64(4), inner.calls.Load())
}
