// Package lookup provides the memoizing layer over the address lookup
// service.
package lookup

import (
	"context"
	"log/slog"

	"persons/config"
	"persons/internal/domain/entity"
	domainerrors "persons/internal/domain/errors"
	"persons/internal/domain/service"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

const defaultCacheSize = 1000

// outcome is a memoized lookup result. Negative outcomes (cep unknown to
// the provider) are cached too, so a bad code does not trigger repeated
// outbound calls.
type outcome struct {
	info     *entity.AddressInfo
	notFound bool
}

// cachedLookupService decorates an AddressLookupService with a bounded LRU
// memo keyed by the normalized CEP. Entries never expire: CEP-to-address
// mappings are effectively static, so boundedness is the only requirement.
// The underlying cache is safe for concurrent use.
type cachedLookupService struct {
	inner  service.AddressLookupService
	cache  *lru.Cache[string, outcome]
	logger *slog.Logger
}

// NewCachedService wraps inner with a memoizing cache sized from config.
func NewCachedService(inner service.AddressLookupService, cfg *config.Config, logger *slog.Logger) (service.AddressLookupService, error) {
	size := defaultCacheSize
	if cfg != nil && cfg.Lookup != nil && cfg.Lookup.CacheSize > 0 {
		size = cfg.Lookup.CacheSize
	}

	cache, err := lru.New[string, outcome](size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create lookup cache")
	}

	return &cachedLookupService{
		inner:  inner,
		cache:  cache,
		logger: logger,
	}, nil
}

// Resolve returns the memoized outcome when present, otherwise delegates to
// the wrapped service and records the result. Soft failures are deliberately
// indistinguishable from unknown codes here, so they are memoized the same
// way.
func (s *cachedLookupService) Resolve(ctx context.Context, cep entity.CEP) (*entity.AddressInfo, error) {
	key := cep.String()

	if cached, ok := s.cache.Get(key); ok {
		s.logger.Debug("CEP lookup served from cache", slog.String("cep", key))
		if cached.notFound {
			return nil, domainerrors.ErrCEPNotFound.WrapMessage("memoized not-found outcome")
		}

		return cached.info, nil
	}

	info, err := s.inner.Resolve(ctx, cep)
	if err != nil {
		if errors.Is(err, domainerrors.ErrCEPNotFound) {
			s.cache.Add(key, outcome{notFound: true})
		}

		return nil, err
	}

	s.cache.Add(key, outcome{info: info})

	return info, nil
}
