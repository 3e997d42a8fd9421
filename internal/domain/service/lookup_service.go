// Package service defines domain-level contracts implemented by the
// infrastructure layer.
package service

import (
	"context"

	"persons/internal/domain/entity"
)

// AddressLookupService resolves a normalized CEP into an address.
//
// Implementations absorb provider failures (network error, timeout,
// malformed response) into the same not-found outcome as a legitimately
// unknown code: callers see domainerrors.ErrCEPNotFound either way, and
// only logs distinguish the two. Record creation stays resilient to an
// unreliable third party.
type AddressLookupService interface {
	Resolve(ctx context.Context, cep entity.CEP) (*entity.AddressInfo, error)
}
