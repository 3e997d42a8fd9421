package usecase

import (
	"context"

	"persons/internal/domain/entity"
)

// AddressOutput is the response shape for a resolved CEP.
type AddressOutput struct {
	CEP          string  `json:"cep"`
	Street       *string `json:"street"`
	Neighborhood *string `json:"neighborhood"`
	City         *string `json:"city"`
	State        *string `json:"state"`
}

// ToAddressOutput maps the lookup value object onto the response shape.
func ToAddressOutput(info *entity.AddressInfo) *AddressOutput {
	if info == nil {
		return nil
	}

	return &AddressOutput{
		CEP:          info.CEP,
		Street:       info.Street,
		Neighborhood: info.Neighborhood,
		City:         info.City,
		State:        info.State,
	}
}

// LookupUsecase exposes the CEP lookup as a standalone operation.
type LookupUsecase interface {
	// Resolve normalizes raw and resolves it through the cached lookup.
	// A malformed input fails with a validation error before any outbound
	// call; a well-formed but unknown code fails with not-found.
	Resolve(ctx context.Context, raw string) (*AddressOutput, error)
}
