// Package service provides hand-written test doubles for domain service
// contracts.
package service

import (
	"context"

	"persons/internal/domain/entity"
	"persons/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockAddressLookupService is a testify mock of service.AddressLookupService.
type MockAddressLookupService struct {
	mock.Mock
}

var _ service.AddressLookupService = (*MockAddressLookupService)(nil)

func (m *MockAddressLookupService) Resolve(ctx context.Context, cep entity.CEP) (*entity.AddressInfo, error) {
	args := m.Called(ctx, cep)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.AddressInfo), args.Error(1)
}
