// Package usecase provides hand-written test doubles for the application
// contracts, used by handler tests.
package usecase

import (
	"context"

	"persons/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockPersonUsecase is a testify mock of usecase.PersonUsecase.
type MockPersonUsecase struct {
	mock.Mock
}

var _ usecase.PersonUsecase = (*MockPersonUsecase)(nil)

func (m *MockPersonUsecase) Create(ctx context.Context, input *usecase.CreatePersonInput) (*usecase.PersonOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.PersonOutput), args.Error(1)
}

func (m *MockPersonUsecase) Get(ctx context.Context, id int64) (*usecase.PersonOutput, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.PersonOutput), args.Error(1)
}

func (m *MockPersonUsecase) List(ctx context.Context, input *usecase.ListPersonsInput) (*usecase.ListPersonsOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.ListPersonsOutput), args.Error(1)
}

func (m *MockPersonUsecase) Update(ctx context.Context, id int64, input *usecase.UpdatePersonInput) (*usecase.PersonOutput, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.PersonOutput), args.Error(1)
}

func (m *MockPersonUsecase) UpdateCEP(ctx context.Context, id int64, input *usecase.UpdateCEPInput) (*usecase.PersonOutput, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.PersonOutput), args.Error(1)
}

func (m *MockPersonUsecase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockLookupUsecase is a testify mock of usecase.LookupUsecase.
type MockLookupUsecase struct {
	mock.Mock
}

var _ usecase.LookupUsecase = (*MockLookupUsecase)(nil)

func (m *MockLookupUsecase) Resolve(ctx context.Context, raw string) (*usecase.AddressOutput, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AddressOutput), args.Error(1)
}
