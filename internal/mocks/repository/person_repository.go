// Package repository provides hand-written test doubles for the
// persistence contracts.
package repository

import (
	"context"

	"persons/internal/domain/entity"
	"persons/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockPersonRepository is a testify mock of repository.PersonRepository.
type MockPersonRepository struct {
	mock.Mock
}

var _ repository.PersonRepository = (*MockPersonRepository)(nil)

func (m *MockPersonRepository) Create(ctx context.Context, person *entity.Person) error {
	args := m.Called(ctx, person)

	return args.Error(0)
}

func (m *MockPersonRepository) FindByID(ctx context.Context, id int64) (*entity.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Person), args.Error(1)
}

func (m *MockPersonRepository) List(ctx context.Context, limit, offset int) ([]*entity.Person, int64, error) {
	args := m.Called(ctx, limit, offset)
	var persons []*entity.Person
	if args.Get(0) != nil {
		persons = args.Get(0).([]*entity.Person)
	}

	return persons, args.Get(1).(int64), args.Error(2)
}

func (m *MockPersonRepository) Update(ctx context.Context, id int64, patch repository.PersonPatch) (*entity.Person, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Person), args.Error(1)
}

func (m *MockPersonRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}
