package repository

import (
	"context"

	"persons/internal/domain/repository"
)

// StubRepositoryFactory hands out fixed repositories, standing in for the
// transaction-bound factory.
type StubRepositoryFactory struct {
	Person repository.PersonRepository
}

var _ repository.RepositoryFactory = (*StubRepositoryFactory)(nil)

func (f *StubRepositoryFactory) PersonRepo() repository.PersonRepository {
	return f.Person
}

// StubTransactionManager runs the unit of work directly against the given
// factory, without any real transaction. The callback's error propagates
// unchanged, matching the real manager's rollback-and-return behavior.
type StubTransactionManager struct {
	Factory repository.RepositoryFactory
}

var _ repository.TransactionManager = (*StubTransactionManager)(nil)

func (m *StubTransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}
