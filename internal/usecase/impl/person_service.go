// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "persons/internal/delivery/context"
	"persons/internal/domain/entity"
	domainerrors "persons/internal/domain/errors"
	"persons/internal/domain/repository"
	"persons/internal/domain/service"
	"persons/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	listMinLimit = 1
	listMaxLimit = 100
)

// personService implements the PersonUsecase interface.
type personService struct {
	txManager  repository.TransactionManager
	personRepo repository.PersonRepository
	lookup     service.AddressLookupService
	logger     *slog.Logger
}

// PersonServiceParams holds dependencies for personService, injected by Fx.
type PersonServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	PersonRepo repository.PersonRepository
	Lookup     service.AddressLookupService
	Logger     *slog.Logger
}

// NewPersonService is the constructor for personService. It receives all dependencies as interfaces.
func NewPersonService(params PersonServiceParams) usecase.PersonUsecase {
	return &personService{
		txManager:  params.TxManager,
		personRepo: params.PersonRepo,
		lookup:     params.Lookup,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *personService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create validates the CEP when present, resolves it, and persists the new
// record together with the resolved address in one atomic insert. A
// well-formed CEP the provider does not know rejects the whole creation;
// an absent CEP creates the record with empty address fields.
func (srv *personService) Create(ctx context.Context, input *usecase.CreatePersonInput) (*usecase.PersonOutput, error) {
	person := &entity.Person{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		HeightCM:  input.HeightCM,
		WeightKG:  input.WeightKG,
	}
	if input.Age != nil {
		person.Age = *input.Age
	}

	if input.CEP != nil {
		info, err := srv.resolveCEP(ctx, *input.CEP)
		if err != nil {
			return nil, err
		}
		person.ApplyAddress(info)
	}

	if err := srv.personRepo.Create(ctx, person); err != nil {
		srv.log(ctx).Error("Failed to create person", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create person")
	}

	srv.log(ctx).Debug("Person created", slog.Int64("personID", person.ID))

	return usecase.ToPersonOutput(person), nil
}

// Get fetches a single record by ID.
func (srv *personService) Get(ctx context.Context, id int64) (*usecase.PersonOutput, error) {
	person, err := srv.personRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return nil, domainerrors.ErrPersonNotFound
		}

		return nil, errors.Wrap(err, "failed to get person")
	}

	return usecase.ToPersonOutput(person), nil
}

// List returns one page ordered by creation time descending. The count and
// the page are read inside one transaction so has_next stays consistent
// with total.
func (srv *personService) List(ctx context.Context, input *usecase.ListPersonsInput) (*usecase.ListPersonsOutput, error) {
	if input.Limit < listMinLimit || input.Limit > listMaxLimit || input.Offset < 0 {
		return nil, domainerrors.ErrPaginationOutOfRange
	}

	var (
		persons []*entity.Person
		total   int64
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		persons, total, err = repoFactory.PersonRepo().List(ctx, input.Limit, input.Offset)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list persons", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list persons")
	}

	outputs := make([]*usecase.PersonOutput, 0, len(persons))
	for _, person := range persons {
		outputs = append(outputs, usecase.ToPersonOutput(person))
	}

	return &usecase.ListPersonsOutput{
		Persons: outputs,
		Total:   total,
		Limit:   input.Limit,
		Offset:  input.Offset,
		HasNext: int64(input.Offset+input.Limit) < total,
	}, nil
}

// Update applies a partial update. A supplied CEP is re-resolved first and
// its address group merged into the patch; an unresolvable CEP rejects the
// whole update.
func (srv *personService) Update(ctx context.Context, id int64, input *usecase.UpdatePersonInput) (*usecase.PersonOutput, error) {
	// Existence first: a missing record is reported before any CEP problem.
	if _, err := srv.personRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return nil, domainerrors.ErrPersonNotFound
		}

		return nil, errors.Wrap(err, "failed to find person for update")
	}

	patch := repository.PersonPatch{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Age:       input.Age,
		HeightCM:  input.HeightCM,
		WeightKG:  input.WeightKG,
	}

	if input.CEP != nil {
		info, err := srv.resolveCEP(ctx, *input.CEP)
		if err != nil {
			return nil, err
		}
		patch.SetAddress(info)
	}

	return srv.applyPatch(ctx, id, patch)
}

// UpdateCEP re-resolves the mandatory CEP and overwrites exactly the five
// address fields, leaving every other field untouched.
func (srv *personService) UpdateCEP(ctx context.Context, id int64, input *usecase.UpdateCEPInput) (*usecase.PersonOutput, error) {
	if _, err := srv.personRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return nil, domainerrors.ErrPersonNotFound
		}

		return nil, errors.Wrap(err, "failed to find person for cep update")
	}

	info, err := srv.resolveCEP(ctx, input.CEP)
	if err != nil {
		return nil, err
	}

	var patch repository.PersonPatch
	patch.SetAddress(info)

	return srv.applyPatch(ctx, id, patch)
}

// Delete removes a record by ID. A missing record is a not-found outcome,
// so deleting twice reports not-found the second time.
func (srv *personService) Delete(ctx context.Context, id int64) error {
	deleted, err := srv.personRepo.Delete(ctx, id)
	if err != nil {
		srv.log(ctx).Error("Failed to delete person", slog.Int64("personID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete person")
	}
	if !deleted {
		return domainerrors.ErrPersonNotFound
	}

	srv.log(ctx).Debug("Person deleted", slog.Int64("personID", id))

	return nil
}

// resolveCEP normalizes and resolves a raw CEP. Malformed input fails hard
// before any outbound call; a well-formed code without an address is
// rejected as unresolvable.
func (srv *personService) resolveCEP(ctx context.Context, raw string) (*entity.AddressInfo, error) {
	cep, err := entity.NewCEP(raw)
	if err != nil {
		return nil, domainerrors.ErrCEPInvalid.WrapMessage(raw)
	}

	info, err := srv.lookup.Resolve(ctx, cep)
	if err != nil {
		if errors.Is(err, domainerrors.ErrCEPNotFound) {
			srv.log(ctx).Warn("Rejecting mutation on unresolvable cep", slog.String("cep", cep.String()))

			return nil, domainerrors.ErrCEPUnresolvable.WrapMessage(cep.String())
		}

		return nil, errors.Wrap(err, "failed to resolve cep")
	}

	return info, nil
}

// applyPatch persists the patch and refetches the row inside one transaction.
func (srv *personService) applyPatch(ctx context.Context, id int64, patch repository.PersonPatch) (*usecase.PersonOutput, error) {
	var updated *entity.Person
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		updated, err = repoFactory.PersonRepo().Update(ctx, id, patch)

		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return nil, domainerrors.ErrPersonNotFound
		}
		srv.log(ctx).Error("Failed to update person", slog.Int64("personID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update person")
	}

	return usecase.ToPersonOutput(updated), nil
}
