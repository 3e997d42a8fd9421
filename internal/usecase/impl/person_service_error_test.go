package impl

import (
	"context"
	"testing"

	"persons/internal/domain/entity"
	domainerrors "persons/internal/domain/errors"
	"persons/internal/domain/repository"
	"persons/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonService_Create_MalformedCEPRejectedBeforeLookup(t *testing.T) {
	fx := createTestPersonService(t)
	ctx := context.Background()

	// No expectations on the lookup or the repository: a malformed code
	// must fail before either is touched.
	output, err := fx.service.Create(ctx, &usecase.CreatePersonInput{
		FirstName: "Maria",
		LastName:  "Silva",
		Age:       intPtr(30),
		CEP:       stringPtr("123"),
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCEPInvalid))
}

func TestPersonService_Create_UnresolvableCEPRejectsCreation(t *testing.T) {
	fx := createTestPersonService(t)
	ctx := context.Background()

	fx.lookup.On("Resolve", ctx, entity.CEP("99999999")).
		Return(nil, domainerrors.ErrCEPNotFound).Once()

	output, err := fx.service.Create(ctx, &usecase.CreatePersonInput{
		FirstName: "Maria",
		LastName:  "Silva",
		Age:       intPtr(30),
		CEP:       stringPtr("99999-999"),
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCEPUnresolvable))
}

func TestPersonService_Get_NotFound(t *testing.T) {
	fx := createTestPersonService(t)
	ctx := context.Background()

	fx.personRepo.On("FindByID", ctx, int64(404)).
		Return(nil, repository.ErrPersonNotFound).Once()

	output, err := fx.service.Get(ctx, 404)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPersonNotFound))
}

func TestPersonService_List_LimitOutOfRange(t *testing.T) {
	fx := createTestPersonService(t)
	ctx := context.Background()

	for _, input := range []*usecase.ListPersonsInput{
		{Limit: 0, Offset: 0},
		{Limit: 101, Offset: 0},
		{Limit: 20, Offset: -1},
	} {
		output, err := fx.service.List(ctx, input)

		require.Error(t, err)
		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrPaginationOutOfRange))
	}
}

func TestPersonService_Update_MissingPersonReportedBeforeCEP(t *testing.T) {
	fx := createTestPersonService(t)
	ctx := context.Background()

	fx.personRepo.On("FindByID", ctx, int64(404)).
		Return(nil, repository.ErrPersonNotFound).Once()

	// The CEP here is malformed, but the missing record wins.
	output, err := fx.service.Update(ctx, 404, &usecase.UpdatePersonInput{
		CEP: stringPtr("bogus"),
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPersonNotFound))
}

func TestPersonService_UpdateCEP_UnresolvableCEPLeavesRecordUntouched(t *testing.T) {
	fx := createTestPersonService(t)
	ctx := context.Background()

	fx.personRepo.On("FindByID", ctx, int64(3)).
		Return(&entity.Person{ID: 3, FirstName: "Ana", LastName: "Lima", Age: 28}, nil).Once()

	fx.lookup.On("Resolve", ctx, entity.CEP("99999999")).
		Return(nil, domainerrors.ErrCEPNotFound).Once()

	output, err := fx.service.UpdateCEP(ctx, 3, &usecase.UpdateCEPInput{CEP: "99999999"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCEPUnresolvable))
	fx.personRepo.AssertNotCalled(t, "Update")
}

func TestPersonService_Delete_SecondDeleteReportsNotFound(t *testing.T) {
	fx := createTestPersonService(t)
	ctx := context.Background()

	fx.personRepo.On("Delete", ctx, int64(11)).Return(true, nil).Once()
	fx.personRepo.On("Delete", ctx, int64(11)).Return(false, nil).Once()

	require.NoError(t, fx.service.Delete(ctx, 11))

	err := fx.service.Delete(ctx, 11)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPersonNotFound))
}
