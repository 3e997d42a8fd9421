package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"persons/internal/domain/entity"
	domainerrors "persons/internal/domain/errors"
	mockService "persons/internal/mocks/service"
	"persons/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestLookupService(t *testing.T) (usecase.LookupUsecase, *mockService.MockAddressLookupService) {
	t.Helper()

	lookup := &mockService.MockAddressLookupService{}
	service := NewLookupService(LookupServiceParams{
		Lookup: lookup,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	t.Cleanup(func() {
		lookup.AssertExpectations(t)
	})

	return service, lookup
}

func TestLookupService_Resolve_Success(t *testing.T) {
	service, lookup := createTestLookupService(t)
	ctx := context.Background()

	lookup.On("Resolve", ctx, entity.CEP("01001000")).
		Return(sampleAddress(), nil).Once()

	output, err := service.Resolve(ctx, "01001-000")

	require.NoError(t, err)
	assert.Equal(t, "01001000", output.CEP)
	require.NotNil(t, output.Street)
	assert.Equal(t, "Praça da Sé", *output.Street)
	require.NotNil(t, output.State)
	assert.Equal(t, "SP", *output.State)
}

func TestLookupService_Resolve_MalformedInput(t *testing.T) {
	service, _ := createTestLookupService(t)
	ctx := context.Background()

	for _, raw := range []string{"", "123", "123456789", "abcdefgh"} {
		output, err := service.Resolve(ctx, raw)

		require.Error(t, err, "raw=%q", raw)
		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrCEPInvalid))
	}
}

func TestLookupService_Resolve_NotFound(t *testing.T) {
	service, lookup := createTestLookupService(t)
	ctx := context.Background()

	lookup.On("Resolve", ctx, entity.CEP("99999999")).
		Return(nil, domainerrors.ErrCEPNotFound).Once()

	output, err := service.Resolve(ctx, "99999-999")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCEPNotFound))
}
