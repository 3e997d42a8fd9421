package impl

import (
	"context"
	"log/slog"

	deliverycontext "persons/internal/delivery/context"
	"persons/internal/domain/entity"
	domainerrors "persons/internal/domain/errors"
	"persons/internal/domain/service"
	"persons/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// lookupService implements the LookupUsecase interface on top of the cached
// address lookup.
type lookupService struct {
	lookup service.AddressLookupService
	logger *slog.Logger
}

// LookupServiceParams holds dependencies for lookupService, injected by Fx.
type LookupServiceParams struct {
	fx.In

	Lookup service.AddressLookupService
	Logger *slog.Logger
}

// NewLookupService is the constructor for lookupService.
func NewLookupService(params LookupServiceParams) usecase.LookupUsecase {
	return &lookupService{
		lookup: params.Lookup,
		logger: params.Logger,
	}
}

func (srv *lookupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve normalizes raw and resolves it through the cached lookup.
func (srv *lookupService) Resolve(ctx context.Context, raw string) (*usecase.AddressOutput, error) {
	cep, err := entity.NewCEP(raw)
	if err != nil {
		return nil, domainerrors.ErrCEPInvalid.WrapMessage(raw)
	}

	info, err := srv.lookup.Resolve(ctx, cep)
	if err != nil {
		if errors.Is(err, domainerrors.ErrCEPNotFound) {
			return nil, domainerrors.ErrCEPNotFound
		}
		srv.log(ctx).Error("CEP lookup failed", slog.String("cep", cep.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to resolve cep")
	}

	return usecase.ToAddressOutput(info), nil
}
