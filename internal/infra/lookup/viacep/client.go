// Package viacep implements the address lookup contract against a
// ViaCEP-compatible HTTP provider.
package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"persons/config"
	"persons/internal/domain/entity"
	domainerrors "persons/internal/domain/errors"
	"persons/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 5 * time.Second

// providerResponse mirrors the ViaCEP JSON payload. An unknown code is a
// 200 response with "erro" set instead of an HTTP error.
type providerResponse struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
	Erro         bool   `json:"erro"`
}

// Client resolves CEPs against the configured provider.
//
// Failure policy: any transport failure, timeout, non-200 status or
// malformed body is collapsed into ErrCEPNotFound. Only the logs tell an
// unreachable provider apart from a legitimately unknown code, which keeps
// record creation resilient to an unreliable third party.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a ViaCEP client with the configured base URL and timeout.
func New(cfg *config.Config, logger *slog.Logger) service.AddressLookupService {
	timeout := defaultTimeout
	baseURL := "https://viacep.com.br"
	if cfg != nil && cfg.Lookup != nil {
		if cfg.Lookup.Timeout > 0 {
			timeout = cfg.Lookup.Timeout
		}
		if cfg.Lookup.BaseURL != "" {
			baseURL = cfg.Lookup.BaseURL
		}
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Resolve queries the provider for a normalized CEP.
func (c *Client) Resolve(ctx context.Context, cep entity.CEP) (*entity.AddressInfo, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cep)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build cep lookup request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("CEP lookup provider unreachable, treating as not found",
			slog.String("cep", cep.String()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrCEPNotFound.WrapMessage("provider unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("CEP lookup provider returned non-success status, treating as not found",
			slog.String("cep", cep.String()),
			slog.Int("status", resp.StatusCode),
		)

		return nil, domainerrors.ErrCEPNotFound.WrapMessage("unexpected provider status")
	}

	var payload providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Warn("CEP lookup provider returned malformed body, treating as not found",
			slog.String("cep", cep.String()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrCEPNotFound.WrapMessage("malformed provider response")
	}

	if payload.Erro {
		c.logger.Debug("CEP not known to provider", slog.String("cep", cep.String()))

		return nil, domainerrors.ErrCEPNotFound.WrapMessage("provider reported unknown cep")
	}

	return toAddressInfo(cep, &payload), nil
}

// toAddressInfo maps the provider payload onto the domain value object.
// The stored CEP is always the normalized code the lookup ran with, not the
// provider's formatted variant. Empty components stay absent.
func toAddressInfo(cep entity.CEP, payload *providerResponse) *entity.AddressInfo {
	return &entity.AddressInfo{
		CEP:          cep.String(),
		Street:       optional(payload.Street),
		Neighborhood: optional(payload.Neighborhood),
		City:         optional(payload.City),
		State:        optional(payload.State),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
