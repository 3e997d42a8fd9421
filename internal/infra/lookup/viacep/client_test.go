package viacep

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"persons/config"
	"persons/internal/domain/entity"
	domainerrors "persons/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Lookup: &config.LookupConfig{
			BaseURL: server.URL,
			Timeout: time.Second,
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return New(cfg, logger).(*Client)
}

func mustCEP(t *testing.T, raw string) entity.CEP {
	t.Helper()

	cep, err := entity.NewCEP(raw)
	require.NoError(t, err)

	return cep
}

func TestClient_Resolve_Success(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/01001000/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"cep": "01001-000",
			"logradouro": "Praça da Sé",
			"bairro": "Sé",
			"localidade": "São Paulo",
			"uf": "SP"
		}`)
	})

	info, err := client.Resolve(context.Background(), mustCEP(t, "01001-000"))
	require.NoError(t, err)

	assert.Equal(t, "01001000", info.CEP)
	require.NotNil(t, info.Street)
	assert.Equal(t, "Praça da Sé", *info.Street)
	require.NotNil(t, info.Neighborhood)
	assert.Equal(t, "Sé", *info.Neighborhood)
	require.NotNil(t, info.City)
	assert.Equal(t, "São Paulo", *info.City)
	require.NotNil(t, info.State)
	assert.Equal(t, "SP", *info.State)
}

func TestClient_Resolve_OmittedComponentsStayAbsent(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"cep": "01001-000", "localidade": "São Paulo", "uf": "SP"}`)
	})

	info, err := client.Resolve(context.Background(), mustCEP(t, "01001000"))
	require.NoError(t, err)

	assert.Nil(t, info.Street)
	assert.Nil(t, info.Neighborhood)
	require.NotNil(t, info.City)
	assert.Equal(t, "São Paulo", *info.City)
}

func TestClient_Resolve_ProviderUnknownCEP(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"erro": true}`)
	})

	_, err := client.Resolve(context.Background(), mustCEP(t, "99999999"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCEPNotFound))
}

func TestClient_Resolve_NonSuccessStatusIsSoftFailure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Resolve(context.Background(), mustCEP(t, "01001000"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCEPNotFound))
}

func TestClient_Resolve_MalformedBodyIsSoftFailure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `not json at all`)
	})

	_, err := client.Resolve(context.Background(), mustCEP(t, "01001000"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCEPNotFound))
}

func TestClient_Resolve_TimeoutIsSoftFailure(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	// The handler must also unblock on client disconnect, or server.Close
	// would wait forever for this request to finish.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Lookup: &config.LookupConfig{
			BaseURL: server.URL,
			Timeout: 50 * time.Millisecond,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := New(cfg, logger).(*Client)

	start := time.Now()
	_, err := client.Resolve(context.Background(), mustCEP(t, "01001000"))
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCEPNotFound))
	assert.Less(t, elapsed, time.Second, "lookup must not block past its timeout")
}
