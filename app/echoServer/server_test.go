package echoServer_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/joaomarcosmb/cd-rental/app/echoServer"
	"github.com/joaomarcosmb/cd-rental/repository/memory"
)

func newServer(t *testing.T) *echo.Echo {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return echoServer.New(memory.New(), log, prometheus.NewRegistry())
}

func do(t *testing.T, e *echo.Echo, method, path, body string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	out := map[string]any{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec.Code, out
}

func TestHealth(t *testing.T) {
	e := newServer(t)
	code, body := do(t, e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "ok", body["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	e := newServer(t)
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCreatePerson(t *testing.T) {
	e := newServer(t)

	code, body := do(t, e, http.MethodPost, "/v1/persons",
		`{"cpf":"529.982.247-25","name":"  maria silva ","phone":"(85) 99999-9999","email":"Maria@Example.com"}`)
	require.Equal(t, http.StatusCreated, code)
	require.Equal(t, "529.982.247-25", body["cpf"])
	require.Equal(t, "Maria Silva", body["name"])
	require.Equal(t, "maria@example.com", body["email"])
	require.NotEmpty(t, body["id"])

	code, body = do(t, e, http.MethodGet, "/v1/persons", "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body["data"], 1)
}

func TestCreatePersonRejected(t *testing.T) {
	e := newServer(t)

	code, body := do(t, e, http.MethodPost, "/v1/persons", `{"cpf":"11111111111","name":"A","phone":"123","email":"nope"}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "VALIDATION_FAILED", body["code"])
	require.Equal(t, "Validation failed", body["error"])
	require.Len(t, body["details"], 4)

	code, body = do(t, e, http.MethodPost, "/v1/persons", `{"cpf":`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "VALIDATION_FAILED", body["code"])
}

func TestPathAndLookupErrors(t *testing.T) {
	e := newServer(t)

	code, body := do(t, e, http.MethodGet, "/v1/albums/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, []any{"ID must be a valid UUID"}, body["details"])

	code, body = do(t, e, http.MethodGet, "/v1/albums/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "NOT_FOUND", body["code"])
	require.Equal(t, "Album not found", body["error"])
	require.NotContains(t, body, "details")

	code, _ = do(t, e, http.MethodGet, "/v1/inventory-items/available?album_id=bad", "")
	require.Equal(t, http.StatusBadRequest, code)
}

func TestItemRentFlow(t *testing.T) {
	e := newServer(t)

	code, st := do(t, e, http.MethodPost, "/v1/stores", `{"cnpj":"11.222.333/0001-81","trade_name":"centro discos"}`)
	require.Equal(t, http.StatusCreated, code)
	code, al := do(t, e, http.MethodPost, "/v1/albums", `{"title":"kind of blue","artist":"miles davis","genre":"jazz","rental_price":9.99}`)
	require.Equal(t, http.StatusCreated, code)
	require.Equal(t, 9.99, al["rental_price"])

	code, it := do(t, e, http.MethodPost, "/v1/inventory-items",
		`{"barcode":"cd-0001","album_id":"`+al["id"].(string)+`","store_id":"`+st["id"].(string)+`"}`)
	require.Equal(t, http.StatusCreated, code)
	require.Equal(t, "CD-0001", it["barcode"])
	require.Equal(t, "available", it["status"])
	id := it["id"].(string)

	code, it = do(t, e, http.MethodPost, "/v1/inventory-items/"+id+"/rent", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "rented", it["status"])

	code, body := do(t, e, http.MethodPost, "/v1/inventory-items/"+id+"/rent", "")
	require.Equal(t, http.StatusConflict, code)
	require.Equal(t, "INVALID_TRANSITION", body["code"])
	require.Equal(t, "Item is not available for rental (current status: rented)", body["error"])

	code, body = do(t, e, http.MethodGet, "/v1/inventory-items/barcode/cd-0001", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, id, body["id"])

	code, body = do(t, e, http.MethodDelete, "/v1/stores/"+st["id"].(string), "")
	require.Equal(t, http.StatusConflict, code)
	require.Equal(t, "INTEGRITY_CONFLICT", body["code"])

	code, _ = do(t, e, http.MethodPost, "/v1/inventory-items/"+id+"/return", "")
	require.Equal(t, http.StatusOK, code)
	code, _ = do(t, e, http.MethodDelete, "/v1/inventory-items/"+id, "")
	require.Equal(t, http.StatusNoContent, code)
}
