package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"oliadmin/internal/adapter/api"
	"oliadmin/internal/adapter/api/handler"
	"oliadmin/internal/adapter/api/router"
	"oliadmin/internal/adapter/repository"
	"oliadmin/internal/infrastructure/jsonstore"
	"oliadmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGit struct {
	pending       bool
	changes       []string
	commitOK      bool
	commitMessage string
	commits       []string
}

func (g *stubGit) HasPendingChanges(ctx context.Context) bool { return g.pending }

func (g *stubGit) ListPendingChanges(ctx context.Context) []string { return g.changes }
func (g *stubGit) Commit(ctx context.Context, message string) (bool, string) {
	g.commits = append(g.commits, message)
	return g.commitOK, g.commitMessage
}

func newTestServer(t *testing.T, git *stubGit) *echo.Echo {
	t.Helper()

	store, err := jsonstore.New(t.TempDir())
	require.NoError(t, err)

	productRepo := repository.NewJSONFileProductRepository(store)
	categoryRepo := repository.NewJSONFileCategoryRepository(store)
	settingsRepo := repository.NewJSONFileSettingsRepository(store)

	handler.Setup(
		usecase.NewProductUseCase(productRepo, store),
		usecase.NewCategoryUseCase(categoryRepo, store),
		usecase.NewSettingsUseCase(settingsRepo, store),
		usecase.NewCheckpointUseCase(productRepo, categoryRepo, git, git, store),
	)

	e := echo.New()
	e.Validator = api.NewValidator()
	router.Setup(e)
	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestServer(t, &stubGit{})

	rec := doJSON(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Server is running", body["status"])
}

func TestCreateAndListProducts(t *testing.T) {
	e := newTestServer(t, &stubGit{})

	rec := doJSON(e, http.MethodPost, "/api/products", `{
		"id": "Mi Jarrón",
		"name": "Jarrón",
		"price": "12.5",
		"categories": ["deco"]
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Success bool `json:"success"`
		Data    struct {
			ID    string  `json:"id"`
			Price float64 `json:"price"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.True(t, created.Success)
	assert.Equal(t, "mi_jarrón", created.Data.ID)
	assert.Equal(t, 12.5, created.Data.Price)

	rec = doJSON(e, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list.Data, 1)
}

func TestCreateProductRejectsMissingName(t *testing.T) {
	e := newTestServer(t, &stubGit{})

	rec := doJSON(e, http.MethodPost, "/api/products", `{"id": "x", "price": "1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
}

func TestCreateProductRejectsDuplicateID(t *testing.T) {
	e := newTestServer(t, &stubGit{})

	payload := `{"id": "vase", "name": "Vase", "price": "5"}`
	rec := doJSON(e, http.MethodPost, "/api/products", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/products", payload)
	assert.Equal(t, http.StatusConflict, rec.Code)
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "DUPLICATE_ID", body.Error.Code)
}

func TestUpdateMissingProductReturns404(t *testing.T) {
	e := newTestServer(t, &stubGit{})

	rec := doJSON(e, http.MethodPut, "/api/products/nope", `{"name": "X", "price": "1"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteReservedCategoryIsForbidden(t *testing.T) {
	e := newTestServer(t, &stubGit{})

	rec := doJSON(e, http.MethodDelete, "/api/categories/all", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "La categoría 'all' no se puede eliminar")
}

func TestSettingsRoundTrip(t *testing.T) {
	e := newTestServer(t, &stubGit{})

	rec := doJSON(e, http.MethodGet, "/api/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Data struct {
			ShowPrices bool `json:"showPrices"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Data.ShowPrices, "prices are visible by default")

	rec = doJSON(e, http.MethodPut, "/api/settings", `{"showPrices": false}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/settings", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.False(t, got.Data.ShowPrices)
}

func TestValidateEndpointReturnsBareReport(t *testing.T) {
	e := newTestServer(t, &stubGit{})

	rec := doJSON(e, http.MethodGet, "/api/validate", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var report struct {
		Valid    bool     `json:"valid"`
		Errors   []string `json:"errors"`
		Warnings []string `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.True(t, report.Valid)
	assert.NotNil(t, report.Errors)
	assert.NotNil(t, report.Warnings)
	assert.NotContains(t, rec.Body.String(), `"success"`, "the report is served unwrapped")
}

func TestChangesEndpoint(t *testing.T) {
	e := newTestServer(t, &stubGit{pending: true, changes: []string{"M db/products.json"}})

	rec := doJSON(e, http.MethodGet, "/api/changes", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var changes struct {
		HasChanges bool     `json:"has_changes"`
		Changes    []string `json:"changes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &changes))
	assert.True(t, changes.HasChanges)
	assert.Equal(t, []string{"M db/products.json"}, changes.Changes)
}

func TestCommitEndpointNoChanges(t *testing.T) {
	git := &stubGit{pending: false, commitOK: true}
	e := newTestServer(t, git)

	rec := doJSON(e, http.MethodPost, "/api/commit", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Success   bool   `json:"success"`
		Committed bool   `json:"committed"`
		Message   string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.False(t, result.Committed)
	assert.Equal(t, "No hay cambios pendientes", result.Message)
	assert.Empty(t, git.commits)
}

func TestCommitEndpointCommitsCleanCatalog(t *testing.T) {
	git := &stubGit{pending: true, commitOK: true, commitMessage: "Cambios guardados correctamente"}
	e := newTestServer(t, git)

	rec := doJSON(e, http.MethodPost, "/api/products", `{"id": "vase", "name": "Vase", "price": "5", "image": "v.jpg"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/commit", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Success   bool   `json:"success"`
		Committed bool   `json:"committed"`
		Message   string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.True(t, result.Committed)
	assert.Equal(t, "Cambios guardados correctamente", result.Message)
	require.Len(t, git.commits, 1)
}
