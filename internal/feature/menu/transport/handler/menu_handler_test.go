package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant_backend/internal/feature/menu/domain/entity"
	"restaurant_backend/internal/feature/menu/usecase"
	platentity "restaurant_backend/internal/feature/plat/domain/entity"
	"restaurant_backend/internal/shared/apperror"
	"restaurant_backend/internal/shared/crud"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// memMenuRepository is a map-backed MenuRepository.
type memMenuRepository struct {
	items map[string]entity.Menu
}

func (m *memMenuRepository) List(ctx context.Context) ([]entity.Menu, error) {
	out := make([]entity.Menu, 0, len(m.items))
	for _, e := range m.items {
		out = append(out, e)
	}
	return out, nil
}

func (m *memMenuRepository) FindByID(ctx context.Context, id string) (*entity.Menu, error) {
	e, ok := m.items[id]
	if !ok {
		return nil, crud.ErrRecordNotFound
	}
	return &e, nil
}

func (m *memMenuRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := m.items[id]
	return ok, nil
}

func (m *memMenuRepository) Create(ctx context.Context, e *entity.Menu) error {
	m.items[e.ID] = *e
	return nil
}

func (m *memMenuRepository) Update(ctx context.Context, e *entity.Menu) error {
	if _, ok := m.items[e.ID]; !ok {
		return crud.ErrRecordNotFound
	}
	m.items[e.ID] = *e
	return nil
}

func (m *memMenuRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return crud.ErrRecordNotFound
	}
	delete(m.items, id)
	return nil
}

// dishLookup serves a fixed set of dishes.
type dishLookup map[string]platentity.Plat

func (d dishLookup) FindByIDs(ctx context.Context, ids []string) ([]platentity.Plat, error) {
	var out []platentity.Plat
	for _, id := range ids {
		if p, ok := d[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func newRouter(repo *memMenuRepository) *gin.Engine {
	dishes := dishLookup{
		"tajine": {ID: "tajine", Nom: "Tajine", Prix: 45},
		"harira": {ID: "harira", Nom: "Harira", Prix: 12},
	}
	r := gin.New()
	r.Use(apperror.Handler())
	NewMenuHandler(usecase.NewMenuUsecase(repo, dishes)).Register(r.Group("/api/menus"))
	return r
}

func send(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMenuHandler_Create(t *testing.T) {
	t.Parallel()

	repo := &memMenuRepository{items: map[string]entity.Menu{}}
	w := send(newRouter(repo), http.MethodPost, "/api/menus",
		`{"id":"client-chosen","nom":" Menu du jour ","prix":50,"platIds":["harira","tajine"]}`)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var got entity.Menu
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotEqual(t, "client-chosen", got.ID)
	assert.Equal(t, "Menu du jour", got.Nom)
	assert.Equal(t, []string{"harira", "tajine"}, got.PlatIDs)
	require.Len(t, got.Plats, 2)
	assert.Equal(t, "Harira", got.Plats[0].Nom)
	assert.Equal(t, "Tajine", got.Plats[1].Nom)
	assert.Contains(t, repo.items, got.ID)
}

func TestMenuHandler_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		body          string
		expectedField string
	}{
		{name: "unknown dish id", body: `{"nom":"Menu","prix":20,"platIds":["tajine","ghost"]}`, expectedField: "platIds"},
		{name: "missing name", body: `{"prix":20}`, expectedField: "nom"},
		{name: "negative price", body: `{"nom":"Menu","prix":-1}`, expectedField: "prix"},
		{name: "blank dish id", body: `{"nom":"Menu","prix":20,"platIds":[""]}`, expectedField: "platIds[0]"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &memMenuRepository{items: map[string]entity.Menu{}}
			w := send(newRouter(repo), http.MethodPost, "/api/menus", tt.body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			var resp struct {
				Message string            `json:"message"`
				Details map[string]string `json:"details"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "validation error", resp.Message)
			assert.Contains(t, resp.Details, tt.expectedField)
			assert.Empty(t, repo.items, "nothing is stored")
		})
	}
}

func TestMenuHandler_UpdateMissing(t *testing.T) {
	t.Parallel()

	repo := &memMenuRepository{items: map[string]entity.Menu{}}
	w := send(newRouter(repo), http.MethodPut, "/api/menus/nope", `{"nom":"Menu","prix":20}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, repo.items)
}
