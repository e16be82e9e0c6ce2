package handlers_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mina/shiftbase/internal/api/dto"
	"github.com/mina/shiftbase/internal/api/handlers"
	"github.com/mina/shiftbase/internal/api/middleware"
	"github.com/mina/shiftbase/internal/database/models"
	"github.com/mina/shiftbase/internal/stores"
	"github.com/mina/shiftbase/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStoreTestRouter(t *testing.T) (*chi.Mux, *testutil.TestSetup) {
	t.Helper()
	tc := testutil.NewTestContext(t)

	storeService := stores.NewService(tc.DB, slog.Default())
	handler := handlers.NewStoreHandler(storeService)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tc.JWTService))
		r.Route("/stores", func(r chi.Router) {
			r.Get("/", handler.List)
			r.Get("/{id}", handler.Get)
			r.Patch("/{id}", handler.Update)
			r.Get("/{id}/employees", handler.ListEmployees)
		})
	})

	return r, tc
}

func TestStoreHandler_List(t *testing.T) {
	router, tc := setupStoreTestRouter(t)
	defer tc.Cleanup()

	t.Run("owner sees their store", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, "GET", "/stores", nil, tc.Token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var resp struct {
			Data []dto.StoreDTO `json:"data"`
		}
		testutil.ParseJSONResponse(t, rr, &resp)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, tc.Store.ID.String(), resp.Data[0].ID)
	})

	t.Run("requires authentication", func(t *testing.T) {
		req := testutil.UnauthenticatedRequest(t, "GET", "/stores", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestStoreHandler_Get(t *testing.T) {
	router, tc := setupStoreTestRouter(t)
	defer tc.Cleanup()

	t.Run("owner can read store", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, "GET", "/stores/"+tc.Store.ID.String(), nil, tc.Token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var resp struct {
			Data dto.StoreDTO `json:"data"`
		}
		testutil.ParseJSONResponse(t, rr, &resp)
		assert.Equal(t, tc.Store.ID.String(), resp.Data.ID)
		assert.Equal(t, tc.Owner.ID.String(), resp.Data.OwnerID)
	})

	t.Run("active employee can read store", func(t *testing.T) {
		worker := testutil.CreateTestUser(t, tc.DB, models.RoleEmployee)
		testutil.CreateTestEmployee(t, tc.DB, worker, tc.Store, models.EmployeeStatusActive)
		token := testutil.GenerateTestToken(t, tc.JWTService, worker, nil)

		req := testutil.AuthenticatedRequest(t, "GET", "/stores/"+tc.Store.ID.String(), nil, token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("stranger gets 403 FORBIDDEN", func(t *testing.T) {
		stranger := testutil.CreateTestUser(t, tc.DB, models.RoleEmployee)
		token := testutil.GenerateTestToken(t, tc.JWTService, stranger, nil)

		req := testutil.AuthenticatedRequest(t, "GET", "/stores/"+tc.Store.ID.String(), nil, token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)

		var resp envelope
		testutil.ParseJSONResponse(t, rr, &resp)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "FORBIDDEN", resp.Error.Code)
	})

	t.Run("missing store gets 404 STORE_NOT_FOUND", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, "GET", "/stores/"+uuid.New().String(), nil, tc.Token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var resp envelope
		testutil.ParseJSONResponse(t, rr, &resp)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "STORE_NOT_FOUND", resp.Error.Code)
	})

	t.Run("malformed id gets 400", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, "GET", "/stores/not-a-uuid", nil, tc.Token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestStoreHandler_Update(t *testing.T) {
	router, tc := setupStoreTestRouter(t)
	defer tc.Cleanup()

	t.Run("owner can patch fields", func(t *testing.T) {
		body := map[string]interface{}{
			"name":      "New Name",
			"gpsRadius": 100,
		}
		req := testutil.AuthenticatedRequest(t, "PATCH", "/stores/"+tc.Store.ID.String(), body, tc.Token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var resp struct {
			Data dto.StoreDTO `json:"data"`
		}
		testutil.ParseJSONResponse(t, rr, &resp)
		assert.Equal(t, "New Name", resp.Data.Name)
		assert.Equal(t, 100, resp.Data.GPSRadius)
	})

	t.Run("invalid payload gets 400 with details", func(t *testing.T) {
		body := map[string]interface{}{"gpsRadius": -5, "status": "BROKEN"}
		req := testutil.AuthenticatedRequest(t, "PATCH", "/stores/"+tc.Store.ID.String(), body, tc.Token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp envelope
		testutil.ParseJSONResponse(t, rr, &resp)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
		assert.Contains(t, resp.Error.Details, "gpsRadius")
		assert.Contains(t, resp.Error.Details, "status")
	})

	t.Run("stranger cannot patch", func(t *testing.T) {
		stranger := testutil.CreateTestUser(t, tc.DB, models.RoleEmployee)
		token := testutil.GenerateTestToken(t, tc.JWTService, stranger, nil)

		body := map[string]interface{}{"name": "Hijacked"}
		req := testutil.AuthenticatedRequest(t, "PATCH", "/stores/"+tc.Store.ID.String(), body, token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestStoreHandler_ListEmployees(t *testing.T) {
	router, tc := setupStoreTestRouter(t)
	defer tc.Cleanup()

	worker := testutil.CreateTestUser(t, tc.DB, models.RoleEmployee)
	testutil.CreateTestEmployee(t, tc.DB, worker, tc.Store, models.EmployeeStatusActive)

	t.Run("owner can read roster", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, "GET", "/stores/"+tc.Store.ID.String()+"/employees", nil, tc.Token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var resp struct {
			Data []dto.EmployeeDTO `json:"data"`
		}
		testutil.ParseJSONResponse(t, rr, &resp)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, worker.ID.String(), resp.Data[0].UserID)
		assert.Equal(t, worker.Email, resp.Data[0].User.Email)
		assert.NotContains(t, rr.Body.String(), "password_hash")
	})

	t.Run("stranger gets 403", func(t *testing.T) {
		stranger := testutil.CreateTestUser(t, tc.DB, models.RoleEmployee)
		token := testutil.GenerateTestToken(t, tc.JWTService, stranger, nil)

		req := testutil.AuthenticatedRequest(t, "GET", "/stores/"+tc.Store.ID.String()+"/employees", nil, token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("missing store gets 404", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, "GET", "/stores/"+uuid.New().String()+"/employees", nil, tc.Token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
