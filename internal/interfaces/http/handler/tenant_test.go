package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apptenancy "github.com/estatelink/backend/internal/application/tenancy"
	"github.com/estatelink/backend/internal/domain/shared"
	"github.com/estatelink/backend/internal/domain/tenancy"
	"github.com/estatelink/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

func newTenantRouter(tenantRepo *MockTenantRepository, contractRepo *MockContractRepository) *gin.Engine {
	service := apptenancy.NewTenantService(tenantRepo, contractRepo)
	h := NewTenantHandler(service)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.POST("/api/v1/tenants", h.Create)
	router.GET("/api/v1/tenants", h.List)
	router.GET("/api/v1/tenants/:id", h.GetByID)
	return router
}

func storedTenant(t *testing.T, id int) *tenancy.Tenant {
	t.Helper()
	tenant, err := tenancy.NewTenant("Omar Khalil", "omar@example.com", "+971501234567")
	require.NoError(t, err)
	tenant.ID = id
	return tenant
}

// storedContract mimics a repository read: contracts come back with the
// tenant contact columns joined in.
func storedContract(t *testing.T, id, tenantID int) *tenancy.Contract {
	t.Helper()
	contract, err := tenancy.NewContract(tenantID, "Marina Heights 1204", "Dubai Marina",
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(100000), 4, tenancy.PaymentMethodCheque,
		"Sara Haddad", "sara@agency.ae")
	require.NoError(t, err)
	contract.ID = id
	contract.TenantName = "Omar Khalil"
	contract.TenantEmail = "omar@example.com"
	contract.TenantPhone = "+971501234567"
	return contract
}

func TestTenantHandler_Create(t *testing.T) {
	t.Run("returns 201 with the created tenant", func(t *testing.T) {
		tenantRepo := new(MockTenantRepository)
		contractRepo := new(MockContractRepository)
		router := newTenantRouter(tenantRepo, contractRepo)

		tenantRepo.On("ExistsByEmail", mock.Anything, "omar@example.com").Return(false, nil)
		tenantRepo.On("Save", mock.Anything, mock.AnythingOfType("*tenancy.Tenant")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*tenancy.Tenant).ID = 7
			}).Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tenants",
			strings.NewReader(`{"name":"Omar Khalil","email":"omar@example.com","phone":"+971501234567"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				ID    int    `json:"id"`
				Email string `json:"email"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 7, resp.Data.ID)
		assert.Equal(t, "omar@example.com", resp.Data.Email)
	})

	t.Run("returns 409 for a duplicate email", func(t *testing.T) {
		tenantRepo := new(MockTenantRepository)
		contractRepo := new(MockContractRepository)
		router := newTenantRouter(tenantRepo, contractRepo)

		tenantRepo.On("ExistsByEmail", mock.Anything, "omar@example.com").Return(true, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tenants",
			strings.NewReader(`{"name":"Omar Khalil","email":"omar@example.com","phone":"+971501234567"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_ALREADY_EXISTS")
	})

	t.Run("returns 400 with details for an invalid phone", func(t *testing.T) {
		tenantRepo := new(MockTenantRepository)
		contractRepo := new(MockContractRepository)
		router := newTenantRouter(tenantRepo, contractRepo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tenants",
			strings.NewReader(`{"name":"Omar Khalil","email":"omar@example.com","phone":"0501234567"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "ERR_VALIDATION")
		assert.Contains(t, body, `"field":"phone"`)
		assert.Contains(t, body, "+971XXXXXXXXX")
		tenantRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("returns 400 for malformed JSON", func(t *testing.T) {
		tenantRepo := new(MockTenantRepository)
		contractRepo := new(MockContractRepository)
		router := newTenantRouter(tenantRepo, contractRepo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tenants", strings.NewReader(`{"name":`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_INVALID_JSON")
	})
}

func TestTenantHandler_GetByID(t *testing.T) {
	t.Run("returns tenant with contracts", func(t *testing.T) {
		tenantRepo := new(MockTenantRepository)
		contractRepo := new(MockContractRepository)
		router := newTenantRouter(tenantRepo, contractRepo)

		tenantRepo.On("FindByID", mock.Anything, 3).Return(storedTenant(t, 3), nil)
		contractRepo.On("FindByTenant", mock.Anything, 3).
			Return([]tenancy.Contract{*storedContract(t, 5, 3)}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tenants/3", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Marina Heights 1204")
	})

	t.Run("returns 404 for an unknown tenant", func(t *testing.T) {
		tenantRepo := new(MockTenantRepository)
		contractRepo := new(MockContractRepository)
		router := newTenantRouter(tenantRepo, contractRepo)

		tenantRepo.On("FindByID", mock.Anything, 99).Return(nil, shared.ErrNotFound)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tenants/99", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_NOT_FOUND")
	})

	t.Run("returns 400 for a non-numeric id", func(t *testing.T) {
		tenantRepo := new(MockTenantRepository)
		contractRepo := new(MockContractRepository)
		router := newTenantRouter(tenantRepo, contractRepo)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tenants/abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTenantHandler_List(t *testing.T) {
	tenantRepo := new(MockTenantRepository)
	contractRepo := new(MockContractRepository)
	router := newTenantRouter(tenantRepo, contractRepo)

	tenantRepo.On("FindAll", mock.Anything, mock.Anything).
		Return([]tenancy.Tenant{*storedTenant(t, 1)}, nil)
	tenantRepo.On("Count", mock.Anything).Return(int64(1), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tenants?page=1&page_size=10", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Meta struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"total_pages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Meta.Total)
	assert.Equal(t, 1, resp.Meta.TotalPages)
}
