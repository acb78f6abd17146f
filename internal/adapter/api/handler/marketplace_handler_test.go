package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nebulamarket/internal/adapter/api"
	"nebulamarket/internal/adapter/api/handler"
	apimiddleware "nebulamarket/internal/adapter/api/middleware"
	"nebulamarket/internal/adapter/api/router"
	"nebulamarket/internal/adapter/repository"
	"nebulamarket/internal/domain/entity"
	"nebulamarket/internal/infrastructure/token"
	"nebulamarket/internal/usecase"
)

type testServer struct {
	echo         *echo.Echo
	tokenManager *token.Manager
	listingRepo  *repository.MemoryListingRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	listingRepo := repository.NewMemoryListingRepository()
	transactionRepo := repository.NewMemoryTransactionRepository()
	userRepo := repository.NewMemoryUserRepository()

	tokenManager := token.NewManager("test-secret", 3600)
	marketplaceUseCase := usecase.NewMarketplaceUseCase(listingRepo, transactionRepo)

	handler.Setup(marketplaceUseCase)
	handler.SetupHealthHandler()
	handler.SetupDevTokenHandler(tokenManager, userRepo)

	e := echo.New()
	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenManager)
	router.Setup(e, authMiddleware)
	router.SetupDevRouter(e, "development")

	return &testServer{
		echo:         e,
		tokenManager: tokenManager,
		listingRepo:  listingRepo,
	}
}

func (s *testServer) request(t *testing.T, method, path, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) seedListing(t *testing.T, id, sellerID string, status entity.ListingStatus) {
	t.Helper()

	now := time.Now()
	listing := &entity.Listing{
		ID:          id,
		ProjectID:   "prj-" + id,
		SellerID:    sellerID,
		Title:       "Seeded listing with a long title",
		Description: strings.Repeat("d", 60),
		Price:       12.99,
		LicenseType: "personal",
		Category:    "models",
		Rating:      5.0,
		Status:      status,
		CreatedAt:   now,
	}
	if status == entity.ListingStatusActive {
		listing.PublishedAt = &now
	}
	require.NoError(t, s.listingRepo.Create(context.Background(), listing))
}

const createBody = `{
	"project_id": "prj-001",
	"title": "Starship Fleet Asset Pack",
	"description": "A complete set of modular starship meshes with PBR textures, ready for import.",
	"price": 24.99,
	"license_type": "commercial",
	"tags": ["3d", "sci-fi"],
	"category": "models"
}`

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := s.request(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)
	assert.Contains(t, rec.Body.String(), "nebula-marketplace")
}

func TestCreateListingRequiresAuth(t *testing.T) {
	s := newTestServer(t)

	rec := s.request(t, http.MethodPost, "/api/marketplace/listings", createBody, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateListingEndpoint(t *testing.T) {
	s := newTestServer(t)

	bearer, err := s.tokenManager.Generate("seller-1")
	require.NoError(t, err)

	rec := s.request(t, http.MethodPost, "/api/marketplace/listings", createBody, bearer)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "listing_id")
	assert.Contains(t, rec.Body.String(), `"status":"created"`)
}

func TestCreateListingValidationError(t *testing.T) {
	s := newTestServer(t)

	bearer, err := s.tokenManager.Generate("seller-1")
	require.NoError(t, err)

	short := strings.Replace(createBody, "Starship Fleet Asset Pack", "Too short", 1)
	rec := s.request(t, http.MethodPost, "/api/marketplace/listings", short, bearer)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestGetListingEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.seedListing(t, "lst-seed1", "seller-1", entity.ListingStatusActive)

	rec := s.request(t, http.MethodGet, "/api/marketplace/listings/lst-seed1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"views":1`)

	missing := s.request(t, http.MethodGet, "/api/marketplace/listings/lst-none", "", "")
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestPublishListingEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.seedListing(t, "lst-seed1", "seller-1", entity.ListingStatusDraft)

	owner, err := s.tokenManager.Generate("seller-1")
	require.NoError(t, err)
	intruder, err := s.tokenManager.Generate("seller-2")
	require.NoError(t, err)

	forbidden := s.request(t, http.MethodPatch, "/api/marketplace/listings/lst-seed1/publish", "", intruder)
	assert.Equal(t, http.StatusForbidden, forbidden.Code)

	rec := s.request(t, http.MethodPatch, "/api/marketplace/listings/lst-seed1/publish", "", owner)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"published"`)

	missing := s.request(t, http.MethodPatch, "/api/marketplace/listings/lst-none/publish", "", owner)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestBrowseListingsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.seedListing(t, "lst-active", "seller-1", entity.ListingStatusActive)
	s.seedListing(t, "lst-draft", "seller-1", entity.ListingStatusDraft)

	rec := s.request(t, http.MethodGet, "/api/marketplace/listings?sort_by=popular", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "lst-active")
	assert.NotContains(t, rec.Body.String(), "lst-draft")
	assert.Contains(t, rec.Body.String(), `"page":1`)
}

func TestStatsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.seedListing(t, "lst-active", "seller-1", entity.ListingStatusActive)

	rec := s.request(t, http.MethodGet, "/api/marketplace/stats", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_listings":1`)
	assert.Contains(t, rec.Body.String(), `"total_sales":0`)
	assert.Contains(t, rec.Body.String(), `"total_volume":0`)
}

func TestDevTokenEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := s.request(t, http.MethodPost, "/_dev/token", `{"user_id": "seller-1"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.Token)

	uid, err := s.tokenManager.Verify(envelope.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, "seller-1", uid)
}

func TestDevTokenDisabledOutsideDevelopment(t *testing.T) {
	e := echo.New()
	router.SetupDevRouter(e, "production")

	req := httptest.NewRequest(http.MethodPost, "/_dev/token", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
