package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"voltdrive/internal/inventory"
	"voltdrive/internal/middleware"
	"voltdrive/internal/models"
	"voltdrive/internal/services"
)

type stubCatalogService struct {
	vehicle models.Vehicle
}

func (s *stubCatalogService) ListVehicles(ctx context.Context, params services.ListParams) ([]models.Vehicle, int64, error) {
	return []models.Vehicle{s.vehicle}, 1, nil
}

func (s *stubCatalogService) GetVehicle(ctx context.Context, slug string) (*models.Vehicle, error) {
	return &s.vehicle, nil
}

func (s *stubCatalogService) FeaturedVehicles(ctx context.Context, limit int) ([]models.Vehicle, error) {
	return []models.Vehicle{s.vehicle}, nil
}

func (s *stubCatalogService) FilterMetadata(ctx context.Context) (*inventory.Metadata, error) {
	return &inventory.Metadata{}, nil
}

func catalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := &stubCatalogService{vehicle: models.Vehicle{
		ID:                 primitive.NewObjectID(),
		Slug:               "aurora-lr",
		Make:               "Aurora",
		Model:              "LR",
		Year:               2025,
		Price:              189000,
		Description:        "Long range flagship",
		DescriptionAr:      "الطراز الرائد بعيد المدى",
		ShortDescription:   "Long range",
		ShortDescriptionAr: "مدى طويل",
	}}
	handler := NewCatalogHandler(svc, "AED")

	router := gin.New()
	router.Use(middleware.LocaleMiddleware())
	router.GET("/vehicles/:slug", handler.GetVehicle)
	router.GET("/vehicles", handler.ListVehicles)
	return router
}

func getVehicleView(t *testing.T, router *gin.Engine, acceptLanguage string) map[string]interface{} {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/vehicles/aurora-lr", nil)
	req.Header.Set("Accept-Language", acceptLanguage)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Data
}

func TestGetVehicleLocalizesEnglish(t *testing.T) {
	view := getVehicleView(t, catalogRouter(), "en-US")

	assert.Equal(t, "Long range flagship", view["display_description"])
	assert.Equal(t, "Long range", view["display_short_description"])
	assert.NotEmpty(t, view["display_price"])
}

func TestGetVehicleLocalizesArabic(t *testing.T) {
	view := getVehicleView(t, catalogRouter(), "ar-AE")

	assert.Equal(t, "الطراز الرائد بعيد المدى", view["display_description"])
	assert.Equal(t, "مدى طويل", view["display_short_description"])
	assert.NotEmpty(t, view["display_price"])
}

func TestGetVehicleUnknownLanguageFallsBack(t *testing.T) {
	view := getVehicleView(t, catalogRouter(), "de-DE")

	assert.Equal(t, "Long range flagship", view["display_description"])
}

func TestListVehiclesCarriesLocalizedFields(t *testing.T) {
	router := catalogRouter()
	req := httptest.NewRequest(http.MethodGet, "/vehicles", nil)
	req.Header.Set("Accept-Language", "ar")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "الطراز الرائد بعيد المدى", body.Data[0]["display_description"])
}
