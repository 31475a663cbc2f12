package productcontroller_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/alexw14/orange-box/models"
	"github.com/alexw14/orange-box/routes"
	"github.com/alexw14/orange-box/session"
)

func newTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Brand{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
	))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupRoutes(r, db, session.New("test-secret", time.Hour))
	return r, db
}

func seedShop(t *testing.T, db *gorm.DB) {
	t.Helper()
	brand := models.Brand{Name: "Nike"}
	require.NoError(t, db.Create(&brand).Error)
	category := models.Category{Name: "Running"}
	require.NoError(t, db.Create(&category).Error)
	products := []models.Product{
		{Name: "A", Price: 10, BrandID: brand.ID, CategoryID: category.ID},
		{Name: "B", Price: 50, BrandID: brand.ID, CategoryID: category.ID},
		{Name: "C", Price: 90, BrandID: brand.ID, CategoryID: category.ID},
	}
	require.NoError(t, db.Create(&products).Error)
}

func postShop(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/products/shop", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestShopPriceRange(t *testing.T) {
	r, db := newTestApp(t)
	seedShop(t, db)

	w := postShop(r, `{"filters":{"price":[20,100]}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Size     int              `json:"size"`
		Sneakers []models.Product `json:"sneakers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Size)

	got := []string{}
	for _, p := range body.Sneakers {
		got = append(got, p.Name)
		assert.Equal(t, "Nike", p.Brand.Name)
	}
	assert.ElementsMatch(t, []string{"B", "C"}, got)
}

func TestShopEmptyFiltersReturnEverything(t *testing.T) {
	r, db := newTestApp(t)
	seedShop(t, db)

	w := postShop(r, `{"filters":{"brand":[],"price":[]}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Size int `json:"size"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Size)
}

func TestShopRejectsUnknownFacet(t *testing.T) {
	r, db := newTestApp(t)
	seedShop(t, db)

	w := postShop(r, `{"filters":{"color":["red"]}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "color")
}

func TestShopRejectsNonNumericPrice(t *testing.T) {
	r, db := newTestApp(t)
	seedShop(t, db)

	w := postShop(r, `{"filters":{"price":["low","high"]}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "price")
}

func TestCollectionsEndpoint(t *testing.T) {
	r, db := newTestApp(t)
	seedShop(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/products/sneakers/collections?order=desc&sortBy=price&limit=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 2)
	assert.Equal(t, "C", products[0].Name)
	assert.Equal(t, "B", products[1].Name)
}

func TestGetByIDsEndpoint(t *testing.T) {
	r, db := newTestApp(t)
	seedShop(t, db)

	var ids []uint
	require.NoError(t, db.Model(&models.Product{}).Order("id asc").Pluck("id", &ids).Error)

	path := fmt.Sprintf("/api/products/sneakers?type=array&id=%d,%d,9999", ids[0], ids[1])
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 2)
}

func TestCatalogWritesRequireAdmin(t *testing.T) {
	r, _ := newTestApp(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products/sneakers", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
