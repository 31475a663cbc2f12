package catalog

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/alexw14/orange-box/models"
)

func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) (models.Brand, models.Category) {
	t.Helper()
	brand := models.Brand{Name: "Nike"}
	require.NoError(t, db.Create(&brand).Error)
	category := models.Category{Name: "Running"}
	require.NoError(t, db.Create(&category).Error)

	products := []models.Product{
		{Name: "A", Price: 10, BrandID: brand.ID, CategoryID: category.ID, Size: 9, Stock: 5},
		{Name: "B", Price: 50, BrandID: brand.ID, CategoryID: category.ID, Size: 10, Stock: 5},
		{Name: "C", Price: 90, BrandID: brand.ID, CategoryID: category.ID, Size: 11, Stock: 5},
	}
	require.NoError(t, db.Create(&products).Error)
	return brand, category
}

func names(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestPriceRangeFilter(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)

	for _, order := range []string{"asc", "desc"} {
		plan, err := BuildPlan(order, "_id", 0, ShopLimit, map[string][]interface{}{
			"price": {float64(20), float64(100)},
		})
		require.NoError(t, err)

		products, total, err := plan.Run(db)
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.ElementsMatch(t, []string{"B", "C"}, names(products))
	}
}

func TestEmptyFacetEqualsOmitted(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)

	withEmpty, err := BuildPlan("asc", "_id", 0, ShopLimit, map[string][]interface{}{
		"brand": {},
		"price": {},
	})
	require.NoError(t, err)
	omitted, err := BuildPlan("asc", "_id", 0, ShopLimit, nil)
	require.NoError(t, err)

	gotEmpty, totalEmpty, err := withEmpty.Run(db)
	require.NoError(t, err)
	gotOmitted, totalOmitted, err := omitted.Run(db)
	require.NoError(t, err)

	assert.Equal(t, totalOmitted, totalEmpty)
	assert.Equal(t, names(gotOmitted), names(gotEmpty))
}

func TestLimitBoundsResultWindow(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)

	plan, err := BuildPlan("asc", "_id", 0, 2, nil)
	require.NoError(t, err)

	products, total, err := plan.Run(db)
	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.EqualValues(t, 3, total)
}

func TestSkipNeverOverrunsTotal(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)

	plan, err := BuildPlan("asc", "_id", 2, 10, nil)
	require.NoError(t, err)

	products, total, err := plan.Run(db)
	require.NoError(t, err)
	assert.LessOrEqual(t, int64(2+len(products)), total)
}

func TestPaginationStableUnderSortTies(t *testing.T) {
	db := newTestDB(t)
	brand := models.Brand{Name: "Vans"}
	require.NoError(t, db.Create(&brand).Error)
	category := models.Category{Name: "Skate"}
	require.NoError(t, db.Create(&category).Error)

	// Identical prices force the tie-break onto the id column.
	for i := 0; i < 7; i++ {
		p := models.Product{
			Name:       fmt.Sprintf("tied-%d", i),
			Price:      25,
			BrandID:    brand.ID,
			CategoryID: category.ID,
		}
		require.NoError(t, db.Create(&p).Error)
	}

	full, err := BuildPlan("desc", "price", 0, 100, nil)
	require.NoError(t, err)
	all, _, err := full.Run(db)
	require.NoError(t, err)
	require.Len(t, all, 7)

	var paged []models.Product
	for skip := 0; skip < 7; skip += 2 {
		plan, err := BuildPlan("desc", "price", skip, 2, nil)
		require.NoError(t, err)
		page, _, err := plan.Run(db)
		require.NoError(t, err)
		paged = append(paged, page...)
	}

	assert.Equal(t, names(all), names(paged))
}

func TestSetFilterOnBrand(t *testing.T) {
	db := newTestDB(t)
	nike, category := seedCatalog(t, db)
	adidas := models.Brand{Name: "Adidas"}
	require.NoError(t, db.Create(&adidas).Error)
	other := models.Product{Name: "D", Price: 30, BrandID: adidas.ID, CategoryID: category.ID}
	require.NoError(t, db.Create(&other).Error)

	plan, err := BuildPlan("asc", "_id", 0, ShopLimit, map[string][]interface{}{
		"brand": {float64(adidas.ID)},
	})
	require.NoError(t, err)

	products, total, err := plan.Run(db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, products, 1)
	assert.Equal(t, "D", products[0].Name)
	assert.NotEqual(t, nike.ID, products[0].BrandID)
}

func TestRunResolvesBrandAndCategory(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)

	plan, err := BuildPlan("asc", "_id", 0, ShopLimit, nil)
	require.NoError(t, err)

	products, _, err := plan.Run(db)
	require.NoError(t, err)
	require.NotEmpty(t, products)
	assert.Equal(t, "Nike", products[0].Brand.Name)
	assert.Equal(t, "Running", products[0].Category.Name)
}

func TestBuildPlanRejectsUnknownFacet(t *testing.T) {
	_, err := BuildPlan("asc", "_id", 0, ShopLimit, map[string][]interface{}{
		"color": {"red"},
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "color", vErr.Field)
}

func TestBuildPlanRejectsNonNumericPrice(t *testing.T) {
	_, err := BuildPlan("asc", "_id", 0, ShopLimit, map[string][]interface{}{
		"price": {"cheap", "expensive"},
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "price", vErr.Field)
}

func TestBuildPlanRejectsUnknownSortField(t *testing.T) {
	_, err := BuildPlan("asc", "password", 0, ShopLimit, nil)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "sortBy", vErr.Field)
}

func TestFindByIDsDropsUnmatched(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)

	products, err := FindByIDs(db, []uint{1, 2, 9999})
	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "Nike", products[0].Brand.Name)
}

func TestFindByIDsEmptyInput(t *testing.T) {
	db := newTestDB(t)

	products, err := FindByIDs(db, nil)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestParseIDList(t *testing.T) {
	assert.Equal(t, []uint{7}, ParseIDList("7", ""))
	assert.Equal(t, []uint{1, 2, 3}, ParseIDList("1,2,3", "array"))
	// Malformed tokens are dropped, not fatal.
	assert.Equal(t, []uint{4}, ParseIDList("4,oops,", "array"))
	assert.Empty(t, ParseIDList("", ""))
}
