package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/alexw14/orange-box/models"
)

// Default result caps. The shop view paginates, the collections view does not.
const (
	ShopLimit        = 50
	CollectionsLimit = 100
)

// sortColumns whitelists client-supplied sort keys. "_id" is what the
// storefront sends for creation order.
var sortColumns = map[string]string{
	"_id":        "id",
	"id":         "id",
	"price":      "price",
	"name":       "name",
	"sold":       "sold",
	"created_at": "created_at",
}

// Plan is a bounded, sorted, paginated product query derived from a filter
// request.
type Plan struct {
	filters map[string]Filter
	sortBy  string
	order   string
	skip    int
	limit   int
}

// BuildPlan validates the request and constructs a query plan. Filters may
// be nil for an unfiltered listing.
func BuildPlan(order, sortBy string, skip, limit int, rawFilters map[string][]interface{}) (*Plan, error) {
	column, ok := sortColumns[sortBy]
	if !ok {
		return nil, &ValidationError{Field: "sortBy", Reason: "unsupported sort field"}
	}
	order = strings.ToLower(order)
	if order != "asc" && order != "desc" {
		return nil, &ValidationError{Field: "order", Reason: "must be asc or desc"}
	}
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = ShopLimit
	}
	filters, err := parseFilters(rawFilters)
	if err != nil {
		return nil, err
	}
	return &Plan{
		filters: filters,
		sortBy:  column,
		order:   order,
		skip:    skip,
		limit:   limit,
	}, nil
}

// Run executes the plan, returning the result window plus the total number
// of products matching the predicates. Every returned product carries its
// resolved brand and category. Ties on the sort key break by id so a
// skip/limit walk never duplicates or drops rows.
func (p *Plan) Run(db *gorm.DB) ([]models.Product, int64, error) {
	query := db.Model(&models.Product{})
	for _, column := range sortedColumns(p.filters) {
		switch f := p.filters[column].(type) {
		case RangeFilter:
			query = query.Where(column+" >= ? AND "+column+" <= ?", f.Low, f.High)
		case SetFilter:
			query = query.Where(column+" IN ?", f.Values)
		}
	}

	// Count in its own session so the finisher does not pollute the
	// statement the window query builds on.
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(fmt.Sprintf("%s %s", p.sortBy, p.order))
	if p.sortBy != "id" {
		query = query.Order("id asc")
	}

	products := []models.Product{}
	err := query.
		Offset(p.skip).
		Limit(p.limit).
		Preload("Brand").
		Preload("Category").
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// FindByIDs resolves a set of product ids with the same brand/category
// enrichment. Ids that match nothing are simply absent from the result.
func FindByIDs(db *gorm.DB, ids []uint) ([]models.Product, error) {
	products := []models.Product{}
	if len(ids) == 0 {
		return products, nil
	}
	err := db.
		Preload("Brand").
		Preload("Category").
		Where("id IN ?", ids).
		Order("id asc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ParseIDList parses the by-id lookup input: a single id, or a
// comma-delimited list when listType is "array". Malformed tokens are
// dropped, matching the silent-omission contract of the lookup itself.
func ParseIDList(raw, listType string) []uint {
	tokens := []string{raw}
	if listType == "array" {
		tokens = strings.Split(raw, ",")
	}
	ids := make([]uint, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if id, err := strconv.ParseUint(token, 10, 64); err == nil {
			ids = append(ids, uint(id))
		}
	}
	return ids
}
