package catalog

import (
	"fmt"
	"sort"
	"strconv"
)

// Filter is one predicate of a query plan. The price facet is always a
// RangeFilter; every other facet is a SetFilter.
type Filter interface {
	isFilter()
}

// RangeFilter matches values in the inclusive window [Low, High].
type RangeFilter struct {
	Low  float64
	High float64
}

// SetFilter matches any of the accepted values.
type SetFilter struct {
	Values []interface{}
}

func (RangeFilter) isFilter() {}
func (SetFilter) isFilter() {}

// ValidationError reports a malformed filter payload along with the
// offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// facetColumns maps the facet names the storefront may filter on to product
// columns. Anything else in a filter payload is rejected rather than
// interpolated into SQL.
var facetColumns = map[string]string{
	"price":    "price",
	"brand":    "brand_id",
	"category": "category_id",
	"size":     "size",
}

// parseFilters turns the open-ended filter payload into tagged predicates.
// Facets that are absent or carry an empty value list impose no constraint.
func parseFilters(raw map[string][]interface{}) (map[string]Filter, error) {
	filters := make(map[string]Filter, len(raw))
	for facet, values := range raw {
		if len(values) == 0 {
			continue
		}
		column, ok := facetColumns[facet]
		if !ok {
			return nil, &ValidationError{Field: facet, Reason: "unknown facet"}
		}
		if facet == "price" {
			if len(values) < 2 {
				return nil, &ValidationError{Field: facet, Reason: "price range needs [low, high]"}
			}
			low, err := toNumber(values[0])
			if err != nil {
				return nil, &ValidationError{Field: facet, Reason: "non-numeric range bound"}
			}
			high, err := toNumber(values[1])
			if err != nil {
				return nil, &ValidationError{Field: facet, Reason: "non-numeric range bound"}
			}
			filters[column] = RangeFilter{Low: low, High: high}
			continue
		}
		filters[column] = SetFilter{Values: normalizeValues(values)}
	}
	return filters, nil
}

// normalizeValues converts numeric-looking strings to numbers so id sets
// sent as strings still match integer columns.
func normalizeValues(values []interface{}) []interface{} {
	out := make([]interface{}, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			if n, err := strconv.ParseFloat(s, 64); err == nil {
				out = append(out, n)
				continue
			}
		}
		out = append(out, v)
	}
	return out
}

func toNumber(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case string:
		return strconv.ParseFloat(n, 64)
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}

// sortedColumns returns predicate columns in a fixed order so the generated
// SQL is deterministic for a given payload.
func sortedColumns(filters map[string]Filter) []string {
	columns := make([]string, 0, len(filters))
	for column := range filters {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}
