package storefront

import (
	"sort"
	"strconv"
	"strings"
)

// Sort orders for catalog browsing
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// FilterAll is the "no constraint" sentinel a dimension may carry instead
// of being empty.
const FilterAll = "all"

// Filters is a conjunction of independently-optional dimensions. An empty
// (or "all") value places no constraint on that dimension.
type Filters struct {
	Industry      string
	Standard      string
	Certification string
	Material      string
	Query         string
	Sort          string
}

func isSet(v string) bool {
	return v != "" && !strings.EqualFold(v, FilterAll)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func matchIndustry(p ProductView, industry string) bool {
	for _, ind := range p.Industries {
		if strings.EqualFold(ind, industry) {
			return true
		}
	}
	return false
}

// matchCertification matches certification codes first, then falls back to
// the feature strings, which marketing sometimes uses to carry cert text.
func matchCertification(p ProductView, keyword string) bool {
	for _, c := range p.Certifications {
		if containsFold(c, keyword) {
			return true
		}
	}
	for _, f := range p.Features {
		if containsFold(f, keyword) {
			return true
		}
	}
	return false
}

func matchMaterial(p ProductView, keyword string) bool {
	m := p.Materials
	for _, field := range []string{m.Upper, m.Outsole, m.ToeCap, m.Midsole, m.Lining} {
		if field != "" && containsFold(field, keyword) {
			return true
		}
	}
	return false
}

func matchQuery(p ProductView, query string) bool {
	if containsFold(p.Name, query) || containsFold(p.Description, query) {
		return true
	}
	for _, ind := range p.Industries {
		if containsFold(ind, query) {
			return true
		}
	}
	return false
}

func matches(p ProductView, f Filters) bool {
	if isSet(f.Industry) && !matchIndustry(p, f.Industry) {
		return false
	}
	if isSet(f.Standard) && !strings.EqualFold(p.SafetyStandard, f.Standard) {
		return false
	}
	if isSet(f.Certification) && !matchCertification(p, f.Certification) {
		return false
	}
	if isSet(f.Material) && !matchMaterial(p, f.Material) {
		return false
	}
	if isSet(f.Query) && !matchQuery(p, f.Query) {
		return false
	}
	return true
}

// PriceValue extracts the first numeric run from a free-text price range,
// e.g. "$20 - $50" parses to 20. Unparseable input yields 0.
func PriceValue(priceRange string) float64 {
	start := -1
	for i, r := range priceRange {
		if r >= '0' && r <= '9' {
			start = i
			break
		}
	}
	if start < 0 {
		return 0
	}

	end := start
	seenDot := false
	for end < len(priceRange) {
		c := priceRange[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}

	v, err := strconv.ParseFloat(strings.TrimSuffix(priceRange[start:end], "."), 64)
	if err != nil {
		return 0
	}
	return v
}

// Filter applies the conjunction of set dimensions and the sort order.
// The input slice is not modified.
func Filter(products []ProductView, f Filters) []ProductView {
	out := make([]ProductView, 0, len(products))
	for _, p := range products {
		if matches(p, f) {
			out = append(out, p)
		}
	}

	switch f.Sort {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return PriceValue(out[i].PriceRange) < PriceValue(out[j].PriceRange)
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return PriceValue(out[i].PriceRange) > PriceValue(out[j].PriceRange)
		})
	default: // SortNewest
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}

	return out
}

// Catalog holds the full locale's product list and the browsing state:
// current filters, search text and page index. Any filter or query change
// resets to the first page.
type Catalog struct {
	products []ProductView
	filters  Filters
	pageSize int
	page     int
}

// NewCatalog creates a catalog over an already-fetched product list
func NewCatalog(products []ProductView, pageSize int) *Catalog {
	if pageSize < 1 {
		pageSize = 12
	}
	return &Catalog{
		products: products,
		pageSize: pageSize,
		page:     1,
	}
}

// SetFilters replaces the filter set and resets to page 1
func (c *Catalog) SetFilters(f Filters) {
	c.filters = f
	c.page = 1
}

// SetQuery replaces the search text and resets to page 1
func (c *Catalog) SetQuery(q string) {
	c.filters.Query = q
	c.page = 1
}

// Filters returns the current filter set
func (c *Catalog) Filters() Filters {
	return c.filters
}

// Filtered returns all products matching the current filters, sorted
func (c *Catalog) Filtered() []ProductView {
	return Filter(c.products, c.filters)
}

// PageCount returns the number of pages for the current filters
func (c *Catalog) PageCount() int {
	n := len(c.Filtered())
	if n == 0 {
		return 1
	}
	return (n + c.pageSize - 1) / c.pageSize
}

// CurrentPage returns the 1-based page index
func (c *Catalog) CurrentPage() int {
	return c.page
}

// SetPage moves to a page, clamped to the valid range
func (c *Catalog) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if max := c.PageCount(); page > max {
		page = max
	}
	c.page = page
}

// Page returns the products on the current page
func (c *Catalog) Page() []ProductView {
	filtered := c.Filtered()

	start := (c.page - 1) * c.pageSize
	if start >= len(filtered) {
		return []ProductView{}
	}
	end := start + c.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}
