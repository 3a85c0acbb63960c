package storefront

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []ProductView {
	base := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	return []ProductView{
		{
			Slug: "sg-2801", Name: "SteelGuard 2801", Description: "Heavy-duty work boot",
			SafetyStandard: "S3", Certifications: []string{"SRC", "HRO"},
			Materials:  Materials{Upper: "Full-grain leather", ToeCap: "Steel"},
			Industries: []string{"Construction", "Mining"},
			PriceRange: "$18 - $24", CreatedAt: base,
		},
		{
			Slug: "al-1102", Name: "AeroLite 1102", Description: "Lightweight warehouse shoe",
			SafetyStandard: "S1P", Certifications: []string{"SRC", "ESD"},
			Materials:  Materials{Upper: "Microfiber", ToeCap: "Aluminum"},
			Industries: []string{"Logistics"},
			PriceRange: "$12 - $16", CreatedAt: base.Add(-24 * time.Hour),
		},
		{
			Slug: "fd-2210", Name: "FoodSafe 2210", Description: "Washable white shoe",
			SafetyStandard: "S2", Certifications: []string{},
			Features:   []string{"Waterproof WR rated", "Antibacterial lining"},
			Materials:  Materials{Upper: "White microfiber"},
			Industries: []string{"Food"},
			CreatedAt:  base.Add(-48 * time.Hour),
		},
	}
}

func TestEmptyFiltersReturnEverything(t *testing.T) {
	products := testProducts()

	got := Filter(products, Filters{})
	assert.Equal(t, products, got)

	got = Filter(products, Filters{
		Industry: FilterAll, Standard: "ALL", Certification: "", Material: "", Query: "",
	})
	assert.Equal(t, products, got)
}

func TestStandardFilterExcludesMismatches(t *testing.T) {
	products := testProducts()

	got := Filter(products, Filters{Standard: "S3"})
	require.Len(t, got, 1)
	assert.Equal(t, "sg-2801", got[0].Slug)

	for _, p := range products {
		if p.SafetyStandard != "S3" {
			assert.NotContains(t, got, p)
		}
	}
}

func TestIndustryFilter(t *testing.T) {
	got := Filter(testProducts(), Filters{Industry: "Logistics"})
	require.Len(t, got, 1)
	assert.Equal(t, "al-1102", got[0].Slug)
}

func TestCertificationFallsBackToFeatures(t *testing.T) {
	products := testProducts()

	// ESD is a real certification code on al-1102.
	got := Filter(products, Filters{Certification: "ESD"})
	require.Len(t, got, 1)
	assert.Equal(t, "al-1102", got[0].Slug)

	// WR only appears in fd-2210's feature strings.
	got = Filter(products, Filters{Certification: "WR"})
	require.Len(t, got, 1)
	assert.Equal(t, "fd-2210", got[0].Slug)
}

func TestMaterialKeywordFilter(t *testing.T) {
	got := Filter(testProducts(), Filters{Material: "microfiber"})
	assert.Len(t, got, 2)

	got = Filter(testProducts(), Filters{Material: "steel"})
	require.Len(t, got, 1)
	assert.Equal(t, "sg-2801", got[0].Slug)
}

func TestFreeTextQuery(t *testing.T) {
	got := Filter(testProducts(), Filters{Query: "warehouse"})
	require.Len(t, got, 1)
	assert.Equal(t, "al-1102", got[0].Slug)

	// Industry names are searched too.
	got = Filter(testProducts(), Filters{Query: "mining"})
	require.Len(t, got, 1)
	assert.Equal(t, "sg-2801", got[0].Slug)
}

func TestConjunctionOfFilters(t *testing.T) {
	got := Filter(testProducts(), Filters{Standard: "S3", Industry: "Food"})
	assert.Empty(t, got)
}

func TestPriceValue(t *testing.T) {
	assert.Equal(t, 20.0, PriceValue("$20 - $50"))
	assert.Equal(t, 12.5, PriceValue("USD 12.50 to 16"))
	assert.Equal(t, 0.0, PriceValue(""))
	assert.Equal(t, 0.0, PriceValue("Contact us"))
	assert.Equal(t, 8.0, PriceValue("8"))
}

func TestPriceSorting(t *testing.T) {
	products := testProducts()

	low := Filter(products, Filters{Sort: SortPriceLow})
	// fd-2210 has no price range and sorts as 0.
	assert.Equal(t, "fd-2210", low[0].Slug)
	assert.Equal(t, "al-1102", low[1].Slug)
	assert.Equal(t, "sg-2801", low[2].Slug)

	high := Filter(products, Filters{Sort: SortPriceHigh})
	assert.Equal(t, "sg-2801", high[0].Slug)
	assert.Equal(t, "fd-2210", high[2].Slug)
}

func TestNewestSorting(t *testing.T) {
	products := testProducts()
	// Shuffle the input order.
	shuffled := []ProductView{products[2], products[0], products[1]}

	got := Filter(shuffled, Filters{Sort: SortNewest})
	assert.Equal(t, "sg-2801", got[0].Slug)
	assert.Equal(t, "al-1102", got[1].Slug)
	assert.Equal(t, "fd-2210", got[2].Slug)
}

func manyProducts(n int) []ProductView {
	base := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	out := make([]ProductView, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, ProductView{
			Slug:           fmt.Sprintf("p-%02d", i+1),
			Name:           fmt.Sprintf("Product %d", i+1),
			SafetyStandard: "S1",
			CreatedAt:      base.Add(-time.Duration(i) * time.Hour),
		})
	}
	return out
}

func TestCatalogPagination(t *testing.T) {
	c := NewCatalog(manyProducts(25), 12)

	page := c.Page()
	require.Len(t, page, 12)
	assert.Equal(t, "p-01", page[0].Slug)
	assert.Equal(t, "p-12", page[11].Slug)

	c.SetPage(3)
	page = c.Page()
	require.Len(t, page, 1)
	assert.Equal(t, "p-25", page[0].Slug)

	assert.Equal(t, 3, c.PageCount())
}

func TestCatalogFilterChangeResetsPage(t *testing.T) {
	c := NewCatalog(manyProducts(25), 12)

	c.SetPage(3)
	assert.Equal(t, 3, c.CurrentPage())

	c.SetFilters(Filters{Standard: "S1"})
	assert.Equal(t, 1, c.CurrentPage())

	c.SetPage(2)
	c.SetQuery("Product")
	assert.Equal(t, 1, c.CurrentPage())
}

func TestCatalogPageClamping(t *testing.T) {
	c := NewCatalog(manyProducts(25), 12)

	c.SetPage(99)
	assert.Equal(t, 3, c.CurrentPage())

	c.SetPage(0)
	assert.Equal(t, 1, c.CurrentPage())

	empty := NewCatalog(nil, 12)
	assert.Equal(t, 1, empty.PageCount())
	assert.Empty(t, empty.Page())
}
