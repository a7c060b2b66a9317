package domain

type SortKey string

const (
	SortPopularity SortKey = "popularity"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortRating     SortKey = "rating"
)

// SortKeyOf maps a raw query value to a sort key.
// Unknown and empty values fall back to popularity.
func SortKeyOf(s string) SortKey {
	switch k := SortKey(s); k {
	case SortPriceAsc, SortPriceDesc, SortRating:
		return k
	default:
		return SortPopularity
	}
}

// CatalogFacets are the derived catalog facts a client needs to
// populate filter controls: the distinct categories and brands in
// catalog order, and the highest product price as the price-range
// upper bound.
type CatalogFacets struct {
	Categories []string
	Brands     []string
	MaxPrice   float64
}

// ProductFilter narrows and orders the catalog listing.
// Empty Categories/Brands mean no restriction, PriceMax <= 0 means
// no upper bound, MinRating 0 means no threshold.
type ProductFilter struct {
	Categories []string
	Brands     []string
	PriceMin   float64
	PriceMax   float64
	MinRating  float64
	Query      string
	Sort       SortKey
}
