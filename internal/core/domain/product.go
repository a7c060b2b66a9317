package domain

type (
	Product struct {
		ID              string
		Name            string
		Description     string
		LongDescription string
		Price           float64
		OriginalPrice   float64
		ImageURL        string
		Images          []string
		Category        string
		Brand           string
		Rating          float64
		ReviewsCount    int
		Stock           int
		Tags            []string
		Specifications  map[string]string
	}

	Review struct {
		ID        string
		ProductID string
		Author    string
		Rating    int
		Comment   string
		Date      string
	}
)

// Discounted reports whether the product carries a strike-through price.
func (p Product) Discounted() bool {
	return p.OriginalPrice > p.Price
}

// Popularity is a proxy metric used by the default listing order,
// not a true popularity signal.
func (p Product) Popularity() float64 {
	return p.Rating * float64(p.ReviewsCount)
}
