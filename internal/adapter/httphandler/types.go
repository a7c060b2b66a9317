package httphandler

type (
	Product struct {
		ID              string            `json:"id"`
		Name            string            `json:"name"`
		Description     string            `json:"description"`
		LongDescription string            `json:"long_description"`
		Price           float64           `json:"price"`
		OriginalPrice   float64           `json:"original_price,omitempty"`
		ImageURL        string            `json:"image_url"`
		Images          []string          `json:"images"`
		Category        string            `json:"category"`
		Brand           string            `json:"brand"`
		Rating          float64           `json:"rating"`
		ReviewsCount    int               `json:"reviews_count"`
		Stock           int               `json:"stock"`
		Tags            []string          `json:"tags"`
		Specifications  map[string]string `json:"specifications"`
	}

	Review struct {
		ID        string `json:"id"`
		ProductID string `json:"product_id"`
		Author    string `json:"author"`
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
		Date      string `json:"date"`
	}

	CatalogFacets struct {
		Categories []string `json:"categories"`
		Brands     []string `json:"brands"`
		MaxPrice   float64  `json:"max_price"`
	}

	CartItem struct {
		Product  Product `json:"product"`
		Quantity int     `json:"quantity"`
	}

	Cart struct {
		Items      []CartItem `json:"items"`
		TotalPrice float64    `json:"total_price"`
		ItemCount  int        `json:"item_count"`
	}

	AddCartItem struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}

	SetCartQuantity struct {
		Quantity int `json:"quantity"`
	}

	CheckoutRequest struct {
		PaymentMethod string `json:"payment_method"`
	}
)

// Order wire shapes follow the recording endpoint contract:
// { items: [...], totalPrice, paymentMethod }.
type (
	OrderPayload struct {
		Items         []OrderPayloadItem `json:"items"`
		TotalPrice    float64            `json:"totalPrice"`
		PaymentMethod string             `json:"paymentMethod"`
	}

	OrderPayloadItem struct {
		ProductID string  `json:"productId"`
		Name      string  `json:"name"`
		Price     float64 `json:"price"`
		Quantity  int     `json:"quantity"`
		Category  string  `json:"category"`
	}

	OrderConfirmation struct {
		OrderID string `json:"orderId"`
		Message string `json:"message"`
	}
)
