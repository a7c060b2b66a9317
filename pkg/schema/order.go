package schema

const OrderSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "order",
	"fields": [
		{"name": "order_id", "type": "string"},
		{"name": "items", "type": {"type": "array", "items": {
			"type": "record",
			"name": "order_item",
			"fields": [
				{"name": "product_id", "type": "string"},
				{"name": "name", "type": "string"},
				{"name": "price", "type": "double"},
				{"name": "quantity", "type": "long"},
				{"name": "category", "type": "string"}
			]
		}}},
		{"name": "total_price", "type": "double"},
		{"name": "payment_method", "type": "string"},
		{"name": "placed_at", "type": "string"}
	]
}`

type (
	OrderV1 struct {
		OrderID       string        `avro:"order_id"`
		Items         []OrderItemV1 `avro:"items"`
		TotalPrice    float64       `avro:"total_price"`
		PaymentMethod string        `avro:"payment_method"`
		PlacedAt      string        `avro:"placed_at"`
	}

	OrderItemV1 struct {
		ProductID string  `avro:"product_id"`
		Name      string  `avro:"name"`
		Price     float64 `avro:"price"`
		Quantity  int     `avro:"quantity"`
		Category  string  `avro:"category"`
	}
)
