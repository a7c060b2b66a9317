// Package orderclient submits checkout payloads to the order
// recording endpoint over HTTP. The endpoint is a stub that accepts
// any well-formed payload; failures are surfaced to the caller and
// never retried here.
package orderclient

import (
	"context"
	"fmt"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"resty.dev/v3"
)

var _ port.OrderSubmitter = (*Client)(nil)

const submitTimeout = 10 * time.Second

type (
	orderPayload struct {
		Items         []orderPayloadItem `json:"items"`
		TotalPrice    float64            `json:"totalPrice"`
		PaymentMethod string             `json:"paymentMethod"`
	}

	orderPayloadItem struct {
		ProductID string  `json:"productId"`
		Name      string  `json:"name"`
		Price     float64 `json:"price"`
		Quantity  int     `json:"quantity"`
		Category  string  `json:"category"`
	}

	confirmation struct {
		OrderID string `json:"orderId"`
		Message string `json:"message"`
	}
)

type Client struct {
	httpClient  *resty.Client
	recorderURL string
}

func New(recorderURL string) Client {
	cl := resty.New().
		SetTimeout(submitTimeout).
		SetHeader("Content-Type", "application/json")
	return Client{httpClient: cl, recorderURL: recorderURL}
}

func (c Client) Close() {
	_ = c.httpClient.Close()
}

func (c Client) SubmitOrder(
	ctx context.Context, order domain.Order,
) (domain.OrderConfirmation, error) {
	const op = "Client.SubmitOrder"

	if err := ctx.Err(); err != nil {
		return domain.OrderConfirmation{}, fmt.Errorf("%s: %w", op, err)
	}

	var conf confirmation
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(toPayload(order)).
		SetResult(&conf).
		Post(c.recorderURL)
	if err != nil {
		return domain.OrderConfirmation{}, fmt.Errorf("%s: %w", op, err)
	}

	if resp.IsError() {
		return domain.OrderConfirmation{}, fmt.Errorf(
			"%s: recorder responded %s", op, resp.Status(),
		)
	}

	return domain.OrderConfirmation{
		OrderID: conf.OrderID,
		Message: conf.Message,
	}, nil
}

func toPayload(order domain.Order) orderPayload {
	p := orderPayload{
		Items:         make([]orderPayloadItem, 0, len(order.Items)),
		TotalPrice:    order.TotalPrice,
		PaymentMethod: order.PaymentMethod,
	}
	for _, item := range order.Items {
		p.Items = append(p.Items, orderPayloadItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Category:  item.Category,
		})
	}
	return p
}
