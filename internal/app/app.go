package app

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter"
	"github.com/niksmo/storefront/internal/adapter/catalog"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/kafka"
	"github.com/niksmo/storefront/internal/adapter/orderclient"
	"github.com/niksmo/storefront/internal/core/cart"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/pkg/retry"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

const (
	serdeAttempts = 3
	serdeBackoff  = 500 * time.Millisecond
)

type outbound struct {
	catalog   catalog.Repository
	cart      *cart.Store
	submitter orderclient.Client
	orders    kafka.OrdersProducer
}

type coreService struct {
	products   port.ProductsReader
	highlights port.HighlightsReader
	cart       port.CartKeeper
	checkout   port.CheckoutSubmitter
	recorder   port.OrderRecorder
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	orderSerde schema.Serde
	outbound   outbound
	service    coreService
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initOrderSerde()
	app.initOutboundAdapters()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initOrderSerde() {
	const op = "App.initOrderSerde"

	if !app.cfg.Broker.Enabled {
		return
	}

	srClient, err := sr.NewClient(
		sr.URLs(app.cfg.Broker.SchemaRegistryURLs...),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)
	subject := app.cfg.Broker.OrdersTopic + "-value"

	retryCfg := retry.RetryConfig{
		MaxAttempts: serdeAttempts,
		Backoff:     retry.ExponentialBackoff(serdeBackoff),
	}
	orderSerde, err := retry.DoWithResult(app.ctx, retryCfg,
		func() (schema.Serde, error) {
			return schema.NewSerdeOrderV1(
				app.ctx,
				schema.SubjectOpt(subject),
				schema.SchemaIdentifierOpt(schemaCreater),
			)
		})
	if err != nil {
		app.fallDown(op, err)
	}

	app.orderSerde = orderSerde
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	app.outbound.catalog = catalog.NewRepository()
	app.outbound.cart = cart.NewStore()
	app.outbound.submitter = orderclient.New(app.cfg.Checkout.RecorderURL)

	if !app.cfg.Broker.Enabled {
		return
	}

	var tlsConfig *tls.Config
	if app.cfg.BrokerTLS() {
		t := app.cfg.Broker.TLS
		tlsConfig = adapter.MakeTLSConfig(t.CA, t.Cert, t.Key)
	}

	ordersProducer, err := kafka.NewOrdersProducer(
		kafka.ProducerClientOpt(
			app.ctx,
			app.cfg.Broker.SeedBrokers,
			app.cfg.Broker.OrdersTopic,
			tlsConfig,
		),
		kafka.ProducerEncoderOpt(app.orderSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.outbound.orders = ordersProducer
}

func (app *App) initCoreService() {
	var orderEvents port.OrderEventsProducer
	if app.cfg.Broker.Enabled {
		orderEvents = app.outbound.orders
	}

	s := service.New(
		app.outbound.catalog,
		app.outbound.cart,
		app.outbound.submitter,
		orderEvents,
	)
	app.service.products = s
	app.service.highlights = s
	app.service.cart = s
	app.service.checkout = s
	app.service.recorder = s
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.service.products, app.service.highlights)
	httphandler.RegisterCart(mux, app.service.cart)
	httphandler.RegisterCheckout(mux, app.service.checkout)
	httphandler.RegisterOrders(mux, app.service.recorder)

	handler := httphandler.AllowJSON(mux)
	httpServer := httphandler.NewHTTPServer(addr, handler)
	app.httpServer = httpServer
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.outbound.submitter.Close()
	if app.cfg.Broker.Enabled {
		app.outbound.orders.Close()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
