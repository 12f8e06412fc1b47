package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter/catalog"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/internal/core/store"
	"github.com/spf13/afero"
)

type stores struct {
	cart     *store.Cart
	wishlist *store.Wishlist
	compare  *store.Compare
	prefs    *store.Preferences
}

type App struct {
	cfg        config.Config
	catalog    catalog.Catalog
	stores     stores
	service    service.Service
	httpServer httphandler.HTTPServer
}

func New(cfg config.Config) *App {
	app := &App{cfg: cfg}

	app.initLogger()
	app.initCatalog()
	app.initStores()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initCatalog() {
	const op = "App.initCatalog"

	c, err := catalog.New()
	if err != nil {
		app.fallDown(op, err)
	}
	app.catalog = c
}

func (app *App) initStores() {
	const op = "App.initStores"

	kv, err := storage.NewFileKV(afero.NewOsFs(), app.cfg.StorageDir)
	if err != nil {
		app.fallDown(op, err)
	}

	app.stores.cart = store.NewCart(kv, app.catalog)
	app.stores.wishlist = store.NewWishlist(kv, app.catalog)
	app.stores.compare = store.NewCompare(kv, app.catalog)
	app.stores.prefs = store.NewPreferences(kv)
}

func (app *App) initCoreService() {
	rates := domain.DefaultRates()
	for code, rate := range app.cfg.CurrencyRates {
		rates[domain.CurrencyCode(code)] = rate
	}

	s := service.New(
		app.catalog,
		app.stores.cart,
		app.stores.wishlist,
		app.stores.compare,
		app.stores.prefs,
		rates,
	)
	s.Subscribe(logChange)
	app.service = s
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.service)
	httphandler.RegisterCart(mux, app.service, app.service)
	httphandler.RegisterLists(mux, app.service, app.service, app.service)
	httphandler.RegisterPrefs(mux, app.service)
	httphandler.RegisterOrders(mux, app.service)
	httphandler.RegisterBadges(mux, app.service)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(addr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}

func logChange(ev domain.ChangeEvent) {
	slog.Debug("store changed", "store", ev.Store, "size", ev.Size)
}
