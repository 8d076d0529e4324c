package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lucashenriquez/exclusive-backend/api/controllers"
	"github.com/lucashenriquez/exclusive-backend/api/middleware"
	"github.com/lucashenriquez/exclusive-backend/internal/auth"
	"github.com/lucashenriquez/exclusive-backend/internal/cart"
	"github.com/lucashenriquez/exclusive-backend/internal/catalog"
	checkoutsvc "github.com/lucashenriquez/exclusive-backend/internal/checkout"
	"github.com/lucashenriquez/exclusive-backend/internal/notifications"
	"github.com/lucashenriquez/exclusive-backend/internal/orders"
	"github.com/lucashenriquez/exclusive-backend/internal/preferences"
	"github.com/lucashenriquez/exclusive-backend/internal/users"
	"github.com/lucashenriquez/exclusive-backend/internal/wishlist"
	"github.com/lucashenriquez/exclusive-backend/pkg/auth/session"
	"github.com/lucashenriquez/exclusive-backend/pkg/config"
	"github.com/lucashenriquez/exclusive-backend/pkg/db"
	"github.com/lucashenriquez/exclusive-backend/pkg/logger"
	"github.com/lucashenriquez/exclusive-backend/pkg/metrics"
	"github.com/lucashenriquez/exclusive-backend/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Rotate(context.Context, string, string) (string, string, error)
	Revoke(context.Context, string) error
}

// Params collects everything the router needs. Catalog routes are public;
// everything under /api/v1 besides auth requires a bearer token.
type Params struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             db.Pinger
	Redis          *redis.Client
	SessionManager sessionManager
	HTTPMetrics    *metrics.HTTPMetrics
	Registry       *prometheus.Registry

	AuthService     auth.Service
	RegisterService auth.RegisterService
	UsersService    users.Service
	CatalogService  catalog.Service
	CartService     cart.Service
	WishlistService wishlist.Service
	Notifications   *notifications.Service
	Preferences     *preferences.Service
	CheckoutService checkoutsvc.Service
	OrdersService   orders.Service
}

func NewRouter(p Params) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(p.HTTPMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.DB, p.Redis))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).Post("/login", controllers.AuthLogin(p.AuthService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, p.Redis, logg)).Post("/register", controllers.AuthRegister(p.RegisterService, p.AuthService, logg))
		r.Post("/logout", controllers.AuthLogout(p.SessionManager, cfg.JWT, logg))
		r.Post("/refresh", controllers.AuthRefresh(p.SessionManager, cfg.JWT, logg))
	})

	// Browsing needs no account, checkout does.
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", controllers.ProductList(p.CatalogService, logg))
		r.Get("/flash-sale", controllers.ProductFlashSale(p.CatalogService, logg))
		r.Get("/best-selling", controllers.ProductBestSelling(p.CatalogService, logg))
		r.Get("/{productId}", controllers.ProductDetail(p.CatalogService, logg))
		r.Get("/{productId}/related", controllers.ProductRelated(p.CatalogService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, p.SessionManager, logg))

		r.Route("/users", func(r chi.Router) {
			r.Get("/me", controllers.UserProfile(p.UsersService, logg))
			r.Put("/me", controllers.UserUpdateProfile(p.UsersService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(p.CartService, logg))
			r.Post("/items", controllers.CartAddItem(p.CartService, logg))
			r.Put("/items", controllers.CartUpdateQuantity(p.CartService, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(p.CartService, logg))
			r.Delete("/", controllers.CartClear(p.CartService, logg))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.WishlistGet(p.WishlistService, logg))
			r.Post("/items", controllers.WishlistAdd(p.WishlistService, logg))
			r.Post("/toggle", controllers.WishlistToggle(p.WishlistService, logg))
			r.Delete("/items/{productId}", controllers.WishlistRemove(p.WishlistService, logg))
			r.Delete("/", controllers.WishlistClear(p.WishlistService, logg))
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", controllers.NotificationsList(p.Notifications, logg))
			r.Delete("/{toastId}", controllers.NotificationsDismiss(p.Notifications, logg))
		})

		r.Route("/preferences", func(r chi.Router) {
			r.Get("/theme", controllers.PreferencesGetTheme(p.Preferences, logg))
			r.Put("/theme", controllers.PreferencesSetTheme(p.Preferences, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", controllers.OrderCreate(p.CheckoutService, logg))
			r.Get("/", controllers.OrderList(p.OrdersService, logg))
			r.Get("/{orderId}", controllers.OrderDetail(p.OrdersService, logg))
		})
	})

	return r
}
