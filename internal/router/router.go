package router

import (
	"net/http"
	"strings"

	"myshop/internal/handler"
	"myshop/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	adminHandler *handler.AdminHandler,
	sessions middleware.TokenValidator,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// Check if this is a request for a specific product ID
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			productHandler.GetByID(w, r)
			return
		}
		productHandler.GetAll(w, r)
	}

	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Cart handler function
	cartRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		switch {
		case path == "/api/cart" || path == "/api/cart/":
			if r.Method == http.MethodDelete {
				cartHandler.Clear(w, r)
				return
			}
			cartHandler.Get(w, r)

		case path == "/api/cart/count":
			cartHandler.Count(w, r)

		case path == "/api/cart/items" || path == "/api/cart/items/":
			cartHandler.AddItem(w, r)

		case strings.HasPrefix(path, "/api/cart/items/"):
			if r.Method == http.MethodDelete {
				cartHandler.RemoveItem(w, r)
				return
			}
			cartHandler.UpdateQuantity(w, r)

		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}

	mux.HandleFunc("/api/cart", cartRouteHandler)
	mux.HandleFunc("/api/cart/", cartRouteHandler)

	// Checkout and local order log
	mux.HandleFunc("/api/checkout", checkoutHandler.PlaceOrder)
	mux.HandleFunc("/api/orders", checkoutHandler.GetOrders)

	// Admin routes behind the session gate
	adminMux := http.NewServeMux()
	adminMux.HandleFunc("/api/admin/login", adminHandler.Login)
	adminMux.HandleFunc("/api/admin/logout", adminHandler.Logout)
	adminMux.HandleFunc("/api/admin/summary", adminHandler.Summary)
	adminMux.HandleFunc("/api/admin/products", adminHandler.Products)
	adminMux.HandleFunc("/api/admin/orders", adminHandler.Orders)

	mux.Handle("/api/admin/", middleware.AdminAuth(sessions, logger)(adminMux))

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
