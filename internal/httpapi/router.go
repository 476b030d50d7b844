package httpapi

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Services struct {
	Auth    AuthService
	Catalog CatalogService
	Carts   CartService
	Orders  OrderService
	DB      Pinger
}

type Handler struct {
	auth    AuthService
	catalog CatalogService
	carts   CartService
	orders  OrderService
	db      Pinger
	log     *logrus.Logger
}

func NewHandler(svc Services, log *logrus.Logger) *Handler {
	return &Handler{
		auth:    svc.Auth,
		catalog: svc.Catalog,
		carts:   svc.Carts,
		orders:  svc.Orders,
		db:      svc.DB,
		log:     log,
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}

	return cfg
}

// NewRouter wires every route under /api plus /health.
func NewRouter(h *Handler, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(h.log))
	r.Use(cors.New(corsConfig(corsOrigins)))

	r.GET("/health", h.Health)

	authenticated := Authenticate(h.auth, h.log)
	adminOnly := RequireAdmin(h.log)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
			auth.POST("/logout", authenticated, h.Logout)
			auth.GET("/verify", authenticated, h.Verify)
		}

		users := api.Group("/users", authenticated)
		{
			users.GET("/profile", h.GetProfile)
			users.PUT("/profile", h.UpdateProfile)
		}

		products := api.Group("/products")
		{
			products.GET("", h.ListProducts)
			products.GET("/:id", h.GetProduct)
			products.POST("", authenticated, adminOnly, h.CreateProduct)
			products.PUT("/:id", authenticated, adminOnly, h.UpdateProduct)
			products.DELETE("/:id", authenticated, adminOnly, h.DeleteProduct)
		}

		cart := api.Group("/cart", authenticated)
		{
			cart.GET("", h.GetCart)
			cart.POST("/add", h.AddToCart)
			cart.PUT("/:cartItemId", h.UpdateCartItem)
			cart.DELETE("/:cartItemId", h.RemoveFromCart)
			cart.DELETE("", h.ClearCart)
		}

		orders := api.Group("/orders", authenticated)
		{
			orders.POST("", h.CreateOrder)
			orders.GET("", h.ListOrders)
			orders.GET("/:orderId", h.GetOrder)
			orders.POST("/:orderId/cancel", h.CancelOrder)
			orders.PUT("/:orderId", adminOnly, h.UpdateOrder)
		}
	}

	return r
}
