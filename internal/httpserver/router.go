package httpserver

import (
	"context"
	"log"

	"agathiya-store/internal/domain"
	accountsvc "agathiya-store/internal/service/account"
	catalogsvc "agathiya-store/internal/service/catalog"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type accountService interface {
	Register(ctx context.Context, in accountsvc.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (domain.Session, string, error)
	LookupByToken(ctx context.Context, token string) (domain.Session, error)
	Logout(ctx context.Context, token string) error
	SessionTTLSeconds() int
}

type catalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Add(ctx context.Context, in catalogsvc.Input) (*domain.Product, error)
	Update(ctx context.Context, id string, in catalogsvc.Input) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	Describe(ctx context.Context, productName string) (string, error)
}

type cartService interface {
	Get(ctx context.Context, owner string) (*domain.Cart, error)
	AddLine(ctx context.Context, owner, productID string, quantity float64, unit domain.Unit) (*domain.Cart, error)
	RemoveLine(ctx context.Context, owner string, index int) (*domain.Cart, error)
	Checkout(ctx context.Context, owner string, purchaser domain.Session) (*domain.Order, error)
}

type orderService interface {
	List(ctx context.Context) ([]domain.Order, error)
	ListByUser(ctx context.Context, userName string) ([]domain.Order, error)
	SetStatus(ctx context.Context, id string, status domain.OrderStatus) error
	Analytics(ctx context.Context) (*domain.Analytics, error)
}

// Deps carries the services the routes are built from.
type Deps struct {
	AccountSvc accountService
	CatalogSvc catalogService
	CartSvc    cartService
	OrderSvc   orderService
}

// buildRouter wires routes for the storefront and admin surfaces.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/auth/register", registerHandler(deps.AccountSvc))
	router.POST("/auth/login", loginHandler(deps.AccountSvc))
	router.GET("/products", listProductsHandler(deps.CatalogSvc))

	authed := router.Group("", authRequired(deps.AccountSvc))
	authed.POST("/auth/logout", logoutHandler(deps.AccountSvc))
	authed.GET("/me", meHandler)
	authed.GET("/cart", getCartHandler(deps.CartSvc))
	authed.POST("/cart/lines", addCartLineHandler(deps.CartSvc))
	authed.DELETE("/cart/lines/:index", removeCartLineHandler(deps.CartSvc))
	authed.POST("/checkout", checkoutHandler(deps.CartSvc))
	authed.GET("/orders", listOrdersHandler(deps.OrderSvc))

	admin := authed.Group("/admin", adminRequired)
	admin.POST("/products", createProductHandler(deps.CatalogSvc))
	admin.PUT("/products/:id", updateProductHandler(deps.CatalogSvc))
	admin.DELETE("/products/:id", deleteProductHandler(deps.CatalogSvc))
	admin.POST("/products/describe", describeProductHandler(deps.CatalogSvc))
	admin.PUT("/orders/:id/status", setOrderStatusHandler(deps.OrderSvc))
	admin.GET("/analytics", analyticsHandler(deps.OrderSvc))

	return router, nil
}
