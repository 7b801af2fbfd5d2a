package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-shop-api/internal/core/auth"
	"go-shop-api/internal/transport/http/handler"
	mdw "go-shop-api/internal/transport/http/middleware"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	Cart    *handler.CartHandler
	Product *handler.ProductHandler
	Order   *handler.OrderHandler
}

// New 组装引擎：先全局中间件，再按前缀挂路由。
// /auth/register 与 /auth/login 不过鉴权闸门，其余全部要 Bearer token
func New(l *zap.Logger, verifier auth.TokenVerifier, h Handlers) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true), // panic → 500，堆栈只进日志
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authGate := mdw.AuthJWT(verifier)

	ar := r.Group("/auth")
	{
		ar.POST("/register", h.Auth.Register)
		ar.POST("/login", h.Auth.Login)
		ar.GET("/profile", authGate, h.Auth.Profile)
	}

	cr := r.Group("/cart", authGate)
	{
		cr.POST("/add", h.Cart.Add)
		cr.GET("/get", h.Cart.Get)
		cr.DELETE("/:productId", h.Cart.Remove)
	}

	pr := r.Group("/product", authGate)
	{
		pr.GET("/list", h.Product.List)
		pr.GET("/info/:id", h.Product.Info)
		pr.POST("/insert", h.Product.Seed)
	}

	or := r.Group("/order", authGate)
	{
		or.POST("/checkout", h.Order.Checkout)
		or.GET("/list", h.Order.List)
	}

	return r
}
