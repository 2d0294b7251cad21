package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MikeRez0/ypmarket/internal/adapter/config"
	"github.com/MikeRez0/ypmarket/internal/core/domain"
	"github.com/MikeRez0/ypmarket/internal/core/port"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
	logger *zap.Logger
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	orderHandler *OrderHandler,
	vendorHandler *VendorHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))
	if len(conf.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  conf.CORSOrigins,
			AllowMethods:  []string{"GET", "POST", "PATCH"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		}))
	}

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.Use(authCheck(tokenService))
	{
		orders := api.Group("/orders")
		{
			orders.POST("", requireRole(domain.RoleAdmin, domain.RoleBuyer), orderHandler.PlaceOrder)

			fulfillment := orders.Group("/:id")
			fulfillment.Use(requireRole(domain.RoleAdmin, domain.RoleFulfillment))
			fulfillment.GET("", orderHandler.GetOrder)
			fulfillment.PATCH("/status", orderHandler.SetStatus)
			fulfillment.POST("/release", requireRole(domain.RoleAdmin), orderHandler.Release)
		}

		vendors := api.Group("/vendors")
		{
			vendors.POST("", requireRole(domain.RoleAdmin), vendorHandler.CreateVendor)
			vendors.GET("/:id/balance", requireRole(domain.RoleAdmin, domain.RoleVendor), vendorHandler.Balance)
			vendors.GET("/:id/transactions", requireRole(domain.RoleAdmin, domain.RoleVendor), vendorHandler.Transactions)
		}
	}

	return &Router{Engine: router, logger: logger}, nil
}

// Serve starts the HTTP server and shuts it down gracefully once ctx is done.
func (r *Router) Serve(ctx context.Context, listenAddr string) error {
	srv := &http.Server{Addr: listenAddr, Handler: r.Engine}

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("HTTP listening", zap.String("address", listenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
