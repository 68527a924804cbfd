package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"agathiya-store/internal/cache"
	"agathiya-store/internal/config"
	"agathiya-store/internal/db"
	"agathiya-store/internal/httpserver"
	"agathiya-store/internal/repository/bucket"
	cartrepo "agathiya-store/internal/repository/cartcache"
	orderrepo "agathiya-store/internal/repository/order"
	productrepo "agathiya-store/internal/repository/product"
	tokenrepo "agathiya-store/internal/repository/token"
	userrepo "agathiya-store/internal/repository/user"
	accountsvc "agathiya-store/internal/service/account"
	cartsvc "agathiya-store/internal/service/cart"
	catalogsvc "agathiya-store/internal/service/catalog"
	describersvc "agathiya-store/internal/service/describer"
	ordersvc "agathiya-store/internal/service/order"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	redisClient, err := cache.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.Fatalf("connect to redis: %v", err)
	}
	defer redisClient.Close()

	store := bucket.NewPostgres(dbpool, logger)
	productRepo := productrepo.New(store, logger)
	orderRepo := orderrepo.New(store, logger)
	userRepo := userrepo.New(store, logger)
	cartRepo := cartrepo.NewRedis(redisClient, cfg.CartTTL)
	tokenRepo := tokenrepo.NewRedis(redisClient)

	describerService := describersvc.New(cfg.GenAIEndpoint, cfg.GenAIKey, logger)
	catalogService := catalogsvc.New(productRepo, describerService)
	cartService := cartsvc.New(cartRepo, productRepo, orderRepo)
	orderService := ordersvc.New(orderRepo, userRepo)
	accountService, err := accountsvc.New(userRepo, tokenRepo, cfg.AdminEmail, cfg.AdminPassword, cfg.SessionTTL)
	if err != nil {
		logger.Fatalf("init account service: %v", err)
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		AccountSvc: accountService,
		CatalogSvc: catalogService,
		CartSvc:    cartService,
		OrderSvc:   orderService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
