package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vendee/internal/config"
	"vendee/internal/modules/catalog"
	"vendee/internal/modules/discovery"
	"vendee/internal/modules/orders"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// In-memory catalog seeded with the demo vendors.
	repo := catalog.NewSeededRepository()
	demand := catalog.NewDemandTracker()

	catalogSvc := catalog.NewService(repo, demand)
	discoverySvc := discovery.NewService(repo, discovery.NewEngine(), discovery.NewInterpreter(), demand, cfg.DefaultRadiusKm)

	var gateway orders.GatewayInterface
	if cfg.VendorAgentURL != "" {
		gateway = orders.NewHTTPGateway(cfg.VendorAgentURL)
	} else {
		gateway = orders.NewSimulatedGateway()
	}
	orderSvc := orders.NewService(repo, gateway, orders.NewScheduler(), timingsFromConfig(cfg))

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	if cfg.ClientOrigin != "" {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: []string{cfg.ClientOrigin},
		}))
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	customerGroup := e.Group("/customer")
	discovery.NewHandler(discoverySvc).RegisterRoutes(customerGroup)
	orders.NewHandler(orderSvc).RegisterRoutes(customerGroup)

	catalogHandler := catalog.NewHandler(catalogSvc)
	catalogHandler.RegisterCustomerRoutes(customerGroup)
	catalogHandler.RegisterRoutes(e.Group("/vendor"))

	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// timingsFromConfig applies configured overrides on top of the demo
// defaults.
func timingsFromConfig(cfg *config.Config) orders.Timings {
	t := orders.DefaultTimings()
	if cfg.AcceptDelay > 0 {
		t.Accept = cfg.AcceptDelay
	}
	if cfg.PrepareDelay > 0 {
		t.Prepare = cfg.PrepareDelay
	}
	if cfg.DispatchDelay > 0 {
		t.Dispatch = cfg.DispatchDelay
	}
	if cfg.TrackingDelay > 0 {
		t.Tracking = cfg.TrackingDelay
	}
	if cfg.TickInterval > 0 {
		t.Tick = cfg.TickInterval
	}
	return t
}
