// Package main runs the bag-works backend HTTP server.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/bagworks/backend/internal/config"
	"github.com/bagworks/backend/internal/httpapi"
	"github.com/bagworks/backend/internal/kv"
	"github.com/bagworks/backend/internal/logging"
	"github.com/bagworks/backend/internal/middleware"
	"github.com/bagworks/backend/internal/storage"
)

func main() {
	addrFlag := flag.String("addr", "", "listen address (overrides HTTP_ADDR)")
	flag.Parse()

	log := logging.New("server")

	cfg, err := config.Load()
	if err != nil {
		log.Errorf("load config: %v", err)
		os.Exit(1)
	}
	if *addrFlag != "" {
		cfg.Addr = *addrFlag
	}

	ctx := context.Background()
	awscfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		log.Errorf("load aws config: %v", err)
		os.Exit(1)
	}
	client := dynamodb.NewFromConfig(awscfg)

	stores := httpapi.Stores{
		Orders:   storage.NewOrderStore(kv.NewDynamo(client, cfg.OrdersTable), log),
		Accounts: storage.NewAccountStore(kv.NewDynamo(client, cfg.AccountsTable), log),
		Agents:   storage.NewAgentStore(kv.NewDynamo(client, cfg.AgentsTable), log),
		Parties:  storage.NewPartyStore(kv.NewDynamo(client, cfg.PartyTable), log),
		Products: storage.NewProductStore(kv.NewDynamo(client, cfg.ProductsTable), log),
	}

	router := httpapi.New(stores, log).Router()
	router.Use(middleware.RequestLogging(log))
	router.Use(middleware.Metrics())

	// CORS wraps the router so preflight requests get answered even when no
	// route matches the OPTIONS method.
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      middleware.CORS(cfg.Origins())(router),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("server: %v", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}
