package main

import (
	"context"
	"log"
	"time"

	"github.com/omercangizik/AniKutusu1/internal/app"
	"github.com/omercangizik/AniKutusu1/internal/config"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
)

var adapter *httpadapter.HandlerAdapterV2

// init runs during cold start
func init() {
	start := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := app.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	// The function exposes the API only; static assets are not served here.
	handler, err := app.NewHandler(ctx, cfg, logger, nil)
	if err != nil {
		log.Fatalf("Failed to initialize service: %v", err)
	}

	adapter = httpadapter.NewV2(handler)
	log.Printf("Cold start completed in %s", time.Since(start))
}

// Handler proxies API Gateway events into the shared HTTP handler.
func Handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(Handler)
}
