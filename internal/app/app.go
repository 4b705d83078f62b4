// Package app assembles the service once; the deployment shells under cmd/
// stay thin wrappers around it.
package app

import (
	"context"
	"net/http"

	"github.com/omercangizik/AniKutusu1/internal/config"
	"github.com/omercangizik/AniKutusu1/internal/identity"
	identitysupabase "github.com/omercangizik/AniKutusu1/internal/identity/supabase"
	"github.com/omercangizik/AniKutusu1/internal/repository/ddb"
	"github.com/omercangizik/AniKutusu1/internal/service/auth"
	"github.com/omercangizik/AniKutusu1/internal/service/memory"
	storagesupabase "github.com/omercangizik/AniKutusu1/internal/storage/supabase"
	"github.com/omercangizik/AniKutusu1/interfaces/http/rest"
	"github.com/omercangizik/AniKutusu1/interfaces/http/rest/handlers"
	"github.com/omercangizik/AniKutusu1/pkg/observability"

	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
)

// NewLogger builds the application logger for the configured environment.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// NewHandler wires the dependencies and returns the HTTP handler shared by
// the standalone server and the cloud-function packaging. static may be nil.
func NewHandler(ctx context.Context, cfg *config.Config, logger *zap.Logger, static http.Handler) (http.Handler, error) {
	awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, err
	}
	dbClient := dynamodb.NewFromConfig(awsCfg)
	repo := ddb.NewMemoryRepository(dbClient, cfg.DynamoDBTable, logger)

	supabaseClient, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey, nil)
	if err != nil {
		return nil, err
	}
	blobs := storagesupabase.NewBlobStore(supabaseClient.Storage, cfg.StorageBucket, logger)
	provider := identitysupabase.NewProvider(supabaseClient.Auth, logger)
	tokens := identity.NewJWTIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)

	memoryService := memory.NewService(repo, blobs, logger)
	authService := auth.NewService(provider, tokens, logger)

	collector := observability.NewCollector("anikutusu")
	router := rest.NewRouter(
		handlers.NewAuthHandler(authService, logger),
		handlers.NewMemoryHandler(memoryService, collector, cfg.MaxUploadBytes, logger),
		collector,
		cfg,
		logger,
	)
	if static != nil {
		router.WithStatic(static)
	}

	return router.Setup(), nil
}
