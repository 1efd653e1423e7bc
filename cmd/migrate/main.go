// Command migrate applies the catalog DDL to a Cloud Spanner database,
// usually the emulator during local development.
//
//	SPANNER_EMULATOR_HOST=localhost:9010 \
//	SPANNER_DATABASE=projects/test-project/instances/emulator-instance/databases/test-db \
//	go run ./cmd/migrate
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"go.uber.org/zap"

	"github.com/murkotick/promotion-catalog-service/internal/pkg/config"
	"github.com/murkotick/promotion-catalog-service/internal/pkg/logger"
	"github.com/murkotick/promotion-catalog-service/internal/pkg/schema"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db := cfg.Spanner.Database
	stmts, err := schema.ReadStatements(schema.InitialFile)
	if err != nil {
		log.Fatal("read DDL", zap.String("path", schema.InitialFile), zap.Error(err))
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		log.Fatal("database admin client", zap.Error(err))
	}
	defer admin.Close()

	if err := schema.Apply(ctx, admin, db, stmts); err != nil {
		log.Fatal("migration failed", zap.String("database", db), zap.Error(err))
	}
	log.Info("schema applied", zap.String("database", db), zap.Int("statements", len(stmts)))
}
