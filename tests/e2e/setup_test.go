//go:build e2e

// Package e2e runs the promotion usecases and queries against the Spanner
// emulator. Run with: go test -tags e2e ./tests/e2e
package e2e

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	instancepb "cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain/services"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/queries"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/queries/quote_price"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/repo"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/usecases/create_promotion"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/usecases/delete_promotion"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/usecases/update_promotion"
	"github.com/murkotick/promotion-catalog-service/internal/pkg/clock"
	committer "github.com/murkotick/promotion-catalog-service/internal/pkg/committer"
	"github.com/murkotick/promotion-catalog-service/internal/pkg/schema"
)

var (
	spClient *spanner.Client
	clk      *clock.FakeClock

	cm        *committer.Adapter
	createUC  *create_promotion.Interactor
	updateUC  *update_promotion.Interactor
	deleteUC  *delete_promotion.Interactor
	quoteQ    *quote_price.Handler
	readModel *queries.SpannerReadModel
)

// emulatorDB names a throwaway database on the emulator instance.
type emulatorDB struct {
	project  string
	instance string
	id       string
}

func (d emulatorDB) projectPath() string  { return "projects/" + d.project }
func (d emulatorDB) instancePath() string { return d.projectPath() + "/instances/" + d.instance }
func (d emulatorDB) path() string         { return d.instancePath() + "/databases/" + d.id }

func TestMain(m *testing.M) {
	os.Exit(runSuite(m))
}

func runSuite(m *testing.M) int {
	if os.Getenv("SPANNER_EMULATOR_HOST") == "" {
		_ = os.Setenv("SPANNER_EMULATOR_HOST", "localhost:9010")
	}
	clk = clock.NewFake(time.Now().UTC().Truncate(time.Second))

	ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
	defer cancel()

	db := emulatorDB{
		project:  env("SPANNER_PROJECT_ID", "test-project"),
		instance: env("SPANNER_INSTANCE_ID", "emulator-instance"),
		id:       "e2e_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
	}

	dbAdmin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "database admin client: %v\n", err)
		return 1
	}
	defer dbAdmin.Close()

	if err := provision(ctx, dbAdmin, db); err != nil {
		fmt.Fprintf(os.Stderr, "provision %s: %v\n", db.path(), err)
		return 1
	}
	defer func() {
		dropCtx, dropCancel := context.WithTimeout(context.Background(), time.Minute)
		defer dropCancel()
		_ = dbAdmin.DropDatabase(dropCtx, &databasepb.DropDatabaseRequest{Database: db.path()})
	}()

	spClient, err = spanner.NewClient(ctx, db.path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "spanner client: %v\n", err)
		return 1
	}
	defer spClient.Close()

	wire()
	return m.Run()
}

func provision(ctx context.Context, dbAdmin *database.DatabaseAdminClient, db emulatorDB) error {
	instAdmin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("instance admin client: %w", err)
	}
	defer instAdmin.Close()

	if err := ensureInstance(ctx, instAdmin, db); err != nil {
		return err
	}

	op, err := dbAdmin.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          db.instancePath(),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", db.id),
	})
	if err != nil {
		return fmt.Errorf("create database: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("create database wait: %w", err)
	}

	stmts, err := schema.ReadStatements(filepath.Join("..", "..", schema.InitialFile))
	if err != nil {
		return err
	}
	return schema.Apply(ctx, dbAdmin, db.path(), stmts)
}

func ensureInstance(ctx context.Context, admin *instance.InstanceAdminClient, db emulatorDB) error {
	_, err := admin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: db.instancePath()})
	if err == nil {
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("get instance: %w", err)
	}

	op, err := admin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     db.projectPath(),
		InstanceId: db.instance,
		Instance: &instancepb.Instance{
			Config:      db.projectPath() + "/instanceConfigs/emulator-config",
			DisplayName: "Promotion E2E",
			NodeCount:   1,
		},
	})
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	_, err = op.Wait(ctx)
	return err
}

func wire() {
	promoRepo := repo.NewPromotionRepo()
	outboxRepo := repo.NewOutboxRepo()
	cm = committer.NewAdapter(spClient)
	readModel = queries.NewSpannerReadModel(spClient)

	createUC = create_promotion.NewInteractor(promoRepo, outboxRepo, cm, clk)
	updateUC = update_promotion.NewInteractor(promoRepo, outboxRepo, cm, readModel, clk)
	deleteUC = delete_promotion.NewInteractor(promoRepo, outboxRepo, cm, readModel, clk)
	quoteQ = quote_price.NewHandler(readModel, services.NewPriceResolver(), clk)
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEmulator(t *testing.T) {
	t.Helper()
	require.NotEmpty(t, os.Getenv("SPANNER_EMULATOR_HOST"), "SPANNER_EMULATOR_HOST must be set (e.g. localhost:9010)")
}
