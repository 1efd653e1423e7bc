package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain/services"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/queries"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/queries/find_by_product"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/queries/get_promotion"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/queries/quote_price"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/repo"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/usecases/create_promotion"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/usecases/delete_promotion"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/usecases/update_promotion"
	"github.com/murkotick/promotion-catalog-service/internal/pkg/clock"
	committer "github.com/murkotick/promotion-catalog-service/internal/pkg/committer"
	"github.com/murkotick/promotion-catalog-service/internal/pkg/config"
	"github.com/murkotick/promotion-catalog-service/internal/pkg/logger"
	"github.com/murkotick/promotion-catalog-service/internal/pkg/metrics"
	"github.com/murkotick/promotion-catalog-service/internal/pkg/outbox"
	grpcpromotion "github.com/murkotick/promotion-catalog-service/internal/transport/grpc/promotion"
	"github.com/murkotick/promotion-catalog-service/internal/transport/http/storefront"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited with error", zap.Error(err))
	}
	log.Info("server stopped")
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := spanner.NewClient(ctx, cfg.Spanner.Database)
	if err != nil {
		return fmt.Errorf("spanner.NewClient: %w", err)
	}
	defer client.Close()

	clk := clock.RealClock{}
	m := metrics.New()
	promoRepo := repo.NewPromotionRepo()
	outboxRepo := repo.NewOutboxRepo()
	cm := committer.NewAdapter(client)
	readModel := queries.NewSpannerReadModel(client)

	// CQRS wiring
	cmds := grpcpromotion.Commands{
		Create: create_promotion.NewInteractor(promoRepo, outboxRepo, cm, clk),
		Update: update_promotion.NewInteractor(promoRepo, outboxRepo, cm, readModel, clk),
		Delete: delete_promotion.NewInteractor(promoRepo, outboxRepo, cm, readModel, clk),
	}
	qrys := grpcpromotion.Queries{
		Get:           get_promotion.NewHandler(readModel),
		FindByProduct: find_by_product.NewHandler(readModel),
	}

	grpcSrv := grpc.NewServer(grpc.UnaryInterceptor(grpcpromotion.LoggingInterceptor(log.Named("grpc"), m)))
	grpcpromotion.RegisterCatalogServer(grpcSrv, grpcpromotion.NewHandler(cmds, qrys))

	quoter := quote_price.NewHandler(readModel, services.NewPriceResolver(), clk)
	storefrontHandler := storefront.NewHandler(quoter, clk, log.Named("storefront"), m)
	httpSrv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           storefront.NewRouter(storefrontHandler, log.Named("http"), m),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       time.Minute,
	}

	// Countdown streams are hijacked websocket connections that Shutdown
	// does not wait for or close.
	httpSrv.RegisterOnShutdown(storefrontHandler.Shutdown)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Server.GRPCAddr, err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("gRPC server listening", zap.String("addr", cfg.Server.GRPCAddr))
		return grpcSrv.Serve(lis)
	})

	g.Go(func() error {
		log.Info("HTTP server listening", zap.String("addr", cfg.Server.HTTPAddr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if cfg.Outbox.Enabled() {
		writer := outbox.NewKafkaWriter(cfg.Outbox.Brokers, cfg.Outbox.Topic)
		defer writer.Close()

		relay := outbox.NewRelay(
			outbox.NewSpannerSource(client, cm),
			writer,
			clk,
			outbox.Options{PollInterval: cfg.Outbox.PollInterval, BatchSize: cfg.Outbox.BatchSize},
			log,
			m,
		)
		g.Go(func() error { return relay.Run(gctx) })
	} else {
		log.Warn("outbox relay disabled: KAFKA_BROKERS is not set")
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdown(grpcSrv, httpSrv, log)
		return nil
	})

	return g.Wait()
}

func shutdown(grpcSrv *grpc.Server, httpSrv *http.Server, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Error("HTTP server forced to shutdown", zap.Error(err))
	}

	stopped := make(chan struct{})
	go func() {
		grpcSrv.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-ctx.Done():
		grpcSrv.Stop()
	}
}
