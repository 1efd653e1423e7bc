// Command promoctl edits promotions through a running catalog service.
//
// Usage:
//
//	promoctl get <promotionID>
//	promoctl find <productID>
//	promoctl create <file.json>
//	promoctl update <promotionID> <file.json>
//	promoctl unbind <promotionID> <productID>
//	promoctl enable|disable <promotionID>
//	promoctl delete <promotionID>
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/catalog"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
	"github.com/murkotick/promotion-catalog-service/internal/pkg/config"
	"github.com/murkotick/promotion-catalog-service/internal/pkg/logger"
	grpcpromotion "github.com/murkotick/promotion-catalog-service/internal/transport/grpc/promotion"
)

var errUsage = errors.New("usage: promoctl get|find|create|update|unbind|enable|disable|delete ...")

func main() {
	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log, err := logger.New(cfg.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	conn, err := grpcpromotion.Dial(cfg.Target)
	if err != nil {
		log.Fatal("dial catalog service", zap.String("target", cfg.Target), zap.Error(err))
	}
	defer conn.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat := catalog.NewPromotionCatalog(grpcpromotion.NewClient(conn, cfg.Catalog.RPCTimeout), log)
	if err := run(ctx, os.Args[1:], os.Stdout, cat); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer, cat *catalog.PromotionCatalog) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]

	switch {
	case cmd == "get" && len(args) == 1:
		p, err := cat.GetByID(ctx, args[0])
		if err != nil {
			return err
		}
		return printPromotion(out, p)

	case cmd == "find" && len(args) == 1:
		ps, err := cat.FindByProduct(ctx, args[0])
		if err != nil {
			return err
		}
		for _, p := range ps {
			if err := printPromotion(out, p); err != nil {
				return err
			}
		}
		return nil

	case cmd == "create" && len(args) == 1:
		draft, err := readDraft(args[0])
		if err != nil {
			return err
		}
		p, err := cat.Create(ctx, draft)
		if err != nil {
			return err
		}
		return printPromotion(out, p)

	case cmd == "update" && len(args) == 2:
		draft, err := readDraft(args[1])
		if err != nil {
			return err
		}
		p, err := cat.Update(ctx, args[0], draft)
		if err != nil {
			return err
		}
		return printPromotion(out, p)

	case cmd == "unbind" && len(args) == 2:
		return edit(ctx, out, cat, args[0], func(e *catalog.Editor) {
			e.RemoveBinding(args[1])
		})

	case (cmd == "enable" || cmd == "disable") && len(args) == 1:
		return edit(ctx, out, cat, args[0], func(e *catalog.Editor) {
			d := e.Draft()
			e.SetSchedule(d.StartDate, d.EndDate, cmd == "enable")
		})

	case cmd == "delete" && len(args) == 1:
		if err := cat.Delete(ctx, args[0]); err != nil {
			return err
		}
		_, err := fmt.Fprintf(out, "deleted %s\n", args[0])
		return err
	}
	return errUsage
}

// edit loads the confirmed promotion, applies change to a draft of it and
// submits the whole draft.
func edit(ctx context.Context, out io.Writer, cat *catalog.PromotionCatalog, id string, change func(*catalog.Editor)) error {
	confirmed, err := cat.GetByID(ctx, id)
	if err != nil {
		return err
	}
	e := catalog.NewEditor(cat, confirmed)
	change(e)

	p, err := e.Submit(ctx)
	if err != nil {
		return err
	}
	return printPromotion(out, p)
}

func readDraft(path string) (domain.Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Draft{}, err
	}
	return grpcpromotion.DecodeDraft(data)
}

func printPromotion(out io.Writer, p *domain.Promotion) error {
	b, err := grpcpromotion.EncodePromotion(p)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n", b)
	return err
}
