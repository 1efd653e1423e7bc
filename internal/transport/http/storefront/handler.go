package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/countdown"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/queries/quote_price"
	"github.com/murkotick/promotion-catalog-service/internal/pkg/clock"
	"github.com/murkotick/promotion-catalog-service/internal/pkg/metrics"
)

const writeWait = 5 * time.Second

// PriceQuoter resolves a product's price at the current instant.
type PriceQuoter interface {
	Execute(ctx context.Context, productID string) (*quote_price.Quote, error)
}

// PriceResponse is the body of GET /v1/products/{productID}/price.
// Prices are decimal numbers; absent fields are omitted.
type PriceResponse struct {
	ProductID          string      `json:"productId"`
	DisplayPrice       json.Number `json:"displayPrice,omitempty"`
	StrikethroughPrice json.Number `json:"strikethroughPrice,omitempty"`
	Savings            json.Number `json:"savings,omitempty"`
	ContactForQuote    bool        `json:"contactForQuote"`
	PromotionID        string      `json:"promotionId,omitempty"`
	SecondsRemaining   *int64      `json:"secondsRemaining,omitempty"`
	Countdown          string      `json:"countdown,omitempty"`
	QuotedAt           string      `json:"quotedAt"`
}

// CountdownFrame is one websocket message of the countdown stream.
type CountdownFrame struct {
	SecondsRemaining int64  `json:"secondsRemaining"`
	Countdown        string `json:"countdown"`
}

type Handler struct {
	quoter   PriceQuoter
	clock    clock.Clock
	logger   *zap.Logger
	metrics  *metrics.Metrics
	upgrader websocket.Upgrader

	// closing is closed by Shutdown; open countdown streams watch it because
	// http.Server.Shutdown does not track hijacked connections.
	closing   chan struct{}
	closeOnce sync.Once
}

func NewHandler(quoter PriceQuoter, clk clock.Clock, logger *zap.Logger, m *metrics.Metrics) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		quoter:  quoter,
		clock:   clk,
		logger:  logger,
		metrics: m,
		closing: make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Product pages are served from the storefront origin, not this API's.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Shutdown ends every open countdown stream with a going-away close frame.
// It is meant for http.Server.RegisterOnShutdown and is safe to call twice.
func (h *Handler) Shutdown() {
	h.closeOnce.Do(func() { close(h.closing) })
}

func (h *Handler) shuttingDown() bool {
	select {
	case <-h.closing:
		return true
	default:
		return false
	}
}

func (h *Handler) getPrice(w http.ResponseWriter, r *http.Request) {
	q, ok := h.quote(w, r)
	if !ok {
		return
	}
	h.metrics.ObserveQuote(q.Outcome())
	respondWithJSON(w, http.StatusOK, newPriceResponse(q))
}

// streamCountdown pushes the remaining time of the applied promotion once per
// second. The stream is closed without any frame when nothing live applies.
func (h *Handler) streamCountdown(w http.ResponseWriter, r *http.Request) {
	q, ok := h.quote(w, r)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("countdown upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	if !q.HasCountdown || q.Window == nil {
		h.closeStream(conn, websocket.CloseNormalClosure, "no live promotion")
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go func() {
		select {
		case <-h.closing:
			cancel()
		case <-ctx.Done():
		}
	}()

	// The client closing its view is only observable through the read side.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	err = countdown.Run(ctx, h.clock, *q.Window, func(s int64) {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(CountdownFrame{SecondsRemaining: s, Countdown: domain.FormatCountdown(s)}); err != nil {
			cancel()
		}
	})
	if err != nil && h.shuttingDown() {
		h.closeStream(conn, websocket.CloseGoingAway, "server shutting down")
		return
	}
	if err != nil {
		h.logger.Debug("countdown stream ended by client",
			zap.String("product_id", q.ProductID),
			zap.String("promotion_id", q.PromotionID),
		)
		return
	}
	h.closeStream(conn, websocket.CloseNormalClosure, "promotion ended")
}

func (h *Handler) closeStream(conn *websocket.Conn, code int, reason string) {
	msg := websocket.FormatCloseMessage(code, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}

func (h *Handler) quote(w http.ResponseWriter, r *http.Request) (*quote_price.Quote, bool) {
	productID := chi.URLParam(r, "productID")
	if productID == "" {
		respondWithError(w, http.StatusBadRequest, "productID is required", h.clock.Now())
		return nil, false
	}

	q, err := h.quoter.Execute(r.Context(), productID)
	switch {
	case err == nil:
		return q, true
	case errors.Is(err, domain.ErrProductNotFound):
		respondWithError(w, http.StatusNotFound, err.Error(), h.clock.Now())
	default:
		h.logger.Error("price quote failed", zap.String("product_id", productID), zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "price is temporarily unavailable", h.clock.Now())
	}
	return nil, false
}

func newPriceResponse(q *quote_price.Quote) PriceResponse {
	resp := PriceResponse{
		ProductID:       q.ProductID,
		ContactForQuote: q.ContactForQuote,
		PromotionID:     q.PromotionID,
		QuotedAt:        q.QuotedAt.UTC().Format(time.RFC3339),
	}
	if q.DisplayPrice != nil {
		resp.DisplayPrice = json.Number(q.DisplayPrice.Decimal())
	}
	if q.StrikethroughPrice != nil {
		resp.StrikethroughPrice = json.Number(q.StrikethroughPrice.Decimal())
	}
	if q.Savings != nil && q.Savings.IsPositive() {
		resp.Savings = json.Number(q.Savings.Decimal())
	}
	if q.HasCountdown {
		s := q.CountdownSeconds
		resp.SecondsRemaining = &s
		resp.Countdown = domain.FormatCountdown(s)
	}
	return resp
}
