package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain/services"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/queries/quote_price"
	"github.com/murkotick/promotion-catalog-service/internal/pkg/clock"
	"github.com/murkotick/promotion-catalog-service/internal/pkg/metrics"
)

var now = time.Date(2025, 11, 11, 12, 0, 0, 0, time.UTC)

type quoterFunc func(ctx context.Context, productID string) (*quote_price.Quote, error)

func (f quoterFunc) Execute(ctx context.Context, productID string) (*quote_price.Quote, error) {
	return f(ctx, productID)
}

// liveQuote resolves p-1 at 100000 against a 20% promotion ending at end.
func liveQuote(t *testing.T, clk clock.Clock, end time.Time) PriceQuoter {
	t.Helper()
	w, err := domain.NewActivityWindow(now.Add(-time.Hour), end, true)
	require.NoError(t, err)
	b, err := domain.NewProductBinding(
		domain.ProductSnapshot{ID: "p-1", Price: domain.NewMoneyFromInt(100000)}, domain.NewPercentRule(20))
	require.NoError(t, err)
	promo := domain.ReconstructPromotion("promo-1", "Flash", w, domain.Bindings{b}, now, now)

	resolver := services.NewPriceResolver()
	return quoterFunc(func(_ context.Context, productID string) (*quote_price.Quote, error) {
		if productID != "p-1" {
			return nil, domain.ErrProductNotFound
		}
		at := clk.Now()
		resolved := resolver.Resolve(domain.Product{ID: "p-1", Price: domain.NewMoneyFromInt(100000)}, []*domain.Promotion{promo}, at)
		q := &quote_price.Quote{ProductID: "p-1", QuotedAt: at, ResolvedPrice: resolved, Savings: resolver.CalculateSavings(resolved)}
		q.CountdownSeconds, q.HasCountdown = resolved.SecondsRemaining(at)
		return q, nil
	})
}

func newTestRouter(q PriceQuoter, clk clock.Clock, m *metrics.Metrics) http.Handler {
	return NewRouter(NewHandler(q, clk, zap.NewNop(), m), zap.NewNop(), m)
}

func TestGetPrice_Discounted(t *testing.T) {
	clk := clock.NewFake(now)
	m := metrics.New()
	router := newTestRouter(liveQuote(t, clk, now.Add(3661*time.Second)), clk, m)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/products/p-1/price", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "p-1", body["productId"])
	assert.Equal(t, 80000.0, body["displayPrice"])
	assert.Equal(t, 100000.0, body["strikethroughPrice"])
	assert.Equal(t, 20000.0, body["savings"])
	assert.Equal(t, "promo-1", body["promotionId"])
	assert.Equal(t, 3661.0, body["secondsRemaining"])
	assert.Equal(t, "01:01:01", body["countdown"])
	assert.Equal(t, false, body["contactForQuote"])
}

func TestGetPrice_ContactForQuoteOmitsPrices(t *testing.T) {
	clk := clock.NewFake(now)
	q := quoterFunc(func(context.Context, string) (*quote_price.Quote, error) {
		return &quote_price.Quote{
			ProductID:     "p-0",
			QuotedAt:      now,
			ResolvedPrice: services.ResolvedPrice{ContactForQuote: true},
			Savings:       domain.Zero(),
		}, nil
	})

	rec := httptest.NewRecorder()
	newTestRouter(q, clk, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/products/p-0/price", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["contactForQuote"])
	for _, k := range []string{"displayPrice", "strikethroughPrice", "savings", "secondsRemaining", "countdown", "promotionId"} {
		assert.NotContains(t, body, k)
	}
}

func TestGetPrice_Errors(t *testing.T) {
	clk := clock.NewFake(now)
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unknown product", domain.ErrProductNotFound, http.StatusNotFound},
		{"storage failure", errors.New("spanner: session expired"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := quoterFunc(func(context.Context, string) (*quote_price.Quote, error) { return nil, tt.err })

			rec := httptest.NewRecorder()
			newTestRouter(q, clk, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/products/x/price", nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, http.StatusText(tt.wantStatus), body.Error.Code)
			assert.Equal(t, "2025-11-11T12:00:00Z", body.Error.Timestamp)
			assert.NotContains(t, body.Error.Message, "session expired")
		})
	}
}

func TestHealthAndMetrics(t *testing.T) {
	clk := clock.NewFake(now)
	m := metrics.New()
	router := newTestRouter(liveQuote(t, clk, now.Add(time.Hour)), clk, m)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/products/p-1/price", nil))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `promotion_price_quotes_total{outcome="discounted"} 1`)
}

func dialCountdown(t *testing.T, srv *httptest.Server, productID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/products/" + productID + "/countdown"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) CountdownFrame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var f CountdownFrame
	require.NoError(t, conn.ReadJSON(&f))
	return f
}

func TestCountdown_StreamsUntilZeroThenCloses(t *testing.T) {
	clk := clock.NewFake(now)
	srv := httptest.NewServer(newTestRouter(liveQuote(t, clk, now.Add(2*time.Second)), clk, nil))
	defer srv.Close()

	conn := dialCountdown(t, srv, "p-1")

	assert.Equal(t, CountdownFrame{SecondsRemaining: 2, Countdown: "00:00:02"}, readFrame(t, conn))
	clk.Advance(time.Second)
	assert.Equal(t, CountdownFrame{SecondsRemaining: 1, Countdown: "00:00:01"}, readFrame(t, conn))
	clk.Advance(time.Second)
	assert.Equal(t, CountdownFrame{SecondsRemaining: 0, Countdown: "00:00:00"}, readFrame(t, conn))

	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
	require.Eventually(t, func() bool { return clk.ActiveTickers() == 0 }, time.Second, 5*time.Millisecond)
}

func TestCountdown_ClientTeardownStopsTicker(t *testing.T) {
	clk := clock.NewFake(now)
	srv := httptest.NewServer(newTestRouter(liveQuote(t, clk, now.Add(time.Hour)), clk, nil))
	defer srv.Close()

	conn := dialCountdown(t, srv, "p-1")
	assert.Equal(t, int64(3600), readFrame(t, conn).SecondsRemaining)
	require.Equal(t, 1, clk.ActiveTickers())

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool { return clk.ActiveTickers() == 0 }, 2*time.Second, 5*time.Millisecond)
}

func TestCountdown_ShutdownClosesOpenStreams(t *testing.T) {
	clk := clock.NewFake(now)
	h := NewHandler(liveQuote(t, clk, now.Add(time.Hour)), clk, zap.NewNop(), nil)
	srv := httptest.NewServer(NewRouter(h, zap.NewNop(), nil))
	defer srv.Close()

	conn := dialCountdown(t, srv, "p-1")
	assert.Equal(t, int64(3600), readFrame(t, conn).SecondsRemaining)
	require.Equal(t, 1, clk.ActiveTickers())

	h.Shutdown()
	h.Shutdown()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
	require.Eventually(t, func() bool { return clk.ActiveTickers() == 0 }, 2*time.Second, 5*time.Millisecond)
}

func TestCountdown_SuppressedWithoutLivePromotion(t *testing.T) {
	clk := clock.NewFake(now)
	// The promotion already ended: the price falls back and no countdown applies.
	srv := httptest.NewServer(newTestRouter(liveQuote(t, clk, now.Add(-time.Minute)), clk, nil))
	defer srv.Close()

	conn := dialCountdown(t, srv, "p-1")

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
	assert.Equal(t, 0, clk.ActiveTickers())
}

func TestCountdown_UnknownProductIsNotUpgraded(t *testing.T) {
	clk := clock.NewFake(now)
	srv := httptest.NewServer(newTestRouter(liveQuote(t, clk, now.Add(time.Hour)), clk, nil))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/products/nope/countdown"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
