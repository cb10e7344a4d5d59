package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

// TickerClient fetches spot prices from a Binance-style ticker endpoint
// (GET {base}/api/v3/ticker/price?symbol=BTCUSDT). Responses are cached
// for a short TTL so that back-to-back cycles and status reads do not
// hammer the exchange.
type TickerClient struct {
	baseURL    string
	quoteAsset string
	client     *http.Client

	mu    sync.Mutex
	cache map[string]cachedPrice
	ttl   time.Duration
}

type cachedPrice struct {
	price     float64
	fetchedAt time.Time
}

// NewTickerClient builds a client. quoteAsset is appended to the asset to
// form the exchange symbol (BTC + USDT -> BTCUSDT). A zero cacheTTL
// disables caching.
func NewTickerClient(baseURL, quoteAsset string, cacheTTL time.Duration) *TickerClient {
	if baseURL == "" {
		baseURL = "https://api.binance.com"
	}
	if quoteAsset == "" {
		quoteAsset = "USDT"
	}
	return &TickerClient{
		baseURL:    baseURL,
		quoteAsset: quoteAsset,
		client:     &http.Client{Timeout: 10 * time.Second},
		cache:      make(map[string]cachedPrice),
		ttl:        cacheTTL,
	}
}

func (c *TickerClient) Fetch(ctx context.Context, asset string) (float64, error) {
	if p, ok := c.cached(asset); ok {
		return p, nil
	}

	symbol := asset + c.quoteAsset
	u := fmt.Sprintf("%s/api/v3/ticker/price?symbol=%s", c.baseURL, url.QueryEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetch %s: status %d", symbol, resp.StatusCode)
	}

	var body struct {
		Symbol string `json:"symbol"`
		Price  string `json:"price"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("fetch %s: %w", symbol, err)
	}
	price, err := strconv.ParseFloat(body.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("fetch %s: bad price %q", symbol, body.Price)
	}
	if price <= 0 {
		return 0, fmt.Errorf("fetch %s: non-positive price %g", symbol, price)
	}

	c.store(asset, price)
	return price, nil
}

func (c *TickerClient) cached(asset string) (float64, bool) {
	if c.ttl <= 0 {
		return 0, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.cache[asset]
	if !ok || time.Since(entry.fetchedAt) > c.ttl {
		return 0, false
	}
	return entry.price, true
}

func (c *TickerClient) store(asset string, price float64) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[asset] = cachedPrice{price: price, fetchedAt: time.Now()}
}
