package pricing

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestTickerClient_Fetch(t *testing.T) {
	var hits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/ticker/price", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if got := r.URL.Query().Get("symbol"); got != "BTCUSDT" {
			t.Errorf("symbol = %q, want BTCUSDT", got)
		}
		fmt.Fprint(w, `{"symbol":"BTCUSDT","price":"63100.50"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewTickerClient(srv.URL, "USDT", time.Minute)
	price, err := c.Fetch(context.Background(), "BTC")
	if err != nil {
		t.Fatal(err)
	}
	if price != 63100.50 {
		t.Fatalf("price = %g, want 63100.50", price)
	}

	// Second fetch inside the TTL is served from cache.
	if _, err := c.Fetch(context.Background(), "BTC"); err != nil {
		t.Fatal(err)
	}
	if hits.Load() != 1 {
		t.Fatalf("upstream hit %d times, want 1 (cached)", hits.Load())
	}
}

func TestTickerClient_Failures(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/ticker/price", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("symbol") {
		case "DOWNUSDT":
			w.WriteHeader(http.StatusBadGateway)
		case "JUNKUSDT":
			fmt.Fprint(w, `{"symbol":"JUNKUSDT","price":"not-a-number"}`)
		case "ZEROUSDT":
			fmt.Fprint(w, `{"symbol":"ZEROUSDT","price":"0"}`)
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewTickerClient(srv.URL, "USDT", 0)
	for _, asset := range []string{"DOWN", "JUNK", "ZERO"} {
		if _, err := c.Fetch(context.Background(), asset); err == nil {
			t.Fatalf("%s: expected error", asset)
		}
	}
}

func TestFixedSource(t *testing.T) {
	src := NewFixedSource(map[string]float64{"BTC": 100})
	if p, err := src.Fetch(context.Background(), "BTC"); err != nil || p != 100 {
		t.Fatalf("got %g, %v", p, err)
	}
	if _, err := src.Fetch(context.Background(), "ETH"); err == nil {
		t.Fatal("expected error for unknown asset")
	}
	src.Set("ETH", 200)
	if p, _ := src.Fetch(context.Background(), "ETH"); p != 200 {
		t.Fatalf("got %g after Set, want 200", p)
	}
}
