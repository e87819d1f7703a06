package birdeye

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: time.Second},
	}
}

func TestGetPriceSendsKeyAndChainHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-API-KEY"); got != "test-key" {
			t.Errorf("missing api key header, got %q", got)
		}
		if got := r.Header.Get("x-chain"); got != "solana" {
			t.Errorf("missing chain header, got %q", got)
		}
		if got := r.URL.Query().Get("address"); got != "GoldMint111" {
			t.Errorf("unexpected address param %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"value":0.084}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "test-key")
	price, err := client.GetPrice(context.Background(), "GoldMint111")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != 0.084 {
		t.Fatalf("expected 0.084, got %f", price)
	}
}

func TestGetPriceWithoutKeySkipsTheCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "")
	_, err := client.GetPrice(context.Background(), "GoldMint111")
	if !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("expected ErrNoAPIKey, got %v", err)
	}
	if called {
		t.Fatal("client must not call the API without a key")
	}
}

func TestGetPriceRejectsNonPositiveValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"value":0}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "test-key")
	if _, err := client.GetPrice(context.Background(), "GoldMint111"); err == nil {
		t.Fatal("expected error for non-positive price")
	}
}

func TestGetPriceRejectsUnsuccessfulResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "test-key")
	if _, err := client.GetPrice(context.Background(), "GoldMint111"); err == nil {
		t.Fatal("expected error for unsuccessful response")
	}
}

func TestGetPriceRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "test-key")
	if _, err := client.GetPrice(context.Background(), "GoldMint111"); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}
