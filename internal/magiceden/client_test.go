package magiceden

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetFloorPriceConvertsLamportsToSOL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/collections/defi_dungeons/stats" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"symbol":"defi_dungeons","floorPrice":1500000000,"listedCount":42}`))
	}))
	defer srv.Close()

	client := &Client{
		BaseURL:    srv.URL,
		Collection: "defi_dungeons",
		HTTPClient: &http.Client{Timeout: time.Second},
	}

	floor, err := client.GetFloorPriceSOL(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if floor != 1.5 {
		t.Fatalf("expected 1.5 SOL, got %f", floor)
	}
}

func TestGetFloorPriceRejectsMissingFloor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"symbol":"defi_dungeons","listedCount":0}`))
	}))
	defer srv.Close()

	client := &Client{
		BaseURL:    srv.URL,
		Collection: "defi_dungeons",
		HTTPClient: &http.Client{Timeout: time.Second},
	}

	if _, err := client.GetFloorPriceSOL(context.Background()); err == nil {
		t.Fatal("expected error when floorPrice is absent")
	}
}
