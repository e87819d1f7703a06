package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func dataApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "achievement_stats.json"), []byte(`{"timestamp":"x","data":{}}`), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	app := fiber.New()
	app.Get("/data/:filename", NewDataHandler(dir).ServeFile)
	return app, dir
}

func TestServeFileReturnsSnapshot(t *testing.T) {
	app, _ := dataApp(t)

	req := httptest.NewRequest(http.MethodGet, "/data/achievement_stats.json", nil)
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "timestamp") {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestServeFileUnknownNameIs404(t *testing.T) {
	app, _ := dataApp(t)

	req := httptest.NewRequest(http.MethodGet, "/data/nope.json", nil)
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestServeFileStripsPathSegments(t *testing.T) {
	app, _ := dataApp(t)

	// Encoded traversal collapses to the base name, which does not exist
	req := httptest.NewRequest(http.MethodGet, "/data/..%2F..%2Fetc%2Fpasswd", nil)
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		t.Fatal("traversal attempt must not succeed")
	}
}
