package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCurrentWithoutAPIKey(t *testing.T) {
	client := NewClient("")

	tests := []struct {
		lat, lon  float64
		temp      float64
		condition string
	}{
		{10.0, 10.0, 5.0, "Snow"},
		{20.0, 20.0, 15.0, "Rain"},
		{0.0, 0.0, 25.0, "Clear"},
		{5.0, 5.0, 22.0, "Clear"},
	}

	for _, tt := range tests {
		snap := client.Current(context.Background(), tt.lat, tt.lon)
		if snap == nil {
			t.Fatalf("expected canned snapshot for (%g,%g)", tt.lat, tt.lon)
		}
		if snap.TemperatureCelsius != tt.temp || snap.Condition != tt.condition {
			t.Errorf("(%g,%g): got %+v, want temp=%g condition=%s",
				tt.lat, tt.lon, snap, tt.temp, tt.condition)
		}
	}
}

func TestCurrentParsesAPIResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("units"); got != "metric" {
			t.Errorf("expected metric units, got %q", got)
		}
		if got := r.URL.Query().Get("appid"); got != "test-key" {
			t.Errorf("expected api key forwarded, got %q", got)
		}
		w.Write([]byte(`{"main":{"temp":15.0},"weather":[{"main":"Clear"}]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key")
	client.baseURL = srv.URL

	snap := client.Current(context.Background(), 51.5, -0.12)
	if snap == nil {
		t.Fatal("expected snapshot")
	}
	if snap.TemperatureCelsius != 15.0 || snap.Condition != "Clear" {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
}

func TestCurrentAPIErrorReturnsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient("test-key")
	client.baseURL = srv.URL

	if snap := client.Current(context.Background(), 1, 2); snap != nil {
		t.Errorf("expected nil on API error, got %+v", snap)
	}
}

func TestCurrentBadJSONReturnsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	client := NewClient("test-key")
	client.baseURL = srv.URL

	if snap := client.Current(context.Background(), 1, 2); snap != nil {
		t.Errorf("expected nil on malformed body, got %+v", snap)
	}
}
