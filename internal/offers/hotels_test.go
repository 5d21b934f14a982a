package offers

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestSearchHotelsClosestFromBelow(t *testing.T) {
	c := newTestClient(t, serveJSON(`{
		"hotels_results": [
			{"name": "Budget Inn", "price": 100, "rating": 3.9},
			{"name": "Grand Plaza", "price": 450, "rating": 4.6},
			{"name": "Royal Palace", "price": 500, "rating": 4.8}
		]}`))

	offer, err := c.SearchHotels(context.Background(), "Bali", "2026-06-01", "2026-06-15", 480)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if offer == nil {
		t.Fatal("expected an offer, got nil")
	}
	if offer.Name != "Grand Plaza" || offer.Price != 450 {
		t.Errorf("got %s at %v, want the highest-priced hotel within budget (Grand Plaza at 450)", offer.Name, offer.Price)
	}
	if offer.Rating != 4.6 {
		t.Errorf("rating = %v, want 4.6", offer.Rating)
	}
}

func TestSearchHotelsNoneQualify(t *testing.T) {
	c := newTestClient(t, serveJSON(`{
		"hotels_results": [
			{"name": "Grand Plaza", "price": 450},
			{"name": "Royal Palace", "price": 500}
		]}`))

	offer, err := c.SearchHotels(context.Background(), "Bali", "2026-06-01", "2026-06-15", 400)
	if err != nil {
		t.Fatalf("no qualifying hotel must not be an error, got: %v", err)
	}
	if offer != nil {
		t.Errorf("expected absent offer, got %+v", offer)
	}
}

func TestSearchHotelsNegativeBudget(t *testing.T) {
	c := newTestClient(t, serveJSON(`{
		"hotels_results": [{"name": "Free Hostel", "price": 10}]}`))

	offer, err := c.SearchHotels(context.Background(), "Bali", "2026-06-01", "2026-06-15", -50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if offer != nil {
		t.Errorf("nothing can qualify under a negative budget, got %+v", offer)
	}
}

func TestSearchHotelsSkipsUnpriced(t *testing.T) {
	c := newTestClient(t, serveJSON(`{
		"hotels_results": [
			{"name": "Mystery Lodge", "rating": 5.0},
			{"name": "Priced Stay", "price": 200, "rating": 4.0}
		]}`))

	offer, err := c.SearchHotels(context.Background(), "Bali", "2026-06-01", "2026-06-15", 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if offer == nil || offer.Name != "Priced Stay" {
		t.Fatalf("expected the priced property, got %+v", offer)
	}
}

func TestSearchHotelsUpstreamFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "server error", http.StatusInternalServerError)
	})

	_, err := c.SearchHotels(context.Background(), "Bali", "2026-06-01", "2026-06-15", 400)
	if err == nil {
		t.Fatal("expected an error for a non-2xx response")
	}
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("error = %v, want ErrUpstream", err)
	}
}

func TestSearchHotelsMaxPriceHint(t *testing.T) {
	var gotQuery map[string]string
	handler := func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		serveJSON(`{"hotels_results": []}`)(w, r)
	}

	c := newTestClient(t, handler)
	if _, err := c.SearchHotels(context.Background(), "Bali", "2026-06-01", "2026-06-15", 480); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery["engine"] != "google_hotels" {
		t.Errorf("engine = %q, want google_hotels", gotQuery["engine"])
	}
	if gotQuery["max_price"] != "480" {
		t.Errorf("max_price = %q, want 480", gotQuery["max_price"])
	}
	if gotQuery["check_in_date"] != "2026-06-01" || gotQuery["check_out_date"] != "2026-06-15" {
		t.Errorf("dates = %q / %q, want check-in and check-out passed through",
			gotQuery["check_in_date"], gotQuery["check_out_date"])
	}

	// The hint is dropped when the remaining budget is not positive.
	c = newTestClient(t, handler)
	if _, err := c.SearchHotels(context.Background(), "Bali", "2026-06-01", "2026-06-15", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := gotQuery["max_price"]; ok {
		t.Errorf("max_price sent for a non-positive budget: %q", gotQuery["max_price"])
	}
}
