package web_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhle/roomstay/client"
	"github.com/minhle/roomstay/web"
)

func respond(t *testing.T, w http.ResponseWriter, statusCode int, content any, message string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
		"statusCode": statusCode,
		"content":    content,
		"message":    message,
	}))
}

func setupViewer(t *testing.T, backendMux *http.ServeMux) *httptest.Server {
	t.Helper()
	backend := httptest.NewServer(backendMux)
	t.Cleanup(backend.Close)

	logger := slog.New(slog.DiscardHandler)
	api, err := client.New(backend.URL, "test-api-key", client.WithLogger(logger))
	require.NoError(t, err)

	srv, err := web.New(api, web.WithLogger(logger))
	require.NoError(t, err)

	viewer := httptest.NewServer(srv.Router())
	t.Cleanup(viewer.Close)
	return viewer
}

func get(t *testing.T, url string) string {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestLocationRoomsPageRendersCard(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /vi-tri/{id}", func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, 200, client.Location{ID: 5, Name: "Quận 1", Province: "Hồ Chí Minh", Country: "Việt Nam"}, "")
	})
	mux.HandleFunc("GET /phong-thue/lay-phong-theo-vi-tri", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("maViTri"))
		respond(t, w, 200, []client.Room{
			{ID: 42, Name: "Studio A", PricePerNight: 500000, MaxGuests: 2, LocationID: 5},
		}, "")
	})

	viewer := setupViewer(t, mux)
	body := get(t, viewer.URL+"/locations/5")

	// Exactly one property card with localized price and guests line.
	assert.Equal(t, 1, strings.Count(body, `class="property-card"`))
	assert.Contains(t, body, "Studio A")
	assert.Contains(t, body, "500.000 ₫")
	assert.Contains(t, body, "2 khách")
	assert.Contains(t, body, "Quận 1")
}

func TestLocationRoomsPageShowsBackendMessageOnFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /vi-tri/{id}", func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, 200, client.Location{ID: 5, Name: "Quận 1"}, "")
	})
	mux.HandleFunc("GET /phong-thue/lay-phong-theo-vi-tri", func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, 404, nil, "Không tìm thấy vị trí")
	})

	viewer := setupViewer(t, mux)
	body := get(t, viewer.URL+"/locations/5")

	assert.Contains(t, body, "Không tìm thấy vị trí")
	assert.Zero(t, strings.Count(body, `class="property-card"`))
}

func TestLocationsPage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /vi-tri", func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, 200, []client.Location{
			{ID: 1, Name: "Quận 1", Province: "Hồ Chí Minh", Country: "Việt Nam"},
			{ID: 2, Name: "Cái Răng", Province: "Cần Thơ", Country: "Việt Nam"},
		}, "")
	})

	viewer := setupViewer(t, mux)
	body := get(t, viewer.URL+"/")

	assert.Equal(t, 2, strings.Count(body, `class="location-card"`))
	assert.Contains(t, body, "Cần Thơ")
}

func TestSearchPageFiltersByKeyword(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /phong-thue", func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, 200, []client.Room{
			{ID: 42, Name: "Studio A", Description: "Gần chợ Bến Thành", PricePerNight: 500000, MaxGuests: 2},
			{ID: 43, Name: "Garden Villa", Description: "Biệt thự có hồ bơi", PricePerNight: 1200000, MaxGuests: 6},
		}, "")
	})

	viewer := setupViewer(t, mux)
	body := get(t, viewer.URL+"/search?keyword=studio")

	// Only the matching listing renders a card.
	assert.Equal(t, 1, strings.Count(body, `class="property-card"`))
	assert.Contains(t, body, "Studio A")
	assert.NotContains(t, body, "Garden Villa")

	// Description matches count too.
	body = get(t, viewer.URL+"/search?keyword=hồ+bơi")
	assert.Equal(t, 1, strings.Count(body, `class="property-card"`))
	assert.Contains(t, body, "Garden Villa")

	// A blank keyword shows every listing.
	body = get(t, viewer.URL+"/search")
	assert.Equal(t, 2, strings.Count(body, `class="property-card"`))
}

func TestRoomDetailPage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /phong-thue/{id}", func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, 200, client.Room{
			ID: 42, Name: "Studio A", PricePerNight: 500000, MaxGuests: 2,
			Bedrooms: 1, Beds: 1, Description: "Gần chợ Bến Thành",
		}, "")
	})
	mux.HandleFunc("GET /binh-luan/lay-binh-luan-theo-phong/{id}", func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, 200, []client.RatingWithUser{
			{Rating: client.Rating{ID: 1, Stars: 5, Comment: "Phòng rất sạch sẽ"}, AuthorName: "An"},
			{Rating: client.Rating{ID: 2, Stars: 4, Comment: "Chủ nhà thân thiện"}, AuthorName: "Bình"},
		}, "")
	})

	viewer := setupViewer(t, mux)
	body := get(t, viewer.URL+"/rooms/42")

	assert.Contains(t, body, "Studio A")
	assert.Contains(t, body, "500.000 ₫")
	assert.Contains(t, body, "4.5")
	assert.Equal(t, 2, strings.Count(body, `class="rating"`))
}

func TestOpenAPISpecServed(t *testing.T) {
	viewer := setupViewer(t, http.NewServeMux())
	body := get(t, viewer.URL+"/openapi.yaml")
	assert.Contains(t, body, "openapi:")
	assert.Contains(t, body, "/phong-thue/lay-phong-theo-vi-tri")
}

func TestHealth(t *testing.T) {
	viewer := setupViewer(t, http.NewServeMux())
	assert.Equal(t, "OK", get(t, viewer.URL+"/health"))
}
