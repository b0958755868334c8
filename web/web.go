// Package web serves a small local viewer over the remote booking API:
// a locations grid, per-location property cards, and room detail pages,
// plus API docs rendered from the embedded OpenAPI description.
package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-openapi/runtime/middleware"

	"github.com/minhle/roomstay/client"
	"github.com/minhle/roomstay/rating"
	"github.com/minhle/roomstay/view"
)

//go:embed openapi.yaml
var openapiSpec []byte

//go:embed templates/*.html
var templateFS embed.FS

// Generic alert shown when a fetch fails without a backend message.
const genericLoadFailure = "Không thể tải dữ liệu. Vui lòng thử lại."

// Server renders the viewer pages. All fetches run server-side against
// the remote API with the incoming request's context, so closing the
// browser tab abandons the fetch.
type Server struct {
	api  *client.Client
	log  *slog.Logger
	tmpl *template.Template
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the structured logger for page-level failures.
// If not set, a default JSON logger writing to stderr is used.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.log = logger }
}

// New creates a viewer over the given API client.
func New(api *client.Client, opts ...Option) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	s := &Server{api: api, tmpl: tmpl}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	return s, nil
}

// Router returns a chi.Router with all viewer routes mounted.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(openapiSpec)
	})

	r.Handle("/docs*", middleware.SwaggerUI(middleware.SwaggerUIOpts{
		SpecURL: "/openapi.yaml",
		Path:    "docs",
	}, nil))

	r.Handle("/redoc*", middleware.Redoc(middleware.RedocOpts{
		SpecURL: "/openapi.yaml",
		Path:    "redoc",
	}, nil))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Get("/", s.LocationsPage)
	r.Get("/search", s.SearchPage)
	r.Get("/locations/{locationID}", s.LocationRoomsPage)
	r.Get("/rooms/{roomID}", s.RoomDetailPage)

	return r
}

type locationsPage struct {
	Title     string
	Locations []client.Location
	Alert     string
}

type searchPage struct {
	Title   string
	Keyword string
	Cards   []view.Card
	Alert   string
}

type locationRoomsPage struct {
	Title    string
	Location *client.Location
	Cards    []view.Card
	Alert    string
}

type roomDetailPage struct {
	Title      string
	Room       *client.Room
	Card       view.Card
	Ratings    []client.RatingWithUser
	Average    float64
	HasAverage bool
	Alert      string
}

// LocationsPage renders the locations grid.
func (s *Server) LocationsPage(w http.ResponseWriter, r *http.Request) {
	page := locationsPage{Title: "Địa điểm"}
	locations, err := s.api.ListLocations(r.Context())
	if err != nil {
		s.log.Warn("loading locations failed", "error", err)
		page.Alert = client.UserMessage(err, genericLoadFailure)
	} else {
		page.Locations = locations
	}
	s.render(w, "locations.html", page)
}

// SearchPage renders property cards matching a keyword. All listings
// are fetched and filtered locally over name and description.
func (s *Server) SearchPage(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	page := searchPage{Title: "Tìm kiếm", Keyword: keyword}

	rooms, err := s.api.ListRooms(r.Context())
	if err != nil {
		s.log.Warn("loading rooms for search failed", "error", err)
		page.Alert = client.UserMessage(err, genericLoadFailure)
	} else {
		page.Cards = view.Cards(client.FilterRooms(rooms, keyword))
	}
	s.render(w, "search.html", page)
}

// LocationRoomsPage renders the property cards for one location.
func (s *Server) LocationRoomsPage(w http.ResponseWriter, r *http.Request) {
	locationID, err := strconv.ParseInt(chi.URLParam(r, "locationID"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	page := locationRoomsPage{Title: "Chỗ ở"}

	location, err := s.api.GetLocation(r.Context(), locationID)
	if err == nil {
		page.Location = location
		page.Title = location.Name
	}

	rooms, err := s.api.RoomsByLocation(r.Context(), locationID)
	if err != nil {
		s.log.Warn("loading rooms by location failed", "location_id", locationID, "error", err)
		page.Alert = client.UserMessage(err, genericLoadFailure)
	} else {
		page.Cards = view.Cards(rooms)
	}
	s.render(w, "location.html", page)
}

// RoomDetailPage renders one listing with its ratings.
func (s *Server) RoomDetailPage(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(chi.URLParam(r, "roomID"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	page := roomDetailPage{Title: "Chi tiết phòng"}

	room, err := s.api.GetRoom(r.Context(), roomID)
	if err != nil {
		s.log.Warn("loading room failed", "room_id", roomID, "error", err)
		page.Alert = client.UserMessage(err, genericLoadFailure)
		s.render(w, "room.html", page)
		return
	}
	page.Room = room
	page.Card = view.NewCard(*room)
	page.Title = room.Name

	ratings, err := s.api.RatingsByRoom(r.Context(), roomID)
	if err != nil {
		// The room itself rendered; ratings degrade to an inline alert.
		s.log.Warn("loading ratings failed", "room_id", roomID, "error", err)
		page.Alert = client.UserMessage(err, genericLoadFailure)
	} else {
		page.Ratings = ratings
		page.Average, page.HasAverage = rating.Average(ratings)
	}
	s.render(w, "room.html", page)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error("rendering template failed", "template", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
