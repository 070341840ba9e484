package app

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"syno-photo-gallery/internal/gallery"
	"syno-photo-gallery/internal/synofoto"
	"syno-photo-gallery/internal/synofoto/api"
)

// galleryInstance pairs a configured gallery with its pagination controller
// and the transient notice from the last failed load-more, consumed on the
// next render.
type galleryInstance struct {
	name  string
	query gallery.Query
	ctrl  *gallery.Controller

	mu     sync.Mutex
	notice string
}

// setNotice records a transient notification for the next render.
func (g *galleryInstance) setNotice(msg string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.notice = msg
}

// takeNotice returns and clears the pending notification.
func (g *galleryInstance) takeNotice() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	msg := g.notice
	g.notice = ""
	return msg
}

// server renders the configured galleries and proxies thumbnails so the
// session token never appears in a page.
type server struct {
	client    *synofoto.Client
	galleries map[string]*galleryInstance
	order     []string
	thumbs    *thumbCache
	tmpl      *template.Template
}

func newServer(client *synofoto.Client, galleries []*galleryInstance, thumbs *thumbCache) *server {
	s := &server{
		client:    client,
		galleries: make(map[string]*galleryInstance),
		thumbs:    thumbs,
		tmpl:      template.Must(template.New("gallery").Parse(galleryTemplate)),
	}
	for _, g := range galleries {
		s.galleries[g.name] = g
		s.order = append(s.order, g.name)
	}
	return s
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleIndex)
	r.Get("/g/{name}", s.handleGallery)
	r.Post("/g/{name}/more", s.handleLoadMore)
	r.Get("/thumb/{space}/{id}", s.handleThumbnail)
	return r
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct{ Galleries []string }{Galleries: s.order}
	if err := s.tmpl.ExecuteTemplate(w, "index", data); err != nil {
		slog.Error("failed to render index", "error", err)
	}
}

// photoView is one grid cell: the proxied thumbnail URL plus a larger
// variant for the preview link.
type photoView struct {
	Filename   string
	ThumbURL   string
	PreviewURL string
}

// galleryView is the template payload for one gallery page.
type galleryView struct {
	Name        string
	Columns     int
	State       gallery.State
	Error       string
	Notice      string
	CanLoadMore bool
	Photos      []photoView
}

// handleGallery renders a gallery at its current pagination state. The first
// visit triggers the initial load; a first-page failure is rendered inline
// in place of the grid and the next visit retries it.
func (s *server) handleGallery(w http.ResponseWriter, r *http.Request) {
	g, ok := s.galleries[chi.URLParam(r, "name")]
	if !ok {
		http.NotFound(w, r)
		return
	}
	if st := g.ctrl.State(); st == gallery.StateIdle || st == gallery.StateErrored {
		// Errors are rendered from ctrl.Err below; a revisit retries.
		_ = g.ctrl.Load(r.Context())
	}

	view := galleryView{
		Name:        g.name,
		Columns:     g.query.Columns,
		State:       g.ctrl.State(),
		Notice:      g.takeNotice(),
		CanLoadMore: g.ctrl.CanLoadMore(),
	}
	if err := g.ctrl.Err(); err != nil {
		view.Error = err.Error()
	}
	for _, photo := range g.ctrl.Photos() {
		view.Photos = append(view.Photos, s.photoView(photo, g.query))
	}
	if err := s.tmpl.ExecuteTemplate(w, "gallery", view); err != nil {
		slog.Error("failed to render gallery", "name", g.name, "error", err)
	}
}

// handleLoadMore is the discrete "load more" trigger. On failure the
// already-rendered records are kept and a transient notice is shown; the
// control stays armed for a manual retry.
func (s *server) handleLoadMore(w http.ResponseWriter, r *http.Request) {
	g, ok := s.galleries[chi.URLParam(r, "name")]
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := g.ctrl.LoadMore(r.Context()); err != nil {
		g.setNotice("could not load more photos: " + err.Error())
	}
	http.Redirect(w, r, "/g/"+g.name, http.StatusSeeOther)
}

// handleThumbnail proxies one thumbnail from the NAS, keeping the session
// token server-side. Bytes are served from the in-memory cache when
// possible.
func (s *server) handleThumbnail(w http.ResponseWriter, r *http.Request) {
	var space synofoto.Space
	if err := space.UnmarshalText([]byte(chi.URLParam(r, "space"))); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	idNum, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "malformed photo id", http.StatusBadRequest)
		return
	}
	id := synofoto.PhotoID(idNum)
	size := api.ThumbSmall
	if v := r.URL.Query().Get("size"); v != "" {
		if err := size.UnmarshalText([]byte(v)); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	cacheKey := r.URL.Query().Get("cache_key")
	if cacheKey == "" {
		http.Error(w, "missing cache_key", http.StatusBadRequest)
		return
	}

	key := thumbKey(space, id, size, cacheKey)
	if data, ok := s.thumbs.get(key); ok {
		writeImage(w, data)
		return
	}
	photo := api.Photo{
		ID:         id,
		Additional: api.Additional{Thumbnail: api.Thumbnail{CacheKey: cacheKey}},
	}
	data, err := s.client.Thumbnail(r.Context(), photo, size, space)
	if err != nil {
		slog.Error("failed to fetch thumbnail", "id", id, "error", err)
		http.Error(w, "could not fetch thumbnail", http.StatusBadGateway)
		return
	}
	slog.Debug("proxied thumbnail", "id", id, "size", humanize.Bytes(uint64(len(data))))
	s.thumbs.store(key, data)
	writeImage(w, data)
}

func writeImage(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", http.DetectContentType(data))
	_, _ = w.Write(data)
}

// photoView builds the grid cell for a photo. Photos without a thumbnail
// cache key get an empty ThumbURL, which the template renders as a
// placeholder instead of an image.
func (s *server) photoView(photo synofoto.Photo, q gallery.Query) photoView {
	view := photoView{Filename: photo.Filename}
	if key := photo.Additional.Thumbnail.CacheKey; key != "" {
		params := url.Values{}
		params.Set("size", string(q.Size))
		params.Set("cache_key", key)
		base := fmt.Sprintf("/thumb/%s/%d", q.Space, photo.ID)
		view.ThumbURL = base + "?" + params.Encode()
		params.Set("size", string(api.ThumbXL))
		view.PreviewURL = base + "?" + params.Encode()
	}
	return view
}
