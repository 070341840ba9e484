package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"syno-photo-gallery/internal/gallery"
	"syno-photo-gallery/internal/synofoto"
)

// Run loads the configuration, wires up the photo client and gallery
// controllers, and serves the gallery pages until the server stops.
func Run() error {
	conf, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	// Debug level since conf has sensitive values.
	slog.Debug("loaded config", "config", conf)

	srv, err := InitApp(*conf)
	if err != nil {
		return fmt.Errorf("failed to init app: %w", err)
	}
	slog.Info("successfully initialized app", "addr", conf.App.ListenAddr)

	httpSrv := &http.Server{
		Addr:              conf.App.ListenAddr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return httpSrv.ListenAndServe()
}

// InitApp builds the server from configuration: one shared session, one
// photo client, and one pagination controller per configured gallery.
func InitApp(conf Config) (*server, error) {
	if len(conf.Galleries) == 0 {
		return nil, errors.New("no galleries configured")
	}

	session := synofoto.NewSession(conf.Remote)
	client := synofoto.NewClient(
		synofoto.WithSession(session),
		synofoto.WithRemote(conf.Remote),
	)
	slog.Info("created photo client")
	slog.Info("client diagnostics", "diagnostics", client.Diagnostics(context.Background()))

	var galleries []*galleryInstance
	seen := make(map[string]struct{})
	for _, gc := range conf.Galleries {
		if gc.Name == "" {
			return nil, errors.New("gallery needs a name")
		}
		if _, ok := seen[gc.Name]; ok {
			return nil, fmt.Errorf("duplicate gallery name %q", gc.Name)
		}
		seen[gc.Name] = struct{}{}
		query, err := gallery.ParseQuery(gc.Query)
		if err != nil {
			return nil, fmt.Errorf("gallery %q: %w", gc.Name, err)
		}
		galleries = append(galleries, &galleryInstance{
			name:  gc.Name,
			query: query,
			ctrl:  gallery.NewController(client, query),
		})
		slog.Info("configured gallery",
			"name", gc.Name,
			"space", query.Space,
			"page_size", query.PageSize(),
		)
	}

	return newServer(client, galleries, newThumbCache(conf.Cache)), nil
}
