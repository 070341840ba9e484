package synofoto

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"

	"syno-photo-gallery/internal/synofoto/api"
)

// Client provides label resolution and photo queries against a Synology
// Photos server. All calls on one Client share a single [Session]; the
// session is established lazily on the first call that needs it.
type Client struct {
	remote  api.Client
	session *Session
}

// clientOpt is used for configuring the [Client].
type clientOpt func(*Client)

// WithRemote configures the remote server connection. A fresh Session is
// created for it unless one is supplied via [WithSession].
func WithRemote(conf api.Config) clientOpt {
	return func(c *Client) {
		c.remote = api.NewClient(conf)
		if c.session == nil {
			c.session = NewSession(conf)
		}
	}
}

// WithSession shares an existing Session. Use this when several clients
// should reuse one login rather than each holding their own token.
func WithSession(s *Session) clientOpt {
	return func(c *Client) { c.session = s }
}

// NewClient initializes a new client with the provided options. See
// [WithRemote] and [WithSession].
func NewClient(opts ...clientOpt) *Client {
	client := &Client{}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Photos fetches one page of photo metadata matching the filter, starting at
// offset and sized limit. An empty page means there are no more results.
func (c *Client) Photos(ctx context.Context, filter Filter, space Space, offset, limit int) ([]Photo, error) {
	sid, err := c.session.Ensure(ctx)
	if err != nil {
		return nil, err
	}
	photos, err := c.remote.ListPhotos(ctx, space, filter, offset, limit, sid)
	if err != nil {
		return nil, err
	}
	slog.Debug("fetched photo page",
		"space", space,
		"offset", offset,
		"limit", limit,
		"count", len(photos),
	)
	return photos, nil
}

// ThumbnailURL builds the thumbnail download URL for a photo using the
// current session token. An empty string means the photo has no thumbnail
// available. The URL stops working whenever the session is invalidated.
func (c *Client) ThumbnailURL(photo Photo, size ThumbSize, space Space) string {
	return c.remote.ThumbnailURL(space, photo, size, c.session.Token())
}

// Thumbnail fetches the thumbnail image bytes for a photo.
func (c *Client) Thumbnail(ctx context.Context, photo Photo, size ThumbSize, space Space) ([]byte, error) {
	sid, err := c.session.Ensure(ctx)
	if err != nil {
		return nil, err
	}
	data, err := c.remote.GetThumbnail(ctx, space, photo, size, sid)
	if err != nil {
		return nil, err
	}
	slog.Debug("fetched thumbnail",
		"id", photo.ID,
		"filename", photo.Filename,
		"size", humanize.Bytes(uint64(len(data))),
	)
	return data, nil
}
