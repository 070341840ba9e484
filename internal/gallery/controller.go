package gallery

import (
	"context"
	"log/slog"
	"sync"

	"syno-photo-gallery/internal/synofoto"
)

// State identifies where a Controller is in its load / load-more cycle.
type State string

const (
	// StateIdle is the initial state; nothing has been fetched.
	StateIdle State = "idle"
	// StateLoading is the transient state while the first page is being
	// fetched.
	StateLoading State = "loading"
	// StateDisplaying means at least one page is shown and more may be
	// available.
	StateDisplaying State = "displaying"
	// StateLoadingMore is the transient state while a subsequent page is
	// being fetched.
	StateLoadingMore State = "loading-more"
	// StateExhausted means a short page signalled the end of results; no
	// further fetches will be issued.
	StateExhausted State = "exhausted"
	// StateEmpty is the terminal state when the first page came back with
	// zero records.
	StateEmpty State = "empty"
	// StateErrored means the first page failed; [Controller.Load] may be
	// invoked again to retry.
	StateErrored State = "errored"
)

// PhotoService is the slice of the photo client the controller needs:
// one-shot label resolution and paged photo listing.
type PhotoService interface {
	ResolveTag(ctx context.Context, name string, space synofoto.Space) (int, error)
	ResolvePerson(ctx context.Context, name string, space synofoto.Space) (int, error)
	Photos(ctx context.Context, filter synofoto.Filter, space synofoto.Space, offset, limit int) ([]synofoto.Photo, error)
}

// Controller drives lazy pagination for a single gallery query. It is an
// explicit state machine advanced by two discrete triggers: [Controller.Load]
// for the first page and [Controller.LoadMore] for each "load more" action.
// Nothing is retried automatically; every retry is a caller re-invoking the
// same trigger.
//
// The query label is resolved to its API identifier once, on the first
// fetch, and reused for every subsequent page.
type Controller struct {
	mu      sync.Mutex
	service PhotoService
	query   Query

	state    State
	filter   synofoto.Filter
	resolved bool
	offset   int
	photos   []synofoto.Photo
	err      error
}

// NewController initializes an idle Controller for the query.
func NewController(service PhotoService, query Query) *Controller {
	return &Controller{
		service: service,
		query:   query,
		state:   StateIdle,
	}
}

// Load fetches the first page. It only acts from Idle (or Errored, as a
// manual retry); in any other state it is a no-op so repeated render passes
// are harmless.
//
// Zero records is not an error: the controller lands in the terminal Empty
// state. A short first page goes straight to Exhausted. A failure lands in
// Errored with the error retained for inline rendering.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateIdle && c.state != StateErrored {
		return nil
	}
	c.state = StateLoading
	photos, err := c.fetchPage(ctx)
	if err != nil {
		slog.Error("failed to load first page", "error", err)
		c.state = StateErrored
		c.err = err
		return err
	}
	c.err = nil
	c.offset += len(photos)
	switch {
	case len(photos) == 0:
		c.state = StateEmpty
	case len(photos) < c.query.PageSize():
		c.photos = photos
		c.state = StateExhausted
	default:
		c.photos = photos
		c.state = StateDisplaying
	}
	return nil
}

// LoadMore fetches the next page at the current offset. It only acts from
// Displaying. On failure the records shown so far are kept, the controller
// returns to Displaying so the action can be retried, and the error is
// returned for transient surfacing.
func (c *Controller) LoadMore(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateDisplaying {
		return nil
	}
	c.state = StateLoadingMore
	photos, err := c.fetchPage(ctx)
	if err != nil {
		slog.Error("failed to load more", "offset", c.offset, "error", err)
		c.state = StateDisplaying
		return err
	}
	c.offset += len(photos)
	c.photos = append(c.photos, photos...)
	if len(photos) < c.query.PageSize() {
		c.state = StateExhausted
	} else {
		c.state = StateDisplaying
	}
	return nil
}

// fetchPage resolves the query label if needed and fetches one page at the
// current offset. The offset is not advanced here; that only happens after a
// successful fetch.
func (c *Controller) fetchPage(ctx context.Context) ([]synofoto.Photo, error) {
	if !c.resolved {
		filter, err := c.resolveFilter(ctx)
		if err != nil {
			return nil, err
		}
		c.filter = filter
		c.resolved = true
	}
	return c.service.Photos(ctx, c.filter, c.query.Space, c.offset, c.query.PageSize())
}

func (c *Controller) resolveFilter(ctx context.Context) (synofoto.Filter, error) {
	if c.query.Person != "" {
		id, err := c.service.ResolvePerson(ctx, c.query.Person, c.query.Space)
		if err != nil {
			return synofoto.Filter{}, err
		}
		return synofoto.Filter{PersonID: id}, nil
	}
	id, err := c.service.ResolveTag(ctx, c.query.Tag, c.query.Space)
	if err != nil {
		return synofoto.Filter{}, err
	}
	return synofoto.Filter{TagID: id}, nil
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Photos returns a copy of every record fetched so far, in the order
// received.
func (c *Controller) Photos() []synofoto.Photo {
	c.mu.Lock()
	defer c.mu.Unlock()
	photos := make([]synofoto.Photo, len(c.photos))
	copy(photos, c.photos)
	return photos
}

// Offset returns the current page cursor: the sum of the record counts of
// every successful fetch so far.
func (c *Controller) Offset() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offset
}

// CanLoadMore reports whether a "load more" affordance should be offered.
func (c *Controller) CanLoadMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateDisplaying
}

// Err returns the first-page error when the controller is Errored, nil
// otherwise.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Query returns the query this controller was built for.
func (c *Controller) Query() Query {
	return c.query
}
