package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// PhotoID is the numeric identifier of a photo item.
type PhotoID int64

// Photo contains the photo metadata read by this application. The server
// returns more fields; only the id, filename, and thumbnail cache key are
// acted on, the rest is pass-through.
type Photo struct {
	ID         PhotoID    `json:"id"`
	Filename   string     `json:"filename"`
	Additional Additional `json:"additional"`
}

// Additional holds the extra metadata requested alongside photo listings.
type Additional struct {
	Thumbnail  Thumbnail  `json:"thumbnail"`
	Resolution Resolution `json:"resolution"`
}

// Thumbnail carries the opaque cache key required to build a valid
// thumbnail-download URL.
type Thumbnail struct {
	CacheKey string `json:"cache_key"`
}

// Resolution is the pixel dimensions of the original photo.
type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Filter selects photos by a resolved catalog identifier. Exactly one of
// TagID or PersonID must be set.
type Filter struct {
	TagID    int
	PersonID int
}

// apply sets the filter's query parameter. Tag and person filters are
// mutually exclusive.
func (f Filter) apply(params url.Values) error {
	switch {
	case f.TagID != 0 && f.PersonID != 0:
		return errors.New("tag and person filters are mutually exclusive")
	case f.TagID != 0:
		params.Set("general_tag_id", strconv.Itoa(f.TagID))
	case f.PersonID != 0:
		params.Set("person_id", strconv.Itoa(f.PersonID))
	default:
		return errors.New("filter needs a tag or person id")
	}
	return nil
}

// ListPhotos fetches one page of photo metadata for the filter, starting at
// offset and sized limit. Thumbnail and resolution metadata are requested as
// additional fields. An empty page is not an error; it simply means there
// are no more results.
func (c Client) ListPhotos(ctx context.Context, space Space, filter Filter, offset, limit int, sid string) ([]Photo, error) {
	apiName := space.namespace() + ".Browse.Item"
	params := url.Values{}
	params.Set("api", apiName)
	params.Set("version", "1")
	params.Set("method", "list")
	params.Set("additional", `["thumbnail","resolution"]`)
	params.Set("offset", strconv.Itoa(offset))
	params.Set("limit", strconv.Itoa(limit))
	params.Set("_sid", sid)
	if err := filter.apply(params); err != nil {
		return nil, err
	}

	data, err := c.getEnvelope(ctx, "entry.cgi", apiName, params)
	if err != nil {
		return nil, err
	}
	var list struct {
		List []Photo `json:"list"`
	}
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode %s data: %w", apiName, err)
	}
	return list.List, nil
}

// ThumbnailURL builds the download URL for a photo's thumbnail. It is a pure
// function of its inputs and returns an empty string if the photo carries no
// thumbnail cache key, which callers must treat as "no image available"
// rather than an error. The session token is embedded in the URL, so built
// URLs stop working once the session is invalidated.
func ThumbnailURL(base *url.URL, space Space, photo Photo, size ThumbSize, sid string) string {
	if photo.Additional.Thumbnail.CacheKey == "" {
		return ""
	}
	params := url.Values{}
	params.Set("api", space.namespace()+".Thumbnail")
	params.Set("version", "1")
	params.Set("method", "get")
	params.Set("mode", "download")
	params.Set("id", strconv.FormatInt(int64(photo.ID), 10))
	params.Set("type", "unit")
	params.Set("size", string(size))
	params.Set("cache_key", photo.Additional.Thumbnail.CacheKey)
	params.Set("_sid", sid)

	u := *base
	u.Path = u.Path + "/entry.cgi"
	u.RawQuery = params.Encode()
	return u.String()
}

// ThumbnailURL builds the thumbnail download URL against this client's
// server. See the package-level [ThumbnailURL].
func (c Client) ThumbnailURL(space Space, photo Photo, size ThumbSize, sid string) string {
	return ThumbnailURL(c.base, space, photo, size, sid)
}

// GetThumbnail fetches the thumbnail image bytes for a photo.
func (c Client) GetThumbnail(ctx context.Context, space Space, photo Photo, size ThumbSize, sid string) ([]byte, error) {
	u := c.ThumbnailURL(space, photo, size, sid)
	if u == "" {
		return nil, errors.New("photo has no thumbnail cache key")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if err := checkStatusCode(resp.StatusCode); err != nil {
		return nil, err
	}
	return io.ReadAll(resp.Body)
}
