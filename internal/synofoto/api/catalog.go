package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// catalogListLimit caps how many catalog entries a listing returns. Entries
// beyond it are not visible to label resolution.
const catalogListLimit = 1000

// CatalogEntry is a named tag or person record with its stable API
// identifier.
type CatalogEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ListTags lists up to 1000 general tags in the given space.
func (c Client) ListTags(ctx context.Context, space Space, sid string) ([]CatalogEntry, error) {
	return c.listCatalog(ctx, space, "Browse.GeneralTag", sid)
}

// ListPersons lists up to 1000 recognized persons in the given space.
func (c Client) ListPersons(ctx context.Context, space Space, sid string) ([]CatalogEntry, error) {
	return c.listCatalog(ctx, space, "Browse.Person", sid)
}

func (c Client) listCatalog(ctx context.Context, space Space, browse, sid string) ([]CatalogEntry, error) {
	apiName := space.namespace() + "." + browse
	params := url.Values{}
	params.Set("api", apiName)
	params.Set("version", "1")
	params.Set("method", "list")
	params.Set("offset", "0")
	params.Set("limit", strconv.Itoa(catalogListLimit))
	params.Set("_sid", sid)

	data, err := c.getEnvelope(ctx, "entry.cgi", apiName, params)
	if err != nil {
		return nil, err
	}
	var list struct {
		List []CatalogEntry `json:"list"`
	}
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode %s data: %w", apiName, err)
	}
	return list.List, nil
}
