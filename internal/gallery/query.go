// Package gallery drives lazy pagination of photo queries independently of
// any particular rendering surface.
package gallery

import (
	"errors"
	"strconv"
	"strings"

	"syno-photo-gallery/internal/synofoto/api"
)

const (
	// DefaultColumns is the grid width used when a query does not set one.
	DefaultColumns = 3
	// DefaultPageSize is the page limit used when a query does not set
	// one.
	DefaultPageSize = 50
)

// Query describes one gallery: what to show and how to page through it. It
// filters by either a tag name or a person name, never both.
type Query struct {
	Tag     string
	Person  string
	Space   api.Space
	Columns int
	// Limit is the page size for each fetch. Zero means use
	// DefaultPageSize.
	Limit int
	Size  api.ThumbSize
}

// PageSize returns the per-fetch limit, applying the default when the query
// does not set one.
func (q Query) PageSize() int {
	if q.Limit > 0 {
		return q.Limit
	}
	return DefaultPageSize
}

// ParseQuery parses the line-oriented "key: value" query block syntax.
//
// Recognized keys are "tag", "person", "space" (personal|shared), "columns",
// "limit", and "size" (sm|m|xl). Unrecognized keys are silently ignored, and
// malformed integers fall back to their defaults. Space and size values are
// validated here so the rest of the code only ever sees the closed
// enumerations.
func ParseQuery(text string) (Query, error) {
	q := Query{
		Space:   api.SpacePersonal,
		Columns: DefaultColumns,
		Size:    api.ThumbSmall,
	}
	for _, line := range strings.Split(text, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		switch key {
		case "tag":
			q.Tag = value
		case "person":
			q.Person = value
		case "space":
			if err := q.Space.UnmarshalText([]byte(value)); err != nil {
				return Query{}, err
			}
		case "columns":
			q.Columns = atoiDefault(value, DefaultColumns)
		case "limit":
			q.Limit = atoiDefault(value, 0)
		case "size":
			if err := q.Size.UnmarshalText([]byte(value)); err != nil {
				return Query{}, err
			}
		}
	}
	if q.Tag != "" && q.Person != "" {
		return Query{}, errors.New(`"tag" and "person" are mutually exclusive`)
	}
	if q.Tag == "" && q.Person == "" {
		return Query{}, errors.New(`query needs a "tag" or a "person"`)
	}
	return q, nil
}

// atoiDefault parses a positive integer, falling back to def when the value
// is malformed.
func atoiDefault(value string, def int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return def
	}
	return n
}
