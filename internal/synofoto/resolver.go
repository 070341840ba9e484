package synofoto

import (
	"context"
	"strings"
)

// ResolveTag translates a tag name into its API identifier by listing the
// space's tags and taking the first case-insensitive match. The catalog is
// re-fetched on every resolution; entries beyond the first 1000 are not
// visible.
func (c *Client) ResolveTag(ctx context.Context, name string, space Space) (int, error) {
	sid, err := c.session.Ensure(ctx)
	if err != nil {
		return 0, err
	}
	entries, err := c.remote.ListTags(ctx, space, sid)
	if err != nil {
		return 0, err
	}
	return matchEntry("tag", name, entries)
}

// ResolvePerson translates a person name into its API identifier. See
// [Client.ResolveTag] for the matching rules.
func (c *Client) ResolvePerson(ctx context.Context, name string, space Space) (int, error) {
	sid, err := c.session.Ensure(ctx)
	if err != nil {
		return 0, err
	}
	entries, err := c.remote.ListPersons(ctx, space, sid)
	if err != nil {
		return 0, err
	}
	return matchEntry("person", name, entries)
}

// matchEntry finds the first catalog entry whose name matches the label
// case-insensitively. A [NotFoundError] listing every available name, in the
// order received, is returned when nothing matches.
func matchEntry(kind, label string, entries []CatalogEntry) (int, error) {
	for _, entry := range entries {
		if strings.EqualFold(entry.Name, label) {
			return entry.ID, nil
		}
	}
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name
	}
	return 0, &NotFoundError{Kind: kind, Label: label, Available: names}
}
