package synofoto

import (
	"fmt"
	"strings"
)

// ConfigurationError reports connection settings that are missing before any
// network request is attempted.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required settings: %s", strings.Join(e.Missing, ", "))
}

// NotFoundError reports a label with no matching catalog entry. Available
// lists every catalog name in the order the server returned them so the user
// can correct the query.
type NotFoundError struct {
	Kind      string
	Label     string
	Available []string
}

func (e *NotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("no %s named %q, and the catalog is empty", e.Kind, e.Label)
	}
	return fmt.Sprintf("no %s named %q, available: %s", e.Kind, e.Label, strings.Join(e.Available, ", "))
}
