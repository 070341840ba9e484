package api

import "fmt"

// Space selects which of the two photo libraries a request targets: the
// account's personal library or the shared team library. Each has its own
// API namespace.
type Space string

const (
	SpacePersonal Space = "personal"
	SpaceShared   Space = "shared"
)

// namespace returns the API namespace prefix for the space.
func (s Space) namespace() string {
	if s == SpaceShared {
		return "SYNO.FotoTeam"
	}
	return "SYNO.Foto"
}

// UnmarshalText implements encoding.TextUnmarshaler so Space values are
// validated at the configuration-parsing boundary.
func (s *Space) UnmarshalText(text []byte) error {
	switch v := Space(text); v {
	case SpacePersonal, SpaceShared:
		*s = v
		return nil
	}
	return fmt.Errorf("unsupported space %q, expected %q or %q", text, SpacePersonal, SpaceShared)
}

// ThumbSize is one of the thumbnail sizes the server can produce.
type ThumbSize string

const (
	ThumbSmall  ThumbSize = "sm"
	ThumbMedium ThumbSize = "m"
	ThumbXL     ThumbSize = "xl"
)

// UnmarshalText implements encoding.TextUnmarshaler so ThumbSize values are
// validated at the configuration-parsing boundary.
func (t *ThumbSize) UnmarshalText(text []byte) error {
	switch v := ThumbSize(text); v {
	case ThumbSmall, ThumbMedium, ThumbXL:
		*t = v
		return nil
	}
	return fmt.Errorf("unsupported thumbnail size %q, expected one of %q, %q, %q",
		text, ThumbSmall, ThumbMedium, ThumbXL)
}
