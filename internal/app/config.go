package app

import (
	"errors"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/dustin/go-humanize"

	"syno-photo-gallery/internal/synofoto/api"
)

// Config is the top-level configuration struct that is loaded via TOML
// decoding of the file specified by the SYNO_GALLERY_CONFIG environment
// variable (or "config.toml" if empty).
//
// This is the primary way to configure the application.
type Config struct {
	// Remote holds the NAS connection settings.
	Remote api.Config

	// Cache configures the in-memory thumbnail cache.
	Cache ThumbCacheConfig

	App struct {
		// ListenAddr is the address the gallery server binds to.
		ListenAddr string
	}

	// Galleries are the named photo queries served by this process.
	Galleries []GalleryConfig
}

// GalleryConfig names one gallery and carries its query block.
type GalleryConfig struct {
	Name string
	// Query is a "key: value" block; see gallery.ParseQuery.
	Query string
}

// ThumbCacheConfig configures the in-memory cache for thumbnail bytes.
// Thumbnails are only ever cached in memory, never written to disk.
type ThumbCacheConfig struct {
	UseInMemoryCache  bool
	InMemoryCacheSize HumanBytes
}

// HumanBytes is a custom type to decode human-readable byte values into an
// integer.
type HumanBytes uint64

// UnmarshalText implements toml.TextUnmarshaler.
func (h *HumanBytes) UnmarshalText(text []byte) error {
	nbytes, err := humanize.ParseBytes(string(text))
	*h = HumanBytes(nbytes)
	return err
}

// String converts the integer back into a human-readable representation.
func (h *HumanBytes) String() string {
	if h == nil {
		return ""
	}
	return humanize.Bytes(uint64(*h))
}

// LoadConfig reads and decodes the configuration file, then hydrates the
// remote settings from environment variables. Environment variables take
// precedence over file values.
func LoadConfig() (*Config, error) {
	// Determine config file path.
	configFilePath := "config.toml"
	if envConfigFilePath := os.Getenv("SYNO_GALLERY_CONFIG"); envConfigFilePath != "" {
		configFilePath = envConfigFilePath
	}
	if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
		return nil, errors.New("config file not found")
	} else if err != nil {
		return nil, err
	}

	// TOML-decode config file contents.
	var conf Config
	if _, err := toml.DecodeFile(configFilePath, &conf); err != nil {
		return nil, err
	}

	// Load values from environment variables.
	if err := conf.Remote.HydrateFromEnv(); err != nil {
		return nil, err
	}

	if conf.App.ListenAddr == "" {
		conf.App.ListenAddr = ":8080"
	}
	return &conf, nil
}
