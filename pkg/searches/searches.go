// Package searches loads saved-search definitions from YAML/JSON config
// files and materializes them into typed ZoomInfo queries.
package searches

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/carlos-naranjo-aa/zoominfo-api-client/pkg/zoominfo"
)

// Kind selects which search endpoint a saved search targets.
type Kind string

const (
	KindContact Kind = "contact"
	KindCompany Kind = "company"
)

// Search is one materialized saved-search entry. Exactly one of Contact or
// Company is non-nil, matching Kind.
type Search struct {
	ID      string
	Name    string
	Kind    Kind
	Contact *zoominfo.ContactQuery
	Company *zoominfo.CompanyQuery
}

// configFile represents the structure of the searches configuration file.
type configFile struct {
	Searches []searchConfig `json:"searches" yaml:"searches"`
}

// searchConfig is a single search entry as declared in config files. Filters
// are held raw and decoded per kind during registry construction.
type searchConfig struct {
	ID           string         `json:"id" yaml:"id"`
	Name         string         `json:"name" yaml:"name"`
	Kind         string         `json:"kind" yaml:"kind"`
	Filters      map[string]any `json:"filters" yaml:"filters"`
	ExtraFilters map[string]any `json:"extra_filters" yaml:"extra_filters"`
}

// Registry holds the saved searches loaded from a config file.
type Registry struct {
	mu       sync.RWMutex
	searches []Search
	idx      map[string]Search
}

// LoadRegistry loads the saved-search registry from a YAML/JSON file.
func LoadRegistry(path string) (*Registry, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("searches file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open searches file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read searches file: %w", err)
	}

	cfg, err := parseSearchesFile(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if len(cfg.Searches) == 0 {
		return nil, errors.New("searches file contains no searches entries")
	}

	reg := &Registry{
		searches: make([]Search, len(cfg.Searches)),
		idx:      make(map[string]Search, len(cfg.Searches)),
	}

	for i := range cfg.Searches {
		s, err := materialize(sanitizeSearchConfig(cfg.Searches[i]))
		if err != nil {
			return nil, fmt.Errorf("searches[%d]: %w", i, err)
		}
		if _, exists := reg.idx[s.ID]; exists {
			return nil, fmt.Errorf("duplicate search id %q", s.ID)
		}
		reg.searches[i] = s
		reg.idx[s.ID] = s
	}

	return reg, nil
}

// parseSearchesFile attempts to decode the searches file content.
func parseSearchesFile(data []byte, ext string) (configFile, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	decoders := []struct {
		name string
		ext  string
		fn   func([]byte, any) error
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		var cfg configFile
		if err := d.fn(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	return configFile{}, errors.New("searches file format not recognized (expected YAML or JSON)")
}

func sanitizeSearchConfig(cfg searchConfig) searchConfig {
	cfg.ID = strings.TrimSpace(cfg.ID)
	cfg.Name = strings.TrimSpace(cfg.Name)
	cfg.Kind = strings.ToLower(strings.TrimSpace(cfg.Kind))
	if cfg.Name == "" {
		cfg.Name = cfg.ID
	}
	return cfg
}

// materialize validates an entry and decodes its raw filters into the typed
// query for its kind.
func materialize(cfg searchConfig) (Search, error) {
	if cfg.ID == "" {
		return Search{}, errors.New("id is required")
	}

	s := Search{ID: cfg.ID, Name: cfg.Name, Kind: Kind(cfg.Kind)}
	switch s.Kind {
	case KindContact:
		var q zoominfo.ContactQuery
		if err := decodeFilters(cfg.Filters, &q); err != nil {
			return Search{}, fmt.Errorf("decode contact filters for search %q: %w", cfg.ID, err)
		}
		if len(cfg.ExtraFilters) > 0 {
			q.ExtraFilters = cfg.ExtraFilters
		}
		s.Contact = &q
	case KindCompany:
		var q zoominfo.CompanyQuery
		if err := decodeFilters(cfg.Filters, &q); err != nil {
			return Search{}, fmt.Errorf("decode company filters for search %q: %w", cfg.ID, err)
		}
		if len(cfg.ExtraFilters) > 0 {
			q.ExtraFilters = cfg.ExtraFilters
		}
		s.Company = &q
	case "":
		return Search{}, fmt.Errorf("kind is required for search %q", cfg.ID)
	default:
		return Search{}, fmt.Errorf("unsupported kind %q for search %q", cfg.Kind, cfg.ID)
	}

	return s, nil
}

// decodeFilters round-trips the raw filter map through YAML so snake_case
// keys land on the typed query fields regardless of the source file format.
func decodeFilters(filters map[string]any, out any) error {
	if len(filters) == 0 {
		return nil
	}
	raw, err := yaml.Marshal(filters)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(raw, out)
}

// ByID returns the search entry for the given id.
func (r *Registry) ByID(id string) (Search, bool) {
	if r == nil {
		return Search{}, false
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return Search{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.idx[id]
	return s, ok
}

// All returns all configured searches.
func (r *Registry) All() []Search {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Search, len(r.searches))
	copy(out, r.searches)
	return out
}
