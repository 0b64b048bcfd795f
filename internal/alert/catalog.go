package alert

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/notifique/alert/internal"
)

// Catalog holds the alert types and backends known to the process. It is
// built once at startup and never mutated afterwards.
type Catalog struct {
	types      []AlertType
	backends   []Backend
	typeIdx    map[AlertTypeID]int
	backendIdx map[BackendID]int
}

type catalogFile struct {
	Backends   []Backend   `yaml:"backends"`
	AlertTypes []AlertType `yaml:"alertTypes"`
}

func NewCatalog(types []AlertType, backends []Backend) (*Catalog, error) {

	c := Catalog{
		types:      make([]AlertType, 0, len(types)),
		backends:   make([]Backend, 0, len(backends)),
		typeIdx:    make(map[AlertTypeID]int, len(types)),
		backendIdx: make(map[BackendID]int, len(backends)),
	}

	for _, b := range backends {
		if b.ID == "" {
			return nil, internal.InvalidCatalog{Reason: "backend without id"}
		}

		if _, ok := c.backendIdx[b.ID]; ok {
			return nil, internal.InvalidCatalog{Reason: fmt.Sprintf("duplicated backend %s", b.ID)}
		}

		c.backendIdx[b.ID] = len(c.backends)
		c.backends = append(c.backends, b)
	}

	for _, t := range types {
		if t.ID == "" {
			return nil, internal.InvalidCatalog{Reason: "alert type without id"}
		}

		if _, ok := c.typeIdx[t.ID]; ok {
			return nil, internal.InvalidCatalog{Reason: fmt.Sprintf("duplicated alert type %s", t.ID)}
		}

		for backend := range t.Defaults {
			if _, ok := c.backendIdx[backend]; !ok {
				reason := fmt.Sprintf("alert type %s has a default for unknown backend %s", t.ID, backend)
				return nil, internal.InvalidCatalog{Reason: reason}
			}
		}

		c.typeIdx[t.ID] = len(c.types)
		c.types = append(c.types, t)
	}

	return &c, nil
}

// LoadCatalog reads a YAML catalog with top level "backends" and
// "alertTypes" lists.
func LoadCatalog(path string) (*Catalog, error) {

	raw, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s - %w", path, err)
	}

	var f catalogFile

	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s - %w", path, err)
	}

	return NewCatalog(f.AlertTypes, f.Backends)
}

func (c *Catalog) AlertType(id AlertTypeID) (AlertType, error) {
	idx, ok := c.typeIdx[id]

	if !ok {
		return AlertType{}, internal.UnknownAlertType{Id: string(id)}
	}

	return c.types[idx], nil
}

func (c *Catalog) Backend(id BackendID) (Backend, error) {
	idx, ok := c.backendIdx[id]

	if !ok {
		return Backend{}, internal.UnknownBackend{Id: string(id)}
	}

	return c.backends[idx], nil
}

func (c *Catalog) AlertTypes() []AlertType {
	types := make([]AlertType, len(c.types))
	copy(types, c.types)
	return types
}

func (c *Catalog) Backends() []Backend {
	backends := make([]Backend, len(c.backends))
	copy(backends, c.backends)
	return backends
}

// Keys returns every (alert type, backend) pair in catalog order.
func (c *Catalog) Keys() []PrefKey {
	keys := make([]PrefKey, 0, len(c.types)*len(c.backends))

	for _, t := range c.types {
		for _, b := range c.backends {
			keys = append(keys, PrefKey{AlertType: t.ID, Backend: b.ID})
		}
	}

	return keys
}

type CatalogConfigurator interface {
	GetCatalogPath() (string, error)
}

func NewCatalogFromConfig(cfg CatalogConfigurator) (*Catalog, error) {

	path, err := cfg.GetCatalogPath()

	if err != nil {
		return nil, err
	}

	return LoadCatalog(path)
}
