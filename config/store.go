package config

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const tuningItem = "tuning"

// ItemStore is the part of gdata.Manager the tuning store needs.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Store persists tuned configs between sessions.
type Store struct {
	items ItemStore
}

// OpenStore opens the per-user gdata storage for appName.
func OpenStore(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open tuning store: %w", err)
	}
	return NewStore(m), nil
}

func NewStore(items ItemStore) *Store {
	return &Store{items: items}
}

// Load returns the saved tuning, or ok=false when nothing usable is stored.
// A saved config that no longer validates is reported as an error.
func (s *Store) Load() (cfg Config, ok bool, err error) {
	if s == nil || s.items == nil {
		return Config{}, false, nil
	}
	data, err := s.items.LoadItem(tuningItem)
	if err != nil {
		log.Printf("[config] could not load saved tuning: %v", err)
		return Config{}, false, nil
	}
	if len(data) == 0 {
		return Config{}, false, nil
	}

	cfg = Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, false, fmt.Errorf("parse saved tuning: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, false, err
	}
	return cfg, true, nil
}

// Save validates and stores cfg.
func (s *Store) Save(cfg Config) error {
	if s == nil || s.items == nil {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode tuning: %w", err)
	}
	if err := s.items.SaveItem(tuningItem, data); err != nil {
		return fmt.Errorf("save tuning: %w", err)
	}
	return nil
}
