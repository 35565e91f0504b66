package store

import (
	"context"
	"sync"

	"fyne.io/fyne/v2"
)

// Preferences key naming
const (
	DefaultPreferencesPrefix = "data."
	preferencesIndexKey      = "keys"
)

// PreferencesBackend stores values in Fyne app preferences, the platform
// key-value store on Android and iOS. Preferences cannot be enumerated, so the
// backend records the keys it wrote in a string list to support Clear.
type PreferencesBackend struct {
	prefs  fyne.Preferences
	prefix string
	mu     sync.Mutex
}

// NewPreferencesBackend wraps prefs. Keys are namespaced with prefix so data
// never collides with app settings stored in the same preferences.
func NewPreferencesBackend(prefs fyne.Preferences, prefix string) *PreferencesBackend {
	if prefix == "" {
		prefix = DefaultPreferencesPrefix
	}
	return &PreferencesBackend{prefs: prefs, prefix: prefix}
}

func (p *PreferencesBackend) key(k string) string {
	return p.prefix + k
}

func (p *PreferencesBackend) indexKey() string {
	return p.prefix + preferencesIndexKey
}

// Get treats an empty string as absent; JSON encodings are never empty
func (p *PreferencesBackend) Get(_ context.Context, key string) (string, bool, error) {
	v := p.prefs.String(p.key(key))
	if v == "" {
		return "", false, nil
	}
	return v, true, nil
}

func (p *PreferencesBackend) Set(_ context.Context, key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.prefs.SetString(p.key(key), value)

	index := p.prefs.StringList(p.indexKey())
	for _, k := range index {
		if k == key {
			return nil
		}
	}
	p.prefs.SetStringList(p.indexKey(), append(index, key))
	return nil
}

func (p *PreferencesBackend) Remove(_ context.Context, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.prefs.RemoveValue(p.key(key))

	index := p.prefs.StringList(p.indexKey())
	kept := make([]string, 0, len(index))
	for _, k := range index {
		if k != key {
			kept = append(kept, k)
		}
	}
	p.prefs.SetStringList(p.indexKey(), kept)
	return nil
}

func (p *PreferencesBackend) Clear(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, k := range p.prefs.StringList(p.indexKey()) {
		p.prefs.RemoveValue(p.key(k))
	}
	p.prefs.RemoveValue(p.indexKey())
	return nil
}
