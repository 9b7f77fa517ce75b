// Package config provides layered resolution of mailcraft configuration
// properties: explicit overrides take precedence over environment variables,
// which take precedence over an optional key=value properties file.
// Resolved values are coerced to bool, int or string.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// ErrUnknownProperty is returned when a properties file contains a key that
// is not in the recognized set.
var ErrUnknownProperty = errors.New("unknown configuration property")

// Properties is the resolved property store. Construct it with New and load
// it explicitly; callers hand it to email.NewBuilderFromConfig rather than
// the builder reaching into process-wide state.
//
// Reads and writes of the resolved map are guarded by a single mutex. The
// store itself is the only shared mutable state in the library.
type Properties struct {
	mu        sync.Mutex
	overrides map[Key]string
	resolved  map[Key]any
}

// New creates an empty property store. Nothing is resolved until one of the
// Load methods is called.
func New() *Properties {
	return &Properties{
		overrides: make(map[Key]string),
		resolved:  make(map[Key]any),
	}
}

// Set registers an explicit override for a key. Overrides have the highest
// priority and take effect on the next Load call.
func (p *Properties) Set(key Key, raw string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.overrides[key] = raw
}

// Load resolves every recognized key from overrides and environment
// variables only. When merge is false the previously resolved values are
// discarded first; when true the newly resolved values overlay them.
func (p *Properties) Load(merge bool) error {
	return p.load(nil, merge)
}

// LoadFile resolves every recognized key with the given key=value properties
// file as the lowest-priority source. An unreadable file or a file entry
// outside the recognized key set is an error.
func (p *Properties) LoadFile(path string, merge bool) error {
	fileProps, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("reading properties file %s: %w", path, err)
	}
	return p.load(fileProps, merge)
}

// LoadReader is LoadFile for an already-open stream.
func (p *Properties) LoadReader(r io.Reader, merge bool) error {
	fileProps, err := godotenv.Parse(r)
	if err != nil {
		return fmt.Errorf("parsing properties: %w", err)
	}
	return p.load(fileProps, merge)
}

// load resolves all recognized keys in priority order and verifies that the
// file source carried no unrecognized keys.
func (p *Properties) load(fileProps map[string]string, merge bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	leftover := make(map[string]string, len(fileProps))
	for k, v := range fileProps {
		leftover[k] = v
	}

	resolved := make(map[Key]any, len(Keys))
	for _, key := range Keys {
		if raw, ok := p.overrides[key]; ok && raw != "" {
			resolved[key] = ParseValue(raw)
			delete(leftover, string(key))
			continue
		}
		if raw := os.Getenv(string(key)); raw != "" {
			resolved[key] = ParseValue(raw)
			delete(leftover, string(key))
			continue
		}
		if raw, ok := leftover[string(key)]; ok {
			delete(leftover, string(key))
			if raw != "" {
				resolved[key] = ParseValue(raw)
			}
		}
	}

	if len(leftover) > 0 {
		keys := make([]string, 0, len(leftover))
		for k := range leftover {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return fmt.Errorf("%w: %s", ErrUnknownProperty, strings.Join(keys, ", "))
	}

	if !merge {
		p.resolved = resolved
	} else {
		for k, v := range resolved {
			p.resolved[k] = v
		}
	}

	slog.Debug("configuration resolved", "keys", len(p.resolved), "merge", merge)
	return nil
}

// Has reports whether the key resolved to a non-empty value.
func (p *Properties) Has(key Key) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.resolved[key]
	if !ok {
		return false
	}
	if s, isString := v.(string); isString {
		return s != ""
	}
	return true
}

// Get returns the resolved value for the key, or nil when absent. The value
// is a bool, an int or a string depending on how the raw text coerced.
func (p *Properties) Get(key Key) any {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.resolved[key]
}

// GetString returns the resolved string value, or "" when the key is absent
// or resolved to a non-string.
func (p *Properties) GetString(key Key) string {
	if s, ok := p.Get(key).(string); ok {
		return s
	}
	return ""
}

// GetInt returns the resolved integer value, or 0 and false when the key is
// absent or resolved to a non-integer.
func (p *Properties) GetInt(key Key) (int, bool) {
	n, ok := p.Get(key).(int)
	return n, ok
}

// GetBool returns the resolved boolean value, or false when the key is
// absent or resolved to a non-boolean.
func (p *Properties) GetBool(key Key) bool {
	b, _ := p.Get(key).(bool)
	return b
}

// ParseValue coerces a raw property string. "0", "false" and "no" (any
// case) become false; "1", "true" and "yes" become true; text that parses
// as an integer becomes an int; anything else stays a string.
func ParseValue(raw string) any {
	switch strings.ToLower(raw) {
	case "0", "false", "no":
		return false
	case "1", "true", "yes":
		return true
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	return raw
}
