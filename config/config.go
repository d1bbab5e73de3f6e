// Package config reads the optional per-page options of the card runtime.
package config

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Recognized option keys.
const (
	CopyRevert   = "copy_revert_ms"
	CopyAckColor = "copy_ack_color"
	TOCIconFill  = "toc_icon_fill"
)

// Conf is a collection of config key/value pairs
type Conf struct {
	c map[string]string
}

// New returns a conf collection from the passed argument. A nil map yields an
// empty collection.
func New(conf map[string]string) *Conf {
	if conf == nil {
		conf = map[string]string{}
	}
	return &Conf{c: conf}
}

// NewFromJSON returns a conf collection, parsed from the passed JSON object.
// Numbers and booleans are accepted and kept in their literal form.
func NewFromJSON(data []byte) (*Conf, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "page config")
	}
	c := make(map[string]string, len(raw))
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			c[k] = s
			continue
		}
		c[k] = string(v)
	}
	return &Conf{c: c}, nil
}

// IsSet returns true if key is set.
func (c *Conf) IsSet(key string) bool {
	if c == nil {
		return false
	}
	_, ok := c.c[key]
	return ok
}

// GetString returns the value as a string.
func (c *Conf) GetString(key string) string {
	if c == nil {
		return ""
	}
	return c.c[key]
}

// GetStringDefault returns the value, or def if key is unset or empty.
func (c *Conf) GetStringDefault(key, def string) string {
	if s := c.GetString(key); s != "" {
		return s
	}
	return def
}

// GetDuration interprets the value as a whole number of milliseconds. def is
// returned when key is unset.
func (c *Conf) GetDuration(key string, def time.Duration) (time.Duration, error) {
	if !c.IsSet(key) {
		return def, nil
	}
	ms, err := strconv.ParseInt(c.GetString(key), 10, 64)
	if err != nil || ms < 0 {
		return 0, errors.Errorf("config %s: invalid millisecond value %q", key, c.GetString(key))
	}
	return time.Duration(ms) * time.Millisecond, nil
}
