// Copyright 2025 by Harald Albrecht
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package scribe

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Config is an immutable set of named configuration values, usually built
// from multiple layered sources using a Builder.
type Config struct {
	values map[string]string
}

// New returns a Config for (a copy of) the specified name-value pairs.
func New(values map[string]string) *Config {
	c := &Config{values: maps.Clone(values)}
	if c.values == nil {
		c.values = map[string]string{}
	}
	return c
}

// Lookup returns the value of the named configuration variable and true, or
// "" and false if the variable is not set.
func (c *Config) Lookup(name string) (string, bool) {
	value, ok := c.values[name]
	return value, ok
}

// Has reports whether the named configuration variable is set.
func (c *Config) Has(name string) bool {
	_, ok := c.values[name]
	return ok
}

// Require returns the value of the named configuration variable, or a
// *MissingValueError if it isn't set.
func (c *Config) Require(name string) (string, error) {
	value, ok := c.values[name]
	if !ok {
		return "", &MissingValueError{Name: name}
	}
	return value, nil
}

// GetOr returns the value of the named configuration variable, or def if it
// isn't set.
func (c *Config) GetOr(name string, def string) string {
	if value, ok := c.values[name]; ok {
		return value
	}
	return def
}

// Sub returns a new Config with only those variables whose names start with
// the specified prefix. If strip is true, the prefix gets removed from the
// names in the new Config.
func (c *Config) Sub(prefix string, strip bool) *Config {
	sub := map[string]string{}
	for name, value := range c.values {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if strip {
			name = name[len(prefix):]
		}
		sub[name] = value
	}
	return &Config{values: sub}
}

// Filter returns a new Config with only those variables for which keep returns
// true.
func (c *Config) Filter(keep func(name string) bool) *Config {
	filtered := map[string]string{}
	for name, value := range c.values {
		if keep(name) {
			filtered[name] = value
		}
	}
	return &Config{values: filtered}
}

// Map returns a copy of the configuration variables.
func (c *Config) Map() map[string]string {
	return maps.Clone(c.values)
}

// Names returns the sorted names of all configuration variables.
func (c *Config) Names() []string {
	names := maps.Keys(c.values)
	slices.Sort(names)
	return names
}

// Len returns the number of configuration variables.
func (c *Config) Len() int { return len(c.values) }

// Copy returns an independent copy of this Config.
func (c *Config) Copy() *Config {
	return New(c.values)
}

// Equal reports whether both Configs contain the same variables with the same
// values.
func (c *Config) Equal(other *Config) bool {
	if other == nil {
		return false
	}
	return maps.Equal(c.values, other.values)
}

// String returns a textual representation listing only the names of the
// configuration variables, but not their (potentially sensitive) values.
func (c *Config) String() string {
	return fmt.Sprintf("Config{names=[%s]}", strings.Join(c.Names(), ", "))
}

// Detailed returns a textual representation listing the names and values of
// all configuration variables.
func (c *Config) Detailed() string {
	var b strings.Builder
	b.WriteString("Config{values=[")
	for idx, name := range c.Names() {
		if idx > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%s=%q", name, c.values[name]))
	}
	b.WriteString("]}")
	return b.String()
}
