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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/magiconair/properties"
	"github.com/thediveo/scribe/envfile"
	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"

	log "github.com/sirupsen/logrus"
)

// Builder layers multiple configuration sources into a single Config. Sources
// added later override the values of sources added earlier.
//
// Loading a source might fail, such as when an .env file is malformed. The
// Builder then remembers the first such error, ignores any further sources, and
// finally returns the error from Build.
type Builder struct {
	sources []source
	err     error
}

// source is a named set of configuration values.
type source struct {
	name   string
	values map[string]string
}

// NewBuilder returns a new Builder without any sources yet.
func NewBuilder() *Builder {
	return &Builder{}
}

// Err returns the first error encountered while adding sources, if any.
func (b *Builder) Err() error {
	return b.err
}

// Build merges all sources in the order they were added into a new Config,
// where later sources override earlier ones.
func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	values := map[string]string{}
	for _, src := range b.sources {
		maps.Copy(values, src.values)
	}
	log.Debug(fmt.Sprintf("built configuration with %d values from %d sources",
		len(values), len(b.sources)))
	return &Config{values: values}, nil
}

// Env adds the environment variables of this process.
func (b *Builder) Env() *Builder {
	values := map[string]string{}
	for _, env := range os.Environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || name == "" {
			continue
		}
		values[name] = value
	}
	return b.add("environment", values)
}

// Map adds (a copy of) the specified name-value pairs.
func (b *Builder) Map(values map[string]string) *Builder {
	return b.add("map", maps.Clone(values))
}

// Add a single name-value pair.
func (b *Builder) Add(name, value string) *Builder {
	return b.add("value "+name, map[string]string{name: value})
}

// Properties adds the properties of the specified set of properties. A nil set
// adds no values.
func (b *Builder) Properties(props *properties.Properties) *Builder {
	if props == nil {
		return b.add("properties", map[string]string{})
	}
	return b.add("properties", props.Map())
}

// PropertiesFile adds the properties from the specified “.properties” file
// (UTF-8 encoded). It is an error if the file doesn't exist.
func (b *Builder) PropertiesFile(path string) *Builder {
	return b.file("properties file", path, false, loadProperties)
}

// PropertiesFileIfExists adds the properties from the specified “.properties”
// file, if it exists, and otherwise skips it.
func (b *Builder) PropertiesFileIfExists(path string) *Builder {
	return b.file("properties file", path, true, loadProperties)
}

// EnvFile adds the variables from the specified “.env” file. It is an error if
// the file doesn't exist.
func (b *Builder) EnvFile(path string) *Builder {
	return b.file(".env file", path, false, loadEnvFile)
}

// EnvFileIfExists adds the variables from the specified “.env” file, if it
// exists, and otherwise skips it.
func (b *Builder) EnvFileIfExists(path string) *Builder {
	return b.file(".env file", path, true, loadEnvFile)
}

// YAMLFile adds the variables from the specified YAML file, which must contain
// a single mapping of names to scalar values. It is an error if the file
// doesn't exist.
func (b *Builder) YAMLFile(path string) *Builder {
	return b.file("YAML file", path, false, loadYAML)
}

// YAMLFileIfExists adds the variables from the specified YAML file, if it
// exists, and otherwise skips it.
func (b *Builder) YAMLFileIfExists(path string) *Builder {
	return b.file("YAML file", path, true, loadYAML)
}

// add the named source, unless an error has already occurred.
func (b *Builder) add(name string, values map[string]string) *Builder {
	if b.err != nil {
		return b
	}
	b.sources = append(b.sources, source{name: name, values: values})
	log.Debug(fmt.Sprintf("added %s with %d values", name, len(values)))
	return b
}

// loader turns file contents into a set of configuration values.
type loader func(content []byte) (map[string]string, error)

// file reads the specified file and adds its values using the specified
// loader. Missing optional files are silently skipped.
func (b *Builder) file(kind string, path string, optional bool, load loader) *Builder {
	if b.err != nil {
		return b
	}
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if optional {
				log.Debug(fmt.Sprintf("skipping non-existing %s %q", kind, path))
				return b
			}
			b.err = &InvalidFilePathError{Path: path, Err: err}
			return b
		}
		b.err = fmt.Errorf("cannot read %s %q, reason: %w", kind, path, err)
		return b
	}
	values, err := load(content)
	if err != nil {
		b.err = fmt.Errorf("cannot load %s %q, reason: %w", kind, path, err)
		return b
	}
	return b.add(kind+" "+path, values)
}

func loadEnvFile(content []byte) (map[string]string, error) {
	return envfile.Parse(string(content))
}

// loadProperties loads Java-style properties without expanding any ${...}
// references.
func loadProperties(content []byte) (map[string]string, error) {
	l := &properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
	}
	props, err := l.LoadBytes(content)
	if err != nil {
		return nil, err
	}
	return props.Map(), nil
}

// loadYAML loads a flat YAML mapping, keeping the scalar values exactly as
// written. Nested mappings and sequences are rejected.
func loadYAML(content []byte) (map[string]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	values := map[string]string{}
	if len(doc.Content) == 0 {
		return values, nil
	}
	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, errors.New("YAML document is not an associative array")
	}
	for idx := 0; idx+1 < len(mapping.Content); idx += 2 {
		key, value := mapping.Content[idx], mapping.Content[idx+1]
		if value.Kind == yaml.AliasNode {
			value = value.Alias
		}
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("value of %q in line %d is not a scalar", key.Value, value.Line)
		}
		if value.ShortTag() == "!!null" {
			values[key.Value] = ""
			continue
		}
		values[key.Value] = value.Value
	}
	return values, nil
}
