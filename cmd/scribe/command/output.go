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

package command

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/thediveo/scribe"
	"github.com/thediveo/scribe/envfile"
	"gopkg.in/yaml.v3"
)

// writer writes a configuration in a particular output format.
type writer func(w io.Writer, cfg *scribe.Config) error

var writers = map[string]writer{
	"dotenv": writeDotenv,
	"json":   writeJSON,
	"yaml":   writeYAML,
	"toml":   writeTOML,
}

// writerFor returns the writer for the named output format.
func writerFor(format string) (writer, error) {
	w, ok := writers[format]
	if !ok {
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	return w, nil
}

// writeDotenv writes the configuration in .env format, sorted by name, such
// that it can be parsed back again.
func writeDotenv(w io.Writer, cfg *scribe.Config) error {
	for _, name := range cfg.Names() {
		if !envfile.IsValidName(name) {
			return fmt.Errorf("cannot write %q as .env variable, reason: invalid name", name)
		}
		value, _ := cfg.Lookup(name)
		quoted, err := envfile.Quote(value)
		if err != nil {
			return fmt.Errorf("cannot write %q as .env variable, reason: %w", name, err)
		}
		if _, err := fmt.Fprintf(w, "%s=%s\n", name, quoted); err != nil {
			return fmt.Errorf("cannot write .env variables, reason: %w", err)
		}
	}
	return nil
}

func writeJSON(w io.Writer, cfg *scribe.Config) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg.Map()); err != nil {
		return fmt.Errorf("cannot write JSON, reason: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, cfg *scribe.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg.Map()); err != nil {
		return fmt.Errorf("cannot write YAML, reason: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("cannot write YAML, reason: %w", err)
	}
	return nil
}

func writeTOML(w io.Writer, cfg *scribe.Config) error {
	if err := toml.NewEncoder(w).Encode(cfg.Map()); err != nil {
		return fmt.Errorf("cannot write TOML, reason: %w", err)
	}
	return nil
}
