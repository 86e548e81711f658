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
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/thediveo/scribe"
)

const (
	configFlag      = "config"
	envFlag         = "env"
	propertiesFlag  = "properties"
	yamlFlag        = "yaml"
	setFlag         = "set"
	optionalFlag    = "optional"
	prefixFlag      = "prefix"
	stripPrefixFlag = "strip-prefix"
	outputFlag      = "output"
	verboseFlag     = "verbose"
)

// envPrefix is the prefix of environment variables with scribe settings.
const envPrefix = "SCRIBE"

// New returns a new scribe root command, logging to the specified writer.
// While running, the command redirects the standard logrus logger and
// restores its original output and level afterwards.
func New(logw io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "scribe [flags] [envfile...]",
		Short:   "scribe parses and layers .env files into a single configuration",
		Version: `":latest"`, // sorry :p
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := newSettings(cmd)
			if err != nil {
				return err
			}
			defer restoreLogging(log.StandardLogger())()
			log.SetOutput(logw)
			if settings.GetBool(verboseFlag) {
				log.SetLevel(log.DebugLevel)
			}

			write, err := writerFor(settings.GetString(outputFlag))
			if err != nil {
				return err
			}
			cfg, err := build(cmd, settings, args)
			if err != nil {
				return err
			}
			if prefix := settings.GetString(prefixFlag); prefix != "" {
				cfg = cfg.Sub(prefix, settings.GetBool(stripPrefixFlag))
			}
			log.Info(fmt.Sprintf("📜  writing %d variables as %s",
				cfg.Len(), settings.GetString(outputFlag)))
			return write(cmd.OutOrStdout(), cfg)
		},
	}
	rootCmd.Flags().String(configFlag, "",
		"configuration file with scribe settings")
	rootCmd.Flags().Bool(envFlag, false,
		"start with the environment variables")
	rootCmd.Flags().StringArrayP(propertiesFlag, "p", nil,
		"properties file to load")
	rootCmd.Flags().StringArrayP(yamlFlag, "y", nil,
		"flat YAML file to load")
	rootCmd.Flags().StringArrayP(setFlag, "s", nil,
		"NAME=VALUE to set")
	rootCmd.Flags().Bool(optionalFlag, false,
		"skip non-existing files")
	rootCmd.Flags().String(prefixFlag, "",
		"only output variables with this name prefix")
	rootCmd.Flags().Bool(stripPrefixFlag, false,
		"strip the name prefix from the output")
	rootCmd.Flags().StringP(outputFlag, "o", "dotenv",
		"output format: dotenv, json, yaml, or toml")
	rootCmd.Flags().BoolP(verboseFlag, "v", false,
		"enable debug logging")

	if version := buildVersion(); version != "" {
		rootCmd.Version = version
	}

	return rootCmd
}

// restoreLogging returns a function restoring the current output and level of
// the specified logger.
func restoreLogging(logger *log.Logger) func() {
	out := logger.Out
	level := logger.GetLevel()
	return func() {
		logger.SetOutput(out)
		logger.SetLevel(level)
	}
}

// newSettings returns the scribe settings, taking the command line flags,
// SCRIBE_* environment variables, and an optional configuration file into
// account, in this order of precedence.
func newSettings(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("cannot bind flags, reason: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if cfgfile := v.GetString(configFlag); cfgfile != "" {
		v.SetConfigFile(cfgfile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("cannot read settings from %q, reason: %w", cfgfile, err)
		}
	}
	return v, nil
}

// build the configuration from the sources specified on the command line.
func build(cmd *cobra.Command, settings *viper.Viper, envfiles []string) (*scribe.Config, error) {
	b := scribe.NewBuilder()
	if settings.GetBool(envFlag) {
		log.Info("🌍  loading environment variables")
		b.Env()
	}
	optional := settings.GetBool(optionalFlag)
	for _, path := range successfully(cmd.Flags().GetStringArray(propertiesFlag)) {
		log.Info(fmt.Sprintf("📄  loading properties file %q", path))
		if optional {
			b.PropertiesFileIfExists(path)
			continue
		}
		b.PropertiesFile(path)
	}
	for _, path := range successfully(cmd.Flags().GetStringArray(yamlFlag)) {
		log.Info(fmt.Sprintf("📄  loading YAML file %q", path))
		if optional {
			b.YAMLFileIfExists(path)
			continue
		}
		b.YAMLFile(path)
	}
	for _, path := range envfiles {
		log.Info(fmt.Sprintf("📄  loading .env file %q", path))
		if optional {
			b.EnvFileIfExists(path)
			continue
		}
		b.EnvFile(path)
	}
	for _, assignment := range successfully(cmd.Flags().GetStringArray(setFlag)) {
		name, value, ok := strings.Cut(assignment, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --%s %q, expected NAME=VALUE", setFlag, assignment)
		}
		b.Add(name, value)
	}
	return b.Build()
}

// successfully returns the specified value if err is nil, and panics
// otherwise. It is meant for structural problems in setting up the command,
// such as looking up a flag that hasn't been defined.
func successfully[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
