/*
scribe parses and layers .env files (and other configuration sources) into a
single configuration, printing it in dotenv, JSON, YAML, or TOML format.

# Usage

	scribe [flags] [envfile...]

Sources are layered in the following order, later sources overriding earlier
ones: the environment (--env), properties files, YAML files, the .env files in
the order specified, and finally the --set values.

# Flags

	    --config string          configuration file with scribe settings
	    --env                    start with the environment variables
	-h, --help                   help for scribe
	    --optional               skip non-existing files
	-o, --output string          output format: dotenv, json, yaml, or toml (default "dotenv")
	    --prefix string          only output variables with this name prefix
	-p, --properties stringArray properties file to load
	-s, --set stringArray        NAME=VALUE to set
	    --strip-prefix           strip the name prefix from the output
	-v, --verbose                enable debug logging
	    --version                version for scribe
	-y, --yaml stringArray       flat YAML file to load

Instead of flags, the settings (but not the sources) can also be given as
SCRIBE_* environment variables, such as SCRIBE_OUTPUT=json, or in a
configuration file.
*/
package main
