/*
Package scribe assembles application configuration from layered sources, such
as environment variables, “.env” files, “.properties” files, and flat YAML
files, and then offers typed access to the resulting configuration values.

A typical usage, where the .env file overrides the environment:

	cfg, err := scribe.NewBuilder().
		Env().
		EnvFileIfExists(".env").
		Add("GREETING", "hellorld").
		Build()
	if err != nil {
		...
	}
	port, err := cfg.PortOr("HTTP_PORT", 8080)

Sources added later override values from sources added earlier.

# Accessors

Config provides pairs of typed accessors: one requiring the variable to be set
and returning a *MissingValueError otherwise, and an “Or” variant returning a
default value instead. Values that are set but cannot be converted result in an
*InvalidValueError.

# .env Files

The .env file grammar is documented in the [envfile] package.
*/
package scribe
