// Package config loads, normalizes, and validates semmeta configuration.
//
// Configuration is TOML. Load looks for an explicit path first, then
// ./semmeta.toml, then ~/.config/semmeta/config.toml. A missing file is
// not an error: the defaults apply. CreateSample writes a commented
// starting point.
package config
