// Package config handles configuration management for edir.
//
// Configuration is layered with koanf, lowest precedence first:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file, $XDG_CONFIG_HOME/edir/config.toml
//  3. EDIR_* environment variables, e.g. EDIR_TRASH_PROGRAM
//  4. command-line flags that were explicitly set
//
// The legacy flags file, edir-flags.conf, holds command-line arguments and
// is read separately by ReadFlagsFile so that the command line can negate
// anything it sets.
package config
