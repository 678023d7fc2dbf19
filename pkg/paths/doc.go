// Package paths provides centralized path handling for edir.
//
// It resolves the XDG locations edir reads and writes outside of the
// directories being edited:
//
//   - $XDG_CONFIG_HOME/edir/config.toml: TOML configuration
//   - $XDG_CONFIG_HOME/edir-flags.conf: default command-line flags
//   - $XDG_STATE_HOME/edir/edir.log: diagnostic log
//
// # Environment Variables
//
//   - EDIR_CONFIG_DIR: Override the config directory
//   - EDIR_STATE_DIR: Override the state directory
//   - EDIR_EDITOR, EDITOR: Editor command used for the listing
package paths
