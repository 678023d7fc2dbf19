package main

import (
	_ "embed"
	"strings"
)

const (
	MsgRootShort = "Rename, remove or copy files and directories using your editor"

	MsgVersionFormat   = "edir version %s\n  commit: %s\n  built:  %s\n"
	MsgFatalFormat     = "ERROR: %s\n"
	MsgUnknownTopic    = "no help topic named %q"
	MsgUnknownShell    = "unsupported shell %q, use bash, zsh, fish or powershell"
	MsgManPagesWritten = "Wrote man pages to %s"

	// Flag descriptions
	MsgFlagInteractive    = "prompt with the list of pending changes before applying them"
	MsgFlagNoInteractive  = "do not prompt, negates -i"
	MsgFlagAll            = "include hidden files and directories"
	MsgFlagNoAll          = "exclude hidden files and directories, negates -a"
	MsgFlagRecurse        = "remove directories that still have children"
	MsgFlagNoRecurse      = "never remove non-empty directories, negates -r"
	MsgFlagQuiet          = "print only errors"
	MsgFlagNoQuiet        = "print every applied change, negates -q"
	MsgFlagGit            = "require git and use it for tracked paths"
	MsgFlagNoGit          = "never use git"
	MsgFlagTrash          = "move removed paths to the trash"
	MsgFlagNoTrash        = "remove paths permanently, negates -t"
	MsgFlagTrashProgram   = "program used to trash a path"
	MsgFlagNoColor        = "do not colour output"
	MsgFlagNoInvertColor  = "do not invert the colour of error lines"
	MsgFlagDirNames       = "list given directories themselves, not their contents"
	MsgFlagFiles          = "list files only"
	MsgFlagDirs           = "list directories only"
	MsgFlagNoLinks        = "leave symbolic links out of the listing"
	MsgFlagSortName       = "sort by name"
	MsgFlagSortTime       = "sort by modification time"
	MsgFlagSortSize       = "sort by size"
	MsgFlagSortReverse    = "reverse the sort order"
	MsgFlagGroupDirsFirst = "list directories before files"
	MsgFlagGroupDirsLast  = "list directories after files"
	MsgFlagNoGroupDirs    = "do not group directories, negates -X and -Y"
	MsgFlagSuffix         = "suffix of the temporary listing file"
	MsgFlagDryRun         = "show the pending changes and exit without applying them"
	MsgFlagVerbose        = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig         = "config file (default is $XDG_CONFIG_HOME/edir/config.toml)"
	MsgFlagVersion        = "print the version and exit"
	MsgFlagCompletion     = "print a shell completion script and exit"
	MsgFlagGenMan         = "write man pages to a directory and exit"
	MsgFlagGenConfig      = "print the effective configuration as TOML and exit"
	MsgFlagHelpFormat     = "describe the listing format and exit"
	MsgFlagHelpTopic      = "show a help topic (format, git, config) and exit"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
