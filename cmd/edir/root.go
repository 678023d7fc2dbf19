package main

import (
	"io"
	"os"

	"github.com/arthur-debert/edir/pkg/session"
	"github.com/spf13/cobra"
)

// App holds the streams and collaborators of one invocation. Zero fields
// fall back to the process streams and the real editor.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// StdinIsTerminal decides whether names are read from stdin
	StdinIsTerminal bool
	// Answers supplies prompt answers; defaults to the terminal
	Answers io.Reader
	// Editor replaces the configured editor command
	Editor session.Editor

	exitCode int
}

// options are the flags that do not map to config keys
type options struct {
	verbosity  int
	configFile string
	version    bool
	completion string
	genMan     string
	genConfig  bool
	helpFormat bool
	helpTopic  string
}

// NewRootCmd creates the edir command bound to app
func NewRootCmd(app *App) *cobra.Command {
	initTemplateFormatting()
	app.defaults()

	var opts options
	cfgFlags := newSettings()

	rootCmd := &cobra.Command{
		Use:   "edir [flags] [name ...]",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := app.run(cmd, args, opts, cfgFlags.Changed())
			app.exitCode = code
			return err
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetOut(app.Stdout)
	rootCmd.SetErr(app.Stderr)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.Flags()
	flags.SortFlags = false

	cfgFlags.toggle(flags, "interactive", "interactive", "i", MsgFlagInteractive, "I", MsgFlagNoInteractive)
	cfgFlags.toggle(flags, "all", "all", "a", MsgFlagAll, "A", MsgFlagNoAll)
	cfgFlags.toggle(flags, "recurse", "recurse", "r", MsgFlagRecurse, "R", MsgFlagNoRecurse)
	cfgFlags.toggle(flags, "quiet", "quiet", "q", MsgFlagQuiet, "Q", MsgFlagNoQuiet)
	cfgFlags.preset(flags, "git", "always", "git", "g", MsgFlagGit)
	cfgFlags.preset(flags, "git", "never", "no-git", "G", MsgFlagNoGit)
	cfgFlags.toggle(flags, "trash", "trash", "t", MsgFlagTrash, "T", MsgFlagNoTrash)
	cfgFlags.str(flags, "trash_program", "trash-program", MsgFlagTrashProgram)
	cfgFlags.preset(flags, "no_color", true, "no-color", "c", MsgFlagNoColor)
	cfgFlags.preset(flags, "no_invert_color", true, "no-invert-color", "C", MsgFlagNoInvertColor)
	cfgFlags.preset(flags, "dirnames", true, "dirnames", "d", MsgFlagDirNames)
	cfgFlags.preset(flags, "files", true, "files", "F", MsgFlagFiles)
	cfgFlags.preset(flags, "dirs", true, "dirs", "D", MsgFlagDirs)
	cfgFlags.preset(flags, "no_links", true, "nolinks", "L", MsgFlagNoLinks)
	cfgFlags.preset(flags, "sort", "name", "sort-name", "N", MsgFlagSortName)
	cfgFlags.preset(flags, "sort", "time", "sort-time", "M", MsgFlagSortTime)
	cfgFlags.preset(flags, "sort", "size", "sort-size", "S", MsgFlagSortSize)
	cfgFlags.preset(flags, "sort_reverse", true, "sort-reverse", "E", MsgFlagSortReverse)
	cfgFlags.preset(flags, "group_dirs", "first", "group-dirs-first", "X", MsgFlagGroupDirsFirst)
	cfgFlags.preset(flags, "group_dirs", "last", "group-dirs-last", "Y", MsgFlagGroupDirsLast)
	cfgFlags.preset(flags, "group_dirs", "none", "no-group-dirs", "Z", MsgFlagNoGroupDirs)
	cfgFlags.str(flags, "suffix", "suffix", MsgFlagSuffix)
	cfgFlags.preset(flags, "dry_run", true, "dry-run", "n", MsgFlagDryRun)

	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	flags.BoolVarP(&opts.version, "version", "V", false, MsgFlagVersion)
	flags.StringVar(&opts.completion, "completion", "", MsgFlagCompletion)
	flags.StringVar(&opts.genMan, "gen-man", "", MsgFlagGenMan)
	flags.BoolVar(&opts.genConfig, "gen-config", false, MsgFlagGenConfig)
	flags.BoolVar(&opts.helpFormat, "help-format", false, MsgFlagHelpFormat)
	flags.StringVar(&opts.helpTopic, "help-topic", "", MsgFlagHelpTopic)

	_ = rootCmd.RegisterFlagCompletionFunc("completion", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"bash", "zsh", "fish", "powershell"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.MarkFlagDirname("gen-man")
	_ = rootCmd.MarkFlagFilename("config", "toml")

	return rootCmd
}

// ExitCode is the process exit status after Execute
func (a *App) ExitCode() int {
	return a.exitCode
}

func (a *App) defaults() {
	if a.Stdin == nil {
		a.Stdin = os.Stdin
	}
	if a.Stdout == nil {
		a.Stdout = os.Stdout
	}
	if a.Stderr == nil {
		a.Stderr = os.Stderr
	}
}
