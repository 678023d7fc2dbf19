package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/edir/internal/version"
	"github.com/arthur-debert/edir/pkg/apply"
	"github.com/arthur-debert/edir/pkg/backend"
	"github.com/arthur-debert/edir/pkg/config"
	"github.com/arthur-debert/edir/pkg/editor"
	"github.com/arthur-debert/edir/pkg/entries"
	"github.com/arthur-debert/edir/pkg/errors"
	"github.com/arthur-debert/edir/pkg/filesystem"
	"github.com/arthur-debert/edir/pkg/logging"
	"github.com/arthur-debert/edir/pkg/paths"
	"github.com/arthur-debert/edir/pkg/session"
	"github.com/arthur-debert/edir/pkg/topics"
	"github.com/arthur-debert/edir/pkg/ui"
	"github.com/arthur-debert/edir/pkg/ui/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// Execute runs edir with args and returns the exit status. Arguments from
// the flags file come first so the command line can override them.
func Execute(app *App, args []string) int {
	app.defaults()

	extra, err := config.ReadFlagsFile(paths.FlagsFilePath())
	if err != nil {
		fmt.Fprintf(app.Stderr, MsgFatalFormat, errors.UserMessage(err))
		return apply.ExitFatal
	}

	rootCmd := NewRootCmd(app)
	// a nil slice would make cobra fall back to os.Args
	all := append(append([]string{}, extra...), args...)
	rootCmd.SetArgs(all)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(app.Stderr, MsgFatalFormat, errors.UserMessage(err))
		return apply.ExitFatal
	}
	return app.ExitCode()
}

func (a *App) run(cmd *cobra.Command, args []string, opts options, flags map[string]interface{}) (int, error) {
	logging.SetupLogger(opts.verbosity)
	log.Debug().Strs("args", args).Interface("flags", flags).Msg("Command started")

	switch {
	case opts.version:
		fmt.Fprintf(a.Stdout, MsgVersionFormat, version.Version, version.Commit, version.Date)
		return apply.ExitOK, nil
	case opts.completion != "":
		return apply.ExitOK, genCompletion(cmd, opts.completion, a.Stdout)
	case opts.genMan != "":
		return apply.ExitOK, a.genMan(cmd, opts.genMan)
	case opts.helpFormat:
		return apply.ExitOK, a.showTopic("format")
	case opts.helpTopic != "":
		return apply.ExitOK, a.showTopic(opts.helpTopic)
	}

	cfg, err := config.Load(config.LoadOptions{ConfigFile: opts.configFile, Flags: flags})
	if err != nil {
		return apply.ExitFatal, err
	}
	if opts.genConfig {
		content, err := config.GenerateConfigContent(cfg)
		if err != nil {
			return apply.ExitFatal, err
		}
		fmt.Fprint(a.Stdout, content)
		return apply.ExitOK, nil
	}

	format := ui.FormatAuto
	if cfg.NoColor {
		format = ui.FormatText
	}
	printer := output.NewPrinter(output.Options{
		Stdout:        a.Stdout,
		Stderr:        a.Stderr,
		Format:        format,
		Quiet:         cfg.Quiet,
		NoInvertColor: cfg.NoInvertColor,
	})

	fsys := filesystem.NewOS()
	runner := backend.NewExecRunner()

	tracked, err := trackedFiles(cfg.GitMode(), runner)
	if err != nil {
		return apply.ExitFatal, err
	}

	list, err := entries.Collect(entries.Options{
		FS:              fsys,
		Names:           args,
		Stdin:           a.Stdin,
		StdinIsTerminal: a.StdinIsTerminal,
		DirNames:        cfg.DirNames,
		All:             cfg.All,
		Files:           cfg.Files,
		Dirs:            cfg.Dirs,
		NoLinks:         cfg.NoLinks,
		Sort:            cfg.SortKey(),
		Reverse:         cfg.SortReverse,
		GroupDirs:       cfg.Grouping(),
		Tracked:         tracked,
	})
	if err != nil {
		return apply.ExitFatal, err
	}
	if len(list) == 0 {
		printer.Message(entries.EmptyMessage(cfg.Files, cfg.Dirs))
		return apply.ExitOK, nil
	}

	ed := a.Editor
	if ed == nil {
		ed = editor.New(editor.Resolve(cfg.Editor))
	}
	answers, closeAnswers := a.answers()
	defer closeAnswers()

	sess := session.New(session.Options{
		FS:          fsys,
		Editor:      ed,
		UI:          printer,
		Answers:     answers,
		Suffix:      cfg.Suffix,
		Interactive: cfg.Interactive,
		DryRun:      cfg.DryRun,
	})
	pending, err := sess.Run(list)
	if err != nil {
		return apply.ExitFatal, err
	}
	if len(pending) == 0 {
		return apply.ExitOK, nil
	}

	plain := backend.NewPlain(backend.PlainOptions{
		FS:           fsys,
		Trash:        cfg.Trash,
		TrashProgram: cfg.TrashProgram,
		Runner:       runner,
	})
	selector := backend.Selector{Plain: plain}
	if len(tracked) > 0 {
		selector.VCS = backend.NewGit(runner, fsys, plain)
	}

	engine := apply.New(apply.Options{
		FS:       fsys,
		Selector: selector,
		Recurse:  cfg.Recurse,
		Reporter: printer,
	})
	result := engine.Run(pending)
	log.Info().Int("succeeded", result.Succeeded).Int("failed", result.Failed).Msg("Run finished")
	return result.ExitCode(), nil
}

// trackedFiles asks git for the tracked paths. Outside a repository auto
// mode carries on without git while always mode fails.
func trackedFiles(mode backend.GitMode, runner backend.Runner) (map[string]bool, error) {
	if mode == backend.GitNever {
		return nil, nil
	}
	tracked, err := backend.TrackedFiles(runner)
	if err != nil {
		if mode == backend.GitAlways {
			return nil, err
		}
		log.Debug().Err(err).Msg("Not using git")
		return nil, nil
	}
	if mode == backend.GitAlways && len(tracked) == 0 {
		return nil, errors.New(errors.ErrNoRepository, "no files are tracked by git here")
	}
	return tracked, nil
}

// answers returns the prompt input. When stdin carried the names, prompts
// read from the terminal instead.
func (a *App) answers() (io.Reader, func()) {
	if a.Answers != nil {
		return a.Answers, func() {}
	}
	if a.StdinIsTerminal {
		return a.Stdin, func() {}
	}
	tty, err := os.Open(editor.TTYPath)
	if err != nil {
		return a.Stdin, func() {}
	}
	return tty, func() { _ = tty.Close() }
}

func genCompletion(cmd *cobra.Command, shell string, w io.Writer) error {
	root := cmd.Root()
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.Newf(errors.ErrInvalidInput, MsgUnknownShell, shell)
	}
}

func (a *App) genMan(cmd *cobra.Command, dir string) error {
	header := &doc.GenManHeader{
		Title:   "EDIR",
		Section: "1",
		Source:  "edir " + version.Version,
		Manual:  "edir manual",
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "cannot create %s", dir)
	}
	if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to generate man page")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	fmt.Fprintf(a.Stdout, MsgManPagesWritten+"\n", abs)
	return nil
}

func (a *App) showTopic(name string) error {
	var renderer topics.Renderer = &topics.PlainRenderer{}
	if f, ok := a.Stdout.(*os.File); ok && ui.DetectFormat(f) == ui.FormatTerminal {
		renderer = topics.NewGlamourRenderer()
	}
	manager, err := topics.Default(renderer)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to load help topics")
	}
	text, ok := manager.Render(name)
	if !ok {
		return errors.Newf(errors.ErrInvalidInput, MsgUnknownTopic, name)
	}
	fmt.Fprint(a.Stdout, text)
	return nil
}
