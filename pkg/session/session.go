package session

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/edir/pkg/apply"
	"github.com/arthur-debert/edir/pkg/errors"
	"github.com/arthur-debert/edir/pkg/filesystem"
	"github.com/arthur-debert/edir/pkg/listing"
	"github.com/arthur-debert/edir/pkg/logging"
	"github.com/arthur-debert/edir/pkg/paths"
	"github.com/arthur-debert/edir/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultSuffix is the listing file extension; it picks the editor's
// syntax highlighting.
const DefaultSuffix = ".sh"

// Editor edits a file in place and blocks until done
type Editor interface {
	Edit(path string) error
}

// UI is what the session prints
type UI interface {
	Preview(actions []types.Outcome)
	Prompt(text string)
	Message(format string, args ...interface{})
}

// Options configures a Session
type Options struct {
	FS     filesystem.FS
	Editor Editor
	UI     UI
	// Answers supplies prompt answers, usually stdin
	Answers io.Reader
	// Suffix is appended to the listing file name
	Suffix string
	// Interactive previews pending actions and asks before proceeding
	Interactive bool
	// DryRun previews pending actions and never proceeds
	DryRun bool
}

// Session is one edit loop over a fixed set of entries
type Session struct {
	opts    Options
	fs      filesystem.FS
	answers *bufio.Reader
	logger  zerolog.Logger
}

// New creates a session
func New(opts Options) *Session {
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	if opts.Suffix == "" {
		opts.Suffix = DefaultSuffix
	}
	if opts.Answers == nil {
		opts.Answers = os.Stdin
	}
	return &Session{
		opts:    opts,
		fs:      fsys,
		answers: bufio.NewReader(opts.Answers),
		logger:  logging.GetLogger("session"),
	}
}

// Run lets the user edit the listing and returns the entries with pending
// actions, ready for apply. It returns nil when there is nothing to do or
// the user quit.
func (s *Session) Run(entries []*types.Entry) ([]*types.Entry, error) {
	// the editor is an external process and needs a real file
	dir, err := os.MkdirTemp("", paths.AppName+"-")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot create listing directory")
	}
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, paths.ListingBaseName+s.opts.Suffix)
	prompt := BuildPrompt(Choices)
	restart := true

	for {
		if restart {
			restart = false
			if err := writeListing(file, entries); err != nil {
				return nil, err
			}
		}

		s.logger.Debug().Str("file", file).Msg("Editing listing")
		if err := s.opts.Editor.Edit(file); err != nil {
			return nil, err
		}
		if err := readListing(file, entries); err != nil {
			return nil, err
		}

		pending := types.Pending(entries)
		s.logger.Info().Int("pending", len(pending)).Msg("Listing parsed")
		if len(pending) == 0 {
			return nil, nil
		}
		apply.MarkRecursive(s.fs, pending)

		if s.opts.DryRun {
			s.opts.UI.Preview(apply.Plan(pending))
			return nil, nil
		}
		if !s.opts.Interactive {
			return pending, nil
		}

		s.opts.UI.Preview(apply.Plan(pending))
		switch s.ask(prompt) {
		case AnswerProceed:
			return pending, nil
		case AnswerRestart:
			restart = true
		case AnswerEdit:
		default:
			return nil, nil
		}
	}
}

// ask prompts until a valid answer; end of input quits
func (s *Session) ask(prompt string) Answer {
	for {
		s.opts.UI.Prompt(prompt)
		line, err := s.answers.ReadString('\n')
		if err != nil && line == "" {
			s.opts.UI.Message("")
			return AnswerQuit
		}
		answer := ParseAnswer(line)
		if answer != AnswerInvalid {
			return answer
		}
		s.opts.UI.Message(InvalidAnswer)
	}
}

func writeListing(file string, entries []*types.Entry) error {
	f, err := os.Create(file)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot write listing")
	}
	if err := listing.Write(f, entries); err != nil {
		f.Close()
		return errors.Wrap(err, errors.ErrInternal, "cannot write listing")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot write listing")
	}
	return nil
}

func readListing(file string, entries []*types.Entry) error {
	f, err := os.Open(file)
	if err != nil {
		return errors.Wrap(err, errors.ErrEditor, "edited listing is unreadable")
	}
	defer f.Close()
	return listing.Parse(f, entries)
}
