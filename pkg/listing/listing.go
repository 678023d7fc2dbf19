package listing

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/arthur-debert/edir/pkg/errors"
	"github.com/arthur-debert/edir/pkg/logging"
	"github.com/arthur-debert/edir/pkg/types"
)

// CommentMarker starts a line that is ignored on read
const CommentMarker = '#'

// Separator sits between the number and the path on written lines
const Separator = "  "

const maxLineLength = 1024 * 1024

// Write serializes entries as a numbered listing
func Write(w io.Writer, entries []*types.Entry) error {
	width := len(strconv.Itoa(len(entries)))
	bw := bufio.NewWriter(w)
	for i, e := range entries {
		if _, err := fmt.Fprintf(bw, "%0*d%s%s\n", width, i+1, Separator, e.DisplayLabel()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Serialize returns the listing for entries as a string
func Serialize(entries []*types.Entry) string {
	var sb strings.Builder
	_ = Write(&sb, entries)
	return sb.String()
}

// Parse reads an edited listing and records each entry's destination and
// copy targets. All previous edits are cleared first since the edited text
// is the only source of truth for this pass. Any malformed line aborts the
// whole parse with a FORMAT or RANGE error.
func Parse(r io.Reader, entries []*types.Entry) error {
	logger := logging.GetLogger("listing")

	for _, e := range entries {
		e.ResetEdits()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	count := 0
	for scanner.Scan() {
		count++
		rawLine := strings.TrimRight(scanner.Text(), "\r\n")
		line := strings.TrimLeftFunc(rawLine, unicode.IsSpace)
		if line == "" || line[0] == CommentMarker {
			continue
		}

		num, pathStr, err := splitLine(line, rawLine, count)
		if err != nil {
			return err
		}

		if num <= 0 || num > len(entries) {
			return errors.Newf(errors.ErrRange, "line %d number %d out of range:\n%s", count, num, rawLine).
				WithDetail("line", count).
				WithDetail("number", num)
		}

		entry := entries[num-1]
		path := normalizePath(pathStr)

		if entry.Destination == nil {
			entry.SetDestination(path)
			continue
		}
		if entry.AddCopyTarget(path) {
			logger.Trace().Int("number", num).Str("target", path).Msg("Copy target recorded")
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, errors.ErrFormat, "failed to read listing")
	}
	return nil
}

// splitLine separates the leading number from the path. The path keeps any
// trailing whitespace since it may be part of a file name.
func splitLine(line, rawLine string, count int) (int, string, error) {
	idx := strings.IndexFunc(line, unicode.IsSpace)
	if idx < 0 {
		return 0, "", invalidLine(count, rawLine)
	}

	numStr := line[:idx]
	pathStr := strings.TrimLeftFunc(line[idx:], unicode.IsSpace)
	if pathStr == "" {
		return 0, "", invalidLine(count, rawLine)
	}

	num, err := strconv.Atoi(numStr)
	if err != nil {
		return 0, "", errors.Newf(errors.ErrFormat, "line %d number %s invalid:\n%s", count, numStr, rawLine).
			WithDetail("line", count)
	}
	return num, pathStr, nil
}

func invalidLine(count int, rawLine string) error {
	return errors.Newf(errors.ErrFormat, "line %d invalid:\n%s", count, rawLine).
		WithDetail("line", count)
}

// normalizePath drops "." components, repeated separators and trailing
// separators typed after directory names. ".." is kept as written since a
// symlinked parent makes it differ from the lexical parent. A lone
// separator is the root and is kept.
func normalizePath(p string) string {
	rooted := strings.HasPrefix(p, "/") || strings.HasPrefix(p, string(filepath.Separator))

	var kept []string
	for _, part := range strings.FieldsFunc(p, isSeparator) {
		if part != "." {
			kept = append(kept, part)
		}
	}

	out := strings.Join(kept, string(filepath.Separator))
	if rooted {
		out = string(filepath.Separator) + out
	}
	if out == "" {
		out = "."
	}
	return out
}

func isSeparator(r rune) bool {
	return r == '/' || r == filepath.Separator
}
