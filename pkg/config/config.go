package config

import (
	"github.com/arthur-debert/edir/pkg/backend"
	"github.com/arthur-debert/edir/pkg/entries"
	"github.com/arthur-debert/edir/pkg/errors"
)

// Config is the effective configuration of one run
type Config struct {
	Interactive   bool   `koanf:"interactive" toml:"interactive"`
	All           bool   `koanf:"all" toml:"all"`
	Recurse       bool   `koanf:"recurse" toml:"recurse"`
	Quiet         bool   `koanf:"quiet" toml:"quiet"`
	Git           string `koanf:"git" toml:"git"`
	Trash         bool   `koanf:"trash" toml:"trash"`
	TrashProgram  string `koanf:"trash_program" toml:"trash_program"`
	NoColor       bool   `koanf:"no_color" toml:"no_color"`
	NoInvertColor bool   `koanf:"no_invert_color" toml:"no_invert_color"`
	DirNames      bool   `koanf:"dirnames" toml:"dirnames"`
	Files         bool   `koanf:"files" toml:"files"`
	Dirs          bool   `koanf:"dirs" toml:"dirs"`
	NoLinks       bool   `koanf:"no_links" toml:"no_links"`
	Sort          string `koanf:"sort" toml:"sort"`
	SortReverse   bool   `koanf:"sort_reverse" toml:"sort_reverse"`
	GroupDirs     string `koanf:"group_dirs" toml:"group_dirs"`
	Suffix        string `koanf:"suffix" toml:"suffix"`
	Editor        string `koanf:"editor" toml:"editor"`
	DryRun        bool   `koanf:"dry_run" toml:"dry_run"`
}

// GitMode returns the git setting as a typed mode
func (c *Config) GitMode() backend.GitMode {
	return backend.GitMode(c.Git)
}

// SortKey returns the sort setting as a typed key
func (c *Config) SortKey() entries.SortKey {
	return entries.SortKey(c.Sort)
}

// Grouping returns the group_dirs setting as a typed value
func (c *Config) Grouping() entries.Grouping {
	return entries.Grouping(c.GroupDirs)
}

// Validate rejects contradictory or unknown settings
func (c *Config) Validate() error {
	if c.Files && c.Dirs {
		return errors.New(errors.ErrConfigInvalid, "files and dirs cannot both be set")
	}

	switch c.GitMode() {
	case backend.GitAuto, backend.GitAlways, backend.GitNever:
	default:
		return errors.Newf(errors.ErrConfigInvalid, "git must be auto, always or never, not %q", c.Git)
	}

	switch c.SortKey() {
	case entries.SortNone, entries.SortName, entries.SortTime, entries.SortSize:
	default:
		return errors.Newf(errors.ErrConfigInvalid, "sort must be none, name, time or size, not %q", c.Sort)
	}

	switch c.Grouping() {
	case entries.GroupNone, entries.GroupFirst, entries.GroupLast:
	default:
		return errors.Newf(errors.ErrConfigInvalid, "group_dirs must be none, first or last, not %q", c.GroupDirs)
	}

	if c.Trash && c.TrashProgram == "" {
		return errors.New(errors.ErrConfigInvalid, "trash_program is empty")
	}
	return nil
}
