package config

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"github.com/arthur-debert/edir/pkg/errors"
	"github.com/google/shlex"
	"github.com/pelletier/go-toml/v2"
)

// ToTOML renders cfg as a config.toml document
func ToTOML(cfg *Config) (string, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(cfg); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.String(), nil
}

// GenerateConfigContent renders cfg with every setting commented out, as a
// starting point for a user config file.
func GenerateConfigContent(cfg *Config) (string, error) {
	content, err := ToTOML(cfg)
	if err != nil {
		return "", err
	}
	return "# edir configuration\n" + commentOutConfigValues(content), nil
}

// commentOutConfigValues comments out every non-blank, non-comment line
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}

// ReadFlagsFile returns the arguments stored in a flags file. Everything
// after a # on a line is a comment. A missing file yields no arguments.
func ReadFlagsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", path)
	}

	var parts []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}

	args, err := shlex.Split(strings.Join(parts, " "))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "failed to parse %s", path)
	}
	return args, nil
}
