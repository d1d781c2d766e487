package definition

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Definition file formats.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Load reads a definition file, whose format is given by its extension:
// .yaml, .yml or .toml. The file is validated, but its commands are not built.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions: %w", err)
	}

	file, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return file, nil
}

// FormatOf returns the definition format of a file, given its extension.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported definition file '%s': use .yaml, .yml or .toml", path)
	}
}

// Parse decodes and validates definitions in the given format.
// Unknown fields are rejected in both formats.
func Parse(data []byte, format string) (*File, error) {
	file := &File{}

	switch format {
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)

		if err := decoder.Decode(file); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	case FormatTOML:
		meta, err := toml.Decode(string(data), file)
		if err != nil {
			return nil, fmt.Errorf("invalid TOML: %w", err)
		}

		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, key := range undecoded {
				keys = append(keys, key.String())
			}

			slices.Sort(keys)

			return nil, fmt.Errorf("invalid TOML: unknown keys %s", strings.Join(keys, ", "))
		}
	default:
		return nil, fmt.Errorf("unsupported definition format '%s'", format)
	}

	if err := file.Validate(); err != nil {
		return nil, err
	}

	return file, nil
}

// Marshal encodes definitions in the given format.
func (f *File) Marshal(format string) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(f)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(f); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported definition format '%s'", format)
	}
}
