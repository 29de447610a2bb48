package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/grindlemire/go-kbd/internal/model"
	"github.com/grindlemire/go-kbd/internal/theme"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// File is a loaded configuration. Keyboard is nil when the file does not
// define one.
type File struct {
	Metrics  Metrics         `json:"metrics" yaml:"metrics" toml:"metrics"`
	Colors   theme.Palette   `json:"colors" yaml:"colors" toml:"colors"`
	Keyboard *model.Keyboard `json:"keyboard,omitempty" yaml:"keyboard,omitempty" toml:"keyboard,omitempty"`
}

// Default returns the built-in metrics and palette with no keyboard.
func Default() *File {
	return &File{
		Metrics: DefaultMetrics(),
		Colors:  theme.DefaultPalette(),
	}
}

// KeyboardOr returns the file's keyboard, or fallback when it has none.
func (f *File) KeyboardOr(fallback *model.Keyboard) *model.Keyboard {
	if f.Keyboard != nil {
		return f.Keyboard
	}
	return fallback
}

// Load reads the file at path, overlaying its values on Default.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes data in the given format, overlaying its values on Default.
func Parse(data []byte, format Format) (*File, error) {
	raw, err := decodeRaw(data, format)
	if err != nil {
		return nil, err
	}
	if err := checkKeys(raw); err != nil {
		return nil, err
	}

	f := Default()
	if err := decode(data, format, f); err != nil {
		return nil, err
	}
	if err := f.Metrics.Validate(); err != nil {
		return nil, err
	}
	if f.Keyboard != nil {
		normalize(f.Keyboard)
		if err := f.Keyboard.Validate(); err != nil {
			return nil, fmt.Errorf("keyboard: %w", err)
		}
	}
	return f, nil
}

func decodeRaw(data []byte, format Format) (map[string]any, error) {
	raw := map[string]any{}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	case FormatTOML:
		_, err = toml.Decode(string(data), &raw)
	case FormatJSON:
		if len(bytes.TrimSpace(data)) > 0 {
			err = json.Unmarshal(data, &raw)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", format, err)
	}
	return raw, nil
}

// decode fills f from data. The decoders run in strict mode as well, so a
// key that slipped past checkKeys still fails.
func decode(data []byte, format Format, f *File) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), f)
		if err != nil {
			return fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return &UnknownKeyError{Key: undecoded[0].String()}
		}
	case FormatJSON:
		if len(bytes.TrimSpace(data)) == 0 {
			return nil
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(f); err != nil {
			return fmt.Errorf("decode json: %w", err)
		}
	}
	return nil
}

var (
	topKeys      = []string{"colors", "keyboard", "metrics"}
	keyboardKeys = []string{"name", "rows"}
	rowKeys      = []string{"keys", "role"}
	keyKeys      = []string{"label", "output", "type"}
)

func checkKeys(raw map[string]any) error {
	if err := closed("", raw, topKeys); err != nil {
		return err
	}
	if err := closed("metrics", section(raw, "metrics"), MetricNames()); err != nil {
		return err
	}
	if err := closed("colors", section(raw, "colors"), theme.Names()); err != nil {
		return err
	}

	kb := section(raw, "keyboard")
	if err := closed("keyboard", kb, keyboardKeys); err != nil {
		return err
	}
	for i, row := range list(kb["rows"]) {
		where := fmt.Sprintf("keyboard.rows[%d]", i)
		if err := closed(where, row, rowKeys); err != nil {
			return err
		}
		for j, key := range list(row["keys"]) {
			if err := closed(fmt.Sprintf("%s.keys[%d]", where, j), key, keyKeys); err != nil {
				return err
			}
		}
	}
	return nil
}

// closed reports the first key of m, in sorted order, that is not allowed.
func closed(where string, m map[string]any, allowed []string) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !contains(allowed, k) {
			return &UnknownKeyError{Section: where, Key: k}
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func section(raw map[string]any, name string) map[string]any {
	m, _ := raw[name].(map[string]any)
	return m
}

// list converts a decoded array of tables. TOML decodes arrays of tables
// as []map[string]any, YAML and JSON as []any.
func list(v any) []map[string]any {
	switch items := v.(type) {
	case []map[string]any:
		return items
	case []any:
		out := make([]map[string]any, 0, len(items))
		for _, item := range items {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}

// normalize gives character keys without an explicit output their
// lower-cased label as output.
func normalize(kb *model.Keyboard) {
	for i := range kb.Rows {
		for j, k := range kb.Rows[i].Keys {
			if k.Type == model.Character && !k.HasOutput() {
				kb.Rows[i].Keys[j] = model.CharKey(k.Label)
			}
		}
	}
}
