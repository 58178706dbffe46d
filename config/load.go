package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Format names an encoding of the configuration shape
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts yaml, yml and json, case-insensitively
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format %q", s)
	}
}

// FormatFromPath picks a format from a file extension, defaulting to YAML
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Parse decodes a user config; unknown keys are ignored
func Parse(data []byte, format Format) (UserConfig, error) {
	var u UserConfig
	if len(bytes.TrimSpace(data)) == 0 {
		return u, nil
	}

	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &u)
	default:
		err = yaml.Unmarshal(data, &u)
	}
	if err != nil {
		return UserConfig{}, fmt.Errorf("error decoding %s config: %w", format, err)
	}
	return u, nil
}

// Encode renders any config value in the given format
func Encode(v any, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("error encoding json: %w", err)
		}
		return append(out, '\n'), nil
	default:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("error encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("error encoding yaml: %w", err)
		}
		return buf.Bytes(), nil
	}
}

// UserConfigFromViper extracts the snowfall section of a loaded config file
// Keys are matched case-insensitively, so camelCase files survive viper's lowercasing
func UserConfigFromViper(v *viper.Viper) (UserConfig, error) {
	var u UserConfig
	if v.IsSet("attachTo") {
		u.AttachTo = Ptr(v.GetString("attachTo"))
	}
	if v.IsSet("layers") {
		if err := v.UnmarshalKey("layers", &u.Layers); err != nil {
			return UserConfig{}, fmt.Errorf("error unmarshaling layers: %w", err)
		}
	}
	return u, nil
}
