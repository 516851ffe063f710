package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type LoadOptions struct {
	// ConfigFile is skipped when empty.
	ConfigFile string
	EnvPrefix  string
	EnvKeys    []string
}

// Load merges the config file, the environment and explicitly set flags into
// k. Later layers win; flag defaults only fill keys nothing else has set.
func Load(k *koanf.Koanf, fs *pflag.FlagSet, opts LoadOptions, logger zerolog.Logger) error {
	if opts.ConfigFile != "" {
		err := loadLayer(k, logger, "file", newBOMFile(opts.ConfigFile), yaml.Parser())
		if err != nil {
			return fmt.Errorf("cannot load config file %q: %w", opts.ConfigFile, err)
		}
	}

	err := loadLayer(k, logger, "env", env.Provider(opts.EnvPrefix, ".", envKeyMapper(opts)), nil)
	if err != nil {
		return fmt.Errorf("cannot load environment: %w", err)
	}

	if fs != nil {
		err = loadLayer(k, logger, "flags", posflag.Provider(fs, ".", k), nil)
		if err != nil {
			return fmt.Errorf("cannot load flags: %w", err)
		}
	}
	return nil
}

func loadLayer(k *koanf.Koanf, logger zerolog.Logger, name string, p koanf.Provider, pa koanf.Parser) error {
	before, existed := k.String(KeyColor), k.Exists(KeyColor)
	if err := k.Load(p, pa); err != nil {
		return err
	}
	after := k.String(KeyColor)
	logger.Debug().
		Str("layer", name).
		Bool("color_set", k.Exists(KeyColor) && (!existed || before != after)).
		Str("color", after).
		Msg("configuration layer loaded")
	return nil
}

// envKeyMapper turns PREFIX_SOME_KEY into some-key and drops variables that
// are not listed in opts.EnvKeys.
func envKeyMapper(opts LoadOptions) func(string) string {
	return func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, opts.EnvPrefix))
		key = strings.ReplaceAll(key, "_", "-")
		if !lo.Contains(opts.EnvKeys, key) {
			return ""
		}
		return key
	}
}

type bomFile struct {
	f *file.File
}

func newBOMFile(path string) *bomFile {
	return &bomFile{f: file.Provider(path)}
}

func (b *bomFile) ReadBytes() ([]byte, error) {
	raw, err := b.f.ReadBytes()
	if err != nil {
		return nil, err
	}
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return nil, err
	}
	return decoded, nil
}

func (b *bomFile) Read() (map[string]interface{}, error) {
	return nil, errors.New("bom file provider does not support this method")
}
