package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	overrides map[string]any
}

// WithConfigDir reads base.yaml and the profile file from dir instead of
// "configs".
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// WithOverrides applies dotted keys such as "storage.driver" after every
// other layer. notesctl uses it for its storage flags.
func WithOverrides(values map[string]any) Option {
	return func(o *loadOptions) {
		if o.overrides == nil {
			o.overrides = make(map[string]any, len(values))
		}
		for k, v := range values {
			o.overrides[k] = v
		}
	}
}

// Load builds the configuration for profile from, lowest precedence first:
// built-in defaults, {dir}/base.yaml, {dir}/{profile}.yaml, APP_ environment
// variables and WithOverrides. The result is validated.
//
// Environment variables are matched against known keys so underscores
// inside a key survive:
//
//	APP_STORAGE_MAX_OPEN_CONNS -> storage.max_open_conns
//	APP_REMINDER_SCHEDULE      -> reminder.schedule
//	APP_NOTES_DEFAULT_LOCALE   -> notes.default_locale
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	if err := setAll(k, defaults()); err != nil {
		return nil, fmt.Errorf("applying defaults: %w", err)
	}
	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}
	if err := k.Load(envProvider(k), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	if err := setAll(k, o.overrides); err != nil {
		return nil, fmt.Errorf("applying overrides: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", profile, err)
	}
	return &cfg, nil
}

func setAll(k *koanf.Koanf, values map[string]any) error {
	for key, value := range values {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// envProvider maps APP_ variables onto the dotted keys already loaded.
// Unknown variables fall back to splitting on every underscore. Keys whose
// loaded value is a list take comma-separated values.
func envProvider(k *koanf.Koanf) koanf.Provider {
	byEnvName := make(map[string]string)
	for _, key := range k.Keys() {
		byEnvName[strings.ReplaceAll(key, ".", "_")] = key
	}

	return env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			key, ok := byEnvName[name]
			if !ok {
				return strings.ReplaceAll(name, "_", "."), value
			}
			if isList(k.Get(key)) {
				return key, splitList(value)
			}
			return key, value
		},
	})
}

func isList(v any) bool {
	switch v.(type) {
	case []any, []string:
		return true
	}
	return false
}

// splitList turns "a, b,,c" into [a b c]. A blank value yields an empty list.
func splitList(value string) []string {
	out := []string{}
	for part := range strings.SplitSeq(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// validateProfile rejects names that would escape the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must be a plain name", profile)
	}
	return nil
}
