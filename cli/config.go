// Copyright 2026 The Authors (see AUTHORS file)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"

	"github.com/abcxyz/cmdtree/help"
	"github.com/abcxyz/cmdtree/renderer"
)

// DefaultEnvPrefix is the prefix of environment variables read by
// [LoadConfig].
const DefaultEnvPrefix = "CMDTREE_"

// Output formats for help pages.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Color modes for text output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Validatable is the interface to validate a config.
type Validatable interface {
	Validate() error
}

var _ Validatable = (*Config)(nil)

// Config controls how an [App] presents help.
type Config struct {
	// ApplicationName replaces the root command name in usage lines.
	ApplicationName string `yaml:"application_name" env:"APPLICATION_NAME,overwrite"`

	// Version enables the version option on the root command.
	Version string `yaml:"version" env:"VERSION,overwrite"`

	// TrimTrailingPeriods removes a single trailing period from descriptions.
	// Unset means true.
	TrimTrailingPeriods *bool `yaml:"trim_trailing_periods" env:"TRIM_TRAILING_PERIODS,overwrite"`

	HideOptionDefaultValues bool `yaml:"hide_option_default_values" env:"HIDE_OPTION_DEFAULT_VALUES,overwrite"`

	// Format is the help output format, "text" or "json".
	Format string `yaml:"format" env:"FORMAT,overwrite,default=text"`

	// Color is "auto", "always" or "never". Auto enables color when the output
	// is a terminal.
	Color string `yaml:"color" env:"COLOR,overwrite,default=auto"`

	// Width is the wrap width of text output.
	Width int `yaml:"width" env:"WIDTH,overwrite,default=80"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() *Config {
	return &Config{
		Format: FormatText,
		Color:  ColorAuto,
		Width:  80,
	}
}

// Validate implements [Validatable].
func (c *Config) Validate() error {
	var merr error
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		merr = errors.Join(merr, fmt.Errorf("format must be %q or %q, got %q", FormatText, FormatJSON, c.Format))
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		merr = errors.Join(merr, fmt.Errorf("color must be one of %q, got %q",
			[]string{ColorAuto, ColorAlways, ColorNever}, c.Color))
	}
	if c.Width < 0 {
		merr = errors.Join(merr, fmt.Errorf("width must be positive, got %d", c.Width))
	}
	return merr
}

// ComposerOptions returns the help options implied by the config.
func (c *Config) ComposerOptions() []help.Option {
	opts := []help.Option{
		help.WithVersion(c.Version),
		help.TrimTrailingPeriods(c.TrimTrailingPeriods == nil || *c.TrimTrailingPeriods),
	}
	if c.ApplicationName != "" {
		opts = append(opts, help.WithApplicationName(c.ApplicationName))
	}
	if c.HideOptionDefaultValues {
		opts = append(opts, help.HideOptionDefaultValues())
	}
	return opts
}

// Renderer returns a renderer for output written to w. In auto mode, color is
// enabled only when w is a terminal.
func (c *Config) Renderer(w io.Writer) *renderer.Renderer {
	var color bool
	switch c.Color {
	case ColorAlways:
		color = true
	case ColorAuto:
		if f, ok := w.(*os.File); ok {
			color = renderer.ColorEnabled(f)
		}
	}
	return renderer.New(
		renderer.WithColor(color),
		renderer.WithWidth(c.Width))
}

// Render writes the document to w in the configured format.
func (c *Config) Render(w io.Writer, doc *help.Document) error {
	r := c.Renderer(w)
	if c.Format == FormatJSON {
		return r.RenderJSON(w, doc) //nolint:wrapcheck // Want passthrough
	}
	return r.RenderText(w, doc) //nolint:wrapcheck // Want passthrough
}

type loadOptions struct {
	yamlBytes []byte
	envPrefix string
	lookuper  envconfig.Lookuper
}

// Option is a [LoadConfig] option.
type Option func(*loadOptions) *loadOptions

// WithYAML instructs the loader to load config from the given yaml bytes.
func WithYAML(b []byte) Option {
	return func(o *loadOptions) *loadOptions {
		o.yamlBytes = b
		return o
	}
}

// WithEnvPrefix overrides [DefaultEnvPrefix].
func WithEnvPrefix(prefix string) Option {
	return func(o *loadOptions) *loadOptions {
		o.envPrefix = prefix
		return o
	}
}

// WithLookuper instructs the loader to use the given lookuper to find config
// values.
func WithLookuper(lookuper envconfig.Lookuper) Option {
	return func(o *loadOptions) *loadOptions {
		o.lookuper = lookuper
		return o
	}
}

// LoadConfig loads the configuration. The loading order is:
//
//  1. Unmarshaled yaml bytes
//  2. Env vars, prefixed with [DefaultEnvPrefix] unless overridden
//  3. Defaults for anything still unset
//
// The result is validated before it is returned.
func LoadConfig(ctx context.Context, opts ...Option) (*Config, error) {
	o := &loadOptions{
		envPrefix: DefaultEnvPrefix,
		// Default to OS lookuper.
		lookuper: envconfig.OsLookuper(),
	}
	for _, opt := range opts {
		if opt != nil {
			o = opt(o)
		}
	}

	var cfg Config
	if o.yamlBytes != nil {
		if err := yaml.Unmarshal(o.yamlBytes, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml bytes: %w", err)
		}
	}

	lookuper := o.lookuper
	if o.envPrefix != "" {
		lookuper = envconfig.PrefixLookuper(o.envPrefix, lookuper)
	}
	if err := envconfig.ProcessWith(ctx, &cfg, lookuper); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config invalid: %w", err)
	}
	return &cfg, nil
}
