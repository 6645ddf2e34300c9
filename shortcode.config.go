package shortcode

import (
	"bytes"
	"errors"
	"io"
	"sort"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config is the file form of an engine configuration.
//
//	recursive: true
//	max_depth: 10
//	unclosed: standalone
//	escapes: true
//	shortcodes:
//	  audio: '<audio {{.Attrs}}></audio>'
//
// Unset fields keep the engine defaults.
type Config struct {
	Recursive  bool              `yaml:"recursive"`
	MaxDepth   *int              `yaml:"max_depth,omitempty"`
	Unclosed   string            `yaml:"unclosed,omitempty"`
	Escapes    *bool             `yaml:"escapes,omitempty"`
	Shortcodes map[string]string `yaml:"shortcodes,omitempty"`
}

// LoadConfig reads a YAML configuration from r and validates it.
// Unknown fields are rejected. Empty input yields an empty Config.
func LoadConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, NewConfigError(ErrMsgConfigRead, err)
	}

	cfg := &Config{}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, NewConfigError(ErrMsgConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.MaxDepth != nil && *c.MaxDepth < 0 {
		return NewInvalidConfigValueError(ConfigFieldMaxDepth, strconv.Itoa(*c.MaxDepth), ErrMsgNegativeDepth)
	}
	if _, err := ParseUnclosedPolicy(c.Unclosed); err != nil {
		return err
	}
	for name := range c.Shortcodes {
		if name == "" {
			return NewInvalidConfigValueError(ConfigFieldShortcodes, name, ErrMsgEmptyTagName)
		}
	}
	return nil
}

// Options converts the configuration to engine options.
func (c *Config) Options() ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	policy, _ := ParseUnclosedPolicy(c.Unclosed)

	opts := []Option{
		WithRecursive(c.Recursive),
		WithUnclosedPolicy(policy),
	}
	if c.MaxDepth != nil {
		opts = append(opts, WithMaxDepth(*c.MaxDepth))
	}
	if c.Escapes != nil {
		opts = append(opts, WithEscapes(*c.Escapes))
	}
	return opts, nil
}

// Apply registers a TemplateHandler on s for every configured shortcode.
// Nothing is registered if any template fails to parse.
func (c *Config) Apply(s *Shortcode) error {
	names := make([]string, 0, len(c.Shortcodes))
	for name := range c.Shortcodes {
		names = append(names, name)
	}
	sort.Strings(names)

	handlers := make([]*TemplateHandler, 0, len(names))
	for _, name := range names {
		h, err := NewTemplateHandler(name, c.Shortcodes[name], s.logger)
		if err != nil {
			return err
		}
		handlers = append(handlers, h)
	}

	for _, h := range handlers {
		if err := s.Register(h.Name(), h); err != nil {
			return err
		}
	}

	s.logger.Debug(LogMsgConfigLoaded, zap.Int(LogFieldHandlers, len(handlers)))
	return nil
}

// NewFromConfig creates an engine from cfg. opts are applied after the
// configuration's own options, so they take precedence.
func NewFromConfig(cfg *Config, opts ...Option) (*Shortcode, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	cfgOpts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	s := New(append(cfgOpts, opts...)...)
	if err := cfg.Apply(s); err != nil {
		return nil, err
	}
	return s, nil
}
