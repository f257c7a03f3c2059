package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSlots = 4
	MaxSlots     = 1 << 16
)

var (
	ErrFormat = errors.New("unsupported scenario format")
	ErrSlots  = errors.New("invalid slot count")
	ErrStep   = errors.New("invalid step")
)

type Config struct {
	Slots int    `toml:"slots" yaml:"slots"`
	Steps []Step `toml:"steps" yaml:"steps"`
}

// Step holds exactly one action.
type Step struct {
	Register string `toml:"register" yaml:"register"`
	Kind     string `toml:"kind" yaml:"kind"`
	Post     string `toml:"post" yaml:"post"`
	Release  string `toml:"release" yaml:"release"`
	Forget   string `toml:"forget" yaml:"forget"`
}

const (
	KindEcho    = "echo"
	KindCollect = "collect"
)

// Load reads a scenario file, picking the decoder from its extension.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load scenario: %w", err)
	}
	cfg, err := Parse(b, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return Config{}, fmt.Errorf("load scenario %s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte, format string) (Config, error) {
	var cfg Config
	switch strings.ToLower(format) {
	case "toml":
		meta, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("parse toml: %w", err)
		}
		if !meta.IsDefined("slots") {
			cfg.Slots = DefaultSlots
		}
	case "yaml", "yml":
		cfg.Slots = DefaultSlots
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrFormat, format)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Slots < 0 || c.Slots > MaxSlots {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrSlots, c.Slots, MaxSlots)
	}
	for i, st := range c.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (s Step) validate() error {
	var n int
	for _, v := range []string{s.Register, s.Post, s.Release, s.Forget} {
		if v != "" {
			n++
		}
	}
	if n != 1 {
		return fmt.Errorf("%w: want exactly one of register, post, release, forget", ErrStep)
	}
	if s.Register == "" && s.Kind != "" {
		return fmt.Errorf("%w: kind is only valid with register", ErrStep)
	}
	switch s.Kind {
	case "", KindEcho, KindCollect:
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrStep, s.Kind)
	}
	return nil
}
