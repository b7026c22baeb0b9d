// Package config loads the server configuration file.
//
// Files ending in .yaml or .yml are read as YAML, anything else as HCL:
//
//	log_level = "info"
//	engine {
//	  kind    = "lua"
//	  script  = "${env.HOME}/snake/engine.lua"
//	  timeout = "2s"
//	  watch   = ["**/*.lua"]
//	}
//	cache {
//	  evict_on_close = true
//	}
package config

import (
	"bytes"
	"os"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

const (
	EngineLua  = "lua"
	EngineExec = "exec"
)

const DefaultTimeout = 5 * time.Second

type Config struct {
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty" hcl:"log_level,optional"`
	Engine   *Engine `json:"engine,omitempty" yaml:"engine,omitempty" hcl:"engine,block"`
	Cache    *Cache  `json:"cache,omitempty" yaml:"cache,omitempty" hcl:"cache,block"`
}

type Engine struct {
	Kind    string   `json:"kind" yaml:"kind" hcl:"kind,optional"`
	Script  string   `json:"script,omitempty" yaml:"script,omitempty" hcl:"script,optional"`
	Command []string `json:"command,omitempty" yaml:"command,omitempty" hcl:"command,optional"`
	Timeout string   `json:"timeout,omitempty" yaml:"timeout,omitempty" hcl:"timeout,optional"`
	Watch   []string `json:"watch,omitempty" yaml:"watch,omitempty" hcl:"watch,optional"`
}

type Cache struct {
	EvictOnClose bool `json:"evict_on_close,omitempty" yaml:"evict_on_close,omitempty" hcl:"evict_on_close,optional"`
}

func Default() *Config {
	return &Config{
		LogLevel: zerolog.InfoLevel.String(),
		Engine:   &Engine{Kind: EngineLua, Timeout: DefaultTimeout.String()},
		Cache:    &Cache{},
	}
}

// Load reads the configuration at path from fs. Blocks missing from the file
// are filled with defaults.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, errors.Errorf("parsing YAML: %w", err)
		}
	} else {
		parser := hclparse.NewParser()
		file, diags := parser.ParseHCL(data, path)
		if diags.HasErrors() {
			return nil, errors.Errorf("parsing HCL: %s", diags.Error())
		}
		diags = gohcl.DecodeBody(file.Body, evalContext(), &cfg)
		if diags.HasErrors() {
			return nil, errors.Errorf("decoding HCL: %s", diags.Error())
		}
	}

	cfg.fill()
	return &cfg, nil
}

// evalContext exposes the process environment to HCL expressions as env.NAME.
func evalContext() *hcl.EvalContext {
	vars := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			vars[k] = cty.StringVal(v)
		}
	}
	env := cty.MapValEmpty(cty.String)
	if len(vars) > 0 {
		env = cty.MapVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}

func (c *Config) fill() {
	def := Default()
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Engine == nil {
		c.Engine = def.Engine
	}
	if c.Engine.Kind == "" {
		c.Engine.Kind = def.Engine.Kind
	}
	if c.Engine.Timeout == "" {
		c.Engine.Timeout = def.Engine.Timeout
	}
	if c.Cache == nil {
		c.Cache = def.Cache
	}
}

// Validate reports every problem in the configuration at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, errors.Errorf("log_level: %w", err))
	}

	if c.Engine == nil {
		result = multierror.Append(result, errors.New("engine: block is required"))
		return result.ErrorOrNil()
	}

	switch c.Engine.Kind {
	case EngineLua:
		if c.Engine.Script == "" {
			result = multierror.Append(result, errors.New("engine.script: required for the lua engine"))
		}
	case EngineExec:
		if len(c.Engine.Command) == 0 || c.Engine.Command[0] == "" {
			result = multierror.Append(result, errors.New("engine.command: required for the exec engine"))
		}
	default:
		result = multierror.Append(result, errors.Errorf("engine.kind: unknown engine %q", c.Engine.Kind))
	}

	if c.Engine.Timeout != "" {
		d, err := time.ParseDuration(c.Engine.Timeout)
		if err != nil {
			result = multierror.Append(result, errors.Errorf("engine.timeout: %w", err))
		} else if d < 0 {
			result = multierror.Append(result, errors.Errorf("engine.timeout: must not be negative, got %s", d))
		}
	}

	for _, pattern := range c.Engine.Watch {
		if !doublestar.ValidatePattern(pattern) {
			result = multierror.Append(result, errors.Errorf("engine.watch: invalid pattern %q", pattern))
		}
	}

	return result.ErrorOrNil()
}

// Timeout is the engine call bound; zero disables it.
func (c *Config) Timeout() time.Duration {
	if c.Engine == nil || c.Engine.Timeout == "" {
		return DefaultTimeout
	}
	d, err := time.ParseDuration(c.Engine.Timeout)
	if err != nil {
		return DefaultTimeout
	}
	return d
}

// Level is the configured zerolog level, info when unparseable.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Matches reports whether a changed file should reload the engine. Relative
// patterns match at any depth.
func (e *Engine) Matches(path string) bool {
	if e == nil {
		return false
	}
	path = strings.TrimPrefix(path, "file://")
	rel := strings.TrimPrefix(path, "/")
	for _, pattern := range e.Watch {
		if strings.HasPrefix(pattern, "/") {
			if ok, _ := doublestar.Match(pattern, path); ok {
				return true
			}
			continue
		}
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match("**/"+pattern, rel); ok {
			return true
		}
	}
	return false
}
