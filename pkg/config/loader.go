package config

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked for when no explicit path is given
// and discovery finds nothing.
const DefaultPath = ".yaprc.json"

// discoveryPattern matches any supported config file in the working
// directory. Extension decides the parser.
const discoveryPattern = ".yaprc.{json,yaml,yml,hcl}"

// Load loads the configuration from path. An absent or unparseable file is
// not an error: yap runs fine without configuration, so both cases yield an
// empty config and only a debug log.
func Load(ctx context.Context, path string) *Config {
	logger := zerolog.Ctx(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Debug().Str("path", path).Err(err).Msg("no config file, using empty config")
		return &Config{}
	}

	cfg, err := parse(data, path)
	if err != nil {
		logger.Debug().Str("path", path).Err(err).Msg("unparseable config file, using empty config")
		return &Config{}
	}

	cfg.location = path
	logger.Debug().Str("path", path).Msg("loaded configuration")
	return cfg
}

// Discover returns the config file in dir matching the supported formats,
// or DefaultPath when none exists. When several formats are present the
// priority is json, yaml, yml, hcl; json is the documented default.
func Discover(dir string) string {
	matches, err := doublestar.FilepathGlob(filepath.Join(dir, discoveryPattern))
	if err != nil || len(matches) == 0 {
		return filepath.Join(dir, DefaultPath)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return extRank(matches[i]) < extRank(matches[j])
	})
	return matches[0]
}

func extRank(path string) int {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return 0
	case ".yaml":
		return 1
	case ".yml":
		return 2
	default:
		return 3
	}
}

// parse dispatches on the file extension.
func parse(data []byte, path string) (*Config, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parseJSON(data)
	case ".yaml", ".yml":
		return parseYAML(data)
	case ".hcl":
		return parseHCL(data, path)
	default:
		return nil, errors.Errorf("unsupported config extension %q", filepath.Ext(path))
	}
}

// parseJSON parses a configuration from JSON data
func parseJSON(data []byte) (*Config, error) {
	var cfg Config
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	return &cfg, nil
}

// parseYAML parses a configuration from YAML data
func parseYAML(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}

// parseHCL parses a configuration from HCL data
func parseHCL(data []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var cfg Config
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &cfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &cfg, nil
}
