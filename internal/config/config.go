package config

import (
	"errors"
	"os"
	"path/filepath"

	"climate-scenarios/internal/model"
	"climate-scenarios/internal/scenario"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load control parameters from a separate YAML file. If both
	// ParametersFile and Parameters are provided, Parameters overrides
	// ParametersFile.
	ParametersFile string           `yaml:"parameters_file"`
	Parameters     ParametersConfig `yaml:"parameters"`
	Strategy       StrategyConfig   `yaml:"strategy"`
	Normalizer     NormalizerConfig `yaml:"normalizer"`
}

type ParametersConfig struct {
	CO2Price             float64 `yaml:"co2_price"`
	YearsToReduce        int     `yaml:"years_to_reduce"`
	InterventionTemp     float64 `yaml:"intervention_temp"`
	InterventionDuration int     `yaml:"intervention_duration"`
}

type StrategyConfig struct {
	Name   string         `yaml:"name"`
	Params map[string]any `yaml:"params"`
}

type NormalizerConfig struct {
	// Strictness is "strict" (fail on an unresolvable scenario) or "lenient"
	// (synthesize a fallback series). Lenient is the default and applies
	// mainly to model output.
	Strictness string `yaml:"strictness"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	applyDefaults(c)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate or default it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.ParametersFile != "" {
		paramsPath := c.ParametersFile
		if !filepath.IsAbs(paramsPath) {
			// Prefer interpreting relative paths as relative to the config
			// file directory, falling back to the path as given.
			cand := filepath.Join(filepath.Dir(path), paramsPath)
			if _, err := os.Stat(cand); err == nil {
				paramsPath = cand
			}
		}
		loaded, err := loadParametersFile(paramsPath)
		if err != nil {
			return nil, err
		}
		c.Parameters = MergeParameters(loaded, c.Parameters)
	}
	return &c, nil
}

func applyDefaults(c *Config) {
	if c.Strategy.Name == "" {
		c.Strategy.Name = "curve"
	}
	def := model.DefaultControlParameters()
	if c.Parameters == (ParametersConfig{}) {
		c.Parameters = FromModelParams(def)
	}
	// InterventionTemp has no meaningful zero; absent means default.
	if c.Parameters.InterventionTemp == 0 {
		c.Parameters.InterventionTemp = def.InterventionTemp
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Strategy.Name == "" {
		return errors.New("strategy.name is required")
	}
	if _, err := scenario.ParseStrictness(c.Normalizer.Strictness); err != nil {
		return err
	}
	return c.Parameters.ToModelParams().Validate()
}

func (p ParametersConfig) ToModelParams() model.ControlParameters {
	return model.ControlParameters{
		CO2Price:             p.CO2Price,
		YearsToReduce:        p.YearsToReduce,
		InterventionTemp:     p.InterventionTemp,
		InterventionDuration: p.InterventionDuration,
	}
}

func FromModelParams(p model.ControlParameters) ParametersConfig {
	return ParametersConfig{
		CO2Price:             p.CO2Price,
		YearsToReduce:        p.YearsToReduce,
		InterventionTemp:     p.InterventionTemp,
		InterventionDuration: p.InterventionDuration,
	}
}

type parametersFileWrapper struct {
	Parameters ParametersConfig `yaml:"parameters"`
}

func loadParametersFile(path string) (ParametersConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ParametersConfig{}, err
	}
	var w parametersFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ParametersConfig{}, err
	}
	return w.Parameters, nil
}

// MergeParameters overlays non-zero fields from override onto base. Used when
// loading a parameters file and then applying overrides from the request.
// Zero is a legal value for most fields, but the dashboards never send
// explicit zeros, so the non-zero rule matches observed traffic.
func MergeParameters(base, override ParametersConfig) ParametersConfig {
	out := base
	if override.CO2Price != 0 {
		out.CO2Price = override.CO2Price
	}
	if override.YearsToReduce != 0 {
		out.YearsToReduce = override.YearsToReduce
	}
	if override.InterventionTemp != 0 {
		out.InterventionTemp = override.InterventionTemp
	}
	if override.InterventionDuration != 0 {
		out.InterventionDuration = override.InterventionDuration
	}
	return out
}
