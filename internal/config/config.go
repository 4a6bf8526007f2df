// Package config loads and saves the Genesis TOML configuration.
// The file lives at ~/.genesis/config.toml by default; a missing file
// is not an error, callers get the defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/genesis-cli/genesis/internal/modes"
)

// Config is the on-disk configuration.
type Config struct {
	Storage     StorageConfig     `toml:"storage"`
	Logging     LoggingConfig     `toml:"logging"`
	Preferences PreferencesConfig `toml:"preferences"`
}

// StorageConfig locates the decision/pattern history and session database.
type StorageConfig struct {
	// Root holds decisions/, patterns/, and sessions.db. Empty means
	// ~/.genesis.
	Root string `toml:"root,omitempty"`
}

// LoggingConfig controls the process logger.
type LoggingConfig struct {
	Level string `toml:"level,omitempty"` // debug|info|warn|error
}

// PreferencesConfig overrides the default user preferences. Zero-valued
// fields keep their defaults; the merge never produces an out-of-range
// preference from an absent key.
type PreferencesConfig struct {
	RiskTolerance              *float64 `toml:"risk_tolerance,omitempty"`
	SpeedVsQuality             *float64 `toml:"speed_vs_quality,omitempty"`
	AIExperienceLevel          *int     `toml:"ai_experience_level,omitempty"`
	TechnicalExpertise         *int     `toml:"technical_expertise,omitempty"`
	TeamSize                   *int     `toml:"team_size,omitempty"`
	TimeConstraints            string   `toml:"time_constraints,omitempty"`
	BudgetConstraints          string   `toml:"budget_constraints,omitempty"`
	ValidationLevel            string   `toml:"validation_level,omitempty"`
	ConfidenceThreshold        *float64 `toml:"confidence_threshold,omitempty"`
	LearningMode               *bool    `toml:"learning_mode,omitempty"`
	ExperimentationWillingness *float64 `toml:"experimentation_willingness,omitempty"`
}

// DefaultPath returns ~/.genesis/config.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".genesis", "config.toml")
}

// Load reads the config at path. A missing file yields the zero config
// with no error; a present but unparsable file is an error.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ResolvedStorageRoot returns the configured storage root with ~
// expanded, or ~/.genesis as default.
func (c Config) ResolvedStorageRoot() string {
	root := c.Storage.Root
	if root != "" {
		if strings.HasPrefix(root, "~/") {
			if home, err := os.UserHomeDir(); err == nil {
				return filepath.Join(home, root[2:])
			}
		}
		return root
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".genesis")
	}
	return ".genesis"
}

// ResolvedPreferences merges configured overrides onto the defaults.
// The result is not validated here; callers validate at the boundary
// so a bad config file and a bad flag fail the same way.
func (c Config) ResolvedPreferences() modes.UserPreferences {
	p := modes.DefaultPreferences()

	o := c.Preferences
	if o.RiskTolerance != nil {
		p.RiskTolerance = *o.RiskTolerance
	}
	if o.SpeedVsQuality != nil {
		p.SpeedVsQuality = *o.SpeedVsQuality
	}
	if o.AIExperienceLevel != nil {
		p.AIExperienceLevel = *o.AIExperienceLevel
	}
	if o.TechnicalExpertise != nil {
		p.TechnicalExpertise = *o.TechnicalExpertise
	}
	if o.TeamSize != nil {
		p.TeamSize = *o.TeamSize
	}
	if o.TimeConstraints != "" {
		p.TimeConstraints = modes.Constraint(o.TimeConstraints)
	}
	if o.BudgetConstraints != "" {
		p.BudgetConstraints = modes.Constraint(o.BudgetConstraints)
	}
	if o.ValidationLevel != "" {
		p.ValidationLevel = modes.ValidationRigor(o.ValidationLevel)
	}
	if o.ConfidenceThreshold != nil {
		p.ConfidenceThreshold = *o.ConfidenceThreshold
	}
	if o.LearningMode != nil {
		p.LearningMode = *o.LearningMode
	}
	if o.ExperimentationWillingness != nil {
		p.ExperimentationWillingness = *o.ExperimentationWillingness
	}
	return p
}
