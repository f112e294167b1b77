package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go-manpower/internal/scoring"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Scheduling holds the tunables of candidate selection and bulk processing.
type Scheduling struct {
	Scoring              scoring.Config `yaml:",inline"`
	GenderExemptSections []string       `yaml:"gender_exempt_sections"`
	BulkConcurrency      int            `yaml:"bulk_concurrency" validate:"gte=1,lte=64"`
}

var validate = validator.New()

func DefaultScheduling() Scheduling {
	return Scheduling{
		Scoring:              scoring.DefaultConfig(),
		GenderExemptSections: []string{"Loader"},
		BulkConcurrency:      4,
	}
}

// LoadScheduling reads a YAML file over the defaults. A missing file is not
// an error; the defaults are returned as-is.
func LoadScheduling(path string) (Scheduling, error) {
	cfg := DefaultScheduling()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Scheduling{}, fmt.Errorf("failed to read scheduling config: %w", err)
	}

	return ParseScheduling(data)
}

func ParseScheduling(data []byte) (Scheduling, error) {
	cfg := DefaultScheduling()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Scheduling{}, fmt.Errorf("failed to parse scheduling config: %w", err)
	}
	if err := ValidateScheduling(cfg); err != nil {
		return Scheduling{}, err
	}
	return cfg, nil
}

func ValidateScheduling(cfg Scheduling) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("scheduling config validation failed: %w", err)
	}
	if cfg.Scoring.WorkloadWeight+cfg.Scoring.AssessmentWeight == 0 {
		return errors.New("scheduling config validation failed: workload_weight and assessment_weight are both zero")
	}
	for i, name := range cfg.GenderExemptSections {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("scheduling config validation failed: gender_exempt_sections[%d] is empty", i)
		}
	}
	return nil
}
