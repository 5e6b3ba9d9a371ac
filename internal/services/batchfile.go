// ABOUTME: Loader for YAML batch files of configurations
// ABOUTME: Accepts a top-level "configurations" list; JSON files parse too since YAML is a superset

package services

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cyan1/Availability/internal/models"
)

// LoadBatchFile reads the configurations listed in a batch file
func LoadBatchFile(path string) ([]models.CalculationRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return ParseBatch(data)
}

// ParseBatch decodes batch file contents
func ParseBatch(data []byte) ([]models.CalculationRequest, error) {
	var batch models.BatchRequest
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}
	if len(batch.Configurations) == 0 {
		return nil, fmt.Errorf("batch file contains no configurations")
	}
	return batch.Configurations, nil
}
