package config

import (
	"fmt"
	"os"
	"strconv"
)

const EnvWorkflowWorkers = "REDLINE_WORKFLOW_WORKERS"

// WorkflowConfig holds analysis pipeline parameters. Workers bounds how many
// paragraph revisions may be in flight at once; the default of 1 preserves
// strict sequential processing and paragraph-by-paragraph progress.
type WorkflowConfig struct {
	Workers int `toml:"workers"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *WorkflowConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *WorkflowConfig) Merge(overlay *WorkflowConfig) {
	if overlay.Workers != 0 {
		c.Workers = overlay.Workers
	}
}

func (c *WorkflowConfig) loadDefaults() {
	if c.Workers == 0 {
		c.Workers = 1
	}
}

func (c *WorkflowConfig) loadEnv() {
	if v := os.Getenv(EnvWorkflowWorkers); v != "" {
		if workers, err := strconv.Atoi(v); err == nil {
			c.Workers = workers
		}
	}
}

func (c *WorkflowConfig) validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("invalid workers: %d", c.Workers)
	}
	return nil
}
