package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOrganize(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOrganize() error {
	if c.Organize.MinCount < 1 {
		return fmt.Errorf("organize.min_count must be at least 1, got %d", c.Organize.MinCount)
	}
	switch c.Organize.Collision {
	case "skip", "rename":
	default:
		return fmt.Errorf("organize.collision must be %q or %q, got %q", "skip", "rename", c.Organize.Collision)
	}
	return nil
}
