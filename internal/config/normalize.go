package config

import "strings"

func (c *Config) normalize() {
	c.normalizeOrganize()
	c.normalizeHandles()
	c.normalizeLogging()
}

func (c *Config) normalizeOrganize() {
	if c.Organize.MinCount <= 0 {
		c.Organize.MinCount = defaultMinCount
	}
	c.Organize.Extensions = NormalizeExtensions(c.Organize.Extensions)
	if len(c.Organize.Extensions) == 0 {
		c.Organize.Extensions = defaultExtensions()
	}
	c.Organize.Collision = strings.ToLower(strings.TrimSpace(c.Organize.Collision))
	if c.Organize.Collision == "" {
		c.Organize.Collision = defaultCollision
	}
}

func (c *Config) normalizeHandles() {
	prefixes := make([]string, 0, len(c.Handles.CameraPrefixes))
	for _, prefix := range c.Handles.CameraPrefixes {
		trimmed := strings.TrimSpace(prefix)
		if trimmed == "" {
			continue
		}
		prefixes = append(prefixes, trimmed)
	}
	c.Handles.CameraPrefixes = prefixes
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// NormalizeExtensions lowercases extensions, strips leading dots and
// whitespace, and removes duplicates while preserving order.
func NormalizeExtensions(extensions []string) []string {
	out := make([]string, 0, len(extensions))
	seen := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		normalized := strings.ToLower(strings.TrimSpace(ext))
		normalized = strings.TrimPrefix(normalized, ".")
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}
