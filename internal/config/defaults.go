package config

const (
	defaultMinCount  = 3
	defaultCollision = "skip"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

func defaultExtensions() []string {
	return []string{"jpg", "jpeg", "png", "webp", "heic"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Organize: Organize{
			MinCount:   defaultMinCount,
			Extensions: defaultExtensions(),
			Collision:  defaultCollision,
		},
		Handles: Handles{
			StrictStart:   false,
			AllowTrailing: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
