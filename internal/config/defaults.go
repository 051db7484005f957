package config

// GetDefaults returns the default configuration values keyed by their
// koanf config keys.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"file":          "ChangeLog",
		"plain":         false,
		"show_last":     5,
		"date_format":   "2006-01-02",
		"suggest_limit": 20,
	}
}

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# chlog configuration
# Project config lives at .chlog/config.yml, user config at
# ~/.config/chlog/config.yml. Environment variables use the CHLOG_ prefix.

file: ChangeLog            # Change log file to operate on
plain: false               # Disable colors and styling in output
show_last: 5               # Default number of messages 'chlog show' prints
date_format: "2006-01-02"  # Go reference layout for stamped release dates
suggest_limit: 20          # Max commits 'chlog suggest' inspects as fallback
`
}
