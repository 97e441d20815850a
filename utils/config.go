package utils

import "sapdoc/config"

// IsProduction reports whether the app runs with a production config.
func IsProduction() bool {
	return config.IsProduction()
}
