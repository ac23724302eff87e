// Package util provides common utilities: path normalization, user
// directory lookup, small generic helpers, and logging.
package util

import "log"

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}
