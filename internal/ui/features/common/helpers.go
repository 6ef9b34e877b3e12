// Package common provides shared helpers for UI features.
package common

import "strconv"

// Itoa formats an integer for use inside component markup.
func Itoa(n int) string {
	return strconv.Itoa(n)
}
