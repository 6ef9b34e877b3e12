// Package resources serves the UI's static assets.
//
// Production builds embed the static directory into the binary. Builds with
// the "dev" tag read it from disk so stylesheet edits show up on reload.
package resources

import "strings"

// StaticDirectoryPath is the path to static assets from the project root.
const StaticDirectoryPath = "internal/ui/resources/static"

// StaticPrefix is the URL prefix assets are mounted under.
const StaticPrefix = "/static/"

// StaticPath returns the URL path for a static asset.
func StaticPath(path string) string {
	return StaticPrefix + strings.TrimPrefix(path, "/")
}
