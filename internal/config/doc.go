// Package config loads the small YAML configuration monodelta needs: the
// blob store root directory, the bookmarks file path, and logging settings.
package config
