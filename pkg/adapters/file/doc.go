// Package file loads tree snapshots and theme sets from YAML, JSON or TOML files.
// The format is chosen by file extension.
package file
