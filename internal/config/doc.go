// Package config provides configuration structures and utilities for
// exifcsv. It defines scan options, output settings, and the optional
// .exifcsv YAML configuration file.
package config
