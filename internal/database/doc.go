// Package database provides SQLite-based storage for scan run history.
// Each completed run is recorded with its counts and output location so
// past runs can be listed with the history command.
package database
