// Package testhelpers provides common utilities for tests across packages.
package testhelpers

import (
	"testing"

	"github.com/BurntSushi/toml"
)

// PlainTerminal makes colour and terminal detection deterministic for the
// duration of the test.
func PlainTerminal(t *testing.T) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	t.Setenv("TERM", "dumb")
}

// LoadTOML decodes the TOML fixture at path into v, failing the test on error
// or on keys in the file that v does not declare.
func LoadTOML(t *testing.T, path string, v any) {
	t.Helper()
	md, err := toml.DecodeFile(path, v)
	if err != nil {
		t.Fatalf("failed to load %s: %v", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		t.Fatalf("%s has unknown keys: %v", path, undecoded)
	}
}
