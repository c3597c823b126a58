// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

// Simple test schema for decoding tests
const testSchema = `
#TestConfig: {
	name:         string
	count:        int
	enabled:      bool
	description?: string
}
`

// testConfig is a simple struct for testing generic decoding
type testConfig struct {
	Name        string `json:"name"`
	Count       int    `json:"count"`
	Enabled     bool   `json:"enabled"`
	Description string `json:"description,omitempty"`
}

func TestDecode(t *testing.T) {
	t.Run("valid document decodes successfully", func(t *testing.T) {
		data := []byte(`
name: "test"
count: 42
enabled: true
description: "A test config"
`)
		result, err := Decode[testConfig](testSchema, data, "#TestConfig")
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}

		if result.Name != "test" {
			t.Errorf("expected name='test', got %q", result.Name)
		}
		if result.Count != 42 {
			t.Errorf("expected count=42, got %d", result.Count)
		}
		if !result.Enabled {
			t.Error("expected enabled=true")
		}
	})

	t.Run("JSON document is valid CUE", func(t *testing.T) {
		data := []byte(`{"name": "json", "count": 7, "enabled": false}`)
		result, err := Decode[testConfig](testSchema, data, "#TestConfig")
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if result.Name != "json" || result.Count != 7 {
			t.Errorf("unexpected result: %+v", result)
		}
	})

	t.Run("optional field can be omitted", func(t *testing.T) {
		data := []byte(`
name: "minimal"
count: 1
enabled: false
`)
		result, err := Decode[testConfig](testSchema, data, "#TestConfig")
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if result.Description != "" {
			t.Errorf("expected empty description, got %q", result.Description)
		}
	})

	t.Run("invalid type returns error", func(t *testing.T) {
		data := []byte(`
name: "test"
count: "not a number"
enabled: true
`)
		_, err := Decode[testConfig](testSchema, data, "#TestConfig")
		if err == nil {
			t.Fatal("expected error for type mismatch, got nil")
		}
	})

	t.Run("error message carries the filename", func(t *testing.T) {
		data := []byte("name: 5\ncount: 1\nenabled: true\n")
		_, err := Decode[testConfig](testSchema, data, "#TestConfig", WithFilename("broken.cps"))
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "broken.cps") {
			t.Errorf("error should mention the filename: %v", err)
		}
	})

	t.Run("unknown schema root is an internal error", func(t *testing.T) {
		_, err := Decode[testConfig](testSchema, []byte(`name: "x"`), "#Missing")
		if err == nil {
			t.Fatal("expected error for missing definition, got nil")
		}
	})
}
