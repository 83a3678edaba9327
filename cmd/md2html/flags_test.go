package main

import (
	"testing"
)

// TestParseFlags - Flag parsing and positional arguments
func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantErr    bool
		wantInputs []string
		check      func(t *testing.T, flags *cliFlags)
	}{
		{
			name:       "no flags, single input",
			args:       []string{"md2html", "post.md"},
			wantInputs: []string{"post.md"},
		},
		{
			name:       "multiple inputs",
			args:       []string{"md2html", "a.md", "b.md", "c.md"},
			wantInputs: []string{"a.md", "b.md", "c.md"},
		},
		{
			name: "long flags",
			args: []string{"md2html", "--base-url", "https://example.com", "--highlight", "monokai", "post.md"},
			check: func(t *testing.T, flags *cliFlags) {
				if flags.baseURL != "https://example.com" {
					t.Errorf("baseURL = %q, want %q", flags.baseURL, "https://example.com")
				}
				if flags.highlight != "monokai" {
					t.Errorf("highlight = %q, want %q", flags.highlight, "monokai")
				}
			},
			wantInputs: []string{"post.md"},
		},
		{
			name: "short flags",
			args: []string{"md2html", "-b", "https://example.com", "-o", "out", "-w", "4", "-v", "post.md"},
			check: func(t *testing.T, flags *cliFlags) {
				if flags.baseURL != "https://example.com" {
					t.Errorf("baseURL = %q, want %q", flags.baseURL, "https://example.com")
				}
				if flags.outputDir != "out" {
					t.Errorf("outputDir = %q, want %q", flags.outputDir, "out")
				}
				if flags.workers != 4 {
					t.Errorf("workers = %d, want 4", flags.workers)
				}
				if !flags.verbose {
					t.Error("verbose = false, want true")
				}
			},
			wantInputs: []string{"post.md"},
		},
		{
			name: "version flag",
			args: []string{"md2html", "--version"},
			check: func(t *testing.T, flags *cliFlags) {
				if !flags.version {
					t.Error("version = false, want true")
				}
			},
			wantInputs: []string{},
		},
		{
			name:    "unknown flag",
			args:    []string{"md2html", "--bogus", "post.md"},
			wantErr: true,
		},
		{
			name:    "invalid workers value",
			args:    []string{"md2html", "--workers", "abc", "post.md"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags, inputs, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(inputs) != len(tt.wantInputs) {
				t.Fatalf("inputs = %v, want %v", inputs, tt.wantInputs)
			}
			for i, in := range tt.wantInputs {
				if inputs[i] != in {
					t.Errorf("inputs[%d] = %q, want %q", i, inputs[i], in)
				}
			}

			if tt.check != nil {
				tt.check(t, flags)
			}
		})
	}
}

// TestParseFlags_SetTracking - Explicit flags are recorded for config merging
func TestParseFlags_SetTracking(t *testing.T) {
	t.Parallel()

	flags, _, err := parseFlags([]string{"md2html", "--base-url", "https://example.com", "post.md"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !flags.set["base-url"] {
		t.Error("set[base-url] = false, want true")
	}
	if flags.set["highlight"] {
		t.Error("set[highlight] = true for unset flag, want false")
	}
}
