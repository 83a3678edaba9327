package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

type testFrontMatter struct {
	Title string   `yaml:"title"`
	Draft bool     `yaml:"draft"`
	Tags  []string `yaml:"tags"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid YAML",
			data: []byte("title: Release Notes\ndraft: true\ntags: [go, markdown]"),
			dest: &testFrontMatter{},
			check: func(t *testing.T, v any) {
				fm := v.(*testFrontMatter)
				if fm.Title != "Release Notes" {
					t.Errorf("Title = %q, want %q", fm.Title, "Release Notes")
				}
				if !fm.Draft {
					t.Error("Draft = false, want true")
				}
				if len(fm.Tags) != 2 {
					t.Errorf("Tags = %v, want 2 entries", fm.Tags)
				}
			},
		},
		{
			name: "unknown keys tolerated",
			data: []byte("title: Post\nauthor: someone"),
			dest: &testFrontMatter{},
			check: func(t *testing.T, v any) {
				fm := v.(*testFrontMatter)
				if fm.Title != "Post" {
					t.Errorf("Title = %q, want %q", fm.Title, "Post")
				}
			},
		},
		{
			name: "generic mapping destination",
			data: []byte("title: Post\ndate: 2024-05-01"),
			dest: &map[string]any{},
			check: func(t *testing.T, v any) {
				m := *v.(*map[string]any)
				if m["title"] != "Post" {
					t.Errorf("title = %v, want %q", m["title"], "Post")
				}
			},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testFrontMatter{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &testFrontMatter{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("title: test"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "invalid YAML syntax",
			data:    []byte("title: [unclosed"),
			dest:    &testFrontMatter{},
			wantErr: errors.New("yamlutil:"), // partial match
		},
		{
			name: "unicode content",
			data: []byte("title: 日本語テスト"),
			dest: &testFrontMatter{},
			check: func(t *testing.T, v any) {
				fm := v.(*testFrontMatter)
				if fm.Title != "日本語テスト" {
					t.Errorf("Title = %q, want %q", fm.Title, "日本語テスト")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if errors.Is(err, tt.wantErr) {
					return // exact match via errors.Is
				}
				if !strings.Contains(err.Error(), tt.wantErr.Error()) {
					t.Fatalf("error = %q, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid YAML with known fields only",
			data: []byte("title: strict\ndraft: false"),
			dest: &testFrontMatter{},
			check: func(t *testing.T, v any) {
				fm := v.(*testFrontMatter)
				if fm.Title != "strict" {
					t.Errorf("Title = %q, want %q", fm.Title, "strict")
				}
			},
		},
		{
			name:    "unknown field causes error",
			data:    []byte("title: test\nunknown_field: value"),
			dest:    &testFrontMatter{},
			wantErr: errors.New("yamlutil:"),
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testFrontMatter{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("title: test"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if errors.Is(err, tt.wantErr) {
					return
				}
				if !strings.Contains(err.Error(), tt.wantErr.Error()) {
					t.Fatalf("error = %q, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

func TestUnmarshalSizeLimit(t *testing.T) {
	t.Parallel()

	oversized := []byte("title: " + strings.Repeat("x", yamlutil.MaxInputSize))
	err := yamlutil.Unmarshal(oversized, &testFrontMatter{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Fatalf("error = %v, want ErrInputTooLarge", err)
	}
}
