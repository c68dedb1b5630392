package buildutil

import (
	"testing"

	"github.com/bazelbuild/buildtools/build"
)

func parseCall(t *testing.T, content string) *build.CallExpr {
	t.Helper()
	f, err := build.ParseModule("test.bzl", []byte(content))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(f.Stmt) == 0 {
		t.Fatal("no statements parsed")
	}
	call, ok := f.Stmt[0].(*build.CallExpr)
	if !ok {
		t.Fatalf("expected CallExpr, got %T", f.Stmt[0])
	}
	return call
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		attrName string
		want     string
	}{
		{
			name:     "named string attribute",
			input:    `module(name = "bar")`,
			attrName: "name",
			want:     "bar",
		},
		{
			name:     "missing attribute",
			input:    `module(deps = ["x"])`,
			attrName: "name",
			want:     "",
		},
		{
			name:     "non-string attribute",
			input:    `module(name = 123)`,
			attrName: "name",
			want:     "",
		},
		{
			name:     "multiple attributes",
			input:    `module(name = "base", deps = [], uncompiled = [])`,
			attrName: "name",
			want:     "base",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call := parseCall(t, tt.input)
			got := String(call, tt.attrName)
			if got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		attrName string
		want     []string
	}{
		{
			name:     "simple string list",
			input:    `module(deps = ["a", "b", "c"])`,
			attrName: "deps",
			want:     []string{"a", "b", "c"},
		},
		{
			name:     "empty list",
			input:    `module(deps = [])`,
			attrName: "deps",
			want:     []string{},
		},
		{
			name:     "missing attribute",
			input:    `module(name = "base")`,
			attrName: "deps",
			want:     nil,
		},
		{
			name:     "not a list",
			input:    `module(deps = "single")`,
			attrName: "deps",
			want:     nil,
		},
		{
			name:     "mixed types skips non-strings",
			input:    `module(deps = ["a", 1, "b"])`,
			attrName: "deps",
			want:     []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call := parseCall(t, tt.input)
			got := StringList(call, tt.attrName)
			if tt.want == nil {
				if got != nil {
					t.Errorf("StringList() = %v, want nil", got)
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Errorf("StringList() len = %d, want %d", len(got), len(tt.want))
				return
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("StringList()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFuncName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "module call",
			input: `module(name = "base")`,
			want:  "module",
		},
		{
			name:  "project call",
			input: `project(source_roots = ["src"])`,
			want:  "project",
		},
		{
			name:  "no-arg call",
			input: `project()`,
			want:  "project",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call := parseCall(t, tt.input)
			got := FuncName(call)
			if got != tt.want {
				t.Errorf("FuncName() = %q, want %q", got, tt.want)
			}
		})
	}
}
