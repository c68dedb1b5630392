package label

import (
	"sort"
	"testing"
)

func TestExtractFileVersion(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"simple major", "foo.v2.js", "v2", true},
		{"major minor", "foo.v2.1.js", "v2.1", true},
		{"no version", "foo.js", "", false},
		{"nested path", "sub/foo.v3.js", "v3", true},
		{"not a version word", "foo.bar.js", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractFileVersion(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ExtractFileVersion(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got.String() != tt.want {
				t.Fatalf("ExtractFileVersion(%q) = %q, want %q", tt.input, got.String(), tt.want)
			}
		})
	}
}

func TestCompareFileVersionsNumericNotLexicographic(t *testing.T) {
	v2, _ := ExtractFileVersion("foo.v2.js")
	v10, _ := ExtractFileVersion("foo.v10.js")

	if CompareFileVersions(v2, v10) >= 0 {
		t.Fatalf("expected v2 < v10 numerically")
	}

	versions := []FileVersion{v10, v2}
	sort.Slice(versions, func(i, j int) bool {
		return CompareFileVersions(versions[i], versions[j]) < 0
	})
	if versions[0].String() != "v2" || versions[1].String() != "v10" {
		t.Fatalf("unexpected sort order: %v", versions)
	}
}

func TestCompareFileNames(t *testing.T) {
	names := []string{"foo.v10.js", "bar.js", "foo.v2.js"}
	sort.Slice(names, func(i, j int) bool {
		return CompareFileNames(names[i], names[j]) < 0
	})
	want := []string{"bar.js", "foo.v2.js", "foo.v10.js"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("unexpected sort order: %v, want %v", names, want)
		}
	}
}

func TestBaseStripsVersionSuffix(t *testing.T) {
	if got := Base("foo.v2.js"); got != "foo.js" {
		t.Fatalf("Base(%q) = %q, want foo.js", "foo.v2.js", got)
	}
	if got := Base("foo.js"); got != "foo.js" {
		t.Fatalf("Base(%q) = %q, want foo.js", "foo.js", got)
	}
}
