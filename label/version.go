// Package label: file version suffixes.
//
// A minority of generated file names carry a version suffix before their
// extension (e.g. "foo.v2.js", "foo.v2.1.js"). This has no bearing on the
// placement solver itself - it exists purely so `modsolve explain` can
// present same-basename files in a stable, human-meaningful order instead
// of alphabetical order, which sorts "foo.v10.js" before "foo.v2.js".
package label

import (
	"cmp"
	"regexp"

	"golang.org/x/mod/semver"
)

// FileVersion is the semantic-version-like suffix extracted from a file
// name, compared using golang.org/x/mod/semver rules (numeric precedence,
// not lexicographic).
type FileVersion struct {
	raw string // as it appears in the file name, e.g. "v2" or "v2.1"
}

var fileVersionSuffixRegex = regexp.MustCompile(`\.(v[0-9]+(?:\.[0-9]+){0,2})\.[^.]+$`)
var stripFileVersionRegex = regexp.MustCompile(`\.v[0-9]+(?:\.[0-9]+){0,2}(\.[^.]+)$`)

// ExtractFileVersion looks for a version suffix in name and returns it, or
// reports false if name carries none.
func ExtractFileVersion(name string) (FileVersion, bool) {
	m := fileVersionSuffixRegex.FindStringSubmatch(name)
	if m == nil {
		return FileVersion{}, false
	}
	if !semver.IsValid(m[1]) {
		return FileVersion{}, false
	}
	return FileVersion{raw: m[1]}, true
}

// String returns the suffix as it appeared in the file name.
func (v FileVersion) String() string {
	return v.raw
}

// IsEmpty reports whether v is the zero value.
func (v FileVersion) IsEmpty() bool {
	return v.raw == ""
}

// CompareFileVersions orders two FileVersions using semver precedence:
// numeric segments compare numerically, so "v2" sorts before "v10".
// Missing minor/patch segments are treated as zero.
func CompareFileVersions(a, b FileVersion) int {
	return semver.Compare(a.raw, b.raw)
}

// Base strips a trailing version suffix from name, if any, so that
// "foo.v2.js" and "foo.v10.js" both reduce to "foo.js".
func Base(name string) string {
	return stripFileVersionRegex.ReplaceAllString(name, "$1")
}

// CompareFileNames orders two file names for display: names that share a
// base (once any version suffix is stripped) sort by version precedence,
// so "foo.v2.js" sorts before "foo.v10.js" instead of after it; everything
// else falls back to a plain lexicographic compare.
func CompareFileNames(a, b string) int {
	baseA, baseB := Base(a), Base(b)
	if baseA == baseB {
		va, okA := ExtractFileVersion(a)
		vb, okB := ExtractFileVersion(b)
		if okA && okB {
			return CompareFileVersions(va, vb)
		}
	}
	return cmp.Compare(a, b)
}
