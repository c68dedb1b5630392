package modsolve

import (
	"errors"
	"testing"
)

func outputFor(t *testing.T, outputs []ModuleOutput, name string) ModuleOutput {
	t.Helper()
	for _, o := range outputs {
		if o.Name == name {
			return o
		}
	}
	t.Fatalf("no module output named %q", name)
	return ModuleOutput{}
}

// Scenario A — unique files, no movement.
func TestSolveScenarioA_UniqueFilesNoMovement(t *testing.T) {
	spec := ProjectSpec{
		"base": {
			Uncompiled:    []string{"b_dc1.js", "b_dc2.js"},
			NonNamespaced: []string{"b_nc.js"},
		},
		"client": {
			DirectDeps:    []string{"base"},
			Uncompiled:    []string{"c_dc1.js", "c_dc2.js"},
			NonNamespaced: []string{"c_nc.js"},
		},
		"server": {
			DirectDeps:    []string{"base"},
			Uncompiled:    []string{"s_dc1.js", "s_dc2.js"},
			NonNamespaced: []string{"s_nc.js"},
		},
	}

	out, err := Solve(spec)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	base := outputFor(t, out, "base")
	if got := base.DontCompileInputFiles; len(got) != 2 {
		t.Fatalf("base dontCompile = %v", got)
	}
	client := outputFor(t, out, "client")
	if got := client.DontCompileInputFiles; len(got) != 2 {
		t.Fatalf("client dontCompile = %v", got)
	}
	server := outputFor(t, out, "server")
	if got := server.DontCompileInputFiles; len(got) != 2 {
		t.Fatalf("server dontCompile = %v", got)
	}

	if out[0].Name != "base" {
		t.Fatalf("expected base to emit first, got %q", out[0].Name)
	}
}

// Scenario B — a file needed by two sibling modules is lifted to their LCA.
func TestSolveScenarioB_CommonFileToLCA(t *testing.T) {
	spec := ProjectSpec{
		"base":   {NamespacedOrdered: []string{"base.js"}},
		"middle": {DirectDeps: []string{"base"}, NamespacedOrdered: []string{"middle.js"}},
		"client": {DirectDeps: []string{"middle"}, NamespacedOrdered: []string{"common.js", "client.js"}},
		"server": {DirectDeps: []string{"middle"}, NamespacedOrdered: []string{"common.js", "server.js"}},
	}

	out, err := Solve(spec)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	middle := outputFor(t, out, "middle")
	if !contains(middle.CompiledInputFiles, "common.js") {
		t.Fatalf("expected common.js in middle, got %v", middle.CompiledInputFiles)
	}

	client := outputFor(t, out, "client")
	if contains(client.CompiledInputFiles, "common.js") {
		t.Fatalf("common.js should not remain in client: %v", client.CompiledInputFiles)
	}
	if !contains(client.CompiledInputFiles, "client.js") {
		t.Fatalf("expected client.js in client, got %v", client.CompiledInputFiles)
	}

	server := outputFor(t, out, "server")
	if contains(server.CompiledInputFiles, "common.js") {
		t.Fatalf("common.js should not remain in server: %v", server.CompiledInputFiles)
	}
}

// Scenario C — no common root among declared modules forces a synthesized
// virtual root, which receives the files two unrelated roots both need.
func TestSolveScenarioC_VirtualRoot(t *testing.T) {
	spec := ProjectSpec{
		"client1": {NamespacedOrdered: []string{"client1.js"}},
		"client2": {
			DirectDeps:        []string{"client1"},
			NonNamespaced:     []string{"underscore.js"},
			NamespacedOrdered: []string{"client2.js", "common.js"},
		},
		"server": {
			NonNamespaced:     []string{"underscore.js"},
			NamespacedOrdered: []string{"server.js", "common.js"},
		},
	}

	out, err := Solve(spec)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	root := outputFor(t, out, "virtual_base_module")
	rootFiles := append(append([]string{}, root.CompiledInputFiles...), root.DontCompileInputFiles...)
	if !contains(rootFiles, "underscore.js") {
		t.Fatalf("expected underscore.js in virtual root, got %+v", root)
	}
	if !contains(rootFiles, "common.js") {
		t.Fatalf("expected common.js in virtual root, got %+v", root)
	}

	if out[0].Name != "virtual_base_module" {
		t.Fatalf("expected virtual root to emit first, got %q", out[0].Name)
	}
}

// Scenario D — when the LCA set has more than one candidate, the placer
// picks the one requiring the fewest additional predecessor moves.
func TestSolveScenarioD_TieBreakByMovement(t *testing.T) {
	spec := ProjectSpec{
		"base": {},
		"a":    {DirectDeps: []string{"base"}, NamespacedOrdered: []string{"a.js"}},
		"b":    {DirectDeps: []string{"base"}, NamespacedOrdered: []string{"b.js"}},
		"c":    {DirectDeps: []string{"a", "b"}, NamespacedOrdered: []string{"c.js", "b.js", "common.js"}},
		"d":    {DirectDeps: []string{"a", "b"}, NamespacedOrdered: []string{"d.js", "b.js", "common.js"}},
	}

	out, err := Solve(spec)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	// common.js is needed by both c and d, whose LCA candidates are {a, b}
	// (both equally deep ancestors of c and d). common.js's only inferred
	// predecessor, b.js, is already needed in b but not a, so the placer
	// must break the tie toward b to avoid moving a predecessor.
	bModule := outputFor(t, out, "b")
	if !contains(bModule.CompiledInputFiles, "common.js") {
		t.Fatalf("expected common.js placed in b (minimum movement), got placements: %+v", out)
	}
	if !contains(bModule.CompiledInputFiles, "b.js") {
		t.Fatalf("expected b.js to remain in b, got %+v", bModule)
	}

	aModule := outputFor(t, out, "a")
	if contains(aModule.CompiledInputFiles, "common.js") {
		t.Fatalf("common.js should not be placed in a: %+v", aModule)
	}
}

// Scenario E — a cycle in the module DAG is rejected and named.
func TestSolveScenarioE_CycleRejection(t *testing.T) {
	spec := ProjectSpec{
		"base":   {DirectDeps: []string{"loopy"}},
		"loopy":  {DirectDeps: []string{"server"}},
		"server": {DirectDeps: []string{"base"}},
	}

	_, err := Solve(spec)
	var cycleErr *ModuleCycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("expected ModuleCycleError, got %v", err)
	}
	for _, want := range []string{"base", "loopy", "server"} {
		if !contains(cycleErr.Names, want) {
			t.Fatalf("cycle error %v missing %q", cycleErr.Names, want)
		}
	}
}

// Scenario F — the same path declared with two incompatible compile
// classes is rejected.
func TestSolveScenarioF_ClassConflict(t *testing.T) {
	spec := ProjectSpec{
		"base": {Uncompiled: []string{"a.js"}},
		"other": {
			DirectDeps:    []string{"base"},
			NonNamespaced: []string{"a.js"},
		},
	}

	_, err := Solve(spec)
	var classErr *MixedCompileClassError
	if !errors.As(err, &classErr) {
		t.Fatalf("expected MixedCompileClassError, got %v", err)
	}
	if classErr.Path != "a.js" {
		t.Fatalf("expected path a.js, got %q", classErr.Path)
	}
}

func TestSolveEmptyProjectIsValidEmptyOutput(t *testing.T) {
	out, err := Solve(ProjectSpec{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %+v", out)
	}
}

func TestSolveDeterministic(t *testing.T) {
	spec := ProjectSpec{
		"base":   {NamespacedOrdered: []string{"base.js"}},
		"middle": {DirectDeps: []string{"base"}, NamespacedOrdered: []string{"middle.js"}},
		"client": {DirectDeps: []string{"middle"}, NamespacedOrdered: []string{"common.js", "client.js"}},
		"server": {DirectDeps: []string{"middle"}, NamespacedOrdered: []string{"common.js", "server.js"}},
	}

	first, err := Solve(spec)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	second, err := Solve(spec)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("output length differs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name {
			t.Fatalf("module order differs at %d: %q vs %q", i, first[i].Name, second[i].Name)
		}
		if !equalStrings(first[i].CompiledInputFiles, second[i].CompiledInputFiles) {
			t.Fatalf("compiled files differ for %q", first[i].Name)
		}
		if !equalStrings(first[i].DontCompileInputFiles, second[i].DontCompileInputFiles) {
			t.Fatalf("dontCompile files differ for %q", first[i].Name)
		}
	}
}

// TestSolveCompletenessAndUniqueness covers invariants 1 and 2 of §8: the
// union of every module's file buckets equals, with no repeats, the set of
// all unique input paths declared in the project.
func TestSolveCompletenessAndUniqueness(t *testing.T) {
	spec := ProjectSpec{
		"base":   {Uncompiled: []string{"a.js"}, NamespacedOrdered: []string{"base.js"}},
		"middle": {DirectDeps: []string{"base"}, NamespacedOrdered: []string{"middle.js"}},
		"client": {DirectDeps: []string{"middle"}, NamespacedOrdered: []string{"common.js", "client.js"}},
		"server": {DirectDeps: []string{"middle"}, NamespacedOrdered: []string{"common.js", "server.js"}},
	}

	out, err := Solve(spec)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	want := map[string]bool{
		"a.js": true, "base.js": true, "middle.js": true,
		"common.js": true, "client.js": true, "server.js": true,
	}

	seen := make(map[string]int)
	for _, m := range out {
		for _, f := range m.CompiledInputFiles {
			seen[f]++
		}
		for _, f := range m.DontCompileInputFiles {
			seen[f]++
		}
	}

	for path, count := range seen {
		if count != 1 {
			t.Fatalf("path %q emitted %d times", path, count)
		}
		if !want[path] {
			t.Fatalf("unexpected path %q in output", path)
		}
	}
	for path := range want {
		if seen[path] != 1 {
			t.Fatalf("expected path %q exactly once, got %d", path, seen[path])
		}
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
