package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeProject(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "project.modules")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write project file: %v", err)
	}
	return path
}

func TestSolveCommand(t *testing.T) {
	path := writeProject(t, `
module(name = "base", uncompiled = ["b_dc.js"])
module(name = "client", deps = ["base"], uncompiled = ["c_dc.js"])
`)

	out, err := runCLI(t, "solve", path)
	if err != nil {
		t.Fatalf("solve: %v\n%s", err, out)
	}
	if !bytes.Contains([]byte(out), []byte("base:")) {
		t.Errorf("output missing base module: %q", out)
	}
}

func TestSolveCommand_EmptyProject(t *testing.T) {
	path := writeProject(t, ``)

	out, err := runCLI(t, "solve", path)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if out != "no modules declared\n" {
		t.Errorf("output = %q", out)
	}
}

func TestExplainCommand(t *testing.T) {
	path := writeProject(t, `
module(name = "base", uncompiled = ["b_dc.js"])
`)

	out, err := runCLI(t, "explain", path, "--file", "b_dc.js")
	if err != nil {
		t.Fatalf("explain: %v\n%s", err, out)
	}
	if !bytes.Contains([]byte(out), []byte(`"base"`)) {
		t.Errorf("output missing module name: %q", out)
	}
}

func TestExplainCommand_MissingFileFlag(t *testing.T) {
	path := writeProject(t, `module(name = "base")`)
	if _, err := runCLI(t, "explain", path); err == nil {
		t.Fatal("expected an error when --file is omitted")
	}
}
