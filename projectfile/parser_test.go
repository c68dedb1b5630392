package projectfile

import "testing"

func TestParseContent_Module(t *testing.T) {
	content := `module(
    name = "client",
    deps = ["base"],
    uncompiled = ["client/dc1.js", "client/dc2.js"],
    non_namespaced = ["client/nc.js"],
    namespaced = ["client/ns1.js", "client/ns2.js"],
)
`
	file, err := ParseContent("project.modules", []byte(content))
	if err != nil {
		t.Fatalf("ParseContent: %v", err)
	}

	if len(file.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(file.Statements))
	}
	m, ok := file.Statements[0].(*ModuleDecl)
	if !ok {
		t.Fatalf("statement is %T, want *ModuleDecl", file.Statements[0])
	}
	if m.Name != "client" {
		t.Errorf("Name = %q, want client", m.Name)
	}
	if len(m.DirectDeps) != 1 || m.DirectDeps[0] != "base" {
		t.Errorf("DirectDeps = %v, want [base]", m.DirectDeps)
	}
	if len(m.Uncompiled) != 2 {
		t.Errorf("Uncompiled = %v, want 2 entries", m.Uncompiled)
	}
	if len(m.Namespaced) != 2 {
		t.Errorf("Namespaced = %v, want 2 entries", m.Namespaced)
	}
}

func TestParseContent_Project(t *testing.T) {
	content := `project(source_roots = ["js/", "css/"])`
	file, err := ParseContent("project.modules", []byte(content))
	if err != nil {
		t.Fatalf("ParseContent: %v", err)
	}
	p, ok := file.Statements[0].(*ProjectDecl)
	if !ok {
		t.Fatalf("statement is %T, want *ProjectDecl", file.Statements[0])
	}
	if len(p.SourceRoots) != 2 {
		t.Errorf("SourceRoots = %v, want 2 entries", p.SourceRoots)
	}
}

func TestParseContent_UnknownStatementPreserved(t *testing.T) {
	content := `future_feature(name = "x")`
	file, err := ParseContent("project.modules", []byte(content))
	if err != nil {
		t.Fatalf("ParseContent: %v", err)
	}
	u, ok := file.Statements[0].(*UnknownStatement)
	if !ok {
		t.Fatalf("statement is %T, want *UnknownStatement", file.Statements[0])
	}
	if u.FuncName != "future_feature" {
		t.Errorf("FuncName = %q, want future_feature", u.FuncName)
	}
}

func TestParseContent_ModuleWithoutNameIsError(t *testing.T) {
	content := `module(deps = ["base"])`
	if _, err := ParseContent("project.modules", []byte(content)); err == nil {
		t.Fatal("expected an error for module() with no name")
	}
}

func TestParseContent_SyntaxError(t *testing.T) {
	content := `module(name = "broken"`
	if _, err := ParseContent("project.modules", []byte(content)); err == nil {
		t.Fatal("expected a syntax error")
	}
}
