package projectfile

import (
	"fmt"
	"os"

	"github.com/bazelbuild/buildtools/build"

	"github.com/nox-build/modsolve/internal/buildutil"
)

// ParseError reports a manifest syntax or structural problem with
// position information.
type ParseError struct {
	Pos     Position
	Message string
	Wrapped error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename, e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Wrapped }

type parser struct {
	filename string
}

// ParseFile reads and parses a project manifest from disk.
func ParseFile(filename string) (*File, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	return ParseContent(filename, data)
}

// ParseContent parses project manifest content already in memory.
func ParseContent(filename string, content []byte) (*File, error) {
	p := &parser{filename: filename}
	return p.parse(content)
}

func (p *parser) parse(content []byte) (*File, error) {
	raw, err := build.ParseModule(p.filename, content)
	if err != nil {
		return nil, &ParseError{
			Pos:     Position{Filename: p.filename},
			Message: fmt.Sprintf("syntax error: %v", err),
			Wrapped: err,
		}
	}

	file := &File{
		Path:       p.filename,
		Statements: make([]Statement, 0, len(raw.Stmt)),
		raw:        raw,
	}

	for _, stmt := range raw.Stmt {
		s, err := p.parseStatement(stmt)
		if err != nil {
			return nil, err
		}
		if s != nil {
			file.Statements = append(file.Statements, s)
		}
	}

	return file, nil
}

func (p *parser) parseStatement(expr build.Expr) (Statement, error) {
	call, ok := expr.(*build.CallExpr)
	if !ok {
		return nil, nil
	}

	pos := p.position(call)
	name := buildutil.FuncName(call)

	switch name {
	case "module":
		return p.parseModule(call, pos)
	case "project":
		return p.parseProject(call, pos)
	case "":
		return nil, nil
	default:
		return &UnknownStatement{Pos: pos, FuncName: name, Raw: call}, nil
	}
}

func (p *parser) parseModule(call *build.CallExpr, pos Position) (Statement, error) {
	name := buildutil.String(call, "name")
	if name == "" {
		return nil, &ParseError{Pos: pos, Message: "module() requires a non-empty name"}
	}
	return &ModuleDecl{
		Pos:           pos,
		Name:          name,
		DirectDeps:    buildutil.StringList(call, "deps"),
		Uncompiled:    buildutil.StringList(call, "uncompiled"),
		NonNamespaced: buildutil.StringList(call, "non_namespaced"),
		Namespaced:    buildutil.StringList(call, "namespaced"),
	}, nil
}

func (p *parser) parseProject(call *build.CallExpr, pos Position) (Statement, error) {
	return &ProjectDecl{
		Pos:         pos,
		SourceRoots: buildutil.StringList(call, "source_roots"),
	}, nil
}

func (p *parser) position(expr build.Expr) Position {
	start, _ := expr.Span()
	return Position{Filename: p.filename, Line: start.Line, Column: start.LineRune}
}
