package projectfile

// Handler processes parsed manifest statements. Implement this interface
// to customize how a manifest is interpreted. Each method returns an
// error to stop processing, or nil to continue.
type Handler interface {
	// Module is called for each module() declaration.
	Module(decl *ModuleDecl) error

	// Project is called for the project() declaration, if present.
	Project(decl *ProjectDecl) error

	// UnknownStatement is called for unrecognized top-level calls.
	UnknownStatement(name string, pos Position) error
}

// Walk traverses file and calls handler for each statement in manifest
// order.
func Walk(file *File, handler Handler) error {
	for _, stmt := range file.Statements {
		if err := walkStatement(stmt, handler); err != nil {
			return err
		}
	}
	return nil
}

func walkStatement(stmt Statement, handler Handler) error {
	switch s := stmt.(type) {
	case *ModuleDecl:
		return handler.Module(s)
	case *ProjectDecl:
		return handler.Project(s)
	case *UnknownStatement:
		return handler.UnknownStatement(s.FuncName, s.Pos)
	}
	return nil
}

// BaseHandler provides no-op implementations of every Handler method.
// Embed it to implement only the methods a caller cares about.
type BaseHandler struct{}

func (BaseHandler) Module(*ModuleDecl) error             { return nil }
func (BaseHandler) Project(*ProjectDecl) error           { return nil }
func (BaseHandler) UnknownStatement(string, Position) error { return nil }
