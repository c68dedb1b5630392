// Package buildutil extracts attributes from the buildtools AST nodes that
// make up a parsed project manifest. The manifest's two call forms,
// module(name=..., deps=[...], ...) and project(source_roots=[...]),
// pass every attribute by keyword — so these helpers only need to look up
// a named keyword argument on a CallExpr, never a positional one.
package buildutil

import "github.com/bazelbuild/buildtools/build"

// String extracts the string value of a keyword argument named name from
// call. Returns "" if the argument is absent or its value is not a
// string literal.
func String(call *build.CallExpr, name string) string {
	for _, arg := range call.List {
		assign, ok := arg.(*build.AssignExpr)
		if !ok {
			continue
		}
		lhs, ok := assign.LHS.(*build.Ident)
		if !ok || lhs.Name != name {
			continue
		}
		if str, ok := assign.RHS.(*build.StringExpr); ok {
			return str.Value
		}
	}
	return ""
}

// StringList extracts the string-list value of a keyword argument named
// name from call. Returns nil if the argument is absent or not a list;
// non-string elements within a present list are skipped.
func StringList(call *build.CallExpr, name string) []string {
	for _, arg := range call.List {
		assign, ok := arg.(*build.AssignExpr)
		if !ok {
			continue
		}
		lhs, ok := assign.LHS.(*build.Ident)
		if !ok || lhs.Name != name {
			continue
		}
		list, ok := assign.RHS.(*build.ListExpr)
		if !ok {
			return nil
		}
		result := make([]string, 0, len(list.List))
		for _, elem := range list.List {
			if str, ok := elem.(*build.StringExpr); ok {
				result = append(result, str.Value)
			}
		}
		return result
	}
	return nil
}

// FuncName returns the called function's name, e.g. "module" or "project".
// Returns "" for anything other than a simple function call (a method call
// like foo.bar() has no bare name).
func FuncName(call *build.CallExpr) string {
	if ident, ok := call.X.(*build.Ident); ok {
		return ident.Name
	}
	return ""
}
