// Package scope implements C99 6.2.1's scope structure: nested lexical
// scopes (file, function, block, function-prototype), each holding two
// separate namespaces (ordinary identifiers, and struct/union/enum tags),
// exactly as the original compiler's Scope class does, mangling tag names
// with a trailing '+' to keep them out of the ordinary namespace's table
// rather than giving tags a second map.
package scope

import (
	"github.com/cwbudde/ccfront/internal/ast"
	"github.com/cwbudde/ccfront/internal/diag"
	"github.com/cwbudde/ccfront/internal/types"
	"github.com/cwbudde/ccfront/pkg/token"
)

// Type identifies which of C99's four scope kinds a Scope represents.
type Type int

const (
	FunctionScope Type = iota
	FileScope
	BlockScope
	ProtoScope
)

func (t Type) String() string {
	switch t {
	case FunctionScope:
		return "function"
	case FileScope:
		return "file"
	case BlockScope:
		return "block"
	case ProtoScope:
		return "function prototype"
	default:
		return "unknown"
	}
}

// Scope holds the declarations visible at one lexical nesting level. Tags
// live in the same table as ordinary identifiers, under a name suffixed
// with '+' (tagName), so a struct "point" and a variable "point" can
// coexist without a second map, matching the original compiler's
// taggedName helper.
type Scope struct {
	typ    Type
	parent *Scope
	table  map[string]ast.Decl
}

func New(typ Type, parent *Scope) *Scope {
	return &Scope{typ: typ, parent: parent, table: make(map[string]ast.Decl)}
}

func (s *Scope) Is(typ Type) bool { return s.typ == typ }
func (s *Scope) Type() Type       { return s.typ }
func (s *Scope) Parent() *Scope   { return s.parent }

func tagName(name string) string { return name + "+" }

// Find looks up an ordinary-namespace identifier, searching enclosing
// scopes unless recursive is false.
func (s *Scope) Find(name string, recursive bool) ast.Decl {
	return s.find(name, recursive)
}

// FindTag looks up a struct/union/enum tag, searching enclosing scopes
// unless recursive is false.
func (s *Scope) FindTag(name string, recursive bool) ast.Decl {
	return s.find(tagName(name), recursive)
}

func (s *Scope) find(key string, recursive bool) ast.Decl {
	if d, ok := s.table[key]; ok {
		return d
	}
	if !recursive {
		return nil
	}
	for p := s.parent; p != nil; p = p.parent {
		if d, ok := p.table[key]; ok {
			return d
		}
	}
	return nil
}

// declName extracts the identifier a declaration introduces, so Declare
// doesn't need a separate name argument at every call site.
func declName(d ast.Decl) string {
	switch n := d.(type) {
	case *ast.VarDecl:
		return n.Name
	case *ast.FuncDecl:
		return n.Name
	case *ast.TypedefDecl:
		return n.Name
	case *ast.ParamDecl:
		return n.Name
	default:
		return ""
	}
}

// declType extracts the type a declaration introduces, mirroring declName's
// switch shape, so declare can tell a tentative redeclaration (same type)
// from a real conflict (different type).
func declType(d ast.Decl) (types.QualType, bool) {
	switch n := d.(type) {
	case *ast.VarDecl:
		return n.Ty, true
	case *ast.FuncDecl:
		return types.QualType{Type: n.Ty}, true
	case *ast.TypedefDecl:
		return n.Ty, true
	case *ast.ParamDecl:
		return n.Ty, true
	default:
		return types.QualType{}, false
	}
}

// Declare adds decl to this scope's ordinary namespace under its own
// name, reporting a redeclaration error through bag if the name is
// already bound *in this same scope* (a declaration in an outer scope is
// legally shadowed, per C99 6.2.1p4).
func (s *Scope) Declare(bag *diag.Bag, pos token.Position, d ast.Decl) ast.Decl {
	return s.declare(bag, pos, declName(d), d)
}

func (s *Scope) declare(bag *diag.Bag, pos token.Position, name string, d ast.Decl) ast.Decl {
	if prev, ok := s.table[name]; ok {
		// At file scope, a redeclaration that repeats the same type is a
		// tentative definition (C99 6.9.2) and not an error; block and
		// prototype scope have no such concept, so any duplicate there is
		// a straight redefinition error.
		if s.typ == FileScope {
			prevTy, prevOk := declType(prev)
			newTy, newOk := declType(d)
			if prevOk && newOk && prevTy.IsCompatible(newTy) {
				return prev
			}
		}
		bag.Error(pos, diag.ScopeKind, "redeclaration of %q, previously declared at %s", name, prev.Pos())
		return prev
	}
	s.table[name] = d
	return d
}

// DeclareTag adds decl to this scope's tag namespace under its tag name.
func (s *Scope) DeclareTag(bag *diag.Bag, pos token.Position, tag string, d ast.Decl) ast.Decl {
	return s.declare(bag, pos, tagName(tag), d)
}
