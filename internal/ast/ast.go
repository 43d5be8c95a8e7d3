// Package ast defines the typed abstract syntax tree the parser builds:
// every node already carries its resolved types.QualType, produced by
// "smart constructors" that apply C99's construction-time semantic rules
// (usual arithmetic conversions, array-to-pointer decay, lvalue-ness) the
// moment a node is built, the way the original compiler's expr.cpp make*
// functions do.
package ast

import (
	"github.com/cwbudde/ccfront/internal/types"
	"github.com/cwbudde/ccfront/pkg/token"
)

// Node is the root interface of every AST node: expressions, statements,
// and declarations alike.
type Node interface {
	Pos() token.Position
	String() string
}

// Expression is any node that yields a value and a type. IsLValue reports
// whether the expression designates an object (so it may appear as the
// left operand of assignment, or as the operand of unary &), mirroring the
// original compiler's Expr::isLValue().
type Expression interface {
	Node
	Type() types.QualType
	IsLValue() bool
	exprNode()
}

// Statement is any node that appears in a function body's statement list.
type Statement interface {
	Node
	stmtNode()
}

// Decl is any top-level or block-scope declaration.
type Decl interface {
	Node
	declNode()
}

// Program is the root of a translation unit: an ordered list of external
// declarations, matching the original compiler's TranslationUnit.
type Program struct {
	Decls []Decl
}

func (p *Program) Pos() token.Position {
	if len(p.Decls) == 0 {
		return token.Position{}
	}
	return p.Decls[0].Pos()
}

func (p *Program) String() string {
	s := ""
	for _, d := range p.Decls {
		s += d.String() + "\n"
	}
	return s
}

// base embeds a source position into every concrete node so each one need
// only implement Pos() once, via embedding.
type base struct {
	pos token.Position
}

func (b base) Pos() token.Position { return b.pos }
