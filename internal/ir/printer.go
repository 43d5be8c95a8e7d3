// Package ir implements an illustrative tree-walking printer over a typed
// ast.Program: it renders each declaration, statement, and expression
// together with the type the semantic layer assigned it. It is not a code
// generator — this front end stops at the typed AST, matching the
// dumpASTNode-style inspection tooling the corpus favors over emitting
// any intermediate representation meant for a backend.
package ir

import (
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/ccfront/internal/ast"
)

// Printer writes a typed ast.Program to an io.Writer in a readable,
// indented form.
type Printer struct {
	w      io.Writer
	indent int
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer { return &Printer{w: w} }

func (p *Printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *Printer) nested(f func()) {
	p.indent++
	f()
	p.indent--
}

// Print renders an entire translation unit.
func (p *Printer) Print(prog *ast.Program) {
	p.line("Program (%d declarations)", len(prog.Decls))
	p.nested(func() {
		for _, d := range prog.Decls {
			p.printDecl(d)
		}
	})
}

func (p *Printer) printDecl(d ast.Decl) {
	switch n := d.(type) {
	case *ast.FuncDecl:
		kind := "declaration"
		if n.IsDefinition() {
			kind = "definition"
		}
		p.line("FuncDecl %s %s : %s", n.Name, kind, n.Ty.String())
		if n.Body != nil {
			p.nested(func() { p.printStmt(n.Body) })
		}
	case *ast.VarDecl:
		p.line("VarDecl %s : %s", n.Name, n.Ty.String())
		if n.Init != nil {
			p.nested(func() { p.printExpr(n.Init) })
		}
	case *ast.TypedefDecl:
		p.line("TypedefDecl %s : %s", n.Name, n.Ty.String())
	case *ast.TagDecl:
		p.line("TagDecl %s", n.Ty.String())
	default:
		p.line("%T", d)
	}
}

func (p *Printer) printStmt(s ast.Statement) {
	switch n := s.(type) {
	case *ast.CompoundStmt:
		p.line("CompoundStmt (%d statements)", len(n.Stmts))
		p.nested(func() {
			for _, st := range n.Stmts {
				p.printStmt(st)
			}
		})
	case *ast.DeclStmt:
		p.line("DeclStmt")
		p.nested(func() { p.printDecl(n.D) })
	case *ast.ExprStmt:
		p.line("ExprStmt")
		p.nested(func() { p.printExpr(n.X) })
	case *ast.IfStmt:
		p.line("IfStmt")
		p.nested(func() {
			p.line("cond:")
			p.nested(func() { p.printExpr(n.Cond) })
			p.line("then:")
			p.nested(func() { p.printStmt(n.Then) })
			if n.Else != nil {
				p.line("else:")
				p.nested(func() { p.printStmt(n.Else) })
			}
		})
	case *ast.SwitchStmt:
		p.line("SwitchStmt (%d cases, default=%v)", len(n.Cases), n.Default != nil)
		p.nested(func() { p.printStmt(n.Body) })
	case *ast.WhileStmt:
		p.line("WhileStmt")
		p.nested(func() { p.printStmt(n.Body) })
	case *ast.DoWhileStmt:
		p.line("DoWhileStmt")
		p.nested(func() { p.printStmt(n.Body) })
	case *ast.ForStmt:
		p.line("ForStmt")
		p.nested(func() { p.printStmt(n.Body) })
	case *ast.ReturnStmt:
		p.line("ReturnStmt")
		if n.Value != nil {
			p.nested(func() { p.printExpr(n.Value) })
		}
	case *ast.GotoStmt:
		p.line("GotoStmt %s", n.Label)
	case *ast.LabeledStmt:
		p.line("LabeledStmt %s:", n.Label)
		p.nested(func() { p.printStmt(n.Stmt) })
	case *ast.BreakStmt:
		p.line("BreakStmt")
	case *ast.ContinueStmt:
		p.line("ContinueStmt")
	case *ast.NullStmt:
		p.line("NullStmt")
	default:
		p.line("%T", s)
	}
}

func (p *Printer) printExpr(e ast.Expression) {
	switch n := e.(type) {
	case *ast.Identifier:
		p.line("Identifier %s : %s", n.Name, n.Ty.String())
	case *ast.IntLiteral:
		p.line("IntLiteral %d : %s", n.Value, n.Ty.String())
	case *ast.FloatLiteral:
		p.line("FloatLiteral %g : %s", n.Value, n.Ty.String())
	case *ast.CharLiteral:
		p.line("CharLiteral %q : %s", n.Value, n.Ty.String())
	case *ast.StringLiteral:
		p.line("StringLiteral %q : %s", n.Value, n.Ty.String())
	case *ast.UnaryExpr:
		p.line("UnaryExpr %s : %s", n.Op, n.Ty.String())
		p.nested(func() { p.printExpr(n.Operand) })
	case *ast.PostfixExpr:
		p.line("PostfixExpr %s", n.Op)
		p.nested(func() { p.printExpr(n.Operand) })
	case *ast.BinaryExpr:
		p.line("BinaryExpr %s : %s", n.Op, n.Ty.String())
		p.nested(func() {
			p.printExpr(n.Left)
			p.printExpr(n.Right)
		})
	case *ast.AssignExpr:
		p.line("AssignExpr %s", n.Op)
		p.nested(func() {
			p.printExpr(n.Left)
			p.printExpr(n.Right)
		})
	case *ast.TernaryExpr:
		p.line("TernaryExpr : %s", n.Ty.String())
		p.nested(func() {
			p.printExpr(n.Cond)
			p.printExpr(n.Then)
			p.printExpr(n.Else)
		})
	case *ast.CastExpr:
		p.line("CastExpr : %s", n.Target.String())
		p.nested(func() { p.printExpr(n.Operand) })
	case *ast.CallExpr:
		p.line("CallExpr : %s", n.Ty.String())
		p.nested(func() {
			p.printExpr(n.Callee)
			for _, a := range n.Args {
				p.printExpr(a)
			}
		})
	case *ast.MemberExpr:
		p.line("MemberExpr .%s : %s", n.Field, n.Ty.String())
		p.nested(func() { p.printExpr(n.Object) })
	case *ast.CommaExpr:
		p.line("CommaExpr")
		p.nested(func() {
			p.printExpr(n.Left)
			p.printExpr(n.Right)
		})
	case *ast.SizeofExpr:
		p.line("SizeofExpr : %s", n.Ty.String())
	case *ast.InitList:
		p.line("InitList (%d elements)", len(n.Elems))
		p.nested(func() {
			for _, el := range n.Elems {
				p.printExpr(el)
			}
		})
	default:
		p.line("%T", e)
	}
}
