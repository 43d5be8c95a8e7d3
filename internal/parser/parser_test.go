package parser

import (
	"testing"

	"github.com/cwbudde/ccfront/internal/ast"
	"github.com/cwbudde/ccfront/internal/diag"
	"github.com/cwbudde/ccfront/internal/lexer"
	"github.com/cwbudde/ccfront/internal/source"
	"github.com/cwbudde/ccfront/internal/types"
	"github.com/cwbudde/ccfront/internal/uchar"
)

func parse(t *testing.T, src string) (*ast.Program, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag("test.c", src)
	stream := source.New("test.c", src)
	lex := lexer.New(stream, bag, uchar.NewInterner())
	p := New(lex, bag)
	prog, _ := p.Parse()
	return prog, bag
}

func requireNoErrors(t *testing.T, bag *diag.Bag) {
	t.Helper()
	if bag.HasErrors() {
		for _, d := range bag.Diagnostics {
			t.Logf("%s: %s", d.Severity, d.Message)
		}
		t.Fatalf("unexpected errors")
	}
}

func TestParseSimpleVarDecl(t *testing.T) {
	prog, bag := parse(t, "int x = 5;")
	requireNoErrors(t, bag)
	if len(prog.Decls) != 1 {
		t.Fatalf("want 1 decl, got %d", len(prog.Decls))
	}
	vd, ok := prog.Decls[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("want *ast.VarDecl, got %T", prog.Decls[0])
	}
	if vd.Name != "x" {
		t.Errorf("Name = %q, want x", vd.Name)
	}
	lit, ok := vd.Init.(*ast.IntLiteral)
	if !ok || lit.Value != 5 {
		t.Errorf("Init = %#v, want IntLiteral(5)", vd.Init)
	}
}

func TestDeclaratorArrayOfPointer(t *testing.T) {
	prog, bag := parse(t, "int *a[3];")
	requireNoErrors(t, bag)
	vd := prog.Decls[0].(*ast.VarDecl)
	arr, ok := vd.Ty.Type.(*types.ArrayType)
	if !ok {
		t.Fatalf("want array type, got %s", vd.Ty.String())
	}
	if arr.Bound != 3 {
		t.Errorf("Bound = %d, want 3", arr.Bound)
	}
	if _, ok := arr.Elem.Type.(*types.PointerType); !ok {
		t.Errorf("element type = %s, want pointer", arr.Elem.String())
	}
}

func TestDeclaratorPointerToArray(t *testing.T) {
	prog, bag := parse(t, "int (*a)[3];")
	requireNoErrors(t, bag)
	vd := prog.Decls[0].(*ast.VarDecl)
	ptr, ok := vd.Ty.Type.(*types.PointerType)
	if !ok {
		t.Fatalf("want pointer type, got %s", vd.Ty.String())
	}
	arr, ok := ptr.Base.Type.(*types.ArrayType)
	if !ok {
		t.Fatalf("pointer base = %s, want array", ptr.Base.String())
	}
	if arr.Bound != 3 {
		t.Errorf("Bound = %d, want 3", arr.Bound)
	}
}

func TestFunctionPrototypeAndDefinition(t *testing.T) {
	prog, bag := parse(t, "int add(int a, int b) { return a + b; }")
	requireNoErrors(t, bag)
	fd, ok := prog.Decls[0].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("want *ast.FuncDecl, got %T", prog.Decls[0])
	}
	if !fd.IsDefinition() {
		t.Errorf("IsDefinition() = false, want true")
	}
	if len(fd.Params) != 2 {
		t.Fatalf("want 2 params, got %d", len(fd.Params))
	}
	if len(fd.Body.Stmts) != 1 {
		t.Fatalf("want 1 body statement, got %d", len(fd.Body.Stmts))
	}
	if _, ok := fd.Body.Stmts[0].(*ast.ReturnStmt); !ok {
		t.Errorf("body stmt = %T, want *ast.ReturnStmt", fd.Body.Stmts[0])
	}
}

func TestStructForwardDeclarationThenCompletion(t *testing.T) {
	prog, bag := parse(t, "struct point; struct point { int x; int y; }; struct point p;")
	requireNoErrors(t, bag)
	vd, ok := prog.Decls[2].(*ast.VarDecl)
	if !ok {
		t.Fatalf("want *ast.VarDecl, got %T", prog.Decls[2])
	}
	st, ok := vd.Ty.Type.(*types.StructType)
	if !ok {
		t.Fatalf("want struct type, got %s", vd.Ty.String())
	}
	if !st.IsComplete() || len(st.Members) != 2 {
		t.Errorf("struct not completed: complete=%v members=%d", st.IsComplete(), len(st.Members))
	}
}

func TestEnumeratorValueAsArrayBound(t *testing.T) {
	prog, bag := parse(t, "enum color { RED, GREEN, BLUE = 10 }; int sizes[BLUE];")
	requireNoErrors(t, bag)
	vd, ok := prog.Decls[1].(*ast.VarDecl)
	if !ok {
		t.Fatalf("want *ast.VarDecl, got %T", prog.Decls[1])
	}
	arr, ok := vd.Ty.Type.(*types.ArrayType)
	if !ok {
		t.Fatalf("want array type, got %s", vd.Ty.String())
	}
	if arr.Bound != 10 {
		t.Errorf("Bound = %d, want 10", arr.Bound)
	}
}

func TestDeclarationVsExpressionLookaheadWithTypedef(t *testing.T) {
	prog, bag := parse(t, "typedef int myint; void f(void) { myint x; x = 1; }")
	requireNoErrors(t, bag)
	if _, ok := prog.Decls[0].(*ast.TypedefDecl); !ok {
		t.Fatalf("want *ast.TypedefDecl, got %T", prog.Decls[0])
	}
	fd, ok := prog.Decls[1].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("want *ast.FuncDecl, got %T", prog.Decls[1])
	}
	if _, ok := fd.Body.Stmts[0].(*ast.DeclStmt); !ok {
		t.Errorf("'myint x;' should parse as a DeclStmt (typedef lookahead), got %T", fd.Body.Stmts[0])
	}
	if _, ok := fd.Body.Stmts[1].(*ast.ExprStmt); !ok {
		t.Errorf("'x = 1;' should parse as an ExprStmt, got %T", fd.Body.Stmts[1])
	}
}

func TestArrayBoundInferredFromInitializerList(t *testing.T) {
	prog, bag := parse(t, "int a[] = {1, 2, 3};")
	requireNoErrors(t, bag)
	vd := prog.Decls[0].(*ast.VarDecl)
	arr, ok := vd.Ty.Type.(*types.ArrayType)
	if !ok {
		t.Fatalf("want array type, got %s", vd.Ty.String())
	}
	if arr.Bound != 3 {
		t.Errorf("Bound = %d, want 3", arr.Bound)
	}
}

func TestArrayBoundInferredFromStringLiteral(t *testing.T) {
	prog, bag := parse(t, `char s[] = "hi";`)
	requireNoErrors(t, bag)
	vd := prog.Decls[0].(*ast.VarDecl)
	arr, ok := vd.Ty.Type.(*types.ArrayType)
	if !ok {
		t.Fatalf("want array type, got %s", vd.Ty.String())
	}
	if arr.Bound != 3 {
		t.Errorf("Bound = %d, want 3 (\"hi\" + NUL)", arr.Bound)
	}
}

func TestBreakOutsideLoopOrSwitchIsAnError(t *testing.T) {
	_, bag := parse(t, "int f(void) { break; return 0; }")
	if !bag.HasErrors() {
		t.Fatalf("want an error for 'break' outside loop/switch")
	}
}

func TestIntegerPromotionInBinaryExpression(t *testing.T) {
	prog, bag := parse(t, "int f(void) { char a; int b; return a + b; }")
	requireNoErrors(t, bag)
	fd := prog.Decls[0].(*ast.FuncDecl)
	ret := fd.Body.Stmts[2].(*ast.ReturnStmt)
	bin := ret.Value.(*ast.BinaryExpr)
	nt, ok := bin.Type().Type.(*types.NumberType)
	if !ok || !nt.IsInt() {
		t.Errorf("binary result type = %s, want int", bin.Type().String())
	}
}

func TestGotoUndeclaredLabelIsAnError(t *testing.T) {
	_, bag := parse(t, "int f(void) { goto nope; return 0; }")
	if !bag.HasErrors() {
		t.Fatalf("want an error for a goto to an undeclared label")
	}
}

func TestGotoDeclaredLabelIsFine(t *testing.T) {
	_, bag := parse(t, "int f(void) { goto there; there: return 0; }")
	requireNoErrors(t, bag)
}
