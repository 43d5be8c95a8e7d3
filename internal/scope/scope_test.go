package scope

import (
	"testing"

	"github.com/cwbudde/ccfront/internal/ast"
	"github.com/cwbudde/ccfront/internal/diag"
	"github.com/cwbudde/ccfront/internal/types"
	"github.com/cwbudde/ccfront/pkg/token"
)

func testBag() *diag.Bag { return diag.NewBag("t.c", "") }
func testPos() token.Position { return token.Position{Line: 1, Column: 1} }

func intQT() types.QualType { return types.QualType{Type: types.NumberTypeOf(types.SpecInt)} }

func TestDeclareAndFindInSameScope(t *testing.T) {
	s := New(BlockScope, nil)
	bag := testBag()
	d := ast.NewVarDecl(testPos(), "x", intQT(), types.SCNone, nil)
	s.Declare(bag, testPos(), d)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics)
	}
	if got := s.Find("x", false); got != d {
		t.Error("Find should return the just-declared decl")
	}
}

func TestRedeclarationInSameScopeErrors(t *testing.T) {
	s := New(BlockScope, nil)
	bag := testBag()
	d1 := ast.NewVarDecl(testPos(), "x", intQT(), types.SCNone, nil)
	d2 := ast.NewVarDecl(testPos(), "x", intQT(), types.SCNone, nil)
	s.Declare(bag, testPos(), d1)
	func() { defer bag.Recover(); s.Declare(bag, testPos(), d2) }()
	if !bag.HasErrors() {
		t.Error("redeclaring a name in the same scope should error")
	}
}

func TestFileScopeSameTypeRedeclarationAccepted(t *testing.T) {
	s := New(FileScope, nil)
	bag := testBag()
	d1 := ast.NewVarDecl(testPos(), "x", intQT(), types.SCNone, nil)
	d2 := ast.NewVarDecl(testPos(), "x", intQT(), types.SCNone, nil)
	s.Declare(bag, testPos(), d1)
	s.Declare(bag, testPos(), d2)
	if bag.HasErrors() {
		t.Fatalf("int x; int x; at file scope should be accepted: %v", bag.Diagnostics)
	}
}

func TestFileScopeDifferentTypeRedeclarationErrors(t *testing.T) {
	s := New(FileScope, nil)
	bag := testBag()
	floatQT := types.QualType{Type: types.NumberTypeOf(types.SpecFloat)}
	d1 := ast.NewVarDecl(testPos(), "x", intQT(), types.SCNone, nil)
	d2 := ast.NewVarDecl(testPos(), "x", floatQT, types.SCNone, nil)
	s.Declare(bag, testPos(), d1)
	func() { defer bag.Recover(); s.Declare(bag, testPos(), d2) }()
	if !bag.HasErrors() {
		t.Error("int x; float x; at file scope should be rejected")
	}
}

func TestInnerScopeShadowsOuter(t *testing.T) {
	outer := New(FileScope, nil)
	bag := testBag()
	d1 := ast.NewVarDecl(testPos(), "x", intQT(), types.SCNone, nil)
	outer.Declare(bag, testPos(), d1)

	inner := New(BlockScope, outer)
	d2 := ast.NewVarDecl(testPos(), "x", intQT(), types.SCNone, nil)
	inner.Declare(bag, testPos(), d2)
	if bag.HasErrors() {
		t.Fatalf("shadowing an outer declaration must not error: %v", bag.Diagnostics)
	}
	if got := inner.Find("x", true); got != d2 {
		t.Error("inner scope lookup should find the inner declaration")
	}
	if got := outer.Find("x", true); got != d1 {
		t.Error("outer scope must still see its own declaration")
	}
}

func TestFindRecursesToParent(t *testing.T) {
	outer := New(FileScope, nil)
	bag := testBag()
	d := ast.NewVarDecl(testPos(), "g", intQT(), types.SCNone, nil)
	outer.Declare(bag, testPos(), d)

	inner := New(BlockScope, outer)
	if got := inner.Find("g", true); got != d {
		t.Error("recursive find should reach the parent scope")
	}
	if got := inner.Find("g", false); got != nil {
		t.Error("non-recursive find must not see the parent scope")
	}
}

func TestTagNamespaceIsDistinctFromOrdinary(t *testing.T) {
	s := New(FileScope, nil)
	bag := testBag()
	st := types.NewStructType("point", false)
	tagDecl := ast.NewTagDecl(testPos(), st)
	s.DeclareTag(bag, testPos(), "point", tagDecl)

	varDecl := ast.NewVarDecl(testPos(), "point", intQT(), types.SCNone, nil)
	s.Declare(bag, testPos(), varDecl)
	if bag.HasErrors() {
		t.Fatalf("a tag and an ordinary identifier with the same spelling must not collide: %v", bag.Diagnostics)
	}
	if s.FindTag("point", true) != tagDecl {
		t.Error("FindTag should resolve the tag declaration")
	}
	if s.Find("point", true) != varDecl {
		t.Error("Find should resolve the ordinary declaration")
	}
}
