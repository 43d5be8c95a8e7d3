package types

import (
	"github.com/cwbudde/ccfront/internal/diag"
	"github.com/cwbudde/ccfront/pkg/token"
)

func testBag() *diag.Bag { return diag.NewBag("t.c", "") }

func testPos() token.Position { return token.Position{Line: 1, Column: 1} }
