package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdeeny/rocto/internal/ast"
)

func TestDefineFromFragments(t *testing.T) {
	r := NewRegistry()

	r.Define(&ast.Alias{Pos: ast.Position{Line: 1}, Register: 3, Name: "px"})
	r.Define(&ast.Label{Pos: ast.Position{Line: 2}, Name: "main"})
	r.Define(&ast.Const{Pos: ast.Position{Line: 3}, Value: -4, Name: "SPEED"})
	r.Define(&ast.Literal{Pos: ast.Position{Line: 4}, Value: 0x70})

	assert.Equal(t, map[string]int{"px": 3}, r.Aliases())
	assert.Equal(t, map[string]int{"SPEED": -4}, r.Constants())

	labels := r.Labels()
	require.Contains(t, labels, "main")
	assert.Nil(t, labels["main"], "labels are never resolved by the parser")
	assert.Equal(t, 3, r.Len())
}

func TestTablesAreIndependent(t *testing.T) {
	r := NewRegistry()
	r.DefineAlias("x", 1, ast.Position{})
	r.DefineLabel("x", ast.Position{})
	r.DefineConstant("x", 9, ast.Position{})

	assert.Equal(t, 1, r.Aliases()["x"])
	assert.Equal(t, 9, r.Constants()["x"])
	assert.Len(t, r.Labels(), 1)
	assert.Equal(t, 3, r.Len())
}

func TestNamesAreCaseSensitive(t *testing.T) {
	r := NewRegistry()
	r.DefineAlias("PX", 1, ast.Position{})
	r.DefineAlias("px", 2, ast.Position{})

	assert.Equal(t, map[string]int{"PX": 1, "px": 2}, r.Aliases())
}

func TestViewsAreCopies(t *testing.T) {
	r := NewRegistry()
	r.DefineAlias("px", 3, ast.Position{})

	view := r.Aliases()
	view["py"] = 4

	assert.NotContains(t, r.Aliases(), "py")
}

func TestRedefinitionReplaces(t *testing.T) {
	r := NewRegistry()
	r.DefineAlias("px", 3, ast.Position{Line: 1})
	r.DefineAlias("px", 5, ast.Position{Line: 7})

	assert.Equal(t, 5, r.Aliases()["px"])
	syms := r.Symbols(KindAlias)
	require.Len(t, syms, 1)
	assert.Equal(t, 7, syms[0].Position.Line)
}

func TestSymbolsSorted(t *testing.T) {
	r := NewRegistry()
	r.DefineLabel("zeta", ast.Position{})
	r.DefineLabel("alpha", ast.Position{})
	r.DefineLabel("comp-LT", ast.Position{})

	var names []string
	for _, s := range r.Symbols(KindLabel) {
		names = append(names, s.Name)
		assert.Equal(t, KindLabel, s.Kind)
	}
	assert.Equal(t, []string{"alpha", "comp-LT", "zeta"}, names)
}

func TestMerge(t *testing.T) {
	session := NewRegistry()
	session.DefineAlias("px", 3, ast.Position{})
	session.DefineConstant("SPEED", 1, ast.Position{})

	next := NewRegistry()
	next.DefineAlias("py", 4, ast.Position{})
	next.DefineConstant("SPEED", 2, ast.Position{})
	next.DefineLabel("main", ast.Position{Line: 9})

	session.Merge(next)
	session.Merge(nil)

	assert.Equal(t, map[string]int{"px": 3, "py": 4}, session.Aliases())
	assert.Equal(t, map[string]int{"SPEED": 2}, session.Constants())
	assert.Contains(t, session.Labels(), "main")
	assert.Equal(t, 9, session.Symbols(KindLabel)[0].Position.Line)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "alias", KindAlias.String())
	assert.Equal(t, "label", KindLabel.String())
	assert.Equal(t, "constant", KindConstant.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
