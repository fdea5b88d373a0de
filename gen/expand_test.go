package gen

import (
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refined-go/refined/commonerrors"
)

func TestBindingsAllExpand(t *testing.T) {
	files, err := ExpandAll(Bindings())
	require.NoError(t, err)
	require.Len(t, files, len(Bindings()))
	seen := map[string]bool{}
	for _, f := range files {
		assert.False(t, seen[f.RelativePath], "duplicate file %q", f.RelativePath)
		seen[f.RelativePath] = true
		assert.True(t, strings.HasSuffix(f.RelativePath, "_gen.go"))
		assert.NotEmpty(t, f.Data)
	}
}

func TestExpandOutputIsWellFormed(t *testing.T) {
	index, err := Index(Bindings())
	require.NoError(t, err)
	for _, b := range Bindings() {
		t.Run(b.TypeName, func(t *testing.T) {
			f, err := Expand(b, index)
			require.NoError(t, err)
			fset := token.NewFileSet()
			parsed, err := parser.ParseFile(fset, f.RelativePath, f.Data, parser.ParseComments)
			require.NoError(t, err)
			assert.Equal(t, "numerics", parsed.Name.Name)
			formatted, err := format.Source(f.Data)
			require.NoError(t, err)
			assert.Equal(t, f.Data, formatted, "output must already be gofmt-formatted")
		})
	}
}

func TestExpandRejectsMalformedBinding(t *testing.T) {
	b := validBinding()
	b.PredicateExpr = ""
	_, err := Expand(b, map[string]Binding{b.TypeName: b})
	require.Error(t, err)
	assert.ErrorIs(t, err, commonerrors.ErrInvalid)
	assert.Contains(t, err.Error(), b.TypeName)
}

func TestExpandRejectsUnknownWidenTarget(t *testing.T) {
	b := validBinding()
	b.Widens = []string{"PosZQuad"}
	_, err := Expand(b, map[string]Binding{b.TypeName: b})
	require.Error(t, err)
	assert.ErrorIs(t, err, commonerrors.ErrUndefined)
	assert.Contains(t, err.Error(), "PosZQuad")
}

func TestIndexRejectsDuplicateTypeName(t *testing.T) {
	_, err := Index([]Binding{validBinding(), validBinding()})
	require.Error(t, err)
	assert.ErrorIs(t, err, commonerrors.ErrConflict)
}

func TestExpandGolden(t *testing.T) {
	index, err := Index(Bindings())
	require.NoError(t, err)
	f, err := Expand(index["PosInt"], index)
	require.NoError(t, err)
	g := goldie.New(t)
	g.Assert(t, "posint", f.Data)
}

// The committed definitions must match the binding table byte for byte.
func TestGeneratedFilesUpToDate(t *testing.T) {
	files, err := ExpandAll(Bindings())
	require.NoError(t, err)
	for _, f := range files {
		committed, err := os.ReadFile(filepath.Join("..", "numerics", f.RelativePath))
		require.NoError(t, err, "missing %q; rerun go generate ./numerics", f.RelativePath)
		assert.Equal(t, string(committed), string(f.Data), "%q is out of date; rerun go generate ./numerics", f.RelativePath)
	}
}
