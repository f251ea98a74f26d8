package check

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/excheck/internal/pattern"
	"github.com/gnolang/excheck/internal/space"
)

func TestLoadDocuments(t *testing.T) {
	t.Run("multi-document stream", func(t *testing.T) {
		docs, err := LoadDocuments(matchdoc("traffic.yaml"))
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "traffic light", docs[0].Name)
		assert.Equal(t, "traffic light with fallback", docs[1].Name)
	})

	t.Run("document without arms fails validation", func(t *testing.T) {
		_, err := LoadDocuments(testdata("config.yaml"))
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadDocuments(testdata("nope.yaml"))
		require.Error(t, err)
	})

	t.Run("unknown pattern kind fails validation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		content := `name: bad
scrutinee: {kind: bool}
arms:
  - pattern: {kind: regex}
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		_, err := LoadDocuments(path)
		require.Error(t, err)
	})
}

func TestShapeDocConversion(t *testing.T) {
	t.Run("bool shorthand", func(t *testing.T) {
		sh, err := ShapeDoc{Kind: "bool"}.Shape()
		require.NoError(t, err)
		assert.Equal(t, space.KindEnum, sh.Kind)
		assert.Equal(t, []string{"false", "true"}, sh.Tags)
	})

	t.Run("sum with implicit state", func(t *testing.T) {
		doc := ShapeDoc{
			Kind:     "sum",
			Name:     "Command",
			Implicit: true,
			Alts: []AltDoc{
				{Name: "Stop"},
				{Name: "Go", Payload: &ShapeDoc{Kind: "bool"}},
			},
		}
		sh, err := doc.Shape()
		require.NoError(t, err)
		assert.Equal(t, space.KindSum, sh.Kind)
		assert.True(t, sh.Implicit)
		stop, ok := sh.AltNamed("Stop")
		require.True(t, ok)
		assert.Equal(t, space.KindProduct, stop.Payload.Kind)
	})

	t.Run("enum without tags", func(t *testing.T) {
		_, err := ShapeDoc{Kind: "enum", Name: "E"}.Shape()
		require.Error(t, err)
	})

	t.Run("sum without alternatives", func(t *testing.T) {
		_, err := ShapeDoc{Kind: "sum", Name: "S"}.Shape()
		require.Error(t, err)
	})
}

func TestPatternDocConversion(t *testing.T) {
	doc := PatternDoc{
		Kind: "alt",
		Alt:  "Move",
		Sub:  &PatternDoc{Kind: "literal", Tag: "Left"},
	}
	p := doc.Pattern()
	assert.Equal(t, pattern.KindAlt, p.Kind)
	assert.Equal(t, "Move", p.Alt)
	require.NotNil(t, p.Sub)
	assert.Equal(t, pattern.KindLiteral, p.Sub.Kind)

	caseDoc := PatternDoc{
		Kind:       "case",
		Structural: true,
		Value: &ValueDoc{Fields: []ValueDoc{
			{Tag: "false"},
			{Alt: "Move", Payload: &ValueDoc{Tag: "Left"}},
		}},
	}
	p = caseDoc.Pattern()
	assert.Equal(t, pattern.KindCase, p.Kind)
	assert.True(t, p.StructuralEq)
	require.NotNil(t, p.Value)
	assert.Equal(t, "[false, Move(Left)]", p.Value.String())
}
