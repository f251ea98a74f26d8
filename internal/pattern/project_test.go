package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/excheck/internal/space"
)

func TestProjectWildcard(t *testing.T) {
	shapes := []*space.Shape{
		space.Bool(),
		space.Enum("Color", "Red", "Green", "Blue"),
		space.Product("Pair", space.Field{Name: "a", Shape: space.Bool()}),
		space.Sum("Cmd", space.Alt{Name: "Stop"}),
		space.Open("Widget"),
	}
	for _, sh := range shapes {
		sp, err := Project(Arm{Pattern: Wildcard()}, sh)
		require.NoError(t, err)
		assert.Equal(t, SpaceFull, sp.Kind, "shape %s", sh.Name)
	}
}

func TestProjectGuardedArm(t *testing.T) {
	// The guard's content is never analyzed; even a wildcard behind a
	// guard covers nothing.
	sp, err := Project(Arm{Pattern: Wildcard(), Guarded: true}, space.Bool())
	require.NoError(t, err)
	assert.True(t, sp.IsEmpty())
}

func TestProjectLiteral(t *testing.T) {
	sh := space.Enum("Color", "Red", "Green", "Blue")

	sp, err := Project(Arm{Pattern: Literal("Green")}, sh)
	require.NoError(t, err)
	assert.Equal(t, SpaceTag, sp.Kind)
	assert.Equal(t, "Green", sp.Tag)

	_, err = Project(Arm{Pattern: Literal("Purple")}, sh)
	require.Error(t, err)
	var malformed *MalformedError
	assert.ErrorAs(t, err, &malformed)
}

func TestProjectStruct(t *testing.T) {
	sh := space.Product("Flags",
		space.Field{Name: "a", Shape: space.Bool()},
		space.Field{Name: "b", Shape: space.Bool()},
	)

	t.Run("per-field spaces", func(t *testing.T) {
		sp, err := Project(Arm{Pattern: Struct(Literal("true"), Wildcard())}, sh)
		require.NoError(t, err)
		require.Equal(t, SpaceProduct, sp.Kind)
		require.Len(t, sp.Fields, 2)
		assert.Equal(t, SpaceTag, sp.Fields[0].Kind)
		assert.Equal(t, SpaceFull, sp.Fields[1].Kind)
	})

	t.Run("arity mismatch is malformed", func(t *testing.T) {
		_, err := Project(Arm{Pattern: Struct(Wildcard())}, sh)
		require.Error(t, err)
		var malformed *MalformedError
		assert.ErrorAs(t, err, &malformed)
	})

	t.Run("destructuring a non-product is malformed", func(t *testing.T) {
		_, err := Project(Arm{Pattern: Struct(Wildcard())}, space.Bool())
		require.Error(t, err)
	})
}

func TestProjectAlt(t *testing.T) {
	sh := space.Sum("Cmd",
		space.Alt{Name: "Stop"},
		space.Alt{Name: "Move", Payload: space.Enum("Dir", "Left", "Right")},
	)

	t.Run("bare selection covers the whole payload", func(t *testing.T) {
		sp, err := Project(Arm{Pattern: Alt("Stop", nil)}, sh)
		require.NoError(t, err)
		require.Equal(t, SpaceAlt, sp.Kind)
		assert.Equal(t, "Stop", sp.Alt)
		assert.Equal(t, SpaceFull, sp.Sub.Kind)
	})

	t.Run("nested pattern recurses into the payload", func(t *testing.T) {
		left := Literal("Left")
		sp, err := Project(Arm{Pattern: Alt("Move", &left)}, sh)
		require.NoError(t, err)
		require.Equal(t, SpaceAlt, sp.Kind)
		assert.Equal(t, SpaceTag, sp.Sub.Kind)
		assert.Equal(t, "Left", sp.Sub.Tag)
	})

	t.Run("unknown alternative is malformed", func(t *testing.T) {
		_, err := Project(Arm{Pattern: Alt("Jump", nil)}, sh)
		require.Error(t, err)
		var malformed *MalformedError
		assert.ErrorAs(t, err, &malformed)
	})
}

func TestProjectCase(t *testing.T) {
	sh := space.Product("Flags",
		space.Field{Name: "a", Shape: space.Bool()},
		space.Field{Name: "b", Shape: space.Bool()},
	)
	v := space.ProductValue(space.TagValue("false"), space.TagValue("true"))

	t.Run("structural equality lowers to singletons", func(t *testing.T) {
		sp, err := Project(Arm{Pattern: Case(v, true)}, sh)
		require.NoError(t, err)
		require.Equal(t, SpaceProduct, sp.Kind)
		assert.Equal(t, "false", sp.Fields[0].Tag)
		assert.Equal(t, "true", sp.Fields[1].Tag)
	})

	t.Run("user-defined equality is opaque", func(t *testing.T) {
		sp, err := Project(Arm{Pattern: Case(v, false)}, sh)
		require.NoError(t, err)
		assert.True(t, sp.IsEmpty())
	})

	t.Run("value not fitting the shape is malformed", func(t *testing.T) {
		_, err := Project(Arm{Pattern: Case(space.TagValue("Red"), true)}, sh)
		require.Error(t, err)
	})
}

func TestProjectOpenShape(t *testing.T) {
	sh := space.Open("Widget")

	// Nothing but a wildcard makes progress against an open shape, and
	// none of it is an error.
	patterns := []Pattern{
		Literal("x"),
		Struct(Wildcard()),
		Alt("Anything", nil),
		Case(space.TagValue("x"), true),
	}
	for _, p := range patterns {
		sp, err := Project(Arm{Pattern: p}, sh)
		require.NoError(t, err)
		assert.True(t, sp.IsEmpty(), "pattern kind %s", p.Kind)
	}
}
