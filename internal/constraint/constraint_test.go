package constraint

import (
	"testing"

	"github.com/grindlemire/go-kbd/internal/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) (*element.Registry, element.Handle, element.Handle, element.Handle) {
	t.Helper()
	reg := element.New()
	key0 := reg.MustCreate(element.Key(0, 0))
	key1 := reg.MustCreate(element.Key(1, 0))
	gap := reg.MustCreate(element.RowGap(1))
	return reg, key0, key1, gap
}

func TestFormat(t *testing.T) {
	reg, key0, key1, gap := testRegistry(t)

	tests := map[string]struct {
		c    Constraint
		want string
	}{
		"absolute required": {
			c:    Absolute(Width(key0), Equal, 26),
			want: "key0x0.width == 26",
		},
		"absolute with priority": {
			c:    Absolute(Width(key0), Equal, 52).At(20),
			want: "key0x0.width == 52 @20",
		},
		"lower bound": {
			c:    Absolute(Height(gap), GreaterOrEqual, 5).At(PriorityFittingSize),
			want: "rowGap1.height >= 5 @50",
		},
		"equality": {
			c:    Eq(Width(key1), Width(key0)),
			want: "key1x0.width == key0x0.width",
		},
		"ratio": {
			c:    Eq(Width(key1), Width(key0)).Times(1.5),
			want: "key1x0.width == 1.5*key0x0.width",
		},
		"offset": {
			c:    Eq(Left(key1), Right(key0)).Plus(-6),
			want: "key1x0.left == key0x0.right - 6",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.c, reg))
		})
	}
}

func TestConstraint_Builders(t *testing.T) {
	_, key0, key1, _ := testRegistry(t)

	abs := Absolute(Height(key0), LessOrEqual, 39)
	assert.True(t, abs.IsAbsolute())
	assert.True(t, abs.Priority.IsRequired())
	assert.True(t, abs.Involves(key0))
	assert.False(t, abs.Involves(key1))
	assert.False(t, abs.Involves(element.NoHandle), "absolute constraints never involve the empty anchor")

	rel := Eq(Height(key1), Height(key0))
	assert.False(t, rel.IsAbsolute())
	assert.Equal(t, 1.0, rel.Multiplier)
	assert.True(t, rel.Involves(key0))
	assert.True(t, rel.Involves(key1))

	soft := rel.At(PriorityDefaultLow)
	assert.False(t, soft.Priority.IsRequired())
	assert.True(t, rel.Priority.IsRequired(), "At must not mutate the receiver")
}

func TestSet_Multiset(t *testing.T) {
	_, key0, key1, _ := testRegistry(t)

	a := NewSet()
	a.Add(Absolute(Width(key0), Equal, 26).At(19), Eq(Width(key1), Width(key0)))

	b := NewSet()
	b.Add(Eq(Width(key1), Width(key0)))
	b.Add(Absolute(Width(key0), Equal, 26).At(19))

	assert.Equal(t, a.Multiset(), b.Multiset())
	assert.Equal(t, 2, a.Len())

	b.Add(Eq(Width(key1), Width(key0)))
	assert.NotEqual(t, a.Multiset(), b.Multiset())
	assert.Equal(t, 2, b.Multiset()[Eq(Width(key1), Width(key0))])
}

func TestSet_Queries(t *testing.T) {
	reg, key0, key1, gap := testRegistry(t)

	s := NewSet()
	s.Add(
		Absolute(Width(key0), Equal, 26),
		Eq(Width(key1), Width(key0)),
		Absolute(Height(gap), GreaterOrEqual, 5).At(50),
	)

	assert.Len(t, s.Involving(key0), 2)
	assert.Len(t, s.Involving(gap), 1)
	assert.Len(t, s.On(Width(key1)), 1)
	assert.Empty(t, s.On(Height(key1)))

	require.Equal(t, []string{
		"key0x0.width == 26",
		"key1x0.width == key0x0.width",
		"rowGap1.height >= 5 @50",
	}, s.Strings(reg))

	var empty *Set
	assert.Equal(t, 0, empty.Len())
	assert.Nil(t, empty.All())
}
