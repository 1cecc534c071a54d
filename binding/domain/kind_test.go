package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindDecode_Lists(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	cases := []struct {
		name string
		kind Kind
		raw  []string
		want any
	}{
		{"repeated ints", KindIDs, []string{"1", "2", "3"}, []int{1, 2, 3}},
		{"comma ints", KindIDs, []string{"1,2", "3"}, []int{1, 2, 3}},
		{"strings", KindIDs, []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"uuids keep order", KindIDs, []string{b.String(), a.String()}, []uuid.UUID{b, a}},
		{"mixed falls back to strings", KindIDs, []string{"1", "a"}, []string{"1", "a"}},
		{"present but empty", KindIDs, []string{""}, []int{}},
		{"typed strings keep digits", KindStrings, []string{"1", "2"}, []string{"1", "2"}},
		{"typed uuids", KindUUIDs, []string{a.String()}, []uuid.UUID{a}},
		{"single value is a one element list", KindInts, []string{"7"}, []int{7}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.kind.Decode("ids", tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestKindDecode_Scalars(t *testing.T) {
	v, err := KindString.Decode("field", []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	v, err = KindString.Decode("field", []string{""})
	require.NoError(t, err)
	assert.Equal(t, "", v)

	v, err = KindInt.Decode("limit", []string{"42"})
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	id := uuid.New()
	v, err = KindUUID.Decode("id", []string{id.String()})
	require.NoError(t, err)
	assert.Equal(t, id, v)
}

func TestKindDecode_ShapeMismatch(t *testing.T) {
	_, err := KindString.Decode("field", []string{"a", "b"})
	var shape *ShapeMismatchError
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, "field", shape.Key)
	assert.Equal(t, "string", shape.Expected)
	assert.Equal(t, "list", shape.Received)

	_, err = KindInts.Decode("ids", []string{"1", "x"})
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, "[]int", shape.Expected)
	assert.Equal(t, "x", shape.Value)
	assert.Contains(t, err.Error(), `"ids"`)

	_, err = KindUUID.Decode("id", []string{"{" + uuid.NewString() + "}"})
	require.ErrorAs(t, err, &shape)
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("")
	assert.True(t, ok)
	assert.Equal(t, KindString, k)

	k, ok = ParseKind(" []id ")
	assert.True(t, ok)
	assert.Equal(t, KindIDs, k)
	assert.True(t, k.IsList())

	_, ok = ParseKind("float")
	assert.False(t, ok)
}

func TestCloneValue_CopiesLists(t *testing.T) {
	orig := []int{1, 2}
	c := CloneValue(orig).([]int)
	c[0] = 9
	assert.Equal(t, []int{1, 2}, orig)
	assert.Equal(t, "x", CloneValue("x"))
}
