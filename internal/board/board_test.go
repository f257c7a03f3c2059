package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterFirstFree(t *testing.T) {
	b := New[string](2)
	require.Equal(t, 2, b.Len())
	require.Equal(t, 0, b.Bound())

	foo, bar, baz := "foo", "bar", "baz"
	g0, slot, ok := b.Register(&foo)
	require.True(t, ok)
	require.Equal(t, 0, slot)
	g1, slot, ok := b.Register(&bar)
	require.True(t, ok)
	require.Equal(t, 1, slot)

	_, slot, ok = b.Register(&baz)
	require.False(t, ok)
	require.Equal(t, -1, slot)

	g0.Release()
	g2, slot, ok := b.Register(&baz)
	require.True(t, ok)
	require.Equal(t, 0, slot)

	var seen []string
	b.Each(func(slot int, v *string) { seen = append(seen, *v) })
	require.Equal(t, []string{"baz", "bar"}, seen)

	g1.Release()
	g2.Release()
	require.Equal(t, 0, b.Bound())
}

func TestEmptyBoard(t *testing.T) {
	b := New[int](-1)
	require.Equal(t, 0, b.Len())
	n := 1
	_, _, ok := b.Register(&n)
	require.False(t, ok)
	b.Each(func(int, *int) { t.Fatal("unexpected slot") })
}

func TestFuncSlots(t *testing.T) {
	b := New[func(string)](3)
	var got []string
	fn := func(s string) { got = append(got, "a:"+s) }
	g, _, ok := b.Register(&fn)
	require.True(t, ok)

	b.Each(func(_ int, f *func(string)) { (*f)("x") })
	g.Release()
	b.Each(func(_ int, f *func(string)) { (*f)("y") })
	require.Equal(t, []string{"a:x"}, got)
}
