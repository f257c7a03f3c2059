package sc

import (
	"reflect"
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsEmpty(t *testing.T) {
	c := New[string]()
	v, ok := c.Get()
	require.False(t, ok)
	require.Nil(t, v)
	require.True(t, c.IsNone())
	require.False(t, c.IsSome())

	var zero Cell[string]
	require.True(t, zero.IsNone())
}

func TestBindAndRelease(t *testing.T) {
	c := New[string]()
	s := "foo"
	g := c.Bind(&s)
	v, ok := c.Get()
	require.True(t, ok)
	require.Same(t, &s, v)
	require.True(t, c.IsSome())

	g.Release()
	v, ok = c.Get()
	require.False(t, ok)
	require.Nil(t, v)
}

func TestNestedScopes(t *testing.T) {
	c := New[string]()
	require.True(t, c.IsNone())
	func() {
		s := "inner"
		g := c.Bind(&s)
		defer g.Release()
		v, ok := c.Get()
		require.True(t, ok)
		require.Equal(t, "inner", *v)
	}()
	require.True(t, c.IsNone())
}

func TestRepeatedGet(t *testing.T) {
	c := New[int]()
	for i := 0; i < 3; i++ {
		_, ok := c.Get()
		require.False(t, ok)
	}
	n := 42
	g := c.Bind(&n)
	defer g.Release()
	for i := 0; i < 3; i++ {
		v, ok := c.Get()
		require.True(t, ok)
		require.Same(t, &n, v)
	}
}

func TestRebindAfterRelease(t *testing.T) {
	c := New[string]()
	a, b := "a", "b"

	g := c.Bind(&a)
	g.Release()
	require.True(t, c.IsNone())

	g = c.Bind(&b)
	v, ok := c.Get()
	require.True(t, ok)
	require.Same(t, &b, v)
	g.Release()
	require.True(t, c.IsNone())
}

func TestMapMatchesGet(t *testing.T) {
	c := New[string]()
	condition := func(s string, bound bool) bool {
		f := func(v *string) int { return len(*v) + strings.Count(*v, "a") }
		if bound {
			g := c.Bind(&s)
			defer g.Release()
		}
		got, gotOK := Map(c, f)
		v, ok := c.Get()
		if !ok {
			return !gotOK && got == 0
		}
		return gotOK && got == f(v)
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
	require.True(t, c.IsNone())
}

func TestMap(t *testing.T) {
	c := New[string]()
	func() {
		s := "foo"
		g := c.Bind(&s)
		defer g.Release()
		got, ok := Map(c, func(v *string) string { return *v + "bar" })
		require.True(t, ok)
		require.Equal(t, "foobar", got)
	}()
	got, ok := Map(c, func(v *string) string { return *v + "bar" })
	require.False(t, ok)
	require.Equal(t, "", got)
}

func TestDo(t *testing.T) {
	c := New[[]string]()
	var calls int
	require.False(t, c.Do(func(*[]string) { calls++ }))
	require.Equal(t, 0, calls)

	logs := []string{}
	g := c.Bind(&logs)
	require.True(t, c.Do(func(v *[]string) { *v = append(*v, "x") }))
	g.Release()
	require.Equal(t, []string{"x"}, logs)
}

func TestWithReleasesOnPanic(t *testing.T) {
	c := New[int]()
	n := 1
	require.Panics(t, func() {
		c.With(&n, func() {
			require.True(t, c.IsSome())
			panic("boom")
		})
	})
	require.True(t, c.IsNone())

	var seen int
	c.With(&n, func() {
		c.Do(func(v *int) { seen = *v })
	})
	require.Equal(t, 1, seen)
	require.True(t, c.IsNone())
}

func TestTryBind(t *testing.T) {
	c := New[string]()
	a, b := "a", "b"

	g, err := c.TryBind(&a)
	require.NoError(t, err)

	_, err = c.TryBind(&b)
	require.ErrorIs(t, err, ErrBound)
	v, _ := c.Get()
	require.Same(t, &a, v)

	g.Release()
	g, err = c.TryBind(&b)
	require.NoError(t, err)
	g.Release()
}

func TestBindNil(t *testing.T) {
	c := New[string]()
	g := c.Bind(nil)
	require.True(t, c.IsNone())
	require.False(t, g.Active())
	g.Release()
	require.True(t, c.IsNone())
}

func TestCopiedCellIsEmpty(t *testing.T) {
	var c Cell[string]
	s := "foo"
	g := c.Bind(&s)
	defer g.Release()

	var cp Cell[string]
	copyCell(&cp, &c)
	assert.True(t, cp.IsNone())
	assert.True(t, c.IsSome())

	g2 := cp.Bind(&s)
	assert.True(t, cp.IsSome())
	g2.Release()
	assert.True(t, cp.IsNone())
	assert.True(t, c.IsSome())
}

// A guard that is never released leaves the cell reporting a value whose
// scope has ended. The memory is still valid because the cell keeps it
// reachable, but the binding is stale.
func TestLeakedGuardLeavesStaleValue(t *testing.T) {
	c := New[string]()
	func() {
		s := "foo"
		_ = c.Bind(&s)
	}()
	v, ok := c.Get()
	require.True(t, ok)
	require.Equal(t, "foo", *v)
}

func TestBindAllocs(t *testing.T) {
	c := New[int]()
	n := 7
	allocs := testing.AllocsPerRun(100, func() {
		g := c.Bind(&n)
		_, _ = c.Get()
		g.Release()
	})
	require.Zero(t, allocs)
}

// copyCell copies src into dst the way a plain assignment would, without
// tripping vet's copylocks check.
func copyCell[T any](dst, src *Cell[T]) {
	reflect.ValueOf(dst).Elem().Set(reflect.ValueOf(src).Elem())
}
