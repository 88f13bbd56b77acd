package linkedlist_test

import (
	"math/rand"
	"testing"

	"github.com/delaneyj/subjects/linkedlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	name string
}

func itemsOf(names ...string) []*item {
	items := make([]*item, len(names))
	for i, n := range names {
		items[i] = &item{name: n}
	}
	return items
}

func names(items []*item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.name
	}
	return out
}

// zero value is an empty list
func TestZeroValue(t *testing.T) {
	var l linkedlist.List[*item]
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())
	assert.False(t, l.Remove(&item{}))
	require.NoError(t, l.Validate())
}

// append links in insertion order
func TestAppend(t *testing.T) {
	l := linkedlist.New[*item]()
	all := itemsOf("a", "b", "c")
	for i, it := range all {
		n := l.Append(it)
		assert.Same(t, it, n.Item())
		assert.True(t, n.Linked())
		assert.Equal(t, i+1, l.Len())
		require.NoError(t, l.Validate())
	}

	assert.Equal(t, []string{"a", "b", "c"}, names(l.Items()))
	assert.Same(t, all[0], l.Front().Item())
	assert.Same(t, all[2], l.Back().Item())
	assert.Equal(t, uint64(3), l.Generation())
}

// remove handles head, middle, tail and sole node
func TestRemoveBoundaries(t *testing.T) {
	cases := []struct {
		name   string
		remove string
		want   []string
	}{
		{"head", "a", []string{"b", "c", "d"}},
		{"middle", "c", []string{"a", "b", "d"}},
		{"tail", "d", []string{"a", "b", "c"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := linkedlist.New[*item]()
			all := itemsOf("a", "b", "c", "d")
			byName := map[string]*item{}
			for _, it := range all {
				l.Append(it)
				byName[it.name] = it
			}

			require.True(t, l.Remove(byName[tc.remove]))
			require.NoError(t, l.Validate())
			assert.Equal(t, tc.want, names(l.Items()))
			assert.Equal(t, 3, l.Len())
			assert.Equal(t, tc.want[0], l.Front().Item().name)
			assert.Equal(t, tc.want[2], l.Back().Item().name)
		})
	}

	t.Run("sole", func(t *testing.T) {
		l := linkedlist.New[*item]()
		it := &item{name: "only"}
		l.Append(it)
		require.True(t, l.Remove(it))
		require.NoError(t, l.Validate())
		assert.Equal(t, 0, l.Len())
		assert.Nil(t, l.Front())
		assert.Nil(t, l.Back())
	})
}

// remove compares by identity, not by value
func TestRemoveByIdentity(t *testing.T) {
	l := linkedlist.New[*item]()
	a := &item{name: "same"}
	b := &item{name: "same"}
	l.Append(a)

	assert.False(t, l.Remove(b))
	assert.Equal(t, 1, l.Len())
	assert.True(t, l.Remove(a))
	assert.False(t, l.Remove(a))
}

// remove only drops the first of duplicate registrations
func TestRemoveFirstDuplicate(t *testing.T) {
	l := linkedlist.New[int]()
	l.Append(1)
	l.Append(2)
	l.Append(1)

	require.True(t, l.Remove(1))
	assert.Equal(t, []int{2, 1}, l.Items())
	require.NoError(t, l.Validate())
}

// count equals appends minus successful removals
func TestCountProperty(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		l := linkedlist.New[*item]()
		var pool []*item
		appended, removed := 0, 0

		for op := 0; op < 200; op++ {
			if r.Intn(3) == 0 && len(pool) > 0 {
				victim := pool[r.Intn(len(pool))]
				if l.Remove(victim) {
					removed++
				}
				continue
			}
			it := &item{}
			pool = append(pool, it)
			l.Append(it)
			appended++
		}

		require.NoError(t, l.Validate())
		assert.Equal(t, appended-removed, l.Len())
	}
}

// cursor walks from head to tail
func TestCursorWalk(t *testing.T) {
	l := linkedlist.New[string]()
	for _, s := range []string{"a", "b", "c"} {
		l.Append(s)
	}

	l.MoveToHead()
	var seen []string
	v, err := l.Active()
	require.NoError(t, err)
	seen = append(seen, v)
	for l.HasNext() {
		require.True(t, l.Next())
		v, err := l.Active()
		require.NoError(t, err)
		seen = append(seen, v)
	}
	assert.Equal(t, []string{"a", "b", "c"}, seen)

	// at tail the cursor stays put
	assert.False(t, l.Next())
	v, err = l.Active()
	require.NoError(t, err)
	assert.Equal(t, "c", v)
}

// cursor reports an error instead of undefined behaviour
func TestCursorNotPositioned(t *testing.T) {
	l := linkedlist.New[int]()

	_, err := l.Active()
	assert.ErrorIs(t, err, linkedlist.ErrCursorNotPositioned)
	assert.False(t, l.HasNext())
	assert.False(t, l.Next())

	l.MoveToHead()
	_, err = l.Active()
	assert.ErrorIs(t, err, linkedlist.ErrCursorNotPositioned)

	l.Append(1)
	_, err = l.Active()
	assert.ErrorIs(t, err, linkedlist.ErrCursorNotPositioned, "append does not position the cursor")

	l.MoveToHead()
	v, err := l.Active()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

// a successful removal invalidates the cursor until it is reset
func TestRemoveInvalidatesCursor(t *testing.T) {
	l := linkedlist.New[int]()
	l.Append(1)
	l.Append(2)
	l.Append(3)

	l.MoveToHead()
	require.True(t, l.Next())
	require.True(t, l.Remove(2))

	_, err := l.Active()
	assert.ErrorIs(t, err, linkedlist.ErrCursorNotPositioned)
	assert.False(t, l.HasNext())

	l.MoveToHead()
	v, err := l.Active()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

// a failed removal leaves the cursor on the tail
func TestFailedRemoveLeavesCursorOnTail(t *testing.T) {
	l := linkedlist.New[int]()
	l.Append(1)
	l.Append(2)

	require.False(t, l.Remove(9))
	v, err := l.Active()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	require.NoError(t, l.Validate())
}

// node traversal survives removal of the node it stands on
func TestNodeNextAfterRemoval(t *testing.T) {
	l := linkedlist.New[int]()
	for i := 1; i <= 5; i++ {
		l.Append(i)
	}

	var seen []int
	for n := l.Front(); n != nil; n = n.Next() {
		v := n.Item()
		seen = append(seen, v)
		switch v {
		case 2:
			// remove self and the next node
			require.True(t, l.Remove(2))
			require.True(t, l.Remove(3))
			assert.False(t, n.Linked())
			assert.Equal(t, 0, n.Item())
		}
	}
	assert.Equal(t, []int{1, 2, 4, 5}, seen)
	assert.Equal(t, []int{1, 4, 5}, l.Items())
	require.NoError(t, l.Validate())
}

// node generations grow towards the tail and can bound a traversal
func TestGenerationBound(t *testing.T) {
	l := linkedlist.New[int]()
	l.Append(1)
	l.Append(2)
	bound := l.Generation()

	var seen []int
	for n := l.Front(); n != nil && n.Generation() <= bound; n = n.Next() {
		seen = append(seen, n.Item())
		l.Append(n.Item() * 10)
	}
	assert.Equal(t, []int{1, 2}, seen)
	assert.Equal(t, []int{1, 2, 10, 20}, l.Items())
}

// clear unlinks everything and keeps traversals safe
func TestClear(t *testing.T) {
	l := linkedlist.New[int]()
	l.Append(1)
	l.Append(2)
	first := l.Front()
	l.MoveToHead()

	l.Clear()
	require.NoError(t, l.Validate())
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, first.Next())
	_, err := l.Active()
	assert.ErrorIs(t, err, linkedlist.ErrCursorNotPositioned)

	l.Append(3)
	assert.Equal(t, []int{3}, l.Items())
	require.NoError(t, l.Validate())
}

// contains does not move the cursor
func TestContains(t *testing.T) {
	l := linkedlist.New[int]()
	l.Append(1)
	l.Append(2)
	l.MoveToHead()

	assert.True(t, l.Contains(2))
	assert.False(t, l.Contains(3))
	v, err := l.Active()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}
