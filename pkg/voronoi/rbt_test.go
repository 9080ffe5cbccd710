package voronoi

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkTree walks the tree in order and compares it with the threaded list
// and with the expected arcs. Red-black properties are checked on the way.
func checkTree(t *testing.T, tree *rbt, expect []*arc) {
	t.Helper()

	if len(expect) == 0 {
		expect = nil
	}
	require.Equal(t, len(expect), tree.size)

	var inorder []*arc
	var walk func(n *rbtNode) int
	walk = func(n *rbtNode) int {
		if n == nil {
			return 1
		}
		if n.left != nil {
			require.Same(t, n, n.left.parent)
		}
		if n.right != nil {
			require.Same(t, n, n.right.parent)
		}
		if n.red {
			require.False(t, n.left != nil && n.left.red, "red node with red child")
			require.False(t, n.right != nil && n.right.red, "red node with red child")
		}
		lh := walk(n.left)
		inorder = append(inorder, n.value)
		rh := walk(n.right)
		require.Equal(t, lh, rh, "black height differs")
		if !n.red {
			lh++
		}
		return lh
	}
	walk(tree.root)
	if tree.root != nil {
		require.False(t, tree.root.red)
		require.Nil(t, tree.root.parent)
	}

	var threaded []*arc
	var prev *arc
	for a := tree.first(); a != nil; a = a.next() {
		require.Same(t, a, a.node.value)
		if prev == nil {
			require.Nil(t, a.prev())
		} else {
			require.Same(t, prev, a.prev())
		}
		threaded = append(threaded, a)
		prev = a
	}

	assert.Equal(t, expect, inorder)
	assert.Equal(t, expect, threaded)
	if len(expect) > 0 {
		assert.Same(t, expect[len(expect)-1], tree.last())
	} else {
		assert.Nil(t, tree.last())
		assert.True(t, tree.empty())
	}
}

func TestRbtInsertAfter(t *testing.T) {
	var tree rbt
	a := newArc(NewPoint(0, 0))
	b := newArc(NewPoint(1, 0))
	c := newArc(NewPoint(2, 0))

	tree.insertSuccessor(nil, a)
	tree.insertSuccessor(a.node, c)
	tree.insertSuccessor(a.node, b)
	checkTree(t, &tree, []*arc{a, b, c})

	d := newArc(NewPoint(3, 0))
	tree.insertSuccessor(nil, d)
	checkTree(t, &tree, []*arc{d, a, b, c})
}

func TestRbtRemoveRelinksNeighbours(t *testing.T) {
	var tree rbt
	a := newArc(NewPoint(0, 0))
	b := newArc(NewPoint(1, 0))
	c := newArc(NewPoint(2, 0))
	tree.insertSuccessor(nil, a)
	tree.insertSuccessor(a.node, b)
	tree.insertSuccessor(b.node, c)

	tree.removeNode(b.node)
	assert.False(t, b.alive())
	assert.Nil(t, b.prev())
	assert.Nil(t, b.next())
	assert.Same(t, c, a.next())
	assert.Same(t, a, c.prev())
	checkTree(t, &tree, []*arc{a, c})

	tree.removeNode(a.node)
	tree.removeNode(c.node)
	checkTree(t, &tree, nil)
}

func TestRbtRandomOperations(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	var tree rbt
	var model []*arc

	for i := 0; i < 2000; i++ {
		if len(model) > 0 && rnd.Intn(3) == 0 {
			k := rnd.Intn(len(model))
			tree.removeNode(model[k].node)
			model = append(model[:k], model[k+1:]...)
		} else {
			a := newArc(NewPoint(float64(i), 0))
			k := rnd.Intn(len(model) + 1)
			if k == 0 {
				tree.insertSuccessor(nil, a)
			} else {
				tree.insertSuccessor(model[k-1].node, a)
			}
			model = append(model[:k], append([]*arc{a}, model[k:]...)...)
		}

		if i%100 == 0 {
			checkTree(t, &tree, model)
		}
	}
	checkTree(t, &tree, model)
}
