package voronoi

// rbt - пляжная линия: красно-черное дерево дуг в порядке снизу вверх.
// prev/next прошивают узлы в двусвязный список, обход идет по нему,
// дерево только держит глубину логарифмической.
type rbt struct {
	root *rbtNode
	size int
}

type rbtNode struct {
	value  *arc
	left   *rbtNode
	right  *rbtNode
	parent *rbtNode
	prev   *rbtNode
	next   *rbtNode
	red    bool
}

func isRed(n *rbtNode) bool {
	return n != nil && n.red
}

// insertSuccessor вставляет дугу сразу после node (node == nil - в начало)
func (t *rbt) insertSuccessor(node *rbtNode, value *arc) {
	n := &rbtNode{value: value, red: true}
	value.node = n
	t.size++

	switch {
	case node != nil:
		n.prev = node
		n.next = node.next
		if node.next != nil {
			node.next.prev = n
		}
		node.next = n

		// следующий по порядку - самый левый в правом поддереве
		if node.right == nil {
			node.right = n
			n.parent = node
		} else {
			leftmost := t.getFirst(node.right)
			leftmost.left = n
			n.parent = leftmost
		}
	case t.root != nil:
		head := t.getFirst(t.root)
		n.next = head
		head.prev = n
		head.left = n
		n.parent = head
	default:
		t.root = n
	}

	t.fixInsert(n)
}

func (t *rbt) fixInsert(n *rbtNode) {
	for isRed(n.parent) {
		p := n.parent
		g := p.parent

		if p == g.left {
			if u := g.right; isRed(u) {
				p.red, u.red, g.red = false, false, true
				n = g
				continue
			}
			if n == p.right {
				n = p
				t.rotateLeft(n)
				p = n.parent
			}
			p.red, g.red = false, true
			t.rotateRight(g)
		} else {
			if u := g.left; isRed(u) {
				p.red, u.red, g.red = false, false, true
				n = g
				continue
			}
			if n == p.left {
				n = p
				t.rotateRight(n)
				p = n.parent
			}
			p.red, g.red = false, true
			t.rotateLeft(g)
		}
	}
	t.root.red = false
}

// removeNode вынимает узел и сшивает соседей между собой
func (t *rbt) removeNode(z *rbtNode) {
	t.size--
	z.value.node = nil

	if z.next != nil {
		z.next.prev = z.prev
	}
	if z.prev != nil {
		z.prev.next = z.next
	}

	// x встает на место вынутого узла, xParent нужен, когда x == nil
	var x, xParent *rbtNode
	removedRed := z.red

	switch {
	case z.left == nil:
		x, xParent = z.right, z.parent
		t.replaceChild(z, z.right)
	case z.right == nil:
		x, xParent = z.left, z.parent
		t.replaceChild(z, z.left)
	default:
		y := t.getFirst(z.right)
		removedRed = y.red
		x = y.right
		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			t.replaceChild(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.replaceChild(z, y)
		y.left = z.left
		y.left.parent = y
		y.red = z.red
	}

	if !removedRed {
		t.fixRemove(x, xParent)
	}

	z.left, z.right, z.parent, z.prev, z.next = nil, nil, nil, nil, nil
}

func (t *rbt) fixRemove(x, parent *rbtNode) {
	for x != t.root && !isRed(x) {
		if x == parent.left {
			w := parent.right
			if isRed(w) {
				w.red, parent.red = false, true
				t.rotateLeft(parent)
				w = parent.right
			}
			if !isRed(w.left) && !isRed(w.right) {
				w.red = true
				x, parent = parent, parent.parent
				continue
			}
			if !isRed(w.right) {
				w.left.red, w.red = false, true
				t.rotateRight(w)
				w = parent.right
			}
			w.red, parent.red, w.right.red = parent.red, false, false
			t.rotateLeft(parent)
		} else {
			w := parent.left
			if isRed(w) {
				w.red, parent.red = false, true
				t.rotateRight(parent)
				w = parent.left
			}
			if !isRed(w.left) && !isRed(w.right) {
				w.red = true
				x, parent = parent, parent.parent
				continue
			}
			if !isRed(w.left) {
				w.right.red, w.red = false, true
				t.rotateLeft(w)
				w = parent.left
			}
			w.red, parent.red, w.left.red = parent.red, false, false
			t.rotateRight(parent)
		}
		x, parent = t.root, nil
	}
	if x != nil {
		x.red = false
	}
}

// replaceChild ставит v на место u у родителя u
func (t *rbt) replaceChild(u, v *rbtNode) {
	switch {
	case u.parent == nil:
		t.root = v
	case u.parent.left == u:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

func (t *rbt) rotateLeft(x *rbtNode) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	t.replaceChild(x, y)
	y.left = x
	x.parent = y
}

func (t *rbt) rotateRight(x *rbtNode) {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	t.replaceChild(x, y)
	y.right = x
	x.parent = y
}

func (t *rbt) getFirst(n *rbtNode) *rbtNode {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (t *rbt) getLast(n *rbtNode) *rbtNode {
	for n.right != nil {
		n = n.right
	}
	return n
}

// first - самая нижняя дуга пляжной линии
func (t *rbt) first() *arc {
	if t.root == nil {
		return nil
	}
	return t.getFirst(t.root).value
}

// last - самая верхняя
func (t *rbt) last() *arc {
	if t.root == nil {
		return nil
	}
	return t.getLast(t.root).value
}

func (t *rbt) empty() bool {
	return t.root == nil
}
