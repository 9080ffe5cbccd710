package voronoi

import "container/heap"

// slot - ячейка кучи. removed - надгробие: ячейка остается в куче,
// пока не всплывет наверх, и тогда выбрасывается.
type slot struct {
	x       float64
	seq     uint64
	ev      *event
	removed bool
}

type slots []*slot

func (s slots) Len() int { return len(s) }

func (s slots) Less(i, j int) bool {
	if s[i].x != s[j].x {
		return s[i].x < s[j].x
	}
	return s[i].seq < s[j].seq
}

func (s slots) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s *slots) Push(x any) {
	*s = append(*s, x.(*slot))
}

func (s *slots) Pop() any {
	old := *s
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*s = old[:n-1]
	return item
}

// schedule is a min-priority queue of events keyed by x with FIFO order on
// equal x. Pushing an event whose (x, point) key is already queued replaces
// the queued one.
type schedule struct {
	heap  slots
	index map[eventKey]*slot
	seq   uint64
}

func newSchedule() *schedule {
	return &schedule{index: make(map[eventKey]*slot)}
}

func (s *schedule) push(ev *event) {
	s.remove(ev)

	s.seq++
	sl := &slot{x: ev.x, seq: s.seq, ev: ev}
	s.index[ev.key()] = sl
	heap.Push(&s.heap, sl)
}

// pop returns the minimum live event, or nil when the schedule is empty.
func (s *schedule) pop() *event {
	for s.heap.Len() > 0 {
		sl := heap.Pop(&s.heap).(*slot)
		if sl.removed {
			continue
		}
		delete(s.index, sl.ev.key())
		return sl.ev
	}
	return nil
}

// peek returns the minimum live event without removing it. Only tombstones
// are discarded, so the order of live events is left untouched.
func (s *schedule) peek() *event {
	for s.heap.Len() > 0 {
		sl := s.heap[0]
		if !sl.removed {
			return sl.ev
		}
		heap.Pop(&s.heap)
	}
	return nil
}

// remove tombstones the entry with the same key as ev. Reports whether
// anything was queued under that key.
func (s *schedule) remove(ev *event) bool {
	key := ev.key()
	sl, ok := s.index[key]
	if !ok {
		return false
	}
	sl.removed = true
	sl.ev = nil
	delete(s.index, key)
	return true
}

func (s *schedule) empty() bool {
	return len(s.index) == 0
}

func (s *schedule) len() int {
	return len(s.index)
}
