package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeFinishFirstWriterWins(t *testing.T) {
	e := newEdge(NewPoint(1, 1))
	assert.False(t, e.Finished())

	e.Finish(NewPoint(5, 5))
	e.Finish(NewPoint(9, 9))

	end, ok := e.End()
	assert.True(t, ok)
	assert.Equal(t, NewPoint(5, 5), end)
	assert.Equal(t, NewPoint(1, 1), e.Start())
}

func TestEdgeSegment(t *testing.T) {
	start := NewPoint(5, 5)

	t.Run("unpaired", func(t *testing.T) {
		e := newEdge(start)
		_, ok := e.segment()
		assert.False(t, ok)

		e.Finish(NewPoint(5, 0))
		seg, ok := e.segment()
		assert.True(t, ok)
		assert.Equal(t, Segment{5, 5, 5, 0}, seg)
	})

	t.Run("both halves finished", func(t *testing.T) {
		lead, other := newEdge(start), newEdge(start)
		pairEdges(lead, other)
		lead.Finish(NewPoint(5, 0))
		other.Finish(NewPoint(5, 10))

		seg, ok := lead.segment()
		assert.True(t, ok)
		assert.Equal(t, Segment{5, 0, 5, 10}, seg)

		_, ok = other.segment()
		assert.False(t, ok)
	})

	t.Run("only lead finished", func(t *testing.T) {
		lead, other := newEdge(start), newEdge(start)
		pairEdges(lead, other)
		lead.Finish(NewPoint(5, 0))

		seg, ok := lead.segment()
		assert.True(t, ok)
		assert.Equal(t, Segment{5, 5, 5, 0}, seg)

		_, ok = other.segment()
		assert.False(t, ok)
	})

	t.Run("only twin finished", func(t *testing.T) {
		lead, other := newEdge(start), newEdge(start)
		pairEdges(lead, other)
		other.Finish(NewPoint(5, 10))

		seg, ok := lead.segment()
		assert.True(t, ok)
		assert.Equal(t, Segment{5, 5, 5, 10}, seg)

		_, ok = other.segment()
		assert.False(t, ok)
	})

	t.Run("neither finished", func(t *testing.T) {
		lead, other := newEdge(start), newEdge(start)
		pairEdges(lead, other)

		_, ok := lead.segment()
		assert.False(t, ok)
	})
}
