package service

import (
	"github.com/aliskhannn/pixo/internal/domain/entities"
)

// slot selects one of the two buffers of a DoubleBufferQueue.
type slot int

const (
	slotA slot = iota
	slotB
)

func (s slot) other() slot {
	if s == slotA {
		return slotB
	}
	return slotA
}

// DoubleBufferQueue holds the deck indices of failed cards.
//
// The active buffer is iterated during a retry pass and never grows while it is;
// new failures go to the standby buffer and are only asked in the next pass, so a
// card is never re-asked right after its answer was revealed.
type DoubleBufferQueue struct {
	buffers      [2][]int
	active       slot
	cursor       int
	deferAdvance bool // set by RemoveValue so the next Advance keeps the cursor
}

// NewRetryQueue creates an empty queue with buffer A active.
func NewRetryQueue() *DoubleBufferQueue {
	return &DoubleBufferQueue{active: slotA}
}

// Push schedules index for the next pass.
func (q *DoubleBufferQueue) Push(index int) {
	standby := q.active.other()
	q.buffers[standby] = append(q.buffers[standby], index)
}

// Get returns the index under the cursor of the active buffer.
func (q *DoubleBufferQueue) Get() (int, bool) {
	active := q.buffers[q.active]
	if q.cursor < 0 || q.cursor >= len(active) {
		return 0, false
	}
	return active[q.cursor], true
}

// Advance moves to the next pending index. When the active buffer is exhausted
// the pass ends: the buffers swap roles and the new active one is shuffled.
func (q *DoubleBufferQueue) Advance(rng entities.Rand) {
	if q.deferAdvance {
		q.deferAdvance = false
	} else {
		q.cursor++
	}

	if q.cursor >= len(q.buffers[q.active]) {
		q.buffers[q.active] = nil
		q.active = q.active.other()
		q.shuffle(rng)
		q.cursor = 0
	}
}

// RemoveValue drops index from the active buffer once the card is answered correctly.
// It reports whether index was pending in the current pass.
func (q *DoubleBufferQueue) RemoveValue(index int) bool {
	active := q.buffers[q.active]

	pos := -1
	for i, v := range active {
		if v == index {
			pos = i
			break
		}
	}
	if pos < 0 {
		return false
	}

	q.buffers[q.active] = append(active[:pos], active[pos+1:]...)

	// The element after pos slid into its place; keep the cursor on it.
	if pos <= q.cursor || q.cursor == len(q.buffers[q.active]) {
		q.deferAdvance = true
	}
	return true
}

// IsEmpty reports whether no index is pending in either buffer.
func (q *DoubleBufferQueue) IsEmpty() bool {
	return len(q.buffers[slotA]) == 0 && len(q.buffers[slotB]) == 0
}

// Len returns the number of pending indices across both buffers.
func (q *DoubleBufferQueue) Len() int {
	return len(q.buffers[slotA]) + len(q.buffers[slotB])
}

func (q *DoubleBufferQueue) shuffle(rng entities.Rand) {
	for _, buf := range q.buffers {
		rng.Shuffle(len(buf), func(i, j int) {
			buf[i], buf[j] = buf[j], buf[i]
		})
	}
}
