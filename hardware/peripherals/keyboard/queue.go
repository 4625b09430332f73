// This file is part of Gopher9640.
//
// Gopher9640 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher9640 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher9640.  If not, see <https://www.gnu.org/licenses/>.

// Package keyboard implements the queue of scancodes waiting to be latched by
// the board. The queue is filled by the host and emptied by the board's
// control register bank.
//
// Translation of host key events to scancodes is not done here.
package keyboard

import (
	"fmt"

	"github.com/jetsetilly/gopher9640/curated"
)

// DefaultCapacity is the capacity of a queue created with a capacity of zero.
const DefaultCapacity = 16

// QueueFull is the curated error pattern returned by Push() when there is no
// room in the queue.
const QueueFull = "keyboard: queue is full (dropped %02x)"

// Queue is a bounded first-in first-out queue of scancodes. It implements the
// bus.KeyboardQueue interface.
type Queue struct {
	data     []uint8
	capacity int
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue{
		data:     make([]uint8, 0, capacity),
		capacity: capacity,
	}
}

// Snapshot creates a copy of the Queue in its current state.
func (q *Queue) Snapshot() *Queue {
	n := *q
	n.data = make([]uint8, len(q.data), q.capacity)
	copy(n.data, q.data)
	return &n
}

func (q *Queue) String() string {
	return fmt.Sprintf("keyboard: % 02x", q.data)
}

// Push adds a scancode to the back of the queue.
func (q *Queue) Push(v uint8) error {
	if len(q.data) >= q.capacity {
		return curated.Errorf(QueueFull, v)
	}
	q.data = append(q.data, v)
	return nil
}

// Front implements the bus.KeyboardQueue interface.
func (q *Queue) Front() (uint8, bool) {
	if len(q.data) == 0 {
		return 0, false
	}
	return q.data[0], true
}

// Pop implements the bus.KeyboardQueue interface. Popping an empty queue has
// no effect.
func (q *Queue) Pop() {
	if len(q.data) == 0 {
		return
	}
	copy(q.data, q.data[1:])
	q.data = q.data[:len(q.data)-1]
}

// Len returns the number of scancodes in the queue.
func (q *Queue) Len() int {
	return len(q.data)
}

// Clear empties the queue.
func (q *Queue) Clear() {
	q.data = q.data[:0]
}
