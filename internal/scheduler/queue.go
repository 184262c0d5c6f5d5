package scheduler

import "container/heap"

// readyQueue holds input positions of arrived, unfinished processes.
type readyQueue interface {
	push(i int)
	pop() int
	len() int
}

type fifoQueue struct {
	items []int
}

func (q *fifoQueue) push(i int) { q.items = append(q.items, i) }
func (q *fifoQueue) len() int   { return len(q.items) }

func (q *fifoQueue) pop() int {
	i := q.items[0]
	q.items = q.items[1:]
	return i
}

// heapQueue is a min-heap of input positions under a comparator.
type heapQueue struct {
	items     []int
	cmp       comparator
	processes []Process
	states    []runState
}

func newHeapQueue(cmp comparator, processes []Process, states []runState) *heapQueue {
	q := &heapQueue{cmp: cmp, processes: processes, states: states}
	heap.Init(q)
	return q
}

func (q *heapQueue) Len() int { return len(q.items) }

func (q *heapQueue) Less(i, j int) bool {
	return q.cmp.less(q.processes, q.states, q.items[i], q.items[j])
}

func (q *heapQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *heapQueue) Push(x any) { q.items = append(q.items, x.(int)) }

func (q *heapQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}

func (q *heapQueue) push(i int) { heap.Push(q, i) }
func (q *heapQueue) pop() int   { return heap.Pop(q).(int) }
func (q *heapQueue) len() int   { return q.Len() }
