package schedulers

import (
	"container/heap"

	"cpu-scheduler/internal/core"
)

// queueEntry orders by key, then by process index. Since the table is sorted
// by arrival, the index tie-break is arrival order.
type queueEntry struct {
	key   int
	index int
}

type entryHeap []queueEntry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].index < h[j].index
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) { *h = append(*h, x.(queueEntry)) }

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// readyQueue is a min-priority queue of (key, index) pairs. What the key
// means is up to the policy: service time, remaining time or feedback level.
type readyQueue struct {
	entries entryHeap
}

func (q *readyQueue) push(key, index int) {
	heap.Push(&q.entries, queueEntry{key: key, index: index})
}

func (q *readyQueue) pop() queueEntry {
	return heap.Pop(&q.entries).(queueEntry)
}

func (q *readyQueue) Len() int {
	return q.entries.Len()
}

// arrivals walks the arrival-sorted process table once.
type arrivals struct {
	processes []core.Process
	next      int
}

func newArrivals(processes []core.Process) *arrivals {
	return &arrivals{processes: processes}
}

// admitUntil hands every process with arrival <= time to admit, in table order.
func (a *arrivals) admitUntil(time int, admit func(index int)) {
	for a.next < len(a.processes) && a.processes[a.next].ArrivalTime <= time {
		admit(a.next)
		a.next++
	}
}
