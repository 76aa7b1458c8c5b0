package searcher

import "container/heap"

type node struct {
	tile     int
	distance int
}

// frontier is a min-heap of nodes keyed by distance.
type frontier []node

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].distance < f[j].distance }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(node))
}

func (f *frontier) Pop() any {
	old := *f
	n := old[len(old)-1]
	*f = old[:len(old)-1]
	return n
}

func (f *frontier) push(tile, distance int) {
	heap.Push(f, node{tile: tile, distance: distance})
}

func (f *frontier) pop() node {
	return heap.Pop(f).(node)
}
