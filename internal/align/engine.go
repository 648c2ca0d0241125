package align

import "container/heap"

// predEntry records how a vertex was first reached: the predecessor
// vertex and the edge taken to get here. The start vertex's entry has
// from == nil.
type predEntry struct {
	from *vertex
	via  edge
}

// routeStep is one step of the reconstructed path, in forward order: via
// is the edge taken, and at is the vertex it was taken FROM — i.e. the
// vertex whose cursors still point at the nodes that edge consumes. The
// route marker reads node pointers out of `at`, not out of the vertex the
// edge leads to.
type routeStep struct {
	via edge
	at  vertex
}

// search runs a lazy Dijkstra from start to the end vertex (both cursors
// nil) and returns the route taken, in forward order (spec §4.3), along
// with how many vertices it visited and the largest size its priority
// queue reached (the latter feeds diffmetrics' queue-high-water gauge).
//
// This mirrors dijkstra.Dijkstra's runner/heap structure (lazy
// decrease-key: push a new heap entry on every improvement instead of
// mutating one in place, then skip an entry on pop if its vertex is
// already finalised), generalised from an explicit adjacency list to the
// implicit graph produced by neighbours().
//
// Complexity:
//
//   - Time:  O(V log V) — see package doc.
//   - Space: O(V) for the predecessors map and the heap.
func search(start vertex, maxVertices int64) ([]routeStep, int64, int, error) {
	predecessors := make(map[vertexKey]predEntry)

	pq := make(vertexPQ, 0, 64)
	heap.Init(&pq)
	heap.Push(&pq, &pqItem{v: start, distance: 0})

	var end vertex
	var found bool

	var visited int64
	var queueHighWaterMark int
	for pq.Len() > 0 {
		if pq.Len() > queueHighWaterMark {
			queueHighWaterMark = pq.Len()
		}

		item := heap.Pop(&pq).(*pqItem)
		v := item.v
		k := v.key()

		if _, ok := predecessors[k]; ok {
			// Stale heap entry: this vertex was already finalised via a
			// cheaper path. Lazy decrease-key: skip rather than update.
			continue
		}

		predecessors[k] = predEntry{from: item.from, via: item.via}
		visited++

		if v.isEnd() {
			end = v
			found = true
			break
		}

		if maxVertices > 0 && visited > maxVertices {
			return nil, visited, queueHighWaterMark, ErrVertexBudgetExceeded
		}

		vCopy := v
		for _, c := range neighbours(v) {
			if _, ok := predecessors[c.next.key()]; ok {
				continue
			}
			heap.Push(&pq, &pqItem{
				v:        c.next,
				distance: item.distance + c.edge.cost(),
				from:     &vCopy,
				via:      c.edge,
			})
		}
	}

	if !found {
		// The end vertex (nil, nil) is always reachable: every novel edge
		// strictly advances at least one cursor, so repeatedly taking
		// novel edges must eventually exhaust both sides. Running out of
		// queue first means neighbours() failed to offer a move it
		// should have.
		panic("align: " + ErrQueueExhausted.Error())
	}

	return reconstruct(predecessors, end), visited, queueHighWaterMark, nil
}

// reconstruct walks the predecessors map backward from end to the start
// vertex (whose entry has from == nil), then reverses the result into
// forward order.
func reconstruct(predecessors map[vertexKey]predEntry, end vertex) []routeStep {
	var reversed []routeStep

	current := end
	for {
		entry, ok := predecessors[current.key()]
		if !ok || entry.from == nil {
			break
		}
		reversed = append(reversed, routeStep{via: entry.via, at: *entry.from})
		current = *entry.from
	}

	route := make([]routeStep, len(reversed))
	for i, step := range reversed {
		route[len(reversed)-1-i] = step
	}
	return route
}

// pqItem is one entry in the search's priority queue: a candidate vertex,
// its tentative distance from start, and the backpointer needed to
// reconstruct the route if this turns out to be the first (cheapest)
// arrival.
type pqItem struct {
	v        vertex
	distance int64
	from     *vertex
	via      edge
}

// vertexPQ is a min-heap of *pqItem ordered by ascending distance, the
// same lazy-decrease-key heap shape as dijkstra.nodePQ.
type vertexPQ []*pqItem

func (pq vertexPQ) Len() int            { return len(pq) }
func (pq vertexPQ) Less(i, j int) bool  { return pq[i].distance < pq[j].distance }
func (pq vertexPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *vertexPQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }
func (pq *vertexPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
