package maps

import (
	"container/heap"
	"math"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

type nodeID int64

type edge struct {
	to       nodeID
	distance float64 // meters
	duration float64 // seconds
}

// roadGraph is a directed road network. Points closer than ~1m share a node.
type roadGraph struct {
	nodes    map[nodeID]orb.Point
	edges    map[nodeID][]edge
	nextID   int64
	pointIdx map[string]nodeID
}

func newRoadGraph() *roadGraph {
	return &roadGraph{
		nodes:    make(map[nodeID]orb.Point),
		edges:    make(map[nodeID][]edge),
		pointIdx: make(map[string]nodeID),
	}
}

func (g *roadGraph) addSegment(segment *roadSegment) {
	if len(segment.Points) < 2 {
		return
	}

	speed := segment.SpeedKmh
	if speed <= 0 {
		speed = defaultSpeedKmh
	}

	prev := g.nodeAt(segment.Points[0])
	for i := 1; i < len(segment.Points); i++ {
		curr := g.nodeAt(segment.Points[i])
		if curr == prev {
			continue
		}

		dist := geo.Distance(segment.Points[i-1], segment.Points[i])
		duration := dist / 1000.0 / speed * 3600.0

		g.edges[prev] = append(g.edges[prev], edge{to: curr, distance: dist, duration: duration})
		if !segment.OneWay {
			g.edges[curr] = append(g.edges[curr], edge{to: prev, distance: dist, duration: duration})
		}

		prev = curr
	}
}

// merge copies other into g, remapping node IDs so tiles with independent ID spaces join at shared points.
func (g *roadGraph) merge(other *roadGraph) {
	mapping := make(map[nodeID]nodeID, len(other.nodes))
	for id, point := range other.nodes {
		mapping[id] = g.nodeAt(point)
	}

	for from, edges := range other.edges {
		target := mapping[from]
		for _, e := range edges {
			g.edges[target] = append(g.edges[target], edge{to: mapping[e.to], distance: e.distance, duration: e.duration})
		}
	}
}

func (g *roadGraph) nodeAt(point orb.Point) nodeID {
	key := pointKey(point)
	if id, ok := g.pointIdx[key]; ok {
		return id
	}

	g.nextID++
	id := nodeID(g.nextID)
	g.nodes[id] = point
	g.pointIdx[key] = id

	return id
}

// pointKey rounds to 5 decimal places (~1m).
func pointKey(p orb.Point) string {
	lat := math.Round(p[1]*100000) / 100000
	lng := math.Round(p[0]*100000) / 100000

	return strconv.FormatFloat(lat, 'f', 5, 64) + "," + strconv.FormatFloat(lng, 'f', 5, 64)
}

// nearest returns the closest node and its distance in meters.
func (g *roadGraph) nearest(point orb.Point) (nodeID, float64, bool) {
	if len(g.nodes) == 0 {
		return 0, 0, false
	}

	var best nodeID
	bestDist := math.MaxFloat64
	for id, p := range g.nodes {
		if d := geo.Distance(point, p); d < bestDist {
			bestDist = d
			best = id
		}
	}

	return best, bestDist, true
}

// shortestPath runs Dijkstra on travel time and returns the node sequence from source to target.
func (g *roadGraph) shortestPath(source, target nodeID) ([]orb.Point, bool) {
	if _, ok := g.nodes[source]; !ok {
		return nil, false
	}
	if _, ok := g.nodes[target]; !ok {
		return nil, false
	}

	cost := map[nodeID]float64{source: 0}
	prev := make(map[nodeID]nodeID)
	visited := make(map[nodeID]bool)

	queue := &priorityQueue{}
	heap.Push(queue, &queueItem{id: source})

	for queue.Len() > 0 {
		current := heap.Pop(queue).(*queueItem)
		if visited[current.id] {
			continue
		}
		visited[current.id] = true

		if current.id == target {
			return g.walkBack(prev, source, target), true
		}

		for _, e := range g.edges[current.id] {
			if visited[e.to] {
				continue
			}
			next := current.cost + e.duration
			if known, ok := cost[e.to]; ok && known <= next {
				continue
			}
			cost[e.to] = next
			prev[e.to] = current.id
			heap.Push(queue, &queueItem{id: e.to, cost: next})
		}
	}

	return nil, false
}

func (g *roadGraph) walkBack(prev map[nodeID]nodeID, source, target nodeID) []orb.Point {
	var reversed []orb.Point
	for id := target; ; id = prev[id] {
		reversed = append(reversed, g.nodes[id])
		if id == source {
			break
		}
	}

	path := make([]orb.Point, len(reversed))
	for i, p := range reversed {
		path[len(reversed)-1-i] = p
	}

	return path
}

type queueItem struct {
	id    nodeID
	cost  float64
	index int
}

type priorityQueue []*queueItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	item := x.(*queueItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]

	return item
}
