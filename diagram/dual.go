package diagram

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/graphstatics/bfs"
)

// DualVertexPrefix prefixes the keys of force vertices created by DualOf.
const DualVertexPrefix = "f"

const noFace = -1

// halfEdge is one orientation of a form edge. Half-edge 2i runs along the
// stored orientation of edge i, 2i+1 against it.
type halfEdge struct {
	origin, target int
	twin           int
	next           int
	face           int
}

type faceInfo struct {
	halfEdges []int
}

// DualOf builds the force diagram reciprocal to a connected plane form
// diagram.
//
// Implementation:
//   - Stage 1: Validate: connected, no properly crossing edges, and the traced
//     face count obeys Euler's formula V − E + F = 2.
//   - Stage 2: Sort outgoing half-edges around each vertex by angle and link
//     next(u→v) = the half-edge clockwise after v→u. Every cycle of next then
//     has its face on the left.
//   - Stage 3: Cut each cycle at its leaves (breakpoints), so the region
//     between two consecutive loads or reactions is a face of its own.
//   - Stage 4: One force vertex per face, placed at the face centroid turned
//     by +90°, so reciprocal edges start out parallel to the form edges. The
//     form edge u → v is linked to the force edge joining the face on its
//     left to the face on its right.
//
// Two form edges separating the same pair of faces (an unloaded node of
// degree two, for instance) would share one reciprocal edge; such forms are
// rejected with ErrNotPlanar.
//
// The anchor is the first force vertex. Positions are only a starting
// layout; run a force-from-form update to obtain the reciprocal geometry.
//
// Complexity: O(E log E) tracing plus O(E²) for the crossing check.
func DualOf(form *FormDiagram, opts ...Option) (*ForceDiagram, error) {
	keys := form.Keys()
	edges := form.Edges()
	if len(keys) < 2 || len(edges) == 0 {
		return nil, fmt.Errorf("DualOf: %d vertices, %d edges: %w", len(keys), len(edges), ErrNotPlanar)
	}
	comps, err := bfs.Components(form.Graph())
	if err != nil {
		return nil, fmt.Errorf("DualOf: %w", err)
	}
	if len(comps) != 1 {
		return nil, fmt.Errorf("DualOf: %d components: %w", len(comps), ErrNotPlanar)
	}

	xy := form.XY()
	pairs := form.IndexPairs()
	if i, j, ok := firstCrossing(xy, pairs); ok {
		return nil, fmt.Errorf("DualOf: edges %s and %s cross: %w", edges[i].ID, edges[j].ID, ErrNotPlanar)
	}

	hes := linkHalfEdges(xy, pairs)
	cycles := traceCycles(hes)
	if len(keys)-len(edges)+len(cycles) != 2 {
		return nil, fmt.Errorf("DualOf: Euler characteristic %d: %w",
			len(keys)-len(edges)+len(cycles), ErrNotPlanar)
	}

	leaf := make([]bool, len(keys))
	for i, k := range keys {
		leaf[i] = form.Degree(k) == 1
	}
	faces := splitAtLeaves(hes, cycles, leaf)

	for i, e := range edges {
		if hes[2*i].face == hes[2*i+1].face {
			return nil, fmt.Errorf("DualOf: edge %s bounds a single face: %w", e.ID, ErrNotPlanar)
		}
	}

	force := NewForce(opts...)
	fkeys := make([]string, len(faces))
	for f, face := range faces {
		cx, cy := faceCentroid(xy, hes, face)
		fkeys[f] = fmt.Sprintf("%s%d", DualVertexPrefix, f)
		if err = force.AddVertex(fkeys[f], -cy, cx); err != nil {
			return nil, fmt.Errorf("DualOf: %w", err)
		}
	}
	between := make(map[[2]int]string, len(edges))
	for i, e := range edges {
		lf, rf := hes[2*i].face, hes[2*i+1].face
		fp := [2]int{min(lf, rf), max(lf, rf)}
		if prev, ok := between[fp]; ok {
			return nil, fmt.Errorf("DualOf: edges %s and %s separate the same faces: %w", prev, e.ID, ErrNotPlanar)
		}
		between[fp] = e.ID
		left, right := fkeys[lf], fkeys[rf]
		if _, err = force.AddEdge(left, right); err != nil {
			return nil, fmt.Errorf("DualOf: %w", err)
		}
		if err = force.Link(e.ID, left, right); err != nil {
			return nil, fmt.Errorf("DualOf: %w", err)
		}
	}
	if err = force.SetAnchor(fkeys[0]); err != nil {
		return nil, fmt.Errorf("DualOf: %w", err)
	}

	return force, nil
}

// linkHalfEdges creates the twin pairs and the next pointers of the
// rotation system given by the vertex positions.
func linkHalfEdges(xy [][2]float64, pairs [][2]int) []halfEdge {
	hes := make([]halfEdge, 2*len(pairs))
	out := make([][]int, len(xy))
	for i, p := range pairs {
		a, b := 2*i, 2*i+1
		hes[a] = halfEdge{origin: p[0], target: p[1], twin: b, face: noFace}
		hes[b] = halfEdge{origin: p[1], target: p[0], twin: a, face: noFace}
		out[p[0]] = append(out[p[0]], a)
		out[p[1]] = append(out[p[1]], b)
	}

	// pos[h] is the rank of h in the counter-clockwise order around its origin
	pos := make([]int, len(hes))
	for v := range out {
		ring := out[v]
		sort.SliceStable(ring, func(i, j int) bool {
			return heAngle(xy, hes[ring[i]]) < heAngle(xy, hes[ring[j]])
		})
		for r, h := range ring {
			pos[h] = r
		}
	}
	for h := range hes {
		t := hes[h].twin
		ring := out[hes[t].origin]
		hes[h].next = ring[(pos[t]-1+len(ring))%len(ring)]
	}

	return hes
}

func heAngle(xy [][2]float64, h halfEdge) float64 {
	return math.Atan2(xy[h.target][1]-xy[h.origin][1], xy[h.target][0]-xy[h.origin][0])
}

// traceCycles follows next pointers from every unvisited half-edge, in
// half-edge order.
func traceCycles(hes []halfEdge) [][]int {
	seen := make([]bool, len(hes))
	var cycles [][]int
	for start := range hes {
		if seen[start] {
			continue
		}
		var cyc []int
		for h := start; !seen[h]; h = hes[h].next {
			seen[h] = true
			cyc = append(cyc, h)
		}
		cycles = append(cycles, cyc)
	}

	return cycles
}

// splitAtLeaves assigns faces: a cycle passing through c ≥ 2 leaves yields c
// faces, each running from one leaf to the next.
func splitAtLeaves(hes []halfEdge, cycles [][]int, leaf []bool) []faceInfo {
	var faces []faceInfo
	for _, cyc := range cycles {
		// rotate so the cycle starts right after a leaf, if any
		start := 0
		cuts := 0
		for k, h := range cyc {
			if leaf[hes[h].target] {
				if cuts == 0 {
					start = (k + 1) % len(cyc)
				}
				cuts++
			}
		}
		if cuts < 2 {
			faces = append(faces, faceInfo{halfEdges: cyc})
			for _, h := range cyc {
				hes[h].face = len(faces) - 1
			}
			continue
		}
		cur := faceInfo{}
		for k := 0; k < len(cyc); k++ {
			h := cyc[(start+k)%len(cyc)]
			cur.halfEdges = append(cur.halfEdges, h)
			if leaf[hes[h].target] {
				faces = append(faces, cur)
				cur = faceInfo{}
			}
		}
		for f := len(faces) - cuts; f < len(faces); f++ {
			for _, h := range faces[f].halfEdges {
				hes[h].face = f
			}
		}
	}

	return faces
}

func faceCentroid(xy [][2]float64, hes []halfEdge, face faceInfo) (x, y float64) {
	for _, h := range face.halfEdges {
		p := xy[hes[h].origin]
		x += p[0]
		y += p[1]
	}
	n := float64(len(face.halfEdges))

	return x / n, y / n
}

// firstCrossing returns the first pair of edges whose segments intersect
// anywhere other than at a shared endpoint.
func firstCrossing(xy [][2]float64, pairs [][2]int) (int, int, bool) {
	for i := 0; i < len(pairs); i++ {
		for j := i + 1; j < len(pairs); j++ {
			a, b := pairs[i], pairs[j]
			if a[0] == b[0] || a[0] == b[1] || a[1] == b[0] || a[1] == b[1] {
				continue
			}
			if segmentsIntersect(xy[a[0]], xy[a[1]], xy[b[0]], xy[b[1]]) {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

func orient(a, b, c [2]float64) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

func onSegment(a, b, p [2]float64) bool {
	return math.Min(a[0], b[0]) <= p[0] && p[0] <= math.Max(a[0], b[0]) &&
		math.Min(a[1], b[1]) <= p[1] && p[1] <= math.Max(a[1], b[1])
}

func segmentsIntersect(p1, p2, p3, p4 [2]float64) bool {
	d1, d2 := orient(p3, p4, p1), orient(p3, p4, p2)
	d3, d4 := orient(p1, p2, p3), orient(p1, p2, p4)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) && ((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	switch {
	case d1 == 0 && onSegment(p3, p4, p1):
		return true
	case d2 == 0 && onSegment(p3, p4, p2):
		return true
	case d3 == 0 && onSegment(p1, p2, p3):
		return true
	case d4 == 0 && onSegment(p1, p2, p4):
		return true
	}

	return false
}
