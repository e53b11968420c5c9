package collision

import (
	"github.com/vova616/collision/vect"
)

// The maximum number of penetrating points gathered before they collapse
// into the single contact point.
const MaxPoints = 4

// manifold gathers the points of one narrow-phase test. n and dist belong to
// the axis of minimum separation (the largest dist), dist is negative when
// overlapping. Routines that test several axes may add points from more than
// one of them.
type manifold struct {
	n      vect.Vect
	dist   vect.Float
	points [MaxPoints]vect.Vect
	num    int
}

func (m *manifold) add(p, n vect.Vect, dist vect.Float) {
	if m.num == 0 || dist > m.dist {
		m.n = n
		m.dist = dist
	}
	if m.num < MaxPoints {
		m.points[m.num] = p
		m.num++
	} else {
		m.points[MaxPoints-1] = p
	}
}

func (m *manifold) point() vect.Vect {
	var sum vect.Vect
	for _, p := range m.points[:m.num] {
		sum.Add(p)
	}
	return vect.Mult(sum, 1/vect.Float(m.num))
}

type collisionHandler func(m *manifold, a, b Area) bool

// Indexed by the area types with the smaller type first.
var collisionHandlers = [numAreas][numAreas]collisionHandler{
	AreaType_Circle: {
		AreaType_Circle:  circle2circle,
		AreaType_Edge:    circle2edge,
		AreaType_Polygon: circle2polygon,
	},
	AreaType_Edge: {
		AreaType_Edge:    nil,
		AreaType_Polygon: edge2polygon,
	},
	AreaType_Polygon: {
		AreaType_Polygon: polygon2polygon,
	},
}

// collide dispatches the pair to its narrow-phase routine. Pairs given in
// the reverse order are tested the other way around and flipped, so the
// contact always points away from a.
func collide(a, b Area) *Contact {
	stA := a.AreaType()
	stB := b.AreaType()
	if stA < 0 || stB < 0 || stA >= numAreas || stB >= numAreas {
		logger.Debug("no collision handler", "a", stA, "b", stB)
		return nil
	}

	if stA > stB {
		con := collide(b, a)
		if con != nil {
			con.flip()
		}
		return con
	}

	handler := collisionHandlers[stA][stB]
	if handler == nil {
		return nil
	}

	var m manifold
	if !handler(&m, a, b) || m.num == 0 {
		return nil
	}
	return NewContact(a.Owner(), b.Owner(), vect.Mult(m.n, -m.dist), m.point(), m.n)
}

// START COLLISION HANDLERS
func circle2circle(m *manifold, a, b Area) bool {
	csA, ok := a.(*CircleArea)
	if !ok {
		logger.Error("area A is not a CircleArea", "type", a.AreaType())
		return false
	}
	csB, ok := b.(*CircleArea)
	if !ok {
		logger.Error("area B is not a CircleArea", "type", b.AreaType())
		return false
	}
	return circle2circleQuery(m, csA.Tc, csB.Tc, csA.Radius, csB.Radius)
}

func circle2edge(m *manifold, a, b Area) bool {
	circle, ok := a.(*CircleArea)
	if !ok {
		logger.Error("area A is not a CircleArea", "type", a.AreaType())
		return false
	}
	edge, ok := b.(*EdgeArea)
	if !ok {
		logger.Error("area B is not an EdgeArea", "type", b.AreaType())
		return false
	}
	return circle2edgeFunc(m, circle, edge)
}

func circle2polygon(m *manifold, a, b Area) bool {
	circle, ok := a.(*CircleArea)
	if !ok {
		logger.Error("area A is not a CircleArea", "type", a.AreaType())
		return false
	}
	poly, ok := b.(*PolygonArea)
	if !ok {
		logger.Error("area B is not a PolygonArea", "type", b.AreaType())
		return false
	}
	return circle2polyFunc(m, circle, poly)
}

func edge2polygon(m *manifold, a, b Area) bool {
	edge, ok := a.(*EdgeArea)
	if !ok {
		logger.Error("area A is not an EdgeArea", "type", a.AreaType())
		return false
	}
	poly, ok := b.(*PolygonArea)
	if !ok {
		logger.Error("area B is not a PolygonArea", "type", b.AreaType())
		return false
	}
	return edge2polyFunc(m, edge, poly)
}

func polygon2polygon(m *manifold, a, b Area) bool {
	poly1, ok := a.(*PolygonArea)
	if !ok {
		logger.Error("area A is not a PolygonArea", "type", a.AreaType())
		return false
	}
	poly2, ok := b.(*PolygonArea)
	if !ok {
		logger.Error("area B is not a PolygonArea", "type", b.AreaType())
		return false
	}
	return poly2polyFunc(m, poly1, poly2)
}

//END COLLISION HANDLERS

func circle2circleQuery(m *manifold, p1, p2 vect.Vect, r1, r2 vect.Float) bool {
	minDist := r1 + r2

	delta := vect.Sub(p2, p1)
	distSqr := delta.LengthSqr()

	if distSqr >= minDist*minDist {
		return false
	}

	dist := vect.FSqrt(distSqr)

	pDist := dist
	if dist == 0.0 {
		pDist = vect.FInf(1)
	}

	pos := vect.Add(p1, vect.Mult(delta, 0.5+(r1-0.5*minDist)/pDist))

	norm := vect.Vect{X: 1, Y: 0}

	if dist != 0.0 {
		norm = vect.Mult(delta, 1.0/dist)
	}

	m.add(pos, norm, dist-minDist)

	return true
}

func circle2edgeFunc(m *manifold, circle *CircleArea, edge *EdgeArea) bool {
	rsum := circle.Radius + edge.Radius

	//Calculate normal distance from edge
	dn := vect.Dot(edge.Tn, circle.Tc) - vect.Dot(edge.Ta, edge.Tn)
	dist := vect.FAbs(dn) - rsum
	if dist >= 0.0 {
		return false
	}

	//Calculate tangential distance along edge
	dt := -vect.Cross(edge.Tn, circle.Tc)
	dtMin := -vect.Cross(edge.Tn, edge.Ta)
	dtMax := -vect.Cross(edge.Tn, edge.Tb)

	// Decision tree to decide which feature of the edge to collide with.
	if dt < dtMin {
		if dt < (dtMin - rsum) {
			return false
		}
		return circle2circleQuery(m, circle.Tc, edge.Ta, circle.Radius, edge.Radius)
	}
	if dt < dtMax {
		n := edge.Tn
		if dn >= 0.0 {
			n.Mult(-1)
		}
		pos := vect.Add(circle.Tc, vect.Mult(n, circle.Radius+dist*0.5))
		m.add(pos, n, dist)
		return true
	}
	if dt < (dtMax + rsum) {
		return circle2circleQuery(m, circle.Tc, edge.Tb, circle.Radius, edge.Radius)
	}
	return false
}

func circle2polyFunc(m *manifold, circle *CircleArea, poly *PolygonArea) bool {
	axes := poly.TAxes

	mini := 0
	min := vect.Dot(axes[0].N, circle.Tc) - axes[0].D - circle.Radius
	for i, axis := range axes {
		dist := vect.Dot(axis.N, circle.Tc) - axis.D - circle.Radius
		if dist >= 0.0 {
			return false
		} else if dist > min {
			min = dist
			mini = i
		}
	}

	n := axes[mini].N
	a := poly.TVerts[mini]
	b := poly.TVerts[(mini+1)%poly.NumVerts]
	dta := vect.Cross(n, a)
	dtb := vect.Cross(n, b)
	dt := vect.Cross(n, circle.Tc)

	if dt < dtb {
		return circle2circleQuery(m, circle.Tc, b, circle.Radius, 0.0)
	} else if dt < dta {
		m.add(
			vect.Sub(circle.Tc, vect.Mult(n, circle.Radius+min/2.0)),
			vect.Mult(n, -1),
			min,
		)
		return true
	}
	return circle2circleQuery(m, circle.Tc, a, circle.Radius, 0.0)
}

func poly2polyFunc(m *manifold, poly1, poly2 *PolygonArea) bool {
	min1, mini1 := findMSA(poly2, poly1.TAxes)
	if mini1 == -1 {
		return false
	}

	min2, mini2 := findMSA(poly1, poly2.TAxes)
	if mini2 == -1 {
		return false
	}

	// There is overlap, find the penetrating verts
	if min1 > min2 {
		return findVerts(m, poly1, poly2, poly1.TAxes[mini1].N, min1)
	}
	return findVerts(m, poly1, poly2, vect.Mult(poly2.TAxes[mini2].N, -1), min2)
}

// findMSA returns the axis of minimum separation, or -1 if an axis
// separates the polygons.
func findMSA(poly *PolygonArea, axes []PolygonAxis) (min_out vect.Float, min_index int) {
	min := poly.ValueOnAxis(axes[0].N, axes[0].D)
	if min >= 0.0 {
		return 0, -1
	}

	for i := 1; i < len(axes); i++ {
		dist := poly.ValueOnAxis(axes[i].N, axes[i].D)
		if dist >= 0.0 {
			return 0, -1
		} else if dist > min {
			min = dist
			min_index = i
		}
	}

	return min, min_index
}

func findVerts(m *manifold, poly1, poly2 *PolygonArea, n vect.Vect, dist vect.Float) bool {
	for _, v := range poly1.TVerts {
		if poly2.ContainsVert(v) {
			m.add(v, n, dist)
		}
	}

	for _, v := range poly2.TVerts {
		if poly1.ContainsVert(v) {
			m.add(v, n, dist)
		}
	}

	if m.num > 0 {
		return true
	}
	return findVertsFallback(m, poly1, poly2, n, dist)
}

func findVertsFallback(m *manifold, poly1, poly2 *PolygonArea, n vect.Vect, dist vect.Float) bool {
	for _, v := range poly1.TVerts {
		if poly2.ContainsVertPartial(v, vect.Mult(n, -1)) {
			m.add(v, n, dist)
		}
	}

	for _, v := range poly2.TVerts {
		if poly1.ContainsVertPartial(v, n) {
			m.add(v, n, dist)
		}
	}

	return m.num > 0
}

func edgeValueOnAxis(edge *EdgeArea, n vect.Vect, d vect.Float) vect.Float {
	a := vect.Dot(n, edge.Ta) - edge.Radius
	b := vect.Dot(n, edge.Tb) - edge.Radius
	return vect.FMin(a, b) - d
}

func findPointsBehindEdge(m *manifold, edge *EdgeArea, poly *PolygonArea, pDist, coef vect.Float) {
	dta := vect.Cross(edge.Tn, edge.Ta)
	dtb := vect.Cross(edge.Tn, edge.Tb)
	n := vect.Mult(edge.Tn, coef)

	for i := 0; i < poly.NumVerts; i++ {
		v := poly.TVerts[i]
		if vect.Dot(v, n) < vect.Dot(edge.Tn, edge.Ta)*coef+edge.Radius {
			dt := vect.Cross(edge.Tn, v)
			if dta >= dt && dt >= dtb {
				m.add(v, n, pDist)
			}
		}
	}
}

func edge2polyFunc(m *manifold, edge *EdgeArea, poly *PolygonArea) bool {
	axes := poly.TAxes

	edgeD := vect.Dot(edge.Tn, edge.Ta)
	minNorm := poly.ValueOnAxis(edge.Tn, edgeD) - edge.Radius
	minNeg := poly.ValueOnAxis(vect.Mult(edge.Tn, -1), -edgeD) - edge.Radius
	if minNeg >= 0.0 || minNorm >= 0.0 {
		return false
	}

	mini := 0
	polyMin := edgeValueOnAxis(edge, axes[0].N, axes[0].D)
	if polyMin >= 0.0 {
		return false
	}

	for i := 0; i < poly.NumVerts; i++ {
		dist := edgeValueOnAxis(edge, axes[i].N, axes[i].D)
		if dist >= 0.0 {
			return false
		} else if dist > polyMin {
			polyMin = dist
			mini = i
		}
	}

	polyN := vect.Mult(axes[mini].N, -1)

	va := vect.Add(edge.Ta, vect.Mult(polyN, edge.Radius))
	vb := vect.Add(edge.Tb, vect.Mult(polyN, edge.Radius))
	if poly.ContainsVert(va) {
		m.add(va, polyN, polyMin)
	}
	if poly.ContainsVert(vb) {
		m.add(vb, polyN, polyMin)
	}

	if minNorm >= polyMin || minNeg >= polyMin {
		if minNorm > minNeg {
			findPointsBehindEdge(m, edge, poly, minNorm, 1.0)
		} else {
			findPointsBehindEdge(m, edge, poly, minNeg, -1.0)
		}
	}

	// If no other collision points are found, try colliding endpoints.
	if m.num == 0 {
		polyA := poly.TVerts[mini]
		polyB := poly.TVerts[(mini+1)%poly.NumVerts]

		return circle2circleQuery(m, edge.Ta, polyA, edge.Radius, 0.0) ||
			circle2circleQuery(m, edge.Tb, polyA, edge.Radius, 0.0) ||
			circle2circleQuery(m, edge.Ta, polyB, edge.Radius, 0.0) ||
			circle2circleQuery(m, edge.Tb, polyB, edge.Radius, 0.0)
	}

	return true
}
