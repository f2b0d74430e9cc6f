package raycast3d

type primKind uint8

const (
	kindNone primKind = iota
	kindBox
	kindSphere
)

type objectHit struct {
	t     Real
	kind  primKind
	index int // into Scene.Boxes or Scene.Spheres
	mat   int // into Scene.Materials
}

// normal derives the surface normal at p for the primitive that was hit.
// Boxes use exact face normals; a zero vector means an edge or corner.
func (h objectHit) normal(scene *Scene, p Vector3) Vector3 {
	switch h.kind {
	case kindBox:
		return scene.Boxes[h.index].faceNormal(p)
	case kindSphere:
		return scene.Spheres[h.index].normalAt(p)
	}
	return Vector3{}
}

// nearestHit scans every primitive once and returns the closest hit with
// tMin < t < tMax. tMin is an absolute distance: it keeps a bounced ray off
// its own surface, and also hides genuine hits closer than that. Only a strictly smaller t replaces the current best, so
// on exact ties the earlier primitive (boxes first, then by index) wins.
func nearestHit(scene *Scene, r Ray, tMin, tMax Real) (objectHit, bool) {
	best := objectHit{}
	okAny := false
	bestT := tMax
	if !isFinite(bestT) {
		bestT = MaxDistance
	}

	for i, b := range scene.Boxes {
		ok, tNear, _ := intersectRayBox(r, b)
		if !ok || tNear <= tMin || tNear >= bestT {
			continue
		}
		bestT, okAny = tNear, true
		best = objectHit{t: tNear, kind: kindBox, index: i, mat: b.Material}
	}

	for i, s := range scene.Spheres {
		if t, ok := intersectRaySphere(r, s, tMin, bestT); ok {
			bestT, okAny = t, true
			best = objectHit{t: t, kind: kindSphere, index: i, mat: s.Material}
		}
	}

	return best, okAny
}
