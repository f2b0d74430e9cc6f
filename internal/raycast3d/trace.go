package raycast3d

// Tracer walks the bounded reflection loop for single rays. It only reads
// Scene, so one Tracer may be shared by all render goroutines.
type Tracer struct {
	Scene       *Scene
	MaxDepth    int
	MaxDistance Real
	HitEpsilon  Real // minimum hit distance; <= 0 means hitEps
	Gain        RGB  // per-channel gain applied to every light contribution
	Background  RGB  // added (times the current energy) when a ray escapes
}

func NewTracer(scene *Scene) *Tracer {
	return &Tracer{
		Scene:       scene,
		MaxDepth:    MaxDepth,
		MaxDistance: MaxDistance,
		Gain:        RGB{1, 1, 1},
	}
}

func (tr *Tracer) hitEpsilon() Real {
	if tr.HitEpsilon > 0 {
		return tr.HitEpsilon
	}
	return hitEps
}

// TraceResult is the outcome of one traversal.
type TraceResult struct {
	Color   RGB
	Bounces int
	Coef    Real // energy coefficient left when the loop stopped
	End     Category
}

// traceStep is handed to observers after each completed bounce.
type traceStep struct {
	depth int
	point Vector3
	coef  Real
	color RGB
}

// Trace runs the reflection loop for r.
func (tr *Tracer) Trace(r Ray) TraceResult {
	return tr.trace(r, nil)
}

func (tr *Tracer) trace(r Ray, observe func(traceStep)) TraceResult {
	maxDepth := tr.MaxDepth
	if maxDepth <= 0 {
		maxDepth = MaxDepth
	}
	tMin := tr.hitEpsilon()
	origin, dir := r.Origin, r.Direction
	var (
		color RGB
		P     Vector3
	)
	coef := Real(1)
	depth := 0
	end := DepthLimit

	for coef > 0 && depth < maxDepth {
		ray := Ray{origin, dir}
		hit, ok := nearestHit(tr.Scene, ray, tMin, tr.MaxDistance)
		if !ok {
			color = color.Add(tr.Background.Mul(coef))
			end = Escape
			break
		}
		P = ray.At(hit.t)

		N := hit.normal(tr.Scene, P)
		if N.Dot(N) == 0 {
			// edge or corner: ends like an escape, counted apart
			color = color.Add(tr.Background.Mul(coef))
			end = ZeroNormal
			break
		}
		N = N.Norm()

		mat := tr.Scene.Materials[hit.mat]
		color = color.Add(shade(tr.Scene, P, N, mat, coef, tr.Gain))

		coef *= mat.Reflection
		dir = reflect3(dir, N)
		origin = P
		depth++

		if observe != nil {
			observe(traceStep{depth: depth, point: P, coef: coef, color: color})
		}
	}
	if end == DepthLimit && coef <= 0 {
		end = Absorbed
	}

	if Debug {
		logRay(end, r.Origin, r.Direction, P, depth, coef)
	}
	return TraceResult{Color: color, Bounces: depth, Coef: coef, End: end}
}

// Silhouette is the flat, unshaded mode: any box the ray's line crosses
// wins over spheres, and the first crossed primitive paints its material's
// diffuse color. Spheres use the distance-free overlap test.
func (tr *Tracer) Silhouette(r Ray) (RGB, bool) {
	for _, b := range tr.Scene.Boxes {
		if ok, _, _ := intersectRayBox(r, b); ok {
			return tr.Scene.Materials[b.Material].Diffuse, true
		}
	}
	for _, s := range tr.Scene.Spheres {
		if raySphereOverlaps(r, s) {
			return tr.Scene.Materials[s.Material].Diffuse, true
		}
	}
	return tr.Background, false
}
