package raycast3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mirrorCorridor builds two facing boxes on the Z axis; a ray fired from the
// origin along +Z bounces between them until the loop gives up.
func mirrorCorridor(t *testing.T, reflection Real, lights []Light) *Tracer {
	t.Helper()
	front := mustBox(t, Vector3{0, 0, 10}, 2, 2, 2, 0)
	back := mustBox(t, Vector3{0, 0, -10}, 2, 2, 2, 0)
	s, err := NewScene(
		[]Material{{Diffuse: RGB{1, 1, 1}, Reflection: reflection}},
		[]*Box{front, back}, nil, lights,
	)
	require.NoError(t, err)
	return NewTracer(s)
}

func TestTrace_MissIsBlack(t *testing.T) {
	tr := mirrorCorridor(t, 1, nil)
	res := tr.Trace(Ray{Vector3{50, 0, 0}, Vector3{0, 0, 1}})
	assert.Equal(t, RGB{}, res.Color)
	assert.Equal(t, 0, res.Bounces)
	assert.Equal(t, Escape, res.End)
	assert.Equal(t, 1.0, res.Coef)
}

func TestTrace_MissAddsBackgroundScaledByCoef(t *testing.T) {
	tr := mirrorCorridor(t, 0.5, nil)
	tr.Background = RGB{0.2, 0.4, 0.6}
	tr.MaxDepth = 1
	res := tr.Trace(Ray{Vector3{50, 0, 0}, Vector3{0, 0, 1}})
	assert.Equal(t, tr.Background, res.Color)
}

func TestTrace_TerminatesAtDepthLimit(t *testing.T) {
	tr := mirrorCorridor(t, 1, nil)
	res := tr.Trace(Ray{Vector3{0, 0, 0}, Vector3{0, 0, 1}})
	assert.Equal(t, MaxDepth, res.Bounces)
	assert.Equal(t, DepthLimit, res.End)
	assert.Equal(t, 1.0, res.Coef)
}

func TestTrace_CoefMonotone(t *testing.T) {
	for _, refl := range []Real{1, 0.5, 0.99} {
		tr := mirrorCorridor(t, refl, nil)
		prev := Real(1)
		steps := 0
		tr.trace(Ray{Vector3{0, 0, 0}, Vector3{0, 0, 1}}, func(st traceStep) {
			steps++
			require.LessOrEqual(t, st.coef, prev)
			if refl < 1 {
				require.Less(t, st.coef, prev, "reflection %.2f at depth %d", refl, st.depth)
			}
			// alternates between the two inner faces
			if st.depth%2 == 1 {
				assert.InDelta(t, 9.0, st.point.Z, 1e-9)
			} else {
				assert.InDelta(t, -9.0, st.point.Z, 1e-9)
			}
			prev = st.coef
		})
		assert.LessOrEqual(t, steps, MaxDepth)
	}
}

func TestTrace_ZeroReflectionIsAbsorbed(t *testing.T) {
	lights := []Light{{Position: Vector3{0, 0, 0}, Intensity: RGB{1, 1, 1}}}
	tr := mirrorCorridor(t, 0, lights)
	res := tr.Trace(Ray{Vector3{0, 0, 0}, Vector3{0, 0, 1}})
	assert.Equal(t, 1, res.Bounces)
	assert.Equal(t, Absorbed, res.End)
	assert.Equal(t, 0.0, res.Coef)
	// light at the ray origin, straight onto the face at z=9
	assert.InDelta(t, 1.0, res.Color.R, 1e-12)
}

func TestTrace_EdgeHitStopsWithZeroNormal(t *testing.T) {
	b := mustBox(t, Vector3{0, 0, 0}, 2, 2, 2, 0)
	s, err := NewScene([]Material{{Diffuse: RGB{1, 1, 1}, Reflection: 1}}, []*Box{b}, nil,
		[]Light{{Position: Vector3{0, 0, -10}, Intensity: RGB{1, 1, 1}}})
	require.NoError(t, err)
	tr := NewTracer(s)

	// grazes the x=1 plane and enters at the edge (1, 0, -1)
	res := tr.Trace(Ray{Vector3{1, 0, -10}, Vector3{0, 0, 1}})
	assert.Equal(t, ZeroNormal, res.End)
	assert.Equal(t, 0, res.Bounces)
	assert.True(t, res.Color.IsBlack())
}

func TestTrace_SingleBounceColor(t *testing.T) {
	b := mustBox(t, Vector3{0, 0, 0}, 2, 2, 2, 0)
	s, err := NewScene([]Material{{Diffuse: RGB{1, 0.5, 0.25}, Reflection: 0.5}}, []*Box{b}, nil,
		[]Light{{Position: Vector3{0, 0, -10}, Intensity: RGB{1, 1, 1}}})
	require.NoError(t, err)
	tr := NewTracer(s)

	res := tr.Trace(Ray{Vector3{0, 0, -10}, Vector3{0, 0, 1}})
	// reflected straight back to -Z, nothing else in the scene
	assert.Equal(t, 1, res.Bounces)
	assert.Equal(t, Escape, res.End)
	assert.InDelta(t, 0.5, res.Coef, 1e-12)
	assert.InDelta(t, 1.0, res.Color.R, 1e-12)
	assert.InDelta(t, 0.5, res.Color.G, 1e-12)
	assert.InDelta(t, 0.25, res.Color.B, 1e-12)

	tr.Gain = RGB{0.5, 2, 4}
	res = tr.Trace(Ray{Vector3{0, 0, -10}, Vector3{0, 0, 1}})
	assert.InDelta(t, 0.5, res.Color.R, 1e-12)
	assert.InDelta(t, 1.0, res.Color.G, 1e-12)
	assert.InDelta(t, 1.0, res.Color.B, 1e-12)
}

func TestTrace_DefaultSceneCentrePixel(t *testing.T) {
	cfg := DefaultConfig()
	scene, err := cfg.BuildScene()
	require.NoError(t, err)
	cam, err := cfg.Camera.Build()
	require.NoError(t, err)
	tr := cfg.NewTracer(scene)

	res := tr.Trace(cam.PrimaryRay(500, 500, cfg.Width, cfg.Height))
	require.GreaterOrEqual(t, res.Bounces, 1)

	p := Vector3{500, 500, 0}
	n := Vector3{0, 0, -1}
	want := shade(scene, p, n, scene.Materials[0], 1, RGB{1, 1, 1})
	// first bounce goes back along -Z and escapes the scene
	assert.Equal(t, 1, res.Bounces)
	assert.Equal(t, Escape, res.End)
	assert.InDelta(t, want.R, res.Color.R, 1e-9)
	assert.InDelta(t, want.G, res.Color.G, 1e-9)
	assert.InDelta(t, want.B, res.Color.B, 1e-9)
}

func TestSilhouette(t *testing.T) {
	b := mustBox(t, Vector3{0, 0, 0}, 2, 2, 2, 0)
	sph, err := NewSphere(Vector3{10, 0, 0}, 1, 1)
	require.NoError(t, err)
	s, err := NewScene(testMaterials(), []*Box{b}, []*Sphere{sph}, nil)
	require.NoError(t, err)
	tr := NewTracer(s)

	c, ok := tr.Silhouette(Ray{Vector3{0, 0, -10}, Vector3{0, 0, 1}})
	assert.True(t, ok)
	assert.Equal(t, RGB{1, 0, 0}, c)

	c, ok = tr.Silhouette(Ray{Vector3{10, 0, -10}, Vector3{0, 0, 1}})
	assert.True(t, ok)
	assert.Equal(t, RGB{0, 1, 0}, c)

	c, ok = tr.Silhouette(Ray{Vector3{5, 5, -10}, Vector3{0, 0, 1}})
	assert.False(t, ok)
	assert.Equal(t, RGB{}, c)
}

func TestTrace_HitEpsilonFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Materials = []MaterialCfg{{Diffuse: RGB{1, 1, 1}}}
	cfg.Boxes = []BoxCfg{{Center: Vector3{0, 0, 1.0005}, Length: 2, Width: 2, Height: 2}}
	cfg.Lights = []LightCfg{{Position: Vector3{0, 0, -10}, Intensity: RGB{1, 1, 1}}}
	scene, err := cfg.BuildScene()
	require.NoError(t, err)
	r := Ray{Vector3{0, 0, 0}, Vector3{0, 0, 1}}

	res := cfg.NewTracer(scene).Trace(r)
	assert.Equal(t, Escape, res.End)
	assert.Equal(t, 0, res.Bounces)

	cfg.HitEpsilon = 1e-6
	require.NoError(t, cfg.validate())
	res = cfg.NewTracer(scene).Trace(r)
	assert.Equal(t, Absorbed, res.End)
	assert.Equal(t, 1, res.Bounces)
	assert.InDelta(t, 1.0, res.Color.R, 1e-12)

	cfg.HitEpsilon = -1
	assert.Error(t, cfg.validate())
}
