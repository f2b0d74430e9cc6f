package raycast3d

// Channel indices for readability.
const (
	ChR = 0
	ChG = 1
	ChB = 2

	ImageWidth  = 1000
	ImageHeight = 1000
	ImageOut    = "image_cube.ppm"
	MaxDepth    = 15      // hard cap on reflection steps per pixel
	MaxDistance = 20000.0 // max render distance; also the closest-hit seed
	OrthoZ      = -2000.0 // ortho camera ray origin plane
	ProbeRays   = 10_000
	GIFDelay    = 0
	PNG16Gamma  = 2.2 // gamma for the normalized 16-bit PNG

	// hot-loop constants
	hitEps   = 1e-3 // minimum t accepted by the closest-hit selector
	faceEps  = 1e-6 // relative tolerance when matching a hit point to a box plane
	slabNear = -1e300
	slabFar  = 1e300
)
