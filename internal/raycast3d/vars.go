package raycast3d

var (
	Debug   = false // set to true for verbose debug output
	Workers = 0     // render goroutines; <= 0 means one per logical CPU
	RAW     = false // set to true to also dump float radiance next to the image
	// Compile time checks
	_ Camera = (*OrthoCamera)(nil)
	_ Camera = (*PinholeCamera)(nil)
	_ Logger = (*DefaultLogger)(nil)
)
