package raycast3d

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type MaterialCfg struct {
	Diffuse    RGB  `json:"diffuse"`
	Reflection Real `json:"reflection"`
}

type BoxCfg struct {
	Center   Vector3 `json:"center"`
	Length   Real    `json:"length"`
	Width    Real    `json:"width"`
	Height   Real    `json:"height"`
	Material int     `json:"material"`
}

type SphereCfg struct {
	Center   Vector3 `json:"center"`
	Radius   Real    `json:"radius"`
	Material int     `json:"material"`
}

type LightCfg struct {
	Position  Vector3 `json:"position"`
	Intensity RGB     `json:"intensity"`
}

// CameraCfg selects "ortho" (default) or "pinhole".
type CameraCfg struct {
	Type string `json:"type,omitempty"`
	// ortho
	OriginZ *Real `json:"originZ,omitempty"`
	Scale   Real  `json:"scale,omitempty"`
	OffsetX Real  `json:"offsetX,omitempty"`
	OffsetY Real  `json:"offsetY,omitempty"`
	// pinhole
	Eye    Vector3 `json:"eye,omitempty"`
	LookAt Vector3 `json:"lookAt,omitempty"`
	Up     Vector3 `json:"up,omitempty"`
	FOVDeg Real    `json:"fovDeg,omitempty"`
}

type Config struct {
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Workers     int           `json:"workers,omitempty"`
	Output      string        `json:"output"`
	Format      string        `json:"format,omitempty"`
	RawOut      string        `json:"rawOut,omitempty"`
	Mode        RenderMode    `json:"mode,omitempty"`
	MaxDepth    int           `json:"maxDepth,omitempty"`
	MaxDistance Real          `json:"maxDistance,omitempty"`
	HitEpsilon  Real          `json:"hitEpsilon,omitempty"`
	ProbeRays   int           `json:"probeRays,omitempty"`
	Background  RGB           `json:"background"`
	Gain        *RGB          `json:"gain,omitempty"`
	Camera      CameraCfg     `json:"camera"`
	Materials   []MaterialCfg `json:"materials"`
	Boxes       []BoxCfg      `json:"boxes,omitempty"`
	Spheres     []SphereCfg   `json:"spheres,omitempty"`
	Lights      []LightCfg    `json:"lights"`
}

// DefaultConfig is the three-cube, three-light scene rendered 1000x1000
// through the ortho camera.
func DefaultConfig() *Config {
	cfg := &Config{
		Width:  ImageWidth,
		Height: ImageHeight,
		Output: ImageOut,
		Materials: []MaterialCfg{
			{Diffuse: RGB{1, 0, 0}, Reflection: 0.9},
			{Diffuse: RGB{0, 1, 0}, Reflection: 0.5},
			{Diffuse: RGB{0, 0, 1}, Reflection: 0.9},
		},
		Boxes: []BoxCfg{
			{Center: Vector3{500, 500, 100}, Length: 200, Width: 200, Height: 200, Material: 0},
			{Center: Vector3{0, 0, 0}, Length: 200, Width: 200, Height: 200, Material: 1},
			{Center: Vector3{700, 700, 0}, Length: 200, Width: 200, Height: 200, Material: 2},
		},
		Lights: []LightCfg{
			{Position: Vector3{100, 240, -100}, Intensity: RGB{1, 1, 1}},
			{Position: Vector3{3200, 3000, -1000}, Intensity: RGB{0.6, 0.7, 1}},
			{Position: Vector3{300, 0, -100}, Intensity: RGB{0.3, 0.5, 1}},
		},
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Width <= 0 {
		c.Width = ImageWidth
	}
	if c.Height <= 0 {
		c.Height = ImageHeight
	}
	if c.Output == "" {
		c.Output = ImageOut
	}
	if c.Mode == "" {
		c.Mode = ModeShade
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = MaxDepth
	}
	if c.MaxDistance <= 0 {
		c.MaxDistance = MaxDistance
	}
	if c.ProbeRays <= 0 {
		c.ProbeRays = ProbeRays
	}
	if c.Gain == nil {
		c.Gain = &RGB{1, 1, 1}
	}
	if c.Camera.Type == "" {
		c.Camera.Type = "ortho"
	}
	c.Camera.Type = strings.ToLower(c.Camera.Type)
}

func (c *Config) validate() error {
	if len(c.Lights) == 0 {
		return fmt.Errorf("config has no lights")
	}
	if len(c.Materials) == 0 {
		return fmt.Errorf("config has no materials")
	}
	if len(c.Boxes) == 0 && len(c.Spheres) == 0 {
		return fmt.Errorf("config has no boxes or spheres")
	}
	if c.HitEpsilon < 0 || c.HitEpsilon >= c.MaxDistance {
		return fmt.Errorf("hitEpsilon must be in [0, maxDistance), got %.6g", c.HitEpsilon)
	}
	if c.Mode != ModeShade && c.Mode != ModeFlat {
		return fmt.Errorf("unknown render mode %q (want %q or %q)", c.Mode, ModeShade, ModeFlat)
	}
	if _, err := formatOf(c.Output, c.Format); err != nil {
		return err
	}
	return nil
}

// Build validates and constructs the runtime camera.
func (cc CameraCfg) Build() (Camera, error) {
	switch cc.Type {
	case "", "ortho":
		z := Real(OrthoZ)
		if cc.OriginZ != nil {
			z = *cc.OriginZ
		}
		scale := cc.Scale
		if scale == 0 {
			scale = 1
		}
		return NewOrthoCamera(z, scale, cc.OffsetX, cc.OffsetY)
	case "pinhole":
		up := cc.Up
		if up == (Vector3{}) {
			up = Vector3{0, 1, 0}
		}
		fov := cc.FOVDeg
		if fov == 0 {
			fov = 60
		}
		return NewPinholeCamera(cc.Eye, cc.LookAt, up, fov)
	}
	return nil, fmt.Errorf("unknown camera type %q", cc.Type)
}

// BuildScene validates and constructs the immutable scene.
func (c *Config) BuildScene() (*Scene, error) {
	mats := make([]Material, 0, len(c.Materials))
	for i, mc := range c.Materials {
		m, err := NewMaterial(mc.Diffuse, mc.Reflection)
		if err != nil {
			return nil, fmt.Errorf("material #%d: %w", i, err)
		}
		mats = append(mats, m)
	}
	boxes := make([]*Box, 0, len(c.Boxes))
	for i, bc := range c.Boxes {
		b, err := NewBox(bc.Center, bc.Length, bc.Width, bc.Height, bc.Material)
		if err != nil {
			return nil, fmt.Errorf("box #%d: %w", i, err)
		}
		boxes = append(boxes, b)
	}
	spheres := make([]*Sphere, 0, len(c.Spheres))
	for i, sc := range c.Spheres {
		s, err := NewSphere(sc.Center, sc.Radius, sc.Material)
		if err != nil {
			return nil, fmt.Errorf("sphere #%d: %w", i, err)
		}
		spheres = append(spheres, s)
	}
	lights := make([]Light, 0, len(c.Lights))
	for i, lc := range c.Lights {
		L, err := NewLight(lc.Position, lc.Intensity)
		if err != nil {
			return nil, fmt.Errorf("light #%d: %w", i, err)
		}
		lights = append(lights, L)
	}
	return NewScene(mats, boxes, spheres, lights)
}

// NewTracer builds a tracer for scene using the config's tuning values.
func (c *Config) NewTracer(scene *Scene) *Tracer {
	tr := NewTracer(scene)
	tr.MaxDepth = c.MaxDepth
	tr.MaxDistance = c.MaxDistance
	tr.HitEpsilon = c.HitEpsilon
	tr.Background = c.Background
	if c.Gain != nil {
		tr.Gain = *c.Gain
	}
	return tr
}

// loadConfig reads path; an empty path selects DefaultConfig.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		DebugLog("No config given, using the built-in scene")
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseConfig(data, path)
}

func parseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	DebugLog("Loaded config from %s: size=(%d, %d), boxes=%d, spheres=%d, lights=%d, mode=%s", path, cfg.Width, cfg.Height, len(cfg.Boxes), len(cfg.Spheres), len(cfg.Lights), cfg.Mode)
	return &cfg, nil
}
