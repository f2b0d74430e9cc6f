package raycast3d

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Run loads the config at cfgPath (empty: built-in scene), renders it and
// writes the image.
func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	_, err = RunConfig(cfg)
	return err
}

// RunConfig renders cfg and saves the outputs it names.
func RunConfig(cfg *Config) (RenderStats, error) {
	runID := uuid.NewString()
	if Debug {
		// DebugLog goes through the package logger, not just lg
		Log().SetDebug(true)
	}
	lg := Log()
	if dl, ok := lg.(*DefaultLogger); ok {
		lg = dl.WithRun(runID)
	}

	scene, err := cfg.BuildScene()
	if err != nil {
		return RenderStats{}, err
	}
	cam, err := cfg.Camera.Build()
	if err != nil {
		return RenderStats{}, err
	}
	fb, err := NewFramebuffer(cfg.Width, cfg.Height)
	if err != nil {
		return RenderStats{}, err
	}
	tr := cfg.NewTracer(scene)

	workers := cfg.Workers
	if Workers > 0 {
		workers = Workers
	}

	if Debug {
		cov := estimateCoverage(tr, cam, cfg.Width, cfg.Height, cfg.ProbeRays, workers)
		lg.Debugf("Coverage estimate: %.2f%% of primary rays hit a primitive (%d probes)", cov*100, cfg.ProbeRays)
	}

	lg.Infof("Rendering %dx%d, mode=%s, boxes=%d, spheres=%d, lights=%d", cfg.Width, cfg.Height, cfg.Mode, len(scene.Boxes), len(scene.Spheres), len(scene.Lights))
	stats := render(tr, cam, fb, cfg.Mode, workers)
	lg.Infof("Rendered %d pixels with %d workers in %s (bounces=%d, hits=%d)", stats.Pixels, stats.Workers, stats.Duration, stats.Bounces, stats.Hits)
	if cfg.Mode == ModeShade {
		var parts []string
		for c := Category(0); c < numCategories; c++ {
			parts = append(parts, fmt.Sprintf("%s=%d", c, stats.Ends[c]))
		}
		lg.Debugf("Terminations: %s", strings.Join(parts, " "))
	}

	if Debug {
		raysStats()
	}

	if err := SaveImage(cfg.Output, fb, cfg.Format); err != nil {
		return stats, err
	}
	lg.Infof("Saved image: %s", cfg.Output)

	rawOut := cfg.RawOut
	if rawOut == "" && RAW {
		rawOut = strings.TrimSuffix(cfg.Output, filepath.Ext(cfg.Output)) + ".raw"
	}
	if rawOut != "" {
		if err := fb.SaveRawRGB64(rawOut); err != nil {
			return stats, fmt.Errorf("save raw %s: %w", rawOut, err)
		}
		lg.Infof("Saved raw radiance: %s", rawOut)
	}
	return stats, nil
}
