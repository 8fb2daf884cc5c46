package soccertrack

import "gopkg.in/ini.v1"

// RegistryConfig aggregates every tunable named in the per-frame
// TrackedObjectRegistry step. Defaults mirror the literal constants
// recovered from the original implementation.
type RegistryConfig struct {
	ScanningAttempts                  int
	MinimumGroupSize                  int
	MinimumGroupSizeAtFirstDetection  int
	MaxWidth, MaxHeight               int
	RemainingFactor                   float64
	EnlargementFactor                 float64
	PreviousLookSize                  int
	AllowedFramesOutsideOfTerrain     int
	RedetectStep                      int
	MaxObjects                        int
	BackFramesToCheckForCloseTracked            int
	BackFramesToCheckForStrongClosePushedOut    int
	BackFramesToCheckForClosePushedOut          int
	SameGroupBackFramesForSpeed                 int
	GreenThreshold                     float64

	// StrictDiagonalTouch resolves spec.md §9's first open question.
	// false (default): any already-owned 8-neighbor counts as
	// "touching another object". true: reproduces the original's
	// row!=seedRow && col!=seedCol AND-bug, kept only for parity
	// testing against the legacy behavior.
	StrictDiagonalTouch bool

	// UseOptimalAssignment selects HungarianSolver over GreedySolver
	// as the solver NewRegistry stores (§4.9). Phase F reconnection
	// does not call the stored solver.
	UseOptimalAssignment bool
}

// DefaultRegistryConfig returns the driver's documented defaults.
func DefaultRegistryConfig() RegistryConfig {
	return RegistryConfig{
		ScanningAttempts:                         3,
		MinimumGroupSize:                         3,
		MinimumGroupSizeAtFirstDetection:         5,
		MaxWidth:                                 400,
		MaxHeight:                                400,
		RemainingFactor:                           1.2,
		EnlargementFactor:                         3.0,
		PreviousLookSize:                          25,
		AllowedFramesOutsideOfTerrain:             300,
		RedetectStep:                              2,
		MaxObjects:                                35,
		BackFramesToCheckForCloseTracked:          50,
		BackFramesToCheckForStrongClosePushedOut:  50,
		BackFramesToCheckForClosePushedOut:        150,
		SameGroupBackFramesForSpeed:               10,
		GreenThreshold:                            45,
		StrictDiagonalTouch:                       false,
		UseOptimalAssignment:                      false,
	}
}

// DriverConfig aggregates the whole pipeline's external knobs, from
// model-build parameters to display-only settings. It can be loaded
// from an INI file via LoadDriverConfigINI.
type DriverConfig struct {
	Skip int
	Step int
	Take int

	ThresholdFactor float64

	ChromaticityBoundsCalculationStep int

	CameraMovedThreshold  float64
	PixelChangedThreshold float64
	CameraMovedStep       int

	TrajectoryDrawingLength int

	PreviousSizeThreshold float64
	YAligned              bool

	MinimumSize  int
	UntouchedTTL int

	Registry RegistryConfig
}

// DefaultDriverConfig returns the literal defaults recovered from the
// original implementation's main loop.
func DefaultDriverConfig() DriverConfig {
	return DriverConfig{
		Skip:                               0,
		Step:                               30,
		Take:                               30,
		ThresholdFactor:                    0.8,
		ChromaticityBoundsCalculationStep:  25,
		CameraMovedThreshold:               0.2,
		PixelChangedThreshold:              5.0,
		CameraMovedStep:                    20,
		TrajectoryDrawingLength:            100,
		PreviousSizeThreshold:              2.0,
		YAligned:                           true,
		MinimumSize:                        3,
		UntouchedTTL:                       30,
		Registry:                           DefaultRegistryConfig(),
	}
}

// Option mutates a DriverConfig; used with NewDriverConfig for the
// functional-options construction style.
type Option func(*DriverConfig)

// NewDriverConfig returns DefaultDriverConfig with opts applied in
// order.
func NewDriverConfig(opts ...Option) DriverConfig {
	cfg := DefaultDriverConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func WithSkipStepTake(skip, step, take int) Option {
	return func(c *DriverConfig) { c.Skip, c.Step, c.Take = skip, step, take }
}

func WithThresholdFactor(factor float64) Option {
	return func(c *DriverConfig) { c.ThresholdFactor = factor }
}

func WithMaxObjects(n int) Option {
	return func(c *DriverConfig) { c.Registry.MaxObjects = n }
}

func WithStrictDiagonalTouch(strict bool) Option {
	return func(c *DriverConfig) { c.Registry.StrictDiagonalTouch = strict }
}

func WithOptimalAssignment(optimal bool) Option {
	return func(c *DriverConfig) { c.Registry.UseOptimalAssignment = optimal }
}

// LoadDriverConfigINI overlays a "driver" section from an INI file onto
// DefaultDriverConfig, mirroring the MOT seqinfo.ini loading style: keys
// absent from the file keep their default via MustX.
func LoadDriverConfigINI(path string) (DriverConfig, error) {
	cfg := DefaultDriverConfig()

	file, err := ini.Load(path)
	if err != nil {
		return cfg, err
	}
	section := file.Section("driver")

	cfg.Skip = section.Key("skip").MustInt(cfg.Skip)
	cfg.Step = section.Key("step").MustInt(cfg.Step)
	cfg.Take = section.Key("take").MustInt(cfg.Take)
	cfg.ThresholdFactor = section.Key("threshold_factor").MustFloat64(cfg.ThresholdFactor)
	cfg.ChromaticityBoundsCalculationStep = section.Key("chromaticity_bounds_calculation_step").MustInt(cfg.ChromaticityBoundsCalculationStep)
	cfg.CameraMovedThreshold = section.Key("camera_moved_threshold").MustFloat64(cfg.CameraMovedThreshold)
	cfg.PixelChangedThreshold = section.Key("pixel_changed_threshold").MustFloat64(cfg.PixelChangedThreshold)
	cfg.CameraMovedStep = section.Key("camera_moved_step").MustInt(cfg.CameraMovedStep)
	cfg.TrajectoryDrawingLength = section.Key("trajectory_drawing_length").MustInt(cfg.TrajectoryDrawingLength)
	cfg.PreviousSizeThreshold = section.Key("previous_size_threshold").MustFloat64(cfg.PreviousSizeThreshold)
	cfg.YAligned = section.Key("y_aligned").MustBool(cfg.YAligned)
	cfg.MinimumSize = section.Key("minimum_size").MustInt(cfg.MinimumSize)
	cfg.UntouchedTTL = section.Key("untouched_ttl").MustInt(cfg.UntouchedTTL)

	registry := file.Section("registry")
	cfg.Registry.ScanningAttempts = registry.Key("scanning_attempts").MustInt(cfg.Registry.ScanningAttempts)
	cfg.Registry.MinimumGroupSize = registry.Key("minimum_group_size").MustInt(cfg.Registry.MinimumGroupSize)
	cfg.Registry.MinimumGroupSizeAtFirstDetection = registry.Key("minimum_group_size_at_first_detection").MustInt(cfg.Registry.MinimumGroupSizeAtFirstDetection)
	cfg.Registry.MaxWidth = registry.Key("max_width").MustInt(cfg.Registry.MaxWidth)
	cfg.Registry.MaxHeight = registry.Key("max_height").MustInt(cfg.Registry.MaxHeight)
	cfg.Registry.RemainingFactor = registry.Key("remaining_factor").MustFloat64(cfg.Registry.RemainingFactor)
	cfg.Registry.EnlargementFactor = registry.Key("enlargement_factor").MustFloat64(cfg.Registry.EnlargementFactor)
	cfg.Registry.PreviousLookSize = registry.Key("previous_look_size").MustInt(cfg.Registry.PreviousLookSize)
	cfg.Registry.AllowedFramesOutsideOfTerrain = registry.Key("allowed_frames_outside_of_terrain").MustInt(cfg.Registry.AllowedFramesOutsideOfTerrain)
	cfg.Registry.RedetectStep = registry.Key("redetect_step").MustInt(cfg.Registry.RedetectStep)
	cfg.Registry.MaxObjects = registry.Key("max_objects").MustInt(cfg.Registry.MaxObjects)
	cfg.Registry.StrictDiagonalTouch = registry.Key("strict_diagonal_touch").MustBool(cfg.Registry.StrictDiagonalTouch)
	cfg.Registry.UseOptimalAssignment = registry.Key("use_optimal_assignment").MustBool(cfg.Registry.UseOptimalAssignment)

	return cfg, nil
}
