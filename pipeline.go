package soccertrack

// Pipeline wires the per-frame data flow described in §6: camera-motion
// detection, background-model maintenance, foreground segmentation,
// object-registry tracking and team classification. One Pipeline
// belongs to one video stream.
type Pipeline struct {
	Config DriverConfig

	Model      FieldColorModel
	Background *BackgroundModel
	Segmenter  ForegroundSegmenter
	Registry   *Registry
	Motion     *CameraMotionDetector
	Teams      TeamClassifier
	Terrain    TerrainMask

	frameIndex int
	prevFrame  *Frame
	hasPrev    bool
}

// NewPipeline constructs a Pipeline from a driver config, an initial
// field-color model (typically seeded from a handful of sampled
// frames), team seeds, and a terrain mask.
func NewPipeline(cfg DriverConfig, model FieldColorModel, teamSeeds TeamSeeds, terrain TerrainMask) *Pipeline {
	background := NewBackgroundModel(cfg.Take, model, cfg.PreviousSizeThreshold, cfg.YAligned, cfg.MinimumSize, cfg.UntouchedTTL)
	segmenter := NewForegroundSegmenter(model, cfg.ThresholdFactor)
	registry := NewRegistry(cfg.Registry, segmenter, nil)
	motion := NewCameraMotionDetector(cfg.CameraMovedStep, cfg.PixelChangedThreshold, cfg.CameraMovedThreshold)

	return &Pipeline{
		Config:     cfg,
		Model:      model,
		Background: background,
		Segmenter:  segmenter,
		Registry:   registry,
		Motion:     motion,
		Teams:      NewTeamClassifier(teamSeeds),
		Terrain:    terrain,
	}
}

// StepResult is one frame's pipeline output: the tracked objects as of
// this frame (already advanced by Registry.Step), their team
// assignments by object id, and whether camera motion requests a
// terrain reselect.
type StepResult struct {
	Tracked          []*TrackedObject
	Teams            map[int]int
	Motion           MotionResult
	ModelReady       bool
}

// Step advances the pipeline by one frame. frame is borrowed read-only
// except that the pipeline retains a clone for next frame's
// previous-frame comparisons, which it closes on the following Step or
// on Close.
func (p *Pipeline) Step(frame Frame) (StepResult, error) {
	p.frameIndex++

	var prevArg *Frame
	if p.hasPrev {
		prevArg = p.prevFrame
	}

	motion := p.Motion.Observe(frame, prevArg, p.Terrain)
	if motion.RequestsReselect {
		p.Background.Clear()
	}

	p.Background.Add(frame)

	result := StepResult{Motion: motion}
	if !p.Background.Ready() {
		p.rotatePrevFrame(frame)
		return result, ErrModelNotReady
	}
	result.ModelReady = true

	background := p.Background.Background()
	defer background.Close()

	if p.Config.ChromaticityBoundsCalculationStep > 0 && p.frameIndex%p.Config.ChromaticityBoundsCalculationStep == 0 {
		p.Model = p.Model.RecomputeBounds(background, 0.02)
		p.Segmenter.Model = p.Model
		p.Segmenter.GreenThreshold = p.Model.GreenThreshold
		p.Registry.segmenter = p.Segmenter
	}

	if err := p.Registry.Step(frame, prevArg, background, p.Terrain); err != nil {
		p.rotatePrevFrame(frame)
		return result, err
	}

	result.Tracked = p.Registry.Tracked
	result.Teams = p.classifyTeams(frame)

	p.rotatePrevFrame(frame)
	return result, nil
}

func (p *Pipeline) classifyTeams(frame Frame) map[int]int {
	if len(p.Registry.Tracked) == 0 {
		return nil
	}
	components := make([]Component, len(p.Registry.Tracked))
	for i, t := range p.Registry.Tracked {
		components[i] = Component{Positions: t.Positions}
	}
	assigned := p.Teams.Classify(components, frame)

	teams := make(map[int]int, len(p.Registry.Tracked))
	for i, t := range p.Registry.Tracked {
		teams[t.ID] = assigned[i]
	}
	return teams
}

func (p *Pipeline) rotatePrevFrame(frame Frame) {
	if p.hasPrev {
		p.prevFrame.Close()
	}
	clone := frame.Clone()
	p.prevFrame = &clone
	p.hasPrev = true
}

// Close releases the pipeline's retained previous-frame clone.
func (p *Pipeline) Close() {
	if p.hasPrev {
		p.prevFrame.Close()
		p.hasPrev = false
	}
	p.Motion.Close()
}
