package soccertrack

import "testing"

func TestPipeline_NotReadyUntilBackgroundHasFrames(t *testing.T) {
	cfg := DefaultDriverConfig()
	cfg.Take = 3
	cfg.Registry.RedetectStep = 1
	model := defaultFieldModel()
	terrain := fullTerrainRegistry(10, 10)

	p := NewPipeline(cfg, model, TeamSeeds{}, terrain)
	defer p.Close()

	frame := greenFrame(10, 10)
	defer frame.Close()

	result, err := p.Step(frame)
	if err != ErrModelNotReady {
		t.Fatalf("expected ErrModelNotReady on the first frame, got %v", err)
	}
	if result.ModelReady {
		t.Errorf("expected ModelReady false before the background has any contribution")
	}
}

func TestPipeline_TracksObjectOnceModelReady(t *testing.T) {
	cfg := DefaultDriverConfig()
	cfg.Take = 2
	cfg.Registry.RedetectStep = 1
	cfg.Registry.MinimumGroupSizeAtFirstDetection = 4
	cfg.ChromaticityBoundsCalculationStep = 0
	model := defaultFieldModel()
	terrain := fullTerrainRegistry(12, 12)

	p := NewPipeline(cfg, model, TeamSeeds{}, terrain)
	defer p.Close()

	for i := 0; i < 2; i++ {
		f := greenFrame(12, 12)
		if _, err := p.Step(f); err != nil && err != ErrModelNotReady {
			t.Fatalf("unexpected error priming background: %v", err)
		}
		f.Close()
	}

	frame := greenFrame(12, 12)
	defer frame.Close()
	for i := 4; i <= 7; i++ {
		for j := 4; j <= 7; j++ {
			setPixel(&frame, i, j, 10, 10, 200)
		}
	}

	result, err := p.Step(frame)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.ModelReady {
		t.Fatalf("expected the model to be ready after priming frames")
	}
	if len(result.Tracked) == 0 {
		t.Errorf("expected the foreground block to produce a fresh track")
	}
}
