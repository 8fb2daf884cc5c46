// Command soccertrack tracks players across a broadcast soccer video,
// writing an annotated copy alongside cached background/terrain images.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	soccertrack "github.com/tkeesh/soccertrack"
	"github.com/tkeesh/soccertrack/drawing"
)

func main() {
	input := flag.String("input", "", "path to the input video file")
	output := flag.String("output", "out.mp4", "path to the annotated output video")
	cacheDir := flag.String("cache", ".soccertrack-cache", "directory for background/terrain caches")
	configPath := flag.String("config", "", "optional driver.ini overriding the defaults")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: soccertrack -input video.mp4 [-output out.mp4] [-cache dir] [-config driver.ini]")
		os.Exit(2)
	}

	cfg := soccertrack.DefaultDriverConfig()
	if *configPath != "" {
		loaded, err := soccertrack.LoadDriverConfigINI(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}

	video, err := soccertrack.NewVideo(soccertrack.VideoOptions{
		InputPath:  input,
		OutputPath: *output,
		Label:      "tracking",
	})
	if err != nil {
		log.Fatalf("opening video: %v", err)
	}
	defer video.Close()

	bgPath, terrainPath := soccertrack.CachePaths(*cacheDir, *input, cfg.Skip, cfg.Step, cfg.Take)

	terrain, err := soccertrack.LoadTerrainPNG(terrainPath)
	if err != nil {
		soccertrack.WarnOnce(fmt.Sprintf("no terrain cache at %s, using full-frame terrain", terrainPath))
		full, rerr := fullFrameTerrain(video.Height(), video.Width())
		if rerr != nil {
			log.Fatalf("building fallback terrain: %v", rerr)
		}
		terrain = full
	}

	model := soccertrack.FieldColorModel{RLo: 0.1, RHi: 0.3, GLo: 0.4, GHi: 0.7, GreenThreshold: 45}
	if cached, err := soccertrack.LoadBackgroundPNG(bgPath); err == nil {
		model = model.RecomputeBounds(cached, 0.02)
		cached.Close()
	}

	pipeline := soccertrack.NewPipeline(cfg, model, soccertrack.TeamSeeds{}, terrain)
	defer pipeline.Close()

	palette := drawing.NewPalette(nil)
	frameIdx := 0

	for frame := range video.Frames() {
		frameIdx++
		if frameIdx <= cfg.Skip {
			frame.Close()
			continue
		}

		result, err := pipeline.Step(frame)
		if err != nil && err != soccertrack.ErrModelNotReady && err != soccertrack.ErrNoForeground {
			log.Printf("frame %d: %v", frameIdx, err)
		}

		entries := make([]drawing.Entry, 0, len(result.Tracked))
		trajectories := make([]drawing.TrajectoryEntry, 0, len(result.Tracked))
		for _, t := range result.Tracked {
			minRow, maxRow, minCol, maxCol := t.BoundingRect()
			team, known := result.Teams[t.ID]
			entries = append(entries, drawing.Entry{
				ID:        t.ID,
				Box:       soccertrack.BoundingBox{MinRow: minRow, MaxRow: maxRow, MinCol: minCol, MaxCol: maxCol},
				Team:      team,
				TeamKnown: known,
			})
			trajectories = append(trajectories, drawing.TrajectoryEntry{ID: t.ID, History: t.History})
		}

		drawing.DrawTrajectories(&frame, trajectories, palette, cfg.TrajectoryDrawingLength, 0)
		drawing.DrawBoundingBoxes(&frame, entries, palette, 0)

		if err := video.Write(frame); err != nil {
			log.Printf("frame %d: writing output: %v", frameIdx, err)
		}
		frame.Close()

		if result.ModelReady && frameIdx == cfg.Skip+cfg.Take {
			bg := pipeline.Background.Background()
			if err := soccertrack.SaveBackgroundPNG(bgPath, bg); err != nil {
				log.Printf("saving background cache: %v", err)
			}
			bg.Close()
			if err := soccertrack.SaveTerrainPNG(terrainPath, terrain); err != nil {
				log.Printf("saving terrain cache: %v", err)
			}
		}
	}
}

func fullFrameTerrain(rows, cols int) (soccertrack.TerrainMask, error) {
	if rows <= 0 || cols <= 0 {
		rows, cols = 1080, 1920
	}
	poly := []soccertrack.Position{
		{Row: 0, Col: 0}, {Row: 0, Col: cols},
		{Row: rows, Col: cols}, {Row: rows, Col: 0},
	}
	return soccertrack.RasterizePolygon(rows, cols, poly)
}
