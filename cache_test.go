package soccertrack

import (
	"path/filepath"
	"testing"
)

func TestCachePaths_NamingConvention(t *testing.T) {
	bg, terrain := CachePaths("/cache", "/videos/match1.mp4", 0, 30, 30)
	if bg != filepath.Join("/cache", "backgrounds", "match1_0_30_30.png") {
		t.Errorf("unexpected background path: %s", bg)
	}
	if terrain != filepath.Join("/cache", "terrains", "match1_0_30_30.png") {
		t.Errorf("unexpected terrain path: %s", terrain)
	}
}

func TestBackgroundPNG_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bg.png")

	original := greenFrame(8, 8)
	defer original.Close()

	if err := SaveBackgroundPNG(path, original); err != nil {
		t.Fatalf("unexpected error saving: %v", err)
	}

	loaded, err := LoadBackgroundPNG(path)
	if err != nil {
		t.Fatalf("unexpected error loading: %v", err)
	}
	defer loaded.Close()

	px := loaded.GetVecbAt(4, 4)
	if px[0] != 30 || px[1] != 60 || px[2] != 30 {
		t.Errorf("expected round-tripped pixel (30,60,30), got %v", px)
	}
}

func TestLoadBackgroundPNG_MissingFileErrors(t *testing.T) {
	_, err := LoadBackgroundPNG(filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Errorf("expected an error for a missing background cache")
	}
}

func TestTerrainPNG_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "terrain.png")

	poly := []Position{{Row: 1, Col: 1}, {Row: 1, Col: 6}, {Row: 6, Col: 6}, {Row: 6, Col: 1}}
	original, err := RasterizePolygon(8, 8, poly)
	if err != nil {
		t.Fatalf("unexpected error rasterizing: %v", err)
	}

	if err := SaveTerrainPNG(path, original); err != nil {
		t.Fatalf("unexpected error saving: %v", err)
	}

	loaded, err := LoadTerrainPNG(path)
	if err != nil {
		t.Fatalf("unexpected error loading: %v", err)
	}

	if loaded.Rows != original.Rows || loaded.Cols != original.Cols {
		t.Fatalf("expected dimensions to round-trip, got %dx%d", loaded.Rows, loaded.Cols)
	}
	if loaded.Contains(3, 3) != original.Contains(3, 3) {
		t.Errorf("expected interior containment to round-trip")
	}
	if loaded.Contains(0, 0) != original.Contains(0, 0) {
		t.Errorf("expected exterior containment to round-trip")
	}
}
