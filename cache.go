package soccertrack

import (
	"fmt"
	"os"
	"path/filepath"

	"gocv.io/x/gocv"
)

// CachePaths computes the deterministic cache filenames for a video,
// per §6: "<dir>/backgrounds/<videoBase>_<skip>_<step>_<take>.png" and
// the same file name under "<dir>/terrains/".
func CachePaths(dir, videoPath string, skip, step, take int) (backgroundPath, terrainPath string) {
	base := fileBaseWithoutExt(videoPath)
	name := fmt.Sprintf("%s_%d_%d_%d.png", base, skip, step, take)
	return filepath.Join(dir, "backgrounds", name), filepath.Join(dir, "terrains", name)
}

func fileBaseWithoutExt(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return base[:len(base)-len(ext)]
}

// SaveBackgroundPNG writes a background model's current image as a BGR
// PNG, creating parent directories as needed.
func SaveBackgroundPNG(path string, background Frame) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("soccertrack: creating background cache dir: %w", err)
	}
	if ok := gocv.IMWrite(path, background); !ok {
		return fmt.Errorf("soccertrack: failed writing background cache to %s", path)
	}
	return nil
}

// LoadBackgroundPNG reads a cached background image. The caller owns
// the returned Mat and must Close it. Returns an empty, non-nil Mat and
// an error if the file is missing or unreadable.
func LoadBackgroundPNG(path string) (Frame, error) {
	img := gocv.IMRead(path, gocv.IMReadColor)
	if img.Empty() {
		return img, fmt.Errorf("soccertrack: no background cache at %s", path)
	}
	return img, nil
}

// SaveTerrainPNG writes a terrain mask as a single-channel PNG where
// 255 marks "inside", per §6.
func SaveTerrainPNG(path string, terrain TerrainMask) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("soccertrack: creating terrain cache dir: %w", err)
	}

	img := gocv.NewMatWithSize(terrain.Rows, terrain.Cols, gocv.MatTypeCV8UC1)
	defer img.Close()
	for i := 0; i < terrain.Rows; i++ {
		for j := 0; j < terrain.Cols; j++ {
			if terrain.Inside[i][j] {
				img.SetUCharAt(i, j, 255)
			}
		}
	}

	if ok := gocv.IMWrite(path, img); !ok {
		return fmt.Errorf("soccertrack: failed writing terrain cache to %s", path)
	}
	return nil
}

// LoadTerrainPNG reads a cached terrain mask written by SaveTerrainPNG.
func LoadTerrainPNG(path string) (TerrainMask, error) {
	img := gocv.IMRead(path, gocv.IMReadGrayScale)
	defer img.Close()
	if img.Empty() {
		return TerrainMask{}, fmt.Errorf("soccertrack: no terrain cache at %s", path)
	}

	rows, cols := img.Rows(), img.Cols()
	inside := make([][]bool, rows)
	for i := 0; i < rows; i++ {
		inside[i] = make([]bool, cols)
		for j := 0; j < cols; j++ {
			inside[i][j] = img.GetUCharAt(i, j) >= 128
		}
	}
	return TerrainMask{Rows: rows, Cols: cols, Inside: inside}, nil
}
