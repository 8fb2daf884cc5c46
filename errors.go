package soccertrack

import "errors"

// Sentinel errors for the local, recoverable error policies of the
// tracking pipeline. None of these propagate as panics; a caller
// compares with errors.Is at the boundary it cares about.
var (
	// ErrEmptyFrame names the end of a video stream. Nothing in this
	// package returns it: Video.Frames signals the end by closing its
	// channel, and the driver stops.
	ErrEmptyFrame = errors.New("soccertrack: empty frame (end of stream)")

	// ErrModelNotReady is returned by Pipeline.Step when the background model has zero contributions
	// yet. Segmentation is skipped for the frame; no tracked objects
	// are updated.
	ErrModelNotReady = errors.New("soccertrack: background model not ready")

	// ErrTerrainInvalid is returned by RasterizePolygon when the
	// polygon has fewer than 3 vertices. Callers (the external
	// selector) are expected to retry until valid; it never surfaces
	// out of Pipeline.Step.
	ErrTerrainInvalid = errors.New("soccertrack: terrain polygon invalid")

	// ErrInvalidGeometry names a bounding box that would exceed
	// MaxWidth/MaxHeight. Registry.Step does not return it: its BFS
	// skips pixels that would widen a group past those limits, and Step
	// always returns nil.
	ErrInvalidGeometry = errors.New("soccertrack: geometry exceeds configured bounds")

	// ErrNoForeground is informational: segmentation produced zero
	// foreground pixels. Not an error condition in the usual sense —
	// Phase E simply finds no candidates and Phase A may leave every
	// object untracked for the frame. Exposed so tests and instrumented
	// callers can observe it without it affecting control flow.
	ErrNoForeground = errors.New("soccertrack: no foreground pixels in frame")
)
