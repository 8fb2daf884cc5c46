/*
Package drawing renders a frame's tracked objects for display or
encoding. It is a pure consumer of soccertrack's output: nothing here
feeds back into the tracking pipeline.

# Basic usage

	import "github.com/tkeesh/soccertrack/drawing"

	palette := drawing.NewPalette(nil)
	drawing.DrawBoundingBoxes(frame, entries, palette, 0)
	drawing.DrawTrajectories(frame, history, palette, 100, 1)

# Components

Drawer: stateless primitives (Circle, Text, Rectangle, Line, Cross, AlphaBlend).
Palette: deterministic per-id color assignment (tab10/tab20/colorblind).
DrawBoundingBoxes: renders Entry boxes, varying style by TypeFlags.
DrawTrajectories: renders an object's recent TopCenter() history as a polyline.
*/
package drawing
