/*
Package soccertrack tracks soccer players across frames of a broadcast
video. Given a sequence of color frames from a fixed (or slowly-panning)
camera, it produces, per frame, a set of labeled bounding boxes each
representing one person on the field, with stable identities across
frames and team assignments.

# Pipeline

	frame -> CameraMotionDetector -> (if the scene changed) BackgroundModel.Clear
	      -> BackgroundModel.Add -> FieldColorModel.RecomputeBounds (periodic)
	      -> Registry.Step (ForegroundSegmenter, ExtractComponents)
	      -> TeamClassifier -> tracked objects and team ids

Pipeline wires the above into a single per-frame entry point. It does
not replace its TerrainMask itself; StepResult.Motion.RequestsReselect
reports when a caller may want a new one. The core
is single-threaded and frame-sequential: Pipeline.Step must run to
completion before the next frame is submitted.

# Out of scope

Video decoding, the interactive terrain polygon selector, the
team-color seed picker, morphological/contour primitives and the
Hungarian assignment solver are external collaborators. Of these, only
the assignment solver is a typed interface (AssignmentSolver); video is
read through Video, the terrain arrives as a TerrainMask (RasterizePolygon
builds one from a polygon), team seeds arrive as TeamSeeds, and no
morphological or contour primitives are used.
*/
package soccertrack
