package soccertrack

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"gocv.io/x/gocv"
)

// Video wraps OpenCV VideoCapture and VideoWriter with progress
// tracking. Supports reading from video files or camera devices.
type Video struct {
	camera    *int
	inputPath *string

	videoCapture *gocv.VideoCapture
	videoWriter  *gocv.VideoWriter

	fps        float64
	width      int
	height     int
	frameCount int

	outputPath   string
	outputFps    float64
	outputFourcc *string
	outputExt    string

	label        string
	frameCounter int
	startTime    time.Time
	progressBar  *progressbar.ProgressBar

	window *gocv.Window
}

// VideoOptions configures Video creation.
type VideoOptions struct {
	Camera    *int
	InputPath *string

	OutputPath   string
	OutputFps    float64
	OutputFourcc *string
	OutputExt    string
	Label        string
}

// NewVideo creates a new Video instance. Exactly one of opts.Camera or
// opts.InputPath must be set.
func NewVideo(opts VideoOptions) (*Video, error) {
	if (opts.Camera == nil && opts.InputPath == nil) || (opts.Camera != nil && opts.InputPath != nil) {
		return nil, fmt.Errorf("exactly one of Camera or InputPath must be set")
	}

	v := &Video{
		camera:       opts.Camera,
		inputPath:    opts.InputPath,
		outputPath:   opts.OutputPath,
		outputFps:    opts.OutputFps,
		outputFourcc: opts.OutputFourcc,
		outputExt:    opts.OutputExt,
		label:        opts.Label,
	}

	if v.outputPath == "" {
		v.outputPath = "."
	}
	if v.outputExt == "" {
		v.outputExt = "mp4"
	}

	var err error
	if opts.Camera != nil {
		v.videoCapture, err = gocv.OpenVideoCapture(*opts.Camera)
		if err != nil {
			return nil, fmt.Errorf("failed to open camera %d: %w", *opts.Camera, err)
		}
	} else {
		path := *opts.InputPath
		if strings.HasPrefix(path, "~") {
			home, err := os.UserHomeDir()
			if err == nil {
				path = filepath.Join(home, path[1:])
			}
		}
		v.videoCapture, err = gocv.OpenVideoCapture(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open video file %s: %w", path, err)
		}
	}

	v.fps = v.videoCapture.Get(gocv.VideoCaptureFPS)
	v.width = int(v.videoCapture.Get(gocv.VideoCaptureFrameWidth))
	v.height = int(v.videoCapture.Get(gocv.VideoCaptureFrameHeight))
	v.frameCount = int(v.videoCapture.Get(gocv.VideoCaptureFrameCount))

	if v.outputFps == 0 {
		v.outputFps = v.fps
	}

	return v, nil
}

// Width returns the source frame width.
func (v *Video) Width() int { return v.width }

// Height returns the source frame height.
func (v *Video) Height() int { return v.height }

// FPS returns the source frame rate.
func (v *Video) FPS() float64 { return v.fps }

// Frames returns a channel yielding video frames, closed at end of
// stream. Readers own each frame and must Close it.
func (v *Video) Frames() <-chan gocv.Mat {
	frames := make(chan gocv.Mat)

	go func() {
		defer close(frames)
		defer v.cleanup()

		v.startTime = time.Now()
		v.frameCounter = 0
		v.setupProgressBar()

		for {
			frame := gocv.NewMat()
			if ok := v.videoCapture.Read(&frame); !ok {
				frame.Close()
				break
			}
			if frame.Empty() {
				frame.Close()
				break
			}

			v.frameCounter++
			v.updateProgressBar()
			frames <- frame
		}
	}()

	return frames
}

// Write writes a frame to the output video. The VideoWriter is lazily
// initialized on first call.
func (v *Video) Write(frame gocv.Mat) error {
	if v.videoWriter == nil {
		outputPath := v.GetOutputFilePath()
		codec := v.getCodecFourcc(outputPath)

		var err error
		v.videoWriter, err = gocv.VideoWriterFile(outputPath, codec, v.outputFps, frame.Cols(), frame.Rows(), true)
		if err != nil {
			return fmt.Errorf("failed to create video writer: %w", err)
		}
	}

	if err := v.videoWriter.Write(frame); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

// Show displays a frame in a window, optionally downsampled (useful
// over a forwarded X11 connection). Returns the key pressed.
func (v *Video) Show(frame gocv.Mat, downsampleRatio float64) int {
	if v.window == nil {
		v.window = gocv.NewWindow("soccertrack")
	}

	if downsampleRatio != 1.0 && downsampleRatio > 0 {
		newWidth := int(float64(frame.Cols()) * downsampleRatio)
		newHeight := int(float64(frame.Rows()) * downsampleRatio)
		resized := gocv.NewMat()
		defer resized.Close()
		gocv.Resize(frame, &resized, image.Point{X: newWidth, Y: newHeight}, 0, 0, gocv.InterpolationLinear)
		v.window.IMShow(resized)
	} else {
		v.window.IMShow(frame)
	}

	return v.window.WaitKey(1)
}

// GetOutputFilePath returns the output file path, auto-generating a
// filename from the input when outputPath is a directory.
func (v *Video) GetOutputFilePath() string {
	info, err := os.Stat(v.outputPath)
	if err == nil && info.IsDir() {
		var baseName string
		if v.camera != nil {
			baseName = fmt.Sprintf("camera_%d_out", *v.camera)
		} else {
			fileName := filepath.Base(*v.inputPath)
			ext := filepath.Ext(fileName)
			baseName = strings.TrimSuffix(fileName, ext) + "_out"
		}
		return filepath.Join(v.outputPath, baseName+"."+v.outputExt)
	}
	return v.outputPath
}

func (v *Video) getCodecFourcc(filename string) string {
	if v.outputFourcc != nil {
		return *v.outputFourcc
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".avi":
		return "MJPG"
	case ".mp4":
		return "mp4v"
	default:
		return "mp4v"
	}
}

func (v *Video) setupProgressBar() {
	description := v.getProgressDescription()

	if v.camera != nil {
		v.progressBar = progressbar.NewOptions(-1,
			progressbar.OptionSetDescription(description),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("fps"),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	} else {
		v.progressBar = progressbar.NewOptions(v.frameCount,
			progressbar.OptionSetDescription(description),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("fps"),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	}
}

func (v *Video) getProgressDescription() string {
	var desc string
	if v.camera != nil {
		desc = fmt.Sprintf("Camera %d", *v.camera)
	} else {
		desc = filepath.Base(*v.inputPath)
	}
	if v.label != "" {
		desc = fmt.Sprintf("%s - %s", desc, v.label)
	}

	termCols, _ := GetTerminalSize(80, 24)
	maxLen := termCols - 25
	if len(desc) > maxLen && maxLen > 10 {
		start := desc[:maxLen/2-2]
		end := desc[len(desc)-(maxLen/2-3):]
		desc = start + " ... " + end
	}
	return desc
}

func (v *Video) updateProgressBar() {
	if v.progressBar != nil {
		v.progressBar.Add(1)
	}
}

func (v *Video) cleanup() {
	if v.videoWriter != nil {
		v.videoWriter.Close()
	}
	if v.videoCapture != nil {
		v.videoCapture.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

// Close releases all resources. Safe to call after Frames has already
// closed them via cleanup.
func (v *Video) Close() error {
	v.cleanup()
	return nil
}
