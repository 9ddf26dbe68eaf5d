package wavtrim

import "math"

// Options controls Trim.
type Options struct {
	// DesiredLengthMS is the window length in milliseconds. It must be
	// positive.
	DesiredLengthMS int64
	// MinVolume is the smallest mean absolute amplitude a window needs to be
	// kept. Zero keeps everything.
	MinVolume float32
}

// Validate rejects options that cannot produce a window.
func (o Options) Validate() error {
	if o.DesiredLengthMS <= 0 {
		return invalidArgument("desired length must be positive, got %d ms", o.DesiredLengthMS)
	}

	if o.MinVolume < 0 || math.IsNaN(float64(o.MinVolume)) {
		return invalidArgument("min volume must be a non-negative number, got %v", o.MinVolume)
	}

	return nil
}

// Result describes the outcome of Trim for one file.
type Result struct {
	// Skipped is set when the window was quieter than Options.MinVolume.
	// Output is nil in that case; it is not an error.
	Skipped bool
	// AverageVolume is the mean absolute amplitude of the window.
	AverageVolume float32
	// Start is the first frame of the window in the mono source.
	Start int
	// DesiredFrames is the requested window length in frames.
	DesiredFrames int
	// SourceFrames and SourceChannels describe the decoded input.
	SourceFrames   int
	SourceChannels int
	SampleRate     uint32
	// Window is the mono trimmed audio, set for kept and skipped files.
	Window *Clip
	// Output is the encoded WAV image of Window.
	Output []byte
}

// Trim decodes a WAV image, downmixes it to mono, cuts the loudest window
// of opts.DesiredLengthMS and encodes it. Inputs shorter than the window are
// kept whole without padding.
func Trim(data []byte, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	clip, err := Decode(data)
	if err != nil {
		return nil, err
	}

	res := &Result{
		SourceFrames:   int(clip.NumFrames),
		SourceChannels: int(clip.NumChans),
		SampleRate:     clip.SampleRate,
	}

	mono := Downmix(clip)

	desired := FramesForMillis(opts.DesiredLengthMS, clip.SampleRate)
	if desired <= 0 {
		return nil, invalidArgument("%d ms at %d Hz is shorter than one sample", opts.DesiredLengthMS, clip.SampleRate)
	}

	res.DesiredFrames = int(desired)
	res.Start = LoudestWindowStart(mono.Data, res.DesiredFrames)

	window := LoudestWindow(mono.Data, res.DesiredFrames)
	res.Window = NewClip(window, clip.SampleRate, 1)
	res.Window.Skipped = mono.Skipped

	res.AverageVolume = AverageVolume(window, res.DesiredFrames)
	if res.AverageVolume < opts.MinVolume {
		res.Skipped = true
		return res, nil
	}

	res.Output, err = EncodeClip(res.Window)
	if err != nil {
		return nil, err
	}

	return res, nil
}
