// Package wavtrim decodes 16-bit PCM WAV files, cuts the loudest
// fixed-length window out of them and encodes that window as a new mono
// 16-bit PCM WAV file.
//
// The package works on in-memory byte slices only. Decode validates the
// RIFF/WAVE container strictly, Downmix averages channels, LoudestWindow
// finds the window with the largest absolute-amplitude sum and Encode writes
// the canonical 44-byte header followed by the samples. Trim chains all of
// them and applies a minimum-volume gate:
//
//	res, err := wavtrim.Trim(data, wavtrim.Options{DesiredLengthMS: 1000, MinVolume: 0.004})
//	if err != nil {
//		// errors.Is(err, wavtrim.ErrInvalidArgument)
//	}
//	if !res.Skipped {
//		os.WriteFile(out, res.Output, 0o644)
//	}
//
// All functions are free of shared state and safe for concurrent use.
package wavtrim
