package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-spectra/dsp/core"
)

// wavFrame is one channel of a decoded WAV file scaled to [-1, 1).
type wavFrame struct {
	samples    []float64
	sampleRate int
	channels   int
	bitDepth   int
}

var errNotWAV = errors.New("not a valid WAV file")

// readWAVChannel decodes path and returns channel ch as float samples.
func readWAVChannel(path string, ch int) (*wavFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%s: %w", path, errNotWAV)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: decode: %w", path, err)
	}

	channels := buf.Format.NumChannels
	if ch < 0 || ch >= channels {
		return nil, fmt.Errorf("%s: channel %d outside [0,%d): %w", path, ch, channels, core.ErrInvalidParameter)
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth <= 0 || bitDepth > 32 {
		return nil, fmt.Errorf("%s: unsupported bit depth %d: %w", path, bitDepth, core.ErrInvalidParameter)
	}
	scale := 1 / float64(int64(1)<<(bitDepth-1))

	frames := len(buf.Data) / channels
	samples := make([]float64, frames)
	for i := range samples {
		samples[i] = float64(buf.Data[i*channels+ch]) * scale
	}

	return &wavFrame{
		samples:    samples,
		sampleRate: buf.Format.SampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
	}, nil
}
