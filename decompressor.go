package huffpack

import (
	"io"

	"github.com/dargueta/huffpack/errors"
	"github.com/dargueta/huffpack/utilities/compression"
)

type decompressorPhase int

const (
	decompressorReady decompressorPhase = iota
	decompressorDone
)

// Decompressor decompresses exactly one artifact. It's used the same way as
// [Compressor].
type Decompressor struct {
	phase decompressorPhase
	data  []byte
}

// NewDecompressor returns a Decompressor that's ready to accept an artifact.
func NewDecompressor() *Decompressor {
	return &Decompressor{phase: decompressorReady}
}

// Decompress decodes an artifact. If the artifact is malformed, the error wraps
// [errors.ErrCorruptInput] and the Decompressor stays ready for another
// attempt.
func (d *Decompressor) Decompress(artifact []byte) error {
	if d.phase != decompressorReady {
		return errors.ErrWrongPhase.WithMessage("input has already been decompressed")
	}

	data, err := compression.DecompressBytes(artifact)
	if err != nil {
		return err
	}

	d.data = data
	d.phase = decompressorDone
	return nil
}

// Bytes returns the decompressed data. The slice is owned by the Decompressor
// and must not be modified.
func (d *Decompressor) Bytes() ([]byte, error) {
	if d.phase != decompressorDone {
		return nil, errNotDecompressed
	}
	return d.data, nil
}

// WriteTo writes the decompressed data to w. It implements [io.WriterTo].
func (d *Decompressor) WriteTo(w io.Writer) (int64, error) {
	if d.phase != decompressorDone {
		return 0, errNotDecompressed
	}
	if len(d.data) == 0 {
		return 0, nil
	}
	n, err := w.Write(d.data)
	return int64(n), err
}

var errNotDecompressed = errors.ErrWrongPhase.WithMessage("nothing has been decompressed yet")
