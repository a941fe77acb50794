package huffpack

import (
	"io"

	"github.com/dargueta/huffpack/errors"
	"github.com/dargueta/huffpack/utilities/compression"
)

type compressorPhase int

const (
	compressorReady compressorPhase = iota
	compressorDone
)

// Compressor compresses exactly one input. Create one with [NewCompressor],
// call [Compressor.Compress] once, then retrieve the artifact with
// [Compressor.Bytes] or [Compressor.WriteTo].
type Compressor struct {
	phase   compressorPhase
	header  compression.Header
	payload []byte
}

// NewCompressor returns a Compressor that's ready to accept its input.
func NewCompressor() *Compressor {
	return &Compressor{phase: compressorReady}
}

// Compress encodes data. It fails with [errors.ErrWrongPhase] if called more
// than once.
func (c *Compressor) Compress(data []byte) error {
	if c.phase != compressorReady {
		return errors.ErrWrongPhase.WithMessage("input has already been compressed")
	}

	header, payload, err := compression.Encode(data)
	if err != nil {
		return err
	}

	c.header = header
	c.payload = payload
	c.phase = compressorDone
	return nil
}

// Header returns the header that will be written in front of the payload.
func (c *Compressor) Header() (compression.Header, error) {
	if c.phase != compressorDone {
		return compression.Header{}, errNotCompressed
	}
	return c.header, nil
}

// Bytes returns the complete artifact.
func (c *Compressor) Bytes() ([]byte, error) {
	if c.phase != compressorDone {
		return nil, errNotCompressed
	}

	return compression.JoinArtifact(&c.header, c.payload), nil
}

// WriteTo writes the complete artifact to w. It implements [io.WriterTo].
func (c *Compressor) WriteTo(w io.Writer) (int64, error) {
	if c.phase != compressorDone {
		return 0, errNotCompressed
	}

	n, err := w.Write(compression.EncodeHeader(&c.header))
	totalWritten := int64(n)
	if err != nil || len(c.payload) == 0 {
		return totalWritten, err
	}

	n, err = w.Write(c.payload)
	totalWritten += int64(n)
	return totalWritten, err
}

var errNotCompressed = errors.ErrWrongPhase.WithMessage("nothing has been compressed yet")
