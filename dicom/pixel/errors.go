package pixel

import "errors"

// ErrUnsupportedFormat is returned when bits_allocated is outside {8, 16},
// or the bit-stored/bits-allocated combination is not well-formed (§9,
// "bit-stored extension edge cases").
var ErrUnsupportedFormat = errors.New("pixel: image format not supported")

// ErrTruncated is returned when fewer bytes remain than rows*columns*bytesPerSample requires.
var ErrTruncated = errors.New("pixel: truncated pixel data")
