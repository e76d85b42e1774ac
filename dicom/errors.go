// Package dicom implements a DICOM file reader: it parses a byte buffer
// into an ordered collection of metadata elements with typed value
// accessors, and decodes the pixel data element into an image when the
// transfer syntax and bit depth allow it.
package dicom

import "errors"

// ErrStructuralParse covers truncated input, bad header magic, malformed
// element framing and unexpected sentinel tags.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part10.html#sect_7.1
var ErrStructuralParse = errors.New("dicom: structural parse error")

// ErrTransferSyntaxNotSupported is returned when the Transfer Syntax UID
// in (0002,0010) does not match one of the four supported transfer
// syntaxes.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#chapter_10
var ErrTransferSyntaxNotSupported = errors.New("dicom: transfer syntax not supported")

// ErrExpectedGroup2 is returned when the first content element does not
// carry group 0x0002, or when the group-2 phase ends without having seen
// a Transfer Syntax UID element.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part10.html#sect_7.1
var ErrExpectedGroup2 = errors.New("dicom: expected group 2 (file meta information) element")

// ErrNoSuchTag is returned by accessors when the requested tag is absent
// from the parsed object.
var ErrNoSuchTag = errors.New("dicom: no such tag")

// ErrTypeConversion is returned when an element's bytes cannot be
// interpreted as the semantic type requested by an accessor: wrong
// length, wrong encoding, or a Sequence value where Bytes was required.
var ErrTypeConversion = errors.New("dicom: type conversion error")

// ErrImageFormatNotSupported is returned when bits_allocated is outside
// {8, 16}, the image is color (samples per pixel > 1), or the bit-stored
// extension formula's preconditions do not hold. The number of frames is
// not inspected: a multi-frame pixel element is decoded as its first
// rows*columns samples.
var ErrImageFormatNotSupported = errors.New("dicom: image format not supported")

// ErrMaxDepthExceeded is a StructuralParseError specialization: sequence
// or item recursion exceeded the caller-configured maximum depth
// (Options.MaxSequenceDepth, default 64).
var ErrMaxDepthExceeded = errors.New("dicom: maximum sequence recursion depth exceeded")
