// Package transfersyntax resolves the DICOM Transfer Syntax UID conveyed
// by file meta information element (0002,0010) into the endianness,
// VR-explicitness and compression scheme it declares for the main dataset.
//
// See DICOM Part 5, Section 10:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#chapter_10
package transfersyntax

import (
	"fmt"
	"strings"
)

// Endianness is the byte order declared by a transfer syntax.
type Endianness int

const (
	LittleEndian Endianness = iota
	BigEndian
)

func (e Endianness) String() string {
	if e == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// Compression identifies the compression scheme, if any, declared by a
// transfer syntax.
type Compression int

const (
	// None means the pixel data is stored uncompressed.
	None Compression = iota
	// CompressionJpeg2000Lossless means the pixel data is a JPEG2000
	// lossless stream, captured verbatim by the pixel decoder rather than
	// decompressed.
	CompressionJpeg2000Lossless
)

// TransferSyntax is the {endianness, VR explicitness, compression} triple
// that governs how the main dataset is framed.
type TransferSyntax struct {
	UID         string
	Endianness  Endianness
	Explicit    bool
	Compression Compression
}

const (
	implicitVRLittleEndianUID = "1.2.840.10008.1.2"
	explicitVRLittleEndianUID = "1.2.840.10008.1.2.1"
	explicitVRBigEndianUID    = "1.2.840.10008.1.2.2"
	jpeg2000LosslessUID       = "1.2.840.10008.1.2.4.90"
)

// ImplicitVRLittleEndian, ExplicitVRLittleEndian, ExplicitVRBigEndian and
// Jpeg2000Lossless are the only four transfer syntaxes this reader
// understands; everything else resolves via Lookup to ErrNotSupported,
// which dicom.Parse reports as dicom.ErrTransferSyntaxNotSupported.
var (
	ImplicitVRLittleEndian = TransferSyntax{UID: implicitVRLittleEndianUID, Endianness: LittleEndian, Explicit: false, Compression: None}
	ExplicitVRLittleEndian = TransferSyntax{UID: explicitVRLittleEndianUID, Endianness: LittleEndian, Explicit: true, Compression: None}
	ExplicitVRBigEndian    = TransferSyntax{UID: explicitVRBigEndianUID, Endianness: BigEndian, Explicit: true, Compression: None}
	Jpeg2000Lossless       = TransferSyntax{UID: jpeg2000LosslessUID, Endianness: LittleEndian, Explicit: true, Compression: CompressionJpeg2000Lossless}
)

var supported = map[string]TransferSyntax{
	implicitVRLittleEndianUID: ImplicitVRLittleEndian,
	explicitVRLittleEndianUID: ExplicitVRLittleEndian,
	explicitVRBigEndianUID:    ExplicitVRBigEndian,
	jpeg2000LosslessUID:       Jpeg2000Lossless,
}

// ErrNotSupported is returned by Lookup for any UID outside the four
// transfer syntaxes this reader implements.
var ErrNotSupported = fmt.Errorf("transfersyntax: not supported")

// Lookup resolves a Transfer Syntax UID string, tolerating a trailing NUL
// pad byte (UI values are NUL-padded to even length on the wire) and
// surrounding whitespace.
func Lookup(uid string) (TransferSyntax, error) {
	trimmed := strings.TrimRight(uid, "\x00")
	trimmed = strings.TrimSpace(trimmed)
	ts, ok := supported[trimmed]
	if !ok {
		return TransferSyntax{}, fmt.Errorf("%w: %q", ErrNotSupported, trimmed)
	}
	return ts, nil
}
