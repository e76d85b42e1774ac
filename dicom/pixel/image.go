// Package pixel decodes a DICOM pixel data element into a decoded raster
// image, or passes through a compressed stream verbatim when the transfer
// syntax declares a compression scheme this reader does not decompress.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#chapter_8
package pixel

// Image is a decoded (or pass-through) DICOM pixel payload: a closed,
// three-member sum type over Grayscale8, Grayscale16 and Jpeg2000.
type Image interface {
	isImage()
	// Width and Height are the frame's columns and rows. For Jpeg2000 these
	// are the declared columns/rows; the frame itself is not decoded.
	Width() int
	Height() int
}

// Grayscale8 is a decoded 8-bit grayscale frame, row-major.
type Grayscale8 struct {
	Rows, Columns int
	Pixels        []uint8
}

func (Grayscale8) isImage()     {}
func (g Grayscale8) Width() int  { return g.Columns }
func (g Grayscale8) Height() int { return g.Rows }

// Grayscale16 is a decoded 16-bit grayscale frame, row-major, in host
// endianness (already converted from the active transfer syntax's wire
// endianness during decode).
type Grayscale16 struct {
	Rows, Columns int
	Pixels        []uint16
}

func (Grayscale16) isImage()     {}
func (g Grayscale16) Width() int  { return g.Columns }
func (g Grayscale16) Height() int { return g.Rows }

// Jpeg2000 is an undecoded JPEG2000 lossless byte stream, captured
// verbatim. This reader does not decompress JPEG2000; Raw holds exactly
// the bytes that followed the pixel data element header.
type Jpeg2000 struct {
	Rows, Columns int
	Raw           []byte
}

func (Jpeg2000) isImage()     {}
func (j Jpeg2000) Width() int  { return j.Columns }
func (j Jpeg2000) Height() int { return j.Rows }
