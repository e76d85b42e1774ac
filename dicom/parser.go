package dicom

import (
	"encoding/binary"
	"fmt"

	"github.com/cortexmed/dcmreader/dicom/pixel"
	"github.com/cortexmed/dcmreader/dicom/tag"
	"github.com/cortexmed/dcmreader/dicom/transfersyntax"
	"github.com/cortexmed/dcmreader/dicom/vr"
)

// Options configures a single Parse call.
type Options struct {
	// DecodeImage requests pixel data decoding (§4.6). When false, the
	// Images phase leaves the pixel element's bytes unread and Object.Image
	// reports absent.
	DecodeImage bool
	// MaxSequenceDepth bounds sequence/item recursion (§5, §9). Zero or
	// negative selects the default of 64.
	MaxSequenceDepth int
}

const preambleLength = 128

var dicmMagic = [4]byte{'D', 'I', 'C', 'M'}

// Parse implements the four-phase Object Driver state machine of §4.5:
// Header -> Group2 -> Content -> Images -> Finished. Failures in any
// state are terminal; no partial object is returned.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part10.html#sect_7
func Parse(data []byte, opts Options) (*Object, error) {
	r := newReader(data, binary.LittleEndian)

	if err := readHeader(r); err != nil {
		return nil, err
	}

	metaElements, ts, err := readGroup2(r)
	if err != nil {
		return nil, err
	}

	r.setByteOrder(byteOrderOf(ts))

	contentElements, err := readContent(r, ts, opts)
	if err != nil {
		return nil, err
	}

	elements := make([]Element, 0, len(metaElements)+len(contentElements))
	elements = append(elements, metaElements...)
	elements = append(elements, contentElements...)

	obj := &Object{elements: elements, syntax: ts}

	img, err := readImages(r, ts, opts, elements)
	if err != nil {
		return nil, err
	}
	obj.image = img

	return obj, nil
}

func byteOrderOf(ts transfersyntax.TransferSyntax) binary.ByteOrder {
	if ts.Endianness == transfersyntax.BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// readHeader implements the Header state: skip the 128-byte preamble and
// require the literal "DICM" magic.
func readHeader(r *reader) error {
	if _, err := r.take(preambleLength); err != nil {
		return fmt.Errorf("%w: truncated preamble: %v", ErrStructuralParse, err)
	}
	magic, err := r.take(4)
	if err != nil {
		return fmt.Errorf("%w: truncated DICM magic: %v", ErrStructuralParse, err)
	}
	if magic[0] != dicmMagic[0] || magic[1] != dicmMagic[1] || magic[2] != dicmMagic[2] || magic[3] != dicmMagic[3] {
		return fmt.Errorf("%w: missing DICM magic", ErrStructuralParse)
	}
	return nil
}

// readGroup2 implements the Group2 state: repeatedly parse elements with
// little-endian explicit VR while the peeked group is 2, requiring a
// Transfer Syntax UID element along the way. Repeated group-2 elements are
// retained in order.
func readGroup2(r *reader) ([]Element, transfersyntax.TransferSyntax, error) {
	group2Syntax := transfersyntax.ExplicitVRLittleEndian

	var elements []Element
	var uid string
	haveUID := false

	for r.remaining() >= 4 {
		group, _, err := r.peekTag()
		if err != nil {
			return nil, transfersyntax.TransferSyntax{}, err
		}
		if group != tag.MetadataGroup {
			break
		}

		el, err := r.parseElement(group2Syntax, Options{}, 0)
		if err != nil {
			return nil, transfersyntax.TransferSyntax{}, err
		}
		elements = append(elements, el)

		if el.Tag.Equals(tag.TransferSyntaxUID) {
			b, err := AsBytes(el.Value)
			if err != nil {
				return nil, transfersyntax.TransferSyntax{}, fmt.Errorf("%w: transfer syntax UID element is not a leaf value", ErrStructuralParse)
			}
			uid = string(b)
			haveUID = true
		}
	}

	if len(elements) == 0 {
		return nil, transfersyntax.TransferSyntax{}, fmt.Errorf("%w: no file meta information group found", ErrExpectedGroup2)
	}
	if !haveUID {
		return nil, transfersyntax.TransferSyntax{}, fmt.Errorf("%w: missing Transfer Syntax UID", ErrExpectedGroup2)
	}

	ts, err := transfersyntax.Lookup(uid)
	if err != nil {
		return nil, transfersyntax.TransferSyntax{}, fmt.Errorf("%w: %v", ErrTransferSyntaxNotSupported, err)
	}

	return elements, ts, nil
}

// readContent implements the Content state: parse elements under the
// chosen transfer syntax, stopping when the peeked tag is the pixel data
// tag (7FE0,0010).
func readContent(r *reader, ts transfersyntax.TransferSyntax, opts Options) ([]Element, error) {
	var elements []Element

	for r.remaining() >= 4 {
		group, elem, err := r.peekTag()
		if err != nil {
			return nil, err
		}
		if group == tag.PixelData.Group && elem == tag.PixelData.Element {
			break
		}

		el, err := r.parseElement(ts, opts, 0)
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}

	return elements, nil
}

// readImages implements the Images state: if pixel parsing is enabled,
// decode the pixel element per §4.6; else leave bytes unread.
func readImages(r *reader, ts transfersyntax.TransferSyntax, opts Options, priorElements []Element) (pixel.Image, error) {
	if r.remaining() < 4 {
		return nil, nil
	}
	group, elem, err := r.peekTag()
	if err != nil {
		return nil, err
	}
	if group != tag.PixelData.Group || elem != tag.PixelData.Element {
		return nil, nil
	}
	if !opts.DecodeImage {
		return nil, nil
	}

	order := byteOrderOf(ts)

	if ts.Compression == transfersyntax.CompressionJpeg2000Lossless {
		// Only the element header (tag, VR, length) is framed; every byte
		// after it is the JPEG2000 payload, captured verbatim.
		if _, _, err := r.readTag(r.byteOrder); err != nil {
			return nil, err
		}
		code, err := r.readVRCode()
		if err != nil {
			return nil, err
		}
		headerVR := vr.New(code)
		if _, err := r.readLength(&headerVR); err != nil {
			return nil, err
		}
		raw, _ := r.take(r.remaining())
		rows, columns, err := rowsColumnsOf(priorElements, order)
		if err != nil {
			return nil, err
		}
		return pixel.Jpeg2000{Rows: rows, Columns: columns, Raw: raw}, nil
	}

	el, err := r.parseElement(ts, opts, 0)
	if err != nil {
		return nil, err
	}

	info, err := pixelInfoOf(priorElements, order)
	if err != nil {
		return nil, err
	}
	if spp, err := intElement(priorElements, tag.SamplesPerPixel, order); err == nil && spp > 1 {
		return nil, fmt.Errorf("%w: samples per pixel is %d", ErrImageFormatNotSupported, spp)
	}
	raw, err := AsBytes(el.Value)
	if err != nil {
		return nil, fmt.Errorf("%w: pixel data element is a sequence under an uncompressed transfer syntax", ErrImageFormatNotSupported)
	}

	img, err := pixel.DecodeRawGrayscale([]byte(raw), info, order)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageFormatNotSupported, err)
	}
	return img, nil
}

func rowsColumnsOf(elements []Element, order binary.ByteOrder) (rows, columns int, err error) {
	rows, err = intElement(elements, tag.Rows, order)
	if err != nil {
		return 0, 0, err
	}
	columns, err = intElement(elements, tag.Columns, order)
	if err != nil {
		return 0, 0, err
	}
	return rows, columns, nil
}

func pixelInfoOf(elements []Element, order binary.ByteOrder) (pixel.Info, error) {
	rows, columns, err := rowsColumnsOf(elements, order)
	if err != nil {
		return pixel.Info{}, err
	}
	bitsAllocated, err := intElement(elements, tag.BitsAllocated, order)
	if err != nil {
		return pixel.Info{}, err
	}
	bitsStored, err := intElement(elements, tag.BitsStored, order)
	if err != nil {
		return pixel.Info{}, err
	}
	return pixel.Info{Rows: rows, Columns: columns, BitsAllocated: bitsAllocated, BitsStored: bitsStored}, nil
}

// intElement reads a tag's value as a 2-byte unsigned short (US), the VR
// every element looked up here declares, using the dataset's active byte
// order. Group-2 elements (none of these tags are) would always be
// little-endian regardless of order; content elements use the declared
// transfer syntax's endianness.
func intElement(elements []Element, t tag.Tag, order binary.ByteOrder) (int, error) {
	for _, e := range elements {
		if !e.Tag.Equals(t) {
			continue
		}
		b, err := AsBytes(e.Value)
		if err != nil || len(b) < 2 {
			return 0, fmt.Errorf("%w: %s is not a 2-byte US value", ErrTypeConversion, t)
		}
		return int(order.Uint16(b)), nil
	}
	return 0, fmt.Errorf("%w: %s", ErrNoSuchTag, t)
}
