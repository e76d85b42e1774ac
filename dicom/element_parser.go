package dicom

import (
	"fmt"

	"github.com/cortexmed/dcmreader/dicom/tag"
	"github.com/cortexmed/dcmreader/dicom/transfersyntax"
	"github.com/cortexmed/dcmreader/dicom/vr"
)

// undefinedLength is the sentinel value 0xFFFFFFFF signalling that a
// length field does not bound its element's value; applies to SQ elements
// and to items.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.5
const undefinedLength uint32 = 0xFFFFFFFF

// readLength implements §4.1's three-case length rule:
//   - VR absent (implicit syntax): 4-byte length.
//   - VR present, non-special: 2-byte length.
//   - VR present, special (OB, OD, OF, OL, OV, OW, SQ, SV, UC, UR, UT, UN, UV):
//     2 reserved bytes (discarded) followed by a 4-byte length.
func (r *reader) readLength(v *vr.VR) (uint32, error) {
	switch {
	case v == nil:
		return r.readUint32()
	case v.HasSpecialLength():
		if _, err := r.take(2); err != nil {
			return 0, fmt.Errorf("%w: reading reserved bytes: %v", ErrStructuralParse, err)
		}
		return r.readUint32()
	default:
		n, err := r.readUint16()
		return uint32(n), err
	}
}

// parseElement implements §4.2: tag -> (VR if explicit) -> length -> value.
// depth is the current sequence/item recursion depth, threaded through to
// bound nested SQ parsing (§5, §9 "Recursion safety").
func (r *reader) parseElement(ts transfersyntax.TransferSyntax, opts Options, depth int) (Element, error) {
	group, elem, err := r.readTag(r.byteOrder)
	if err != nil {
		return Element{}, err
	}
	t := tag.New(group, elem)

	var elemVR *vr.VR
	if ts.Explicit {
		code, err := r.readVRCode()
		if err != nil {
			return Element{}, err
		}
		parsed, err := vr.Parse(code)
		if err != nil {
			return Element{}, fmt.Errorf("%w: %v", ErrStructuralParse, err)
		}
		elemVR = &parsed
	}

	length, err := r.readLength(elemVR)
	if err != nil {
		return Element{}, err
	}

	if length == undefinedLength {
		seq, err := r.parseSequence(ts, opts, depth, -1)
		if err != nil {
			return Element{}, err
		}
		return Element{Tag: t, VR: elemVR, Length: length, Value: seq}, nil
	}

	// An explicit SQ VR with a defined length is parsed the same way as an
	// undefined-length sequence, bounded by the declared byte count instead
	// of a delimiter tag (see SPEC_FULL.md §9, "defined-length sequences").
	if elemVR != nil && elemVR.Equals(vr.SequenceOfItems) {
		seq, err := r.parseSequence(ts, opts, depth, int(length))
		if err != nil {
			return Element{}, err
		}
		return Element{Tag: t, VR: elemVR, Length: length, Value: seq}, nil
	}

	raw, err := r.take(int(length))
	if err != nil {
		return Element{}, err
	}
	return Element{Tag: t, VR: elemVR, Length: length, Value: Bytes(raw)}, nil
}
