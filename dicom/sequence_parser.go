package dicom

import (
	"encoding/binary"
	"fmt"

	"github.com/cortexmed/dcmreader/dicom/tag"
	"github.com/cortexmed/dcmreader/dicom/transfersyntax"
)

// maxSequenceDepthDefault bounds sequence/item recursion when the caller
// does not set Options.MaxSequenceDepth. Sequence parsing is naturally
// recursive (§9, "Recursion safety"); an unbounded depth lets an
// adversarial input drive a stack overflow.
const maxSequenceDepthDefault = 64

// littleEndian is the byte order item/delimiter sentinel tags are always
// read with, regardless of the active transfer syntax (§4.1, §9).
var littleEndian = binary.LittleEndian

// parseSequence implements §4.3. remaining is the number of bytes left in
// a defined-length SQ's byte budget, or -1 to parse until the Sequence
// Delimiter sentinel is found (undefined length).
func (r *reader) parseSequence(ts transfersyntax.TransferSyntax, opts Options, depth int, remaining int) (Sequence, error) {
	maxDepth := opts.MaxSequenceDepth
	if maxDepth <= 0 {
		maxDepth = maxSequenceDepthDefault
	}
	if depth >= maxDepth {
		return nil, fmt.Errorf("%w: %w", ErrStructuralParse, ErrMaxDepthExceeded)
	}

	var items Sequence
	for {
		if remaining == 0 {
			return items, nil
		}

		before := r.position()
		group, elem, err := r.peekTagLE()
		if err != nil {
			return nil, err
		}

		if group == tag.ItemGroup && elem == 0xE0DD {
			// Sequence Delimiter: implicit VR, 4-byte zero length.
			if _, _, err := r.readTag(littleEndian); err != nil {
				return nil, err
			}
			if _, err := r.readUint32(); err != nil {
				return nil, err
			}
			return items, nil
		}

		if group != tag.ItemGroup || elem != 0xE000 {
			return nil, fmt.Errorf("%w: unexpected tag (%04X,%04X) in sequence, expected item or sequence delimiter", ErrStructuralParse, group, elem)
		}

		item, err := r.parseItem(ts, opts, depth+1)
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		if remaining > 0 {
			consumed := r.position() - before
			remaining -= consumed
			if remaining < 0 {
				return nil, fmt.Errorf("%w: item overran its sequence's declared length", ErrStructuralParse)
			}
		}
	}
}

// parseItem implements §4.4. An Item begins with tag (FFFE,E000), always
// read little-endian regardless of the active transfer syntax, followed by
// a 4-byte length (no VR), then a list of DataElements.
func (r *reader) parseItem(ts transfersyntax.TransferSyntax, opts Options, depth int) (Item, error) {
	group, elem, err := r.readTag(littleEndian)
	if err != nil {
		return Item{}, err
	}
	if group != tag.ItemGroup || elem != 0xE000 {
		return Item{}, fmt.Errorf("%w: expected item start (FFFE,E000), got (%04X,%04X)", ErrStructuralParse, group, elem)
	}

	length, err := r.readUint32()
	if err != nil {
		return Item{}, err
	}

	var elements []Element
	if length == undefinedLength {
		for {
			g, e, err := r.peekTagLE()
			if err != nil {
				return Item{}, err
			}
			if g == tag.ItemGroup && e == 0xE00D {
				if _, _, err := r.readTag(littleEndian); err != nil {
					return Item{}, err
				}
				if _, err := r.readUint32(); err != nil {
					return Item{}, err
				}
				break
			}
			el, err := r.parseElement(ts, opts, depth)
			if err != nil {
				return Item{}, err
			}
			elements = append(elements, el)
		}
	} else {
		remaining := int(length)
		for remaining > 0 {
			before := r.position()
			el, err := r.parseElement(ts, opts, depth)
			if err != nil {
				return Item{}, err
			}
			elements = append(elements, el)
			remaining -= r.position() - before
			if remaining < 0 {
				return Item{}, fmt.Errorf("%w: item element overran the item's declared length", ErrStructuralParse)
			}
		}
	}

	return Item{Elements: elements}, nil
}
