package dicom

import (
	"fmt"

	"github.com/cortexmed/dcmreader/dicom/pixel"
	"github.com/cortexmed/dcmreader/dicom/tag"
	"github.com/cortexmed/dcmreader/dicom/transfersyntax"
)

// Object is a fully parsed DICOM file: an ordered list of DataElement,
// the TransferSyntax the main dataset was decoded under, and the
// optionally decoded pixel Image.
//
// Invariant: the element list holds group-2 elements first, in the order
// they were encountered (always parsed little-endian explicit), followed
// by the content elements parsed under the declared TransferSyntax. An
// Object exists only for the duration of a single parse; element Bytes
// values borrow into the buffer passed to Parse.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part10.html#sect_7
type Object struct {
	elements []Element
	syntax   transfersyntax.TransferSyntax
	image    pixel.Image
}

// Elements returns the ordered list of elements in this object.
func (o *Object) Elements() []Element {
	return o.elements
}

// TransferSyntax returns the transfer syntax the main dataset was decoded under.
func (o *Object) TransferSyntax() transfersyntax.TransferSyntax {
	return o.syntax
}

// Image returns the decoded pixel image, if image decoding was requested
// and the pixel data element was recognized and supported.
func (o *Object) Image() (pixel.Image, bool) {
	return o.image, o.image != nil
}

// Get returns the first element carrying tag t, in definition order, per
// §4.7's "first match wins" accessor contract.
func (o *Object) Get(t tag.Tag) (Element, error) {
	for _, e := range o.elements {
		if e.Tag.Equals(t) {
			return e, nil
		}
	}
	return Element{}, fmt.Errorf("%w: %s", ErrNoSuchTag, t)
}
