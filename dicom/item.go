package dicom

import "github.com/cortexmed/dcmreader/dicom/tag"

// Item is an ordered list of DataElement belonging to a Sequence. Produced
// by the item parser (§4.4); immutable after construction.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.5
type Item struct {
	Elements []Element
}

// Get returns the first element in this item carrying tag t, matching the
// object-level "first match wins" accessor contract.
func (it Item) Get(t tag.Tag) (Element, bool) {
	for _, e := range it.Elements {
		if e.Tag.Equals(t) {
			return e, true
		}
	}
	return Element{}, false
}
