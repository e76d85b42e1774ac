package dicom

// Value is a DICOM element's payload: either raw bytes (the leaf case) or
// a Sequence of Items (the SQ case). It is a closed, two-member sum type;
// Go expresses that as an interface with an unexported marker method so no
// type outside this package can implement it.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1
type Value interface {
	isValue()
}

// Bytes is a leaf element value: a borrowed slice of the input buffer this
// Object was parsed from. Its lifetime is the lifetime of the parsed Object.
type Bytes []byte

func (Bytes) isValue() {}

// Sequence is the value of an SQ element: an ordered list of Items,
// produced by the sequence parser and immutable after construction.
type Sequence []Item

func (Sequence) isValue() {}

// AsBytes returns v as Bytes, or ErrTypeConversion if v is a Sequence.
func AsBytes(v Value) (Bytes, error) {
	b, ok := v.(Bytes)
	if !ok {
		return nil, ErrTypeConversion
	}
	return b, nil
}

// AsSequence returns v as a Sequence, or ErrTypeConversion if v is Bytes.
func AsSequence(v Value) (Sequence, error) {
	s, ok := v.(Sequence)
	if !ok {
		return nil, ErrTypeConversion
	}
	return s, nil
}
