package dicom

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cortexmed/dcmreader/dicom/datetime"
	"github.com/cortexmed/dcmreader/dicom/tag"
)

// byteOrder returns the byte order content elements of this object were
// decoded under. Accessors that read multi-byte leaf values (u16) use
// this, not always-little-endian, since the active transfer syntax may be
// explicit VR big endian.
func (o *Object) byteOrder() binary.ByteOrder {
	return byteOrderOf(o.syntax)
}

// U16 reads tag t's value as a single 2-byte unsigned short, using the
// object's active byte order. Returns ErrNoSuchTag if t is absent,
// ErrTypeConversion if the element's value is a Sequence or is not
// exactly 2 bytes.
func (o *Object) U16(t tag.Tag) (uint16, error) {
	e, err := o.Get(t)
	if err != nil {
		return 0, err
	}
	b, err := AsBytes(e.Value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is a sequence, not a leaf value", ErrTypeConversion, t)
	}
	if len(b) != 2 {
		return 0, fmt.Errorf("%w: %s is %d bytes, want 2", ErrTypeConversion, t, len(b))
	}
	return o.byteOrder().Uint16(b), nil
}

// String reads tag t's value as a UTF-8 string, trailing padding (a
// single space or NUL, per PS3.5 6.2) preserved verbatim. Returns
// ErrNoSuchTag if t is absent, ErrTypeConversion if the element's value
// is a Sequence.
func (o *Object) String(t tag.Tag) (string, error) {
	e, err := o.Get(t)
	if err != nil {
		return "", err
	}
	b, err := AsBytes(e.Value)
	if err != nil {
		return "", fmt.Errorf("%w: %s is a sequence, not a leaf value", ErrTypeConversion, t)
	}
	return string(b), nil
}

// NaiveDate reads tag t's value as a DICOM Date (DA) string and parses it
// via datetime.ParseDate. Returns ErrTypeConversion if the element is a
// Sequence or the bytes do not form a valid DA string.
func (o *Object) NaiveDate(t tag.Tag) (datetime.Date, error) {
	s, err := o.String(t)
	if err != nil {
		return datetime.Date{}, err
	}
	d, err := datetime.ParseDate(strings.TrimRight(s, " \x00"))
	if err != nil {
		return datetime.Date{}, fmt.Errorf("%w: %s: %v", ErrTypeConversion, t, err)
	}
	return d, nil
}

// Age reads tag t's value as a DICOM Age String (AS) and parses it via
// datetime.ParseAge. Returns ErrTypeConversion if the element is a
// Sequence or the bytes do not form a valid AS string.
func (o *Object) Age(t tag.Tag) (datetime.Age, error) {
	s, err := o.String(t)
	if err != nil {
		return datetime.Age{}, err
	}
	a, err := datetime.ParseAge(strings.TrimRight(s, " \x00"))
	if err != nil {
		return datetime.Age{}, fmt.Errorf("%w: %s: %v", ErrTypeConversion, t, err)
	}
	return a, nil
}

// PersonName is a DICOM Person Name (PN) value split on '^' into its five
// components per PS3.5 6.2.1.1: family name, given name, middle name,
// prefix, suffix. Trailing components are empty when absent.
type PersonName struct {
	Family string
	Given  string
	Middle string
	Prefix string
	Suffix string
}

// PersonName reads tag t's value as a DICOM Person Name (PN), splitting
// it into components on '^'. Returns ErrTypeConversion if the element is
// a Sequence.
func (o *Object) PersonName(t tag.Tag) (PersonName, error) {
	s, err := o.String(t)
	if err != nil {
		return PersonName{}, err
	}
	s = strings.TrimRight(s, " \x00")
	parts := strings.SplitN(s, "^", 5)
	pn := PersonName{}
	fields := []*string{&pn.Family, &pn.Given, &pn.Middle, &pn.Prefix, &pn.Suffix}
	for i, p := range parts {
		*fields[i] = p
	}
	return pn, nil
}
