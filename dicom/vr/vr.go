// Package vr defines DICOM Value Representations (VRs) and their framing rules.
//
// Value Representations specify the data type and format of DICOM element values.
// Each VR has specific encoding rules, padding requirements, and length constraints.
//
// See DICOM Part 5, Section 6.2:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
package vr

import (
	"fmt"
)

// VR identifies a DICOM Value Representation by its two-letter code.
//
// The standard VRs are exposed as package-level values (ApplicationEntity,
// CodeString, and so on). Any other two-letter code read off the wire is
// still a valid VR value - IsKnown reports false for it, and HasSpecialLength
// is false by definition, matching the DICOM rule that an unrecognized VR
// cannot be assumed to use the 32-bit length framing.
type VR struct {
	code string
}

// New wraps a raw two-letter code as a VR, known or not.
func New(code string) VR {
	return VR{code: code}
}

// known lists the standard VRs defined by DICOM Part 5, Section 6.2.
var known = map[string]bool{
	"AE": true, "AS": true, "AT": true, "CS": true,
	"DA": true, "DS": true, "DT": true, "FD": true,
	"FL": true, "IS": true, "LO": true, "LT": true,
	"OB": true, "OD": true, "OF": true, "OL": true,
	"OV": true, "OW": true, "PN": true, "SH": true,
	"SL": true, "SQ": true, "SS": true, "ST": true,
	"SV": true, "TM": true, "UC": true, "UI": true,
	"UL": true, "UN": true, "UR": true, "US": true,
	"UT": true, "UV": true,
}

// specialLength lists VRs whose explicit-VR length field is a 2-byte
// reserved field followed by a 4-byte length, rather than a plain 2-byte
// length.
//
// See DICOM Part 5, Section 7.1.2:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.2
var specialLength = map[string]bool{
	"OB": true, "OD": true, "OF": true, "OL": true, "OV": true, "OW": true,
	"SQ": true, "SV": true, "UC": true, "UR": true, "UT": true, "UN": true, "UV": true,
}

// Standard DICOM Value Representations.
var (
	ApplicationEntity           = New("AE")
	AgeString                   = New("AS")
	AttributeTag                = New("AT")
	CodeString                  = New("CS")
	Date                        = New("DA")
	DecimalString               = New("DS")
	DateTime                    = New("DT")
	FloatingPointDouble         = New("FD")
	FloatingPointSingle         = New("FL")
	IntegerString               = New("IS")
	LongString                  = New("LO")
	LongText                    = New("LT")
	OtherByte                   = New("OB")
	OtherDouble                 = New("OD")
	OtherFloat                  = New("OF")
	OtherLong                   = New("OL")
	OtherVeryLong               = New("OV")
	OtherWord                   = New("OW")
	PersonName                  = New("PN")
	ShortString                 = New("SH")
	SignedLong                  = New("SL")
	SequenceOfItems             = New("SQ")
	SignedShort                 = New("SS")
	ShortText                   = New("ST")
	SignedVeryLong              = New("SV")
	Time                        = New("TM")
	UnlimitedCharacters         = New("UC")
	UniqueIdentifier            = New("UI")
	UnsignedLong                = New("UL")
	Unknown                     = New("UN")
	UniversalResourceIdentifier = New("UR")
	UnsignedShort               = New("US")
	UnlimitedText               = New("UT")
	UnsignedVeryLong            = New("UV")
)

// String returns the two-character code for the VR, known or not.
func (v VR) String() string {
	return v.code
}

// Equals returns true if both values carry the same two-letter code.
func (v VR) Equals(other VR) bool {
	return v.code == other.code
}

// IsKnown returns true if the code is one of the standard DICOM VRs.
// Unrecognized codes are preserved (via String) but IsKnown reports false
// for them, matching the "Unknown(string)" case in the VR enumeration.
func (v VR) IsKnown() bool {
	return known[v.code]
}

// HasSpecialLength returns true if this VR uses the 2-byte-reserved + 4-byte
// length framing under explicit VR encoding, as opposed to a plain 2-byte
// length. Unrecognized VRs always report false: an implementation cannot
// assume special framing for a code it doesn't recognize.
//
// See DICOM Part 5, Section 7.1.2:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.2
func (v VR) HasSpecialLength() bool {
	return v.IsKnown() && specialLength[v.code]
}

// IsValid returns true if s is a known two-letter VR code.
func IsValid(s string) bool {
	return known[s]
}

// Parse reads a two-letter VR code. Any two ASCII letters (upper or lower
// case) form a valid VR value; codes outside the standard set are retained
// as unknown rather than rejected. A non-alphabetic byte in either position
// is a parse error.
func Parse(s string) (VR, error) {
	if len(s) != 2 {
		return VR{}, fmt.Errorf("invalid VR length: %q", s)
	}
	for _, c := range s {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			return VR{}, fmt.Errorf("invalid VR code: %q", s)
		}
	}
	return VR{code: s}, nil
}
