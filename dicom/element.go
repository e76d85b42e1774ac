package dicom

import (
	"github.com/cortexmed/dcmreader/dicom/tag"
	"github.com/cortexmed/dcmreader/dicom/vr"
)

// Element is a single DICOM data element: a (tag, optional VR, length,
// value) record.
//
// VR is a pointer so it can be genuinely absent: it is populated only when
// the active transfer syntax is explicit-VR, and left nil under implicit
// VR, matching §3's "the vr field is populated only when the active
// transfer syntax is explicit" invariant.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1
type Element struct {
	Tag    tag.Tag
	VR     *vr.VR
	Length uint32
	Value  Value
}

// ResolvedVR returns the element's VR: the explicit VR if one was read off
// the wire, or the VR declared by the tag dictionary for implicit-VR
// elements whose tag is recognized. The second return is false when
// neither source yields a VR (an unrecognized tag under implicit VR).
func (e Element) ResolvedVR() (vr.VR, bool) {
	if e.VR != nil {
		return *e.VR, true
	}
	info, err := tag.Find(e.Tag)
	if err != nil || len(info.VRs) == 0 {
		return vr.VR{}, false
	}
	return info.VRs[0], true
}
