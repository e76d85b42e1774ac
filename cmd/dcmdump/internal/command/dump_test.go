package command

import (
	"testing"

	"github.com/cortexmed/dcmreader/dicom"
	"github.com/stretchr/testify/assert"
)

func TestPreviewValue(t *testing.T) {
	t.Run("short bytes are quoted verbatim", func(t *testing.T) {
		assert.Equal(t, `"benoit"`, previewValue(dicom.Bytes("benoit")))
	})

	t.Run("long bytes are summarized by count", func(t *testing.T) {
		long := make(dicom.Bytes, 40)
		assert.Equal(t, "40 bytes", previewValue(long))
	})

	t.Run("sequences are summarized by item count", func(t *testing.T) {
		assert.Equal(t, "sequence of 2 item(s)", previewValue(dicom.Sequence{{}, {}}))
	})
}

func TestDumpCmd_RejectsMissingFile(t *testing.T) {
	c := &DumpCmd{File: "", MaxSequenceDepth: 64}
	cfg := config{File: c.File, MaxSequenceDepth: c.MaxSequenceDepth}
	err := validate.Struct(cfg)
	assert.Error(t, err)
}

func TestDumpCmd_RejectsNonPositiveDepth(t *testing.T) {
	cfg := config{File: "x.dcm", MaxSequenceDepth: 0}
	err := validate.Struct(cfg)
	assert.Error(t, err)
}
