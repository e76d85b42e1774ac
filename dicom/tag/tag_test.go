package tag_test

import (
	"testing"

	"github.com/cortexmed/dcmreader/dicom/tag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag_NewTag(t *testing.T) {
	got := tag.New(0x0010, 0x0010)
	assert.Equal(t, uint16(0x0010), got.Group)
	assert.Equal(t, uint16(0x0010), got.Element)
}

func TestTag_Equals(t *testing.T) {
	assert.True(t, tag.New(0x0010, 0x0010).Equals(tag.New(0x0010, 0x0010)))
	assert.False(t, tag.New(0x0010, 0x0010).Equals(tag.New(0x0010, 0x0020)))
}

func TestTag_Compare(t *testing.T) {
	a := tag.New(0x0008, 0x0020)
	b := tag.New(0x0010, 0x0010)
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestTag_String(t *testing.T) {
	assert.Equal(t, "(7FE0,0010)", tag.PixelData.String())
}

func TestTag_IsPrivate(t *testing.T) {
	assert.True(t, tag.New(0x0009, 0x0001).IsPrivate())
	assert.False(t, tag.PatientName.IsPrivate())
}

func TestTag_IsMetaElement(t *testing.T) {
	assert.True(t, tag.TransferSyntaxUID.IsMetaElement())
	assert.False(t, tag.PatientName.IsMetaElement())
}

func TestTag_Parse(t *testing.T) {
	t.Run("parenthesized form", func(t *testing.T) {
		got, err := tag.Parse("(0010,0010)")
		require.NoError(t, err)
		assert.True(t, got.Equals(tag.PatientName))
	})

	t.Run("bare form", func(t *testing.T) {
		got, err := tag.Parse("7FE0,0010")
		require.NoError(t, err)
		assert.True(t, got.Equals(tag.PixelData))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := tag.Parse("not-a-tag")
		require.Error(t, err)
	})
}
