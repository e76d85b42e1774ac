package dicom

import (
	"errors"
	"testing"

	"github.com/cortexmed/dcmreader/dicom/tag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessors(t *testing.T) {
	content := &builder{}
	content.explicitTagVR(0x0028, 0x0010, "US").u16le(2).u16le(0x0102)
	content.explicitTagVR(0x0010, 0x0010, "PN").u16le(9).ascii("Doe^Jo^^^")
	content.explicitTagVR(0x0010, 0x0030, "DA").u16le(8).ascii("20230115")
	content.explicitTagVR(0x0010, 0x1010, "AS").u16le(4).ascii("042Y")
	content.explicitTagVR(0x0008, 0x1140, "SQ").bytes(0x00, 0x00).u32le(undefinedLength)
	content.bytes(0xFE, 0xFF, 0x00, 0xE0).u32le(0)
	content.bytes(0xFE, 0xFF, 0xDD, 0xE0).u32le(0)

	data := minimalFile(transferSyntaxUIDExplicitLE, true, content.build())
	obj, err := Parse(data, Options{})
	require.NoError(t, err)

	t.Run("U16", func(t *testing.T) {
		v, err := obj.U16(tag.Rows)
		require.NoError(t, err)
		assert.Equal(t, uint16(0x0102), v)
	})

	t.Run("U16 missing tag", func(t *testing.T) {
		_, err := obj.U16(tag.Columns)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNoSuchTag))
	})

	t.Run("String", func(t *testing.T) {
		s, err := obj.String(tag.PatientName)
		require.NoError(t, err)
		assert.Equal(t, "Doe^Jo^^^", s)
	})

	t.Run("PersonName splits on caret", func(t *testing.T) {
		pn, err := obj.PersonName(tag.PatientName)
		require.NoError(t, err)
		assert.Equal(t, "Doe", pn.Family)
		assert.Equal(t, "Jo", pn.Given)
	})

	t.Run("NaiveDate", func(t *testing.T) {
		d, err := obj.NaiveDate(tag.PatientBirthDate)
		require.NoError(t, err)
		assert.Equal(t, 2023, d.Time.Year())
		assert.Equal(t, 1, int(d.Time.Month()))
		assert.Equal(t, 15, d.Time.Day())
	})

	t.Run("Age", func(t *testing.T) {
		a, err := obj.Age(tag.PatientAge)
		require.NoError(t, err)
		assert.Equal(t, 42, a.Value)
	})

	t.Run("U16 against a sequence value fails type conversion", func(t *testing.T) {
		_, err := obj.U16(tag.New(0x0008, 0x1140))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTypeConversion))
	})
}
