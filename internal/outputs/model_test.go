package outputs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeVocabulary(t *testing.T) {
	for _, typ := range Types() {
		assert.True(t, typ.Valid(), "type %s should be valid", typ)
	}
	assert.False(t, Type("essay").Valid())
	assert.False(t, Type("").Valid())
	assert.False(t, Type("Cover_Letter").Valid(), "vocabulary is case sensitive")
}

func TestParseType(t *testing.T) {
	typ, err := ParseType("cover_letter")
	require.NoError(t, err)
	assert.Equal(t, TypeCoverLetter, typ)

	_, err = ParseType("poem")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	for _, want := range Types() {
		assert.Contains(t, err.Error(), string(want))
	}
}
