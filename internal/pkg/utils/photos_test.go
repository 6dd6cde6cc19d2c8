package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhotosRoundTripKeepsOrder(t *testing.T) {
	in := []string{"c", "a", "b"}
	assert.Equal(t, in, StringToPhotos(PhotosToString(in)))
}

func TestPhotosEmpty(t *testing.T) {
	assert.Equal(t, "[]", PhotosToString(nil))
	assert.Equal(t, []string{}, StringToPhotos(""))
	assert.Equal(t, []string{}, StringToPhotos("[]"))
}

func TestStringToPhotosLegacyCommaList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, StringToPhotos("a, b,"))
}

func TestStringPtr(t *testing.T) {
	assert.Nil(t, StringPtr("   "))
	v := StringPtr("Austin")
	if assert.NotNil(t, v) {
		assert.Equal(t, "Austin", *v)
	}
}
