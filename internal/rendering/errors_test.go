package rendering

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderError(t *testing.T) {
	cause := errors.New("font missing")
	err := &RenderError{Layout: "sidebar", Pages: 2, Cause: cause}

	assert.Equal(t, "render sidebar (2 pages): font missing", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestPhotoError(t *testing.T) {
	assert.Equal(t, "photo crop failed", (&PhotoError{Step: "crop"}).Error())

	cause := errors.New("bad huffman code")
	err := &PhotoError{Step: "decode", Cause: cause}
	assert.Equal(t, "photo decode failed: bad huffman code", err.Error())
	assert.ErrorIs(t, err, cause)
}
