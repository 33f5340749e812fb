package rendering

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/jonathan/bethejack/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestCropCircle(t *testing.T) {
	tests := []struct {
		name string
		data func(t *testing.T) []byte
		size int
	}{
		{"large landscape png", func(t *testing.T) []byte { return encodePNG(t, solidImage(800, 600)) }, 400},
		{"small portrait jpeg", func(t *testing.T) []byte { return encodeJPEG(t, solidImage(120, 200)) }, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := CropCircle(tt.data(t))
			require.NoError(t, err)

			img, format, err := image.Decode(bytes.NewReader(out))
			require.NoError(t, err)
			assert.Equal(t, "png", format)
			assert.Equal(t, tt.size, img.Bounds().Dx())
			assert.Equal(t, tt.size, img.Bounds().Dy())

			_, _, _, cornerA := img.At(0, 0).RGBA()
			assert.Zero(t, cornerA, "corners are transparent")
			_, _, _, centerA := img.At(tt.size/2, tt.size/2).RGBA()
			assert.Equal(t, uint32(0xffff), centerA)
		})
	}
}

func TestCropCircle_InvalidData(t *testing.T) {
	_, err := CropCircle([]byte("not an image"))
	require.Error(t, err)

	var photoErr *PhotoError
	require.True(t, errors.As(err, &photoErr))
	assert.Equal(t, "decode", photoErr.Step)
	assert.Contains(t, err.Error(), "photo decode failed")
}

func TestPreparePhoto(t *testing.T) {
	valid := encodePNG(t, solidImage(50, 50))

	img := preparePhoto(valid)
	require.NotNil(t, img)
	assert.Equal(t, "PNG", img.Type)

	assert.Nil(t, preparePhoto(nil))
	assert.Nil(t, preparePhoto([]byte{0xde, 0xad, 0xbe, 0xef}))
}

func TestPreparePhoto_FallsBackToOriginal(t *testing.T) {
	// The header still decodes but the pixel data is cut short.
	truncated := encodePNG(t, solidImage(50, 50))[:45]

	img := preparePhoto(truncated)
	require.NotNil(t, img)
	assert.Equal(t, "PNG", img.Type)
	assert.Equal(t, truncated, img.Data)
}

func TestLayout_PhotoShiftsSidebar(t *testing.T) {
	doc := sidebarDoc("SKILLS", "PROFESSIONAL EXPERIENCE")
	photo := encodeJPEG(t, solidImage(300, 300))

	instrs := Layout(doc, Options{Layout: types.LayoutSidebar, Photo: photo}, fixedMeasurer{})
	require.Greater(t, len(instrs), 3)
	assert.Equal(t, OpImage, instrs[2].Op)
	assert.Equal(t, photoX, instrs[2].X)
	assert.Equal(t, photoY, instrs[2].Y)
	assert.Equal(t, photoW, instrs[2].W)

	_, header := findText(t, instrs, "SKILLS")
	assert.InDelta(t, photoAfter+5, header.Y, 0.001)
}

func TestLayout_PhotoIgnoredOnSinglePage(t *testing.T) {
	photo := encodePNG(t, solidImage(60, 60))
	instrs := Layout("SUMMARY\nBuilds things", Options{Layout: types.LayoutSinglePage, Photo: photo}, fixedMeasurer{})
	for _, in := range instrs {
		assert.NotEqual(t, OpImage, in.Op)
	}
}

func TestRender_WithPhoto(t *testing.T) {
	doc := sidebarDoc("NAME\nJordan Vega", "PROFESSIONAL EXPERIENCE\n- Built things")

	t.Run("valid photo", func(t *testing.T) {
		data, err := Render(doc, Options{Layout: types.LayoutSidebar, Photo: encodePNG(t, solidImage(200, 240))})
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	})

	t.Run("corrupt photo is skipped", func(t *testing.T) {
		data, err := Render(doc, Options{Layout: types.LayoutSidebar, Photo: []byte("garbage")})
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	})
}
