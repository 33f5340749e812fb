package rendering

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"log"

	"golang.org/x/image/draw"
)

// Photo placement on the sidebar band.
const (
	photoName  = "profile-photo"
	photoX     = 15.0
	photoY     = 10.0
	photoW     = 40.0
	photoAfter = 65.0 // sidebar cursor start when a photo is present

	// maxPhotoSide caps the pixel size of the processed photo.
	maxPhotoSide = 400
)

// CropCircle center-crops an encoded JPEG or PNG to a square, scales it down to
// at most 400 pixels a side, masks it to a circle and returns it as PNG with a
// transparent background.
func CropCircle(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &PhotoError{Step: "decode", Cause: err}
	}

	b := src.Bounds()
	side := min(b.Dx(), b.Dy())
	if side <= 0 {
		return nil, &PhotoError{Step: "crop", Cause: errors.New("image has no pixels")}
	}
	crop := image.Rect(0, 0, side, side).Add(image.Pt(
		b.Min.X+(b.Dx()-side)/2,
		b.Min.Y+(b.Dy()-side)/2,
	))

	size := min(side, maxPhotoSide)
	square := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(square, square.Bounds(), src, crop, draw.Src, nil)

	out := image.NewNRGBA(square.Bounds())
	draw.DrawMask(out, out.Bounds(), square, image.Point{}, circleMask{size: size}, image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, &PhotoError{Step: "encode", Cause: err}
	}
	return buf.Bytes(), nil
}

// circleMask is opaque inside the circle inscribed in a size×size square.
type circleMask struct {
	size int
}

func (c circleMask) ColorModel() color.Model {
	return color.AlphaModel
}

func (c circleMask) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.size, c.size)
}

func (c circleMask) At(x, y int) color.Color {
	r := float64(c.size) / 2
	dx := float64(x) + 0.5 - r
	dy := float64(y) + 0.5 - r
	if dx*dx+dy*dy <= r*r {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{}
}

// preparePhoto returns the image to place, or nil when there is nothing usable.
// Processing failures fall back to the original bytes when they are a readable
// JPEG or PNG.
func preparePhoto(data []byte) *Image {
	if len(data) == 0 {
		return nil
	}

	cropped, err := CropCircle(data)
	if err == nil {
		return &Image{Name: photoName, Type: "PNG", Data: cropped}
	}
	log.Printf("[render] %v; using original photo", err)

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		log.Printf("[render] photo skipped: not a readable image: %v", err)
		return nil
	}
	switch format {
	case "jpeg":
		return &Image{Name: photoName, Type: "JPG", Data: data}
	case "png":
		return &Image{Name: photoName, Type: "PNG", Data: data}
	default:
		log.Printf("[render] photo skipped: unsupported format %q", format)
		return nil
	}
}
