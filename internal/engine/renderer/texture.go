package renderer

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/paintbox/internal/canvas"
	"github.com/Faultbox/paintbox/internal/engine/texture"
)

// Texture is an image uploaded to the GPU. It keeps the decoded pixels
// alongside so software targets can paint it too.
type Texture struct {
	id     uint32
	width  int
	height int
	img    *texture.Image
}

var _ canvas.Texture = (*Texture)(nil)

// Upload creates a GPU texture from img and takes ownership of it.
func Upload(img *texture.Image) *Texture {
	t := newTexture(img.NRGBA())
	t.img = img
	return t
}

func newTexture(pix *image.NRGBA) *Texture {
	b := pix.Bounds()
	t := &Texture{width: b.Dx(), height: b.Dy()}

	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(pix.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(t.width), int32(t.height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t
}

func whitePixel() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	copy(img.Pix, []byte{255, 255, 255, 255})
	return img
}

// Size returns the natural pixel size.
func (t *Texture) Size() (int, int) {
	return t.width, t.height
}

// Source returns the decoded pixels, or nil once released.
func (t *Texture) Source() image.Image {
	if t.img == nil {
		return nil
	}
	return t.img.Source()
}

// Release frees the GPU texture and the decoded pixels. Later calls do
// nothing.
func (t *Texture) Release() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
	if t.img != nil {
		t.img.Release()
		t.img = nil
	}
}
