package texture

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func tgaHeaderBytes(imageType byte, w, h, bpp int, descriptor byte) []byte {
	hdr := make([]byte, tgaHeaderSize)
	hdr[2] = imageType
	hdr[12], hdr[13] = byte(w), byte(w>>8)
	hdr[14], hdr[15] = byte(h), byte(h>>8)
	hdr[16] = byte(bpp)
	hdr[17] = descriptor
	return hdr
}

func TestDecodeTGABottomUp(t *testing.T) {
	// 1x2, 24-bit, bottom row first: blue then red.
	data := tgaHeaderBytes(TGATypeUncompressed, 1, 2, 24, 0)
	data = append(data, 255, 0, 0) // BGR blue
	data = append(data, 0, 0, 255) // BGR red

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}
	n := img.(*image.NRGBA)
	if got := n.NRGBAAt(0, 0); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("top pixel = %v, want red", got)
	}
	if got := n.NRGBAAt(0, 1); got != (color.NRGBA{B: 255, A: 255}) {
		t.Errorf("bottom pixel = %v, want blue", got)
	}
}

func TestDecodeTGARLE(t *testing.T) {
	// 3x1, 32-bit, top-left origin: a run of two green pixels then one raw
	// half-transparent white pixel.
	data := tgaHeaderBytes(TGATypeRLE, 3, 1, 32, tgaTopLeft)
	data = append(data, 0x81, 0, 255, 0, 255)
	data = append(data, 0x00, 255, 255, 255, 128)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}
	n := img.(*image.NRGBA)
	green := color.NRGBA{G: 255, A: 255}
	for x := 0; x < 2; x++ {
		if got := n.NRGBAAt(x, 0); got != green {
			t.Errorf("pixel %d = %v, want %v", x, got, green)
		}
	}
	if got := n.NRGBAAt(2, 0); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 128}) {
		t.Errorf("pixel 2 = %v", got)
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short", []byte{0, 0, 2}},
		{"color mapped", func() []byte { d := tgaHeaderBytes(1, 1, 1, 24, 0); d[1] = 1; return d }()},
		{"grayscale", tgaHeaderBytes(3, 1, 1, 8, 0)},
		{"16 bit", tgaHeaderBytes(TGATypeUncompressed, 1, 1, 16, 0)},
		{"truncated raw", append(tgaHeaderBytes(TGATypeUncompressed, 2, 2, 24, 0), 1, 2, 3)},
		{"truncated rle", append(tgaHeaderBytes(TGATypeRLE, 4, 1, 24, 0), 0x81, 1, 2, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTGA(tt.data); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestEncodeTGARoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 80), G: uint8(y * 120), B: 7, A: uint8(60 + x)})
		}
	}

	var buf bytes.Buffer
	if err := EncodeTGA(&buf, src); err != nil {
		t.Fatalf("EncodeTGA: %v", err)
	}

	// Goes through the registered decoder rather than DecodeTGA directly.
	img, format, err := image.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("image.Decode: %v", err)
	}
	if format != "tga" {
		t.Errorf("format = %q, want tga", format)
	}
	got := img.(*image.NRGBA)
	if !bytes.Equal(got.Pix, src.Pix) {
		t.Errorf("pixels differ after round trip:\n got %v\nwant %v", got.Pix, src.Pix)
	}
}

func TestDecodeConfigTGA(t *testing.T) {
	data := tgaHeaderBytes(TGATypeUncompressed, 640, 480, 32, tgaTopLeft)
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if format != "tga" || cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("got %s %dx%d", format, cfg.Width, cfg.Height)
	}
}
