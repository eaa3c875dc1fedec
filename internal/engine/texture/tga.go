package texture

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

const (
	tgaHeaderSize = 18
	tgaTopLeft    = 0x20
)

var errTGATruncated = errors.New("TGA data truncated")

func init() {
	// TGA has no magic number; the pattern matches the fixed header bytes
	// of a true-color file without a color map.
	image.RegisterFormat("tga", "?\x00\x02", decodeTGAReader, decodeTGAConfig)
	image.RegisterFormat("tga", "?\x00\x0a", decodeTGAReader, decodeTGAConfig)
}

type tgaHeader struct {
	idLength      int
	colorMapType  byte
	imageType     byte
	width, height int
	bpp           int
	topToBottom   bool
}

func parseTGAHeader(data []byte) (tgaHeader, error) {
	if len(data) < tgaHeaderSize {
		return tgaHeader{}, fmt.Errorf("TGA data too short")
	}
	h := tgaHeader{
		idLength:     int(data[0]),
		colorMapType: data[1],
		imageType:    data[2],
		width:        int(data[12]) | int(data[13])<<8,
		height:       int(data[14]) | int(data[15])<<8,
		bpp:          int(data[16]),
		topToBottom:  data[17]&tgaTopLeft != 0,
	}
	if h.colorMapType != 0 {
		return h, fmt.Errorf("color-mapped TGA not supported")
	}
	if h.imageType != TGATypeUncompressed && h.imageType != TGATypeRLE {
		return h, fmt.Errorf("unsupported TGA type %d (only uncompressed/RLE true-color supported)", h.imageType)
	}
	if h.bpp != 24 && h.bpp != 32 {
		return h, fmt.Errorf("unsupported TGA bit depth %d (only 24/32 supported)", h.bpp)
	}
	return h, nil
}

// DecodeTGA decodes an uncompressed (type 2) or RLE (type 10) true-color
// TGA file.
func DecodeTGA(data []byte) (image.Image, error) {
	h, err := parseTGAHeader(data)
	if err != nil {
		return nil, err
	}
	offset := tgaHeaderSize + h.idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	img := image.NewNRGBA(image.Rect(0, 0, h.width, h.height))
	px := &tgaPixels{img: img, h: h}
	if h.imageType == TGATypeUncompressed {
		err = px.raw(data[offset:])
	} else {
		err = px.rle(data[offset:])
	}
	if err != nil {
		return nil, err
	}
	return img, nil
}

// tgaPixels writes pixels in file order, handling the origin flag.
type tgaPixels struct {
	img  *image.NRGBA
	h    tgaHeader
	next int
}

func (p *tgaPixels) done() bool {
	return p.next >= p.h.width*p.h.height
}

// put stores one BGR(A) pixel from src and advances.
func (p *tgaPixels) put(src []byte) {
	x, y := p.next%p.h.width, p.next/p.h.width
	if !p.h.topToBottom {
		y = p.h.height - 1 - y
	}
	c := color.NRGBA{R: src[2], G: src[1], B: src[0], A: 255}
	if len(src) == 4 {
		c.A = src[3]
	}
	p.img.SetNRGBA(x, y, c)
	p.next++
}

func (p *tgaPixels) raw(data []byte) error {
	bpp := p.h.bpp / 8
	if len(data) < p.h.width*p.h.height*bpp {
		return errTGATruncated
	}
	for i := 0; !p.done(); i += bpp {
		p.put(data[i : i+bpp])
	}
	return nil
}

// rle decodes run-length packets. A high bit repeats the following pixel,
// otherwise the low seven bits plus one raw pixels follow.
func (p *tgaPixels) rle(data []byte) error {
	bpp := p.h.bpp / 8
	i := 0
	for !p.done() {
		if i >= len(data) {
			return errTGATruncated
		}
		packet := data[i]
		i++
		count := int(packet&0x7f) + 1

		if packet&0x80 != 0 {
			if i+bpp > len(data) {
				return errTGATruncated
			}
			for n := 0; n < count && !p.done(); n++ {
				p.put(data[i : i+bpp])
			}
			i += bpp
			continue
		}
		for n := 0; n < count && !p.done(); n++ {
			if i+bpp > len(data) {
				return errTGATruncated
			}
			p.put(data[i : i+bpp])
			i += bpp
		}
	}
	return nil
}

func decodeTGAReader(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeTGA(data)
}

func decodeTGAConfig(r io.Reader) (image.Config, error) {
	var buf [tgaHeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return image.Config{}, err
	}
	h, err := parseTGAHeader(buf[:])
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.NRGBAModel, Width: h.width, Height: h.height}, nil
}

// EncodeTGA writes img as an uncompressed 32-bit TGA with a top-left
// origin.
func EncodeTGA(w io.Writer, img image.Image) error {
	b := img.Bounds()
	if b.Dx() > 0xffff || b.Dy() > 0xffff {
		return fmt.Errorf("image %dx%d too large for TGA", b.Dx(), b.Dy())
	}

	var header [tgaHeaderSize]byte
	header[2] = TGATypeUncompressed
	header[12], header[13] = byte(b.Dx()), byte(b.Dx()>>8)
	header[14], header[15] = byte(b.Dy()), byte(b.Dy()>>8)
	header[16] = 32
	header[17] = tgaTopLeft | 8 // 8 alpha bits

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}
	src := ToNRGBA(img)
	row := make([]byte, b.Dx()*4)
	for y := 0; y < b.Dy(); y++ {
		off := y * src.Stride
		for x := 0; x < b.Dx(); x++ {
			s := src.Pix[off+x*4 : off+x*4+4]
			row[x*4+0] = s[2]
			row[x*4+1] = s[1]
			row[x*4+2] = s[0]
			row[x*4+3] = s[3]
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}
