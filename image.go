package qoig

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/pkg/errors"
)

// imageToNRGBA converts an arbitrary image.Image into *image.NRGBA,
// matching the colour model the codec encodes.
func imageToNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	dst := image.NewNRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}

// ImageEncode encodes m to w as a QOIG stream, using cfg to control the
// cache layout and feature set. The image is always flattened to RGBA
// (channels=4); callers wanting 3-channel output should use Encode
// directly with their own RowSource. It returns the number of encoded
// bytes written, mirroring Encoder.Encode's (out, count, err) shape.
func ImageEncode(w io.Writer, m image.Image, cfg EncodeConfig) (int, error) {
	n := imageToNRGBA(m)
	b := n.Bounds()
	width, height := uint32(b.Dx()), uint32(b.Dy())

	src := NewSliceRowSource(n.Pix, width, height)
	enc := NewEncoder(width, height, 4, 0, cfg)
	out, count, err := enc.Encode(src)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(out); err != nil {
		return 0, newError(KindSink, errors.Wrap(err, "writing encoded stream"))
	}
	return count, nil
}

// ImageDecode reads a full QOIG stream from r and returns it as an
// *image.NRGBA.
func ImageDecode(r io.Reader) (image.Image, error) {
	dec, cfg, err := NewDecoder(r)
	if err != nil {
		return nil, err
	}
	img := image.NewNRGBA(image.Rect(0, 0, int(cfg.Width), int(cfg.Height)))
	sink := NewSliceRowSink(img.Pix, cfg.Width, 4)
	if cfg.Channels == 3 {
		// The stream carries no alpha; decode into a 3-byte sink and
		// widen to NRGBA with opaque alpha afterwards.
		buf := make([]byte, int(cfg.Width)*int(cfg.Height)*3)
		sink = NewSliceRowSink(buf, cfg.Width, 3)
		if err := dec.Decode(sink); err != nil {
			return nil, err
		}
		widenRGBToNRGBA(buf, img.Pix)
		return img, nil
	}
	if err := dec.Decode(sink); err != nil {
		return nil, err
	}
	return img, nil
}

func widenRGBToNRGBA(rgb, nrgba []byte) {
	n := len(rgb) / 3
	for i := 0; i < n; i++ {
		nrgba[4*i] = rgb[3*i]
		nrgba[4*i+1] = rgb[3*i+1]
		nrgba[4*i+2] = rgb[3*i+2]
		nrgba[4*i+3] = 0xFF
	}
}

// DecodeConfig reads just the 14-byte header from r and reports the
// image's dimensions and colour model, without decoding any pixels.
func DecodeConfig(r io.Reader) (image.Config, error) {
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return image.Config{}, newError(KindTruncatedStream, errors.Wrap(err, "reading header"))
	}
	h, err := decodeHeader(buf)
	if err != nil {
		return image.Config{}, err
	}
	model := color.NRGBAModel
	if h.channels == 3 {
		model = color.RGBAModel
	}
	return image.Config{
		Width:      int(h.width),
		Height:     int(h.height),
		ColorModel: model,
	}, nil
}

// DecodeBytes is a convenience wrapper around ImageDecode for callers
// that already hold the whole stream in memory.
func DecodeBytes(data []byte) (image.Image, error) {
	return ImageDecode(bytes.NewReader(data))
}
