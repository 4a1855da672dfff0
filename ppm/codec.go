package ppm

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/mtandon-io/lumentrace/types"
)

// DefaultGamma is the gamma applied by Encode when the caller passes 0.
const DefaultGamma = 2.0

// maxChannelMagnitude is the "255" in the P3 header this package always
// writes; Decode accepts any positive max-magnitude header value.
const maxChannelMagnitude = 255

// Encode writes img as a plain P3 (NetPBM) file: a "P3\n{W} {H}\n255\n"
// header followed by one "R G B\n" triplet per pixel in row-major order.
// Each channel is gamma-encoded via
// channel_out = floor((max+0.999999)*linear^(1/gamma)), clamped to
// [0,max]. gamma<=0 uses DefaultGamma.
func Encode(w io.Writer, img *Image, gamma float64) error {
	if gamma <= 0 {
		gamma = DefaultGamma
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n%d\n", img.Width, img.Height, maxChannelMagnitude); err != nil {
		return err
	}
	for _, c := range img.Pixels {
		r := gammaEncode(c.X, gamma)
		g := gammaEncode(c.Y, gamma)
		b := gammaEncode(c.Z, gamma)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func gammaEncode(linear, gamma float64) int {
	if linear < 0 {
		linear = 0
	}
	v := int(math.Floor((maxChannelMagnitude + 0.999999) * math.Pow(linear, 1/gamma)))
	if v > maxChannelMagnitude {
		v = maxChannelMagnitude
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Decode strictly parses a P3 file: the first token must be "P3", then
// width, height, max-magnitude, then exactly width*height*3 non-negative
// integers no greater than max-magnitude. Any violation is a fatal error;
// Decode never panics.
func Decode(r io.Reader) (*Image, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	next := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", ErrUnexpectedEOF
		}
		return sc.Text(), nil
	}
	nextInt := func() (int, error) {
		tok, err := next()
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return 0, fmt.Errorf("ppm: %q is not an integer: %w", tok, err)
		}
		return v, nil
	}

	magic, err := next()
	if err != nil {
		return nil, err
	}
	if magic != "P3" {
		return nil, ErrBadHeader
	}

	width, err := nextInt()
	if err != nil {
		return nil, err
	}
	height, err := nextInt()
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}

	maxMagnitude, err := nextInt()
	if err != nil {
		return nil, err
	}
	if maxMagnitude <= 0 {
		return nil, ErrBadMaxMagnitude
	}

	img := NewImage(width, height)
	for i := 0; i < width*height; i++ {
		r, err := nextInt()
		if err != nil {
			return nil, err
		}
		g, err := nextInt()
		if err != nil {
			return nil, err
		}
		b, err := nextInt()
		if err != nil {
			return nil, err
		}
		if !channelInRange(r, maxMagnitude) || !channelInRange(g, maxMagnitude) || !channelInRange(b, maxMagnitude) {
			return nil, ErrChannelOutOfRange
		}
		img.Pixels[i] = types.XYZ(
			float64(r)/float64(maxMagnitude),
			float64(g)/float64(maxMagnitude),
			float64(b)/float64(maxMagnitude),
		)
	}
	if sc.Scan() {
		return nil, fmt.Errorf("ppm: unexpected token %q after the last pixel", sc.Text())
	}
	return img, nil
}

func channelInRange(v, max int) bool {
	return v >= 0 && v <= max
}
