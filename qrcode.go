// Package qrcode generates QR Code model 2 symbols, versions 1 to 40.
//
// The typical entry point encodes a string and picks the smallest
// fitting version and the best mask pattern automatically:
//
//	qr, err := qrcode.New("https://example.org", qrcode.Medium)
//
// NewWithMask pins the mask pattern, and NewFromCodewords bypasses
// text encoding entirely, rendering a fully assembled data codeword
// sequence supplied by the caller.
package qrcode

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"strings"

	"github.com/signintech/gopdf"

	svgo "github.com/ajstarks/svgo"

	"github.com/doge0420/QR-code-generator/internal/bitset"
)

var (
	// ErrInvalidVersion reports a version outside 1 to 40.
	ErrInvalidVersion = errors.New("version out of range 1-40")

	// ErrInvalidMask reports a mask pattern index outside 0 to 7.
	ErrInvalidMask = errors.New("mask pattern out of range 0-7")

	// ErrPayloadLengthMismatch reports a data codeword sequence whose
	// length does not match the (version, level) capacity.
	ErrPayloadLengthMismatch = errors.New("wrong number of data codewords")
)

// maskAuto selects the mask pattern by penalty scoring.
const maskAuto = -1

type QRCode struct {
	// Original content encoded.
	content string

	// QR Code type.
	level         RecoveryLevel
	versionNumber int

	// User settable drawing options.
	ForegroundColor color.Color
	BackgroundColor color.Color

	// Quiet zone width around the symbol, in modules.
	Margin int

	// Base 64 output.
	Base64 bool

	version qrCodeVersion

	data   *bitset.Bitset
	symbol *symbol
	mask   int
}

// New encodes content at the given recovery level, choosing the
// smallest version that fits and the mask pattern with the best
// penalty score.
func New(content string, level RecoveryLevel) (*QRCode, error) {
	return newFromContent(content, level, maskAuto)
}

// NewWithMask is New with a fixed mask pattern index in 0 to 7.
func NewWithMask(content string, level RecoveryLevel, mask int) (*QRCode, error) {
	if mask < 0 || mask > 7 {
		return nil, ErrInvalidMask
	}

	return newFromContent(content, level, mask)
}

func newFromContent(content string, level RecoveryLevel, mask int) (*QRCode, error) {
	encoders := []dataEncoderType{dataEncoderType1To9, dataEncoderType10To26, dataEncoderType27To40}

	var encoder *dataEncoder

	var encoded *bitset.Bitset

	var chosenVersion *qrCodeVersion

	var err error

	for _, t := range encoders {
		encoder, err = newDataEncoder(t)
		if err != nil {
			return nil, err
		}

		encoded, err = encoder.encode([]byte(content))
		if err != nil {
			continue
		}

		chosenVersion = chooseQRCodeVersion(level, encoder, encoded.Len())
		if chosenVersion != nil {
			break
		}
	}

	if err != nil {
		return nil, err
	} else if chosenVersion == nil {
		return nil, errors.New("content too long to encode")
	}

	q := &QRCode{
		content: content,

		level:         level,
		versionNumber: chosenVersion.version,

		ForegroundColor: color.Black,
		BackgroundColor: color.White,

		Margin: 4,

		data:    encoded,
		version: *chosenVersion,
		mask:    mask,
	}

	return q, nil
}

// NewFromCodewords renders a fully assembled data codeword sequence:
// mode indicator, character count, payload, terminator and padding
// codewords included. The sequence length must match the (version,
// level) capacity exactly.
func NewFromCodewords(version int, level RecoveryLevel, mask int, dataCodewords []byte) (*QRCode, error) {
	if mask < 0 || mask > 7 {
		return nil, ErrInvalidMask
	}

	v, err := getVersion(version, level)
	if err != nil {
		return nil, err
	}

	stream, err := errorCorrect(dataCodewords, v)
	if err != nil {
		return nil, err
	}

	s, err := buildRegularSymbol(v, mask, stream)
	if err != nil {
		return nil, err
	}

	if n := s.numEmptyModules(); n != 0 {
		return nil, fmt.Errorf("bug: numEmptyModules is %d (expected 0) (version=%d)", n, version)
	}

	q := &QRCode{
		level:         level,
		versionNumber: version,

		ForegroundColor: color.Black,
		BackgroundColor: color.White,

		Margin: 4,

		version: v,
		symbol:  s,
		mask:    mask,
	}

	return q, nil
}

// VersionNumber is the symbol version chosen for the content.
func (q *QRCode) VersionNumber() int {
	return q.versionNumber
}

// Mask is the mask pattern in use. Before encoding, a QRCode built
// with automatic masking reports -1.
func (q *QRCode) Mask() int {
	return q.mask
}

// Bitmap returns the symbol as rows of modules, true meaning dark.
// The quiet zone is not included.
func (q *QRCode) Bitmap() ([][]bool, error) {
	if err := q.encode(); err != nil {
		return nil, err
	}

	return q.symbol.bitmap(), nil
}

func (q *QRCode) image(size int) (image.Image, error) {
	if err := q.encode(); err != nil {
		return nil, err
	}

	// Minimum pixels (both width and height) required.
	realSize := q.symbol.size + 2*q.Margin

	// Variable size support.
	if size < 0 {
		size = size * -1 * realSize
	}

	// Actual pixels available to draw the symbol. Automatically increase the
	// image size if it's not large enough.
	if size < realSize {
		size = realSize
	}

	// Output image.
	rect := image.Rectangle{Min: image.Point{}, Max: image.Point{X: size, Y: size}}

	// Saves a few bytes to have them in this order.
	p := color.Palette([]color.Color{q.BackgroundColor, q.ForegroundColor})
	img := image.NewPaletted(rect, p)

	// QR code bitmap.
	bitmap := q.symbol.bitmap()

	// Map each image pixel to the nearest QR code module.
	modulesPerPixel := float64(realSize) / float64(size)

	for y := 0; y < size; y++ {
		y2 := int(float64(y)*modulesPerPixel) - q.Margin

		for x := 0; x < size; x++ {
			x2 := int(float64(x)*modulesPerPixel) - q.Margin

			if y2 < 0 || y2 >= q.symbol.size || x2 < 0 || x2 >= q.symbol.size {
				continue
			}

			if bitmap[y2][x2] {
				img.Set(x, y, q.ForegroundColor)
			}
		}
	}

	return img, nil
}

func (q *QRCode) PNG(size int) ([]byte, error) {
	img, err := q.image(size)
	if err != nil {
		return nil, err
	}

	encoder := png.Encoder{CompressionLevel: png.BestCompression}

	var b bytes.Buffer

	if err := encoder.Encode(&b, img); err != nil {
		return nil, err
	}

	bts := b.Bytes()

	if q.Base64 {
		bts = []byte(fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(bts)))
	}

	return bts, nil
}

func (q *QRCode) JPEG(size int) ([]byte, error) {
	img, err := q.image(size)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer

	if err := jpeg.Encode(&b, img, &jpeg.Options{Quality: jpeg.DefaultQuality}); err != nil {
		return nil, err
	}

	bts := b.Bytes()

	if q.Base64 {
		bts = []byte(fmt.Sprintf("data:image/jpeg;base64,%s", base64.StdEncoding.EncodeToString(bts)))
	}

	return bts, nil
}

func (q *QRCode) PDF(size int) ([]byte, error) {
	img, err := q.image(size)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer

	pdf := gopdf.GoPdf{}

	rect := gopdf.Rect{W: float64(size), H: float64(size)}

	pdf.Start(gopdf.Config{Unit: gopdf.UnitPT, PageSize: rect})
	pdf.AddPage()

	if err := pdf.ImageFrom(img, 0, 0, &rect); err != nil {
		return nil, err
	}

	if err := pdf.Write(&b); err != nil {
		return nil, err
	}

	bts := b.Bytes()

	if q.Base64 {
		bts = []byte(fmt.Sprintf("data:application/pdf;base64,%s", base64.StdEncoding.EncodeToString(bts)))
	}

	return bts, nil
}

func (q *QRCode) SVG(size int) ([]byte, error) {
	if err := q.encode(); err != nil {
		return nil, err
	}

	var b bytes.Buffer

	bgR, bgG, bgB, bgA := q.BackgroundColor.RGBA()
	bgStyle := fmt.Sprintf("fill: rgb(%d, %d, %d); fill-opacity: %.2f",
		bgR>>8, bgG>>8, bgB>>8, float64(bgA>>8)/255,
	)

	fgR, fgG, fgB, fgA := q.ForegroundColor.RGBA()
	fgStyle := fmt.Sprintf("fill: rgb(%d, %d, %d); fill-opacity: %.2f",
		fgR>>8, fgG>>8, fgB>>8, float64(fgA>>8)/255,
	)

	realSize := q.symbol.size + 2*q.Margin

	scale := math.Floor(float64(size)/float64(realSize)) + float64(1)
	size = int(scale) * realSize

	svg := svgo.New(&b)

	svg.Start(size, size)
	svg.Rect(0, 0, size, size, bgStyle)
	svg.Group(fgStyle)
	svg.Scale(scale)

	bitmap := q.symbol.bitmap()

	for y := 0; y < q.symbol.size; y++ {
		for x := 0; x < q.symbol.size; x++ {
			if bitmap[y][x] {
				svg.Rect(x+q.Margin, y+q.Margin, 1, 1)
			}
		}
	}

	svg.Gend()
	svg.Gend()
	svg.End()

	bts := b.Bytes()

	if q.Base64 {
		bts = []byte(fmt.Sprintf("data:image/svg+xml;base64,%s", base64.StdEncoding.EncodeToString(bts)))
	}

	return bts, nil
}

// String draws the symbol with full block characters, two columns per
// module, suitable for a terminal with a light background.
func (q *QRCode) String() string {
	if err := q.encode(); err != nil {
		return err.Error()
	}

	var sb strings.Builder

	bitmap := q.symbol.bitmap()

	for y := -q.Margin; y < q.symbol.size+q.Margin; y++ {
		for x := -q.Margin; x < q.symbol.size+q.Margin; x++ {
			dark := y >= 0 && y < q.symbol.size && x >= 0 && x < q.symbol.size && bitmap[y][x]

			if dark {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}

		sb.WriteByte('\n')
	}

	return sb.String()
}

// encode runs the back half of the pipeline: terminator and padding,
// error correction and interleaving, then symbol construction under
// the fixed or best scoring mask.
func (q *QRCode) encode() error {
	if q.symbol != nil {
		return nil
	}

	q.addTerminatorBits(q.version.numTerminatorBitsRequired(q.data.Len()))

	if err := q.addPadding(); err != nil {
		return err
	}

	stream, err := errorCorrect(q.data.Bytes(), q.version)
	if err != nil {
		return err
	}

	masks := []int{q.mask}
	if q.mask == maskAuto {
		masks = []int{0, 1, 2, 3, 4, 5, 6, 7}
	}

	penalty := 0

	for _, mask := range masks {
		s, err := buildRegularSymbol(q.version, mask, stream)
		if err != nil {
			return err
		}

		if n := s.numEmptyModules(); n != 0 {
			return fmt.Errorf("bug: numEmptyModules is %d (expected 0) (version=%d)",
				n, q.versionNumber)
		}

		p := s.penaltyScore()

		if q.symbol == nil || p < penalty {
			q.symbol = s
			q.mask = mask
			penalty = p
		}
	}

	return nil
}

func (q *QRCode) addTerminatorBits(numTerminatorBits int) {
	q.data.AppendNumBools(numTerminatorBits, false)
}

func (q *QRCode) addPadding() error {
	numDataBits := q.version.numDataBits()

	if q.data.Len() == numDataBits {
		return nil
	}

	// Pad to the nearest codeword boundary.
	q.data.AppendNumBools(q.version.numBitsToPadToCodeword(q.data.Len()), false)

	// Pad codewords 0b11101100 and 0b00010001.
	padding := [2]*bitset.Bitset{
		bitset.New(true, true, true, false, true, true, false, false),
		bitset.New(false, false, false, true, false, false, false, true),
	}

	// Insert pad codewords alternately.
	i := 0

	for numDataBits-q.data.Len() >= 8 {
		if err := q.data.Append(padding[i]); err != nil {
			return err
		}

		i = 1 - i // Alternate between 0 and 1.
	}

	if q.data.Len() != numDataBits {
		return fmt.Errorf("BUG: got len %d, expected %d", q.data.Len(), numDataBits)
	}

	return nil
}
