package qrcode

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/japanese"

	"github.com/doge0420/QR-code-generator/internal/bitset"
)

// dataMode is the encoding mode of one segment. The values order the
// modes by generality: any numeric string is also alphanumeric, and
// any string at all fits byte mode.
type dataMode uint8

const (
	dataModeNone dataMode = 1 << iota
	dataModeNumeric
	dataModeAlphanumeric
	dataModeByte
	dataModeKanji
)

// dataEncoderType groups the versions that share character count field
// widths.
type dataEncoderType uint8

const (
	dataEncoderType1To9 dataEncoderType = iota
	dataEncoderType10To26
	dataEncoderType27To40
)

// Mode indicator bit sequences, identical across version classes.
var modeIndicators = map[dataMode][4]bool{
	dataModeNumeric:      {false, false, false, true},
	dataModeAlphanumeric: {false, false, true, false},
	dataModeByte:         {false, true, false, false},
	dataModeKanji:        {true, false, false, false},
}

type segment struct {
	dataMode dataMode
	data     []byte
}

// dataEncoder assembles the encoded bitstream for one version class:
// mode indicator, character count, then the payload of each segment.
type dataEncoder struct {
	// Version range sharing these field widths.
	minVersion int
	maxVersion int

	// Character count field widths per mode.
	numNumericCharCountBits      int
	numAlphanumericCharCountBits int
	numByteCharCountBits         int
	numKanjiCharCountBits        int

	// The data classified into unoptimised segments.
	actual []segment

	// The data classified into optimised segments.
	optimised []segment
}

func newDataEncoder(t dataEncoderType) (*dataEncoder, error) {
	switch t {
	case dataEncoderType1To9:
		return &dataEncoder{
			minVersion:                   1,
			maxVersion:                   9,
			numNumericCharCountBits:      10,
			numAlphanumericCharCountBits: 9,
			numByteCharCountBits:         8,
			numKanjiCharCountBits:        8,
		}, nil
	case dataEncoderType10To26:
		return &dataEncoder{
			minVersion:                   10,
			maxVersion:                   26,
			numNumericCharCountBits:      12,
			numAlphanumericCharCountBits: 11,
			numByteCharCountBits:         16,
			numKanjiCharCountBits:        10,
		}, nil
	case dataEncoderType27To40:
		return &dataEncoder{
			minVersion:                   27,
			maxVersion:                   40,
			numNumericCharCountBits:      14,
			numAlphanumericCharCountBits: 13,
			numByteCharCountBits:         16,
			numKanjiCharCountBits:        12,
		}, nil
	default:
		return nil, errors.New("unknown dataEncoderType")
	}
}

func (d *dataEncoder) encode(data []byte) (*bitset.Bitset, error) {
	d.actual = nil
	d.optimised = nil

	if len(data) == 0 {
		return nil, errors.New("no data to encode")
	}

	// A payload made up entirely of JIS X 0208 characters is denser as
	// a single kanji segment than as Shift JIS bytes.
	if sjis, ok := toKanji(data); ok {
		d.optimised = []segment{{dataMode: dataModeKanji, data: sjis}}

		encoded := bitset.New()
		if err := d.encodeSegment(d.optimised[0], encoded); err != nil {
			return nil, err
		}

		return encoded, nil
	}

	// Classify data into unoptimised segments.
	highestRequiredMode := d.classifyDataModes(data)

	// Coalesce segments where one larger segment encodes shorter than
	// its parts.
	if err := d.optimiseDataModes(); err != nil {
		return nil, err
	}

	// Check if a single segment in the most general required mode
	// would be shorter still.
	optimisedLength := 0

	for _, s := range d.optimised {
		length, err := d.encodedLength(s.dataMode, len(s.data))
		if err != nil {
			return nil, err
		}

		optimisedLength += length
	}

	singleSegmentLength, err := d.encodedLength(highestRequiredMode, len(data))
	if err != nil {
		return nil, err
	}

	if singleSegmentLength <= optimisedLength {
		d.optimised = []segment{{dataMode: highestRequiredMode, data: data}}
	}

	encoded := bitset.New()

	for _, s := range d.optimised {
		if err := d.encodeSegment(s, encoded); err != nil {
			return nil, err
		}
	}

	return encoded, nil
}

func (d *dataEncoder) classifyDataModes(data []byte) dataMode {
	var start int

	mode := dataModeNone
	highestRequiredMode := mode

	for i, v := range data {
		newMode := dataModeByte

		switch {
		case v >= '0' && v <= '9':
			newMode = dataModeNumeric
		case isAlphanumeric(v):
			newMode = dataModeAlphanumeric
		}

		if newMode != mode {
			if i > 0 {
				d.actual = append(d.actual, segment{dataMode: mode, data: data[start:i]})
				start = i
			}

			mode = newMode
		}

		if newMode > highestRequiredMode {
			highestRequiredMode = newMode
		}
	}

	d.actual = append(d.actual, segment{dataMode: mode, data: data[start:]})

	return highestRequiredMode
}

func (d *dataEncoder) optimiseDataModes() error {
	for i := 0; i < len(d.actual); {
		mode := d.actual[i].dataMode
		numChars := len(d.actual[i].data)

		j := i + 1
		for j < len(d.actual) {
			nextMode := d.actual[j].dataMode
			nextNumChars := len(d.actual[j].data)

			if nextMode > mode {
				break
			}

			coalescedLength, err := d.encodedLength(mode, numChars+nextNumChars)
			if err != nil {
				return err
			}

			separateLength1, err := d.encodedLength(mode, numChars)
			if err != nil {
				return err
			}

			separateLength2, err := d.encodedLength(nextMode, nextNumChars)
			if err != nil {
				return err
			}

			if coalescedLength >= separateLength1+separateLength2 {
				break
			}

			numChars += nextNumChars
			j++
		}

		optimised := segment{dataMode: mode, data: make([]byte, 0, numChars)}

		for k := i; k < j; k++ {
			optimised.data = append(optimised.data, d.actual[k].data...)
		}

		d.optimised = append(d.optimised, optimised)

		i = j
	}

	return nil
}

func (d *dataEncoder) encodeSegment(s segment, encoded *bitset.Bitset) error {
	indicator, ok := modeIndicators[s.dataMode]
	if !ok {
		return errors.New("unknown data mode")
	}

	charCountBits, err := d.charCountBits(s.dataMode)
	if err != nil {
		return err
	}

	numChars := len(s.data)
	if s.dataMode == dataModeKanji {
		// Kanji characters occupy two Shift JIS bytes each.
		numChars /= 2
	}

	if numChars >= 1<<uint(charCountBits) {
		return errors.New("length too long to be represented")
	}

	encoded.AppendBools(indicator[:]...)

	if err := encoded.AppendUint32(uint32(numChars), charCountBits); err != nil {
		return err
	}

	switch s.dataMode {
	case dataModeNumeric:
		return encodeNumeric(s.data, encoded)
	case dataModeAlphanumeric:
		return encodeAlphanumeric(s.data, encoded)
	case dataModeByte:
		for _, b := range s.data {
			if err := encoded.AppendByte(b, 8); err != nil {
				return err
			}
		}

		return nil
	case dataModeKanji:
		return encodeKanji(s.data, encoded)
	}

	return errors.New("unknown data mode")
}

// encodeNumeric packs digits in groups of three into ten bits, with a
// shorter final group for the leftovers.
func encodeNumeric(data []byte, encoded *bitset.Bitset) error {
	for i := 0; i < len(data); i += 3 {
		group := len(data) - i
		if group > 3 {
			group = 3
		}

		var value uint32

		for j := 0; j < group; j++ {
			value = value*10 + uint32(data[i+j]-'0')
		}

		if err := encoded.AppendUint32(value, 1+3*group); err != nil {
			return err
		}
	}

	return nil
}

// encodeAlphanumeric packs character pairs into eleven bits, with six
// bits for a trailing single character.
func encodeAlphanumeric(data []byte, encoded *bitset.Bitset) error {
	for i := 0; i < len(data); i += 2 {
		first, err := encodeAlphanumericCharacter(data[i])
		if err != nil {
			return err
		}

		if i+1 == len(data) {
			if err := encoded.AppendUint32(first, 6); err != nil {
				return err
			}

			break
		}

		second, err := encodeAlphanumericCharacter(data[i+1])
		if err != nil {
			return err
		}

		if err := encoded.AppendUint32(first*45+second, 11); err != nil {
			return err
		}
	}

	return nil
}

// encodeKanji packs each two byte Shift JIS character into thirteen
// bits.
func encodeKanji(sjis []byte, encoded *bitset.Bitset) error {
	for i := 0; i+1 < len(sjis); i += 2 {
		c := uint32(sjis[i])<<8 | uint32(sjis[i+1])

		switch {
		case c >= 0x8140 && c <= 0x9ffc:
			c -= 0x8140
		case c >= 0xe040 && c <= 0xebbf:
			c -= 0xc140
		default:
			return fmt.Errorf("character %#04x not encodable in kanji mode", c)
		}

		if err := encoded.AppendUint32((c>>8)*0xc0+(c&0xff), 13); err != nil {
			return err
		}
	}

	return nil
}

// toKanji converts data to Shift JIS and reports whether every
// character lands in the two byte ranges kanji mode can carry.
func toKanji(data []byte) ([]byte, bool) {
	sjis, err := japanese.ShiftJIS.NewEncoder().Bytes(data)
	if err != nil || len(sjis)%2 != 0 || len(sjis) == 0 {
		return nil, false
	}

	for i := 0; i+1 < len(sjis); i += 2 {
		c := uint32(sjis[i])<<8 | uint32(sjis[i+1])

		inLow := c >= 0x8140 && c <= 0x9ffc
		inHigh := c >= 0xe040 && c <= 0xebbf

		if !inLow && !inHigh {
			return nil, false
		}
	}

	return sjis, true
}

func (d *dataEncoder) charCountBits(mode dataMode) (int, error) {
	switch mode {
	case dataModeNumeric:
		return d.numNumericCharCountBits, nil
	case dataModeAlphanumeric:
		return d.numAlphanumericCharCountBits, nil
	case dataModeByte:
		return d.numByteCharCountBits, nil
	case dataModeKanji:
		return d.numKanjiCharCountBits, nil
	default:
		return 0, errors.New("unknown data mode")
	}
}

// encodedLength is the encoded bit count of a single segment of n
// characters in the given mode.
func (d *dataEncoder) encodedLength(mode dataMode, n int) (int, error) {
	charCountBits, err := d.charCountBits(mode)
	if err != nil {
		return 0, err
	}

	if n >= 1<<uint(charCountBits) {
		return 0, errors.New("length too long to be represented")
	}

	length := 4 + charCountBits

	switch mode {
	case dataModeNumeric:
		length += 10 * (n / 3)

		if n%3 != 0 {
			length += 1 + 3*(n%3)
		}
	case dataModeAlphanumeric:
		length += 11 * (n / 2)
		length += 6 * (n % 2)
	case dataModeByte:
		length += 8 * n
	case dataModeKanji:
		length += 13 * n
	}

	return length, nil
}

func isAlphanumeric(v byte) bool {
	switch {
	case v >= '0' && v <= '9', v >= 'A' && v <= 'Z':
		return true
	case v == ' ', v == '$', v == '%', v == '*', v == '+',
		v == '-', v == '.', v == '/', v == ':':
		return true
	}

	return false
}

func encodeAlphanumericCharacter(v byte) (uint32, error) {
	c := uint32(v)

	switch {
	case c >= '0' && c <= '9':
		// 0-9 encoded as 0-9.
		return c - '0', nil
	case c >= 'A' && c <= 'Z':
		// A-Z encoded as 10-35.
		return c - 'A' + 10, nil
	case c == ' ':
		return 36, nil
	case c == '$':
		return 37, nil
	case c == '%':
		return 38, nil
	case c == '*':
		return 39, nil
	case c == '+':
		return 40, nil
	case c == '-':
		return 41, nil
	case c == '.':
		return 42, nil
	case c == '/':
		return 43, nil
	case c == ':':
		return 44, nil
	default:
		return 0, fmt.Errorf("non alphanumeric character %v", v)
	}
}
