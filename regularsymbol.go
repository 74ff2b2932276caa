package qrcode

import (
	"fmt"
)

// regularSymbol builds one complete QR symbol: the functional patterns
// are painted first, the codeword bitstream is then threaded through
// the remaining modules, and finally the format and version sequences
// fill their reserved strips.
type regularSymbol struct {
	version qrCodeVersion
	mask    int

	symbol *symbol
	size   int
}

// finderPattern is the 7x7 pattern placed in three corners of every
// symbol.
var finderPattern = [7][7]bool{
	{true, true, true, true, true, true, true},
	{true, false, false, false, false, false, true},
	{true, false, true, true, true, false, true},
	{true, false, true, true, true, false, true},
	{true, false, true, true, true, false, true},
	{true, false, false, false, false, false, true},
	{true, true, true, true, true, true, true},
}

// alignmentPattern is the 5x5 pattern repeated across larger symbols.
var alignmentPattern = [5][5]bool{
	{true, true, true, true, true},
	{true, false, false, false, true},
	{true, false, true, false, true},
	{true, false, false, false, true},
	{true, true, true, true, true},
}

// maskPredicates[mask] reports whether the data module at column x,
// row y is inverted under that mask pattern.
var maskPredicates = [8]func(x, y int) bool{
	func(x, y int) bool { return (x+y)%2 == 0 },
	func(x, y int) bool { return y%2 == 0 },
	func(x, y int) bool { return x%3 == 0 },
	func(x, y int) bool { return (x+y)%3 == 0 },
	func(x, y int) bool { return (y/2+x/3)%2 == 0 },
	func(x, y int) bool { return (x*y)%2+(x*y)%3 == 0 },
	func(x, y int) bool { return ((x*y)%2+(x*y)%3)%2 == 0 },
	func(x, y int) bool { return ((x+y)%2+(x*y)%3)%2 == 0 },
}

// buildRegularSymbol renders the interleaved codeword stream as a
// complete symbol under the given mask pattern.
func buildRegularSymbol(version qrCodeVersion, mask int, codewords []byte) (*symbol, error) {
	if mask < 0 || mask > 7 {
		return nil, ErrInvalidMask
	}

	rs := &regularSymbol{
		version: version,
		mask:    mask,

		symbol: newSymbol(version.symbolSize()),
		size:   version.symbolSize(),
	}

	rs.addFinderPatterns()
	rs.addSeparators()
	rs.addAlignmentPatterns()
	rs.addTimingPatterns()
	rs.addDarkModule()
	rs.reserveFormatRegions()
	rs.reserveVersionRegions()

	if err := rs.placeData(codewords); err != nil {
		return nil, err
	}

	rs.addFormatInfo()
	rs.addVersionInfo()

	return rs.symbol, nil
}

func (rs *regularSymbol) addFinderPatterns() {
	corners := [3][2]int{
		{0, 0},
		{rs.size - 7, 0},
		{0, rs.size - 7},
	}

	for _, corner := range corners {
		for dy := 0; dy < 7; dy++ {
			for dx := 0; dx < 7; dx++ {
				rs.symbol.putFunctional(corner[0]+dx, corner[1]+dy, finderPattern[dy][dx])
			}
		}
	}
}

// addSeparators paints the one module light border on the two inner
// sides of each finder pattern.
func (rs *regularSymbol) addSeparators() {
	// Vertical strips of eight, including the corner module.
	for dy := 0; dy < 8; dy++ {
		rs.symbol.putFunctional(7, dy, false)
		rs.symbol.putFunctional(rs.size-8, dy, false)
		rs.symbol.putFunctional(7, rs.size-8+dy, false)
	}

	// Horizontal strips of seven alongside them.
	for dx := 0; dx < 7; dx++ {
		rs.symbol.putFunctional(dx, 7, false)
		rs.symbol.putFunctional(rs.size-7+dx, 7, false)
		rs.symbol.putFunctional(dx, rs.size-8, false)
	}
}

// addAlignmentPatterns paints a 5x5 pattern at every candidate center
// from the cartesian product of the version's center coordinates.
// Candidates whose center already lies inside a functional region are
// the ones overlapping the finder corners and are dropped.
func (rs *regularSymbol) addAlignmentPatterns() {
	if rs.version.version < 2 {
		return
	}

	centers := alignmentCenters[rs.version.version-2]

	for _, cy := range centers {
		for _, cx := range centers {
			if rs.symbol.functionalAt(cx, cy) {
				continue
			}

			for dy := 0; dy < 5; dy++ {
				for dx := 0; dx < 5; dx++ {
					rs.symbol.putFunctional(cx-2+dx, cy-2+dy, alignmentPattern[dy][dx])
				}
			}
		}
	}
}

// addTimingPatterns paints the alternating strips on row 6 and column
// 6, dark on even coordinates, leaving already reserved modules alone.
func (rs *regularSymbol) addTimingPatterns() {
	for i := 8; i <= rs.size-9; i++ {
		if !rs.symbol.functionalAt(i, 6) {
			rs.symbol.putFunctional(i, 6, i%2 == 0)
		}

		if !rs.symbol.functionalAt(6, i) {
			rs.symbol.putFunctional(6, i, i%2 == 0)
		}
	}
}

func (rs *regularSymbol) addDarkModule() {
	rs.symbol.putFunctional(8, 4*rs.version.version+9, true)
}

// reserveFormatRegions marks the two 15 module format strips as
// functional before the data walk. addFormatInfo fills in the values
// afterwards.
func (rs *regularSymbol) reserveFormatRegions() {
	for i := 0; i < 9; i++ {
		if i != 6 {
			rs.symbol.putFunctional(i, 8, false)
			rs.symbol.putFunctional(8, i, false)
		}
	}

	for i := 0; i < 8; i++ {
		rs.symbol.putFunctional(rs.size-8+i, 8, false)

		if i < 7 {
			rs.symbol.putFunctional(8, rs.size-7+i, false)
		}
	}
}

// reserveVersionRegions marks the two 3x6 version information blocks
// as functional for symbols that carry them.
func (rs *regularSymbol) reserveVersionRegions() {
	if rs.version.version < 7 {
		return
	}

	for a := 0; a < 6; a++ {
		for b := rs.size - 11; b <= rs.size-9; b++ {
			rs.symbol.putFunctional(a, b, false)
			rs.symbol.putFunctional(b, a, false)
		}
	}
}

// placeData threads the codeword bitstream through the non-functional
// modules. Traversal runs in vertical column pairs from the right edge
// leftwards, snaking up and down and stepping over the timing column,
// and each bit is inverted where the mask predicate holds.
func (rs *regularSymbol) placeData(codewords []byte) error {
	bits := make([]bool, 0, len(codewords)*8+rs.version.numRemainderBits)

	for _, cw := range codewords {
		for i := 7; i >= 0; i-- {
			bits = append(bits, cw&(1<<uint(i)) != 0)
		}
	}

	// Remainder bits pad out the final column pairs.
	for i := 0; i < rs.version.numRemainderBits; i++ {
		bits = append(bits, false)
	}

	mask := maskPredicates[rs.mask]
	next := 0
	up := true

	for xRight := rs.size - 1; xRight >= 1; xRight -= 2 {
		// The timing column is not part of any column pair.
		if xRight == 6 {
			xRight--
		}

		y, dy := rs.size-1, -1
		if !up {
			y, dy = 0, 1
		}

		for ; y >= 0 && y < rs.size; y += dy {
			for _, x := range [2]int{xRight, xRight - 1} {
				if rs.symbol.functionalAt(x, y) {
					continue
				}

				if next >= len(bits) {
					return fmt.Errorf("bug: bitstream exhausted at (%d,%d) (version=%d)",
						x, y, rs.version.version)
				}

				value := bits[next]
				if mask(x, y) {
					value = !value
				}

				rs.symbol.put(x, y, value)
				next++
			}
		}

		up = !up
	}

	if next != len(bits) {
		return fmt.Errorf("bug: %d of %d bits placed (version=%d)",
			next, len(bits), rs.version.version)
	}

	return nil
}

// addFormatInfo paints the 15 bit format sequence into both reserved
// strips, most significant bit first.
func (rs *regularSymbol) addFormatInfo() {
	sequence := formatBitSequence[int(rs.version.level)*8+rs.mask]

	bit := func(i int) bool {
		return sequence&(1<<uint(14-i)) != 0
	}

	// First copy, around the top left finder: bits 0-7 along row 8
	// skipping the timing column, bits 8-14 up column 8 skipping the
	// timing row.
	i := 0
	for x := 0; x <= 8; x++ {
		if x == 6 {
			continue
		}

		rs.symbol.putFunctional(x, 8, bit(i))
		i++
	}

	for y := 7; y >= 0; y-- {
		if y == 6 {
			continue
		}

		rs.symbol.putFunctional(8, y, bit(i))
		i++
	}

	// Second copy: bits 0-6 up column 8 from the bottom edge, bits
	// 7-14 along row 8 to the right edge.
	for i := 0; i < 7; i++ {
		rs.symbol.putFunctional(8, rs.size-1-i, bit(i))
	}

	for i := 7; i < 15; i++ {
		rs.symbol.putFunctional(rs.size-15+i, 8, bit(i))
	}
}

// addVersionInfo paints the 18 bit version sequence into both reserved
// blocks for versions 7 and up, least significant bit first in column
// major order.
func (rs *regularSymbol) addVersionInfo() {
	if rs.version.version < 7 {
		return
	}

	sequence := versionBitSequence[rs.version.version-7]

	for i := 0; i < 18; i++ {
		value := sequence&(1<<uint(i)) != 0

		// Bottom left block, and its transpose at the top right.
		rs.symbol.putFunctional(i/3, rs.size-11+i%3, value)
		rs.symbol.putFunctional(rs.size-11+i%3, i/3, value)
	}
}
