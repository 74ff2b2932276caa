package qrcode

// RecoveryLevel is the amount of error correction redundancy carried by
// a symbol. From least to most tolerant of damage: Low (~7%), Medium
// (~15%), High (~25%), Highest (~30%).
type RecoveryLevel int

const (
	Low RecoveryLevel = iota
	Medium
	High
	Highest
)

// remainderBits[version-1] is the number of filler bits needed after
// the final codeword to cover every data module of the symbol.
var remainderBits = [40]int{
	0, 7, 7, 7, 7, 7, 0, 0, 0, 0,
	0, 0, 0, 3, 3, 3, 3, 3, 3, 3,
	4, 4, 4, 4, 4, 4, 4, 3, 3, 3,
	3, 3, 3, 3, 0, 0, 0, 0, 0, 0,
}

// qrCodeVersion is the full parameter set of one (version, recovery
// level) combination.
type qrCodeVersion struct {
	version int
	level   RecoveryLevel

	// Data codeword blocking for Reed-Solomon encoding.
	layout blockLayout

	// Error correction codewords appended to every block.
	numECBytesPerBlock int

	numRemainderBits int
}

// getVersion assembles the parameter set for a version and recovery
// level from the static tables.
func getVersion(version int, level RecoveryLevel) (qrCodeVersion, error) {
	if version < 1 || version > 40 {
		return qrCodeVersion{}, ErrInvalidVersion
	}

	return qrCodeVersion{
		version:            version,
		level:              level,
		layout:             dataBytesPerBlock[version-1][level],
		numECBytesPerBlock: ecBytesPerBlock[version-1][level],
		numRemainderBits:   remainderBits[version-1],
	}, nil
}

// symbolSize is the width of the symbol in modules, excluding any quiet
// zone.
func (v qrCodeVersion) symbolSize() int {
	return 17 + 4*v.version
}

func (v qrCodeVersion) numBlocks() int {
	return v.layout.numBlocks1 + v.layout.numBlocks2
}

func (v qrCodeVersion) numDataCodewords() int {
	return v.layout.numCodewords1*v.layout.numBlocks1 +
		v.layout.numCodewords2*v.layout.numBlocks2
}

func (v qrCodeVersion) numTotalCodewords() int {
	return v.numDataCodewords() + v.numECBytesPerBlock*v.numBlocks()
}

func (v qrCodeVersion) numDataBits() int {
	return v.numDataCodewords() * 8
}

// numTerminatorBitsRequired is the length of the terminator sequence
// for a payload of numDataBits encoded bits: four zero bits, fewer if
// the symbol has no room for them.
func (v qrCodeVersion) numTerminatorBitsRequired(numDataBits int) int {
	left := v.numDataBits() - numDataBits
	if left > 4 {
		return 4
	}

	return left
}

// numBitsToPadToCodeword is the zero padding that aligns a payload of
// numDataBits bits to the next codeword boundary.
func (v qrCodeVersion) numBitsToPadToCodeword(numDataBits int) int {
	if numDataBits == v.numDataBits() {
		return 0
	}

	return (8 - numDataBits%8) % 8
}

// chooseQRCodeVersion picks the smallest version within the encoder's
// class that can hold numDataBits encoded bits at the requested
// recovery level, or nil if none can.
func chooseQRCodeVersion(level RecoveryLevel, encoder *dataEncoder, numDataBits int) *qrCodeVersion {
	for version := encoder.minVersion; version <= encoder.maxVersion; version++ {
		v, err := getVersion(version, level)
		if err != nil {
			return nil
		}

		if v.numDataBits() >= numDataBits {
			return &v
		}
	}

	return nil
}
