package qrcode

import (
	"fmt"

	"github.com/doge0420/QR-code-generator/internal/reedsolomon"
)

// errorCorrect turns the symbol's data codewords into the final
// on-matrix codeword stream: the data codewords interleaved across
// blocks, followed by the interleaved error correction codewords.
func errorCorrect(data []byte, v qrCodeVersion) ([]byte, error) {
	if len(data) != v.numDataCodewords() {
		return nil, fmt.Errorf("%w: got %d codewords, version %d level %d needs %d",
			ErrPayloadLengthMismatch, len(data), v.version, v.level, v.numDataCodewords())
	}

	blocks := splitBlocks(data, v.layout)

	ecBlocks := make([][]byte, len(blocks))

	for i, block := range blocks {
		ec, err := reedsolomon.Encode(block, v.numECBytesPerBlock)
		if err != nil {
			return nil, err
		}

		ecBlocks[i] = ec
	}

	result := interleave(blocks)

	return append(result, interleave(ecBlocks)...), nil
}

// splitBlocks slices the data codewords into Reed-Solomon blocks:
// first the group 1 blocks, then the group 2 blocks, in order.
func splitBlocks(data []byte, layout blockLayout) [][]byte {
	blocks := make([][]byte, 0, layout.numBlocks1+layout.numBlocks2)

	for i := 0; i < layout.numBlocks1; i++ {
		blocks = append(blocks, data[:layout.numCodewords1])
		data = data[layout.numCodewords1:]
	}

	for i := 0; i < layout.numBlocks2; i++ {
		blocks = append(blocks, data[:layout.numCodewords2])
		data = data[layout.numCodewords2:]
	}

	return blocks
}

// interleave emits codewords column-wise across the blocks: the first
// codeword of every block in block order, then the second, and so on.
// Shorter blocks simply drop out of the later columns.
func interleave(blocks [][]byte) []byte {
	maxLen := 0
	total := 0

	for _, block := range blocks {
		total += len(block)

		if len(block) > maxLen {
			maxLen = len(block)
		}
	}

	result := make([]byte, 0, total)

	for i := 0; i < maxLen; i++ {
		for _, block := range blocks {
			if i < len(block) {
				result = append(result, block[i])
			}
		}
	}

	return result
}
