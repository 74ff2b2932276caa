// Package bitset implements an append-only bit array.
//
// Bits are stored most significant first, matching the transmission
// order of a QR bitstream, so the packed byte form of the set is the
// codeword sequence it spells.
package bitset

import (
	"fmt"
)

type Bitset struct {
	// The number of bits stored.
	numBits int

	// Storage for individual bits.
	bits []byte
}

func New(v ...bool) *Bitset {
	b := &Bitset{numBits: 0, bits: make([]byte, 0)}
	b.AppendBools(v...)

	return b
}

func (b *Bitset) Len() int {
	return b.numBits
}

func (b *Bitset) At(index int) (bool, error) {
	if index < 0 || index >= b.numBits {
		return false, fmt.Errorf("index %d out of range", index)
	}

	return (b.bits[index/8] & (0x80 >> byte(index%8))) != 0, nil
}

// Bytes packs the bits into bytes, most significant bit first. The
// final byte is zero padded when the length is not a multiple of 8.
func (b *Bitset) Bytes() []byte {
	numBytes := b.numBits / 8
	if b.numBits%8 != 0 {
		numBytes++
	}

	result := make([]byte, numBytes)
	copy(result, b.bits[:numBytes])

	return result
}

func (b *Bitset) Append(other *Bitset) error {
	b.ensureCapacity(other.numBits)

	for i := 0; i < other.numBits; i++ {
		bit, err := other.At(i)
		if err != nil {
			return err
		}

		if bit {
			b.bits[b.numBits/8] |= 0x80 >> uint(b.numBits%8)
		}

		b.numBits++
	}

	return nil
}

func (b *Bitset) AppendBools(bits ...bool) {
	b.ensureCapacity(len(bits))

	for _, v := range bits {
		if v {
			b.bits[b.numBits/8] |= 0x80 >> uint(b.numBits%8)
		}

		b.numBits++
	}
}

func (b *Bitset) AppendNumBools(num int, value bool) {
	for i := 0; i < num; i++ {
		b.AppendBools(value)
	}
}

func (b *Bitset) AppendByte(value byte, numBits int) error {
	if numBits < 0 || numBits > 8 {
		return fmt.Errorf("numBits %d out of range 0-8", numBits)
	}

	return b.AppendUint32(uint32(value), numBits)
}

func (b *Bitset) AppendUint32(value uint32, numBits int) error {
	if numBits < 0 || numBits > 32 {
		return fmt.Errorf("numBits %d out of range 0-32", numBits)
	}

	b.ensureCapacity(numBits)

	for i := numBits - 1; i >= 0; i-- {
		if value&(1<<uint(i)) != 0 {
			b.bits[b.numBits/8] |= 0x80 >> uint(b.numBits%8)
		}

		b.numBits++
	}

	return nil
}

func (b *Bitset) ensureCapacity(numBits int) {
	numBits += b.numBits

	newNumBytes := numBits / 8
	if numBits%8 != 0 {
		newNumBytes++
	}

	if len(b.bits) >= newNumBytes {
		return
	}

	b.bits = append(b.bits, make([]byte, newNumBytes+2*len(b.bits))...)
}
