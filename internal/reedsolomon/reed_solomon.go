package reedsolomon

import (
	"fmt"
)

// Encode computes the numECBytes Reed-Solomon error correction
// codewords for one data block.
//
// The block bytes are the coefficients of the message polynomial, from
// the highest power down. The returned slice holds exactly numECBytes
// codewords: the remainder of the zero-padded message polynomial
// divided by the degree numECBytes generator polynomial.
func Encode(block []byte, numECBytes int) ([]byte, error) {
	if numECBytes < 1 || numECBytes >= len(generatorPolynomials) {
		return nil, fmt.Errorf("no generator polynomial of degree %d", numECBytes)
	}

	return remainder(block, generatorPolynomials[numECBytes]), nil
}

// remainder performs the long division of the message polynomial,
// shifted up by the generator's degree, by the generator polynomial.
//
// The generator is given as its non-leading coefficients in alpha
// exponent form, so each inner step is one table lookup and one xor.
// A zero leading coefficient divides out trivially and is skipped.
func remainder(block []byte, generator []gfElement) []byte {
	codewords := make([]byte, len(block)+len(generator))
	copy(codewords, block)

	for i := 0; i < len(block); i++ {
		lead := codewords[i]
		if lead == 0 {
			continue
		}

		leadLog := int(gfLogTable[lead])

		for j, coeff := range generator {
			codewords[i+1+j] ^= byte(gfExpTable[(int(coeff)+leadLog)%255])
		}
	}

	return codewords[len(block):]
}
