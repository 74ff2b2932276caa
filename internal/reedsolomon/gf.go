package reedsolomon

// gfElement is an element of GF(256), the Galois Field generated by the
// primitive polynomial x^8 + x^4 + x^3 + x^2 + 1 with 2 as the
// primitive element.
type gfElement uint8

const (
	gfZero = gfElement(0)
	gfOne  = gfElement(1)
)

// gfAdd returns a + b. Addition in GF(256) is the bitwise xor.
func gfAdd(a, b gfElement) gfElement {
	return a ^ b
}

// gfMultiply returns a * b, computed in the log domain.
func gfMultiply(a, b gfElement) gfElement {
	if a == gfZero || b == gfZero {
		return gfZero
	}

	return gfExpTable[(int(gfLogTable[a])+int(gfLogTable[b]))%255]
}
