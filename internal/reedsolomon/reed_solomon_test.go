package reedsolomon

import (
	"bytes"
	"testing"
)

func TestEncodeSimpleBlock(t *testing.T) {
	ec, err := Encode([]byte{1, 2, 3}, 3)
	if err != nil {
		t.Fatal(err)
	}

	expected := []byte{92, 236, 176}
	if !bytes.Equal(ec, expected) {
		t.Errorf("got %v, want %v", ec, expected)
	}
}

func TestEncodeVersionOneBlock(t *testing.T) {
	block := []byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17, 236}

	ec, err := Encode(block, 13)
	if err != nil {
		t.Fatal(err)
	}

	expected := []byte{168, 72, 22, 82, 217, 54, 156, 0, 46, 15, 180, 122, 16}
	if !bytes.Equal(ec, expected) {
		t.Errorf("got %v, want %v", ec, expected)
	}
}

func TestEncodeZeroBlock(t *testing.T) {
	ec, err := Encode(make([]byte, 9), 17)
	if err != nil {
		t.Fatal(err)
	}

	if len(ec) != 17 {
		t.Fatalf("got %d error correction codewords, want 17", len(ec))
	}

	for i, b := range ec {
		if b != 0 {
			t.Errorf("ec[%d] = %d, want 0", i, b)
		}
	}
}

func TestEncodeRejectsUnknownDegree(t *testing.T) {
	if _, err := Encode([]byte{1}, 0); err == nil {
		t.Error("expected error for degree 0")
	}

	if _, err := Encode([]byte{1}, len(generatorPolynomials)); err == nil {
		t.Error("expected error for degree beyond table")
	}
}

// The concatenation of a block and its error correction codewords is a
// multiple of the generator polynomial, so dividing it again leaves a
// zero remainder.
func TestEncodedBlockIsDivisibleByGenerator(t *testing.T) {
	blocks := [][]byte{
		{1, 2, 3},
		{32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17, 236},
		{0, 0, 0, 255, 254, 253, 1, 2, 3, 4},
	}

	for _, block := range blocks {
		for _, degree := range []int{7, 13, 22, 30, 68} {
			ec, err := Encode(block, degree)
			if err != nil {
				t.Fatal(err)
			}

			message := append(append([]byte{}, block...), ec...)

			for i, b := range remainder(message, generatorPolynomials[degree]) {
				if b != 0 {
					t.Errorf("degree %d: remainder[%d] = %d, want 0", degree, i, b)
				}
			}
		}
	}
}

func TestExpAndLogTablesAreInverses(t *testing.T) {
	for v := 1; v < 256; v++ {
		if got := gfExpTable[gfLogTable[v]]; got != gfElement(v) {
			t.Errorf("exp(log(%d)) = %d", v, got)
		}
	}

	for i := 0; i < 255; i++ {
		if got := gfLogTable[gfExpTable[i]]; got != gfElement(i) {
			t.Errorf("log(exp(%d)) = %d", i, got)
		}
	}

	// The exponent table wraps so that indexes may be reduced mod 255.
	if gfExpTable[255] != gfExpTable[0] {
		t.Error("gfExpTable does not wrap at 255")
	}
}

func TestGFMultiply(t *testing.T) {
	if got := gfMultiply(0, 37); got != gfZero {
		t.Errorf("0*37 = %d", got)
	}

	if got := gfMultiply(37, 0); got != gfZero {
		t.Errorf("37*0 = %d", got)
	}

	for a := 1; a < 256; a++ {
		if got := gfMultiply(gfElement(a), gfOne); got != gfElement(a) {
			t.Errorf("%d*1 = %d", a, got)
		}
	}

	// 2 generates the field, so successive doublings trace the
	// exponent table.
	v := gfOne
	for i := 0; i < 255; i++ {
		if v != gfExpTable[i] {
			t.Fatalf("2^%d = %d, want %d", i, v, gfExpTable[i])
		}

		v = gfMultiply(v, 2)
	}
}

// Every generator polynomial in the table must equal the product
// (x-2^0)(x-2^1)...(x-2^(k-1)), recomputed here term by term.
func TestGeneratorPolynomialTable(t *testing.T) {
	// product holds ascending coefficients, starting as the constant 1.
	product := []gfElement{gfOne}

	for degree := 1; degree < len(generatorPolynomials); degree++ {
		root := gfExpTable[degree-1]

		next := make([]gfElement, len(product)+1)
		for i, c := range product {
			next[i+1] = gfAdd(next[i+1], c)
			next[i] = gfAdd(next[i], gfMultiply(c, root))
		}
		product = next

		table := generatorPolynomials[degree]
		if len(table) != degree {
			t.Fatalf("degree %d: table row has %d terms", degree, len(table))
		}

		// The table stores alpha exponents of the non-leading
		// coefficients from x^(degree-1) down to x^0.
		for j, alpha := range table {
			want := product[degree-1-j]
			if got := gfExpTable[alpha]; got != want {
				t.Errorf("degree %d term %d: 2^%d = %d, want %d", degree, j, alpha, got, want)
			}
		}
	}
}
