package qrcode

import (
	"errors"
	"testing"
)

func TestGetVersionBounds(t *testing.T) {
	for _, version := range []int{0, -1, 41} {
		if _, err := getVersion(version, Low); !errors.Is(err, ErrInvalidVersion) {
			t.Errorf("version %d: err = %v, want ErrInvalidVersion", version, err)
		}
	}

	for _, version := range []int{1, 40} {
		if _, err := getVersion(version, Highest); err != nil {
			t.Errorf("version %d: err = %v", version, err)
		}
	}
}

func TestSymbolSize(t *testing.T) {
	for _, tc := range []struct {
		version int
		want    int
	}{
		{1, 21},
		{2, 25},
		{10, 57},
		{40, 177},
	} {
		v, err := getVersion(tc.version, Low)
		if err != nil {
			t.Fatal(err)
		}

		if got := v.symbolSize(); got != tc.want {
			t.Errorf("version %d: symbolSize = %d, want %d", tc.version, got, tc.want)
		}
	}
}

func TestVersionOneCapacities(t *testing.T) {
	for _, tc := range []struct {
		level   RecoveryLevel
		data    int
		ec      int
	}{
		{Low, 19, 7},
		{Medium, 16, 10},
		{High, 13, 13},
		{Highest, 9, 17},
	} {
		v, err := getVersion(1, tc.level)
		if err != nil {
			t.Fatal(err)
		}

		if got := v.numDataCodewords(); got != tc.data {
			t.Errorf("level %d: data codewords = %d, want %d", tc.level, got, tc.data)
		}

		if v.numECBytesPerBlock != tc.ec {
			t.Errorf("level %d: ec codewords = %d, want %d", tc.level, v.numECBytesPerBlock, tc.ec)
		}

		if got := v.numTotalCodewords(); got != 26 {
			t.Errorf("level %d: total codewords = %d, want 26", tc.level, got)
		}
	}
}

// The total codeword count is a property of the version alone; the
// recovery level only shifts the data/ec split.
func TestTotalCodewordsLevelIndependent(t *testing.T) {
	for version := 1; version <= 40; version++ {
		base, err := getVersion(version, Low)
		if err != nil {
			t.Fatal(err)
		}

		for _, level := range []RecoveryLevel{Medium, High, Highest} {
			v, err := getVersion(version, level)
			if err != nil {
				t.Fatal(err)
			}

			if v.numTotalCodewords() != base.numTotalCodewords() {
				t.Errorf("version %d level %d: total = %d, want %d",
					version, level, v.numTotalCodewords(), base.numTotalCodewords())
			}
		}
	}
}

func TestDataCapacityMonotonic(t *testing.T) {
	for _, level := range []RecoveryLevel{Low, Medium, High, Highest} {
		prev := 0

		for version := 1; version <= 40; version++ {
			v, err := getVersion(version, level)
			if err != nil {
				t.Fatal(err)
			}

			if v.numDataCodewords() <= prev {
				t.Errorf("level %d: capacity not increasing at version %d", level, version)
			}

			prev = v.numDataCodewords()
		}
	}
}

func TestTerminatorAndPadding(t *testing.T) {
	v, err := getVersion(1, Medium)
	if err != nil {
		t.Fatal(err)
	}

	// 128 data bits available.
	for _, tc := range []struct {
		bits int
		want int
	}{
		{100, 4},
		{126, 2},
		{128, 0},
	} {
		if got := v.numTerminatorBitsRequired(tc.bits); got != tc.want {
			t.Errorf("terminator for %d bits = %d, want %d", tc.bits, got, tc.want)
		}
	}

	for _, tc := range []struct {
		bits int
		want int
	}{
		{74, 6},
		{120, 0},
		{128, 0},
	} {
		if got := v.numBitsToPadToCodeword(tc.bits); got != tc.want {
			t.Errorf("padding for %d bits = %d, want %d", tc.bits, got, tc.want)
		}
	}
}

func TestChooseQRCodeVersion(t *testing.T) {
	encoder, err := newDataEncoder(dataEncoderType1To9)
	if err != nil {
		t.Fatal(err)
	}

	v := chooseQRCodeVersion(Medium, encoder, 74)
	if v == nil || v.version != 1 {
		t.Fatalf("74 bits: chose %+v, want version 1", v)
	}

	v = chooseQRCodeVersion(Medium, encoder, 129)
	if v == nil || v.version != 2 {
		t.Fatalf("129 bits: chose %+v, want version 2", v)
	}

	if v := chooseQRCodeVersion(Highest, encoder, 1_000_000); v != nil {
		t.Errorf("oversized payload: chose version %d, want none", v.version)
	}
}

func TestRemainderBits(t *testing.T) {
	for _, tc := range []struct {
		version int
		want    int
	}{
		{1, 0},
		{2, 7},
		{6, 7},
		{7, 0},
		{14, 3},
		{21, 4},
		{28, 3},
		{35, 0},
		{40, 0},
	} {
		if got := remainderBits[tc.version-1]; got != tc.want {
			t.Errorf("version %d: remainder bits = %d, want %d", tc.version, got, tc.want)
		}
	}
}
