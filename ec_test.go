package qrcode

import (
	"bytes"
	"errors"
	"testing"
)

func TestInterleaveEqualBlocks(t *testing.T) {
	got := interleave([][]byte{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	want := []byte{1, 4, 7, 2, 5, 8, 3, 6, 9}

	if !bytes.Equal(got, want) {
		t.Errorf("interleave = %v, want %v", got, want)
	}
}

func TestInterleaveUnevenBlocks(t *testing.T) {
	got := interleave([][]byte{{1, 2}, {3, 4, 5}, {6}})
	want := []byte{1, 3, 6, 2, 4, 5}

	if !bytes.Equal(got, want) {
		t.Errorf("interleave = %v, want %v", got, want)
	}
}

func TestInterleaveEmpty(t *testing.T) {
	if got := interleave(nil); len(got) != 0 {
		t.Errorf("interleave(nil) = %v, want empty", got)
	}
}

func TestSplitBlocks(t *testing.T) {
	v, err := getVersion(5, High)
	if err != nil {
		t.Fatal(err)
	}

	data := make([]byte, v.numDataCodewords())
	for i := range data {
		data[i] = byte(i)
	}

	blocks := splitBlocks(data, v.layout)

	if len(blocks) != v.numBlocks() {
		t.Fatalf("got %d blocks, want %d", len(blocks), v.numBlocks())
	}

	// Group 1 blocks come first, then the longer group 2 blocks, and
	// together they cover the data in order without gaps.
	offset := 0

	for i, block := range blocks {
		wantLen := v.layout.numCodewords1
		if i >= v.layout.numBlocks1 {
			wantLen = v.layout.numCodewords2
		}

		if len(block) != wantLen {
			t.Errorf("block %d length = %d, want %d", i, len(block), wantLen)
		}

		if !bytes.Equal(block, data[offset:offset+len(block)]) {
			t.Errorf("block %d does not match its data slice", i)
		}

		offset += len(block)
	}

	if offset != len(data) {
		t.Errorf("blocks cover %d codewords, want %d", offset, len(data))
	}
}

func TestErrorCorrectStreamLength(t *testing.T) {
	for version := 1; version <= 40; version++ {
		for _, level := range []RecoveryLevel{Low, Medium, High, Highest} {
			v, err := getVersion(version, level)
			if err != nil {
				t.Fatal(err)
			}

			stream, err := errorCorrect(make([]byte, v.numDataCodewords()), v)
			if err != nil {
				t.Fatalf("version %d level %d: %v", version, level, err)
			}

			if len(stream) != v.numTotalCodewords() {
				t.Errorf("version %d level %d: stream length = %d, want %d",
					version, level, len(stream), v.numTotalCodewords())
			}
		}
	}
}

func TestErrorCorrectRejectsWrongLength(t *testing.T) {
	v, err := getVersion(1, Medium)
	if err != nil {
		t.Fatal(err)
	}

	for _, n := range []int{0, v.numDataCodewords() - 1, v.numDataCodewords() + 1} {
		if _, err := errorCorrect(make([]byte, n), v); !errors.Is(err, ErrPayloadLengthMismatch) {
			t.Errorf("length %d: err = %v, want ErrPayloadLengthMismatch", n, err)
		}
	}
}

// The interleaved stream of a multi-block version must be reversible:
// de-interleaving it recovers the original blocks.
func TestErrorCorrectInterleaving(t *testing.T) {
	v, err := getVersion(5, High)
	if err != nil {
		t.Fatal(err)
	}

	data := make([]byte, v.numDataCodewords())
	for i := range data {
		data[i] = byte(i * 7)
	}

	stream, err := errorCorrect(data, v)
	if err != nil {
		t.Fatal(err)
	}

	blocks := splitBlocks(data, v.layout)

	// Walk the data section of the stream column by column and check
	// each codeword against its source block.
	next := 0

	maxLen := v.layout.numCodewords2
	if v.layout.numCodewords1 > maxLen {
		maxLen = v.layout.numCodewords1
	}

	for col := 0; col < maxLen; col++ {
		for _, block := range blocks {
			if col >= len(block) {
				continue
			}

			if stream[next] != block[col] {
				t.Fatalf("stream[%d] = %d, want %d", next, stream[next], block[col])
			}

			next++
		}
	}

	if next != v.numDataCodewords() {
		t.Errorf("data section is %d codewords, want %d", next, v.numDataCodewords())
	}
}
