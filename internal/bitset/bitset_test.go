package bitset

import (
	"bytes"
	"testing"
)

func TestAppendUint32(t *testing.T) {
	b := New()

	if err := b.AppendUint32(0x2c, 6); err != nil {
		t.Fatal(err)
	}

	if err := b.AppendUint32(0x3, 2); err != nil {
		t.Fatal(err)
	}

	if b.Len() != 8 {
		t.Fatalf("len = %d, want 8", b.Len())
	}

	// 101100 followed by 11.
	if got := b.Bytes(); !bytes.Equal(got, []byte{0xb3}) {
		t.Errorf("bytes = %x, want b3", got)
	}
}

func TestAppendUint32RejectsBadWidth(t *testing.T) {
	if err := New().AppendUint32(0, 33); err == nil {
		t.Error("expected error for width 33")
	}

	if err := New().AppendByte(0, 9); err == nil {
		t.Error("expected error for width 9")
	}
}

func TestBytesPadsFinalByte(t *testing.T) {
	b := New(true, false, true)

	if got := b.Bytes(); !bytes.Equal(got, []byte{0xa0}) {
		t.Errorf("bytes = %x, want a0", got)
	}
}

func TestAppend(t *testing.T) {
	b := New(true, true, true, false, true, true, false, false)
	other := New(false, false, false, true, false, false, false, true)

	if err := b.Append(other); err != nil {
		t.Fatal(err)
	}

	if got := b.Bytes(); !bytes.Equal(got, []byte{0xec, 0x11}) {
		t.Errorf("bytes = %x, want ec11", got)
	}
}

func TestAt(t *testing.T) {
	b := New()
	b.AppendNumBools(9, false)
	b.AppendBools(true)

	for i := 0; i < 9; i++ {
		bit, err := b.At(i)
		if err != nil {
			t.Fatal(err)
		}

		if bit {
			t.Errorf("bit %d set, want clear", i)
		}
	}

	bit, err := b.At(9)
	if err != nil {
		t.Fatal(err)
	}

	if !bit {
		t.Error("bit 9 clear, want set")
	}

	if _, err := b.At(10); err == nil {
		t.Error("expected error for out of range index")
	}
}
