package qrcode

import "testing"

func TestSymbolPutGet(t *testing.T) {
	s := newSymbol(21)

	s.put(3, 4, true)

	m, ok := s.get(3, 4)
	if !ok || !m.value || m.functional || !m.set {
		t.Errorf("get(3,4) = %+v, %v", m, ok)
	}

	s.putFunctional(5, 5, false)

	if !s.functionalAt(5, 5) {
		t.Error("functionalAt(5,5) = false after putFunctional")
	}

	if s.functionalAt(3, 4) {
		t.Error("functionalAt(3,4) = true for a data module")
	}
}

func TestSymbolOutOfBoundsIsSilent(t *testing.T) {
	s := newSymbol(21)

	// Writes outside the grid must be dropped without effect.
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {21, 0}, {0, 21}, {-5, 30}} {
		s.put(c[0], c[1], true)
		s.putFunctional(c[0], c[1], true)

		if _, ok := s.get(c[0], c[1]); ok {
			t.Errorf("get(%d,%d) ok = true, want false", c[0], c[1])
		}

		if s.functionalAt(c[0], c[1]) {
			t.Errorf("functionalAt(%d,%d) = true, want false", c[0], c[1])
		}
	}

	if s.numEmptyModules() != 21*21 {
		t.Errorf("numEmptyModules = %d after out of bounds writes, want %d",
			s.numEmptyModules(), 21*21)
	}
}

func TestSymbolCounts(t *testing.T) {
	s := newSymbol(5)

	s.put(0, 0, true)
	s.putFunctional(1, 0, false)
	s.putFunctional(2, 0, true)

	if got := s.numEmptyModules(); got != 22 {
		t.Errorf("numEmptyModules = %d, want 22", got)
	}

	if got := s.numFunctionalModules(); got != 2 {
		t.Errorf("numFunctionalModules = %d, want 2", got)
	}
}

func TestSymbolBitmap(t *testing.T) {
	s := newSymbol(3)

	s.put(2, 0, true)
	s.put(0, 2, true)

	bitmap := s.bitmap()

	if len(bitmap) != 3 || len(bitmap[0]) != 3 {
		t.Fatalf("bitmap dimensions = %dx%d, want 3x3", len(bitmap), len(bitmap[0]))
	}

	// bitmap is indexed row first, so (x=2, y=0) lands at [0][2].
	if !bitmap[0][2] || !bitmap[2][0] {
		t.Error("set modules missing from bitmap")
	}

	if bitmap[0][0] || bitmap[2][2] {
		t.Error("unset modules dark in bitmap")
	}
}
