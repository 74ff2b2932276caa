package qrcode

// module is a single cell of the symbol grid. value is the dark/light
// state, functional marks cells reserved by the fixed patterns and
// metadata strips. The data walk never writes to a functional module.
type module struct {
	value      bool
	functional bool

	// set records that some phase has assigned the value.
	set bool
}

// symbol is a square grid of modules, indexed with x as the column and
// y as the row, both starting at the top left corner.
type symbol struct {
	size    int
	modules []module
}

func newSymbol(size int) *symbol {
	return &symbol{
		size:    size,
		modules: make([]module, size*size),
	}
}

func (s *symbol) index(x, y int) (int, bool) {
	if x < 0 || x >= s.size || y < 0 || y >= s.size {
		return 0, false
	}

	return x + s.size*y, true
}

func (s *symbol) get(x, y int) (module, bool) {
	i, ok := s.index(x, y)
	if !ok {
		return module{}, false
	}

	return s.modules[i], true
}

// functionalAt reports whether the module at (x, y) is reserved.
// Out of bounds coordinates are not reserved.
func (s *symbol) functionalAt(x, y int) bool {
	m, ok := s.get(x, y)

	return ok && m.functional
}

// put writes a data module. Writes outside the grid are ignored.
func (s *symbol) put(x, y int, value bool) {
	if i, ok := s.index(x, y); ok {
		s.modules[i] = module{value: value, set: true}
	}
}

// putFunctional writes a reserved module. Writes outside the grid are
// ignored, which the pattern painters rely on at the symbol edges.
func (s *symbol) putFunctional(x, y int, value bool) {
	if i, ok := s.index(x, y); ok {
		s.modules[i] = module{value: value, functional: true, set: true}
	}
}

// numEmptyModules counts modules no phase has written. A fully built
// symbol has none.
func (s *symbol) numEmptyModules() int {
	count := 0

	for _, m := range s.modules {
		if !m.set {
			count++
		}
	}

	return count
}

// numFunctionalModules counts the modules reserved by the functional
// patterns and metadata strips.
func (s *symbol) numFunctionalModules() int {
	count := 0

	for _, m := range s.modules {
		if m.functional {
			count++
		}
	}

	return count
}

// bitmap returns the module values as rows of booleans, true meaning
// dark.
func (s *symbol) bitmap() [][]bool {
	rows := make([][]bool, s.size)

	for y := 0; y < s.size; y++ {
		row := make([]bool, s.size)

		for x := 0; x < s.size; x++ {
			row[x] = s.modules[x+s.size*y].value
		}

		rows[y] = row
	}

	return rows
}
