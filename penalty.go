package qrcode

// penaltyScore rates the visual balance of the symbol under the four
// standard rules. Lower is better; the encoder keeps the mask with the
// smallest score.
func (s *symbol) penaltyScore() int {
	return s.penalty1() + s.penalty2() + s.penalty3() + s.penalty4()
}

func (s *symbol) at(x, y int) bool {
	return s.modules[x+s.size*y].value
}

// penalty1 charges 3 points for every run of five same colored modules
// in a row or column, plus one point for each additional module in the
// run.
func (s *symbol) penalty1() int {
	penalty := 0

	for i := 0; i < s.size; i++ {
		rowRun, colRun := 1, 1

		for j := 1; j < s.size; j++ {
			if s.at(j, i) == s.at(j-1, i) {
				rowRun++
			} else {
				penalty += runPenalty(rowRun)
				rowRun = 1
			}

			if s.at(i, j) == s.at(i, j-1) {
				colRun++
			} else {
				penalty += runPenalty(colRun)
				colRun = 1
			}
		}

		penalty += runPenalty(rowRun) + runPenalty(colRun)
	}

	return penalty
}

func runPenalty(run int) int {
	if run < 5 {
		return 0
	}

	return 3 + run - 5
}

// penalty2 charges 3 points for every 2x2 square of same colored
// modules, counting overlapping squares.
func (s *symbol) penalty2() int {
	penalty := 0

	for y := 1; y < s.size; y++ {
		for x := 1; x < s.size; x++ {
			v := s.at(x, y)

			if s.at(x-1, y) == v && s.at(x, y-1) == v && s.at(x-1, y-1) == v {
				penalty += 3
			}
		}
	}

	return penalty
}

// penalty3 charges 40 points for every occurrence of the finder-like
// sequence dark-light-dark-dark-dark-light-dark flanked by four light
// modules, in either orientation.
func (s *symbol) penalty3() int {
	pattern := [7]bool{true, false, true, true, true, false, true}

	match := func(at func(int) bool, offset int) bool {
		for i, v := range pattern {
			if at(offset+i) != v {
				return false
			}
		}

		return true
	}

	clear4 := func(at func(int) bool, offset int) bool {
		if offset < 0 || offset+4 > s.size {
			return false
		}

		for i := 0; i < 4; i++ {
			if at(offset + i) {
				return false
			}
		}

		return true
	}

	penalty := 0

	for i := 0; i < s.size; i++ {
		row := func(j int) bool { return s.at(j, i) }
		col := func(j int) bool { return s.at(i, j) }

		for j := 0; j+7 <= s.size; j++ {
			for _, at := range []func(int) bool{row, col} {
				if match(at, j) && (clear4(at, j-4) || clear4(at, j+7)) {
					penalty += 40
				}
			}
		}
	}

	return penalty
}

// penalty4 charges 10 points for every 5% the dark module proportion
// deviates from 50%.
func (s *symbol) penalty4() int {
	dark := 0

	for _, m := range s.modules {
		if m.value {
			dark++
		}
	}

	total := len(s.modules)

	percent := 100 * dark / total
	deviation := percent - 50
	if deviation < 0 {
		deviation = -deviation
	}

	return 10 * (deviation / 5)
}
