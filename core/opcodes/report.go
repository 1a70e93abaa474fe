package opcodes

// Summary aggregates per-mnemonic counts across a scan.
type Summary struct {
	// Opcodes is the number of accepted definition rows.
	Opcodes int `json:"opcodes"`
	// Mnemonics is the number of distinct cleaned mnemonics.
	Mnemonics int `json:"mnemonics"`
	// Variants maps each mnemonic to its definition count.
	Variants map[string]int `json:"variants"`
}

func (s *Summary) Update(d Def) {
	s.Opcodes++

	if s.Variants == nil {
		s.Variants = make(map[string]int)
	}
	if _, ok := s.Variants[d.Mnemonic]; !ok {
		s.Mnemonics++
	}
	s.Variants[d.Mnemonic]++
}
