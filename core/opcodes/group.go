package opcodes

import "strings"

// CleanKey strips the surrounding spaces and double quotes from a
// grouping key. Cleaning is idempotent, so keys differing only in
// quoting collapse to the same group.
func CleanKey(key string) string {
	return strings.Trim(key, ` "`)
}

// Group is one mnemonic and the codes seen for it, in encounter order.
type Group struct {
	Key    string
	Values []string
}

// GroupSet accumulates values by cleaned key. Key order follows first
// insertion, matching the order groups appear in the source file.
type GroupSet struct {
	index  map[string]int
	groups []Group
}

func NewGroupSet() *GroupSet {
	return &GroupSet{index: make(map[string]int)}
}

// Add appends value to the group for the cleaned key, creating the
// group on first encounter.
func (gs *GroupSet) Add(key, value string) {
	key = CleanKey(key)
	i, ok := gs.index[key]
	if !ok {
		i = len(gs.groups)
		gs.index[key] = i
		gs.groups = append(gs.groups, Group{Key: key})
	}
	gs.groups[i].Values = append(gs.groups[i].Values, value)
}

// Groups returns the accumulated groups in key insertion order.
func (gs *GroupSet) Groups() []Group {
	return gs.groups
}

// Len reports the number of distinct keys.
func (gs *GroupSet) Len() int {
	return len(gs.groups)
}
