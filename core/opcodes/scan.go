package opcodes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultPrefix marks the constructor calls that define opcodes in the
// emulator's instruction table.
const DefaultPrefix = "OpCode::new"

// ErrMalformed reports a row that matched the prefix but didn't carry
// enough comma-separated arguments to extract from.
var ErrMalformed = errors.New("malformed opcode row")

// Def is a single extracted opcode definition. Code is the first
// constructor argument exactly as written; Mnemonic is the second with
// surrounding spaces and quotes removed. Args holds every argument,
// untrimmed, for callers that want the full record.
type Def struct {
	Code     string
	Mnemonic string
	Args     []string
	Line     int
}

// Scanner finds opcode definition rows in a source listing.
type Scanner struct {
	// Prefix overrides DefaultPrefix when non-empty.
	Prefix string

	// OnMalformed, when set, is invoked for rows that match the prefix
	// but can't be extracted, and the scan continues. When nil the scan
	// aborts with an error wrapping ErrMalformed.
	OnMalformed func(line int, text string)
}

func (s *Scanner) prefix() string {
	if s.Prefix != "" {
		return s.Prefix
	}
	return DefaultPrefix
}

// Scan reads r line by line and invokes handler for every definition
// row. A row matches if, after trimming surrounding whitespace, it
// begins with the prefix; the prefix and the opening parenthesis are
// stripped and the remainder split on commas.
func (s *Scanner) Scan(r io.Reader, handler func(d Def)) error {
	prefix := s.prefix()

	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, prefix) {
			continue
		}

		// Strip the prefix and the "(" after it. A row may end right
		// at the prefix; treat it like any other short row.
		var rest string
		if len(line) > len(prefix)+1 {
			rest = line[len(prefix)+1:]
		}

		args := strings.Split(rest, ",")
		if len(args) < 2 {
			if s.OnMalformed != nil {
				s.OnMalformed(n, line)
				continue
			}
			return fmt.Errorf("line %d: %w: want at least 2 fields, got %d", n, ErrMalformed, len(args))
		}

		handler(Def{
			Code:     args[0],
			Mnemonic: CleanKey(args[1]),
			Args:     args,
			Line:     n,
		})
	}

	return scanner.Err()
}

// Record is a fully parsed definition row with the emulator's extra
// metadata fields.
type Record struct {
	Code     string
	Mnemonic string
	Len      uint8
	Cycles   uint8
	Mode     string
}

// CodeValue parses the code field as an integer literal for numeric
// ordering. Codes that aren't integer literals report ok=false.
func (r Record) CodeValue() (v uint64, ok bool) {
	v, err := strconv.ParseUint(strings.TrimSpace(r.Code), 0, 64)
	return v, err == nil
}

// ParseRecord extracts the full five-field record from a definition.
// The addressing mode field is cut at the closing parenthesis so
// trailing punctuation and comments don't leak in.
func ParseRecord(d Def) (Record, error) {
	if len(d.Args) < 5 {
		return Record{}, fmt.Errorf("line %d: %w: want 5 fields, got %d", d.Line, ErrMalformed, len(d.Args))
	}

	length, err := strconv.ParseUint(strings.TrimSpace(d.Args[2]), 0, 8)
	if err != nil {
		return Record{}, fmt.Errorf("line %d: %w: bad len field %q", d.Line, ErrMalformed, strings.TrimSpace(d.Args[2]))
	}

	cycles, err := strconv.ParseUint(strings.TrimSpace(d.Args[3]), 0, 8)
	if err != nil {
		return Record{}, fmt.Errorf("line %d: %w: bad cycles field %q", d.Line, ErrMalformed, strings.TrimSpace(d.Args[3]))
	}

	mode := d.Args[4]
	if cut := strings.IndexByte(mode, ')'); cut >= 0 {
		mode = mode[:cut]
	}
	mode = strings.TrimPrefix(strings.TrimSpace(mode), "AddressingMode::")

	return Record{
		Code:     strings.TrimSpace(d.Code),
		Mnemonic: d.Mnemonic,
		Len:      uint8(length),
		Cycles:   uint8(cycles),
		Mode:     mode,
	}, nil
}
