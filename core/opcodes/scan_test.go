package opcodes

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanner(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []Def
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "no matching lines",
			input: "use crate::cpu::AddressingMode;\n\nlazy_static! {\n",
			want:  nil,
		},
		{
			name:  "single row",
			input: `OpCode::new(1, "LOAD", x)`,
			want: []Def{
				{Code: "1", Mnemonic: "LOAD", Line: 1},
			},
		},
		{
			name:  "indented row matches",
			input: "        OpCode::new(0x00, \"BRK\", 1, 7, AddressingMode::NoneAddressing), // BRK\n",
			want: []Def{
				{Code: "0x00", Mnemonic: "BRK", Line: 1},
			},
		},
		{
			name:  "rows interleaved with other code",
			input: "pub struct OpCode {}\nOpCode::new(1, \"LOAD\", x)\n// comment\nOpCode::new(2, \"LOAD\", y)\n",
			want: []Def{
				{Code: "1", Mnemonic: "LOAD", Line: 2},
				{Code: "2", Mnemonic: "LOAD", Line: 4},
			},
		},
		{
			name:  "unquoted mnemonic",
			input: "OpCode::new(3, STORE, z)\n",
			want: []Def{
				{Code: "3", Mnemonic: "STORE", Line: 1},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got []Def
			s := &Scanner{}
			err := s.Scan(strings.NewReader(tc.input), func(d Def) {
				d.Args = nil // encounter metadata is what's under test
				got = append(got, d)
			})

			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestScannerMalformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"no comma after prefix", "OpCode::new(1)\n"},
		{"bare prefix", "OpCode::new\n"},
		{"prefix with empty args", "OpCode::new(\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &Scanner{}
			err := s.Scan(strings.NewReader(tc.input), func(d Def) {
				t.Errorf("unexpected def: %+v", d)
			})

			assert.True(t, errors.Is(err, ErrMalformed), "want ErrMalformed, got %v", err)
		})
	}
}

func TestScannerSkipMalformed(t *testing.T) {
	input := "OpCode::new(1, \"LOAD\", x)\nOpCode::new(oops)\nOpCode::new(2, \"LOAD\", y)\n"

	var got []string
	var skipped []int
	s := &Scanner{
		OnMalformed: func(line int, text string) {
			skipped = append(skipped, line)
		},
	}
	err := s.Scan(strings.NewReader(input), func(d Def) {
		got = append(got, d.Code)
	})

	assert.Nil(t, err)
	assert.Equal(t, []string{"1", "2"}, got)
	assert.Equal(t, []int{2}, skipped)
}

func TestScannerPrefixOverride(t *testing.T) {
	s := &Scanner{Prefix: "Instr::define"}

	var got []Def
	err := s.Scan(strings.NewReader("Instr::define(0x10, \"JMP\", 3)\nOpCode::new(1, \"LOAD\", x)\n"), func(d Def) {
		got = append(got, d)
	})

	assert.Nil(t, err)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "0x10", got[0].Code)
		assert.Equal(t, "JMP", got[0].Mnemonic)
	}
}

func TestParseRecord(t *testing.T) {
	t.Run("full row", func(t *testing.T) {
		var records []Record
		s := &Scanner{}
		err := s.Scan(strings.NewReader("        OpCode::new(0x75, \"ADC\", 2, 4, AddressingMode::ZeroPage_X),\n"), func(d Def) {
			r, err := ParseRecord(d)
			assert.Nil(t, err)
			records = append(records, r)
		})

		assert.Nil(t, err)
		assert.Equal(t, []Record{
			{Code: "0x75", Mnemonic: "ADC", Len: 2, Cycles: 4, Mode: "ZeroPage_X"},
		}, records)
	})

	t.Run("trailing comment ignored", func(t *testing.T) {
		var records []Record
		s := &Scanner{}
		err := s.Scan(strings.NewReader("OpCode::new(0x00, \"BRK\", 1, 7, AddressingMode::NoneAddressing), // BRK - Force Interrupt\n"), func(d Def) {
			r, err := ParseRecord(d)
			assert.Nil(t, err)
			records = append(records, r)
		})

		assert.Nil(t, err)
		if assert.Len(t, records, 1) {
			assert.Equal(t, "NoneAddressing", records[0].Mode)
		}
	})

	t.Run("too few fields", func(t *testing.T) {
		_, err := ParseRecord(Def{Code: "1", Mnemonic: "LOAD", Args: []string{"1", ` "LOAD"`, " x)"}, Line: 7})
		assert.True(t, errors.Is(err, ErrMalformed))
		assert.Contains(t, err.Error(), "line 7")
	})

	t.Run("bad cycles field", func(t *testing.T) {
		_, err := ParseRecord(Def{Args: []string{"1", ` "LOAD"`, " 2", " fast", " AddressingMode::Immediate)"}})
		assert.True(t, errors.Is(err, ErrMalformed))
	})
}

func TestCodeValue(t *testing.T) {
	cases := []struct {
		code string
		want uint64
		ok   bool
	}{
		{"0x00", 0, true},
		{"0xEA", 0xEA, true},
		{"7", 7, true},
		{"CODE_BRK", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			v, ok := Record{Code: tc.code}.CodeValue()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, v)
		})
	}
}
