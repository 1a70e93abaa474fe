package opcodes

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
)

// DefaultArmBody is the placeholder body appended to each match arm.
const DefaultArmBody = "=> {},"

// RenderArms writes one match-arm block per group: a comment line with
// the mnemonic, then the codes joined by " | " with the arm body
// appended, then a blank line.
func RenderArms(w io.Writer, groups []Group, body string) error {
	if body == "" {
		body = DefaultArmBody
	}

	for _, g := range groups {
		if _, err := fmt.Fprintf(w, "// %s\n%s %s\n\n", g.Key, strings.Join(g.Values, " | "), body); err != nil {
			return err
		}
	}
	return nil
}

// Sort orders for RenderTable.
const (
	SortByCode = "code"
	SortByName = "name"
)

// SortRecords orders records in place. SortByCode compares codes
// numerically when both parse as integer literals and lexically
// otherwise; SortByName orders by mnemonic, breaking ties by code.
func SortRecords(records []Record, by string) error {
	switch by {
	case SortByCode, "":
		sort.SliceStable(records, func(i, j int) bool {
			return codeLess(records[i], records[j])
		})
	case SortByName:
		sort.SliceStable(records, func(i, j int) bool {
			if records[i].Mnemonic != records[j].Mnemonic {
				return records[i].Mnemonic < records[j].Mnemonic
			}
			return codeLess(records[i], records[j])
		})
	default:
		return fmt.Errorf("unknown sort order %q", by)
	}
	return nil
}

func codeLess(a, b Record) bool {
	av, aok := a.CodeValue()
	bv, bok := b.CodeValue()
	if aok && bok {
		return av < bv
	}
	return a.Code < b.Code
}

// RenderTable writes an aligned listing of the full records.
func RenderTable(w io.Writer, records []Record) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME\tLEN\tCYCLES\tMODE")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", r.Code, r.Mnemonic, r.Len, r.Cycles, r.Mode)
	}
	return tw.Flush()
}
