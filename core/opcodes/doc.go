// Package opcodes extracts opcode definitions from emulator source listings.
package opcodes
