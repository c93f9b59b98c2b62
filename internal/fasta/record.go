// internal/fasta/record.go
package fasta

import "strings"

// Record is one parsed FASTA entry. Seq owns its backing array: the reader
// never hands out a slice that aliases its scratch buffer.
type Record struct {
	Header string
	Seq    []byte
}

// Len returns the payload length in bytes.
func (r Record) Len() int { return len(r.Seq) }

// Size is the number of bytes the record holds (header + payload).
func (r Record) Size() int { return len(r.Header) + len(r.Seq) }

// String renders the record as FASTA text with the payload on a single line.
func (r Record) String() string {
	var b strings.Builder
	b.Grow(len(r.Header) + len(r.Seq) + 3)
	b.WriteByte(Marker)
	b.WriteString(r.Header)
	b.WriteByte('\n')
	if len(r.Seq) > 0 {
		b.Write(r.Seq)
		b.WriteByte('\n')
	}
	return b.String()
}
