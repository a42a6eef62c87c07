package protocol

import "strings"

// Pronto raw-code structure: a fixed preamble, two burst-pair tokens per
// frame bit, and a fixed trailer. Timings are in carrier cycles at 38 kHz
// (Pronto frequency word 006D).
const (
	// TokenCount is the total number of 4-hex-digit tokens in one code:
	// 4 header + 2 carrier + 72*2 data + 2 footer.
	TokenCount = 152

	bitMark   = "0013" // short pulse opening every burst pair
	zeroSpace = "0018" // short space after a 0 bit
	oneSpace  = "0043" // long space after a 1 bit
)

var (
	prontoHeader  = []string{"0000", "006D", "004A", "0000"}
	prontoCarrier = []string{"0153", "00AE"}
	prontoFooter  = []string{"0014", "0181"}
)

// Serialize expands a frame into its Pronto raw code: 152 space-joined
// uppercase tokens. Bits are emitted MSB first, byte 0 first, so frame byte
// order directly determines token order.
func Serialize(f Frame) string {
	var b strings.Builder
	b.Grow(TokenCount*5 - 1)

	for _, tok := range prontoHeader {
		b.WriteString(tok)
		b.WriteByte(' ')
	}
	for _, tok := range prontoCarrier {
		b.WriteString(tok)
		b.WriteByte(' ')
	}

	for _, by := range f {
		for bit := 7; bit >= 0; bit-- {
			b.WriteString(bitMark)
			b.WriteByte(' ')
			if by&(1<<bit) != 0 {
				b.WriteString(oneSpace)
			} else {
				b.WriteString(zeroSpace)
			}
			b.WriteByte(' ')
		}
	}

	b.WriteString(prontoFooter[0])
	b.WriteByte(' ')
	b.WriteString(prontoFooter[1])
	return b.String()
}
