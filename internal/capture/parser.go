package capture

import (
	"regexp"
	"strings"
)

// Log-stream markers emitted by the device's IR receiver when it dumps a
// received Pronto code. A dump is either a single log line or a start line
// followed by continuation lines ending at the footer token.
const (
	dumpStartMarker = "Received Pronto: data="
	dumpLineTag     = "[I][remote.pronto:233]:"
	dumpAnyTag      = "[I][remote.pronto:"
	footerToken     = "0181"
)

var ansiEscape = regexp.MustCompile(`\x1b(?:[@-Z\\-_]|\[[0-?]*[ -/]*[@-~])`)

// dumpParser reassembles Pronto dumps from individual log lines. A single
// parser tracks one connection's stream; it is not safe for concurrent use.
type dumpParser struct {
	collecting bool
	lines      []string
}

// Feed consumes one log line and returns a complete Pronto code when the
// line finishes a dump.
func (p *dumpParser) Feed(line string) (string, bool) {
	line = ansiEscape.ReplaceAllString(line, "")

	if strings.Contains(line, dumpStartMarker) {
		// A new dump begins; anything half-collected is discarded.
		p.collecting = true
		p.lines = p.lines[:0]
		return "", false
	}

	if idx := strings.Index(line, dumpLineTag); idx >= 0 {
		payload := strings.TrimSpace(line[idx+len(dumpLineTag):])

		if p.collecting {
			p.lines = append(p.lines, payload)
			// The footer token, or a short trailing line, ends the dump.
			if strings.Contains(payload, footerToken) ||
				(len(strings.Fields(payload)) < 5 && len(p.lines) > 1) {
				return p.finish()
			}
			return "", false
		}

		// Single-line dump: a full code on one log line.
		if strings.HasPrefix(payload, "0000") && strings.Contains(payload, footerToken) {
			return fixTokenSpacing(payload), true
		}
		return "", false
	}

	// Any foreign line ends an in-progress collection.
	if p.collecting && !strings.Contains(line, dumpAnyTag) {
		if len(p.lines) > 0 {
			return p.finish()
		}
		p.collecting = false
	}
	return "", false
}

func (p *dumpParser) finish() (string, bool) {
	code := fixTokenSpacing(strings.Join(p.lines, " "))
	p.collecting = false
	p.lines = p.lines[:0]
	return code, code != ""
}

// fixTokenSpacing repairs dumps whose 4-hex-digit tokens ran together by
// splitting any longer hex run into 4-character groups.
func fixTokenSpacing(s string) string {
	fields := strings.Fields(s)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 4 && len(f)%4 == 0 && isHex(f) {
			for i := 0; i < len(f); i += 4 {
				out = append(out, f[i:i+4])
			}
			continue
		}
		out = append(out, f)
	}
	return strings.Join(out, " ")
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
