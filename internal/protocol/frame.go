package protocol

import (
	"fmt"
	"strings"
)

// Frame is one complete 9-byte control frame:
//
//	[DEVICE_ID][CONTROL][FAN][0x00][MODE][0x00][0x00][0x00][CHECKSUM]
type Frame [FrameSize]byte

// Checksum returns the frame's checksum byte.
func (f Frame) Checksum() byte { return f[8] }

// String renders the frame as space-separated uppercase hex bytes,
// e.g. "19 80 11 00 3E 00 00 00 CF".
func (f Frame) String() string {
	parts := make([]string, FrameSize)
	for i, b := range f {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}

// tempByte encodes a Fahrenheit temperature into the mode byte.
// The caller guarantees t is within [TempMin, TempMax].
func tempByte(t int) byte {
	return TempBase + byte(t-TempMin)
}

// checksum is the single checksum rule of the protocol. It covers every
// mode, including power off (0x00 + 0x13 + 0x4F = 0x62).
func checksum(control, fan, mode byte) byte {
	return control + fan + mode
}

// BuildFrame derives the control frame for a normalized command. It consults
// the same mode rule table as Command.Normalize and cannot fail; callers must
// normalize first.
func BuildFrame(c Command) Frame {
	rule := modeRules[c.Mode]

	fan := rule.fixedFan
	if rule.fanBytes != nil {
		fan = rule.fanBytes[c.FanSpeed]
	}

	mode := rule.modeByte
	if rule.needsTemp {
		mode = tempByte(c.Temperature)
	}

	var f Frame
	f[0] = DeviceID
	f[1] = rule.control
	f[2] = fan
	f[4] = mode
	f[8] = checksum(rule.control, fan, mode)
	return f
}

// Encode validates the command and returns its Pronto raw code. This is the
// whole pipeline: Normalize -> BuildFrame -> Serialize.
func Encode(c Command) (string, error) {
	n, err := c.Normalize()
	if err != nil {
		return "", err
	}
	return Serialize(BuildFrame(n)), nil
}
