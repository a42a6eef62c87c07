package protocol

import (
	"fmt"
	"strings"
)

// Mode is the operating mode requested from the unit.
type Mode string

// Operating modes.
const (
	ModeTemp     Mode = "TEMP"      // cooling at a set temperature
	ModeAuto     Mode = "AUTO"      // automatic temperature control
	ModeEco      Mode = "ECO"       // energy-saving cooling
	ModeSleep    Mode = "SLEEP"     // sleep comfort cooling
	ModeFan      Mode = "FAN"       // fan only, no cooling
	ModeDry      Mode = "DRY"       // dehumidification, low fan only
	ModePowerOff Mode = "POWER_OFF" // turn the unit off
)

// FanSpeed is one of the three fan settings.
type FanSpeed string

// Fan speeds.
const (
	FanLow  FanSpeed = "LOW"
	FanMed  FanSpeed = "MED"
	FanHigh FanSpeed = "HIGH"
)

// Command is a single semantic remote-control action. Temperature is only
// meaningful for TEMP/ECO/SLEEP; FanSpeed is ignored by DRY (always low)
// and POWER_OFF.
type Command struct {
	Mode        Mode
	Temperature int // °F
	FanSpeed    FanSpeed
}

// modeRule declares, per mode, which fields the validator requires and which
// bytes the frame builder emits. Validation and frame building consult the
// same table so they cannot drift apart.
type modeRule struct {
	control   byte
	fanBytes  map[FanSpeed]byte // per-speed table; nil when fan input is ignored
	fixedFan  byte              // fan byte used when fanBytes is nil
	forcedFan FanSpeed          // normalized FanSpeed when fanBytes is nil
	needsTemp bool
	modeByte  byte // fixed mode byte when needsTemp is false
}

var modeRules = map[Mode]modeRule{
	ModeTemp:     {control: ControlNormal, fanBytes: fanBytesTemp, needsTemp: true},
	ModeAuto:     {control: ControlNormal, fanBytes: fanBytesAuto, modeByte: ModeByteAuto},
	ModeEco:      {control: ControlNormal, fanBytes: fanBytesEco, needsTemp: true},
	ModeSleep:    {control: ControlSleep, fanBytes: fanBytesSleep, needsTemp: true},
	ModeFan:      {control: ControlNormal, fanBytes: fanBytesFan, modeByte: ModeByteFixed},
	ModeDry:      {control: ControlNormal, fixedFan: FanByteDry, forcedFan: FanLow, modeByte: ModeByteFixed},
	ModePowerOff: {control: ControlPowerOff, fixedFan: FanBytePowerOff, modeByte: ModeByteFixed},
}

// ParseMode converts mode text to a Mode, case-insensitively. "OFF" is
// accepted as an alias for POWER_OFF.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToUpper(strings.TrimSpace(s)))
	if m == "OFF" {
		m = ModePowerOff
	}
	if _, ok := modeRules[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return m, nil
}

// ParseFanSpeed converts fan-speed text to a FanSpeed, case-insensitively.
func ParseFanSpeed(s string) (FanSpeed, error) {
	f := FanSpeed(strings.ToUpper(strings.TrimSpace(s)))
	switch f {
	case FanLow, FanMed, FanHigh:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (allowed: LOW, MED, HIGH)", ErrInvalidFanSpeed, s)
}

// Normalize range-checks and canonicalizes the command against the mode rule
// table. It returns a fully-specified, mode-consistent command: fields a mode
// ignores are cleared, DRY always comes back with low fan. On failure no
// frame bytes have been computed.
func (c Command) Normalize() (Command, error) {
	rule, ok := modeRules[c.Mode]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrInvalidMode, string(c.Mode))
	}

	if rule.needsTemp {
		if c.Temperature < TempMin || c.Temperature > TempMax {
			return Command{}, fmt.Errorf("%w: %d°F (allowed %d-%d)",
				ErrInvalidTemperature, c.Temperature, TempMin, TempMax)
		}
	} else {
		c.Temperature = 0
	}

	if rule.fanBytes != nil {
		fan := FanSpeed(strings.ToUpper(strings.TrimSpace(string(c.FanSpeed))))
		if _, ok := rule.fanBytes[fan]; !ok {
			return Command{}, fmt.Errorf("%w: %q for mode %s (allowed: LOW, MED, HIGH)",
				ErrInvalidFanSpeed, string(c.FanSpeed), c.Mode)
		}
		c.FanSpeed = fan
	} else {
		c.FanSpeed = rule.forcedFan
	}

	return c, nil
}
