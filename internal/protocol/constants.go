package protocol

// Frame layout constants.
const (
	// FrameSize is the fixed frame length in bytes.
	FrameSize = 9

	// DeviceID is the first byte of every frame.
	DeviceID = 0x19

	// ControlNormal is the control byte for all modes except SLEEP and power off.
	ControlNormal = 0x80

	// ControlSleep is the control byte for SLEEP mode.
	ControlSleep = 0x81

	// ControlPowerOff is the control byte for the power-off frame.
	ControlPowerOff = 0x00
)

// Temperature encoding: TempBase encodes TempMin, each degree adds one.
const (
	// TempMin is the lowest settable temperature, in Fahrenheit.
	TempMin = 62

	// TempMax is the highest settable temperature, in Fahrenheit.
	TempMax = 86

	// TempBase is the mode-byte value encoding TempMin.
	TempBase = 0x3E
)

// Fixed mode-byte markers for modes that carry no temperature.
const (
	// ModeByteAuto marks AUTO mode.
	ModeByteAuto = 0x48

	// ModeByteFixed marks FAN-only, DRY and power-off frames.
	ModeByteFixed = 0x4F
)

// Fan-byte values outside the per-speed tables.
const (
	// FanByteDry is the only fan byte DRY mode emits (low fan).
	FanByteDry = 0x12

	// FanBytePowerOff is the fan byte of the power-off frame.
	FanBytePowerOff = 0x13
)

// Per-mode fan-speed byte tables. The low nibble identifies the mode, the
// high nibble the speed (0x10 low, 0x20 med, 0x30 high).
var (
	fanBytesTemp  = map[FanSpeed]byte{FanLow: 0x11, FanMed: 0x21, FanHigh: 0x31}
	fanBytesAuto  = map[FanSpeed]byte{FanLow: 0x10, FanMed: 0x20, FanHigh: 0x30}
	fanBytesEco   = map[FanSpeed]byte{FanLow: 0x15, FanMed: 0x25, FanHigh: 0x35}
	fanBytesSleep = map[FanSpeed]byte{FanLow: 0x16, FanMed: 0x26, FanHigh: 0x36}
	fanBytesFan   = map[FanSpeed]byte{FanLow: 0x13, FanMed: 0x23, FanHigh: 0x33}
)
