// Package protocol implements the IR remote-control protocol of the Soleus
// WS3-08E-201 saddle window air conditioner (OEM: Nantong Ningpu), shared by
// many rebranded units from the same OEM.
//
// # Protocol Overview
//
// Every button press is a fixed 9-byte frame:
//
//	[DEVICE_ID][CONTROL][FAN][0x00][MODE][0x00][0x00][0x00][CHECKSUM]
//
// Where:
//   - DEVICE_ID is always 0x19
//   - CONTROL is 0x80 (normal), 0x81 (sleep) or 0x00 (power off)
//   - FAN selects fan speed, with a distinct byte table per operating mode
//   - MODE carries either the encoded target temperature or a fixed
//     mode marker (AUTO=0x48, FAN/DRY/OFF=0x4F)
//   - CHECKSUM = (CONTROL + FAN + MODE) & 0xFF, for every mode
//
// Temperatures are Fahrenheit in [62,86], encoded as 0x3E + (temp - 62).
//
// # Usage
//
// Build a Command, normalize it, and serialize:
//
//	cmd := protocol.Command{Mode: protocol.ModeTemp, Temperature: 72, FanSpeed: protocol.FanLow}
//	pronto, err := protocol.Encode(cmd)
//
// The output is a Pronto raw code: 152 space-separated 4-hex-digit tokens
// (header, carrier pair, 144 burst-pair tokens for the 72 frame bits, footer)
// that an IR transmitter peripheral accepts verbatim.
//
// The package is pure and stateless; every function is safe for concurrent
// use.
package protocol
