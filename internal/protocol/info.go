package protocol

// ModeInfo describes one operating mode for reference output.
type ModeInfo struct {
	Mode        Mode              `json:"mode"`
	ControlByte byte              `json:"control_byte"`
	FanBytes    map[FanSpeed]byte `json:"fan_bytes,omitempty"`
	FixedFan    byte              `json:"fixed_fan_byte,omitempty"`
	UsesTemp    bool              `json:"uses_temperature"`
	ModeByte    byte              `json:"mode_byte,omitempty"`
}

// Info is the protocol reference sheet: model, temperature range and the
// per-mode byte tables. It backs the CLI -info flag and the codes/info API.
type Info struct {
	Model     string     `json:"model"`
	OEM       string     `json:"oem"`
	TempMin   int        `json:"temp_min_f"`
	TempMax   int        `json:"temp_max_f"`
	TempBase  byte       `json:"temp_base_byte"`
	FrameSize int        `json:"frame_size"`
	DeviceID  byte       `json:"device_id"`
	Checksum  string     `json:"checksum_rule"`
	Modes     []ModeInfo `json:"modes"`
}

// Reference returns the protocol reference sheet. Mode order matches the
// catalog order.
func Reference() Info {
	order := []Mode{ModeTemp, ModeAuto, ModeEco, ModeSleep, ModeFan, ModeDry, ModePowerOff}
	modes := make([]ModeInfo, 0, len(order))
	for _, m := range order {
		r := modeRules[m]
		mi := ModeInfo{
			Mode:        m,
			ControlByte: r.control,
			UsesTemp:    r.needsTemp,
			ModeByte:    r.modeByte,
		}
		if r.fanBytes != nil {
			// copy so callers cannot mutate the rule table
			mi.FanBytes = make(map[FanSpeed]byte, len(r.fanBytes))
			for k, v := range r.fanBytes {
				mi.FanBytes[k] = v
			}
		} else {
			mi.FixedFan = r.fixedFan
		}
		modes = append(modes, mi)
	}
	return Info{
		Model:     "Soleus WS3-08E-201",
		OEM:       "Nantong Ningpu Electrical Appliance Co., Ltd.",
		TempMin:   TempMin,
		TempMax:   TempMax,
		TempBase:  TempBase,
		FrameSize: FrameSize,
		DeviceID:  DeviceID,
		Checksum:  "(control + fan + mode) & 0xFF",
		Modes:     modes,
	}
}
