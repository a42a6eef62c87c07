package protocol

import (
	"errors"
	"testing"
)

func TestNormalize_TemperatureOutOfRange(t *testing.T) {
	for _, mode := range []Mode{ModeTemp, ModeEco, ModeSleep} {
		for _, temp := range []int{61, 87, 0, -5} {
			for _, fan := range []FanSpeed{FanLow, FanMed, FanHigh} {
				_, err := Command{Mode: mode, Temperature: temp, FanSpeed: fan}.Normalize()
				if !errors.Is(err, ErrInvalidTemperature) {
					t.Errorf("mode=%s temp=%d fan=%s: err = %v, want ErrInvalidTemperature",
						mode, temp, fan, err)
				}
			}
		}
	}
}

func TestNormalize_FanSpeedRejected(t *testing.T) {
	for _, mode := range []Mode{ModeTemp, ModeAuto, ModeEco, ModeSleep, ModeFan} {
		cmd := Command{Mode: mode, Temperature: 72, FanSpeed: "TURBO"}
		if _, err := cmd.Normalize(); !errors.Is(err, ErrInvalidFanSpeed) {
			t.Errorf("mode=%s: err = %v, want ErrInvalidFanSpeed", mode, err)
		}
		cmd.FanSpeed = ""
		if _, err := cmd.Normalize(); !errors.Is(err, ErrInvalidFanSpeed) {
			t.Errorf("mode=%s empty fan: err = %v, want ErrInvalidFanSpeed", mode, err)
		}
	}
}

func TestNormalize_UnknownMode(t *testing.T) {
	_, err := Command{Mode: "HEAT"}.Normalize()
	if !errors.Is(err, ErrInvalidMode) {
		t.Errorf("err = %v, want ErrInvalidMode", err)
	}
}

func TestNormalize_CaseInsensitiveFan(t *testing.T) {
	n, err := Command{Mode: ModeTemp, Temperature: 72, FanSpeed: "high"}.Normalize()
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if n.FanSpeed != FanHigh {
		t.Errorf("FanSpeed = %q, want %q", n.FanSpeed, FanHigh)
	}
}

func TestNormalize_DryForcesLowFanAndClearsTemp(t *testing.T) {
	for _, fan := range []FanSpeed{"", FanHigh, "turbo"} {
		n, err := Command{Mode: ModeDry, Temperature: 99, FanSpeed: fan}.Normalize()
		if err != nil {
			t.Fatalf("fan=%q: Normalize() error = %v", fan, err)
		}
		if n.FanSpeed != FanLow {
			t.Errorf("fan=%q: FanSpeed = %q, want LOW", fan, n.FanSpeed)
		}
		if n.Temperature != 0 {
			t.Errorf("fan=%q: Temperature = %d, want 0", fan, n.Temperature)
		}
	}
}

func TestNormalize_PowerOffIgnoresEverything(t *testing.T) {
	n, err := Command{Mode: ModePowerOff, Temperature: -40, FanSpeed: "TURBO"}.Normalize()
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if n.Temperature != 0 || n.FanSpeed != "" {
		t.Errorf("got %+v, want cleared temperature and fan", n)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "temp", want: ModeTemp},
		{in: "TEMP", want: ModeTemp},
		{in: " eco ", want: ModeEco},
		{in: "off", want: ModePowerOff},
		{in: "power_off", want: ModePowerOff},
		{in: "heat", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidMode) {
				t.Errorf("ParseMode(%q) err = %v, want ErrInvalidMode", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseMode(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestParseFanSpeed(t *testing.T) {
	if got, err := ParseFanSpeed("med"); err != nil || got != FanMed {
		t.Errorf("ParseFanSpeed(med) = %q, %v", got, err)
	}
	if _, err := ParseFanSpeed("TURBO"); !errors.Is(err, ErrInvalidFanSpeed) {
		t.Errorf("ParseFanSpeed(TURBO) err = %v, want ErrInvalidFanSpeed", err)
	}
}

func TestEncode_FailsBeforeBuildingFrame(t *testing.T) {
	if _, err := Encode(Command{Mode: ModeTemp, Temperature: 61, FanSpeed: FanLow}); err == nil {
		t.Fatal("expected error for out-of-range temperature")
	}
}
