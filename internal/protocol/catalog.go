package protocol

import "fmt"

// CatalogEntry pairs a human-facing button label with its Pronto code.
// The JSON field names match the capture log format, so exported catalogs
// and captured buttons are interchangeable.
type CatalogEntry struct {
	ButtonName string `json:"button_name"`
	ProntoData string `json:"pronto_data"`
}

// CatalogSize is the number of entries EnumerateAll produces:
// 3 temperature modes x 25 temperatures x 3 speeds, AUTO x3, FAN x3,
// DRY and POWER_OFF.
const CatalogSize = 3*(TempMax-TempMin+1)*3 + 3 + 3 + 1 + 1

// EnumerateAll generates the complete button catalog in a fixed order:
// TEMP over every (temperature, speed) pair, then AUTO, ECO, SLEEP, FAN,
// DRY, POWER_OFF. Pure iteration over the tables; calling it twice yields
// identical slices.
func EnumerateAll() []CatalogEntry {
	speeds := []FanSpeed{FanLow, FanMed, FanHigh}
	out := make([]CatalogEntry, 0, CatalogSize)

	add := func(label string, c Command) {
		out = append(out, CatalogEntry{
			ButtonName: label,
			ProntoData: Serialize(BuildFrame(c)),
		})
	}

	for t := TempMin; t <= TempMax; t++ {
		for _, s := range speeds {
			add(fmt.Sprintf("AC,%d,%s", t, s), Command{Mode: ModeTemp, Temperature: t, FanSpeed: s})
		}
	}
	for _, s := range speeds {
		add(fmt.Sprintf("AUTO,%s", s), Command{Mode: ModeAuto, FanSpeed: s})
	}
	for t := TempMin; t <= TempMax; t++ {
		for _, s := range speeds {
			add(fmt.Sprintf("ECO,%d,%s", t, s), Command{Mode: ModeEco, Temperature: t, FanSpeed: s})
		}
	}
	for t := TempMin; t <= TempMax; t++ {
		for _, s := range speeds {
			add(fmt.Sprintf("SLEEP,%d,%s", t, s), Command{Mode: ModeSleep, Temperature: t, FanSpeed: s})
		}
	}
	for _, s := range speeds {
		add(fmt.Sprintf("FAN,%s", s), Command{Mode: ModeFan, FanSpeed: s})
	}
	add("DRY,LOW", Command{Mode: ModeDry, FanSpeed: FanLow})
	add("POWER OFF", Command{Mode: ModePowerOff})

	return out
}
