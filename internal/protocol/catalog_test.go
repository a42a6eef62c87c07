package protocol

import (
	"strings"
	"testing"
)

func TestEnumerateAll_CountOrderAndEndpoints(t *testing.T) {
	entries := EnumerateAll()

	if len(entries) != CatalogSize {
		t.Fatalf("len = %d, want %d", len(entries), CatalogSize)
	}
	if CatalogSize != 233 {
		t.Fatalf("CatalogSize = %d, want 233", CatalogSize)
	}

	first := entries[0]
	if first.ButtonName != "AC,62,LOW" {
		t.Errorf("first label = %q, want AC,62,LOW", first.ButtonName)
	}
	if want := Serialize(BuildFrame(Command{Mode: ModeTemp, Temperature: TempMin, FanSpeed: FanLow})); first.ProntoData != want {
		t.Errorf("first entry pronto mismatch")
	}

	last := entries[len(entries)-1]
	if last.ButtonName != "POWER OFF" {
		t.Errorf("last label = %q, want POWER OFF", last.ButtonName)
	}
	if want := Serialize(BuildFrame(Command{Mode: ModePowerOff})); last.ProntoData != want {
		t.Errorf("POWER OFF entry pronto mismatch")
	}

	// One TEMP block (75), then AUTO (3), ECO (75), SLEEP (75), FAN (3), DRY, OFF.
	if entries[75].ButtonName != "AUTO,LOW" {
		t.Errorf("entry 75 = %q, want AUTO,LOW", entries[75].ButtonName)
	}
	if entries[78].ButtonName != "ECO,62,LOW" {
		t.Errorf("entry 78 = %q, want ECO,62,LOW", entries[78].ButtonName)
	}
	if entries[231].ButtonName != "DRY,LOW" {
		t.Errorf("entry 231 = %q, want DRY,LOW", entries[231].ButtonName)
	}
}

func TestEnumerateAll_Restartable(t *testing.T) {
	a := EnumerateAll()
	b := EnumerateAll()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("entry %d differs between runs", i)
		}
	}
}

func TestEnumerateAll_EveryCodeWellFormed(t *testing.T) {
	seen := make(map[string]string, CatalogSize)
	for _, e := range EnumerateAll() {
		if n := len(strings.Split(e.ProntoData, " ")); n != TokenCount {
			t.Fatalf("%s: token count = %d", e.ButtonName, n)
		}
		if prev, dup := seen[e.ProntoData]; dup {
			t.Fatalf("duplicate pronto for %s and %s", prev, e.ButtonName)
		}
		seen[e.ProntoData] = e.ButtonName
	}
}
