// Package modulation_test validates format selection and slot sizing
// against the fixed table.
package modulation_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/spectra/modulation"
)

func TestSelect(t *testing.T) {
	cases := []struct {
		distanceKm float64
		want       string
	}{
		{100, "16-QAM"},
		{500, "16-QAM"},
		{501, "8-QAM"},
		{1000, "8-QAM"},
		{2000, "QPSK"},
		{3000, "BPSK"},
		{4000, "BPSK"},
		// Beyond every reach: largest-reach entry, never a failure.
		{5000, "BPSK"},
	}
	for _, c := range cases {
		if got := modulation.Select(c.distanceKm); got.Name != c.want {
			t.Errorf("Select(%g) = %s; want %s", c.distanceKm, got.Name, c.want)
		}
	}
}

func TestRequiredSlots(t *testing.T) {
	cases := []struct {
		bandwidth float64
		format    string
		want      int
	}{
		// 100 / (1 × 12.5) = 8, +1 guard.
		{100, "BPSK", 9},
		// 100 / (4 × 12.5) = 2, +1 guard.
		{100, "16-QAM", 3},
		// 400 / (2 × 12.5) = 16, +1 guard.
		{400, "QPSK", 17},
		// Sub-slot demand still reserves the guard band: floor(1/50)=0, +1.
		{1, "16-QAM", 1},
	}
	for _, c := range cases {
		got, err := modulation.RequiredSlots(c.bandwidth, c.format)
		if err != nil {
			t.Fatalf("RequiredSlots(%g, %s): %v", c.bandwidth, c.format, err)
		}
		if got != c.want {
			t.Errorf("RequiredSlots(%g, %s) = %d; want %d", c.bandwidth, c.format, got, c.want)
		}
	}
}

func TestRequiredSlots_UnknownFormat(t *testing.T) {
	_, err := modulation.RequiredSlots(100, "64-QAM")
	if !errors.Is(err, modulation.ErrUnknownFormat) {
		t.Errorf("got %v; want ErrUnknownFormat", err)
	}
}

func TestByName(t *testing.T) {
	f, err := modulation.ByName("QPSK")
	if err != nil {
		t.Fatal(err)
	}
	if f.Efficiency != 2 || f.MaxReachKm != 2000 {
		t.Errorf("QPSK = %+v; want efficiency 2, reach 2000", f)
	}
}

func TestTable_PreferenceOrder(t *testing.T) {
	tab := modulation.Table()
	if len(tab) != 4 {
		t.Fatalf("table has %d entries; want 4", len(tab))
	}
	for i := 1; i < len(tab); i++ {
		if tab[i-1].Efficiency <= tab[i].Efficiency {
			t.Errorf("table not in descending efficiency at %d: %v", i, tab)
		}
	}
}
