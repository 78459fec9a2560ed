// Package modulation maps path distance and bandwidth onto spectrum
// requirements: which signal format a path can sustain and how many
// 12.5 GHz slots a demand then needs, guard band included.
//
// The format table is fixed at build time and never mutated; every
// function here is pure and deterministic.
//
// Errors (sentinel):
//
//	ErrUnknownFormat if a format name is not in the table. This is a
//	contract violation by the caller, not a per-demand condition.
package modulation

import (
	"errors"
	"fmt"
	"math"
)

// Spectrum constants shared by slot sizing and the ledger.
const (
	// SlotWidthGHz is the width of one frequency slot.
	SlotWidthGHz = 12.5

	// GuardBandSlots is the number of slots reserved next to each signal
	// against inter-channel interference.
	GuardBandSlots = 1
)

// ErrUnknownFormat indicates a format name absent from the table.
var ErrUnknownFormat = errors.New("modulation: unknown format")

// Format is one modulation scheme trading reach for efficiency.
type Format struct {
	// Name identifies the scheme (e.g. "QPSK").
	Name string

	// MaxReachKm is the longest path this format can cover.
	MaxReachKm float64

	// Efficiency is the spectral efficiency in bits/s/Hz.
	Efficiency float64
}

// table lists the supported formats ordered by descending efficiency,
// which is exactly the preference order Select walks.
var table = []Format{
	{Name: "16-QAM", MaxReachKm: 500, Efficiency: 4},
	{Name: "8-QAM", MaxReachKm: 1000, Efficiency: 3},
	{Name: "QPSK", MaxReachKm: 2000, Efficiency: 2},
	{Name: "BPSK", MaxReachKm: 4000, Efficiency: 1},
}

// Table returns a copy of the format table in preference order.
func Table() []Format {
	out := make([]Format, len(table))
	copy(out, table)

	return out
}

// ByName resolves a format by its name.
func ByName(name string) (Format, error) {
	for _, f := range table {
		if f.Name == name {
			return f, nil
		}
	}

	return Format{}, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Select chooses the most efficient format whose reach covers
// distanceKm. Distances beyond every reach fall back to the
// longest-reach entry rather than failing: every finite-distance path
// gets an assignable format.
func Select(distanceKm float64) Format {
	longest := table[0]
	for _, f := range table {
		if distanceKm <= f.MaxReachKm {
			return f
		}
		if f.MaxReachKm > longest.MaxReachKm {
			longest = f
		}
	}

	return longest
}

// RequiredSlots computes the slot count for a demand carried on the
// named format: ⌊bandwidth / (efficiency × slot width)⌋ plus the guard
// band, floored at one slot.
func RequiredSlots(bandwidthGbps float64, formatName string) (int, error) {
	f, err := ByName(formatName)
	if err != nil {
		return 0, err
	}

	slots := int(math.Floor(bandwidthGbps/(f.Efficiency*SlotWidthGHz))) + GuardBandSlots
	if slots < 1 {
		slots = 1
	}

	return slots, nil
}
