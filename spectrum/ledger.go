// File: ledger.go
// Role: Ledger state, construction, placement queries (first-fit /
//       best-fit), commit, release, watermark and utilization signals.
//
// Invariants:
//   - watermark == 1 + highest occupied slot on any link, 0 when empty.
//   - Commit either mutates every targeted cell or none.
//   - Release recomputes the watermark by full rescan, never incrementally.

package spectrum

import (
	"fmt"
	"math/bits"
	"sort"

	"github.com/katalvlaran/spectra/core"
)

const wordBits = 64

// Ledger is the L×S occupancy grid plus the global watermark.
type Ledger struct {
	capacity  int // S, slots per link
	wordCount int // ⌈S / 64⌉

	// occ[link] is the link's occupancy bitset; bit s set ⇔ slot s in use.
	occ [][]uint64

	// linkIndex resolves an ordered node pair to its link index; both
	// orientations of every edge are present.
	linkIndex map[[2]string]int

	watermark int
}

// NewLedger builds an all-free ledger over g's edges. Link i of the
// ledger is edge i of g.Edges() — the graph's stable edge order is the
// one source of link indexing.
//
// Complexity: O(L · S/64) zeroed allocation + O(L) index build.
func NewLedger(g *core.Graph, opts ...Option) (*Ledger, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	edges := g.Edges()
	if len(edges) == 0 {
		return nil, ErrNoLinks
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	wc := (cfg.Capacity + wordBits - 1) / wordBits
	l := &Ledger{
		capacity:  cfg.Capacity,
		wordCount: wc,
		occ:       make([][]uint64, len(edges)),
		linkIndex: make(map[[2]string]int, 2*len(edges)),
	}
	for i, e := range edges {
		l.occ[i] = make([]uint64, wc)
		l.linkIndex[[2]string{e.From, e.To}] = i
		l.linkIndex[[2]string{e.To, e.From}] = i
	}

	return l, nil
}

// Capacity returns the slot count per link.
func (l *Ledger) Capacity() int { return l.capacity }

// LinkCount returns the number of links.
func (l *Ledger) LinkCount() int { return len(l.occ) }

// Watermark returns 1 + the highest occupied slot index anywhere, or 0
// while nothing is occupied.
func (l *Ledger) Watermark() int { return l.watermark }

// Reset frees every slot and zeroes the watermark, preparing the ledger
// for a fresh batch over the same topology.
func (l *Ledger) Reset() {
	for _, row := range l.occ {
		for w := range row {
			row[w] = 0
		}
	}
	l.watermark = 0
}

// LinkIndices resolves each consecutive node pair of path to its link
// index, accepting either traversal direction. An unresolvable pair
// yields ErrUnknownLink.
//
// Complexity: O(len(path)).
func (l *Ledger) LinkIndices(path []string) ([]int, error) {
	if len(path) < 2 {
		return nil, fmt.Errorf("%w: path %v has no edges", ErrUnknownLink, path)
	}
	out := make([]int, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		idx, ok := l.linkIndex[[2]string{path[i], path[i+1]}]
		if !ok {
			return nil, fmt.Errorf("%w: %s-%s", ErrUnknownLink, path[i], path[i+1])
		}
		out = append(out, idx)
	}

	return out, nil
}

// FindFirstFit returns the smallest start such that the window
// [start, start+slotsNeeded) is free on every link of the set
// simultaneously (spectrum continuity). ok=false when no window fits
// within capacity or the inputs are invalid.
//
// Complexity: O(L_set · S/64) to merge + O(S) to scan.
func (l *Ledger) FindFirstFit(links []int, slotsNeeded int) (int, bool) {
	if !l.validSet(links, slotsNeeded) {
		return 0, false
	}

	merged := l.mergeOccupancy(links)
	runs := freeRunLengths(merged, l.capacity)
	for start := 0; start+slotsNeeded <= l.capacity; start++ {
		if runs[start] >= slotsNeeded {
			return start, true
		}
	}

	return 0, false
}

// BestFitPositions returns up to maxPositions feasible offsets ranked
// by watermark impact: offsets that leave the set's maximum per-link
// watermark unchanged come first (ascending offset, the fragmentation
// tie-break), then offsets that raise it, ordered by (increase,
// resulting watermark, offset). Invalid inputs yield an empty slice.
//
// Complexity: O(L_set · S/64 + S log S).
func (l *Ledger) BestFitPositions(links []int, slotsNeeded, maxPositions int) []int {
	if maxPositions <= 0 || !l.validSet(links, slotsNeeded) {
		return nil
	}

	// Current high-water mark across the set: placements ending at or
	// below it cost nothing.
	maxCur := 0
	for _, link := range links {
		if wm := l.LinkWatermark(link); wm > maxCur {
			maxCur = wm
		}
	}

	merged := l.mergeOccupancy(links)
	runs := freeRunLengths(merged, l.capacity)

	type scored struct {
		start, increase, resulting int
	}
	var zero []int // ascending by construction of the scan
	var raise []scored
	for start := 0; start+slotsNeeded <= l.capacity; start++ {
		if runs[start] < slotsNeeded {
			continue
		}
		end := start + slotsNeeded
		if end <= maxCur {
			zero = append(zero, start)
			continue
		}
		raise = append(raise, scored{start: start, increase: end - maxCur, resulting: end})
	}

	// Explicit lexicographic order, highest priority first.
	sort.Slice(raise, func(i, j int) bool {
		if raise[i].increase != raise[j].increase {
			return raise[i].increase < raise[j].increase
		}
		if raise[i].resulting != raise[j].resulting {
			return raise[i].resulting < raise[j].resulting
		}

		return raise[i].start < raise[j].start
	})

	out := make([]int, 0, maxPositions)
	for _, s := range zero {
		if len(out) == maxPositions {
			return out
		}
		out = append(out, s)
	}
	for _, s := range raise {
		if len(out) == maxPositions {
			return out
		}
		out = append(out, s.start)
	}

	return out
}

// Commit marks the window [start, start+slotsNeeded) occupied on every
// link of the set and raises the watermark. Every targeted cell is
// re-validated as free first; on any occupied cell or out-of-range
// parameter the grid is left untouched and a sentinel error returned.
//
// Complexity: O(L_set · slots/64).
func (l *Ledger) Commit(links []int, start, slotsNeeded int) error {
	if err := l.validWindow(links, start, slotsNeeded); err != nil {
		return err
	}

	// Re-validate before any mutation: query results may be stale.
	for _, link := range links {
		if !windowFree(l.occ[link], start, slotsNeeded) {
			return fmt.Errorf("%w: link %d window [%d,%d)", ErrSlotsOccupied, link, start, start+slotsNeeded)
		}
	}

	for _, link := range links {
		setWindow(l.occ[link], start, slotsNeeded)
	}
	if end := start + slotsNeeded; end > l.watermark {
		l.watermark = end
	}

	return nil
}

// Release frees the window [start, start+slotsNeeded) on every link of
// the set, then recomputes the watermark by scanning all links. Out of
// range parameters fail safely with no mutation.
//
// Complexity: O(L_set · slots/64) to clear + O(L · S/64) to rescan.
func (l *Ledger) Release(links []int, start, slotsNeeded int) error {
	if err := l.validWindow(links, start, slotsNeeded); err != nil {
		return err
	}

	for _, link := range links {
		clearWindow(l.occ[link], start, slotsNeeded)
	}

	l.watermark = 0
	for link := range l.occ {
		if wm := l.LinkWatermark(link); wm > l.watermark {
			l.watermark = wm
		}
	}

	return nil
}

// LinkWatermark returns 1 + the highest occupied slot on one link, 0
// for a free or out-of-range link. This is the per-link load signal,
// distinct from the global watermark.
//
// Complexity: O(S/64).
func (l *Ledger) LinkWatermark(link int) int {
	if link < 0 || link >= len(l.occ) {
		return 0
	}
	row := l.occ[link]
	for w := len(row) - 1; w >= 0; w-- {
		if row[w] != 0 {
			return w*wordBits + bits.Len64(row[w])
		}
	}

	return 0
}

// Occupied reports whether one cell is in use. Out-of-range coordinates
// read as free.
func (l *Ledger) Occupied(link, slot int) bool {
	if link < 0 || link >= len(l.occ) || slot < 0 || slot >= l.capacity {
		return false
	}

	return l.occ[link][slot/wordBits]&(1<<(uint(slot)%wordBits)) != 0
}

// Utilization returns the fraction of all (link, slot) cells occupied.
//
// Complexity: O(L · S/64).
func (l *Ledger) Utilization() float64 {
	total := len(l.occ) * l.capacity
	if total == 0 {
		return 0
	}
	occupied := 0
	for _, row := range l.occ {
		for _, w := range row {
			occupied += bits.OnesCount64(w)
		}
	}

	return float64(occupied) / float64(total)
}

// PlacementImpact simulates, without mutating the grid, placing a
// window on the set's links: the resulting maximum and mean per-link
// watermark across exactly those links. Used by allocators to rank
// candidates.
func (l *Ledger) PlacementImpact(links []int, start, slotsNeeded int) (maxWM int, meanWM float64) {
	end := start + slotsNeeded
	sum := 0
	for _, link := range links {
		wm := l.LinkWatermark(link)
		if end > wm {
			wm = end
		}
		if wm > maxWM {
			maxWM = wm
		}
		sum += wm
	}
	if len(links) > 0 {
		meanWM = float64(sum) / float64(len(links))
	}

	return maxWM, meanWM
}

// validSet reports whether a link set and slot count are usable for a
// query. Queries fail soft (no error value) per the blocking model.
func (l *Ledger) validSet(links []int, slotsNeeded int) bool {
	if len(links) == 0 || slotsNeeded <= 0 || slotsNeeded > l.capacity {
		return false
	}
	for _, link := range links {
		if link < 0 || link >= len(l.occ) {
			return false
		}
	}

	return true
}

// validWindow runs the strict checks mutation operations require.
func (l *Ledger) validWindow(links []int, start, slotsNeeded int) error {
	if len(links) == 0 {
		return ErrEmptyLinkSet
	}
	if slotsNeeded <= 0 {
		return fmt.Errorf("%w: %d", ErrBadSlotCount, slotsNeeded)
	}
	if start < 0 || start+slotsNeeded > l.capacity {
		return fmt.Errorf("%w: [%d,%d) capacity=%d", ErrSlotOutOfRange, start, start+slotsNeeded, l.capacity)
	}
	for _, link := range links {
		if link < 0 || link >= len(l.occ) {
			return fmt.Errorf("%w: %d of %d", ErrLinkOutOfRange, link, len(l.occ))
		}
	}

	return nil
}

// mergeOccupancy ORs the rows of the set into a fresh scratch bitset:
// a bit set anywhere in the set blocks that slot for the whole set.
func (l *Ledger) mergeOccupancy(links []int) []uint64 {
	merged := make([]uint64, l.wordCount)
	for _, link := range links {
		row := l.occ[link]
		for w := range merged {
			merged[w] |= row[w]
		}
	}

	return merged
}

// freeRunLengths returns, per slot, the length of the free run starting
// there in the merged bitset: runs[s] = 0 if s is occupied, else
// 1 + runs[s+1]. Computed right-to-left in one pass.
func freeRunLengths(merged []uint64, capacity int) []int {
	runs := make([]int, capacity)
	for s := capacity - 1; s >= 0; s-- {
		if merged[s/wordBits]&(1<<(uint(s)%wordBits)) != 0 {
			continue // occupied ⇒ run length 0
		}
		if s == capacity-1 {
			runs[s] = 1
		} else {
			runs[s] = runs[s+1] + 1
		}
	}

	return runs
}

// windowFree reports whether bits [start, start+n) are all clear,
// checking whole words where possible.
func windowFree(row []uint64, start, n int) bool {
	end := start + n
	for w := start / wordBits; w <= (end-1)/wordBits; w++ {
		if row[w]&windowMask(w, start, end) != 0 {
			return false
		}
	}

	return true
}

// setWindow marks bits [start, start+n) occupied.
func setWindow(row []uint64, start, n int) {
	end := start + n
	for w := start / wordBits; w <= (end-1)/wordBits; w++ {
		row[w] |= windowMask(w, start, end)
	}
}

// clearWindow marks bits [start, start+n) free.
func clearWindow(row []uint64, start, n int) {
	end := start + n
	for w := start / wordBits; w <= (end-1)/wordBits; w++ {
		row[w] &^= windowMask(w, start, end)
	}
}

// windowMask builds the mask of word w covered by the global bit range
// [start, end).
func windowMask(w, start, end int) uint64 {
	lo := w * wordBits
	hi := lo + wordBits
	if start > lo {
		lo = start
	}
	if end < hi {
		hi = end
	}
	width := hi - lo
	if width <= 0 {
		return 0
	}
	if width == wordBits {
		return ^uint64(0)
	}

	return ((uint64(1) << uint(width)) - 1) << (uint(lo) % wordBits)
}
