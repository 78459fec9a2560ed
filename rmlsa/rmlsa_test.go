package rmlsa_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectra/builder"
	"github.com/katalvlaran/spectra/core"
	"github.com/katalvlaran/spectra/rmlsa"
	"github.com/katalvlaran/spectra/spectrum"
)

// nsfnet builds the reference backbone and a fresh ledger over it.
func nsfnet(t *testing.T) (*core.Graph, *spectrum.Ledger) {
	t.Helper()
	g, err := builder.BuildGraph(builder.NSFNET())
	require.NoError(t, err)
	l, err := spectrum.NewLedger(g)
	require.NoError(t, err)

	return g, l
}

// twoIslands builds a graph where X and Y have no connecting path.
func twoIslands(t *testing.T) (*core.Graph, *spectrum.Ledger) {
	t.Helper()
	g, err := builder.BuildGraph(func(g *core.Graph) error {
		for _, n := range []string{"X", "Y", "Z", "W"} {
			if err := g.AddNode(n); err != nil {
				return err
			}
		}
		if _, err := g.AddEdge("X", "Z", 100); err != nil {
			return err
		}
		_, err := g.AddEdge("Y", "W", 100)

		return err
	})
	require.NoError(t, err)
	l, err := spectrum.NewLedger(g)
	require.NoError(t, err)

	return g, l
}

func TestConstructors_NilArguments(t *testing.T) {
	g, l := nsfnet(t)

	_, err := rmlsa.NewFirstFit(nil, l)
	require.ErrorIs(t, err, rmlsa.ErrNilGraph)
	_, err = rmlsa.NewFirstFit(g, nil)
	require.ErrorIs(t, err, rmlsa.ErrNilLedger)

	_, err = rmlsa.NewAdaptive(nil, l)
	require.ErrorIs(t, err, rmlsa.ErrNilGraph)
	_, err = rmlsa.NewAdaptive(g, nil)
	require.ErrorIs(t, err, rmlsa.ErrNilLedger)

	_, err = rmlsa.NewScheduler(nil, &rmlsa.FirstFit{})
	require.ErrorIs(t, err, rmlsa.ErrNilLedger)
	_, err = rmlsa.NewScheduler(l, nil)
	require.ErrorIs(t, err, rmlsa.ErrNilAllocator)
}

func TestWithFanOut_PanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { rmlsa.WithFanOut(0) })
	require.Panics(t, func() { rmlsa.WithFanOut(-2) })
}

func TestSortByBandwidth_StableDescending(t *testing.T) {
	in := []rmlsa.Demand{
		{Origin: "1", Destination: "2", BandwidthGbps: 100},
		{Origin: "3", Destination: "4", BandwidthGbps: 400},
		{Origin: "5", Destination: "6", BandwidthGbps: 100},
		{Origin: "7", Destination: "8", BandwidthGbps: 250},
	}

	out := rmlsa.SortByBandwidth(in)

	require.Equal(t, 400.0, out[0].BandwidthGbps)
	require.Equal(t, 250.0, out[1].BandwidthGbps)
	// Equal bandwidths keep their input order.
	require.Equal(t, "1", out[2].Origin)
	require.Equal(t, "5", out[3].Origin)
	// Input untouched.
	require.Equal(t, 100.0, in[0].BandwidthGbps)
}

func TestFirstFit_PacksFromSlotZero(t *testing.T) {
	g, l := nsfnet(t)
	a, err := rmlsa.NewFirstFit(g, l)
	require.NoError(t, err)
	require.Equal(t, "SPFF", a.Name())

	d := rmlsa.Demand{Origin: "13", Destination: "14", BandwidthGbps: 100}

	// 300 km carries 16-QAM: floor(100/(4*12.5)) + 1 = 3 slots.
	c1, ok := a.Place(d)
	require.True(t, ok)
	require.Equal(t, []string{"13", "14"}, c1.Path.Nodes)
	require.Equal(t, "16-QAM", c1.Format)
	require.Equal(t, 0, c1.StartSlot)
	require.Equal(t, 3, c1.SlotCount)

	// The same demand again stacks right after the first window.
	c2, ok := a.Place(d)
	require.True(t, ok)
	require.Equal(t, 3, c2.StartSlot)
	require.Equal(t, 6, l.Watermark())
}

func TestFirstFit_BlocksWithoutRetry(t *testing.T) {
	g, l := nsfnet(t)

	// Saturate the one direct 13-14 span. SPFF never tries the 13-9-14
	// detour, so the demand must block.
	links, err := l.LinkIndices([]string{"13", "14"})
	require.NoError(t, err)
	require.NoError(t, l.Commit(links, 0, l.Capacity()))

	a, err := rmlsa.NewFirstFit(g, l)
	require.NoError(t, err)

	_, ok := a.Place(rmlsa.Demand{Origin: "13", Destination: "14", BandwidthGbps: 100})
	if ok {
		t.Fatal("expected a blocked demand on a saturated shortest path")
	}
}

func TestFirstFit_BlocksWhenDisconnected(t *testing.T) {
	g, l := twoIslands(t)
	a, err := rmlsa.NewFirstFit(g, l)
	require.NoError(t, err)

	_, ok := a.Place(rmlsa.Demand{Origin: "X", Destination: "Y", BandwidthGbps: 50})
	require.False(t, ok)
}

func TestAdaptive_NormalModeAvoidsWatermarkRaise(t *testing.T) {
	g, l := nsfnet(t)

	// Load only the direct 13-14 span to [0,100). The network stays in
	// Normal mode (ratio 0.31, utilization ~0.014), where watermark
	// impact dominates: the empty two-hop 13-9-14 detour fits entirely
	// under the existing watermark while the direct span would raise it.
	direct, err := l.LinkIndices([]string{"13", "14"})
	require.NoError(t, err)
	require.NoError(t, l.Commit(direct, 0, 100))

	a, err := rmlsa.NewAdaptive(g, l)
	require.NoError(t, err)
	require.Equal(t, "A-kSP", a.Name())

	c, ok := a.Place(rmlsa.Demand{Origin: "13", Destination: "14", BandwidthGbps: 100})
	require.True(t, ok)
	require.Equal(t, []string{"13", "9", "14"}, c.Path.Nodes)
	require.Equal(t, 0, c.StartSlot)
	// 1200 km forces QPSK: floor(100/25) + 1 = 5 slots.
	require.Equal(t, "QPSK", c.Format)
	require.Equal(t, 5, c.SlotCount)
	// Nothing raised: the detour ends below the existing watermark.
	require.Equal(t, 100, l.Watermark())
}

func TestAdaptive_HighModePrefersShortPath(t *testing.T) {
	g, l := nsfnet(t)

	// Same pre-load on the direct span as the Normal-mode test, plus an
	// off-path span pushed to [0,230) so the watermark ratio crosses
	// 0.70 without tripping the Extreme utilization trigger. In High
	// mode hop count and offset outrank watermark impact, flipping the
	// decision back to the direct span.
	direct, err := l.LinkIndices([]string{"13", "14"})
	require.NoError(t, err)
	require.NoError(t, l.Commit(direct, 0, 100))
	require.NoError(t, l.Commit([]int{0}, 0, 230))

	a, err := rmlsa.NewAdaptive(g, l)
	require.NoError(t, err)

	c, ok := a.Place(rmlsa.Demand{Origin: "13", Destination: "14", BandwidthGbps: 100})
	require.True(t, ok)
	require.Equal(t, []string{"13", "14"}, c.Path.Nodes)
	require.Equal(t, 100, c.StartSlot)
	require.Equal(t, "16-QAM", c.Format)
}

func TestAdaptive_ExtremeModeTakesFirstFeasiblePath(t *testing.T) {
	g, l := nsfnet(t)

	// A fully saturated direct span puts the watermark at capacity
	// (ratio 1.0, Extreme). The allocator must fall through to the next
	// shortest path and take its first-fit window with no ranking.
	direct, err := l.LinkIndices([]string{"13", "14"})
	require.NoError(t, err)
	require.NoError(t, l.Commit(direct, 0, l.Capacity()))

	a, err := rmlsa.NewAdaptive(g, l)
	require.NoError(t, err)

	c, ok := a.Place(rmlsa.Demand{Origin: "13", Destination: "14", BandwidthGbps: 100})
	require.True(t, ok)
	require.Equal(t, []string{"13", "9", "14"}, c.Path.Nodes)
	require.Equal(t, 0, c.StartSlot)
	require.Equal(t, "QPSK", c.Format)
}

func TestAdaptive_BlocksWhenDisconnected(t *testing.T) {
	g, l := twoIslands(t)
	a, err := rmlsa.NewAdaptive(g, l)
	require.NoError(t, err)

	_, ok := a.Place(rmlsa.Demand{Origin: "X", Destination: "Y", BandwidthGbps: 50})
	require.False(t, ok)
}

func TestScheduler_RunAggregates(t *testing.T) {
	g, l := nsfnet(t)
	a, err := rmlsa.NewFirstFit(g, l)
	require.NoError(t, err)
	s, err := rmlsa.NewScheduler(l, a)
	require.NoError(t, err)

	demands := []rmlsa.Demand{
		{Origin: "13", Destination: "14", BandwidthGbps: 100},
		{Origin: "12", Destination: "13", BandwidthGbps: 200},
		{Origin: "9", Destination: "12", BandwidthGbps: 50},
	}

	res := s.Run(demands)

	require.Equal(t, "SPFF", res.Algorithm)
	require.Equal(t, 3, res.Successful)
	require.Equal(t, 0, res.Blocked)
	require.Equal(t, 0.0, res.BlockingProbability)
	require.Equal(t, l.Watermark(), res.Watermark)
	require.Greater(t, res.Watermark, 0)
	require.Greater(t, res.Utilization, 0.0)

	// The caller's slice keeps its original order.
	require.Equal(t, 100.0, demands[0].BandwidthGbps)
}

func TestScheduler_BlockingProbability(t *testing.T) {
	g, err := builder.BuildGraph(func(g *core.Graph) error {
		if err := g.AddNode("A"); err != nil {
			return err
		}
		if err := g.AddNode("B"); err != nil {
			return err
		}
		_, err := g.AddEdge("A", "B", 100)

		return err
	})
	require.NoError(t, err)
	l, err := spectrum.NewLedger(g)
	require.NoError(t, err)
	a, err := rmlsa.NewFirstFit(g, l)
	require.NoError(t, err)
	s, err := rmlsa.NewScheduler(l, a)
	require.NoError(t, err)

	// 7950 Gbps on 16-QAM needs 160 slots; two fill the link, the third
	// must block.
	d := rmlsa.Demand{Origin: "A", Destination: "B", BandwidthGbps: 7950}
	res := s.Run([]rmlsa.Demand{d, d, d})

	require.Equal(t, 2, res.Successful)
	require.Equal(t, 1, res.Blocked)
	require.InDelta(t, 1.0/3.0, res.BlockingProbability, 1e-12)
	require.Equal(t, l.Capacity(), res.Watermark)
}

func TestScheduler_EmptyBatch(t *testing.T) {
	g, l := nsfnet(t)
	a, err := rmlsa.NewAdaptive(g, l)
	require.NoError(t, err)
	s, err := rmlsa.NewScheduler(l, a)
	require.NoError(t, err)

	res := s.Run(nil)

	require.Equal(t, "A-kSP", res.Algorithm)
	require.Zero(t, res.Successful)
	require.Zero(t, res.Blocked)
	require.Zero(t, res.BlockingProbability)
	require.Zero(t, res.Watermark)
}

func TestSchedulers_AdaptiveNeverWorseWatermark(t *testing.T) {
	demands := []rmlsa.Demand{
		{Origin: "1", Destination: "9", BandwidthGbps: 300},
		{Origin: "2", Destination: "12", BandwidthGbps: 250},
		{Origin: "13", Destination: "14", BandwidthGbps: 100},
		{Origin: "4", Destination: "11", BandwidthGbps: 150},
		{Origin: "3", Destination: "10", BandwidthGbps: 200},
		{Origin: "5", Destination: "8", BandwidthGbps: 175},
	}

	gFF, lFF := nsfnet(t)
	ff, err := rmlsa.NewFirstFit(gFF, lFF)
	require.NoError(t, err)
	sFF, err := rmlsa.NewScheduler(lFF, ff)
	require.NoError(t, err)
	resFF := sFF.Run(demands)

	gAd, lAd := nsfnet(t)
	ad, err := rmlsa.NewAdaptive(gAd, lAd)
	require.NoError(t, err)
	sAd, err := rmlsa.NewScheduler(lAd, ad)
	require.NoError(t, err)
	resAd := sAd.Run(demands)

	if resAd.Watermark > resFF.Watermark {
		t.Fatalf("adaptive watermark %d exceeds first-fit watermark %d",
			resAd.Watermark, resFF.Watermark)
	}
	require.Equal(t, resFF.Successful+resFF.Blocked, resAd.Successful+resAd.Blocked)
}
