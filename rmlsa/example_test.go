package rmlsa_test

import (
	"fmt"

	"github.com/katalvlaran/spectra/builder"
	"github.com/katalvlaran/spectra/rmlsa"
	"github.com/katalvlaran/spectra/spectrum"
)

// ExampleScheduler_Run batches two demands through the adaptive
// allocator on the NSFNET backbone.
func ExampleScheduler_Run() {
	g, _ := builder.BuildGraph(builder.NSFNET())
	ledger, _ := spectrum.NewLedger(g)
	alloc, _ := rmlsa.NewAdaptive(g, ledger)
	sched, _ := rmlsa.NewScheduler(ledger, alloc)

	res := sched.Run([]rmlsa.Demand{
		{Origin: "13", Destination: "14", BandwidthGbps: 100},
		{Origin: "9", Destination: "12", BandwidthGbps: 50},
	})

	fmt.Printf("%s: successful=%d blocked=%d watermark=%d\n",
		res.Algorithm, res.Successful, res.Blocked, res.Watermark)
	// Output:
	// A-kSP: successful=2 blocked=0 watermark=3
}
