// pipetables dumps the supported table domain: NPS/schedule combinations,
// flange classes, joint types and metallurgies per API table version.
// Used for CLI help and for validating job files by hand.
package main

import (
	"flag"
	"fmt"
	"os"

	"Pipecheck/internal/pipe"
	"Pipecheck/internal/tables"
)

func main() {
	version := flag.String("version", "2025", "API table version to list metallurgies for")
	flag.Parse()

	fmt.Println("Supported NPS per schedule (ASME B36.10M):")
	for _, sched := range tables.Schedules() {
		fmt.Printf("  sch %-3d:", sched)
		for _, nps := range tables.Sizes(sched) {
			fmt.Printf(" %g", nps)
		}
		fmt.Println()
	}

	fmt.Print("\nPressure classes:")
	for _, c := range tables.PressureClasses() {
		fmt.Printf(" %d", c)
	}
	fmt.Println()

	fmt.Print("\nJoint types:")
	for _, j := range tables.JointTypes() {
		fmt.Printf(" %s", j)
	}
	fmt.Println()

	fmt.Print("\nAPI table versions:")
	for _, v := range tables.Versions() {
		fmt.Printf(" %s", v)
	}
	fmt.Println()

	mets := pipe.Metallurgies(*version)
	if mets == nil {
		fmt.Fprintf(os.Stderr, "unknown table version %q\n", *version)
		os.Exit(1)
	}
	fmt.Printf("\nMetallurgies (API %s):\n", *version)
	for _, m := range mets {
		fmt.Printf("  %s\n", m)
	}
}
