package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raidsim/raidsim/raid"
)

// compareCmd prints a side-by-side efficiency table for one disk count
// across every supported RAID level. A level invalid at that disk count
// shows its rejection reason instead of numbers.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare capacity and performance metrics across RAID levels",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		fmt.Printf("RAID comparison for %d disks\n", diskCount)
		fmt.Printf("%-8s %10s %12s %11s %9s %7s %10s\n",
			"Level", "Usable %", "Redundancy %", "Efficiency", "Speedup", "Faults", "W-penalty")

		for _, scheme := range raid.Schemes() {
			usable, err := raid.UsableCapacityPercent(diskCount, scheme)
			if err != nil {
				fmt.Printf("%-8s %s\n", scheme, err)
				continue
			}
			redundancy, _ := raid.RedundancyPercent(diskCount, scheme)
			efficiency, _ := raid.SpaceEfficiency(diskCount, scheme)
			speedup, _ := raid.ParallelSpeedup(diskCount, scheme)
			tolerance, _ := raid.FaultTolerance(scheme, diskCount)
			penalty, _ := raid.WritePenalty(scheme)

			fmt.Printf("%-8s %10.1f %12.1f %11.2f %9.2f %7d %10.0f\n",
				scheme, usable, redundancy, efficiency, speedup, tolerance, penalty)
		}
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
