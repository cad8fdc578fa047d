package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goethe-engine/compress/stats"
)

func newInfoCmd(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show current backend information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := setup()
			if err != nil {
				return err
			}
			defer mgr.Close()

			fmt.Println("Backend Information:")
			fmt.Println("===================")
			fmt.Printf("Name: %s\n", mgr.BackendName())
			fmt.Printf("Version: %s\n", mgr.BackendVersion())
			fmt.Printf("Initialized: %s\n", yesNo(mgr.Initialized()))
			fmt.Printf("Statistics Enabled: %s\n", yesNo(mgr.StatisticsEnabled()))
			fmt.Printf("Available Backends: %s\n", strings.Join(mgr.AvailableBackends(), ", "))

			return nil
		},
	}
}

func newStatsCmd(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show current backend statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := setup()
			if err != nil {
				return err
			}
			defer mgr.Close()

			printStats(mgr.Stats(), "Current Backend Statistics")

			return nil
		},
	}
}

func newGlobalCmd(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "global",
		Short: "Show global statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := setup()
			if err != nil {
				return err
			}
			defer mgr.Close()

			printStats(mgr.GlobalStats(), "Global Statistics")

			return nil
		},
	}
}

func printStats(s stats.BackendStats, title string) {
	fmt.Printf("\n%s:\n", title)
	fmt.Println(strings.Repeat("=", len(title)+1))

	fmt.Printf("Backend: %s v%s\n\n", s.BackendName, s.BackendVersion)

	fmt.Println("Operations:")
	fmt.Printf("  Total Compressions: %d\n", s.TotalCompressions)
	fmt.Printf("  Successful Compressions: %d\n", s.SuccessfulCompressions)
	fmt.Printf("  Failed Compressions: %d\n", s.FailedCompressions)
	fmt.Printf("  Total Decompressions: %d\n", s.TotalDecompressions)
	fmt.Printf("  Successful Decompressions: %d\n", s.SuccessfulDecompressions)
	fmt.Printf("  Failed Decompressions: %d\n", s.FailedDecompressions)
	fmt.Printf("  Success Rate: %.2f%%\n\n", s.SuccessRate())

	fmt.Println("Data Sizes:")
	fmt.Printf("  Total Input: %d bytes\n", s.TotalInputSize)
	fmt.Printf("  Total Output: %d bytes\n", s.TotalOutputSize)
	fmt.Printf("  Total Compressed: %d bytes\n", s.TotalCompressedSize)
	fmt.Printf("  Total Decompressed: %d bytes\n\n", s.TotalDecompressedSize)

	fmt.Println("Performance Metrics:")
	fmt.Printf("  Average Compression Ratio: %.2f\n", s.AverageCompressionRatio())
	fmt.Printf("  Average Compression Rate: %.2f%%\n", s.AverageCompressionRate())
	fmt.Printf("  Average Compression Throughput: %.2f MB/s\n", s.AverageCompressionThroughputMBps())
	fmt.Printf("  Average Decompression Throughput: %.2f MB/s\n", s.AverageDecompressionThroughputMBps())
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}

	return "No"
}
