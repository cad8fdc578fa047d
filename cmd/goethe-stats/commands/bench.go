package commands

import (
	"bytes"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/cobra"

	"github.com/goethe-engine/compress"
)

// stressSizes are the payload sizes the stress test cycles through.
var stressSizes = []int{1 << 10, 10 << 10, 100 << 10, 1 << 20}

func newBenchmarkCmd(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "benchmark <bytes>",
		Short: "Run a compression benchmark with the given payload size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := strconv.Atoi(args[0])
			if err != nil || size <= 0 {
				return fmt.Errorf("invalid data size %q", args[0])
			}

			mgr, err := setup()
			if err != nil {
				return err
			}
			defer mgr.Close()

			return runBenchmark(mgr, size)
		},
	}
}

func newStressTestCmd(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "stress-test <count>",
		Short: "Run repeated round trips with varying payload sizes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil || count <= 0 {
				return fmt.Errorf("invalid operation count %q", args[0])
			}

			mgr, err := setup()
			if err != nil {
				return err
			}
			defer mgr.Close()

			return runStressTest(mgr, count)
		},
	}
}

func runBenchmark(mgr *compress.Manager, size int) error {
	fmt.Printf("Running benchmark with %d bytes of data on backend %s...\n", size, mgr.BackendName())

	data := generateTestData(size, time.Now().UnixNano())

	compStart := time.Now()
	compressed, err := mgr.Compress(data)
	if err != nil {
		return err
	}
	compDur := time.Since(compStart)

	decompStart := time.Now()
	decompressed, err := mgr.Decompress(compressed)
	if err != nil {
		return err
	}
	decompDur := time.Since(decompStart)

	ratio := float64(len(compressed)) / float64(len(data))
	rate := (1.0 - ratio) * 100.0

	fmt.Println("Results:")
	fmt.Printf("  Compression: %v, %.2f MB/s\n", compDur, throughputMBps(len(data), compDur))
	fmt.Printf("  Decompression: %v, %.2f MB/s\n", decompDur, throughputMBps(len(decompressed), decompDur))
	fmt.Printf("  Compressed size: %d bytes (rate %.2f%%)\n", len(compressed), rate)
	fmt.Printf("  Data integrity: %s\n", integrityLabel(data, decompressed))

	return nil
}

func runStressTest(mgr *compress.Manager, count int) error {
	fmt.Printf("Running stress test with %d operations on backend %s...\n", count, mgr.BackendName())

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	start := time.Now()

	for i := 0; i < count; i++ {
		size := stressSizes[rng.Intn(len(stressSizes))]
		data := generateTestData(size, rng.Int63())
		sum := xxhash.Sum64(data)

		compressed, err := mgr.Compress(data)
		if err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
		decompressed, err := mgr.Decompress(compressed)
		if err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
		if xxhash.Sum64(decompressed) != sum {
			return fmt.Errorf("operation %d: round-trip checksum mismatch", i)
		}

		if (i+1)%100 == 0 {
			fmt.Printf("Completed %d operations...\n", i+1)
		}
	}

	elapsed := time.Since(start)
	fmt.Println("Stress test completed successfully!")
	fmt.Printf("Total time: %v\n", elapsed)
	fmt.Printf("Average time per operation: %v\n", elapsed/time.Duration(count))

	return nil
}

// generateTestData produces pseudo-random bytes from a limited alphabet so
// the payload is realistically compressible.
func generateTestData(size int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(rng.Intn(20))
	}

	return data
}

func throughputMBps(size int, d time.Duration) float64 {
	if d <= 0 {
		return 0.0
	}

	return float64(size) / 1e6 / d.Seconds()
}

func integrityLabel(want, got []byte) string {
	if bytes.Equal(want, got) {
		return "OK"
	}

	return "FAILED"
}
