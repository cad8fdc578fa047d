package stats

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
)

// backendReport is the export shape for one aggregate: the raw counters plus
// the derived metrics, rendered with the field names of the export schema.
type backendReport struct {
	BackendStats

	AverageCompressionRatio            float64 `json:"average_compression_ratio"`
	AverageCompressionRate             float64 `json:"average_compression_rate"`
	AverageCompressionThroughputMBps   float64 `json:"average_compression_throughput_mbps"`
	AverageDecompressionThroughputMBps float64 `json:"average_decompression_throughput_mbps"`
	SuccessRate                        float64 `json:"success_rate"`
}

func newBackendReport(s BackendStats) backendReport {
	return backendReport{
		BackendStats:                       s,
		AverageCompressionRatio:            s.AverageCompressionRatio(),
		AverageCompressionRate:             s.AverageCompressionRate(),
		AverageCompressionThroughputMBps:   s.AverageCompressionThroughputMBps(),
		AverageDecompressionThroughputMBps: s.AverageDecompressionThroughputMBps(),
		SuccessRate:                        s.SuccessRate(),
	}
}

type exportReport struct {
	StatisticsEnabled bool                     `json:"statistics_enabled"`
	GlobalStats       backendReport            `json:"global_stats"`
	BackendStats      map[string]backendReport `json:"backend_stats"`
}

// ExportJSON renders the enabled flag, the global aggregate, and every
// backend's current snapshot as indented JSON.
func (c *Collector) ExportJSON() ([]byte, error) {
	report := exportReport{
		StatisticsEnabled: c.Enabled(),
		GlobalStats:       newBackendReport(c.GlobalStats()),
		BackendStats:      make(map[string]backendReport),
	}

	for _, name := range c.BackendNames() {
		report.BackendStats[name] = newBackendReport(c.BackendStats(name))
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal statistics report: %w", err)
	}

	return data, nil
}

var csvHeader = []string{
	"Backend", "Version",
	"Total_Compressions", "Total_Decompressions",
	"Successful_Compressions", "Successful_Decompressions",
	"Failed_Compressions", "Failed_Decompressions",
	"Total_Input_Size", "Total_Output_Size",
	"Total_Compressed_Size", "Total_Decompressed_Size",
	"Total_Compression_Time_ns", "Total_Decompression_Time_ns",
	"Average_Compression_Ratio", "Average_Compression_Rate",
	"Average_Compression_Throughput_MBps", "Average_Decompression_Throughput_MBps",
	"Success_Rate",
}

// ExportCSV renders the same report as CSV: the header row, one GLOBAL row,
// and one row per backend sorted by name. Derived metrics use two decimal
// places.
func (c *Collector) ExportCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	if err := w.Write(csvRow("GLOBAL", "", c.GlobalStats())); err != nil {
		return nil, fmt.Errorf("write csv global row: %w", err)
	}

	for _, name := range c.BackendNames() {
		snap := c.BackendStats(name)
		if err := w.Write(csvRow(snap.BackendName, snap.BackendVersion, snap)); err != nil {
			return nil, fmt.Errorf("write csv row for %s: %w", name, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

func csvRow(name, version string, s BackendStats) []string {
	return []string{
		name, version,
		formatUint(s.TotalCompressions), formatUint(s.TotalDecompressions),
		formatUint(s.SuccessfulCompressions), formatUint(s.SuccessfulDecompressions),
		formatUint(s.FailedCompressions), formatUint(s.FailedDecompressions),
		formatUint(s.TotalInputSize), formatUint(s.TotalOutputSize),
		formatUint(s.TotalCompressedSize), formatUint(s.TotalDecompressedSize),
		formatUint(s.CompressionTimeNs), formatUint(s.DecompressionTimeNs),
		formatFloat(s.AverageCompressionRatio()), formatFloat(s.AverageCompressionRate()),
		formatFloat(s.AverageCompressionThroughputMBps()), formatFloat(s.AverageDecompressionThroughputMBps()),
		formatFloat(s.SuccessRate()),
	}
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
