package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/raidsim/raidsim/raid"
	"github.com/raidsim/raidsim/raid/inventory"
	"github.com/raidsim/raidsim/raid/report"
)

var (
	// CLI flags shared across subcommands
	logLevel    string // Log verbosity level
	diskCount   int    // Number of disks in the array
	raidLevel   string // RAID level name, or "all"
	diskSpecs   string // Path to a disk spec presets YAML file
	diskProfile string // Preset profile name within the specs file

	// Workload flags
	workloadIOPS float64 // Application IOPS demand
	readPercent  float64 // Share of reads (0-100)
	writePercent float64 // Share of writes (0-100)
	utilization  float64 // Per-disk utilization fraction (0,1]
	fileSizeMB   float64 // Representative transfer size for time estimates

	// Input/output flags
	scanDir    string // Folder to scan for media items (optional)
	reportsDir string // Directory report CSVs are written into
	dbPath     string // Optional sqlite database for persisted runs
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "raidsim",
	Short: "Analytical RAID capacity, performance, and placement simulator",
}

// runCmd simulates one level (or all three) and writes report CSVs.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the RAID simulation and write report CSVs",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		spec, err := GetDiskSpec(diskSpecs, diskProfile)
		if err != nil {
			logrus.Fatalf("Invalid disk spec: %v", err)
		}

		var items []raid.Item
		if scanDir != "" {
			scan, err := inventory.Scan(scanDir)
			if err != nil {
				logrus.Fatalf("Scan failed: %v", err)
			}
			items = scan.Items()
		}

		wl := raid.Workload{
			TotalIOPS:    workloadIOPS,
			ReadPercent:  readPercent,
			WritePercent: writePercent,
			Utilization:  utilization,
			FileSizeMB:   fileSizeMB,
		}

		configs, err := requestedConfigs()
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		logrus.Infof("Starting simulation: %d disks, %v IOPS (%.0f%% read / %.0f%% write), %d items",
			diskCount, workloadIOPS, readPercent, writePercent, len(items))

		runner := raid.NewRunner(spec)
		runs := runner.RunAll(configs, wl, items)
		if len(runs) == 0 {
			logrus.Fatalf("No valid configuration produced a run")
		}

		log := report.NewRunLog()
		for _, run := range runs {
			log.Append(run)
			printRun(run)
		}

		if err := writeReports(log); err != nil {
			logrus.Fatalf("Writing reports: %v", err)
		}

		if dbPath != "" {
			if err := persistRuns(log); err != nil {
				logrus.Fatalf("Persisting runs: %v", err)
			}
		}

		logrus.Info("Simulation complete.")
	},
}

// requestedConfigs expands the --level flag into array configurations.
// "all" yields every scheme; the runner filters invalid combinations so one
// bad entry never aborts the batch.
func requestedConfigs() ([]raid.ArrayConfig, error) {
	if raidLevel == "all" {
		configs := make([]raid.ArrayConfig, 0, 3)
		for _, scheme := range raid.Schemes() {
			configs = append(configs, raid.ArrayConfig{Scheme: scheme, DiskCount: diskCount})
		}
		return configs, nil
	}
	scheme, err := raid.ParseScheme(raidLevel)
	if err != nil {
		return nil, err
	}
	return []raid.ArrayConfig{{Scheme: scheme, DiskCount: diskCount}}, nil
}

// printRun displays one run's headline figures on stdout.
func printRun(run *raid.SimulationRun) {
	fmt.Printf("=== %s ===\n", run.Config)
	fmt.Printf("Usable capacity      : %.1f%%\n", run.Capacity.UsablePercent)
	fmt.Printf("Redundancy overhead  : %.1f%%\n", run.Capacity.RedundancyPercent)
	fmt.Printf("Raw storage required : %.0f bytes for %d data bytes\n",
		run.Overhead.TotalRequiredBytes, run.Placement.TotalBytes)
	fmt.Printf("Read / write time    : %.2f ms / %.2f ms (%.0f MB)\n",
		run.Performance.ReadTimeMs, run.Performance.WriteTimeMs, run.Workload.FileSizeMB)
	fmt.Printf("Array IOPS (r/w)     : %.0f / %.0f\n",
		run.Performance.ReadIOPS, run.Performance.WriteIOPS)
	fmt.Printf("Disk load            : %.0f IOPS (write penalty %.0f)\n",
		run.Performance.DiskLoadIOPS, run.Performance.WritePenalty)
	fmt.Printf("Fault tolerance      : %d disk(s)\n", run.Performance.FaultTolerance)
	if run.Placement.ItemCount > 0 {
		fmt.Printf("Placement            : %d items, load skew %d bytes\n",
			run.Placement.ItemCount, run.Placement.LoadSkew)
	}
}

// writeReports writes the run report and its statistical summary as
// timestamped CSVs under the reports directory.
func writeReports(log *report.RunLog) error {
	if err := os.MkdirAll(reportsDir, 0o755); err != nil {
		return fmt.Errorf("creating reports dir: %w", err)
	}
	ts := time.Now().Format("20060102_150405")

	reportPath := filepath.Join(reportsDir, "report_"+ts+".csv")
	f, err := os.Create(reportPath)
	if err != nil {
		return err
	}
	if err := log.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	summaryPath := filepath.Join(reportsDir, "summary_"+ts+".csv")
	sf, err := os.Create(summaryPath)
	if err != nil {
		return err
	}
	if err := report.Summarize(log).WriteCSV(sf); err != nil {
		sf.Close()
		return err
	}
	if err := sf.Close(); err != nil {
		return err
	}

	logrus.Infof("Reports saved to %s and %s", reportPath, summaryPath)
	return nil
}

// persistRuns appends every run in the log to the sqlite store.
func persistRuns(log *report.RunLog) error {
	store, err := report.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()
	for _, run := range log.Runs() {
		if err := store.SaveRun(run); err != nil {
			return err
		}
	}
	logrus.Infof("Persisted %d run(s) to %s", log.Len(), dbPath)
	return nil
}

// setupLogging applies the --log flag.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// envDefault returns the environment value for key, or fallback when unset.
// A .env file in the working directory is honored via godotenv.
func envDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&logLevel, "log", envDefault("RAIDSIM_LOG", "error"), "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().IntVar(&diskCount, "disks", 4, "Number of disks in the array")
	rootCmd.PersistentFlags().StringVar(&diskSpecs, "disk-specs", "", "Path to a disk spec presets YAML file")
	rootCmd.PersistentFlags().StringVar(&diskProfile, "disk-profile", "", "Preset profile name within --disk-specs")

	runCmd.Flags().StringVar(&raidLevel, "level", "all", "RAID level (RAID 0, RAID 1, RAID 5) or 'all'")
	runCmd.Flags().Float64Var(&workloadIOPS, "workload-iops", 1000, "Application IOPS demand")
	runCmd.Flags().Float64Var(&readPercent, "read-percent", 70, "Share of read operations (0-100)")
	runCmd.Flags().Float64Var(&writePercent, "write-percent", 30, "Share of write operations (0-100)")
	runCmd.Flags().Float64Var(&utilization, "utilization", raid.DefaultUtilization, "Per-disk utilization fraction in (0,1]")
	runCmd.Flags().Float64Var(&fileSizeMB, "file-size-mb", raid.DefaultFileSizeMB, "Representative transfer size for time estimates")
	runCmd.Flags().StringVar(&scanDir, "scan", "", "Folder to scan for media items (optional)")
	runCmd.Flags().StringVar(&reportsDir, "reports-dir", envDefault("RAIDSIM_REPORTS_DIR", "reports"), "Directory report CSVs are written into")
	runCmd.Flags().StringVar(&dbPath, "db", envDefault("RAIDSIM_DB", ""), "Optional sqlite database for persisted runs")

	rootCmd.AddCommand(runCmd)
}
