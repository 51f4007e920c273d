package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quiverlabs/quiver"
	"github.com/quiverlabs/quiver/pkg/config"
	"github.com/quiverlabs/quiver/pkg/json"
	"github.com/quiverlabs/quiver/pkg/logger"
	"github.com/quiverlabs/quiver/pkg/models"
	"github.com/quiverlabs/quiver/pkg/pool"
	"github.com/quiverlabs/quiver/pkg/sequence"
)

func main() {
	root := &cobra.Command{
		Use:   "quiver",
		Short: "Quiver - reusable-memory primitives for data point sequences",
		Long: `Quiver is a library of reusable-memory primitives: object pools, a swap-based
double buffer, a flat index-range arena, and an append-only data point sequence.
The CLI exposes the library surface plus a small streaming demo of the core.`,
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newStreamCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Quiver v%s\n", quiver.Version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <left> <right>",
		Short: "Add two numbers together",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid left operand %q: %w", args[0], err)
			}
			right, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid right operand %q: %w", args[1], err)
			}
			fmt.Println(quiver.Add(left, right))
			return nil
		},
	}
}

func newGenerateCmd() *cobra.Command {
	var count int
	var format string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random data points and output as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}
			if count == 1 {
				data, err := json.MarshalPoint(models.NewRandomPoint())
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			data, err := json.MarshalPoints(models.NewRandomPoints(count), format)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 1, "Number of points to generate")
	cmd.Flags().StringVar(&format, "format", json.FormatArray, "Multi-point output format (array or lines)")
	return cmd
}

func newEncodeCmd() *cobra.Command {
	var id uint64
	var value float64
	var timestamp string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Convert a data point to JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := json.MarshalPoint(models.NewDataPoint(id, value, timestamp))
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().Uint64Var(&id, "id", 0, "ID of the data point")
	cmd.Flags().Float64Var(&value, "value", 0, "Value of the data point")
	cmd.Flags().StringVar(&timestamp, "timestamp", "", "Timestamp of the data point (ISO 8601 format)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("value")
	_ = cmd.MarkFlagRequired("timestamp")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <json>",
		Short: "Parse a JSON string and display the data point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := json.UnmarshalPoint([]byte(args[0]))
			if err != nil {
				return err
			}
			fmt.Printf("ID: %d\n", p.ID)
			fmt.Printf("Value: %g\n", p.Value)
			fmt.Printf("Timestamp: %s\n", p.Timestamp)
			return nil
		},
	}
}

func newStreamCmd() *cobra.Command {
	var configFile string
	var steps, pointsPerStep int

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Run a producer/consumer demo over the core primitives",
		Long: `Stream generates random data points step by step: each step stages points
into a double buffer's back buffer, swaps, appends the committed front into an
append-only sequence, and updates. The full history is printed at the end.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configFile != "" {
				if err := config.Load(configFile, cfg); err != nil {
					return fmt.Errorf("configuration error: %w", err)
				}
			}
			if cmd.Flags().Changed("steps") {
				cfg.Steps = steps
			}
			if cmd.Flags().Changed("points-per-step") {
				cfg.PointsPerStep = pointsPerStep
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}

			if err := logger.Init(logger.Config{
				Level:       cfg.Logging.Level,
				Development: cfg.Logging.Development,
				Encoding:    cfg.Logging.Encoding,
			}); err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return runStream(cfg)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to YAML configuration file")
	cmd.Flags().IntVar(&steps, "steps", 5, "Number of commit cycles to run")
	cmd.Flags().IntVar(&pointsPerStep, "points-per-step", 3, "Random points staged per step")
	return cmd
}

// runStream drives the full producer/consumer cycle: double buffer as the
// staging area, append-only sequence as the committed history.
func runStream(cfg *config.Config) error {
	log := logger.With(
		zap.String("component", "quiver-cli"),
		zap.Int("buffer_size", cfg.BufferSize),
		zap.Int("range_capacity", cfg.RangeCapacity),
	)

	buf := pool.NewDoubleBuffer[models.DataPoint](cfg.PoolCapacity)
	seq := sequence.New(cfg.BufferSize, cfg.RangeCapacity)

	log.Info("starting stream",
		zap.Int("steps", cfg.Steps),
		zap.Int("points_per_step", cfg.PointsPerStep))
	startTime := time.Now()

	for step := 0; step < cfg.Steps; step++ {
		// Producer phase: stage into the back buffer.
		buf.Append(models.NewRandomPoints(cfg.PointsPerStep)...)

		// Commit: the staged points become the readable front.
		buf.Swap()

		// Consumer phase: append the committed front to the history.
		if err := seq.AddPoints(buf.Front()); err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}
		seq.Update()

		log.Debug("step committed",
			zap.Int("step", seq.Step()),
			zap.Int("history_len", seq.Len()),
			zap.Int("pool_available", buf.PoolAvailable()))
	}

	duration := time.Since(startTime)
	log.Info("stream completed",
		zap.Int("steps", seq.Step()),
		zap.Int("history_len", seq.Len()),
		zap.Duration("duration", duration))

	data, err := json.MarshalPoints(seq.Current(), json.FormatLines)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
