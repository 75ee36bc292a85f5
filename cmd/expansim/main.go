package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/expansim/internal/config"
	"github.com/san-kum/expansim/internal/control"
	"github.com/san-kum/expansim/internal/cosmos"
	"github.com/san-kum/expansim/internal/snapshot"
	"github.com/san-kum/expansim/internal/store"
	"github.com/san-kum/expansim/internal/viz"
)

var (
	snapshotDir string
	configFile  string
	preset      string
	law         string
	particles   int
	spread      float64
	seed        int64
	dt          float64
	growthRate  float64
	dotSize     int
	frameRate   int
	duration    float64
	saveEvery   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "expansim",
		Short: "2d cosmological expansion visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the live view when no command is given.
			return runLive(cmd, args)
		},
	}
	rootCmd.PersistentFlags().StringVar(&snapshotDir, "snapshots", "snapshots", "snapshot directory")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal visualization",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFrameRate, "frame rate")
	liveCmd.Flags().IntVar(&dotSize, "dot-size", config.DefaultDotSize, "dot radius")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and snapshot the result",
		RunE:  runHeadless,
	}
	addSimFlags(runCmd)
	runCmd.Flags().Float64Var(&duration, "time", 10.0, "duration in simulated seconds")
	runCmd.Flags().IntVar(&saveEvery, "save-every", 0, "snapshot every n steps (0 disables)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved snapshots",
		RunE:  listSnapshots,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(liveCmd, runCmd, listCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&law, "law", "linear", "growth law")
	cmd.Flags().IntVar(&particles, "particles", config.DefaultParticles, "number of particles")
	cmd.Flags().Float64Var(&spread, "spread", config.DefaultSpread, "initial field half-extent")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&growthRate, "growth", config.DefaultGrowthRate, "expansion rate")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig merges preset < config file < explicit flags, the same
// precedence for every command.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("law") {
		cfg.Law = law
	}
	if cmd.Flags().Changed("particles") {
		cfg.Particles = particles
	}
	if cmd.Flags().Changed("spread") {
		cfg.Spread = spread
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("growth") {
		cfg.GrowthRate = growthRate
	}
	if f := cmd.Flags().Lookup("dot-size"); f != nil && f.Changed {
		cfg.DotSize = dotSize
	}
	if f := cmd.Flags().Lookup("fps"); f != nil && f.Changed {
		cfg.FrameRate = frameRate
	}
	if cmd.Root().PersistentFlags().Changed("snapshots") {
		cfg.SnapshotDir = snapshotDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup builds the simulation pieces shared by live and headless runs.
// Configuration errors here are fatal by design.
func setup(cfg *config.Config) (*store.Store, *cosmos.Engine, *snapshot.Writer, error) {
	field := cosmos.RandomField(cfg.Particles, cfg.Spread, cfg.GrowthRate, cfg.Seed)
	if err := cosmos.ValidateField(field); err != nil {
		return nil, nil, nil, err
	}

	growth, err := cosmos.GetLaw(cfg.Law, cfg.GrowthRate)
	if err != nil {
		return nil, nil, nil, err
	}

	writer := snapshot.NewWriter(cfg.SnapshotDir)
	if err := writer.Init(); err != nil {
		return nil, nil, nil, err
	}

	return store.New(cosmos.NewState(field)), cosmos.NewEngine(growth), writer, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st, eng, writer, err := setup(cfg)
	if err != nil {
		return err
	}

	surface := control.New(st, writer, cfg.DotSize)
	m := viz.NewModel(st, eng, surface, cfg.Dt, cfg.FrameRate)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st, eng, writer, err := setup(cfg)
	if err != nil {
		return err
	}
	surface := control.New(st, writer, cfg.DotSize)

	steps := int(duration / cfg.Dt)
	history := make([]float64, 0, steps)
	saved := 0

	fmt.Printf("running %d particles for %d steps (dt=%.4f, growth=%.4f)\n",
		cfg.Particles, steps, cfg.Dt, cfg.GrowthRate)
	start := time.Now()

	for i := 0; i < steps; i++ {
		next, err := eng.Advance(st.View(), cfg.Dt)
		if err != nil {
			return err
		}
		st.Apply(next)
		history = append(history, next.ScaleFactor)

		if saveEvery > 0 && next.Steps%saveEvery == 0 {
			res := surface.Handle(control.Save)
			if res.Err != nil {
				// Snapshot failures never stop the run.
				fmt.Fprintf(os.Stderr, "warning: %v\n", res.Err)
			} else {
				saved++
			}
		}
	}

	res := surface.Handle(control.Save)
	if res.Err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", res.Err)
	} else {
		saved++
	}

	final := st.View()
	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("final scale factor: %.6f\n", final.ScaleFactor)
	fmt.Printf("snapshots written: %d\n", saved)
	if res.SnapshotPath != "" {
		fmt.Printf("final snapshot: %s\n", res.SnapshotPath)
	}

	if len(history) > 1 {
		fmt.Println()
		graph := asciigraph.Plot(history,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("scale factor vs step"),
		)
		fmt.Println(graph)
	}

	return nil
}

func listSnapshots(cmd *cobra.Command, args []string) error {
	writer := snapshot.NewWriter(snapshotDir)
	paths, err := writer.List()
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		fmt.Println("no snapshots found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tSTEP\tTIME\tSCALE\tPARTICLES")

	for _, path := range paths {
		snap, err := snapshot.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%.2fs\t%.4f\t%d\n",
			path,
			snap.StepCount,
			snap.ElapsedTime,
			snap.ScaleFactor,
			len(snap.Particles),
		)
	}

	return w.Flush()
}
