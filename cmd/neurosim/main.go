package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/neurosim/internal/analysis"
	"github.com/san-kum/neurosim/internal/config"
	"github.com/san-kum/neurosim/internal/export"
	"github.com/san-kum/neurosim/internal/neuro"
	"github.com/san-kum/neurosim/internal/storage"
	"github.com/san-kum/neurosim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir      string
	numSignals   int
	samplePeriod float64
	seed         int64
	strength     float64
	noise        string
	amplitude    float64
	fromDuration float64
	toX          float64
	toY          float64
	toZ          float64
	toDuration   float64
	// Config file
	configFile string
	// Preset name
	preset string
	// Print the full signal table after generating
	printTable bool
	// Channel selection for plot/analyze/export-svg
	channel int
	// Scatter axes
	xChannel int
	yChannel int
	// Sweep size
	sweepRuns int
	seedStart int64
	// SVG output
	svgOut    string
	svgWidth  int
	svgHeight int
)

// main wires up the neurosim CLI. Running without a subcommand opens the
// interactive preset browser.
func main() {
	rootCmd := &cobra.Command{
		Use:   "neurosim",
		Short: "neural signal synthesis lab",
		Run: func(cmd *cobra.Command, args []string) {
			viz.RunBrowser()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".neurosim", "data directory")

	generateCmd := &cobra.Command{
		Use:   "generate [mode]",
		Short: "generate a signal batch",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGenerate,
	}
	generateCmd.Flags().IntVar(&numSignals, "signals", neuro.DefaultNumSignals, "signals per batch")
	generateCmd.Flags().Float64Var(&samplePeriod, "period", neuro.DefaultSamplePeriod, "sample period")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	generateCmd.Flags().Float64Var(&strength, "strength", neuro.DefaultClusterStrength, "cluster strength (cluster mode)")
	generateCmd.Flags().StringVar(&noise, "noise", config.DefaultNoise, "noise type (trajectory mode)")
	generateCmd.Flags().Float64Var(&amplitude, "amplitude", neuro.DefaultNoiseAmplitude, "noise amplitude (trajectory mode)")
	generateCmd.Flags().Float64Var(&fromDuration, "from-duration", 0, "start pose duration")
	generateCmd.Flags().Float64Var(&toX, "to-x", 10, "end pose x")
	generateCmd.Flags().Float64Var(&toY, "to-y", 20, "end pose y")
	generateCmd.Flags().Float64Var(&toZ, "to-z", 30, "end pose z")
	generateCmd.Flags().Float64Var(&toDuration, "to-duration", 8, "end pose duration")
	generateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	generateCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	generateCmd.Flags().BoolVar(&printTable, "print", false, "print every signal")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run channels",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&channel, "channel", 0, "channel to plot (default: first six)")

	statsCmd := &cobra.Command{
		Use:   "stats [run_id]",
		Short: "channel statistics and correlations",
		Args:  cobra.ExactArgs(1),
		RunE:  statsRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&channel, "channel", 0, "channel to analyze")

	scatterCmd := &cobra.Command{
		Use:   "scatter [run_id]",
		Short: "channel-vs-channel scatter plot",
		Args:  cobra.ExactArgs(1),
		RunE:  scatterRun,
	}
	scatterCmd.Flags().IntVar(&xChannel, "x-channel", 0, "channel for the x-axis")
	scatterCmd.Flags().IntVar(&yChannel, "y-channel", 1, "channel for the y-axis")

	sweepCmd := &cobra.Command{
		Use:   "sweep [mode]",
		Short: "generate batches across consecutive seeds",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&sweepRuns, "runs", 8, "number of batches")
	sweepCmd.Flags().Int64Var(&seedStart, "seed-start", 1, "first seed")
	sweepCmd.Flags().IntVar(&numSignals, "signals", neuro.DefaultNumSignals, "signals per batch")
	sweepCmd.Flags().Float64Var(&samplePeriod, "period", neuro.DefaultSamplePeriod, "sample period")
	sweepCmd.Flags().Float64Var(&strength, "strength", neuro.DefaultClusterStrength, "cluster strength (cluster mode)")
	sweepCmd.Flags().StringVar(&noise, "noise", config.DefaultNoise, "noise type (trajectory mode)")
	sweepCmd.Flags().Float64Var(&amplitude, "amplitude", neuro.DefaultNoiseAmplitude, "noise amplitude (trajectory mode)")
	sweepCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	sweepCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	liveCmd := &cobra.Command{
		Use:   "live [mode]",
		Short: "stream signals with live visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&samplePeriod, "period", neuro.DefaultSamplePeriod, "sample period")
	liveCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	liveCmd.Flags().Float64Var(&strength, "strength", neuro.DefaultClusterStrength, "cluster strength (cluster mode)")
	liveCmd.Flags().StringVar(&noise, "noise", config.DefaultNoise, "noise type (trajectory mode)")
	liveCmd.Flags().Float64Var(&amplitude, "amplitude", neuro.DefaultNoiseAmplitude, "noise amplitude (trajectory mode)")
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "interactive preset browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunBrowser()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [mode]",
		Short: "list available presets for a mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for mode: %s\n", args[0])
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIGNALS\tPERIOD\tPARAMS")
			for _, name := range names {
				p := config.GetPreset(args[0], name)
				params := fmt.Sprintf("strength=%.2f", p.Strength)
				if args[0] == config.ModeTrajectory {
					params = fmt.Sprintf("noise=%s amp=%.1f", p.Noise, p.NoiseAmplitude)
				}
				fmt.Fprintf(w, "%s\t%d\t%.2fs\t%s\n", name, p.NumSignals, p.SamplePeriod, params)
			}
			return w.Flush()
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run signals to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSVRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSONRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render run channels to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVGRun,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "", "output path (default <run_id>.svg)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 960, "svg width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 480, "svg height")
	exportSVGCmd.Flags().IntVar(&channel, "channel", 0, "render a single channel")

	rootCmd.AddCommand(generateCmd, listCmd, plotCmd, statsCmd, analyzeCmd, scatterCmd, sweepCmd, liveCmd, browseCmd, presetsCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	gen := neuro.New(cfg.SamplePeriod)
	start, end := cfg.StartPose(), cfg.EndPose()

	fmt.Printf("generating %s batch...\n", cfg.Mode)
	began := time.Now()

	var batch neuro.Batch
	if cfg.Mode == config.ModeTrajectory {
		tc, err := cfg.TrajectoryConfig()
		if err != nil {
			return err
		}
		batch, err = gen.GenerateTrajectory(start, end, tc)
		if err != nil {
			return err
		}
	} else {
		batch, err = gen.GenerateCluster(start, end, cfg.ClusterConfig())
		if err != nil {
			return err
		}
	}
	elapsed := time.Since(began)

	runID, err := st.Save(metaFromConfig(cfg), batch)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("signals: %d\n", len(batch))

	fmt.Println("\nchannel means:")
	for _, s := range analysis.Summarize(batch) {
		fmt.Printf("  c%02d: %8.2f\n", s.Channel, s.Mean)
	}

	if printTable {
		fmt.Println()
		printBatch(batch)
	}

	return nil
}

func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	mode := ""
	if len(args) > 0 {
		mode = args[0]
	}

	if preset != "" {
		p := lookupPreset(mode, preset)
		if p == nil {
			available := append(config.ListPresets(config.ModeCluster), config.ListPresets(config.ModeTrajectory)...)
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, available)
		}
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if mode != "" {
		cfg.Mode = mode
	}

	flags := cmd.Flags()
	if flags.Changed("signals") {
		cfg.NumSignals = numSignals
	}
	if flags.Changed("period") {
		cfg.SamplePeriod = samplePeriod
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("strength") {
		cfg.Strength = strength
	}
	if flags.Changed("noise") {
		cfg.Noise = noise
	}
	if flags.Changed("amplitude") {
		cfg.NoiseAmplitude = amplitude
	}
	if flags.Changed("from-duration") {
		cfg.Start.Duration = fromDuration
	}
	if flags.Changed("to-x") {
		cfg.End.X = toX
	}
	if flags.Changed("to-y") {
		cfg.End.Y = toY
	}
	if flags.Changed("to-z") {
		cfg.End.Z = toZ
	}
	if flags.Changed("to-duration") {
		cfg.End.Duration = toDuration
	}

	if cfg.Mode != config.ModeCluster && cfg.Mode != config.ModeTrajectory {
		return nil, fmt.Errorf("unknown mode: %s", cfg.Mode)
	}
	return cfg, nil
}

func lookupPreset(mode, name string) *config.Config {
	if mode != "" {
		return config.GetPreset(mode, name)
	}
	for _, m := range []string{config.ModeCluster, config.ModeTrajectory} {
		if p := config.GetPreset(m, name); p != nil {
			return p
		}
	}
	return nil
}

func metaFromConfig(cfg *config.Config) storage.RunMetadata {
	meta := storage.RunMetadata{
		Mode:         cfg.Mode,
		Seed:         cfg.Seed,
		NumSignals:   cfg.NumSignals,
		SamplePeriod: cfg.SamplePeriod,
		Start:        storage.NewPoseRecord(cfg.StartPose()),
		End:          storage.NewPoseRecord(cfg.EndPose()),
	}
	if cfg.Mode == config.ModeTrajectory {
		meta.Noise = cfg.Noise
		meta.NoiseAmplitude = cfg.NoiseAmplitude
	} else {
		meta.Strength = cfg.Strength
	}
	return meta
}

func printBatch(batch neuro.Batch) {
	for i, sig := range batch {
		fmt.Printf("%4d:", i)
		for _, v := range sig {
			fmt.Printf(" %5d", v)
		}
		fmt.Println()
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODE\tTIME\tSIGNALS\tPERIOD\tSEED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2fs\t%d\n",
			run.ID,
			run.Mode,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.NumSignals,
			run.SamplePeriod,
			run.Seed,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	batch, err := st.LoadSignals(runID)
	if err != nil {
		return err
	}

	if len(batch) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("mode: %s\n", meta.Mode)
	fmt.Printf("signals: %d\n\n", len(batch))

	channels := []int{0, 1, 2, 3, 4, 5}
	if cmd.Flags().Changed("channel") {
		if channel < 0 || channel >= neuro.NumChannels {
			return fmt.Errorf("channel out of range: %d", channel)
		}
		channels = []int{channel}
	}

	for _, ch := range channels {
		caption := fmt.Sprintf("c%02d", ch)
		if meta.Mode == config.ModeCluster {
			caption = fmt.Sprintf("c%02d (%s)", ch, clusterName(ch))
		}

		graph := asciigraph.Plot(batch.Channel(ch),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func clusterName(ch int) string {
	for _, c := range neuro.DefaultClusters() {
		for _, member := range c.Channels {
			if member == ch {
				return c.Name
			}
		}
	}
	return "unmapped"
}

func statsRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	batch, err := st.LoadSignals(runID)
	if err != nil {
		return err
	}

	if len(batch) == 0 {
		return fmt.Errorf("no data")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CH\tCLUSTER\tMEAN\tSTD\tMIN\tMAX")
	for _, s := range analysis.Summarize(batch) {
		fmt.Fprintf(w, "c%02d\t%s\t%.2f\t%.2f\t%d\t%d\n",
			s.Channel, clusterName(s.Channel), s.Mean, s.Std, s.Min, s.Max)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\ncorrelation matrix:")
	m := analysis.CorrelationMatrix(batch)
	fmt.Print("     ")
	for ch := 0; ch < neuro.NumChannels; ch++ {
		fmt.Printf("%6s", fmt.Sprintf("c%02d", ch))
	}
	fmt.Println()
	for i, row := range m {
		fmt.Printf("c%02d ", i)
		for _, v := range row {
			fmt.Printf(" %5.2f", v)
		}
		fmt.Println()
	}

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	batch, err := st.LoadSignals(runID)
	if err != nil {
		return err
	}

	if len(batch) == 0 {
		return fmt.Errorf("no data")
	}
	if channel < 0 || channel >= neuro.NumChannels {
		return fmt.Errorf("channel out of range: %d", channel)
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("mode: %s, channel: c%02d\n\n", meta.Mode, channel)

	spectrum := analysis.ChannelSpectrum(batch, channel)
	if len(spectrum) < 8 {
		return fmt.Errorf("run too short for spectrum analysis")
	}

	plotData := spectrum[:len(spectrum)/4]
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("power spectrum (c%02d)", channel)),
	)
	fmt.Println(graph)
	fmt.Println()

	bin := analysis.DominantBin(spectrum)
	n := len(spectrum) * 2
	cycles := float64(bin) / float64(n)
	fmt.Printf("dominant bin: %d (%.4f cycles/signal)\n", bin, cycles)
	if meta.SamplePeriod > 0 {
		fmt.Printf("frequency: %.4f per time unit\n", cycles/meta.SamplePeriod)
	}

	return nil
}

func scatterRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	batch, err := st.LoadSignals(runID)
	if err != nil {
		return err
	}

	if len(batch) == 0 {
		return fmt.Errorf("no data to plot")
	}
	if xChannel < 0 || xChannel >= neuro.NumChannels || yChannel < 0 || yChannel >= neuro.NumChannels {
		return fmt.Errorf("channel out of range")
	}

	fmt.Printf("scatter: %s\n", meta.ID)
	fmt.Printf("x: c%02d (%s), y: c%02d (%s)\n\n", xChannel, clusterName(xChannel), yChannel, clusterName(yChannel))

	fmt.Print(viz.ScatterChart(batch.Channel(xChannel), batch.Channel(yChannel), 70, 20))
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	gen := neuro.New(cfg.SamplePeriod)
	ens := neuro.NewEnsemble(gen, sweepRuns, seedStart)
	start, end := cfg.StartPose(), cfg.EndPose()

	fmt.Printf("sweeping %d %s batches (seeds %d..%d)...\n",
		sweepRuns, cfg.Mode, seedStart, seedStart+int64(sweepRuns)-1)
	began := time.Now()

	var batches []neuro.Batch
	if cfg.Mode == config.ModeTrajectory {
		tc, err := cfg.TrajectoryConfig()
		if err != nil {
			return err
		}
		batches, err = ens.RunTrajectory(context.Background(), start, end, tc)
		if err != nil {
			return err
		}
	} else {
		batches, err = ens.RunCluster(context.Background(), start, end, cfg.ClusterConfig())
		if err != nil {
			return err
		}
	}
	elapsed := time.Since(began)

	acc := analysis.NewAccumulator()
	total := 0
	for _, b := range batches {
		for _, sig := range b {
			acc.Observe(sig)
		}
		total += len(b)
	}

	fmt.Printf("completed in %v (%d signals)\n\n", elapsed, total)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CH\tMEAN\tSTD\tMIN\tMAX")
	for _, s := range acc.Summary() {
		fmt.Fprintf(w, "c%02d\t%.2f\t%.2f\t%d\t%d\n", s.Channel, s.Mean, s.Std, s.Min, s.Max)
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	return viz.RunLive(cfg)
}

func exportCSVRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	batch, err := st.LoadSignals(args[0])
	if err != nil {
		return err
	}

	if len(batch) == 0 {
		return fmt.Errorf("no data to export")
	}

	return storage.WriteCSV(os.Stdout, batch)
}

func exportJSONRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	batch, err := st.LoadSignals(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(*meta, batch)
}

func exportSVGRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	batch, err := st.LoadSignals(runID)
	if err != nil {
		return err
	}

	var svg string
	if cmd.Flags().Changed("channel") {
		if channel < 0 || channel >= neuro.NumChannels {
			return fmt.Errorf("channel out of range: %d", channel)
		}
		svg = export.ChannelToSVG(batch, channel, svgWidth, svgHeight, "#00ff88")
	} else {
		svg = export.BatchToSVG(batch, svgWidth, svgHeight)
	}
	if svg == "" {
		return fmt.Errorf("not enough data to render")
	}

	out := svgOut
	if out == "" {
		out = runID + ".svg"
	}
	if err := os.WriteFile(out, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", out)
	return nil
}
