package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/shootlab/internal/analysis"
	"github.com/san-kum/shootlab/internal/config"
	"github.com/san-kum/shootlab/internal/export"
	"github.com/san-kum/shootlab/internal/storage"
	"github.com/san-kum/shootlab/internal/tui"
)

var (
	dataDir      string
	lambda       float64
	terminalTime float64
	xT           float64
	theta0       float64
	theta1       float64
	samples      int
	configFile   string
	preset       string
	// Sweep window
	thetaMin   float64
	thetaMax   float64
	sweepSteps int
	// SVG output
	svgOut    string
	svgWidth  int
	svgHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shootlab",
		Short: "interactive shooting method demo for a linear boundary value problem",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.RunInteractive(cfg, dataDir)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".shootlab", "data directory")

	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "evaluate the shooting residual at both guesses and theta*",
		RunE:  evalResiduals,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the exact solution and the trial shots",
		RunE:  plotCurves,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "plot the residual F(theta) over a theta window",
		RunE:  sweepResidual,
	}
	sweepCmd.Flags().Float64Var(&thetaMin, "theta-min", 0, "sweep window lower bound")
	sweepCmd.Flags().Float64Var(&thetaMax, "theta-max", 0, "sweep window upper bound")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 200, "sweep grid points")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "evaluate and persist a run",
		RunE:  runEvaluation,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run curves to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run curves to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "write the demo figure as SVG",
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "shootlab.svg", "output file")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "figure width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 500, "figure height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			if len(names) == 0 {
				fmt.Println("no presets")
				return nil
			}
			fmt.Println("presets:")
			for _, name := range names {
				cfg := config.GetPreset(name)
				fmt.Printf("  %-8s lambda=%g T=%g x_T=%g theta0=%g theta1=%g\n",
					name, cfg.Lambda, cfg.T, cfg.XT, cfg.Theta0, cfg.Theta1)
			}
			return nil
		},
	}

	for _, cmd := range []*cobra.Command{rootCmd, evalCmd, plotCmd, sweepCmd, runCmd, exportSVGCmd} {
		addProblemFlags(cmd)
	}

	rootCmd.AddCommand(evalCmd, plotCmd, sweepCmd, runCmd, listCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addProblemFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&lambda, "lambda", config.DefaultLambda, "growth rate lambda")
	cmd.Flags().Float64Var(&terminalTime, "terminal-time", config.DefaultT, "terminal time T")
	cmd.Flags().Float64Var(&xT, "xt", config.DefaultXT, "terminal value x_T")
	cmd.Flags().Float64Var(&theta0, "theta0", config.DefaultTheta0, "first initial guess")
	cmd.Flags().Float64Var(&theta1, "theta1", config.DefaultTheta1, "second initial guess")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "plot grid points")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")
}

// resolveConfig applies preset, then config file, then changed CLI flags.
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

	if cmd.Flags().Changed("lambda") {
		cfg.Lambda = lambda
	}
	if cmd.Flags().Changed("terminal-time") {
		cfg.T = terminalTime
	}
	if cmd.Flags().Changed("xt") {
		cfg.XT = xT
	}
	if cmd.Flags().Changed("theta0") {
		cfg.Theta0 = theta0
	}
	if cmd.Flags().Changed("theta1") {
		cfg.Theta1 = theta1
	}
	if cmd.Flags().Changed("samples") && samples >= 2 {
		cfg.Samples = samples
	}

	return cfg, nil
}

func evalResiduals(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	p := cfg.Problem()
	eval := p.Evaluate(cfg.Theta0, cfg.Theta1)

	fmt.Printf("x'(t) = %g*x(t), x(%g) = %g\n", p.Lambda, p.T, p.XT)
	fmt.Println("F(theta) = theta*exp(lambda*T) - x_T")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GUESS\tTHETA\tF(THETA)")
	fmt.Fprintf(w, "theta0\t%.6f\t%.6f\n", eval.Theta0, eval.F0)
	fmt.Fprintf(w, "theta1\t%.6f\t%.6f\n", eval.Theta1, eval.F1)
	fmt.Fprintf(w, "theta* (exact)\t%.6f\t%.6f\n", eval.ThetaStar, eval.FStar)
	return w.Flush()
}

func plotCurves(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	p := cfg.Problem()
	shots := p.Shots(cfg.Theta0, cfg.Theta1, cfg.Samples)

	data := make([][]float64, len(shots))
	for i, shot := range shots {
		data[i] = shot.Curve.Values
	}

	graph := asciigraph.PlotMany(data,
		asciigraph.Height(18),
		asciigraph.Width(80),
		asciigraph.Caption("x(t) = theta*exp(lambda*t), t in [0, T]"),
		asciigraph.SeriesColors(
			asciigraph.White,
			asciigraph.Goldenrod,
			asciigraph.Orchid,
			asciigraph.Green,
		),
	)
	fmt.Println(graph)
	fmt.Println()

	for _, shot := range shots {
		fmt.Printf("  %-16s theta=%12.6f  F(theta)=%12.6f\n", shot.Label, shot.Theta, shot.Residual)
	}
	fmt.Printf("  terminal condition: x(%g) = %g\n", p.T, p.XT)

	return nil
}

func sweepResidual(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	p := cfg.Problem()

	min, max := thetaMin, thetaMax
	if !cmd.Flags().Changed("theta-min") && !cmd.Flags().Changed("theta-max") {
		min, max = analysis.Window(p, cfg.Theta0, cfg.Theta1)
	}

	points := analysis.ResidualSweep(p, min, max, sweepSteps)
	residuals := make([]float64, len(points))
	for i, pt := range points {
		residuals[i] = pt.Residual
	}

	graph := asciigraph.Plot(residuals,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("F(theta), theta in [%.3f, %.3f]", min, max)),
	)
	fmt.Println(graph)
	fmt.Println()

	fmt.Printf("theta* (exact): %.6f\n", p.ExactTheta())
	if lo, hi, ok := analysis.Bracket(points); ok {
		fmt.Printf("sign change: F(%.6f)=%.6f, F(%.6f)=%.6f\n", lo.Theta, lo.Residual, hi.Theta, hi.Residual)
	} else {
		fmt.Println("no sign change inside the swept window")
	}

	return nil
}

func runEvaluation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	p := cfg.Problem()
	eval := p.Evaluate(cfg.Theta0, cfg.Theta1)
	shots := p.Shots(cfg.Theta0, cfg.Theta1, cfg.Samples)

	runID, err := st.Save(p, eval, cfg.Samples, shots)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("theta*: %.6f\n", eval.ThetaStar)
	fmt.Println("\nresiduals:")
	fmt.Printf("  F(theta0): %.6f\n", eval.F0)
	fmt.Printf("  F(theta1): %.6f\n", eval.F1)
	fmt.Printf("  F(theta*): %.6f\n", eval.FStar)

	return nil
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
	fmt.Fprintln(w, "ID\tTIME\tLAMBDA\tT\tX_T\tTHETA0\tTHETA1\tTHETA*")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\t%g\t%g\t%.4f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Lambda,
			run.T,
			run.XT,
			run.Theta0,
			run.Theta1,
			run.ThetaStar,
		)
	}

	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	labels, times, series, err := st.LoadCurves(args[0])
	if err != nil {
		return err
	}

	if len(times) == 0 {
		return fmt.Errorf("no data to export")
	}

	return storage.ExportCSV(os.Stdout, labels, times, series)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	labels, times, series, err := st.LoadCurves(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, labels, times, series)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	p := cfg.Problem()
	shots := p.Shots(cfg.Theta0, cfg.Theta1, cfg.Samples)
	curves, points := export.ShotFigure(p, shots)

	if err := export.WriteSVG(svgOut, curves, points, svgWidth, svgHeight); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", svgOut)
	return nil
}
