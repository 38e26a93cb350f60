package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/slopefield/internal/config"
	"github.com/san-kum/slopefield/internal/euler"
	"github.com/san-kum/slopefield/internal/field"
	"github.com/san-kum/slopefield/internal/formula"
	"github.com/san-kum/slopefield/internal/render"
	"github.com/san-kum/slopefield/internal/storage"
	"github.com/san-kum/slopefield/internal/viz"
)

var (
	dataDir    string
	step       float64
	x0         float64
	y0         float64
	xEnd       float64
	precision  int
	format     string
	configFile string
	preset     string
	saveRun    bool
	// Direction field
	xMin  float64
	yMin  float64
	xMax  float64
	yMax  float64
	xGrid float64
	yGrid float64
	// Curve overlay
	withCurve bool
	curveStep float64
	curveX0   float64
	curveY0   float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "slopefield",
		Short: "euler method tables and direction fields for y' = f(x,y)",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".slopefield", "data directory")

	tableCmd := &cobra.Command{
		Use:   "table [formula]",
		Short: "integrate and print the step table",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTable,
	}
	addRunFlags(tableCmd)
	tableCmd.Flags().StringVar(&format, "format", "table", "output format: table, latex, csv, csv-segments")
	tableCmd.Flags().BoolVar(&saveRun, "save", false, "persist the run to the data directory")

	fieldCmd := &cobra.Command{
		Use:   "field [formula]",
		Short: "print a tikz direction field",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runField,
	}
	fieldCmd.Flags().Float64Var(&xMin, "x-min", 0, "domain x minimum")
	fieldCmd.Flags().Float64Var(&yMin, "y-min", 0, "domain y minimum")
	fieldCmd.Flags().Float64Var(&xMax, "x-max", 10, "domain x maximum")
	fieldCmd.Flags().Float64Var(&yMax, "y-max", 10, "domain y maximum")
	fieldCmd.Flags().Float64Var(&xGrid, "x-grid", config.DefaultXGrid, "sample spacing along x")
	fieldCmd.Flags().Float64Var(&yGrid, "y-grid", config.DefaultYGrid, "sample spacing along y (drawing units)")
	fieldCmd.Flags().IntVar(&precision, "precision", config.DefaultPrecision, "rounding precision")
	fieldCmd.Flags().BoolVar(&withCurve, "curve", false, "overlay an euler approximation curve")
	fieldCmd.Flags().Float64Var(&curveStep, "curve-step", 0, "curve step size (required with --curve)")
	fieldCmd.Flags().Float64Var(&curveX0, "curve-x0", 0, "curve initial x (default: x-min)")
	fieldCmd.Flags().Float64Var(&curveY0, "curve-y0", 0, "curve initial y (default: y-min)")
	fieldCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	fieldCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	plotCmd := &cobra.Command{
		Use:   "plot [formula]",
		Short: "integrate and draw an ascii graph of y",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlot,
	}
	addRunFlags(plotCmd)

	liveCmd := &cobra.Command{
		Use:   "live [formula]",
		Short: "step the integration live in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "render a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().StringVar(&format, "format", "table", "output format: table, latex, csv, csv-segments")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export saved run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("%-10s y' = %s\n", name, p.Formula)
			}
			return nil
		},
	}

	rootCmd.AddCommand(tableCmd, fieldCmd, plotCmd, liveCmd, listCmd, showCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&step, "step", config.DefaultStep, "step size")
	cmd.Flags().Float64Var(&x0, "x0", 0, "initial x")
	cmd.Flags().Float64Var(&y0, "y0", 0, "initial y")
	cmd.Flags().Float64Var(&xEnd, "x-end", config.DefaultXEnd, "final x")
	cmd.Flags().IntVar(&precision, "precision", config.DefaultPrecision, "rounding precision")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveRun merges preset, config file, and flags into the run settings.
// Precedence: preset first, config file over preset, explicitly-set flags
// over everything.
func resolveRun(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Formula = args[0]
	}
	if cfg.Formula == "" {
		return nil, fmt.Errorf("no formula given (argument, --config, or --preset)")
	}

	flagChanged := cmd.Flags().Changed
	if flagChanged("step") {
		cfg.Step = step
	}
	if flagChanged("x0") {
		cfg.X0 = x0
	}
	if flagChanged("y0") {
		cfg.Y0 = y0
	}
	if flagChanged("x-end") {
		cfg.XEnd = xEnd
	}
	if flagChanged("precision") {
		cfg.Precision = precision
	}
	if cmd.Flags().Lookup("format") != nil && flagChanged("format") {
		cfg.Format = format
	}
	return cfg, nil
}

func integrate(cfg *config.Config) ([]euler.Step, error) {
	f, err := formula.Compile(cfg.Formula)
	if err != nil {
		return nil, err
	}
	return euler.Run(f.Eval, cfg.Step, cfg.X0, cfg.Y0, cfg.XEnd, cfg.Precision)
}

func renderSteps(steps []euler.Step, format string, precision int) error {
	switch format {
	case "table":
		return render.Table(os.Stdout, steps, precision)
	case "latex":
		return render.LaTeX(os.Stdout, steps, precision)
	case "csv":
		return render.CSV(os.Stdout, steps, precision)
	case "csv-segments":
		return render.CSVSegments(os.Stdout, steps, precision)
	default:
		return fmt.Errorf("unknown format: %s (use table, latex, csv, csv-segments)", format)
	}
}

func runTable(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRun(cmd, args)
	if err != nil {
		return err
	}

	steps, err := integrate(cfg)
	if err != nil {
		return err
	}

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(storage.RunMetadata{
			Formula:   cfg.Formula,
			Step:      cfg.Step,
			X0:        cfg.X0,
			Y0:        cfg.Y0,
			XEnd:      cfg.XEnd,
			Precision: cfg.Precision,
		}, steps)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "saved run %s\n", runID)
	}

	return renderSteps(steps, cfg.Format, cfg.Precision)
}

func runField(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRun(cmd, args)
	if err != nil {
		return err
	}

	flagChanged := cmd.Flags().Changed
	if flagChanged("x-min") {
		cfg.Field.XMin = xMin
	}
	if flagChanged("y-min") {
		cfg.Field.YMin = yMin
	}
	if flagChanged("x-max") {
		cfg.Field.XMax = xMax
	}
	if flagChanged("y-max") {
		cfg.Field.YMax = yMax
	}
	if flagChanged("x-grid") {
		cfg.Field.XGrid = xGrid
	}
	if flagChanged("y-grid") {
		cfg.Field.YGrid = yGrid
	}

	d := field.Domain{
		XMin: cfg.Field.XMin,
		YMin: cfg.Field.YMin,
		XMax: cfg.Field.XMax,
		YMax: cfg.Field.YMax,
	}
	grid := field.Grid{XStep: cfg.Field.XGrid, YStep: cfg.Field.YGrid}

	f, err := formula.Compile(cfg.Formula)
	if err != nil {
		return err
	}

	proj, err := field.NewProjection(d)
	if err != nil {
		return err
	}

	segs, err := field.Sample(f.Eval, d, grid)
	if err != nil {
		return err
	}

	var points []field.Point
	if withCurve || cfg.Curve != nil {
		curve := field.DefaultCurve(d, 0)
		if cfg.Curve != nil {
			curve.Step = cfg.Curve.Step
			curve.X0 = cfg.Curve.X0
			curve.Y0 = cfg.Curve.Y0
		}
		if flagChanged("curve-step") {
			curve.Step = curveStep
		}
		if flagChanged("curve-x0") {
			curve.X0 = curveX0
		}
		if flagChanged("curve-y0") {
			curve.Y0 = curveY0
		}
		if curve.Step <= 0 {
			return fmt.Errorf("--curve requires an explicit positive --curve-step")
		}
		points, err = field.Overlay(f.Eval, d, curve, cfg.Precision)
		if err != nil {
			return err
		}
	}

	return render.TikZ(os.Stdout, proj, d, segs, points, cfg.Precision)
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRun(cmd, args)
	if err != nil {
		return err
	}
	steps, err := integrate(cfg)
	if err != nil {
		return err
	}
	fmt.Println(viz.Plot(steps, fmt.Sprintf("y' = %s", cfg.Formula)))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRun(cmd, args)
	if err != nil {
		return err
	}
	f, err := formula.Compile(cfg.Formula)
	if err != nil {
		return err
	}
	// Run the integration once up front so bad parameters fail before the
	// terminal is taken over.
	if _, err := euler.Run(f.Eval, cfg.Step, cfg.X0, cfg.Y0, cfg.XEnd, cfg.Precision); err != nil {
		return err
	}

	m := viz.NewModel(f.Eval, cfg.Formula, cfg.Step, cfg.X0, cfg.Y0, cfg.XEnd, cfg.Precision)
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
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
	fmt.Fprintln(w, "ID\tFORMULA\tTIME\tSTEP\tX0\tY0\tX_END\tPREC\tRECORDS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%g\t%g\t%g\t%d\t%d\n",
			run.ID,
			run.Formula,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Step,
			run.X0,
			run.Y0,
			run.XEnd,
			run.Precision,
			run.Records,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	steps, err := st.LoadSteps(args[0])
	if err != nil {
		return err
	}
	return renderSteps(steps, format, meta.Precision)
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
