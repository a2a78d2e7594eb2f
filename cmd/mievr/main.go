package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/mievr/internal/config"
	"github.com/san-kum/mievr/internal/export"
	"github.com/san-kum/mievr/internal/perturb"
	"github.com/san-kum/mievr/internal/storage"
	"github.com/san-kum/mievr/internal/viz"
)

var (
	dataDir string
	preset  string
	term    string
	outFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mievr",
		Short: "SAFT-VR Mie perturbation-term calculator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".mievr", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [input.yaml]",
		Short: "evaluate perturbation terms for an input deck",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDeck,
	}
	runCmd.Flags().StringVar(&preset, "preset", "", "use a preset deck instead of a file")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&term, "term", "a1", "perturbation term to plot (a1 or a2)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run results as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run results as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSVRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a term-vs-density plot as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVGRun,
	}
	exportSVGCmd.Flags().StringVar(&term, "term", "a1", "perturbation term to plot (a1 or a2)")
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output file (default <run_id>_<term>.svg)")

	liveCmd := &cobra.Command{
		Use:   "live [input.yaml]",
		Short: "interactive sweep viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&preset, "preset", "", "use a preset deck instead of a file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset decks",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportSVGCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadDeck resolves the --preset flag against the positional file arg.
func loadDeck(args []string) (*config.Deck, string, error) {
	if preset != "" {
		d := config.GetPreset(preset)
		if d == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
		return d, "preset:" + preset, nil
	}
	if len(args) == 0 {
		return nil, "", fmt.Errorf("an input file or --preset is required")
	}
	d, err := config.Load(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("failed to load input: %w", err)
	}
	return d, args[0], nil
}

func runDeck(cmd *cobra.Command, args []string) error {
	deck, inputName, err := loadDeck(args)
	if err != nil {
		return err
	}

	mol, err := deck.Molecule()
	if err != nil {
		return err
	}

	fmt.Printf("segment diameter:    %g Å\n", mol.SegmentDiameter)
	fmt.Printf("potential depth:     %g K\n", mol.PotentialDepth)
	fmt.Printf("repulsive exponent:  %g\n", mol.RepulsiveExponent)
	fmt.Printf("attractive exponent: %g\n", mol.AttractiveExponent)
	fmt.Printf("segments per chain:  %g\n", mol.Segments)
	fmt.Printf("molar mass:          %g g/mol\n", mol.MolarMass)
	fmt.Printf("temperatures:        %v K\n", []float64(deck.Temperature))
	fmt.Printf("densities:           %v kg/m³\n", []float64(deck.Density))

	eval, err := perturb.Derive(mol)
	if err != nil {
		return err
	}

	points := deck.Grid().Points()
	fmt.Printf("\nevaluating %d state points...\n", len(points))
	start := time.Now()

	results, err := eval.EvaluateAll(context.Background(), points)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	label := deck.OutputFilename
	if label == "" {
		label = "run"
	}
	runID, err := st.Save(label, mol, results)
	if err != nil {
		return err
	}

	outPath := label + ".csv"
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := export.WriteCSV(f, inputName, mol, results); err != nil {
		return err
	}

	warnings := 0
	for _, r := range results {
		if r.NearClosePacking {
			warnings++
		}
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("results written to %s\n", outPath)
	if warnings > 0 {
		fmt.Printf("warning: %d point(s) beyond the close-packing boundary (η ≥ π/(3√2))\n", warnings)
	}

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
	fmt.Fprintln(w, "ID\tLABEL\tTIME\tPOINTS\tWARNINGS\tλR\tλA")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%g\t%g\n",
			run.ID,
			run.Label,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Points,
			run.Warnings,
			run.Molecule.RepulsiveExponent,
			run.Molecule.AttractiveExponent,
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
	results, err := st.LoadResults(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("points: %d\n\n", len(results))

	graph, err := viz.RenderTerm(results, meta.Molecule, term)
	if err != nil {
		return err
	}
	fmt.Println(graph)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	results, err := st.LoadResults(runID)
	if err != nil {
		return err
	}

	return export.WriteJSON(os.Stdout, meta.Label, meta.Molecule, results)
}

func exportCSVRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	results, err := st.LoadResults(runID)
	if err != nil {
		return err
	}

	return export.WriteCSV(os.Stdout, meta.Label, meta.Molecule, results)
}

func exportSVGRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	results, err := st.LoadResults(runID)
	if err != nil {
		return err
	}

	points := make([]struct{ X, Y float64 }, len(results))
	for i, r := range results {
		points[i].X = r.Point.Density
		switch term {
		case "a1":
			points[i].Y = r.A1
		case "a2":
			points[i].Y = r.A2
		default:
			return fmt.Errorf("unknown term: %s", term)
		}
	}

	svg := export.SweepSVG(points, 640, 400, "#00ff88")
	if svg == "" {
		return fmt.Errorf("not enough points to plot")
	}

	path := outFile
	if path == "" {
		path = filepath.Clean(runID + "_" + term + ".svg")
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	deck, _, err := loadDeck(args)
	if err != nil {
		return err
	}

	mol, err := deck.Molecule()
	if err != nil {
		return err
	}
	eval, err := perturb.Derive(mol)
	if err != nil {
		return err
	}

	m := viz.NewModel(eval, []float64(deck.Density), deck.Temperature[0])
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
