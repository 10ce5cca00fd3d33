package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"enbx2html"
	"enbx2html/enbxdoc"
	"enbx2html/report"
)

var (
	outputDir string
	showInfo  bool
	ocrLang   string
	useOCR    bool
	verbose   bool
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "enbx2html <input.enbx>",
	Short: "Convert EasiNote courseware (.enbx) to a navigable HTML presentation",
	Long: `enbx2html unpacks an EasiNote courseware container, parses its board
geometry, resource manifest and slide definitions, and generates a
self-contained index.html with client-side slide navigation.

The input may also be an already-unpacked package directory.`,
	Args: cobra.ExactArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]

		conv := enbx2html.Open(input)
		if outputDir != "" {
			conv = conv.OutputDir(outputDir)
		}

		if showInfo {
			return runInfo(conv)
		}

		conv = conv.WithReporter(report.NewConsole(os.Stdout))
		if useOCR {
			conv = conv.WithOCR(ocrLang)
		}

		result, warnings, err := conv.Convert()
		if err != nil {
			return classifyError(err)
		}
		for _, w := range warnings {
			slog.Warn(w.String())
		}
		slog.Debug("conversion finished",
			"slides", result.SlideCount,
			"copied", len(result.CopiedResources),
			"output", result.OutputDir)
		return nil
	},
	SilenceUsage: true,
}

// runInfo prints the parse-only summary and writes no output files.
func runInfo(conv *enbx2html.Converter) error {
	info, err := conv.Info()
	if err != nil {
		return classifyError(err)
	}

	for _, field := range info.Metadata.Fields() {
		fmt.Printf("%s: %s\n", field[0], field[1])
	}
	fmt.Printf("Board: %g x %g\n", info.Board.Width, info.Board.Height)
	fmt.Printf("Slides: %d\n", info.SlideCount)
	fmt.Printf("Resources: %d\n", info.ResourceCount)
	return nil
}

// classifyError prefixes fatal pipeline errors with their kind so the
// console message names what actually broke.
func classifyError(err error) error {
	switch {
	case errors.Is(err, enbxdoc.ErrArchive):
		return fmt.Errorf("unpack failed: %w", err)
	case errors.Is(err, enbxdoc.ErrBoard):
		return fmt.Errorf("board descriptor invalid: %w", err)
	case errors.Is(err, enbxdoc.ErrReference):
		return fmt.Errorf("resource manifest invalid: %w", err)
	default:
		return err
	}
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: <input stem>_html beside the input)")
	rootCmd.Flags().BoolVar(&showInfo, "info", false, "Print document metadata and board summary, then exit without generating HTML")
	rootCmd.Flags().BoolVar(&useOCR, "ocr", false, "Recognize alt text for slide images (requires a build with -tags ocr)")
	rootCmd.Flags().StringVar(&ocrLang, "ocr-lang", "", "Tesseract language spec for --ocr (e.g. chi_sim+eng)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}
