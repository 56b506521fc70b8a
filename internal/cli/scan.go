package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/seoscan/internal/config"
	"github.com/mvp-joe/seoscan/internal/extract"
	"github.com/mvp-joe/seoscan/internal/scanner"
	"github.com/mvp-joe/seoscan/internal/seotags"
)

var (
	quietFlag bool
	outFlag   string
	patchFlag string
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [directory]",
	Short: "Scan component files and generate SEO metadata",
	Long: `Scan walks the project for component files, extracts the text
each renders, and writes a metadata record per component plus derived
SEO tags.

Examples:
  # Scan the current directory
  seoscan scan

  # Scan a specific directory quietly
  seoscan scan ./web --quiet

  # Scan and splice the generated tags into index.html
  seoscan scan --patch public/index.html
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress output")
	scanCmd.Flags().StringVar(&outFlag, "out", "", "Output directory (default: <root>/.seoscan)")
	scanCmd.Flags().StringVar(&patchFlag, "patch", "", "HTML document to splice generated tags into")
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupted! Cancelling scan...")
		cancel()
	}()

	rootDir, err := resolveRootDir(args)
	if err != nil {
		return err
	}

	cfg, err := config.LoadFromDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyScanFlags(cfg)

	s, err := scanner.New(rootDir, cfg.Paths.Components, cfg.Paths.Ignore, NewCLIProgressReporter(quietFlag))
	if err != nil {
		return err
	}
	defer s.Close()

	meta, err := s.Scan(ctx)
	if err != nil {
		return err
	}

	reportDiagnostics(s.Diagnostics())

	return writeResults(rootDir, cfg, meta)
}

// resolveRootDir picks the scan root from args or the working directory.
func resolveRootDir(args []string) (string, error) {
	if len(args) == 1 {
		return filepath.Abs(args[0])
	}
	rootDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return rootDir, nil
}

func applyScanFlags(cfg *config.Config) {
	if outFlag != "" {
		cfg.Output.Dir = outFlag
	}
	if patchFlag != "" {
		cfg.Output.PatchHTML = patchFlag
	}
}

// writeResults persists the metadata JSON and optionally patches the
// configured HTML document.
func writeResults(rootDir string, cfg *config.Config, meta *extract.ProjectMetadata) error {
	tags := seotags.Build(cfg.Project.Name, meta)

	outDir := cfg.Output.Dir
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(rootDir, outDir)
	}
	if err := seotags.WriteMetadata(outDir, meta, tags); err != nil {
		return err
	}
	if !quietFlag {
		log.Printf("Wrote %s\n", filepath.Join(outDir, seotags.MetadataFileName))
	}

	if cfg.Output.PatchHTML != "" {
		htmlPath := cfg.Output.PatchHTML
		if !filepath.IsAbs(htmlPath) {
			htmlPath = filepath.Join(rootDir, htmlPath)
		}
		if err := seotags.PatchHead(htmlPath, tags); err != nil {
			return err
		}
		if !quietFlag {
			log.Printf("Patched %s\n", htmlPath)
		}
	}

	return nil
}

func reportDiagnostics(diagnostics []extract.Diagnostic) {
	if quietFlag && !verbose {
		return
	}
	for _, d := range diagnostics {
		if d.Kind == extract.DiagnosticFileSkipped || verbose {
			log.Printf("%s: %s\n", d.FilePath, d.Detail)
		}
	}
}
