package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/seoscan/internal/config"
	"github.com/mvp-joe/seoscan/internal/scanner"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch for component changes and rescan incrementally",
	Long: `Watch runs an initial scan, then monitors the project for
component-file changes and rescans after each debounced batch of
changes. Unchanged files are served from the result cache, so a
rescan costs roughly one parse per changed file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress output")
	watchCmd.Flags().StringVar(&outFlag, "out", "", "Output directory (default: <root>/.seoscan)")
	watchCmd.Flags().StringVar(&patchFlag, "patch", "", "HTML document to splice generated tags into")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

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

	rescan := func() {
		meta, err := s.Scan(ctx)
		if err != nil {
			if ctx.Err() == nil {
				log.Printf("Scan failed: %v\n", err)
			}
			return
		}
		reportDiagnostics(s.Diagnostics())
		if err := writeResults(rootDir, cfg, meta); err != nil {
			log.Printf("Failed to write results: %v\n", err)
		}
	}

	rescan()

	w, err := scanner.NewWatcher(rootDir, cfg.SourceExtensions())
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Stop()

	if err := w.Start(ctx, func(files []string) {
		if !quietFlag {
			log.Printf("%d files changed, rescanning\n", len(files))
		}
		rescan()
	}); err != nil {
		return err
	}

	if !quietFlag {
		log.Printf("Watching %s for changes (Ctrl+C to stop)\n", rootDir)
	}

	<-sigChan
	fmt.Println("\nStopping watcher...")
	cancel()
	return nil
}
