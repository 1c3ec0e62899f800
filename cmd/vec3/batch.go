package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/HWRM/KarosGraveyard/pkg/vecfile"
	"github.com/HWRM/KarosGraveyard/pkg/watcher"
)

var batchWatch bool

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Evaluate a YAML vector file",
	Long: `Parse a YAML file of named vectors and operations, evaluate every
operation, and print the results. With --watch the file is re-evaluated
whenever it changes.`,
	Args: cobra.ExactArgs(1),
	Run:  runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().BoolVarP(&batchWatch, "watch", "w", false, "Re-evaluate on file change")
}

func runBatch(cmd *cobra.Command, args []string) {
	filename := args[0]

	if err := evaluateFile(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !batchWatch {
		return
	}

	fw, err := watcher.NewFileWatcher(filename, 200*time.Millisecond, func(path string) {
		fmt.Println()
		if err := evaluateFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	if err := fw.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nWatching for changes (Ctrl+C to stop)")
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}

func evaluateFile(filename string) error {
	f, err := vecfile.Parse(filename)
	if err != nil {
		return err
	}

	for _, result := range f.Eval() {
		fmt.Println(result)
	}
	return nil
}
