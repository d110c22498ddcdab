package main

import (
	"fmt"
	"os"

	"tipstr/internal/config"
	"tipstr/internal/logger"
	"tipstr/ui/console"
	"tipstr/ui/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log, closeLog, err := logger.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	log.Info("starting", "percentages", cfg.TipPercentages, "spin_duration", cfg.SpinDuration)

	receipt, ok, err := tui.Start(cfg, log)
	if err != nil {
		log.Error("tui exited", "error", err)
		fmt.Printf("Error running TUI: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	// Leave the last result on screen once the alt screen is gone.
	if ok {
		console.Print(os.Stdout, receipt)
	}
}
