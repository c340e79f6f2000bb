package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/di"
	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the configuration file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "enable debug logging")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "masternode: %v\n", err)
		os.Exit(1)
	}
}
