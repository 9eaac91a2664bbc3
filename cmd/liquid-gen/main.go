package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/reallyoldfogie/liquid-gen/internal/liquidgen"
)

func main() {
	configPath := flag.String("config", "liquid-gen.yaml", "path to config file (YAML)")
	interactive := flag.Bool("interactive", false, "prompt for liquid parameters instead of reading a config file")
	outDir := flag.String("out-dir", "", "override the configured output directory")
	flag.Parse()

	var cfg *liquidgen.Config
	var err error
	if *interactive {
		cfg, err = liquidgen.PromptConfig(os.Stdin, os.Stdout)
	} else {
		cfg, err = liquidgen.LoadConfig(*configPath)
	}
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}

	fmt.Printf("Base name:  %s\n", cfg.BaseName)
	fmt.Printf("Material:   %s\n", cfg.Material)
	fmt.Printf("Output dir: %s\n", filepath.Join(cfg.OutputDir, cfg.BaseName))

	blocks := liquidgen.New(cfg).Generate()
	fmt.Printf("generated %d block definitions\n", len(blocks))

	if err := liquidgen.ValidateBlocks(blocks); err != nil {
		log.Fatalf("validate blocks: %v", err)
	}

	if err := liquidgen.WriteBlocks(cfg.OutputDir, cfg.BaseName, blocks); err != nil {
		log.Fatalf("write blocks: %v", err)
	}

	fmt.Printf("Done %s\n", cfg.BaseName)
}
