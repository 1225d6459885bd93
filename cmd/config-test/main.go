package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chrissnell/skyangle/pkg/config"
	"github.com/chrissnell/skyangle/pkg/sphere"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	flag.Parse()

	if *configFile == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -config <config.yaml>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	fmt.Println("Configuration Check")
	fmt.Println("===================")

	fmt.Printf("Loading configuration: %s\n", *configFile)
	provider := config.NewYAMLProvider(*configFile)
	cfg, err := provider.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	problems := 0

	fmt.Println("\nDisplay:")
	if validUnit(cfg.Display.Unit) {
		fmt.Printf("✓ precision %d, truncate %t, unit %q\n",
			cfg.Display.Precision, cfg.Display.Truncate, displayUnit(cfg.Display.Unit))
	} else {
		fmt.Printf("✗ unknown display unit %q\n", cfg.Display.Unit)
		problems++
	}

	fmt.Printf("\nTargets - %d defined\n", len(cfg.Targets))
	seen := make(map[string]bool)
	for _, target := range cfg.Targets {
		if target.Name == "" {
			fmt.Printf("✗ target with position %q has no name\n", target.Position)
			problems++
			continue
		}
		if seen[target.Name] {
			fmt.Printf("✗ target %s defined more than once\n", target.Name)
			problems++
			continue
		}
		seen[target.Name] = true

		pos, err := sphere.ParsePosition(target.Position)
		if err != nil {
			fmt.Printf("✗ target %s: %v\n", target.Name, err)
			problems++
			continue
		}
		fmt.Printf("✓ target %-12s %s\n", target.Name, pos)
	}

	if cfg.LogFile != "" {
		fmt.Printf("\nLog file: %s\n", cfg.LogFile)
	}

	if problems > 0 {
		fmt.Printf("\n%d problem(s) found\n", problems)
		os.Exit(1)
	}
	fmt.Println("\nConfiguration OK")
}

// validUnit reports whether the configured display unit is one anglefmt
// understands. An empty unit is fine, the tools fall back to degrees.
func validUnit(u string) bool {
	switch u {
	case "", "d", "deg", "degrees", "h", "hour", "hours", "r", "rad", "radians":
		return true
	}
	return false
}

func displayUnit(u string) string {
	if u == "" {
		return "degrees"
	}
	return u
}
