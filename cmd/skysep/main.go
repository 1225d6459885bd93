package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chrissnell/skyangle/internal/log"
	"github.com/chrissnell/skyangle/pkg/config"
	"github.com/chrissnell/skyangle/pkg/sphere"
)

// targetList collects repeated -target flags
type targetList []string

func (t *targetList) String() string {
	return strings.Join(*t, ",")
}

func (t *targetList) Set(v string) error {
	*t = append(*t, v)
	return nil
}

func main() {
	var configFile string
	var debug bool
	var targets targetList
	flag.StringVar(&configFile, "config", "skyangle.yaml", "YAML configuration file with the target catalog")
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.Var(&targets, "target", "named target from the configuration (give twice)")
	flag.Parse()

	if err := log.Init(debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	var p1, p2 sphere.Position

	switch {
	case flag.NArg() == 2 && len(targets) == 0:
		var err error
		p1, err = sphere.ParsePosition(flag.Arg(0))
		if err == nil {
			p2, err = sphere.ParsePosition(flag.Arg(1))
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing position: %v\n", err)
			os.Exit(1)
		}
	case len(targets) == 2 && flag.NArg() == 0:
		var err error
		p1, p2, err = resolveTargets(configFile, debug, targets[0], targets[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving targets: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Usage: skysep \"HH MM SS [+-]DD MM SS\" \"HH MM SS [+-]DD MM SS\"\n")
		fmt.Fprintf(os.Stderr, "       skysep -config FILE -target NAME -target NAME\n")
		os.Exit(1)
	}

	sep := p1.Separation(p2)
	bearing := p1.Bearing(p2)

	fmt.Printf("From:       %s\n", p1)
	fmt.Printf("To:         %s\n", p2)
	fmt.Printf("Separation: %.6f°\n", sep.Deg())
	fmt.Printf("Bearing:    %.6f°\n", bearing.Deg())
}

// resolveTargets loads the configuration and parses the positions of the
// two named targets
func resolveTargets(configFile string, debug bool, name1, name2 string) (sphere.Position, sphere.Position, error) {
	provider := config.NewYAMLProvider(configFile)
	cfg, err := provider.LoadConfig()
	if err != nil {
		return sphere.Position{}, sphere.Position{}, err
	}

	if cfg.LogFile != "" {
		if err := log.InitWithFile(debug, cfg.LogFile); err != nil {
			return sphere.Position{}, sphere.Position{}, err
		}
	}

	p1, err := lookupTarget(cfg.Targets, name1)
	if err != nil {
		return sphere.Position{}, sphere.Position{}, err
	}
	p2, err := lookupTarget(cfg.Targets, name2)
	if err != nil {
		return sphere.Position{}, sphere.Position{}, err
	}
	return p1, p2, nil
}

func lookupTarget(targets []config.TargetData, name string) (sphere.Position, error) {
	for _, t := range targets {
		if t.Name == name {
			return sphere.ParsePosition(t.Position)
		}
	}
	return sphere.Position{}, fmt.Errorf("target %q not found in configuration", name)
}
