package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/chrissnell/skyangle/pkg/angle"
	"github.com/chrissnell/skyangle/pkg/config"
)

func main() {
	var (
		configFile string
		unitName   string
		outName    string
		normName   string
		pre        int
		trunc      bool
	)
	flag.StringVar(&configFile, "config", "", "YAML configuration file with display defaults")
	flag.StringVar(&unitName, "unit", "degrees", "unit of a plain numeric argument: degrees, hours or radians")
	flag.StringVar(&outName, "out", "", "unit to display in, defaulting to the input unit")
	flag.StringVar(&normName, "norm", "none", "normalization policy: none, wraparound or bounce")
	flag.IntVar(&pre, "pre", 3, "fractional digits on the seconds part")
	flag.BoolVar(&trunc, "trunc", false, "truncate the seconds instead of rounding")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: anglefmt [flags] ANGLE\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if configFile != "" {
		display, err := config.NewYAMLProvider(configFile).GetDisplay()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			os.Exit(1)
		}

		// Flags given on the command line win over configured defaults
		set := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if !set["pre"] {
			pre = display.Precision
		}
		if !set["trunc"] {
			trunc = display.Truncate
		}
		if !set["unit"] && display.Unit != "" {
			unitName = display.Unit
		}
	}

	unit, err := parseUnit(unitName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	policy, err := parsePolicy(normName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	arg := flag.Arg(0)
	var a angle.Angle
	if v, ferr := strconv.ParseFloat(arg, 64); ferr == nil {
		a = angle.New(v, unit, policy)
	} else {
		a, err = angle.Parse(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing angle: %v\n", err)
			os.Exit(1)
		}
		a = a.WithPolicy(policy)
	}

	if outName != "" {
		out, err := parseUnit(outName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		a = a.WithUnit(out)
	}

	l := angle.DefaultLayout()
	l.Precision = pre
	l.Truncate = trunc

	fmt.Printf("Angle %s\n", arg)
	fmt.Printf("  Radians:     %.15g\n", a.Rad())
	fmt.Printf("  Degrees:     %.15g\n", a.Deg())
	fmt.Printf("  Hours:       %.15g\n", a.Hour())
	fmt.Printf("  Arcseconds:  %.15g\n", a.Arcsec())
	fmt.Printf("  Sexagesimal: %s\n", a.Format(l))
}

func parseUnit(s string) (angle.Unit, error) {
	switch s {
	case "d", "deg", "degrees":
		return angle.UnitDegrees, nil
	case "h", "hour", "hours":
		return angle.UnitHours, nil
	case "r", "rad", "radians":
		return angle.UnitRadians, nil
	}
	return "", fmt.Errorf("unknown unit %q", s)
}

func parsePolicy(s string) (angle.Policy, error) {
	switch s {
	case "none":
		return angle.PolicyNone, nil
	case "wrap", "wraparound":
		return angle.PolicyWraparound, nil
	case "bounce":
		return angle.PolicyBounce, nil
	}
	return "", fmt.Errorf("unknown normalization policy %q", s)
}
