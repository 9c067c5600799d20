// Command vastapi-probe checks whether the Vastai driver library exports the
// entry points the function tables need, and optionally loads a table.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/vastai/go-vastapi/internal/logging"
	"github.com/vastai/go-vastapi/pkg/dl"
	"github.com/vastai/go-vastapi/pkg/vastapi"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[0], os.Args[1:], os.Stdout, os.Stderr, dl.DefaultOpener))
}

func run(prog string, args []string, stdout, stderr io.Writer, opener dl.Opener) int {
	flags := pflag.NewFlagSet(prog, pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "syntax: %s [flags]\n", prog)
		flags.PrintDefaults()
	}

	configPath := flags.String("config", "", "path to a YAML config file")
	library := flags.String("library", "", "driver library to open (default "+vastapi.LibraryName+")")
	variantName := flags.String("variant", "", "table variant: device or nodev (default device)")
	logLevel := flags.String("log-level", "", "log level: disabled, error, warn, info, debug, trace")
	load := flags.Bool("load", false, "load and free the table after probing")
	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}
	if flags.NArg() != 0 {
		flags.Usage()
		return exitUsage
	}

	cfg := &vastapi.Config{}
	if *configPath != "" {
		var err error
		if cfg, err = vastapi.LoadConfig(*configPath); err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
	}
	if *library != "" {
		cfg.Library = *library
	}
	if *variantName != "" {
		cfg.Variant = *variantName
	}
	if *logLevel != "" {
		if _, err := logging.ParseLevel(*logLevel); err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
		cfg.LogLevel = *logLevel
	}

	variant, err := cfg.TableVariant()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	params, err := cfg.Params()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	params.Opener = opener

	report, err := params.Probe(variant)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFail
	}
	printReport(stdout, report)
	if !report.Complete() {
		return exitFail
	}

	if *load {
		if err := loadAndFree(&params, variant); err != nil {
			fmt.Fprintln(stderr, err)
			return exitFail
		}
		fmt.Fprintf(stdout, "load: ok\n")
	}
	return exitOK
}

func printReport(w io.Writer, r *vastapi.Report) {
	fmt.Fprintf(w, "library: %s\nvariant: %s\n", r.Library, r.Variant)
	for _, s := range r.Symbols {
		mark := "ok"
		switch {
		case s.Found:
		case s.Optional:
			mark = "absent (optional)"
		default:
			mark = "MISSING"
		}
		fmt.Fprintf(w, "  %-42s %s\n", s.Name, mark)
	}
	fmt.Fprintf(w, "missing: %d of %d\n", len(r.Missing()), len(r.Symbols))
}

func loadAndFree(p *vastapi.Params, v vastapi.Variant) error {
	switch v {
	case vastapi.VariantNoDevice:
		var f *vastapi.NoDevFunctions
		if err := p.LoadNoDevFunctions(&f); err != nil {
			return err
		}
		return f.Close()
	default:
		var f *vastapi.Functions
		if err := p.LoadFunctions(&f); err != nil {
			return err
		}
		return f.Close()
	}
}
