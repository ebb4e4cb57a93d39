package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"turtle-feral-sim/internal/config"
)

const usage = `usage: configtool <command> [flags]

commands:
  validate  -config-dir DIR          check that a config directory loads
  export    -config-dir DIR -name N  print the share string of a config directory
  import    [-out DIR] STRING        decode a share string (or URL) and print or save it
  fields                             list the share string field order
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "configtool: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return fmt.Errorf("missing command")
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(out)
	configDir := fs.String("config-dir", "./configs", "Path to config directory")
	name := fs.String("name", "Feral Sim", "Share name for export")
	outDir := fs.String("out", "", "Write imported config into this directory")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	switch args[0] {
	case "validate":
		cfg, err := config.LoadConfig(*configDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Config '%s' validated successfully (%.0fs, %d iterations, target level %d)\n",
			*configDir, cfg.Simulation.DurationSeconds, cfg.Simulation.Iterations, cfg.Normalize().Target.Level)
	case "export":
		cfg, err := config.LoadConfig(*configDir)
		if err != nil {
			return err
		}
		s, err := config.Export(config.Share{Name: *name, Config: *cfg})
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s)
	case "import":
		if fs.NArg() != 1 {
			return fmt.Errorf("import needs exactly one share string")
		}
		shares, err := config.Import(fs.Arg(0))
		if err != nil {
			return err
		}
		if len(shares) == 0 {
			return fmt.Errorf("share string holds no configurations")
		}
		for i, sh := range shares {
			fmt.Fprintf(out, "%d. %s (AP %.0f, crit %.2f%%, hit %.2f%%)\n",
				i+1, sh.Name, sh.Config.Player.AttackPower, sh.Config.Player.CritPercent, sh.Config.Player.HitPercent)
		}
		if *outDir != "" {
			if err := config.SaveConfig(*outDir, shares[0].Config); err != nil {
				return err
			}
			fmt.Fprintf(out, "Saved %q to %s\n", shares[0].Name, *outDir)
		}
	case "fields":
		fmt.Fprintln(out, strings.Join(config.FieldIDs(), "\n"))
	default:
		fmt.Fprint(out, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}
