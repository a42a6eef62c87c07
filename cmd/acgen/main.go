// Command acgen encodes Soleus WS3-08E-201 AC commands into Pronto IR codes
// from the shell, without the HTTP bridge.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"soleus_remote/internal/protocol"
	"soleus_remote/internal/service"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "acgen:", err)
		os.Exit(1)
	}
}

func run(args []string, out *os.File) error {
	fs := flag.NewFlagSet("acgen", flag.ContinueOnError)
	var (
		mode    = fs.String("mode", "", "mode: TEMP, AUTO, ECO, SLEEP, FAN, DRY, POWER_OFF")
		temp    = fs.Int("temp", 0, "temperature in °F (62-86, required for TEMP/ECO/SLEEP)")
		fan     = fs.String("fan", "", "fan speed: LOW, MED, HIGH")
		all     = fs.Bool("all", false, "emit the full button catalog")
		output  = fs.String("output", "", "write the catalog to this JSON file (with -all)")
		info    = fs.Bool("info", false, "print the protocol reference sheet")
		verbose = fs.Bool("verbose", false, "also print the raw frame bytes")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *info:
		return printInfo(out)
	case *all:
		return printCatalog(out, *output)
	case *mode != "":
		return printCode(out, service.CommandParams{
			Mode:        *mode,
			Temperature: *temp,
			FanSpeed:    *fan,
		}, *verbose)
	default:
		fs.Usage()
		return fmt.Errorf("one of -mode, -all or -info is required")
	}
}

func printCode(out *os.File, p service.CommandParams, verbose bool) error {
	code, err := service.NewEncoderService().Encode(p)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(out, "mode:  %s\n", code.Mode)
		if code.Temperature != 0 {
			fmt.Fprintf(out, "temp:  %d°F\n", code.Temperature)
		}
		if code.FanSpeed != "" {
			fmt.Fprintf(out, "fan:   %s\n", code.FanSpeed)
		}
		fmt.Fprintf(out, "frame: %s\n", code.Frame)
	}
	fmt.Fprintln(out, code.ProntoData)
	return nil
}

func printCatalog(out *os.File, path string) error {
	cat := service.NewCatalogService()
	if path != "" {
		n, err := cat.ExportJSON(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %d codes to %s\n", n, path)
		return nil
	}
	for _, e := range cat.Entries() {
		fmt.Fprintf(out, "%s\t%s\n", e.ButtonName, e.ProntoData)
	}
	return nil
}

func printInfo(out *os.File) error {
	data, err := json.MarshalIndent(protocol.Reference(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(data))
	return nil
}
