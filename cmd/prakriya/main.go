// Command prakriya is a small developer-facing CLI around the derivation
// core. It does not derive real Sanskrit forms — rule bodies are out of
// scope for this repository — but it exercises the Enumerator and
// rule-choice-log replay against the toy grammar in package example.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/sanskrit-grammar/prakriya/core"
	"github.com/sanskrit-grammar/prakriya/enumerate"
	"github.com/sanskrit-grammar/prakriya/example"
	"github.com/sanskrit-grammar/prakriya/internal/debugprint"
	"github.com/sanskrit-grammar/prakriya/internal/plog"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	plog.SetLogger(zerolog.New(os.Stderr).With().Timestamp().Logger())

	var err error
	switch os.Args[1] {
	case "enumerate":
		err = runEnumerate(os.Args[2:])
	case "replay":
		err = runReplay(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "prakriya:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: prakriya <enumerate|replay> [args]")
	fmt.Fprintln(os.Stderr, "  enumerate            run the toy grammar through every accept/decline fork")
	fmt.Fprintln(os.Stderr, "  replay <config.yaml> replay a captured rule-choice log against the toy grammar")
}

func runEnumerate(args []string) error {
	workers := 1
	if len(args) > 0 {
		n, err := fmt.Sscanf(args[0], "%d", &workers)
		if err != nil || n != 1 {
			return fmt.Errorf("invalid worker count %q", args[0])
		}
	}

	e := &enumerate.Enumerator{Derive: example.Derive, Workers: workers}
	result := e.Run()

	if result.Truncated {
		fmt.Fprintf(os.Stderr, "warning: derivation cap hit after %d derivations; result is partial\n", result.DerivationCount)
	}
	for text := range result.Forms {
		fmt.Println(text)
	}
	return nil
}

func runReplay(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("replay requires exactly one config file argument")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	cfg, err := core.ConfigFromYAML(data)
	if err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	p := example.Derive(cfg)
	debugprint.Dump(p)
	return nil
}
