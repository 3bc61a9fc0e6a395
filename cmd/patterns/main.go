// patterns prints the lower triangle, upper triangle and pyramid for a given
// number of rows.
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"internship_code/pattern"
)

type config struct {
	rows int
}

var logger = log.New(os.Stderr, "patterns: ", 0)

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		die(2, err.Error())
	}
	if err := run(cfg, os.Stdout); err != nil {
		die(1, describe(err))
	}
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("patterns", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&cfg.rows, "rows", 5, "number of rows in each pattern")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func run(cfg config, w io.Writer) error {
	return pattern.Write(w, cfg.rows)
}

func describe(err error) string {
	if errors.Is(err, pattern.ErrNonPositiveRows) {
		return "Please enter a positive integer."
	}
	return err.Error()
}

func die(code int, msg string) {
	logger.Print(msg)
	os.Exit(code)
}
