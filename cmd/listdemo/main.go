// listdemo builds a linked list, deletes a sequence of positions from it and
// reports each failure kind with its own message.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"internship_code/heap/linked_list"
)

type config struct {
	values     []int
	deletes    []int
	emptyCheck bool
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		die(2, err.Error())
	}
	if err := run(cfg, os.Stdout); err != nil {
		die(1, err.Error())
	}
}

func parseFlags(args []string) (config, error) {
	var cfg config
	var rawValues, rawDeletes string

	fs := flag.NewFlagSet("listdemo", flag.ContinueOnError)
	fs.StringVar(&rawValues, "values", "10,20,30,40,50,60", "comma-separated values to append")
	fs.StringVar(&rawDeletes, "delete", "3,1,10", "comma-separated 1-based positions to delete, in order")
	fs.BoolVar(&cfg.emptyCheck, "empty-check", true, "also try deleting from a fresh empty list")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	var err error
	if cfg.values, err = parseInts(rawValues); err != nil {
		return cfg, fmt.Errorf("-values: %w", err)
	}
	if cfg.deletes, err = parseInts(rawDeletes); err != nil {
		return cfg, fmt.Errorf("-delete: %w", err)
	}
	return cfg, nil
}

func parseInts(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var out []int
	for _, field := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// run only fails when w does; list errors are reported and skipped.
func run(cfg config, w io.Writer) error {
	ew := &errWriter{w: w}

	l := linked_list.New[int](linked_list.WithOutput(ew))
	for _, v := range cfg.values {
		l.Append(v)
	}
	ew.println("Initial list:")
	l.Print()

	for _, pos := range cfg.deletes {
		if _, err := l.DeleteAt(pos); err != nil {
			ew.println(describe(err))
			continue
		}
		ew.printf("List after deleting %s node:\n", ordinal(pos))
		l.Print()
	}

	if cfg.emptyCheck {
		empty := linked_list.New[int](linked_list.WithOutput(ew))
		if _, err := empty.DeleteAt(1); err != nil {
			ew.println(describe(err))
		}
	}
	return ew.err
}

// ordinal names a position the way the demo output reads: "head", "2nd",
// "3rd", "11th".
func ordinal(pos int) string {
	if pos == 1 {
		return "head"
	}
	suffix := "th"
	switch pos % 10 {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	}
	if n := pos % 100; n >= 11 && n <= 13 {
		suffix = "th"
	}
	return strconv.Itoa(pos) + suffix
}

func describe(err error) string {
	switch {
	case errors.Is(err, linked_list.ErrEmptyList):
		return "Error: nothing to delete: " + err.Error()
	case errors.Is(err, linked_list.ErrInvalidIndex):
		return "Error: bad position: " + err.Error()
	case errors.Is(err, linked_list.ErrIndexOutOfRange):
		return "Error: position past the end: " + err.Error()
	}
	return "Error: " + err.Error()
}

// errWriter keeps the first write error and drops everything after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = fmt.Errorf("write output: %w", err)
	}
	return n, err
}

func (e *errWriter) println(s string) {
	fmt.Fprintln(e, s)
}

func (e *errWriter) printf(format string, args ...any) {
	fmt.Fprintf(e, format, args...)
}

var logger = log.New(os.Stderr, "listdemo: ", 0)

func die(code int, msg string) {
	logger.Print(msg)
	os.Exit(code)
}
