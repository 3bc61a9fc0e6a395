// Package pattern renders the star triangles and pyramid from the first
// exercise. Each star is followed by a single space, and each line ends with a
// newline.
package pattern

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrNonPositiveRows = errors.New("pattern: rows must be a positive integer")

const (
	star = "* "
	pad  = "  "
)

// LowerTriangle grows from one star to rows stars.
func LowerTriangle(rows int) (string, error) {
	if rows <= 0 {
		return "", ErrNonPositiveRows
	}
	var b strings.Builder
	for i := 1; i <= rows; i++ {
		b.WriteString(strings.Repeat(star, i))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// UpperTriangle shrinks from rows stars to one.
func UpperTriangle(rows int) (string, error) {
	if rows <= 0 {
		return "", ErrNonPositiveRows
	}
	var b strings.Builder
	for i := rows; i >= 1; i-- {
		b.WriteString(strings.Repeat(star, i))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// Pyramid centers 2i-1 stars on row i.
func Pyramid(rows int) (string, error) {
	if rows <= 0 {
		return "", ErrNonPositiveRows
	}
	var b strings.Builder
	for i := 1; i <= rows; i++ {
		b.WriteString(strings.Repeat(pad, rows-i))
		b.WriteString(strings.Repeat(star, 2*i-1))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

var sections = []struct {
	title  string
	render func(int) (string, error)
}{
	{"Lower Triangular Pattern:", LowerTriangle},
	{"Upper Triangular Pattern:", UpperTriangle},
	{"Pyramid Pattern:", Pyramid},
}

// Write prints all three patterns, each under its title and followed by two
// blank lines.
func Write(w io.Writer, rows int) error {
	if rows <= 0 {
		return ErrNonPositiveRows
	}
	for _, s := range sections {
		body, err := s.render(rows)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n\n", s.title, body); err != nil {
			return fmt.Errorf("pattern: write %q: %w", s.title, err)
		}
	}
	return nil
}
