// Package sprite loads entity views from the .entity text format: four
// header lines (width, height, origin_x, origin_y) followed by the raw
// character block, read verbatim to end-of-source.
package sprite

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrMalformedHeader is returned when the four leading integer fields of
// a sprite definition cannot be parsed. A sprite that fails to load is
// fatal to startup; no partial view is ever produced.
var ErrMalformedHeader = errors.New("sprite: malformed header")

// headerFields is the required order of the leading header lines.
var headerFields = [4]string{"width", "height", "origin_x", "origin_y"}

// View is one animation frame of an entity: declared dimensions, the
// origin offset from the entity anchor to the top-left corner, and the
// character grid with row breaks kept as literal newlines. Views are
// immutable once loaded.
type View struct {
	Width   int
	Height  int
	OriginX int
	OriginY int
	Display string
}

// Parse decodes a sprite definition. The declared width/height are taken
// as authoritative; they are not checked against the character block here
// (see Validate).
func Parse(data []byte) (View, error) {
	var v View
	dst := [4]*int{&v.Width, &v.Height, &v.OriginX, &v.OriginY}

	rest := data
	for i, name := range headerFields {
		line, remainder, found := bytes.Cut(rest, []byte("\n"))
		if !found {
			return View{}, fmt.Errorf("%w: missing %s line", ErrMalformedHeader, name)
		}
		rest = remainder

		fields := strings.Fields(strings.TrimRight(string(line), "\r"))
		if len(fields) != 2 || fields[0] != name {
			return View{}, fmt.Errorf("%w: expected %q line, got %q", ErrMalformedHeader, name, string(line))
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return View{}, fmt.Errorf("%w: %s: %v", ErrMalformedHeader, name, err)
		}
		*dst[i] = n
	}

	v.Display = string(rest)
	return v, nil
}

// ParseFile loads a sprite definition from disk. A missing or unreadable
// file is as fatal as a malformed one.
func ParseFile(path string) (View, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return View{}, fmt.Errorf("sprite: reading %s: %w", path, err)
	}
	v, err := Parse(data)
	if err != nil {
		return View{}, fmt.Errorf("sprite: parsing %s: %w", path, err)
	}
	return v, nil
}

// Rows splits the character block into its rows. Both \n and \r act as
// row breaks, \r\n counts once; a trailing empty row is dropped.
func (v View) Rows() []string {
	norm := strings.ReplaceAll(v.Display, "\r\n", "\n")
	norm = strings.ReplaceAll(norm, "\r", "\n")
	rows := strings.Split(norm, "\n")
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows
}

// Measure returns the actual dimensions of the character block: the
// widest row and the row count.
func (v View) Measure() (w, h int) {
	for _, row := range v.Rows() {
		if len(row) > w {
			w = len(row)
		}
		h++
	}
	return w, h
}

// Validate reports a mismatch between the declared dimensions and the
// measured character block. Declared values stay authoritative for
// collision either way; a mismatch means the sprite renders misaligned
// relative to its hitbox.
func (v View) Validate() error {
	w, h := v.Measure()
	if w != v.Width || h != v.Height {
		return fmt.Errorf("sprite: declared %dx%d but content measures %dx%d", v.Width, v.Height, w, h)
	}
	return nil
}
