package atlas

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/spritepack-go/pkg/spritepack/models"
)

// Separator joins the fields of a record.
const Separator = "&&"

// ErrorPrefix starts the single line written instead of a record when a run
// fails.
const ErrorPrefix = "Error: "

// ErrInvalidRecord indicates a record that cannot be decoded.
var ErrInvalidRecord = errors.New("invalid atlas record")

// ErrPackFailed indicates the packer reported an error line instead of a record.
var ErrPackFailed = errors.New("sprite packing failed")

// Record is everything an importer needs to slice a sheet:
//
//	<sheetSize>&&<columnCount>&&<name>;<w>,<h>&&<name>;<w>,<h>...
type Record struct {
	SheetSize   int
	ColumnCount int
	Items       []Item
}

// Encode renders the record. Names must not contain the separator.
func Encode(r Record) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(r.SheetSize))
	b.WriteString(Separator)
	b.WriteString(strconv.Itoa(r.ColumnCount))

	for _, it := range r.Items {
		b.WriteString(Separator)
		b.WriteString(it.Name)
		b.WriteByte(';')
		b.WriteString(strconv.Itoa(it.Width))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(it.Height))
	}
	return b.String()
}

// String implements fmt.Stringer.
func (r Record) String() string {
	return Encode(r)
}

// Entries returns the bottom-up rectangles the record describes.
func (r Record) Entries(padding int) []models.AtlasEntry {
	return Translate(r.Items, r.ColumnCount, padding, r.SheetSize)
}

// Decode parses packer output. Empty fields are skipped and surrounding
// whitespace is ignored. An error line yields ErrPackFailed.
func Decode(s string) (Record, error) {
	s = strings.TrimSpace(s)
	if msg, ok := strings.CutPrefix(s, ErrorPrefix); ok {
		return Record{}, fmt.Errorf("%w: %s", ErrPackFailed, msg)
	}

	var fields []string
	for _, f := range strings.Split(s, Separator) {
		if f != "" {
			fields = append(fields, f)
		}
	}
	if len(fields) < 2 {
		return Record{}, fmt.Errorf("%w: expected size and column count, got %q", ErrInvalidRecord, s)
	}

	size, err := strconv.Atoi(fields[0])
	if err != nil || size <= 0 {
		return Record{}, fmt.Errorf("%w: bad sheet size %q", ErrInvalidRecord, fields[0])
	}
	columns, err := strconv.Atoi(fields[1])
	if err != nil || columns <= 0 {
		return Record{}, fmt.Errorf("%w: bad column count %q", ErrInvalidRecord, fields[1])
	}

	r := Record{SheetSize: size, ColumnCount: columns}
	for _, f := range fields[2:] {
		it, err := parseItem(f)
		if err != nil {
			return Record{}, err
		}
		r.Items = append(r.Items, it)
	}
	return r, nil
}

// parseItem parses "name;w,h". The name may itself contain ';'.
func parseItem(f string) (Item, error) {
	idx := strings.LastIndex(f, ";")
	if idx < 0 {
		return Item{}, fmt.Errorf("%w: missing ';' in %q", ErrInvalidRecord, f)
	}
	ws, hs, ok := strings.Cut(f[idx+1:], ",")
	if !ok {
		return Item{}, fmt.Errorf("%w: missing ',' in %q", ErrInvalidRecord, f)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return Item{}, fmt.Errorf("%w: bad width in %q", ErrInvalidRecord, f)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return Item{}, fmt.Errorf("%w: bad height in %q", ErrInvalidRecord, f)
	}
	return Item{Name: f[:idx], Width: w, Height: h}, nil
}
