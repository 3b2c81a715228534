package importer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Encoding is the character set of a .xer file.
type Encoding string

const (
	EncodingCP1252 Encoding = "cp1252"
	EncodingUTF8   Encoding = "utf-8"
)

// ParseEncoding accepts the common spellings of the supported encodings.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cp1252", "windows-1252", "win1252":
		return EncodingCP1252, nil
	case "utf-8", "utf8":
		return EncodingUTF8, nil
	default:
		return "", fmt.Errorf("unsupported xer encoding %q", s)
	}
}

// ErrMalformedXER is returned when record markers appear out of order.
var ErrMalformedXER = errors.New("malformed xer")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadXER parses a P6 .xer export. Each %T line opens a table, %F names its
// fields and every %R line is one record; %E ends the file. The marker
// column is dropped and values are typed with TypeValue.
func ReadXER(r io.Reader, enc Encoding) (Tables, error) {
	br := bufio.NewReader(r)
	if enc == EncodingUTF8 {
		if head, err := br.Peek(3); err == nil && bytes.Equal(head, utf8BOM) {
			_, _ = br.Discard(3)
		}
	} else {
		br = bufio.NewReader(charmap.Windows1252.NewDecoder().Reader(br))
	}

	p := xerParser{tables: make(Tables)}
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			p.line++
			if done, perr := p.parseLine(strings.TrimRight(line, "\r\n")); perr != nil {
				return nil, perr
			} else if done {
				break
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading xer: %w", err)
		}
	}
	return p.tables, nil
}

type xerParser struct {
	tables Tables
	table  string
	fields []string
	line   int
}

func (p *xerParser) parseLine(line string) (bool, error) {
	if line == "" {
		return false, nil
	}
	cols := strings.Split(line, "\t")
	switch cols[0] {
	case "%T":
		if len(cols) < 2 || cols[1] == "" {
			return false, p.malformed("table marker without a name")
		}
		p.table, p.fields = cols[1], nil
		if _, ok := p.tables[p.table]; !ok {
			p.tables[p.table] = []Row{}
		}
	case "%F":
		if p.table == "" {
			return false, p.malformed("fields before any table")
		}
		p.fields = cols[1:]
	case "%R":
		if p.fields == nil {
			return false, p.malformed("record before fields")
		}
		raw := make(map[string]string, len(p.fields))
		values := cols[1:]
		for i, f := range p.fields {
			if i < len(values) {
				raw[f] = values[i]
			}
		}
		row, err := TypeRow(p.table, len(p.tables[p.table])+1, raw)
		if err != nil {
			return false, fmt.Errorf("line %d: %w", p.line, err)
		}
		p.tables[p.table] = append(p.tables[p.table], row)
	case "%E":
		return true, nil
	}
	return false, nil
}

func (p *xerParser) malformed(msg string) error {
	return fmt.Errorf("line %d: %s: %w", p.line, msg, ErrMalformedXER)
}

// LoadFile reads a .xer file from disk.
func LoadFile(path string, enc Encoding) (Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tables, err := ReadXER(f, enc)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return tables, nil
}
