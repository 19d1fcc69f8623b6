package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/symfc/basis"
	"github.com/katalvlaran/symfc/coo"
)

// inputDoc is a COO matrix in the 3N-basis. size3n defaults to 3*natom.
type inputDoc struct {
	NAtom  int       `yaml:"natom"`
	Size3N int       `yaml:"size3n"`
	Row    []int64   `yaml:"row"`
	Col    []int64   `yaml:"col"`
	Data   []float64 `yaml:"data"`
}

// matrix returns the entries as a coo.Matrix without copying.
func (d inputDoc) matrix() coo.Matrix[int64] {
	return coo.FromSlices(d.Row, d.Col, d.Data)
}

// dims resolves natom and size3n. Either may be omitted; when both are set
// they must agree.
func (d inputDoc) dims() (natom, size3n int, err error) {
	if d.Size3N == 0 {
		if err := coo.ValidateAtoms(d.NAtom); err != nil {
			return 0, 0, fmt.Errorf("input: %w", err)
		}
		return d.NAtom, basis.Size3N(d.NAtom), nil
	}
	if err := coo.ValidateSize3N(d.Size3N); err != nil {
		return 0, 0, fmt.Errorf("input: %w", err)
	}
	natom = d.Size3N / basis.NCart
	if d.NAtom != 0 && d.NAtom != natom {
		return 0, 0, fmt.Errorf("input: size3n %d does not match natom %d: %w",
			d.Size3N, d.NAtom, coo.ErrBadAtomCount)
	}

	return natom, d.Size3N, nil
}

// outputDoc is a COO matrix with its full shape.
type outputDoc struct {
	Rows int       `yaml:"rows" json:"rows"`
	Cols int       `yaml:"cols" json:"cols"`
	Row  []int64   `yaml:"row" json:"row"`
	Col  []int64   `yaml:"col" json:"col"`
	Data []float64 `yaml:"data" json:"data"`
}

func newOutputDoc(m coo.Matrix[int64], rows, cols int) outputDoc {
	return outputDoc{Rows: rows, Cols: cols, Row: m.Row, Col: m.Col, Data: m.Data}
}

// labelsDoc is the canonical pair table indexed by NN33 serial.
type labelsDoc struct {
	NAtom int     `yaml:"natom" json:"natom"`
	Len   int     `yaml:"len" json:"len"`
	IDs   []int64 `yaml:"ids" json:"ids"`
}

// readInput decodes a YAML (or JSON) input document.
func readInput(path string) (inputDoc, error) {
	var doc inputDoc
	raw, err := os.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("read input: %w", err)
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("parse input %s: %w", path, err)
	}
	return doc, nil
}

// writeDoc encodes v to path, or to stdout when path is empty.
func writeDoc(path, format string, v any) (err error) {
	var w io.Writer = os.Stdout
	if path != "" {
		f, cerr := os.Create(path)
		if cerr != nil {
			return fmt.Errorf("create output: %w", cerr)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	return encode(w, format, v)
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
}
