// Package svgdoc reads the path inventory out of an SVG file.
//
// Only a small slice of SVG is understood: every <path> element in document
// order, with its data and stroke styling attributes kept as raw strings.
// Rendering-related structure (transforms, gradients, defs) is ignored.
package svgdoc

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"

	"golang.org/x/net/html/charset"

	"inkdiff/models"
	"inkdiff/pkg/storage"
)

// Document is the path inventory of one SVG file.
type Document struct {
	Filename      string
	FileSizeBytes int64
	Paths         []models.PathElement
}

// ReadFile loads and parses an SVG file. The file is read fully before any
// parsing begins; the size comes from the storage layer's stat, independent
// of the parse. Malformed markup is a hard error for this file.
func ReadFile(path string) (*Document, error) {
	s := &storage.Storage{}
	stats, err := s.GetFileStats(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat SVG file: %w", err)
	}
	data, err := s.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read SVG file: %w", err)
	}

	doc, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	doc.Filename = filepath.Base(path)
	doc.FileSizeBytes = stats.SizeBytes
	return doc, nil
}

// Parse decodes SVG markup from a stream and collects its path elements.
// The stream must hold exactly one well-formed root element: no root at all,
// a second top-level element, or non-whitespace content after the root close
// are structural errors.
func Parse(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	doc := &Document{}
	var depth int
	var rootSeen, rootClosed bool
	for {
		tok, err := decoder.Token()
		if tok == nil && err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed SVG markup: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, fmt.Errorf("malformed SVG markup: junk after document element")
			}
			depth++
			rootSeen = true
			if t.Name.Local != "path" {
				continue
			}
			var elem models.PathElement
			for _, attr := range t.Attr {
				switch attr.Name.Local {
				case "d":
					elem.Data = attr.Value
				case "stroke-width":
					elem.StrokeWidth = attr.Value
				case "stroke-opacity":
					elem.StrokeOpacity = attr.Value
				}
			}
			doc.Paths = append(doc.Paths, elem)
		case xml.EndElement:
			depth--
			if depth == 0 {
				rootClosed = true
			}
		case xml.CharData:
			if rootClosed && len(bytes.TrimSpace(t)) > 0 {
				return nil, fmt.Errorf("malformed SVG markup: junk after document element")
			}
		}
	}
	if !rootSeen {
		return nil, fmt.Errorf("malformed SVG markup: no element found")
	}
	return doc, nil
}
