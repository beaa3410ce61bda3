package trackfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gotrack/pkg/geometry"
	"github.com/philipparndt/gotrack/pkg/track"
	"gopkg.in/yaml.v3"
)

// Parse reads a layout file and returns a validated Layout.
// It automatically detects whether the file uses the text or YAML format.
func Parse(filename string) (*Layout, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseReader(file)
}

// ParseReader parses a layout from r
func ParseReader(r io.Reader) (*Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}

	var layout *Layout
	if isText(data) {
		layout, err = parseText(bytes.NewReader(data))
	} else {
		layout, err = parseYAML(data)
	}
	if err != nil {
		return nil, err
	}

	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	return layout, nil
}

// isText reports whether the first keyword is one of the text format's
func isText(data []byte) bool {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "layout", "anchor", "width", "pivot":
			return true
		}
		return false
	}
	return false
}

// parseText parses the line-oriented format:
//
//	layout <name>
//	width <w>
//	pivot midpoint|start
//	anchor <x> <y>
func parseText(reader io.Reader) (*Layout, error) {
	scanner := bufio.NewScanner(reader)
	layout := &Layout{}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)

		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "layout":
			if len(fields) > 1 {
				layout.Name = strings.Join(fields[1:], " ")
			}

		case "width":
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: expected 'width <value>'", lineNo)
			}
			w, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid width: %w", lineNo, err)
			}
			layout.Width = w

		case "pivot":
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: expected 'pivot midpoint|start'", lineNo)
			}
			p, err := track.ParsePivot(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			layout.Pivot = p

		case "anchor":
			if len(fields) != 3 {
				return nil, fmt.Errorf("line %d: expected 'anchor <x> <y>'", lineNo)
			}
			x, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid x: %w", lineNo, err)
			}
			y, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid y: %w", lineNo, err)
			}
			layout.AddAnchor(geometry.NewVector2(x, y))

		default:
			return nil, fmt.Errorf("line %d: unknown keyword %q", lineNo, fields[0])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading layout: %w", err)
	}

	return layout, nil
}

// parseYAML parses the YAML format
func parseYAML(data []byte) (*Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to parse YAML layout: %w", err)
	}
	return &layout, nil
}

// Write encodes the layout as YAML
func Write(w io.Writer, layout *Layout) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(layout); err != nil {
		return fmt.Errorf("failed to encode layout: %w", err)
	}
	return enc.Close()
}
