// Package loaders reads mesh files into renderable shapes. Wavefront OBJ is
// the supported format: vertices, vertex normals, polygonal faces and named
// groups. Anything else in the file is counted and skipped.
package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rayward/go-raytracer/pkg/core"
	"github.com/rayward/go-raytracer/pkg/geometry"
)

// Mesh is the result of parsing an OBJ file. Faces outside any g statement
// land in DefaultGroup; named groups are kept separately in file order.
type Mesh struct {
	DefaultGroup *geometry.Group
	Groups       map[string]*geometry.Group
	// IgnoredLines counts lines the parser did not understand.
	IgnoredLines int

	groupOrder []string
}

// ParseOBJFile reads and parses an OBJ file from disk.
func ParseOBJFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening obj file: %w", err)
	}
	defer f.Close()
	m, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

// ParseOBJ parses OBJ data from a reader.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	m := &Mesh{
		DefaultGroup: geometry.NewGroup(),
		Groups:       map[string]*geometry.Group{},
	}

	var (
		vertices     []core.Tuple
		normals      []core.Tuple
		currentGroup string
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseTriple(fields[1:], core.NewPoint)
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			vertices = append(vertices, p)
		case "vn":
			n, err := parseTriple(fields[1:], core.NewVector)
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex normal: %w", lineNo, err)
			}
			normals = append(normals, n)
		case "f":
			tris, err := parseFace(fields[1:], vertices, normals)
			if err != nil {
				return nil, fmt.Errorf("line %d: face: %w", lineNo, err)
			}
			for _, tri := range tris {
				m.group(currentGroup).AddChild(tri)
			}
		case "g":
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: group statement without a name", lineNo)
			}
			currentGroup = fields[1]
		default:
			m.IgnoredLines++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading obj data: %w", err)
	}
	return m, nil
}

// AsGroup collects everything parsed into a single group: the default group
// first, then the named groups in file order.
func (m *Mesh) AsGroup() *geometry.Group {
	g := geometry.NewGroup()
	if len(m.DefaultGroup.Children()) > 0 {
		g.AddChild(m.DefaultGroup)
	}
	for _, name := range m.groupOrder {
		g.AddChild(m.Groups[name])
	}
	return g
}

func (m *Mesh) group(name string) *geometry.Group {
	if name == "" {
		return m.DefaultGroup
	}
	g, ok := m.Groups[name]
	if !ok {
		g = geometry.NewGroup()
		m.Groups[name] = g
		m.groupOrder = append(m.groupOrder, name)
	}
	return g
}

func parseTriple(fields []string, build func(x, y, z float64) core.Tuple) (core.Tuple, error) {
	if len(fields) < 3 {
		return core.Tuple{}, fmt.Errorf("want 3 components, got %d", len(fields))
	}
	var vals [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return core.Tuple{}, err
		}
		vals[i] = v
	}
	return build(vals[0], vals[1], vals[2]), nil
}

// parseFace fan-triangulates a polygon. Vertex references are 1-based and
// may carry /texture/normal suffixes; texture indices are ignored.
func parseFace(fields []string, vertices, normals []core.Tuple) ([]geometry.Shape, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("want at least 3 vertices, got %d", len(fields))
	}

	var (
		faceVerts   []core.Tuple
		faceNormals []core.Tuple
	)
	for _, field := range fields {
		parts := strings.Split(field, "/")

		vi, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("vertex reference %q: %w", field, err)
		}
		if vi < 1 || vi > len(vertices) {
			return nil, fmt.Errorf("vertex reference %d out of range", vi)
		}
		faceVerts = append(faceVerts, vertices[vi-1])

		if len(parts) == 3 && parts[2] != "" {
			ni, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, fmt.Errorf("normal reference %q: %w", field, err)
			}
			if ni < 1 || ni > len(normals) {
				return nil, fmt.Errorf("normal reference %d out of range", ni)
			}
			faceNormals = append(faceNormals, normals[ni-1])
		}
	}
	if len(faceNormals) > 0 && len(faceNormals) != len(faceVerts) {
		return nil, fmt.Errorf("face mixes plain and normal-bearing vertices")
	}

	var tris []geometry.Shape
	for i := 1; i < len(faceVerts)-1; i++ {
		if len(faceNormals) > 0 {
			tris = append(tris, geometry.NewSmoothTriangle(
				faceVerts[0], faceVerts[i], faceVerts[i+1],
				faceNormals[0], faceNormals[i], faceNormals[i+1],
			))
		} else {
			tris = append(tris, geometry.NewTriangle(faceVerts[0], faceVerts[i], faceVerts[i+1]))
		}
	}
	return tris, nil
}
