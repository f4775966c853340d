package cosmo

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadOBJ reads a Wavefront OBJ model, the format the planet spheres
// ship in. Faces with more than three vertices are fan-triangulated.
func LoadOBJ(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer file.Close()
	return LoadOBJFromReader(file)
}

func LoadOBJFromBytes(b []byte) (*Mesh, error) {
	return LoadOBJFromReader(bytes.NewReader(b))
}

func LoadOBJFromReader(r io.Reader) (*Mesh, error) {
	// Index 0 stays unused so OBJ's 1-based indices map directly.
	vs := make([]Vector, 1, 1024)
	vts := make([]Vector, 1, 1024)
	vns := make([]Vector, 1, 1024)

	var triangles []*Triangle
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 2 || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			vs = append(vs, Vector{pf(fields[1]), pf(fields[2]), pf(fields[3])})
		case "vt":
			vts = append(vts, Vector{pf(fields[1]), pf(fields[2]), 0})
		case "vn":
			vns = append(vns, Vector{pf(fields[1]), pf(fields[2]), pf(fields[3])})
		case "f":
			args := fields[1:]
			fvs := make([]int, len(args))
			fvts := make([]int, len(args))
			fvns := make([]int, len(args))
			for i, arg := range args {
				vertex := strings.Split(arg+"//", "/")
				fvs[i] = fixIndex(vertex[0], len(vs))
				fvts[i] = fixIndex(vertex[1], len(vts))
				fvns[i] = fixIndex(vertex[2], len(vns))
			}
			for i := 1; i < len(fvs)-1; i++ {
				i1, i2, i3 := 0, i, i+1
				t := Triangle{}
				t.V1.Position = vs[fvs[i1]]
				t.V2.Position = vs[fvs[i2]]
				t.V3.Position = vs[fvs[i3]]
				if fvns[i1] > 0 {
					t.V1.Normal = vns[fvns[i1]]
					t.V2.Normal = vns[fvns[i2]]
					t.V3.Normal = vns[fvns[i3]]
				}
				if fvts[i1] > 0 {
					t.V1.Texcoord = vts[fvts[i1]]
					t.V2.Texcoord = vts[fvts[i2]]
					t.V3.Texcoord = vts[fvts[i3]]
				}
				t.FixNormals()
				triangles = append(triangles, &t)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	return NewTriangleMesh(triangles), nil
}

func pf(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// fixIndex resolves an OBJ index, including the negative relative form.
func fixIndex(value string, length int) int {
	if value == "" {
		return 0
	}
	parsed, _ := strconv.Atoi(value)
	if parsed < 0 {
		return parsed + length
	}
	return parsed
}
