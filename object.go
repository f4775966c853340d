package cosmo

// Object is one drawable celestial body: a mesh, the body kind that
// selects its surface shader, and a model matrix.
type Object struct {
	Mesh   *Mesh
	Body   Body
	Matrix Matrix
}

func NewObject(mesh *Mesh, body Body) *Object {
	return &Object{Mesh: mesh, Body: body, Matrix: Identity()}
}

// NewBodyObject builds a body on a unit UV sphere. detail controls the
// stack count; slices are twice that.
func NewBodyObject(body Body, detail int) *Object {
	return NewObject(NewSphere(detail, detail*2), body)
}

// NewBodyObjectFromFile loads the body's mesh from an OBJ file.
func NewBodyObjectFromFile(body Body, path string) (*Object, error) {
	mesh, err := LoadOBJ(path)
	if err != nil {
		return nil, err
	}
	return NewObject(mesh, body), nil
}

// Simplified returns a lower-detail copy sharing body and matrix, for
// bodies far enough from the camera that full tessellation is wasted.
func (o *Object) Simplified(factor float64) *Object {
	return &Object{Mesh: o.Mesh.Simplify(factor), Body: o.Body, Matrix: o.Matrix}
}
