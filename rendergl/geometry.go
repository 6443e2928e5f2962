package rendergl

import "fmt"

// Geometry is an uploaded vertex buffer together with the vertex array that
// describes it.
type Geometry struct {
	_ noCopy

	ctx   Context
	vbo   *Buffer
	vao   *VertexArray
	mode  Enum
	count int32
}

// UploadVertices copies vertices into a new array buffer and configures a
// vertex array from the layout of V (see VertexLayoutOf). The geometry draws
// as a triangle list.
func UploadVertices[V any](ctx Context, vertices []V) (*Geometry, error) {
	var zero V
	layout, err := VertexLayoutOf(zero)
	if err != nil {
		return nil, err
	}
	data, err := EncodeVertices(vertices)
	if err != nil {
		return nil, err
	}
	return UploadBytes(ctx, data, layout)
}

// UploadBytes uploads pre-encoded vertex records. len(data) should be a
// multiple of layout.Stride; the vertex count is truncated otherwise.
func UploadBytes(ctx Context, data []byte, layout VertexLayout) (*Geometry, error) {
	if layout.Stride <= 0 {
		return nil, fmt.Errorf("upload vertices: layout has stride %d", layout.Stride)
	}

	vbo, err := NewArrayBuffer(ctx)
	if err != nil {
		return nil, err
	}
	vbo.Bind()
	if err := vbo.StaticDrawData(data); err != nil {
		vbo.Unbind()
		vbo.Delete()
		return nil, err
	}

	vao, err := NewVertexArray(ctx)
	if err != nil {
		vbo.Unbind()
		vbo.Delete()
		return nil, err
	}
	vao.Bind()
	vao.BindAttributes(layout.Attributes)
	vao.Unbind()
	vbo.Unbind()

	return &Geometry{
		ctx:   ctx,
		vbo:   vbo,
		vao:   vao,
		mode:  TRIANGLES,
		count: int32(len(data) / int(layout.Stride)),
	}, nil
}

// VertexCount is the number of whole records in the buffer.
func (g *Geometry) VertexCount() int32 { return g.count }

// Render binds the vertex array and draws every vertex. The program must
// already be in use.
func (g *Geometry) Render() {
	g.vao.Bind()
	g.ctx.DrawArrays(g.mode, 0, g.count)
}

// Delete releases the vertex array and then the buffer.
func (g *Geometry) Delete() {
	if g == nil {
		return
	}
	g.vao.Delete()
	g.vbo.Delete()
}
