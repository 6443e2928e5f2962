package rendergl

// Buffer owns one buffer object bound to a fixed target.
type Buffer struct {
	_ noCopy

	ctx    Context
	id     uint32
	target Enum
	size   int
}

// NewArrayBuffer creates a vertex attribute buffer.
func NewArrayBuffer(ctx Context) (*Buffer, error) {
	return newBuffer(ctx, ARRAY_BUFFER)
}

func newBuffer(ctx Context, target Enum) (*Buffer, error) {
	id := ctx.CreateBuffer()
	if id == 0 {
		if err := CheckError(ctx, "create buffer"); err != nil {
			return nil, err
		}
		return nil, &ContextError{Op: "create buffer", Message: "driver returned no buffer object"}
	}
	return &Buffer{ctx: ctx, id: id, target: target}, nil
}

func (b *Buffer) ID() uint32 { return b.id }

// Size is the byte length of the last upload.
func (b *Buffer) Size() int { return b.size }

func (b *Buffer) Bind() {
	b.ctx.BindBuffer(b.target, b.id)
}

func (b *Buffer) Unbind() {
	b.ctx.BindBuffer(b.target, 0)
}

// StaticDrawData replaces the buffer contents. The buffer must be bound.
func (b *Buffer) StaticDrawData(data []byte) error {
	b.ctx.BufferData(b.target, data, STATIC_DRAW)
	if err := CheckError(b.ctx, "buffer data"); err != nil {
		return err
	}
	b.size = len(data)
	return nil
}

// Delete releases the buffer object. Calling it more than once is a no-op.
func (b *Buffer) Delete() {
	if b == nil || b.id == 0 {
		return
	}
	b.ctx.DeleteBuffer(b.id)
	b.id = 0
}

// VertexArray owns one vertex array object.
type VertexArray struct {
	_ noCopy

	ctx Context
	id  uint32
}

func NewVertexArray(ctx Context) (*VertexArray, error) {
	id := ctx.CreateVertexArray()
	if id == 0 {
		if err := CheckError(ctx, "create vertex array"); err != nil {
			return nil, err
		}
		return nil, &ContextError{Op: "create vertex array", Message: "driver returned no vertex array object"}
	}
	return &VertexArray{ctx: ctx, id: id}, nil
}

func (va *VertexArray) ID() uint32 { return va.id }

func (va *VertexArray) Bind() {
	va.ctx.BindVertexArray(va.id)
}

func (va *VertexArray) Unbind() {
	va.ctx.BindVertexArray(0)
}

// BindAttributes enables and configures each attribute slot. The vertex
// array and the source array buffer must both be bound.
func (va *VertexArray) BindAttributes(attrs []AttribLayout) {
	for _, a := range attrs {
		va.ctx.EnableVertexAttribArray(a.Location)
		va.ctx.VertexAttribPointer(a.Location, a.Components, a.Type, a.Normalized, a.Stride, a.Offset)
	}
}

// Delete releases the vertex array object. Calling it more than once is a
// no-op.
func (va *VertexArray) Delete() {
	if va == nil || va.id == 0 {
		return
	}
	va.ctx.DeleteVertexArray(va.id)
	va.id = 0
}
