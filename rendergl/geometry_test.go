package rendergl_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/gekkogl/rendergl"
	"github.com/gekko3d/gekkogl/rendergl/gltest"
)

type colouredVertex struct {
	Pos rendergl.Vector3             `location:"0"`
	Clr rendergl.U2U10U10U10RevFloat `location:"1"`
}

type paddedVertex struct {
	Pos    rendergl.Vector2 `location:"0"`
	Unused float32
	Normal rendergl.I2I10I10I10RevFloat `location:"3"`
}

func TestVertexLayoutOf(t *testing.T) {
	layout, err := rendergl.VertexLayoutOf(colouredVertex{})
	require.NoError(t, err)

	assert.Equal(t, int32(16), layout.Stride)
	require.Len(t, layout.Attributes, 2)

	pos := layout.Attributes[0]
	assert.Equal(t, uint32(0), pos.Location)
	assert.Equal(t, int32(3), pos.Components)
	assert.Equal(t, rendergl.FLOAT, pos.Type)
	assert.False(t, pos.Normalized)
	assert.Equal(t, 0, pos.Offset)
	assert.Equal(t, int32(16), pos.Stride)

	clr := layout.Attributes[1]
	assert.Equal(t, uint32(1), clr.Location)
	assert.Equal(t, int32(4), clr.Components)
	assert.Equal(t, rendergl.UNSIGNED_INT_2_10_10_10_REV, clr.Type)
	assert.True(t, clr.Normalized)
	assert.Equal(t, 12, clr.Offset)
}

func TestVertexLayoutOf_UntaggedFieldsTakeSpace(t *testing.T) {
	layout, err := rendergl.VertexLayoutOf(paddedVertex{})
	require.NoError(t, err)

	assert.Equal(t, int32(16), layout.Stride)
	require.Len(t, layout.Attributes, 2)
	assert.Equal(t, uint32(3), layout.Attributes[1].Location)
	assert.Equal(t, 12, layout.Attributes[1].Offset)
}

func TestVertexLayoutOf_Errors(t *testing.T) {
	_, err := rendergl.VertexLayoutOf(42)
	assert.ErrorContains(t, err, "must be a struct")

	type badLocation struct {
		Pos rendergl.Vector3 `location:"first"`
	}
	_, err = rendergl.VertexLayoutOf(badLocation{})
	assert.ErrorContains(t, err, "bad location")

	type notAttribute struct {
		Pos [3]float32 `location:"0"`
	}
	_, err = rendergl.VertexLayoutOf(notAttribute{})
	assert.ErrorContains(t, err, "not an attribute")

	type unsized struct {
		Name string
	}
	_, err = rendergl.VertexLayoutOf(unsized{})
	assert.ErrorContains(t, err, "no fixed size")
}

func TestEncodeVertices(t *testing.T) {
	data, err := rendergl.EncodeVertices([]colouredVertex{
		{Pos: rendergl.NewVector3(0.5, -0.5, 0), Clr: rendergl.NewU2U10U10U10RevFloat(1, 0, 0, 1)},
		{Pos: rendergl.NewVector3(-0.5, -0.5, 0), Clr: rendergl.NewU2U10U10U10RevFloat(0, 1, 0, 1)},
	})
	require.NoError(t, err)
	require.Len(t, data, 32)

	assert.Equal(t, uint32(1023), binary.NativeEndian.Uint32(data[12:16]))
	assert.Equal(t, uint32(1023)<<10, binary.NativeEndian.Uint32(data[28:32]))
}

func TestUploadVertices(t *testing.T) {
	ctx := gltest.New()
	vertices := []colouredVertex{
		{Pos: rendergl.NewVector3(0.5, -0.5, 0), Clr: rendergl.NewU2U10U10U10RevFloat(1, 0, 0, 1)},
		{Pos: rendergl.NewVector3(-0.5, -0.5, 0), Clr: rendergl.NewU2U10U10U10RevFloat(0, 1, 0, 1)},
		{Pos: rendergl.NewVector3(0, 0.5, 0), Clr: rendergl.NewU2U10U10U10RevFloat(0, 0, 1, 1)},
	}

	g, err := rendergl.UploadVertices(ctx, vertices)
	require.NoError(t, err)
	assert.Equal(t, int32(3), g.VertexCount())
	assert.Equal(t, 1, ctx.LiveOf(gltest.KindBuffer))
	assert.Equal(t, 1, ctx.LiveOf(gltest.KindVertexArray))

	// nothing is left bound after setup
	assert.Zero(t, ctx.BoundVertexArray())

	draws := ctx.Draws()
	assert.Empty(t, draws)

	g.Render()
	draws = ctx.Draws()
	require.Len(t, draws, 1)
	assert.Equal(t, rendergl.TRIANGLES, draws[0].Mode)
	assert.Equal(t, int32(3), draws[0].Count)

	pointers := ctx.AttribPointers(draws[0].VertexArray)
	require.Len(t, pointers, 2)
	assert.Equal(t, gltest.AttribPointer{
		Location: 1, Size: 4, Type: rendergl.UNSIGNED_INT_2_10_10_10_REV,
		Normalized: true, Stride: 16, Offset: 12, Buffer: pointers[0].Buffer,
	}, pointers[1])
	assert.Len(t, ctx.BufferContents(pointers[0].Buffer), 48)

	g.Delete()
	g.Delete()
	assert.Equal(t, 0, ctx.LiveHandles())
	assert.Empty(t, ctx.PendingErrors())
}

func TestUploadBytes_TruncatesPartialRecords(t *testing.T) {
	ctx := gltest.New()
	layout, err := rendergl.VertexLayoutOf(colouredVertex{})
	require.NoError(t, err)

	g, err := rendergl.UploadBytes(ctx, make([]byte, 40), layout)
	require.NoError(t, err)
	assert.Equal(t, int32(2), g.VertexCount())
	g.Delete()
}

func TestUploadBytes_DriverErrorReleasesBuffer(t *testing.T) {
	ctx := gltest.New()
	layout, err := rendergl.VertexLayoutOf(colouredVertex{})
	require.NoError(t, err)

	ctx.PushError(rendergl.OUT_OF_MEMORY)
	_, err = rendergl.UploadBytes(ctx, make([]byte, 16), layout)

	var ce *rendergl.ContextError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "buffer data", ce.Op)
	assert.Equal(t, 0, ctx.LiveHandles())
}

func TestUploadBytes_ZeroStride(t *testing.T) {
	_, err := rendergl.UploadBytes(gltest.New(), nil, rendergl.VertexLayout{})
	assert.Error(t, err)
}
