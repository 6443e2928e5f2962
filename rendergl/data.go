package rendergl

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AttribFormat describes how one attribute value is laid out in memory.
type AttribFormat struct {
	Components int32
	Type       Enum
	Normalized bool
	Size       int
}

// AttribLayout is an AttribFormat placed inside a vertex record and bound to
// a shader input location.
type AttribLayout struct {
	AttribFormat
	Location uint32
	Stride   int32
	Offset   int
}

// Attribute is implemented by every type that can appear as a tagged field
// of a vertex record.
type Attribute interface {
	AttribFormat() AttribFormat
}

// DescribeLayout places the attribute format of a at offset within a record
// of the given stride.
func DescribeLayout(a Attribute, location uint32, stride int32, offset int) AttribLayout {
	return AttribLayout{
		AttribFormat: a.AttribFormat(),
		Location:     location,
		Stride:       stride,
		Offset:       offset,
	}
}

// Float32 is a single float attribute.
type Float32 struct {
	D0 float32
}

func (Float32) AttribFormat() AttribFormat {
	return AttribFormat{Components: 1, Type: FLOAT, Size: 4}
}

// Vector2 is a two component float attribute.
type Vector2 struct {
	X, Y float32
}

func (Vector2) AttribFormat() AttribFormat {
	return AttribFormat{Components: 2, Type: FLOAT, Size: 8}
}

// Vector3 is a three component float attribute.
type Vector3 struct {
	X, Y, Z float32
}

func NewVector3(x, y, z float32) Vector3 { return Vector3{x, y, z} }

func (Vector3) AttribFormat() AttribFormat {
	return AttribFormat{Components: 3, Type: FLOAT, Size: 12}
}

func (v Vector3) Vec3() mgl32.Vec3 { return mgl32.Vec3{v.X, v.Y, v.Z} }

// Vector4 is a four component float attribute.
type Vector4 struct {
	X, Y, Z, W float32
}

func (Vector4) AttribFormat() AttribFormat {
	return AttribFormat{Components: 4, Type: FLOAT, Size: 16}
}

// Packed 2_10_10_10_REV words store x in bits 0-9, y in 10-19, z in 20-29
// and a 2 bit field in 30-31. The 2 bit field has no meaning here and is
// written as zero unless set explicitly with WithReserved.
const (
	field10Mask   = 0x3FF
	reservedMask  = 0x3
	reservedShift = 30

	unormMax = 1023
	snormMax = 511
)

// U2U10U10U10RevFloat is three unsigned normalized 10 bit components
// packed in one word. Inputs are clamped to [0, 1].
type U2U10U10U10RevFloat struct {
	Inner uint32
}

// NewU2U10U10U10RevFloat packs x, y and z. The fourth component is accepted
// for vec4 call sites but not stored: the 2 bit field stays zero.
func NewU2U10U10U10RevFloat(x, y, z, _ float32) U2U10U10U10RevFloat {
	return U2U10U10U10RevFloat{Inner: PackUnorm2101010(x, y, z)}
}

func (U2U10U10U10RevFloat) AttribFormat() AttribFormat {
	return AttribFormat{Components: 4, Type: UNSIGNED_INT_2_10_10_10_REV, Normalized: true, Size: 4}
}

// Unpack returns the three stored components.
func (p U2U10U10U10RevFloat) Unpack() (x, y, z float32) {
	return UnpackUnorm2101010(p.Inner)
}

// Reserved returns the 2 bit field.
func (p U2U10U10U10RevFloat) Reserved() uint8 { return reservedBits(p.Inner) }

// WithReserved returns a copy with the 2 bit field set to the low two bits
// of bits.
func (p U2U10U10U10RevFloat) WithReserved(bits uint8) U2U10U10U10RevFloat {
	return U2U10U10U10RevFloat{Inner: withReserved(p.Inner, bits)}
}

// I2I10I10I10RevFloat is three signed normalized 10 bit components packed in
// one word. Inputs are clamped to [-1, 1].
type I2I10I10I10RevFloat struct {
	Inner uint32
}

// NewI2I10I10I10RevFloat packs x, y and z; see NewU2U10U10U10RevFloat for
// the fourth component.
func NewI2I10I10I10RevFloat(x, y, z, _ float32) I2I10I10I10RevFloat {
	return I2I10I10I10RevFloat{Inner: PackSnorm2101010(x, y, z)}
}

func (I2I10I10I10RevFloat) AttribFormat() AttribFormat {
	return AttribFormat{Components: 4, Type: INT_2_10_10_10_REV, Normalized: true, Size: 4}
}

func (p I2I10I10I10RevFloat) Unpack() (x, y, z float32) {
	return UnpackSnorm2101010(p.Inner)
}

func (p I2I10I10I10RevFloat) Reserved() uint8 { return reservedBits(p.Inner) }

func (p I2I10I10I10RevFloat) WithReserved(bits uint8) I2I10I10I10RevFloat {
	return I2I10I10I10RevFloat{Inner: withReserved(p.Inner, bits)}
}

// PackUnorm2101010 clamps each component to [0, 1], scales it to [0, 1023]
// and rounds to nearest.
func PackUnorm2101010(x, y, z float32) uint32 {
	return encodeUnorm10(x) | encodeUnorm10(y)<<10 | encodeUnorm10(z)<<20
}

// UnpackUnorm2101010 is the inverse of PackUnorm2101010. The 2 bit field is
// ignored.
func UnpackUnorm2101010(v uint32) (x, y, z float32) {
	return decodeUnorm10(v), decodeUnorm10(v >> 10), decodeUnorm10(v >> 20)
}

// PackSnorm2101010 clamps each component to [-1, 1], scales it to
// [-511, 511] and stores it as a two's complement 10 bit field. The code
// -512 is never produced, so -1 has a single encoding.
func PackSnorm2101010(x, y, z float32) uint32 {
	return encodeSnorm10(x) | encodeSnorm10(y)<<10 | encodeSnorm10(z)<<20
}

// UnpackSnorm2101010 is the inverse of PackSnorm2101010, using the GL rule
// max(c/511, -1) so the unused -512 code also maps to -1.
func UnpackSnorm2101010(v uint32) (x, y, z float32) {
	return decodeSnorm10(v), decodeSnorm10(v >> 10), decodeSnorm10(v >> 20)
}

func encodeUnorm10(f float32) uint32 {
	f = clamp(f, 0, 1)
	return uint32(math.Round(float64(f)*unormMax)) & field10Mask
}

func decodeUnorm10(v uint32) float32 {
	return float32(v&field10Mask) / unormMax
}

func encodeSnorm10(f float32) uint32 {
	f = clamp(f, -1, 1)
	c := int32(math.Round(float64(f) * snormMax))
	return uint32(c) & field10Mask
}

func decodeSnorm10(v uint32) float32 {
	c := int32(v & field10Mask)
	if c&0x200 != 0 {
		c -= 0x400
	}
	f := float32(c) / snormMax
	if f < -1 {
		return -1
	}
	return f
}

func reservedBits(v uint32) uint8 {
	return uint8(v >> reservedShift & reservedMask)
}

func withReserved(v uint32, bits uint8) uint32 {
	return v&^(reservedMask<<reservedShift) | uint32(bits&reservedMask)<<reservedShift
}

func clamp(f, lo, hi float32) float32 {
	if math.IsNaN(float64(f)) {
		return lo
	}
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
