package gekko

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/gekkogl/resources"
)

func solidImage(size int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestScaleIcon(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	icons := scaleIcon(solidImage(64, red), []int{16, 32, 48})

	require.Len(t, icons, 3)
	for i, size := range []int{16, 32, 48} {
		assert.Equal(t, image.Rect(0, 0, size, size), icons[i].Bounds())
		c := color.NRGBAModel.Convert(icons[i].At(size/2, size/2)).(color.NRGBA)
		assert.InDelta(t, 255, int(c.R), 1)
		assert.InDelta(t, 0, int(c.G), 1)
		assert.InDelta(t, 255, int(c.A), 1)
	}
}

func TestLoadIcon(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solidImage(8, color.NRGBA{B: 255, A: 255})))

	res := resources.FromFS(fstest.MapFS{
		"icon.png":   {Data: buf.Bytes()},
		"broken.png": {Data: []byte("not a png")},
	})

	icons, err := loadIcon(res, "icon.png")
	require.NoError(t, err)
	assert.Len(t, icons, len(iconSizes))

	_, err = loadIcon(res, "broken.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode icon")

	_, err = loadIcon(res, "missing.png")
	assert.ErrorIs(t, err, resources.ErrNotFound)
}

func TestNewPlatformWindow_Defaults(t *testing.T) {
	m := NewPlatformWindow(0, 0, "")
	assert.Equal(t, 1280, m.Width)
	assert.Equal(t, 720, m.Height)
	assert.Equal(t, "Gekko", m.Title)
	assert.True(t, m.VSync)
}

func TestWindowIconModule_NeedsWindow(t *testing.T) {
	_, err := NewAppBuilder().UseModule(WindowIconModule{Name: "icon.png"}).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs PlatformWindowModule")

	_, err = NewAppBuilder().UseModule(WindowIconModule{}).Build()
	assert.NoError(t, err)
}
