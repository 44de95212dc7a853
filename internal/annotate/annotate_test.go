package annotate_test

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/docfields/constants"
	"github.com/joseph-ayodele/docfields/internal/annotate"
	"github.com/joseph-ayodele/docfields/internal/region"
	"github.com/joseph-ayodele/docfields/internal/template"
)

func page() *image.NRGBA {
	return imaging.New(200, 120, color.White)
}

func tpl() *template.Template {
	return &template.Template{
		ID: template.ID{Family: constants.CRLV, Variant: constants.VariantDefault},
		Fields: []template.Field{
			{Name: "placa", Rect: region.Rect{X1: 20, Y1: 40, X2: 120, Y2: 80}},
			{Name: "vazio", Rect: region.Rect{X1: 5, Y1: 5, X2: 5, Y2: 50}},
		},
	}
}

func TestDraw_OutlinesRegions(t *testing.T) {
	src := page()
	out := annotate.Draw(src, tpl(), annotate.DefaultStyle)

	require.Equal(t, src.Bounds().Size(), out.Bounds().Size())
	// left edge of the rectangle is stroked red
	r, g, b, _ := out.At(20, 60).RGBA()
	assert.Greater(t, r, g)
	assert.Greater(t, r, b)
	// inside stays white
	r, g, b, _ = out.At(70, 60).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})
	// source is untouched
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, src.NRGBAAt(20, 60))
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	img := annotate.Draw(page(), tpl(), annotate.Style{})

	path := filepath.Join(dir, "overlay.png")
	require.NoError(t, annotate.Save(path, img))
	back, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 200, back.Bounds().Dx())

	assert.Error(t, annotate.Save(filepath.Join(dir, "overlay.gifx"), img))
}

func TestOutputPath(t *testing.T) {
	id := template.ID{Family: constants.CNH, Variant: constants.VariantLegacyDigital}
	assert.Equal(t, filepath.Join("/out", "cnh_frente_legacy-digital.png"), annotate.OutputPath("/out", "/in/cnh_frente.pdf", id))
}
