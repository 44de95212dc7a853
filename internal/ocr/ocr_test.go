package ocr_test

import (
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/docfields/internal/common"
	"github.com/joseph-ayodele/docfields/internal/ocr"
	"github.com/joseph-ayodele/docfields/mocks"
)

func TestNormalize(t *testing.T) {
	in := "\r\n  CARTEIRA\t\tNACIONAL   DE HABILITAÇÃO  \r\n-----\n\n\n\nNOME\f"
	assert.Equal(t, "CARTEIRA NACIONAL DE HABILITAÇÃO\n\nNOME", ocr.Normalize(in))
	assert.Equal(t, "", ocr.Normalize(""))
}

func TestNormalize_KeepsDigitsAndLetters(t *testing.T) {
	// dates and plates must survive untouched
	assert.Equal(t, "01/02/2024 ABC1D23 O0", ocr.Normalize("01/02/2024 ABC1D23 O0"))
}

func TestSingleLine(t *testing.T) {
	assert.Equal(t, "RUA DAS FLORES 123", ocr.SingleLine("  RUA DAS\n\n  FLORES \r\n123 \n"))
	assert.Equal(t, "A B", ocr.SingleLine("A\f\nB"))
	assert.Equal(t, "", ocr.SingleLine(" \n \n"))
}

func TestTesseract_Recognize(t *testing.T) {
	runner := new(mocks.MockRunner)
	args := mock.MatchedBy(func(a []string) bool {
		return len(a) == 8 &&
			filepath.Ext(a[0]) == ".png" &&
			a[1] == "stdout" &&
			a[2] == "-l" && a[3] == "por" &&
			a[4] == "--psm" && a[5] == "7" &&
			a[6] == "--tessdata-dir" && a[7] == "/opt/tessdata"
	})
	runner.On("Run", mock.Anything, "tesseract", args).Return([]byte("FULANO\n"), nil, nil)

	tess := ocr.NewTesseract(ocr.Config{PSM: 7, TessdataDir: "/opt/tessdata"}, runner, nil)
	txt, err := tess.Recognize(context.Background(), image.NewGray(image.Rect(0, 0, 8, 8)), "por")

	require.NoError(t, err)
	assert.Equal(t, "FULANO\n", txt)
	runner.AssertExpectations(t)
}

func TestTesseract_RunnerFailure(t *testing.T) {
	runner := new(mocks.MockRunner)
	runner.On("Run", mock.Anything, "/usr/local/bin/tesseract", mock.Anything).
		Return(nil, []byte("Failed loading language 'xx'"), errors.New("exit status 1"))

	tess := ocr.NewTesseract(ocr.Config{Tesseract: "/usr/local/bin/tesseract"}, runner, nil)
	_, err := tess.Recognize(context.Background(), image.NewGray(image.Rect(0, 0, 4, 4)), "xx")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed loading language")
}

func TestPoppler_PageText(t *testing.T) {
	runner := new(mocks.MockRunner)
	want := []string{"-layout", "-enc", "UTF-8", "-eol", "unix", "-f", "1", "-l", "1", "extrato.pdf", "-"}
	runner.On("Run", mock.Anything, "pdftotext", want).Return([]byte("linha 1\nlinha 2\n\f"), nil, nil)

	p := ocr.NewPoppler(ocr.Config{}, runner, nil)
	txt, err := p.PageText(context.Background(), "extrato.pdf")

	require.NoError(t, err)
	assert.Equal(t, "linha 1\nlinha 2\n", txt)
}

func TestPoppler_RenderImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.png")
	require.NoError(t, imaging.Save(image.NewGray(image.Rect(0, 0, 12, 7)), path))

	runner := new(mocks.MockRunner)
	p := ocr.NewPoppler(ocr.Config{}, runner, nil)
	pages, err := p.Render(context.Background(), path, 300)

	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, 12, pages[0].Bounds().Dx())
	assert.Equal(t, 7, pages[0].Bounds().Dy())
	runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
}

func TestPoppler_RenderPDFRunsPdftoppm(t *testing.T) {
	pdf := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF-1.4\n"), 0o644))

	runner := new(mocks.MockRunner)
	args := mock.MatchedBy(func(a []string) bool {
		return len(a) == 10 && a[0] == "-png" && a[2] == "200" && a[7] == "-singlefile" && a[8] == pdf
	})
	runner.On("Run", mock.Anything, "pdftoppm", args).
		Run(func(c mock.Arguments) {
			a := c.Get(2).([]string)
			_ = imaging.Save(image.NewGray(image.Rect(0, 0, 5, 9)), a[9]+".png")
		}).
		Return(nil, nil, nil)

	p := ocr.NewPoppler(ocr.Config{}, runner, nil)
	pages, err := p.Render(context.Background(), pdf, 200)

	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, 9, pages[0].Bounds().Dy())
}

func TestPoppler_RenderUnsupportedExtension(t *testing.T) {
	p := ocr.NewPoppler(ocr.Config{}, new(mocks.MockRunner), nil)
	_, err := p.Render(context.Background(), "notes.docx", 300)

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestCheckTools(t *testing.T) {
	err := ocr.CheckTools("definitely-not-a-real-binary-4711")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConfiguration)
}

func TestTools_Defaults(t *testing.T) {
	assert.Equal(t, []string{"tesseract", "pdftoppm", "pdftotext"}, ocr.Tools(ocr.Config{}))
	assert.Equal(t, "/opt/tess", ocr.Tools(ocr.ConfigFrom(common.OCRConfig{Tesseract: "/opt/tess"}))[0])
}
