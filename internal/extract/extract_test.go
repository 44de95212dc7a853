package extract_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/docfields/constants"
	"github.com/joseph-ayodele/docfields/internal/common"
	"github.com/joseph-ayodele/docfields/internal/extract"
	"github.com/joseph-ayodele/docfields/internal/region"
	"github.com/joseph-ayodele/docfields/internal/template"
	"github.com/joseph-ayodele/docfields/mocks"
)

var crlv = template.ID{Family: constants.CRLV, Variant: constants.VariantDefault}

func newStore(t *testing.T, id template.ID, content string) *template.Store {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, id.Family.Dir(), id.Variant+".json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	store, err := template.NewStore(dir, nil)
	require.NoError(t, err)
	return store
}

func blank() image.Image {
	img := image.NewGray(image.Rect(0, 0, 200, 100))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return img
}

func TestOrchestrator_BlankPageGivesEmptyFields(t *testing.T) {
	store := newStore(t, crlv, `{"placa": [0,0,50,20], "renavam": [50,0,100,20], "chassi": [0,20,100,40]}`)
	rec := new(mocks.MockRecognizer)
	rec.On("Recognize", mock.Anything, mock.Anything, "por").Return("", nil)
	o := extract.NewOrchestrator(store, region.NewExtractor(rec, "por", nil), nil)

	res, err := o.Extract(context.Background(), blank(), crlv)

	require.NoError(t, err)
	assert.Equal(t, constants.StatusSuccess, res.Status)
	assert.Equal(t, "CRLV data extracted successfully.", res.Message)
	require.Len(t, res.Fields, 3)
	for _, f := range res.Fields {
		assert.Equal(t, "", f.Text)
	}
	rec.AssertNumberOfCalls(t, "Recognize", 3)
}

func TestOrchestrator_KeepsTemplateOrderAndDegenerateFields(t *testing.T) {
	store := newStore(t, crlv, `{"placa": [0,0,50,20], "vazio": [10,10,10,90], "cor": [50,0,100,20]}`)
	rec := new(mocks.MockRecognizer)
	rec.On("Recognize", mock.Anything, mock.Anything, "por").Return("ABC1D23\n", nil).Once()
	rec.On("Recognize", mock.Anything, mock.Anything, "por").Return(" PRATA ", nil).Once()
	o := extract.NewOrchestrator(store, region.NewExtractor(rec, "por", nil), nil)

	res, err := o.Extract(context.Background(), blank(), crlv)

	require.NoError(t, err)
	assert.Equal(t, []extract.FieldValue{
		{Name: "placa", Text: "ABC1D23"},
		{Name: "vazio", Text: ""},
		{Name: "cor", Text: "PRATA"},
	}, res.Fields)
	rec.AssertNumberOfCalls(t, "Recognize", 2)
}

func TestOrchestrator_TemplateNotFound(t *testing.T) {
	store := newStore(t, crlv, `{"placa": [0,0,50,20]}`)
	o := extract.NewOrchestrator(store, region.NewExtractor(new(mocks.MockRecognizer), "por", nil), nil)

	_, err := o.Extract(context.Background(), blank(), template.ID{Family: constants.CNH, Variant: constants.VariantState})

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrTemplateNotFound)
}

func TestOrchestrator_RecognizerErrorAborts(t *testing.T) {
	store := newStore(t, crlv, `{"placa": [0,0,50,20], "cor": [50,0,100,20]}`)
	rec := new(mocks.MockRecognizer)
	rec.On("Recognize", mock.Anything, mock.Anything, "por").Return("", errors.New("killed"))
	o := extract.NewOrchestrator(store, region.NewExtractor(rec, "por", nil), nil)

	_, err := o.Extract(context.Background(), blank(), crlv)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "field placa")
	rec.AssertNumberOfCalls(t, "Recognize", 1)
}

func TestResult_MarshalJSON_FlatAndOrdered(t *testing.T) {
	res := extract.Result{
		Status:  constants.StatusSuccess,
		Message: "CNH data extracted successfully.",
		Fields: []extract.FieldValue{
			{Name: "nome", Text: "JOSÉ <DA> SILVA & FILHOS"},
			{Name: "cpf", Text: "123.456.789-00"},
		},
	}

	b, err := res.MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t,
		`{"nome":"JOSÉ <DA> SILVA & FILHOS","cpf":"123.456.789-00","status":"success","message":"CNH data extracted successfully."}`,
		string(b))

	var m map[string]string
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, res.Map(), m)
	assert.Len(t, res.Fields, 2)
}

func TestFailure(t *testing.T) {
	err := fmt.Errorf("read header: %w", common.ValidationFailure("document does not look like a valid CNH"))

	res := extract.Failure(err)

	assert.Equal(t, constants.StatusError, res.Status)
	assert.Equal(t, "read header: document does not look like a valid CNH", res.Message)
	assert.Empty(t, res.Fields)

	b, err := res.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"error","message":"read header: document does not look like a valid CNH"}`, string(b))
}

func TestResult_Get(t *testing.T) {
	res := extract.Result{Fields: []extract.FieldValue{{Name: "placa", Text: "ABC1234"}}}

	v, ok := res.Get("placa")
	assert.True(t, ok)
	assert.Equal(t, "ABC1234", v)

	_, ok = res.Get("cor")
	assert.False(t, ok)
}

func TestSuccessMessage(t *testing.T) {
	assert.Equal(t, "CNH data extracted successfully.", extract.SuccessMessage(constants.CNH))
	assert.Equal(t, "CRLV data extracted successfully.", extract.SuccessMessage(constants.CRLV))
}
