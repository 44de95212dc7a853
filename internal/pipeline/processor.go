// Package pipeline is the request boundary: it dispatches one document by type,
// runs the extraction stages and turns every failure into the uniform error result.
package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"log/slog"
	"os"
	"time"

	"github.com/joseph-ayodele/docfields/constants"
	"github.com/joseph-ayodele/docfields/internal/common"
	"github.com/joseph-ayodele/docfields/internal/extract"
	"github.com/joseph-ayodele/docfields/internal/ocr"
	"github.com/joseph-ayodele/docfields/internal/statement"
	"github.com/joseph-ayodele/docfields/internal/template"
)

// StatementSource yields the first-page text of a statement document.
type StatementSource interface {
	Text(ctx context.Context, path string) (string, error)
}

// Deps are the stages a Processor coordinates.
type Deps struct {
	Renderer   ocr.Renderer
	Classifier extract.HeaderClassifier
	Fields     extract.FieldExtractor
	Statements StatementSource

	DPI   int
	Tools []string // external binaries that must resolve before any work starts
}

// Processor coordinates render -> classify -> extract for identity documents
// and text -> parse for statements.
type Processor struct {
	Logger *slog.Logger
	deps   Deps
	check  func(binaries ...string) error
}

func NewProcessor(deps Deps, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if deps.DPI <= 0 {
		deps.DPI = 300
	}
	return &Processor{Logger: logger, deps: deps, check: ocr.CheckTools}
}

// Outcome is the single JSON object produced for one request.
type Outcome struct {
	Result  extract.Result
	Records []statement.Record // set only for successful statements
	Err     error              // nil on success
}

func (o Outcome) OK() bool { return o.Err == nil }

// Failed converts err into the uniform error outcome.
func Failed(err error) Outcome {
	return Outcome{Result: extract.Failure(err), Err: err}
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	if o.Err == nil && o.Records != nil {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		err := enc.Encode(statement.Report{
			Status:   o.Result.Status,
			Message:  o.Result.Message,
			Services: o.Records,
		})
		return bytes.TrimRight(buf.Bytes(), "\n"), err
	}
	return o.Result.MarshalJSON()
}

// Run processes one document. It never returns an error: failures become
// {"status":"error","message":...} and are logged with their code.
func (p *Processor) Run(ctx context.Context, docType, path string) Outcome {
	logger := common.LoggerFromContext(ctx, p.Logger)
	if id := common.RequestIDFromContext(ctx); id != "" {
		logger = logger.With("request_id", id)
	}
	start := time.Now()

	out, err := p.process(ctx, docType, path)
	if err != nil {
		logger.Error("request failed",
			"type", docType,
			"path", path,
			"code", common.ErrorCode(err),
			"err", err,
		)
		return Failed(err)
	}
	logger.Info("request ok",
		"type", docType,
		"path", path,
		"fields", len(out.Result.Fields),
		"records", len(out.Records),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return out
}

func (p *Processor) process(ctx context.Context, docType, path string) (Outcome, error) {
	t, err := p.admit(docType, path)
	if err != nil {
		return Outcome{}, err
	}

	if t == constants.TARIFAS {
		records, err := p.parseStatement(ctx, path)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{
			Result:  extract.Result{Status: constants.StatusSuccess, Message: statement.SuccessMessage},
			Records: records,
		}, nil
	}

	page, id, err := p.classify(ctx, t, path)
	if err != nil {
		return Outcome{}, err
	}
	res, err := p.deps.Fields.Extract(ctx, page, id)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Result: res}, nil
}

// Classify renders path and returns its first page together with the template
// that would be used to extract it.
func (p *Processor) Classify(ctx context.Context, docType, path string) (image.Image, template.ID, error) {
	t, err := p.admit(docType, path)
	if err != nil {
		return nil, template.ID{}, err
	}
	if t == constants.TARIFAS {
		return nil, template.ID{}, common.InvalidInputError("%s documents have no region templates", t)
	}
	return p.classify(ctx, t, path)
}

// admit runs the checks shared by every request: known type, readable input, tools present.
func (p *Processor) admit(docType, path string) (constants.DocType, error) {
	t, ok := constants.ParseDocType(docType)
	if !ok {
		return "", common.InvalidInputError("unknown document type %q, supported: %v", docType, constants.AllDocTypes())
	}
	st, err := os.Stat(path)
	if err != nil {
		return "", common.InvalidInputError("input file not found: %s", path)
	}
	if st.IsDir() {
		return "", common.InvalidInputError("input is a directory: %s", path)
	}
	if len(p.deps.Tools) > 0 && p.check != nil {
		if err := p.check(p.deps.Tools...); err != nil {
			return "", err
		}
	}
	return t, nil
}

func (p *Processor) classify(ctx context.Context, t constants.DocType, path string) (image.Image, template.ID, error) {
	pages, err := p.deps.Renderer.Render(ctx, path, p.deps.DPI)
	if err != nil {
		return nil, template.ID{}, err
	}
	if len(pages) == 0 {
		return nil, template.ID{}, common.InvalidInputError("document has no pages: %s", path)
	}
	id, err := p.deps.Classifier.Classify(ctx, pages[0], t)
	if err != nil {
		return nil, template.ID{}, err
	}
	return pages[0], id, nil
}

func (p *Processor) parseStatement(ctx context.Context, path string) ([]statement.Record, error) {
	text, err := p.deps.Statements.Text(ctx, path)
	if err != nil {
		return nil, err
	}
	return statement.Parse(text)
}
