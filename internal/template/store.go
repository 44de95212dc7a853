package template

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/gjson"

	"github.com/joseph-ayodele/docfields/constants"
	"github.com/joseph-ayodele/docfields/internal/common"
	"github.com/joseph-ayodele/docfields/internal/region"
)

// Store reads layouts from <dir>/<family>/<variant>.json and caches them read-only.
type Store struct {
	dir    string
	schema *jsonschema.Schema
	logger *slog.Logger

	mu    sync.RWMutex
	cache map[ID]*Template
}

func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	schema, err := compileSchema(definitionSchema)
	if err != nil {
		return nil, err
	}
	return &Store{dir: dir, schema: schema, logger: logger, cache: make(map[ID]*Template)}, nil
}

// Path is the definition file backing id.
func (s *Store) Path(id ID) string {
	return filepath.Join(s.dir, id.Family.Dir(), id.Variant+".json")
}

// Header loads the family's header layout. A missing file, or one without a
// "header" region, is a configuration error.
func (s *Store) Header(family constants.DocType) (*Template, error) {
	id := HeaderID(family)
	t, err := s.load(id)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, common.ConfigurationError("header template not found: %s", s.Path(id))
	}
	if err != nil {
		return nil, err
	}
	if _, ok := t.Field(constants.HeaderRegion); !ok {
		return nil, common.ConfigurationError("header template %s has no %q region", s.Path(id), constants.HeaderRegion)
	}
	return t, nil
}

// Variant loads a field layout; a missing file is a template-not-found error.
func (s *Store) Variant(id ID) (*Template, error) {
	t, err := s.load(id)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, common.TemplateNotFoundError("template %s not found: %s", id, s.Path(id))
	}
	return t, err
}

func (s *Store) load(id ID) (*Template, error) {
	s.mu.RLock()
	t, ok := s.cache[id]
	s.mu.RUnlock()
	if ok {
		return t, nil
	}

	path := s.Path(id)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err = Parse(id, data, s.schema)
	if err != nil {
		return nil, common.ConfigurationError("invalid template %s: %v", path, err)
	}
	s.logger.Debug("template loaded", "template", id.String(), "fields", len(t.Fields))

	s.mu.Lock()
	s.cache[id] = t
	s.mu.Unlock()
	return t, nil
}

// Parse validates data against the definition schema and keeps the file's key order.
func Parse(id ID, data []byte, schema *jsonschema.Schema) (*Template, error) {
	if schema != nil {
		if err := validateDefinition(schema, data); err != nil {
			return nil, err
		}
	} else if !gjson.ValidBytes(data) {
		return nil, errors.New("malformed json")
	}

	t := &Template{ID: id}
	seen := make(map[string]struct{})
	var perr error
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if constants.IsReservedKey(name) {
			perr = fmt.Errorf("field name %q is reserved", name)
			return false
		}
		if _, dup := seen[name]; dup {
			perr = fmt.Errorf("duplicate field %q", name)
			return false
		}
		seen[name] = struct{}{}

		coords := value.Array()
		if len(coords) != 4 {
			perr = fmt.Errorf("field %q: expected 4 coordinates, got %d", name, len(coords))
			return false
		}
		var c [4]int
		for i, v := range coords {
			c[i] = int(v.Int())
		}
		t.Fields = append(t.Fields, Field{Name: name, Rect: region.RectFrom(c)})
		return true
	})
	if perr != nil {
		return nil, perr
	}
	return t, nil
}
