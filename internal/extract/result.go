package extract

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/joseph-ayodele/docfields/constants"
	"github.com/joseph-ayodele/docfields/internal/common"
)

type FieldValue struct {
	Name string
	Text string
}

// Result is one extraction outcome. It serializes as a single flat JSON object:
// every field in template order, then the reserved "status" and "message" keys.
type Result struct {
	Status  constants.ResultStatus
	Message string
	Fields  []FieldValue
}

// Failure converts a request error into the uniform error result.
func Failure(err error) Result {
	return Result{Status: constants.StatusError, Message: common.UserMessage(err)}
}

// Get returns the text of a field.
func (r Result) Get(name string) (string, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Text, true
		}
	}
	return "", false
}

// Map flattens the result, reserved keys included.
func (r Result) Map() map[string]string {
	m := make(map[string]string, len(r.Fields)+2)
	for _, f := range r.Fields {
		m[f.Name] = f.Text
	}
	m[constants.KeyStatus] = string(r.Status)
	m[constants.KeyMessage] = r.Message
	return m
}

func (r Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	pairs := make([]FieldValue, 0, len(r.Fields)+2)
	pairs = append(pairs, r.Fields...)
	pairs = append(pairs,
		FieldValue{Name: constants.KeyStatus, Text: string(r.Status)},
		FieldValue{Name: constants.KeyMessage, Text: r.Message},
	)
	for i, p := range pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalString(p.Name)
		if err != nil {
			return nil, err
		}
		v, err := marshalString(p.Text)
		if err != nil {
			return nil, err
		}
		buf.WriteString(k)
		buf.WriteByte(':')
		buf.WriteString(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalString(s string) (string, error) {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}
