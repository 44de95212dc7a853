package common_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joseph-ayodele/docfields/internal/common"
)

func TestErrorConstructors_MatchSentinels(t *testing.T) {
	tests := []struct {
		err      error
		sentinel error
		code     string
	}{
		{common.ConfigurationError("x"), common.ErrConfiguration, common.CodeConfiguration},
		{common.ValidationFailure("x"), common.ErrValidation, common.CodeValidation},
		{common.TemplateNotFoundError("x"), common.ErrTemplateNotFound, common.CodeTemplateNotFound},
		{common.NoRecordsError("x"), common.ErrNoRecords, common.CodeNoRecords},
		{common.InvalidInputError("x"), common.ErrInvalidInput, common.CodeInvalidInput},
	}
	for _, tt := range tests {
		wrapped := fmt.Errorf("outer: %w", tt.err)
		assert.ErrorIs(t, wrapped, tt.sentinel)
		assert.Equal(t, tt.code, common.ErrorCode(wrapped))
	}
}

func TestErrorCode_PlainError(t *testing.T) {
	assert.Equal(t, common.CodeInternal, common.ErrorCode(errors.New("boom")))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", common.UserMessage(nil))
	assert.Equal(t, "boom", common.UserMessage(errors.New("boom")))
	assert.Equal(t, "input file not found: a.pdf", common.UserMessage(common.InvalidInputError("input file not found: %s", "a.pdf")))
	assert.Equal(t, "stage two: no service lines",
		common.UserMessage(common.WrapError(common.NoRecordsError("no service lines"), "stage two")))
}

func TestWrapError_Nil(t *testing.T) {
	assert.NoError(t, common.WrapError(nil, "ctx"))
}

func TestAppError_Error(t *testing.T) {
	err := common.NewAppError("X", "msg", nil)
	assert.Equal(t, "X: msg", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
