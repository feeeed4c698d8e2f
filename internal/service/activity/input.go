package activity

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
)

const (
	maxCommentLength      = 500
	maxDiaryTitleLength   = 100
	maxDiaryContentLength = 5000
)

// WritePraiseCommentInput holds the parameters for commenting on a praise.
type WritePraiseCommentInput struct {
	PraiseID uuid.UUID
	Content  string
}

// Validate checks all fields and collects all errors.
func (i WritePraiseCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.PraiseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "praise_id", Message: "required"})
	}
	errs = append(errs, validateText("content", i.Content, maxCommentLength)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// WriteDiaryInput holds the parameters for writing a study diary.
type WriteDiaryInput struct {
	Title   string
	Content string
}

// Validate checks all fields and collects all errors.
func (i WriteDiaryInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateText("title", i.Title, maxDiaryTitleLength)...)
	errs = append(errs, validateText("content", i.Content, maxDiaryContentLength)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateText(field, value string, max int) []domain.FieldError {
	value = strings.TrimSpace(value)
	if value == "" {
		return []domain.FieldError{{Field: field, Message: "required"}}
	}
	if utf8.RuneCountInString(value) > max {
		return []domain.FieldError{{Field: field, Message: "too long"}}
	}
	return nil
}
