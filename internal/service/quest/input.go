package quest

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
)

const (
	maxNameLength = 100
	maxURLLength  = 500
)

// CreateQuestInput holds the parameters for creating a quest template.
type CreateQuestInput struct {
	Name string
	URL  string
	Type domain.QuestType
}

// Validate checks all fields and collects all errors.
func (i CreateQuestInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateNameURL(i.Name, i.URL)...)

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown quest type"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ModifyQuestInput holds the parameters for editing a quest template.
type ModifyQuestInput struct {
	QuestID uuid.UUID
	Name    string
	URL     string
}

// Validate checks all fields and collects all errors.
func (i ModifyQuestInput) Validate() error {
	var errs []domain.FieldError

	if i.QuestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "quest_id", Message: "required"})
	}
	errs = append(errs, validateNameURL(i.Name, i.URL)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteQuestInput holds the parameters for deleting a quest template.
type DeleteQuestInput struct {
	QuestID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteQuestInput) Validate() error {
	if i.QuestID == uuid.Nil {
		return domain.NewValidationError("quest_id", "required")
	}
	return nil
}

// AssignQuestsInput holds the parameters for assigning quests to a user.
type AssignQuestsInput struct {
	Username string
}

// Validate checks all fields and collects all errors.
func (i AssignQuestsInput) Validate() error {
	if strings.TrimSpace(i.Username) == "" {
		return domain.NewValidationError("username", "required")
	}
	return nil
}

// CompleteQuestInput holds the parameters for completing a user quest.
type CompleteQuestInput struct {
	UserQuestID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CompleteQuestInput) Validate() error {
	if i.UserQuestID == uuid.Nil {
		return domain.NewValidationError("user_quest_id", "required")
	}
	return nil
}

func validateNameURL(name, url string) []domain.FieldError {
	var errs []domain.FieldError

	name = strings.TrimSpace(name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(url)) > maxURLLength {
		errs = append(errs, domain.FieldError{Field: "url", Message: "max 500 characters"})
	}

	return errs
}
