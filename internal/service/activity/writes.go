package activity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/pkg/ctxutil"
)

// WritePraiseComment stores a comment by the caller on a praise post.
func (s *Service) WritePraiseComment(ctx context.Context, input WritePraiseCommentInput) (*domain.PraiseComment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	c := domain.PraiseComment{
		ID:        uuid.New(),
		AuthorID:  userID,
		PraiseID:  input.PraiseID,
		Content:   strings.TrimSpace(input.Content),
		CreatedAt: s.now(),
	}
	if err := s.praise.CreateComment(ctx, c); err != nil {
		return nil, fmt.Errorf("create praise comment: %w", err)
	}

	s.log.InfoContext(ctx, "praise comment written",
		slog.String("user_id", userID.String()),
		slog.String("praise_id", input.PraiseID.String()),
	)

	return &c, nil
}

// WriteDiary stores a study diary written by the caller.
func (s *Service) WriteDiary(ctx context.Context, input WriteDiaryInput) (*domain.StudyDiary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	d := domain.StudyDiary{
		ID:        uuid.New(),
		AuthorID:  userID,
		Title:     strings.TrimSpace(input.Title),
		Content:   strings.TrimSpace(input.Content),
		CreatedAt: s.now(),
	}
	if err := s.diaries.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create diary: %w", err)
	}

	s.log.InfoContext(ctx, "study diary written", slog.String("user_id", userID.String()))

	return &d, nil
}
