package quest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/pkg/ctxutil"
)

// CreateQuest creates a quest template (admin only).
func (s *Service) CreateQuest(ctx context.Context, input CreateQuestInput) (*domain.Quest, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	q, err := s.quests.Create(ctx, &domain.Quest{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(input.Name),
		URL:       strings.TrimSpace(input.URL),
		Type:      input.Type,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create quest: %w", err)
	}

	s.log.InfoContext(ctx, "quest created",
		slog.String("quest_id", q.ID.String()),
		slog.String("type", q.Type.String()),
	)

	return q, nil
}
