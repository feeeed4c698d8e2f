package quest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/pkg/ctxutil"
)

// AssignQuests gives the user every active quest they do not hold yet and
// returns only the newly created user quests (admin only).
func (s *Service) AssignQuests(ctx context.Context, input AssignQuestsInput) ([]domain.UserQuest, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	created, err := s.userQuests.AssignMissing(ctx, user.ID, s.now())
	if err != nil {
		return nil, fmt.Errorf("assign quests: %w", err)
	}

	s.log.InfoContext(ctx, "quests assigned",
		slog.String("user_id", user.ID.String()),
		slog.Int("created", len(created)),
	)

	return created, nil
}
