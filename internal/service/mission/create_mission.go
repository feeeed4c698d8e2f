package mission

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/pkg/ctxutil"
)

// CreateMission creates a mission (admin only).
func (s *Service) CreateMission(ctx context.Context, input CreateMissionInput) (*domain.Mission, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	m, err := s.missions.CreateMission(ctx, &domain.Mission{
		ID:           uuid.New(),
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		RewardExp:    input.RewardExp,
		RewardPoints: input.RewardPoints,
		CreatedAt:    s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create mission: %w", err)
	}

	s.log.InfoContext(ctx, "mission created", slog.String("mission_id", m.ID.String()))

	return m, nil
}
