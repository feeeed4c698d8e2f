package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/service/mission"
)

type missionService interface {
	CreateMission(ctx context.Context, input mission.CreateMissionInput) (*domain.Mission, error)
	StartMission(ctx context.Context, input mission.StartMissionInput) (*domain.UserMission, error)
	ChangeState(ctx context.Context, input mission.ChangeStateInput) (*domain.UserMission, error)
	ReceiveReward(ctx context.Context, input mission.ReceiveRewardInput) (*domain.UserMission, error)
	ListStateLogs(ctx context.Context, input mission.UserMissionInput) ([]domain.UserMissionStateLog, error)
}

// MissionHandler serves mission REST endpoints.
type MissionHandler struct {
	svc missionService
	log *slog.Logger
}

// NewMissionHandler creates a MissionHandler.
func NewMissionHandler(svc missionService, logger *slog.Logger) *MissionHandler {
	return &MissionHandler{svc: svc, log: logger.With("handler", "mission")}
}

type createMissionRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	RewardExp    int64  `json:"rewardExp"`
	RewardPoints int64  `json:"rewardPoints"`
}

type changeStateRequest struct {
	State string `json:"state"`
}

type missionResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	RewardExp    int64     `json:"rewardExp"`
	RewardPoints int64     `json:"rewardPoints"`
	CreatedAt    time.Time `json:"createdAt"`
}

type userMissionResponse struct {
	ID        string    `json:"id"`
	MissionID string    `json:"missionId"`
	State     string    `json:"state"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type stateLogResponse struct {
	PrevState string    `json:"prevState"`
	NextState string    `json:"nextState"`
	CreatedAt time.Time `json:"createdAt"`
}

// Create handles POST /api/admin/missions.
func (h *MissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMissionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	m, err := h.svc.CreateMission(r.Context(), mission.CreateMissionInput(req))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, missionResponse{
		ID:           m.ID.String(),
		Title:        m.Title,
		Description:  m.Description,
		RewardExp:    m.RewardExp,
		RewardPoints: m.RewardPoints,
		CreatedAt:    m.CreatedAt,
	})
}

// Start handles POST /api/missions/{id}/start.
func (h *MissionHandler) Start(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	um, err := h.svc.StartMission(r.Context(), mission.StartMissionInput{MissionID: id})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserMissionResponse(um))
}

// ChangeState handles PATCH /api/user-missions/{id}/state.
func (h *MissionHandler) ChangeState(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req changeStateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	um, err := h.svc.ChangeState(r.Context(), mission.ChangeStateInput{
		UserMissionID: id,
		Next:          domain.UserMissionState(req.State),
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserMissionResponse(um))
}

// ReceiveReward handles POST /api/user-missions/{id}/reward.
func (h *MissionHandler) ReceiveReward(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	um, err := h.svc.ReceiveReward(r.Context(), mission.ReceiveRewardInput{UserMissionID: id})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserMissionResponse(um))
}

// Logs handles GET /api/user-missions/{id}/logs.
func (h *MissionHandler) Logs(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	logs, err := h.svc.ListStateLogs(r.Context(), mission.UserMissionInput{UserMissionID: id})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]stateLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, stateLogResponse{
			PrevState: l.PrevState.String(),
			NextState: l.NextState.String(),
			CreatedAt: l.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func toUserMissionResponse(um *domain.UserMission) userMissionResponse {
	return userMissionResponse{
		ID:        um.ID.String(),
		MissionID: um.MissionID.String(),
		State:     um.State.String(),
		UpdatedAt: um.UpdatedAt,
	}
}
