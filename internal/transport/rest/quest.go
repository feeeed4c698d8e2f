package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/service/quest"
)

type questService interface {
	GetAllQuests(ctx context.Context) ([]quest.QuestSummary, error)
	CompleteQuest(ctx context.Context, input quest.CompleteQuestInput) (*quest.QuestSummary, error)
	CreateQuest(ctx context.Context, input quest.CreateQuestInput) (*domain.Quest, error)
	ModifyQuest(ctx context.Context, input quest.ModifyQuestInput) (*domain.Quest, error)
	DeleteQuest(ctx context.Context, input quest.DeleteQuestInput) error
	AssignQuests(ctx context.Context, input quest.AssignQuestsInput) ([]domain.UserQuest, error)
	ResetQuests(ctx context.Context) (int64, error)
}

// QuestHandler serves quest REST endpoints.
type QuestHandler struct {
	svc questService
	log *slog.Logger
}

// NewQuestHandler creates a QuestHandler.
func NewQuestHandler(svc questService, logger *slog.Logger) *QuestHandler {
	return &QuestHandler{svc: svc, log: logger.With("handler", "quest")}
}

type questRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

type questResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type questSummaryResponse struct {
	UserQuestID string `json:"userQuestId"`
	QuestID     string `json:"questId"`
	Username    string `json:"username"`
	QuestName   string `json:"questName"`
	QuestType   string `json:"questType"`
	URL         string `json:"url"`
	Completed   bool   `json:"completed"`
	Progress    string `json:"progress"`
}

type userQuestResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	QuestID   string `json:"questId"`
	Completed bool   `json:"completed"`
}

// List handles GET /api/quests.
func (h *QuestHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.GetAllQuests(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]questSummaryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toQuestSummaryResponse(s))
	}
	writeJSON(w, http.StatusOK, out)
}

// Complete handles POST /api/quests/{id}/complete, where id is the user quest.
func (h *QuestHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s, err := h.svc.CompleteQuest(r.Context(), quest.CompleteQuestInput{UserQuestID: id})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuestSummaryResponse(*s))
}

// Create handles POST /api/admin/quests.
func (h *QuestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req questRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	q, err := h.svc.CreateQuest(r.Context(), quest.CreateQuestInput{
		Name: req.Name,
		URL:  req.URL,
		Type: domain.QuestType(req.Type),
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toQuestResponse(q))
}

// Modify handles PATCH /api/admin/quests/{id}.
func (h *QuestHandler) Modify(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req questRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	q, err := h.svc.ModifyQuest(r.Context(), quest.ModifyQuestInput{QuestID: id, Name: req.Name, URL: req.URL})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuestResponse(q))
}

// Delete handles DELETE /api/admin/quests/{id}.
func (h *QuestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteQuest(r.Context(), quest.DeleteQuestInput{QuestID: id}); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Assign handles POST /api/admin/quests/assign/{username}.
func (h *QuestHandler) Assign(w http.ResponseWriter, r *http.Request) {
	created, err := h.svc.AssignQuests(r.Context(), quest.AssignQuestsInput{Username: r.PathValue("username")})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]userQuestResponse, 0, len(created))
	for _, uq := range created {
		out = append(out, userQuestResponse{
			ID:        uq.ID.String(),
			UserID:    uq.UserID.String(),
			QuestID:   uq.QuestID.String(),
			Completed: uq.Completed,
		})
	}
	writeJSON(w, http.StatusCreated, out)
}

// Reset handles POST /api/admin/quests/reset.
func (h *QuestHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if _, err := h.svc.ResetQuests(r.Context()); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toQuestResponse(q *domain.Quest) questResponse {
	return questResponse{
		ID:        q.ID.String(),
		Name:      q.Name,
		URL:       q.URL,
		Type:      q.Type.String(),
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func toQuestSummaryResponse(s quest.QuestSummary) questSummaryResponse {
	return questSummaryResponse{
		UserQuestID: s.UserQuestID.String(),
		QuestID:     s.QuestID.String(),
		Username:    s.Username,
		QuestName:   s.QuestName,
		QuestType:   s.QuestType.String(),
		URL:         s.URL,
		Completed:   s.Completed,
		Progress:    s.Progress,
	}
}
