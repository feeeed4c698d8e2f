package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/service/activity"
)

type activityService interface {
	CheckAttendance(ctx context.Context) (*domain.Attendance, error)
	WritePraiseComment(ctx context.Context, input activity.WritePraiseCommentInput) (*domain.PraiseComment, error)
	WriteDiary(ctx context.Context, input activity.WriteDiaryInput) (*domain.StudyDiary, error)
}

// ActivityHandler serves attendance, praise comment and diary endpoints.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activity")}
}

type praiseCommentRequest struct {
	PraiseID uuid.UUID `json:"praiseId"`
	Content  string    `json:"content"`
}

type diaryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type createdResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type attendanceResponse struct {
	ID         string    `json:"id"`
	AttendedOn string    `json:"attendedOn"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CheckAttendance handles POST /api/attendance.
func (h *ActivityHandler) CheckAttendance(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.CheckAttendance(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, attendanceResponse{
		ID:         a.ID.String(),
		AttendedOn: a.AttendedOn.Format(time.DateOnly),
		CreatedAt:  a.CreatedAt,
	})
}

// WritePraiseComment handles POST /api/praise-comments.
func (h *ActivityHandler) WritePraiseComment(w http.ResponseWriter, r *http.Request) {
	var req praiseCommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.WritePraiseComment(r.Context(), activity.WritePraiseCommentInput(req))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, createdResponse{ID: c.ID.String(), CreatedAt: c.CreatedAt})
}

// WriteDiary handles POST /api/diaries.
func (h *ActivityHandler) WriteDiary(w http.ResponseWriter, r *http.Request) {
	var req diaryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	d, err := h.svc.WriteDiary(r.Context(), activity.WriteDiaryInput(req))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, createdResponse{ID: d.ID.String(), CreatedAt: d.CreatedAt})
}
