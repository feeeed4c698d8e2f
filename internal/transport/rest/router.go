package rest

import (
	"net/http"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Quest    *QuestHandler
	Mission  *MissionHandler
	Activity *ActivityHandler
	// Metrics is mounted at MetricsPath when non-nil.
	Metrics     http.Handler
	MetricsPath string
}

// NewMux registers every route. Admin routes are additionally wrapped in
// middleware.RequireAdmin.
func NewMux(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET "+h.MetricsPath, h.Metrics)
	}

	mux.HandleFunc("GET /api/quests", h.Quest.List)
	mux.HandleFunc("POST /api/quests/{id}/complete", h.Quest.Complete)

	mux.HandleFunc("POST /api/missions/{id}/start", h.Mission.Start)
	mux.HandleFunc("PATCH /api/user-missions/{id}/state", h.Mission.ChangeState)
	mux.HandleFunc("POST /api/user-missions/{id}/reward", h.Mission.ReceiveReward)
	mux.HandleFunc("GET /api/user-missions/{id}/logs", h.Mission.Logs)

	mux.HandleFunc("POST /api/attendance", h.Activity.CheckAttendance)
	mux.HandleFunc("POST /api/praise-comments", h.Activity.WritePraiseComment)
	mux.HandleFunc("POST /api/diaries", h.Activity.WriteDiary)

	admin := func(fn http.HandlerFunc) http.Handler { return middleware.RequireAdmin(fn) }
	mux.Handle("POST /api/admin/quests", admin(h.Quest.Create))
	mux.Handle("PATCH /api/admin/quests/{id}", admin(h.Quest.Modify))
	mux.Handle("DELETE /api/admin/quests/{id}", admin(h.Quest.Delete))
	mux.Handle("POST /api/admin/quests/assign/{username}", admin(h.Quest.Assign))
	mux.Handle("POST /api/admin/quests/reset", admin(h.Quest.Reset))
	mux.Handle("POST /api/admin/missions", admin(h.Mission.Create))

	return mux
}

// RoutePattern returns the mux pattern that would serve r, for metrics labels.
func RoutePattern(mux *http.ServeMux) func(*http.Request) string {
	return func(r *http.Request) string {
		_, pattern := mux.Handler(r)
		return pattern
	}
}
