package dashboard

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/thehamzasani/primeTube/internal/common"
)

type Handler struct {
	dashboardService DashboardService
}

func NewHandler(dashboardService DashboardService) *Handler {
	return &Handler{dashboardService: dashboardService}
}

func (h *Handler) Register(r *mux.Router, auth mux.MiddlewareFunc) {
	r.Handle("/dashboard/stats", auth(http.HandlerFunc(h.GetChannelStats))).Methods(http.MethodGet)
	r.HandleFunc("/dashboard/videos/{channelId}", h.GetChannelVideos).Methods(http.MethodGet)
}

// GetChannelStats reports on the authenticated user's own channel.
func (h *Handler) GetChannelStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.Unauthorized("user not authenticated"))
		return
	}

	stats, err := h.dashboardService.GetChannelStats(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, stats, "Successfully retrieved all data")
}

func (h *Handler) GetChannelVideos(w http.ResponseWriter, r *http.Request) {
	channelID, err := common.ParseObjectID("channelId", mux.Vars(r)["channelId"])
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	videos, err := h.dashboardService.GetChannelVideos(r.Context(), channelID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, videos, "All videos retrieved successfully")
}
