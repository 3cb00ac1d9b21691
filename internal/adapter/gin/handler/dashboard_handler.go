package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trading-dashboard/internal/adapter/gin/view"
	"trading-dashboard/internal/domain/dashboard"
	"trading-dashboard/internal/domain/session"
	dashboardusecase "trading-dashboard/internal/usecase/dashboard"
)

// DashboardLoader assembles dashboard pages.
type DashboardLoader interface {
	Load(ctx context.Context, in dashboardusecase.LoadRequest) (*dashboardusecase.Page, error)
}

// DashboardHandler serves the dashboard shell as JSON and as HTML.
type DashboardHandler struct {
	uc  DashboardLoader
	log *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler instance
func NewDashboardHandler(uc DashboardLoader, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// ProfileResponse is the reconciled header and sidebar profile.
type ProfileResponse struct {
	FirstName    string `json:"firstName"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage"`
}

// NavItemResponse is one sidebar entry.
type NavItemResponse struct {
	View   string `json:"view"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// SettingsResponse is the identity provider's profile shown on the settings view.
type SettingsResponse struct {
	FirstName string `json:"firstName"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	ImageURL  string `json:"imageUrl"`
}

// DashboardResponse is the rendered shell. Exactly one of Overview, Panel
// and Settings is set when Status is "ready"; none otherwise.
type DashboardResponse struct {
	Status     string                 `json:"status"`
	Message    string                 `json:"message,omitempty"`
	View       string                 `json:"view"`
	Profile    ProfileResponse        `json:"profile"`
	Nav        []NavItemResponse      `json:"nav"`
	Timeframes []string               `json:"timeframes"`
	Overview   *dashboard.Overview    `json:"overview,omitempty"`
	Chart      *dashboard.ChartWidget `json:"chart,omitempty"`
	Panel      *dashboard.Panel       `json:"panel,omitempty"`
	Settings   *SettingsResponse      `json:"settings,omitempty"`
}

// GetDashboard handles GET /api/dashboard?view=&timeframe=
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	resp, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RenderDashboard handles GET /dashboard and renders the HTML page.
func (h *DashboardHandler) RenderDashboard(c *gin.Context) {
	resp, ok := h.load(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, view.DashboardTemplate, resp)
}

func (h *DashboardHandler) load(c *gin.Context) (*DashboardResponse, bool) {
	sess, _ := session.FromContext(c.Request.Context())

	page, err := h.uc.Load(c.Request.Context(), dashboardusecase.LoadRequest{
		Session:   sess,
		View:      c.Query("view"),
		Timeframe: c.Query("timeframe"),
	})
	if err != nil {
		writeError(c, h.log, err)
		return nil, false
	}
	return toDashboardResponse(page), true
}

func toDashboardResponse(p *dashboardusecase.Page) *DashboardResponse {
	resp := &DashboardResponse{
		Status:  p.Status.String(),
		Message: p.Message,
		View:    p.View.String(),
		Profile: ProfileResponse{
			FirstName:    p.Profile.FirstName,
			FullName:     p.Profile.FullName,
			Email:        p.Profile.Email,
			ProfileImage: p.Profile.ProfileImage,
		},
		Nav:      make([]NavItemResponse, len(p.Nav)),
		Overview: p.Overview,
		Chart:    p.Chart,
		Panel:    p.Panel,
	}
	for i, item := range p.Nav {
		resp.Nav[i] = NavItemResponse{View: item.View.String(), Label: item.Label, Active: item.Active}
	}
	for _, tf := range dashboard.Timeframes() {
		resp.Timeframes = append(resp.Timeframes, string(tf))
	}
	if p.Settings != nil {
		resp.Settings = &SettingsResponse{
			FirstName: p.Settings.FirstName,
			FullName:  p.Settings.FullName,
			Email:     p.Settings.Email,
			ImageURL:  p.Settings.ImageURL,
		}
	}
	return resp
}
