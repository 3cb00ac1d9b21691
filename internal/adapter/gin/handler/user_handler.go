package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trading-dashboard/internal/usecase/user"
)

// UserHandler handles HTTP requests for the user lookup
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// UserResponse is the lookup result. It carries exactly these three fields.
type UserResponse struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage"`
}

// GetUser handles GET /api/user?email=
func (h *UserHandler) GetUser(c *gin.Context) {
	resp, err := h.uc.GetProfile(c.Request.Context(), user.GetProfileRequest{Email: c.Query("email")})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{
		FullName:     resp.FullName,
		Email:        resp.Email,
		ProfileImage: resp.ProfileImage,
	})
}
