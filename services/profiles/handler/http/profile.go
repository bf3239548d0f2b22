package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/nomadbikers/ridetrack/internal/pkg/jwt"
	"github.com/nomadbikers/ridetrack/internal/pkg/logger"
	"github.com/nomadbikers/ridetrack/internal/pkg/middleware"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	"github.com/nomadbikers/ridetrack/internal/pkg/syncstore"
	"github.com/nomadbikers/ridetrack/internal/utils"
	"github.com/nomadbikers/ridetrack/services/profiles"
)

// ProfileHandler handles HTTP requests for member profiles
type ProfileHandler struct {
	profileUC profiles.ProfileUC
	cfg       *models.Config
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileUC profiles.ProfileUC, cfg *models.Config) *ProfileHandler {
	return &ProfileHandler{
		profileUC: profileUC,
		cfg:       cfg,
	}
}

type registerRequest struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

type registerResponse struct {
	Profile models.Profile `json:"profile"`
	Token   string         `json:"token"`
}

// Register creates a member profile and issues the session token for it. The
// first member to register becomes the group leader.
func (h *ProfileHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	profile, err := h.profileUC.Register(c.Request().Context(), uuid.New(), req.Name, req.Age)
	if err != nil {
		if errors.Is(err, syncstore.ErrOffline) {
			return utils.ServiceUnavailableResponse(c, "Cannot register while offline")
		}
		logger.Error("Failed to register profile", logger.Err(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	token, err := jwtpkg.GenerateToken(profile.ID.String(), string(profile.Role), h.cfg.JWT)
	if err != nil {
		logger.Error("Failed to issue session token", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to issue session token")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Profile registered", registerResponse{
		Profile: profile,
		Token:   token,
	})
}

// GetProfile returns a single member profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid profile ID")
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, profiles.ErrProfileNotFound) {
			return utils.NotFoundResponse(c, "Profile not found")
		}
		logger.Error("Failed to get profile", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to get profile")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved", profile)
}

// ListProfiles returns all member profiles, leader first. With ?cached=true
// the last-known snapshot is served without touching the remote store.
func (h *ProfileHandler) ListProfiles(c echo.Context) error {
	ctx := c.Request().Context()

	if c.QueryParam("cached") == "true" {
		return utils.SuccessResponse(c, http.StatusOK, "Cached profiles", h.profileUC.LoadCachedProfiles(ctx))
	}

	items, err := h.profileUC.ListProfiles(ctx)
	if err != nil {
		logger.Error("Failed to list profiles", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list profiles")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profiles retrieved", items)
}

// UploadAvatar replaces the authenticated member's avatar from a multipart
// upload
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	memberID, err := authenticatedMemberID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		return utils.BadRequestResponse(c, "Missing avatar upload")
	}
	src, err := file.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "Unreadable avatar upload")
	}
	defer src.Close()

	profile, err := h.profileUC.UploadAvatar(c.Request().Context(), memberID, file.Filename, src)
	if err != nil {
		if errors.Is(err, syncstore.ErrOffline) {
			return utils.ServiceUnavailableResponse(c, "Cannot upload avatars while offline")
		}
		if errors.Is(err, profiles.ErrProfileNotFound) {
			return utils.NotFoundResponse(c, "Profile not found")
		}
		logger.Error("Failed to upload avatar", logger.Err(err))
		return utils.BadRequestResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Avatar updated", profile)
}

// Leaderboard ranks members by total recorded distance
func (h *ProfileHandler) Leaderboard(c echo.Context) error {
	entries, err := h.profileUC.Leaderboard(c.Request().Context())
	if err != nil {
		logger.Error("Failed to build leaderboard", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to build leaderboard")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Leaderboard retrieved", entries)
}

func authenticatedMemberID(c echo.Context) (uuid.UUID, error) {
	raw, _ := c.Get(middleware.ContextKeyUserID).(string)
	return uuid.Parse(raw)
}
