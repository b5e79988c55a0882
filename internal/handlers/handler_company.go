package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// companyHandler handles HTTP requests related to the company profile.
type companyHandler struct {
	companyService portssvc.CompanyProfileSvc
}

// registerCompanyRoutes registers routes related to the company profile.
func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanyProfileSvc) {
	h := &companyHandler{companyService: companyService}

	company := rg.Group("/company")
	{
		company.GET("", h.getCompanyProfile)
		company.PUT("", h.updateCompanyProfile)
	}
}

// getCompanyProfile godoc
// @Summary Get the company profile
// @Description Returns the saved company profile, or the defaults when none was saved yet
// @Tags company
// @Produce  json
// @Success 200 {object} dto.CompanyProfileResponse
// @Failure 500 {object} map[string]string "Failed to load company profile"
// @Security BearerAuth
// @Router /api/v1/company [get]
func (h *companyHandler) getCompanyProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profile, err := h.companyService.LoadProfile(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load company profile", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Failed to load company profile")
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyProfileResponse(profile))
}

// updateCompanyProfile godoc
// @Summary Update the company profile
// @Description Applies the provided fields and saves the profile
// @Tags company
// @Accept  json
// @Produce  json
// @Param   profile body dto.UpdateCompanyProfileRequest true "Fields to change"
// @Success 200 {object} dto.CompanyProfileResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save company profile"
// @Security BearerAuth
// @Router /api/v1/company [put]
func (h *companyHandler) updateCompanyProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateCompanyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCompanyProfile", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	profile, err := h.companyService.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			respondError(c, http.StatusBadRequest, err.Error())
		} else {
			logger.Error("Failed to update company profile", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, "Failed to save company profile")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyProfileResponse(profile))
}
