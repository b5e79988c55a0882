package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/middleware"
	"github.com/SscSPs/invoicing_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

const shareMailSubject = "Votre document"

// shareHandler issues share links for the owner.
type shareHandler struct {
	shareService   portssvc.ShareLinkSvc
	companyService portssvc.CompanyProfileSvc
	analytics      *utils.PosthogClientWrapper
}

// registerShareRoutes registers the owner-side share route.
func registerShareRoutes(rg *gin.RouterGroup, shareService portssvc.ShareLinkSvc, companyService portssvc.CompanyProfileSvc, analytics *utils.PosthogClientWrapper) {
	h := &shareHandler{shareService: shareService, companyService: companyService, analytics: analytics}

	rg.POST("/documents/:documentID/share", h.shareDocument)
}

// shareDocument godoc
// @Summary Get or create a document share link
// @Description Returns the document's public URL, issuing a token on the first request. Later calls return the same URL.
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Param   request body dto.ShareDocumentRequest false "Optional e-mail recipient"
// @Success 200 {object} dto.ShareLinkResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to create share link"
// @Security BearerAuth
// @Router /api/v1/documents/{documentID}/share [post]
func (h *shareHandler) shareDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	var req dto.ShareDocumentRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	link, err := h.shareService.GetOrCreateShareLink(c.Request.Context(), documentID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, apperrors.ErrNotFound):
			respondError(c, http.StatusNotFound, "Document not found")
		default:
			logger.Error("Failed to get or create share link", slog.String("document_id", documentID), slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, "Failed to create share link")
		}
		return
	}

	middleware.PosthogEvent(c, h.analytics, utils.EventShareLinkIssued, map[string]any{
		"document_id": link.DocumentID,
		"created":     link.Created,
	})

	c.JSON(http.StatusOK, dto.ShareLinkResponse{
		DocumentID: link.DocumentID,
		Token:      link.Token,
		ShareURL:   link.URL,
		MailtoURL:  utils.ComposeMailto(req.Recipient, shareMailSubject, h.mailBody(c, link.URL)),
	})
}

func (h *shareHandler) mailBody(c *gin.Context, shareURL string) string {
	body := fmt.Sprintf("Bonjour,\n\nVous pouvez consulter votre document en ligne : %s\n\nCordialement", shareURL)
	profile, err := h.companyService.LoadProfile(c.Request.Context())
	if err != nil || profile.Name == "" {
		return body
	}
	return body + ",\n" + profile.Name
}

// publicShareHandler serves shared documents to anyone holding the token.
type publicShareHandler struct {
	shareService    portssvc.ShareLinkSvc
	currencyService portssvc.CurrencyCatalogSvc
	analytics       *utils.PosthogClientWrapper
}

// registerPublicShareRoutes registers the unauthenticated, rate-limited share route.
func registerPublicShareRoutes(r *gin.Engine, shareService portssvc.ShareLinkSvc, currencyService portssvc.CurrencyCatalogSvc, analytics *utils.PosthogClientWrapper, publicLimiter *limiter.Limiter) {
	h := &publicShareHandler{shareService: shareService, currencyService: currencyService, analytics: analytics}

	share := r.Group("/share")
	if publicLimiter != nil {
		share.Use(middleware.RateLimit(publicLimiter))
	}
	share.GET("/:token", h.getSharedDocument)
}

// getSharedDocument godoc
// @Summary View a shared document
// @Description Returns the public summary of the document a share token points at.
// @Tags share
// @Produce  json
// @Param   token path string true "Share token (16 hex characters)"
// @Success 200 {object} dto.SharedDocumentResponse
// @Failure 404 {object} map[string]string "Shared document not found"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /share/{token} [get]
func (h *publicShareHandler) getSharedDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	doc, err := h.shareService.ResolveShareToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Shared document not found")
		} else {
			logger.Error("Failed to resolve share token", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, "Failed to load shared document")
		}
		return
	}

	resp := dto.ToSharedDocumentResponse(doc)
	if formatted, err := h.currencyService.FormatAmount(doc.TotalAmount, doc.CurrencyCode); err == nil {
		resp.Formatted = formatted
	}

	middleware.PosthogEvent(c, h.analytics, utils.EventSharedDocViewed, map[string]any{"kind": string(doc.Kind)})
	c.JSON(http.StatusOK, resp)
}
