package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carenet/carenet-api/internal/core/ports"
)

// FeedbackHandler covers public submission and owner access to feedback.
// Admin moderation lives on AdminHandler.
type FeedbackHandler struct {
	service ports.FeedbackService
}

func NewFeedbackHandler(service ports.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// Create handles POST /v1/feedback — open to unauthenticated visitors.
//
// @Summary      Submit platform feedback
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body      feedbackRequest  true  "Feedback"
// @Success      201   {object}  domain.Feedback
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/feedback [post]
func (h *FeedbackHandler) Create(c echo.Context) error {
	var req feedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created, err := h.service.Submit(c.Request().Context(), ports.FeedbackInput{
		First:   req.First,
		Last:    req.Last,
		Email:   req.Email,
		Role:    req.Role,
		Notes:   req.Notes,
		Quality: req.Quality,
		Support: req.Support,
		Useful:  req.Useful,
		Missing: req.Missing,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// ListOwn handles GET /v1/feedback/my — the caller's submissions, newest
// first. Ownership is derived from the verified token, never from a query
// parameter.
//
// @Summary      List the caller's feedback
// @Tags         feedback
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Feedback
// @Failure      401  {object}  errorResponse
// @Router       /v1/feedback/my [get]
func (h *FeedbackHandler) ListOwn(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	items, err := h.service.ListOwn(c.Request().Context(), identity.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// GetOwn handles GET /v1/feedback/:id.
//
// @Summary      Get one of the caller's feedback entries
// @Tags         feedback
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Feedback id"
// @Success      200  {object}  domain.Feedback
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/feedback/{id} [get]
func (h *FeedbackHandler) GetOwn(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	item, err := h.service.GetOwn(c.Request().Context(), c.Param("id"), identity.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// UpdateOwn handles PUT /v1/feedback/:id — owners may revise their review.
//
// @Summary      Update one of the caller's feedback entries
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Feedback id"
// @Param        body  body      feedbackUpdateRequest  true  "Revised review"
// @Success      200   {object}  domain.Feedback
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/feedback/{id} [put]
func (h *FeedbackHandler) UpdateOwn(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req feedbackUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	updated, err := h.service.UpdateOwn(c.Request().Context(), c.Param("id"), identity.Email, ports.FeedbackInput{
		Notes:   req.Notes,
		Quality: req.Quality,
		Support: req.Support,
		Useful:  req.Useful,
		Missing: req.Missing,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}
