package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carenet/carenet-api/internal/core/domain"
	"github.com/carenet/carenet-api/internal/core/ports"
)

// AdminHandler covers admin moderation: account status toggles, user
// directories, and feedback oversight. All routes sit behind the ADMIN
// authority guard.
type AdminHandler struct {
	admin    ports.AdminService
	feedback ports.FeedbackService
}

func NewAdminHandler(admin ports.AdminService, feedback ports.FeedbackService) *AdminHandler {
	return &AdminHandler{admin: admin, feedback: feedback}
}

// UpdateStatus handles PUT /v1/admin/caregivers/:id/status and
// PUT /v1/admin/careseekers/:id/status. The status value is validated against
// the closed enum before any write; an unknown value is a 400, not a 403.
//
// @Summary      Set a user's account status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "User id"
// @Param        body  body      statusUpdateRequest  true  "ACTIVE or DEACTIVATED"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/caregivers/{id}/status [put]
func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	var req statusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing status")
	}

	if err := h.admin.UpdateUserStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListCaregivers handles GET /v1/admin/caregivers.
//
// @Summary      List caregiver accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   directoryRowResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/caregivers [get]
func (h *AdminHandler) ListCaregivers(c echo.Context) error {
	return h.listUsers(c, domain.RoleCaregiver)
}

// ListCareSeekers handles GET /v1/admin/careseekers.
//
// @Summary      List care-seeker accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   directoryRowResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/careseekers [get]
func (h *AdminHandler) ListCareSeekers(c echo.Context) error {
	return h.listUsers(c, domain.RoleCareSeeker)
}

func (h *AdminHandler) listUsers(c echo.Context, role domain.Role) error {
	rows, err := h.admin.ListUsers(c.Request().Context(), role)
	if err != nil {
		return err
	}

	out := make([]directoryRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, directoryRowResponse{
			ID:        row.ID,
			FirstName: row.FirstName,
			Email:     row.Email,
			Phone:     row.Phone,
			Status:    row.Status,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// ListFeedback handles GET /v1/admin/feedback — the moderation table.
//
// @Summary      List all feedback rows
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   feedbackRowResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/feedback [get]
func (h *AdminHandler) ListFeedback(c echo.Context) error {
	rows, err := h.feedback.ListRows(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]feedbackRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, feedbackRowResponse{
			ID:             row.ID,
			First:          row.First,
			Last:           row.Last,
			Email:          row.Email,
			Role:           row.Role,
			Notes:          row.Notes,
			Quality:        row.Quality,
			Support:        row.Support,
			Useful:         row.Useful,
			Missing:        row.Missing,
			CreatedAt:      row.CreatedAt,
			ComputedRating: row.ComputedRating,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// FeedbackSummary handles GET /v1/admin/feedback/summary — dashboard cards.
//
// @Summary      Aggregate feedback summary
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  feedbackSummaryResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/feedback/summary [get]
func (h *AdminHandler) FeedbackSummary(c echo.Context) error {
	sum, err := h.feedback.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, feedbackSummaryResponse{
		Total:    sum.Total,
		ByStars:  sum.ByStars,
		Averages: sum.Averages,
	})
}

// DeleteFeedback handles DELETE /v1/admin/feedback/:id.
//
// @Summary      Delete a feedback entry
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Feedback id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/feedback/{id} [delete]
func (h *AdminHandler) DeleteFeedback(c echo.Context) error {
	if err := h.feedback.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
