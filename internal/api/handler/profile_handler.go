package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carenet/carenet-api/internal/core/domain"
	"github.com/carenet/carenet-api/internal/core/ports"
)

// CaregiverProfileHandler covers a caregiver's own profile and the public
// directory consumed by care seekers.
type CaregiverProfileHandler struct {
	service ports.CaregiverProfileService
}

func NewCaregiverProfileHandler(service ports.CaregiverProfileService) *CaregiverProfileHandler {
	return &CaregiverProfileHandler{service: service}
}

// GetOwn handles GET /v1/caregiver/profile/me.
//
// @Summary      Get the caller's caregiver profile
// @Tags         caregiver-profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.CaregiverProfile
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/caregiver/profile/me [get]
func (h *CaregiverProfileHandler) GetOwn(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	profile, err := h.service.GetOwn(c.Request().Context(), identity.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateOwn handles PUT /v1/caregiver/profile/me.
//
// @Summary      Update the caller's caregiver profile
// @Tags         caregiver-profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      caregiverProfileRequest  true  "Profile fields"
// @Success      200   {object}  domain.CaregiverProfile
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/caregiver/profile/me [put]
func (h *CaregiverProfileHandler) UpdateOwn(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req caregiverProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	profile, err := h.service.UpdateOwn(c.Request().Context(), identity.Email, toCaregiverInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// ListPublic handles GET /v1/caregivers/public — the directory card list.
//
// @Summary      List caregiver cards for the public directory
// @Tags         caregiver-profile
// @Produce      json
// @Success      200  {array}  caregiverCardResponse
// @Router       /v1/caregivers/public [get]
func (h *CaregiverProfileHandler) ListPublic(c echo.Context) error {
	cards, err := h.service.ListPublic(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]caregiverCardResponse, 0, len(cards))
	for _, card := range cards {
		out = append(out, caregiverCardResponse{
			ID:        card.ID,
			Username:  card.Username,
			AvatarURL: card.AvatarURL,
			Tagline:   card.Tagline,
			Skills:    card.Skills,
			Languages: card.Languages,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// GetPublic handles GET /v1/caregivers/public/:id — the full detail panel.
//
// @Summary      Get a caregiver's full public profile
// @Tags         caregiver-profile
// @Produce      json
// @Param        id   path      string  true  "Profile id"
// @Success      200  {object}  domain.CaregiverProfile
// @Failure      404  {object}  errorResponse
// @Router       /v1/caregivers/public/{id} [get]
func (h *CaregiverProfileHandler) GetPublic(c echo.Context) error {
	profile, err := h.service.GetPublic(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

func toCaregiverInput(req caregiverProfileRequest) ports.CaregiverProfileInput {
	in := ports.CaregiverProfileInput{
		Username:      req.Username,
		AvatarURL:     req.AvatarURL,
		Tagline:       req.Tagline,
		About:         req.About,
		ServiceRadius: req.ServiceRadius,
		Years:         req.Years,
		Skills:        req.Skills,
	}
	for _, l := range req.Languages {
		in.Languages = append(in.Languages, domain.Language{Lang: l.Lang, Level: l.Level})
	}
	for _, cert := range req.Certifications {
		in.Certifications = append(in.Certifications, domain.Certification{Name: cert.Name, Issuer: cert.Issuer, Year: cert.Year})
	}
	for _, w := range req.WorkHistory {
		in.WorkHistory = append(in.WorkHistory, domain.WorkEntry{Role: w.Role, Company: w.Company, From: w.From, To: w.To})
	}
	return in
}

// CareSeekerProfileHandler covers a care seeker's own profile.
type CareSeekerProfileHandler struct {
	service ports.CareSeekerProfileService
}

func NewCareSeekerProfileHandler(service ports.CareSeekerProfileService) *CareSeekerProfileHandler {
	return &CareSeekerProfileHandler{service: service}
}

// GetOwn handles GET /v1/careseeker/profile/me.
//
// @Summary      Get the caller's care-seeker profile
// @Tags         careseeker-profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  careSeekerProfileResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/careseeker/profile/me [get]
func (h *CareSeekerProfileHandler) GetOwn(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	profile, err := h.service.GetOwn(c.Request().Context(), identity.SubjectID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCareSeekerResponse(profile))
}

// UpdateOwn handles PUT /v1/careseeker/profile/me. Absent fields are left
// untouched (partial update).
//
// @Summary      Update the caller's care-seeker profile
// @Tags         careseeker-profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      careSeekerProfileRequest  true  "Profile fields"
// @Success      200   {object}  careSeekerProfileResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/careseeker/profile/me [put]
func (h *CareSeekerProfileHandler) UpdateOwn(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req careSeekerProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	profile, err := h.service.UpdateOwn(c.Request().Context(), identity.SubjectID, ports.CareSeekerProfileInput{
		Phone:     req.Phone,
		AvatarURL: req.AvatarURL,
		Location:  req.Location,
		Gender:    req.Gender,
		DOB:       req.DOB,
		CareTypes: req.CareTypes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCareSeekerResponse(profile))
}

func toCareSeekerResponse(p *domain.CareSeekerProfile) careSeekerProfileResponse {
	return careSeekerProfileResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
		AvatarURL: p.AvatarURL,
		Location:  p.Location,
		Gender:    p.Gender,
		DOB:       p.DOB,
		CareTypes: p.CareTypes,
		UpdatedAt: p.UpdatedAt,
	}
}
