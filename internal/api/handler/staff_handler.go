package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicall/telehealth-api/internal/core/ports"
)

type registerDoctorRequest struct {
	FullName  string `json:"fullName"  validate:"required"`
	Specialty string `json:"specialty" validate:"required"`
	License   string `json:"license"   validate:"required"`
	Username  string `json:"username"  validate:"required,min=3"`
	Password  string `json:"password"  validate:"required,min=6"`
}

type registerDoctorResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Hospital string `json:"hospital"`
}

type blockScheduleRequest struct {
	Date    string `json:"date" validate:"required"`
	FullDay bool   `json:"fullDay"`
	From    string `json:"from"`
	To      string `json:"to"`
}

type scheduleBlockResponse struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	From    string `json:"from,omitempty"`
	To      string `json:"to,omitempty"`
	FullDay bool   `json:"fullDay"`
}

// StaffHandler exposes the hospital and doctor staff-management operations.
type StaffHandler struct {
	staff ports.StaffService
}

func NewStaffHandler(staff ports.StaffService) *StaffHandler {
	return &StaffHandler{staff: staff}
}

// RegisterDoctor creates a doctor account under the calling hospital.
//
// @Summary      Register a doctor
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerDoctorRequest  true  "Doctor profile and credentials"
// @Success      201   {object}  registerDoctorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/hospital/doctors [post]
func (h *StaffHandler) RegisterDoctor(c echo.Context) error {
	session, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req registerDoctorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	record, err := h.staff.RegisterDoctor(c.Request().Context(), ports.RegisterDoctorInput{
		FullName:  req.FullName,
		Specialty: req.Specialty,
		License:   req.License,
		Username:  req.Username,
		Password:  req.Password,
		Hospital:  session.Field1,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerDoctorResponse{
		ID:       record.ID,
		Username: record.Field1,
		Hospital: session.Field1,
	})
}

// BlockSchedule marks a slot range on the calling doctor's day unavailable.
//
// @Summary      Block schedule slots
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      blockScheduleRequest  true  "Date and slot range"
// @Success      201   {object}  scheduleBlockResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/doctor/schedule/blocks [post]
func (h *StaffHandler) BlockSchedule(c echo.Context) error {
	session, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req blockScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	block, err := h.staff.BlockSchedule(c.Request().Context(), session, ports.BlockScheduleInput{
		Date:    req.Date,
		FullDay: req.FullDay,
		From:    req.From,
		To:      req.To,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, scheduleBlockResponse{
		ID:      block.ID,
		Date:    block.Date,
		From:    block.From,
		To:      block.To,
		FullDay: block.FullDay,
	})
}
