package http

import (
	"github.com/gin-gonic/gin"

	"portal-srv/pkg/response"
)

// @Summary Book an appointment
// @Description Book an appointment and enqueue a reminder; patients book only for themselves
// @Tags Appointment
// @Accept json
// @Produce json
// @Param body body bookAppointmentReq true "Appointment details"
// @Success 200 {object} appointmentResp
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/appointments [post]
func (h *handler) BookAppointment(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processBookAppointmentRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "appointment.delivery.http.BookAppointment: processBookAppointmentRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Book(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "appointment.delivery.http.BookAppointment: usecase Book failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newAppointmentResp(o.Appointment))
}

// @Summary List appointments
// @Description List a patient's appointments, optionally filtered by status
// @Tags Appointment
// @Produce json
// @Param patient_id query string true "Patient ID"
// @Param status query string false "BOOKED or CANCELLED"
// @Success 200 {object} listAppointmentsResp
// @Failure 403 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/appointments [get]
func (h *handler) ListAppointments(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListAppointmentsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "appointment.delivery.http.ListAppointments: processListAppointmentsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "appointment.delivery.http.ListAppointments: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newListAppointmentsResp(o.Appointments))
}

// @Summary Cancel an appointment
// @Description Cancel a booked appointment; patients cancel only their own
// @Tags Appointment
// @Accept json
// @Produce json
// @Param body body cancelAppointmentReq true "Appointment to cancel"
// @Success 200 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/appointments/cancel [post]
func (h *handler) CancelAppointment(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCancelAppointmentRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "appointment.delivery.http.CancelAppointment: processCancelAppointmentRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.Cancel(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "appointment.delivery.http.CancelAppointment: usecase Cancel failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
