package stay

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	guestDto "lodge/internal/domains/guest/model/dto"
	"lodge/internal/domains/stay/model/dto"
	"lodge/internal/domains/stay/service"
	"lodge/shared/constant"
	"lodge/shared/validator"
	"lodge/transport/http/response"
)

type Handler struct {
	service service.Stay
	otel    otel.Otel
}

func New(service service.Stay, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/bookings/{id}/check-in", handler.CheckIn)
	router.Post("/bookings/{id}/check-out", handler.CheckOut)
}

type CheckInPayload struct {
	Guest   guestDto.GuestResponse `json:"guest"`
	Message string                 `json:"message"`
}

type CheckOutPayload struct {
	dto.CheckOutResponse
	Message string `json:"message"`
}

// CheckIn registers a guest against a confirmed booking.
// @Summary Check a guest in
// @Description Register the guest, collect the security deposit, and move the booking to Checked-In.
// @Tags Stay
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CheckInRequest true "Check-In Request"
// @Success 200 {object} response.Data[CheckInPayload] "Guest checked in successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/check-in [post]
func (handler *Handler) CheckIn(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.CheckInRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	guest, err := handler.service.CheckIn(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in guest")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("guest checked in")

	response.WithJSON(writer, http.StatusOK, CheckInPayload{
		Guest:   guest,
		Message: "Guest checked in successfully",
	})
}

// CheckOut settles the stay for a checked-in booking.
// @Summary Check a guest out
// @Description Settle the deposit, close the guest registration, and move the booking to Checked-Out.
// @Tags Stay
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CheckOutRequest true "Check-Out Request"
// @Success 200 {object} response.Data[CheckOutPayload] "Guest checked out successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/check-out [post]
func (handler *Handler) CheckOut(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.CheckOutRequest{}

	// deposit_action is optional, so a bodiless check-out means a full refund
	if request.ContentLength > 0 {
		if err := validator.Validate(request.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(writer, err)

			return
		}
	}

	res, err := handler.service.CheckOut(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out guest")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("guest checked out")

	response.WithJSON(writer, http.StatusOK, CheckOutPayload{
		CheckOutResponse: res,
		Message:          "Guest checked out successfully",
	})
}
