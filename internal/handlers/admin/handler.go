package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"campnest/infras/otel"
	bookingDto "campnest/internal/domains/booking/model/dto"
	bookingService "campnest/internal/domains/booking/service"
	userModel "campnest/internal/domains/user/model"
	userService "campnest/internal/domains/user/service"
	"campnest/shared/constant"
	gDto "campnest/shared/dto"
	"campnest/shared/validator"
	"campnest/transport/http/response"
)

type Handler struct {
	bookingService bookingService.Booking
	userService    userService.User
	otel           otel.Otel
}

func New(bookingService bookingService.Booking, userService userService.User, otel otel.Otel) Handler {
	return Handler{
		bookingService: bookingService,
		userService:    userService,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Get("/stats", handler.GetStats)
		routerGroup.Get("/users", handler.GetUsers)
		routerGroup.Patch("/bookings/{id}/status", handler.UpdateBookingStatus)
		routerGroup.Post("/bookings/{id}/reminder", handler.SendReminder)
		routerGroup.Post("/bookings/{id}/review-request", handler.SendReviewRequest)
	})
}

// GetStats returns aggregate booking and campsite figures.
// @Summary Get back-office stats
// @Description Retrieve booking counts, active campsite count, and total revenue.
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[bookingDto.BookingStatsResponse] "Aggregate stats"
// @Failure 500 {object} response.Error
// @Router /v1/admin/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	stats, err := handler.bookingService.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, stats)
}

// GetUsers retrieves registered users.
// @Summary Get all users
// @Description Retrieve registered users with optional role filtering and pagination.
// @Tags Admin
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param role query string false "Filter by role (client, admin)"
// @Success 200 {object} response.Data[dto.GetUsersResponse] "List of users"
// @Failure 500 {object} response.Error
// @Router /v1/admin/users [get]
// @Security BearerAuth
func (handler *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	role := r.URL.Query().Get(userModel.FieldRole)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if role != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    userModel.FieldRole,
			Operator: gDto.FilterOperatorEq,
			Value:    role,
			Table:    userModel.TableName,
		})
	}

	users, err := handler.userService.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get users")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Users retrieved successfully")

	response.WithJSON(w, http.StatusOK, users)
}

// UpdateBookingStatus moves a booking through its lifecycle.
// @Summary Update booking status
// @Description Set a booking's status to pending, confirmed, completed, or cancelled.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body bookingDto.UpdateBookingStatusRequest true "Update Booking Status Request"
// @Success 200 {object} response.Message "Booking status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := bookingDto.UpdateBookingStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.bookingService.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking status updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking status updated successfully")
}

// SendReminder sends an upcoming-stay reminder email for a booking.
// @Summary Send booking reminder
// @Description Send a reminder email to the guest of the given booking.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Reminder sent successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings/{id}/reminder [post]
// @Security BearerAuth
func (handler *Handler) SendReminder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendReminder")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.bookingService.SendReminder(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send reminder")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reminder sent successfully")

	response.WithMessage(w, http.StatusOK, "Reminder sent successfully")
}

// SendReviewRequest sends a post-stay review request email for a booking.
// @Summary Send review request
// @Description Send a review request email to the guest of the given booking.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Review request sent successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings/{id}/review-request [post]
// @Security BearerAuth
func (handler *Handler) SendReviewRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendReviewRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.bookingService.SendReviewRequest(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send review request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review request sent successfully")

	response.WithMessage(w, http.StatusOK, "Review request sent successfully")
}
