package campsite

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"campnest/infras/otel"
	"campnest/internal/domains/campsite/model"
	"campnest/internal/domains/campsite/model/dto"
	"campnest/internal/domains/campsite/service"
	"campnest/shared/constant"
	gDto "campnest/shared/dto"
	"campnest/shared/failure"
	"campnest/shared/validator"
	"campnest/transport/http/response"
)

type Handler struct {
	service service.Campsite
	otel    otel.Otel
}

func New(service service.Campsite, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/campsites", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCampsites)
		routerGroup.Get("/featured", handler.GetFeaturedCampsites)
		routerGroup.Get("/{id}", handler.GetCampsiteByID)
		routerGroup.Get("/{id}/availability", handler.GetCampsiteAvailability)
		routerGroup.Post("/", handler.CreateCampsite)
		routerGroup.Patch("/{id}", handler.UpdateCampsite)
		routerGroup.Delete("/{id}", handler.DeleteCampsite)
	})
}

// CreateCampsite handles the creation of a new campsite.
// @Summary Create a new campsite
// @Description Create a new campsite with the provided details.
// @Tags Campsite
// @Accept json
// @Produce json
// @Param request body dto.CreateCampsiteRequest true "Create Campsite Request"
// @Success 201 {object} response.Message "Campsite created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/campsites [post]
// @Security BearerAuth
func (handler *Handler) CreateCampsite(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCampsite")
	defer scope.End()

	req := dto.CreateCampsiteRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create campsite")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Campsite created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Campsite created successfully")
}

// GetCampsites retrieves all campsites based on query parameters.
// @Summary Get all campsites
// @Description Retrieve campsites with optional filtering, search, availability window, and pagination.
// @Tags Campsite
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "Filter by type (tent, rv, cabin, glamping)"
// @Param status query string false "Filter by status (active, maintenance, inactive)"
// @Param search query string false "Search by name"
// @Param check_in query string false "Availability window start (YYYY-MM-DD)"
// @Param check_out query string false "Availability window end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetCampsitesResponse] "List of campsites"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/campsites [get]
func (handler *Handler) GetCampsites(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCampsites")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	campsiteType := r.URL.Query().Get(model.FieldType)
	status := r.URL.Query().Get(model.FieldStatus)
	search := r.URL.Query().Get(constant.RequestParamSearch)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if campsiteType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    campsiteType,
			Table:    model.TableName,
		})
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if search != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    search,
			Table:    model.TableName,
		})
	}

	window, err := parseDateWindow(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid availability window")

		response.WithError(w, err)

		return
	}

	campsites, err := handler.service.GetAll(ctx, queryParams, filterGroup, window)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get campsites")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Campsites retrieved successfully")

	response.WithJSON(w, http.StatusOK, campsites)
}

// GetFeaturedCampsites retrieves a rotating selection of active campsites.
// @Summary Get featured campsites
// @Description Retrieve a random selection of active campsites for the landing page.
// @Tags Campsite
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.FeaturedCampsitesResponse] "Featured campsites"
// @Failure 500 {object} response.Error
// @Router /v1/campsites/featured [get]
func (handler *Handler) GetFeaturedCampsites(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeaturedCampsites")
	defer scope.End()

	campsites, err := handler.service.Featured(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get featured campsites")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Featured campsites retrieved successfully")

	response.WithJSON(w, http.StatusOK, campsites)
}

// GetCampsiteByID retrieves a campsite by its ID.
// @Summary Get a campsite by ID
// @Description Retrieve a campsite by its unique identifier.
// @Tags Campsite
// @Accept json
// @Produce json
// @Param id path string true "Campsite ID"
// @Success 200 {object} response.Data[dto.CampsiteResponse] "Campsite details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/campsites/{id} [get]
func (handler *Handler) GetCampsiteByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCampsiteByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	campsite, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get campsite by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Campsite retrieved successfully")

	response.WithJSON(w, http.StatusOK, campsite)
}

// GetCampsiteAvailability checks whether a campsite is free for a date range.
// @Summary Check campsite availability
// @Description Check whether a campsite is free for the given check-in/check-out range.
// @Tags Campsite
// @Accept json
// @Produce json
// @Param id path string true "Campsite ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability result"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/campsites/{id}/availability [get]
func (handler *Handler) GetCampsiteAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCampsiteAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	window, err := parseDateWindow(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid availability window")

		response.WithError(w, err)

		return
	}

	if window == nil {
		err = failure.BadRequestFromString("check_in and check_out are required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	availability, err := handler.service.Availability(ctx, id, *window)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check campsite availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Campsite availability checked successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// UpdateCampsite updates an existing campsite by its ID.
// @Summary Update a campsite by ID
// @Description Update the details of an existing campsite.
// @Tags Campsite
// @Accept json
// @Produce json
// @Param id path string true "Campsite ID"
// @Param request body dto.UpdateCampsiteRequest true "Update Campsite Request"
// @Success 200 {object} response.Message "Campsite updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/campsites/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCampsite(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCampsite")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCampsiteRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update campsite")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Campsite updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Campsite updated successfully")
}

// DeleteCampsite deletes a campsite by its ID.
// @Summary Delete a campsite by ID
// @Description Delete a campsite using its unique identifier.
// @Tags Campsite
// @Accept json
// @Produce json
// @Param id path string true "Campsite ID"
// @Success 200 {object} response.Message "Campsite deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/campsites/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCampsite(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCampsite")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete campsite")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Campsite deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Campsite deleted successfully")
}

// parseDateWindow reads the optional check_in/check_out pair. Both must be
// present to form a window.
func parseDateWindow(r *http.Request) (*dto.DateWindow, error) {
	checkInParam := r.URL.Query().Get(constant.RequestParamCheckIn)
	checkOutParam := r.URL.Query().Get(constant.RequestParamCheckOut)

	if checkInParam == "" && checkOutParam == "" {
		return nil, nil
	}

	if checkInParam == "" || checkOutParam == "" {
		return nil, failure.BadRequestFromString("check_in and check_out must be provided together") // nolint:wrapcheck
	}

	checkIn, err := time.Parse(constant.BookingDateFmt, checkInParam)
	if err != nil {
		return nil, failure.BadRequestFromString("check_in must be a valid date") // nolint:wrapcheck
	}

	checkOut, err := time.Parse(constant.BookingDateFmt, checkOutParam)
	if err != nil {
		return nil, failure.BadRequestFromString("check_out must be a valid date") // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return nil, failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	return &dto.DateWindow{CheckIn: checkIn, CheckOut: checkOut}, nil
}
