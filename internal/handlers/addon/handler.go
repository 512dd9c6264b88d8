package addon

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"campnest/infras/otel"
	"campnest/internal/domains/addon/model"
	"campnest/internal/domains/addon/model/dto"
	"campnest/internal/domains/addon/service"
	"campnest/shared/constant"
	gDto "campnest/shared/dto"
	"campnest/shared/validator"
	"campnest/transport/http/response"
)

type Handler struct {
	service service.Addon
	otel    otel.Otel
}

func New(service service.Addon, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/addons", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAddons)
		routerGroup.Get("/{id}", handler.GetAddonByID)
		routerGroup.Post("/", handler.CreateAddon)
		routerGroup.Patch("/{id}", handler.UpdateAddon)
		routerGroup.Delete("/{id}", handler.DeleteAddon)
	})
}

// CreateAddon handles the creation of a new add-on service.
// @Summary Create a new addon
// @Description Create a new add-on service with the provided details.
// @Tags Addon
// @Accept json
// @Produce json
// @Param request body dto.CreateAddonRequest true "Create Addon Request"
// @Success 201 {object} response.Message "Addon created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/addons [post]
// @Security BearerAuth
func (handler *Handler) CreateAddon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAddon")
	defer scope.End()

	req := dto.CreateAddonRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create addon")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Addon created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Addon created successfully")
}

// GetAddons retrieves all add-on services based on query parameters.
// @Summary Get all addons
// @Description Retrieve add-on services with optional filtering and pagination.
// @Tags Addon
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param category query string false "Filter by category (gear_rental, activity)"
// @Param status query string false "Filter by status (active, inactive)"
// @Success 200 {object} response.Data[dto.GetAddonsResponse] "List of addons"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/addons [get]
func (handler *Handler) GetAddons(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAddons")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	category := r.URL.Query().Get(model.FieldCategory)
	status := r.URL.Query().Get(model.FieldStatus)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
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

	addons, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get addons")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Addons retrieved successfully")

	response.WithJSON(w, http.StatusOK, addons)
}

// GetAddonByID retrieves an add-on service by its ID.
// @Summary Get an addon by ID
// @Description Retrieve an add-on service by its unique identifier.
// @Tags Addon
// @Accept json
// @Produce json
// @Param id path string true "Addon ID"
// @Success 200 {object} response.Data[dto.AddonResponse] "Addon details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/addons/{id} [get]
func (handler *Handler) GetAddonByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAddonByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	addon, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get addon by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Addon retrieved successfully")

	response.WithJSON(w, http.StatusOK, addon)
}

// UpdateAddon updates an existing add-on service by its ID.
// @Summary Update an addon by ID
// @Description Update the details of an existing add-on service.
// @Tags Addon
// @Accept json
// @Produce json
// @Param id path string true "Addon ID"
// @Param request body dto.UpdateAddonRequest true "Update Addon Request"
// @Success 200 {object} response.Message "Addon updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/addons/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAddon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAddon")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateAddonRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update addon")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Addon updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Addon updated successfully")
}

// DeleteAddon deletes an add-on service by its ID.
// @Summary Delete an addon by ID
// @Description Delete an add-on service using its unique identifier.
// @Tags Addon
// @Accept json
// @Produce json
// @Param id path string true "Addon ID"
// @Success 200 {object} response.Message "Addon deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/addons/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAddon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAddon")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete addon")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Addon deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Addon deleted successfully")
}
