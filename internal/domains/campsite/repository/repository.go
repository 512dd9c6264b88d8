package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"campnest/infras/otel"
	"campnest/infras/postgres"
	"campnest/internal/domains/campsite/model"
	"campnest/shared/constant"
	gDto "campnest/shared/dto"
	"campnest/shared/logger"
	gRepo "campnest/shared/repository"
)

const selectColumns = `id, name, type, price_per_night, capacity, description, amenities, status, average_rating,
	created_at, modified_at, created_by, modified_by`

type Campsite interface {
	Insert(ctx context.Context, model model.Campsite) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Campsite, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Campsite, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Featured(ctx context.Context, limit int) ([]model.Campsite, error)
	GetAvailable(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, checkIn, checkOut time.Time) ([]model.Campsite, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Campsite]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Campsite {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Campsite](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Featured returns a random selection of active campsites.
func (repo *repositoryImpl) Featured(ctx context.Context, limit int) (res []model.Campsite, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".campsite.Featured")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE status = :status ORDER BY random() LIMIT :limit",
		selectColumns, model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	args := map[string]any{
		"status": model.StatusActive,
		"limit":  limit,
	}

	if err = prepare.SelectContext(ctx, &res, args); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get featured campsites: %w", err)
	}

	return res, nil
}

// GetAvailable lists campsites matching the filter that have no conflicting
// booking within the given date window. Cancelled bookings never conflict.
func (repo *repositoryImpl) GetAvailable(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, checkIn, checkOut time.Time) (res []model.Campsite, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".campsite.GetAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	where, args := repo.BuildWhereClause(ctx, filter)

	conflictSubquery := "id NOT IN (" +
		"SELECT campsite_id FROM bookings " +
		"WHERE check_in <= :window_check_out AND check_out >= :window_check_in AND status != 'cancelled')"

	if where == "" {
		where = " WHERE " + conflictSubquery
	} else {
		where += " AND " + conflictSubquery
	}

	args["window_check_in"] = checkIn
	args["window_check_out"] = checkOut

	var pagination string

	if params.Page > 0 && params.Limit > 0 {
		args["limit"] = params.Limit
		args["offset"] = (params.Page - 1) * params.Limit
		pagination = "LIMIT :limit OFFSET :offset"
	}

	ordering := ""
	if params.SortBy != "" && params.SortDir != "" {
		ordering = fmt.Sprintf("ORDER BY %s %s", params.SortBy, params.SortDir)
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s %s %s", selectColumns, model.TableName, where, ordering, pagination)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &res, args); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get available campsites: %w", err)
	}

	return res, nil
}
