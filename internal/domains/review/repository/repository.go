package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"campnest/infras/otel"
	"campnest/infras/postgres"
	"campnest/internal/domains/review/model"
	"campnest/shared/constant"
	gDto "campnest/shared/dto"
	"campnest/shared/logger"
	gRepo "campnest/shared/repository"
)

type Review interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Review, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Review, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	InsertAndRefreshRating(ctx context.Context, review model.Review) error
	DeleteAndRefreshRating(ctx context.Context, reviewID, campsiteID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Review]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Review {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Review](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertAndRefreshRating inserts the review and recomputes the campsite's
// average rating in the same transaction, so readers never see a review
// without its effect on the aggregate.
func (repo *repositoryImpl) InsertAndRefreshRating(ctx context.Context, review model.Review) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.InsertAndRefreshRating")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	if err = repo.InsertTx(ctx, tx, review); err != nil {
		return err //nolint:wrapcheck
	}

	refreshQuery := `UPDATE campsites
		SET average_rating = COALESCE(
			(SELECT AVG(rating) FROM reviews WHERE campsite_id = :campsite_id), 0)
		WHERE id = :campsite_id`
	scope.SetAttribute(constant.OtelQueryAttributeKey, refreshQuery)

	if _, err = tx.NamedExecContext(ctx, refreshQuery, map[string]any{"campsite_id": review.CampsiteID}); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to refresh campsite rating: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}

// DeleteAndRefreshRating removes the review and recomputes the campsite's
// average rating in the same transaction.
func (repo *repositoryImpl) DeleteAndRefreshRating(ctx context.Context, reviewID, campsiteID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.DeleteAndRefreshRating")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	if _, err = tx.NamedExecContext(ctx, "DELETE FROM reviews WHERE id = :id", map[string]any{"id": reviewID}); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to delete review: %w", err)
	}

	refreshQuery := `UPDATE campsites
		SET average_rating = COALESCE(
			(SELECT AVG(rating) FROM reviews WHERE campsite_id = :campsite_id), 0)
		WHERE id = :campsite_id`

	if _, err = tx.NamedExecContext(ctx, refreshQuery, map[string]any{"campsite_id": campsiteID}); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to refresh campsite rating: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}
