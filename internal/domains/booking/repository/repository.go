package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"campnest/infras/otel"
	"campnest/infras/postgres"
	"campnest/internal/domains/booking/model"
	"campnest/shared/constant"
	gDto "campnest/shared/dto"
	"campnest/shared/logger"
	gRepo "campnest/shared/repository"
)

// ErrDateConflict is returned when a booking loses the race for a date window
// between the availability check and the insert.
var ErrDateConflict = errors.New("campsite already booked for the selected dates")

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	IsAvailable(ctx context.Context, campsiteID string, checkIn, checkOut time.Time) (bool, error)
	CreateWithAddons(ctx context.Context, booking model.Booking, addons []model.BookingAddon) error
	GetAddons(ctx context.Context, filter gDto.FilterGroup) ([]model.BookingAddon, error)
	Revenue(ctx context.Context) (decimal.Decimal, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	addonRepo gRepo.Repository[model.BookingAddon]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		addonRepo:  gRepo.NewRepository[model.BookingAddon](model.AddonEntityName, model.AddonTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// IsAvailable reports whether the campsite has no overlapping booking in the
// given window. Bounds are inclusive, so back-to-back stays on the same day
// conflict. Cancelled bookings never conflict.
func (repo *repositoryImpl) IsAvailable(ctx context.Context, campsiteID string, checkIn, checkOut time.Time) (available bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.IsAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT NOT EXISTS(
		SELECT 1 FROM bookings
		WHERE campsite_id = :campsite_id
		  AND check_in <= :check_out
		  AND check_out >= :check_in
		  AND status != 'cancelled')`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	args := map[string]any{
		"campsite_id": campsiteID,
		"check_in":    checkIn,
		"check_out":   checkOut,
	}

	if err = prepare.GetContext(ctx, &available, args); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check availability: %w", err)
	}

	return available, nil
}

// CreateWithAddons inserts the booking and its add-on lines in one
// transaction. The availability window is re-checked inside the transaction
// to narrow the gap between the service-level check and the insert; under
// read committed two overlapping requests can still both pass the re-check
// and commit.
func (repo *repositoryImpl) CreateWithAddons(ctx context.Context, booking model.Booking, addons []model.BookingAddon) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateWithAddons")
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

	conflictQuery := `SELECT EXISTS(
		SELECT 1 FROM bookings
		WHERE campsite_id = :campsite_id
		  AND check_in <= :check_out
		  AND check_out >= :check_in
		  AND status != 'cancelled')`

	conflictArgs := map[string]any{
		"campsite_id": booking.CampsiteID,
		"check_in":    booking.CheckIn,
		"check_out":   booking.CheckOut,
	}

	rows, err := tx.NamedQuery(conflictQuery, conflictArgs)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to check availability: %w", err)
	}

	conflict := false
	if rows.Next() {
		if err = rows.Scan(&conflict); err != nil {
			rows.Close()
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to check availability: %w", err)
		}
	}
	rows.Close()

	if conflict {
		err = ErrDateConflict

		return err
	}

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		return err //nolint:wrapcheck
	}

	if len(addons) > 0 {
		if err = repo.addonRepo.InsertBulkTx(ctx, tx, addons); err != nil {
			return err //nolint:wrapcheck
		}

		totalQuery := `UPDATE bookings
			SET total_price = total_price + (
				SELECT COALESCE(SUM(price), 0) FROM booking_addons WHERE booking_id = :id)
			WHERE id = :id`

		if _, err = tx.NamedExecContext(ctx, totalQuery, map[string]any{"id": booking.ID}); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to sum booking total: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) GetAddons(ctx context.Context, filter gDto.FilterGroup) ([]model.BookingAddon, error) {
	return repo.addonRepo.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}

// Revenue sums the totals of confirmed and completed bookings.
func (repo *repositoryImpl) Revenue(ctx context.Context) (res decimal.Decimal, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Revenue")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := "SELECT COALESCE(SUM(total_price), 0) FROM bookings WHERE status IN ('confirmed', 'completed')"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.GetContext(ctx, &res, query); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to sum revenue: %w", err)
	}

	return res, nil
}
