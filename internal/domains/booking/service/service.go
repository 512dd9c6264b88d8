package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"campnest/config"
	"campnest/infras/kafka"
	"campnest/infras/mailer"
	"campnest/infras/otel"
	addonModel "campnest/internal/domains/addon/model"
	addonRepo "campnest/internal/domains/addon/repository"
	"campnest/internal/domains/booking/model"
	"campnest/internal/domains/booking/model/dto"
	"campnest/internal/domains/booking/repository"
	campsiteModel "campnest/internal/domains/campsite/model"
	campsiteRepo "campnest/internal/domains/campsite/repository"
	userModel "campnest/internal/domains/user/model"
	userRepo "campnest/internal/domains/user/repository"
	"campnest/shared"
	"campnest/shared/cache"
	"campnest/shared/constant"
	gDto "campnest/shared/dto"
	"campnest/shared/failure"
	gModel "campnest/shared/model"
	"campnest/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest, userID string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id, userID, role string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id, userID string) error
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) error
	Stats(ctx context.Context) (dto.BookingStatsResponse, error)
	SendReminder(ctx context.Context, id string) error
	SendReviewRequest(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Booking
	campsiteRepo campsiteRepo.Campsite
	addonRepo    addonRepo.Addon
	userRepo     userRepo.User
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	mailer       mailer.Mailer
	producer     kafka.Client
}

func New(
	repo repository.Booking,
	campsiteRepo campsiteRepo.Campsite,
	addonRepo addonRepo.Addon,
	userRepo userRepo.User,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	mailer mailer.Mailer,
	producer kafka.Client,
) Booking {
	return &serviceImpl{
		repo:         repo,
		campsiteRepo: campsiteRepo,
		addonRepo:    addonRepo,
		userRepo:     userRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		mailer:       mailer,
		producer:     producer,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest, userID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, err := time.Parse(constant.BookingDateFmt, req.CheckIn)
	if err != nil {
		return res, failure.BadRequestFromString("check_in must be a valid date") // nolint:wrapcheck
	}

	checkOut, err := time.Parse(constant.BookingDateFmt, req.CheckOut)
	if err != nil {
		return res, failure.BadRequestFromString("check_out must be a valid date") // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return res, failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	campsite, err := s.campsiteRepo.Get(ctx, shared.FilterByID(req.CampsiteID, campsiteModel.FieldID, campsiteModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get campsite")

		return res, fmt.Errorf("failed to get campsite: %w", err)
	}

	if campsite.ID == constant.Empty {
		return res, failure.NotFound("campsite not found") // nolint:wrapcheck
	}

	if campsite.Status != campsiteModel.StatusActive {
		return res, failure.BadRequestFromString("campsite is not open for booking") // nolint:wrapcheck
	}

	available, err := s.repo.IsAvailable(ctx, campsite.ID, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to check availability")

		return res, fmt.Errorf("failed to check availability: %w", err)
	}

	if !available {
		return res, failure.Unavailable(campsiteModel.EntityName) // nolint:wrapcheck
	}

	booking := req.ToModel(userID, checkIn, checkOut)
	nights := Nights(checkIn, checkOut)
	booking.TotalPrice = campsite.PricePerNight.Mul(decimalFromInt(nights))

	lines, err := s.resolveAddons(ctx, req.Addons, booking, userID)
	if err != nil {
		return res, err
	}

	if err = s.repo.CreateWithAddons(ctx, booking, lines); err != nil {
		if errors.Is(err, repository.ErrDateConflict) {
			return res, failure.Unavailable(campsiteModel.EntityName) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.CampsiteName = campsite.Name
	booking.TotalPrice = ComputeTotal(campsite.PricePerNight, nights, lines)

	res.FromModel(booking)
	res.WithAddons(lines)

	go s.afterCreate(ctx, booking)

	return res, nil
}

// resolveAddons freezes the current addon prices into booking lines. A
// missing or inactive addon fails the whole request.
func (s *serviceImpl) resolveAddons(ctx context.Context, reqs []dto.BookingAddonRequest, booking model.Booking, userID string) ([]model.BookingAddon, error) {
	lines := make([]model.BookingAddon, 0, len(reqs))

	for _, req := range reqs {
		addon, err := s.addonRepo.Get(ctx, shared.FilterByID(req.AddonID, addonModel.FieldID, addonModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get addon")

			return nil, fmt.Errorf("failed to get addon: %w", err)
		}

		if addon.ID == constant.Empty || addon.Status != addonModel.StatusActive {
			return nil, failure.BadRequestFromString(fmt.Sprintf("addon %s is not available", req.AddonID)) // nolint:wrapcheck
		}

		lines = append(lines, model.BookingAddon{
			ID:        uuid.NewString(),
			BookingID: booking.ID,
			AddonID:   addon.ID,
			Quantity:  req.Quantity,
			Price:     addon.Price.Mul(decimalFromInt(req.Quantity)),
			AddonName: addon.Name,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  userID,
				ModifiedBy: userID,
			},
		})
	}

	return lines, nil
}

func (s *serviceImpl) afterCreate(ctx context.Context, booking model.Booking) {
	c := context.WithoutCancel(ctx)

	shared.InvalidateCaches(c, s.cache, cacheGetAllBooking, cacheCountBooking)

	data, err := s.emailData(c, booking.ID)
	if err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to build confirmation email")
	} else if err := s.mailer.SendBookingConfirmation(c, data); err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to send confirmation email")
	}

	message := kafka.Message{Key: booking.ID, Value: map[string]any{
		"event":       "booking.created",
		"booking_id":  booking.ID,
		"campsite_id": booking.CampsiteID,
		"user_id":     booking.UserID,
	}}

	if err := s.producer.SendMessages(c, constant.KafkaTopicBookings, message); err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to publish booking event")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id, userID, role string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if role != constant.RoleAdmin && booking.UserID != userID {
		return res, failure.Forbidden("bookings can only be viewed by their owner") // nolint:wrapcheck
	}

	lines, err := s.repo.GetAddons(ctx, filterByBookingID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking addons")

		return res, fmt.Errorf("failed to get booking addons: %w", err)
	}

	res.FromModel(booking)
	res.WithAddons(lines)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.UserID != userID {
		return failure.Forbidden("bookings can only be cancelled by their owner") // nolint:wrapcheck
	}

	if booking.Status != model.StatusPending && booking.Status != model.StatusConfirmed {
		return failure.BadRequestFromString("only pending or confirmed bookings can be cancelled") // nolint:wrapcheck
	}

	status := dto.UpdateBookingStatusRequest{Status: model.StatusCancelled}
	updatedFields := shared.TransformFields(status, userID)

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.BookingStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	pending, err := s.repo.Count(ctx, filterByStatus(model.FieldStatus, model.StatusPending, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to count pending bookings")

		return res, fmt.Errorf("failed to count pending bookings: %w", err)
	}

	activeCampsites, err := s.campsiteRepo.Count(ctx, filterByStatus(campsiteModel.FieldStatus, campsiteModel.StatusActive, campsiteModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to count active campsites")

		return res, fmt.Errorf("failed to count active campsites: %w", err)
	}

	revenue, err := s.repo.Revenue(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum revenue")

		return res, fmt.Errorf("failed to sum revenue: %w", err)
	}

	res.TotalBookings = total
	res.PendingBookings = pending
	res.ActiveCampsites = activeCampsites
	res.TotalRevenue = revenue

	return res, nil
}

func (s *serviceImpl) SendReminder(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendReminder")
	defer scope.End()
	defer scope.TraceIfError(err)

	data, err := s.emailData(ctx, id)
	if err != nil {
		return err
	}

	if err = s.mailer.SendBookingReminder(ctx, data); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to send reminder email")

		return fmt.Errorf("failed to send reminder email: %w", err)
	}

	return nil
}

func (s *serviceImpl) SendReviewRequest(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendReviewRequest")
	defer scope.End()
	defer scope.TraceIfError(err)

	data, err := s.emailData(ctx, id)
	if err != nil {
		return err
	}

	if err = s.mailer.SendReviewRequest(ctx, data); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to send review request email")

		return fmt.Errorf("failed to send review request email: %w", err)
	}

	return nil
}

func (s *serviceImpl) emailData(ctx context.Context, bookingID string) (data mailer.BookingEmailData, err error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		return data, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return data, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(booking.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		return data, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return data, failure.NotFound("user not found") // nolint:wrapcheck
	}

	return mailer.BookingEmailData{
		RecipientName: user.FirstName + " " + user.LastName,
		RecipientAddr: user.Email,
		CampsiteName:  booking.CampsiteName,
		CheckIn:       timezone.Format(booking.CheckIn, constant.BookingDateFmt),
		CheckOut:      timezone.Format(booking.CheckOut, constant.BookingDateFmt),
		TotalPrice:    booking.TotalPrice.StringFixed(2),
		BookingID:     booking.ID,
	}, nil
}

func filterByStatus(field, status, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    status,
				Table:    table,
			},
		},
	}
}

func filterByBookingID(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.AddonTableName,
			},
		},
	}
}

func decimalFromInt(v int) decimal.Decimal {
	return decimal.NewFromInt(int64(v))
}
