package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"campnest/config"
	"campnest/infras/kafka"
	"campnest/infras/otel"
	bookingModel "campnest/internal/domains/booking/model"
	bookingRepo "campnest/internal/domains/booking/repository"
	"campnest/internal/domains/review/model"
	"campnest/internal/domains/review/model/dto"
	"campnest/internal/domains/review/repository"
	"campnest/shared"
	"campnest/shared/cache"
	"campnest/shared/constant"
	gDto "campnest/shared/dto"
	"campnest/shared/failure"
)

const (
	cacheGetAllReview = "review:gets"
	cacheCountReview  = "review:count"

	// Campsite listings embed the average rating, so review writes
	// invalidate them too.
	cacheGetCampsite      = "campsite:get"
	cacheGetAllCampsite   = "campsite:gets"
	cacheFeaturedCampsite = "campsite:featured"
)

type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest, userID string) (dto.ReviewResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReviewsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Review
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	producer    kafka.Client
}

func New(
	repo repository.Review,
	bookingRepo bookingRepo.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	producer kafka.Client,
) Review {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		producer:    producer,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest, userID string) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.UserID != userID {
		return res, failure.Forbidden("bookings can only be reviewed by their owner") // nolint:wrapcheck
	}

	if booking.Status != bookingModel.StatusCompleted {
		return res, failure.BadRequestFromString("only completed stays can be reviewed") // nolint:wrapcheck
	}

	reviewed, err := s.repo.Exist(ctx, filterByBookingID(req.BookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking is reviewed")

		return res, fmt.Errorf("failed to check if booking is reviewed: %w", err)
	}

	if reviewed {
		return res, failure.Conflict("booking already reviewed") // nolint:wrapcheck
	}

	review := req.ToModel(userID, booking.CampsiteID)

	if err = s.repo.InsertAndRefreshRating(ctx, review); err != nil {
		log.Error().Err(err).Msg("failed to create review")

		return res, fmt.Errorf("failed to create review: %w", err)
	}

	res.FromModel(review)

	go s.afterWrite(ctx, review)

	return res, nil
}

func (s *serviceImpl) afterWrite(ctx context.Context, review model.Review) {
	c := context.WithoutCancel(ctx)

	shared.InvalidateCaches(c, s.cache, cacheGetAllReview, cacheCountReview, cacheGetAllCampsite, cacheFeaturedCampsite)

	if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCampsite, review.CampsiteID)); err != nil {
		log.Error().Err(err).Msg("failed to delete campsite from cache")
	}

	message := kafka.Message{Key: review.ID, Value: map[string]any{
		"event":       "review.created",
		"review_id":   review.ID,
		"booking_id":  review.BookingID,
		"campsite_id": review.CampsiteID,
		"rating":      review.Rating,
	}}

	if err := s.producer.SendMessages(c, constant.KafkaTopicReviews, message); err != nil {
		log.Error().Err(err).Str("review_id", review.ID).Msg("failed to publish review event")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReview, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reviews")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return res, fmt.Errorf("failed to count reviews: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reviews to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReview, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for review count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return res, fmt.Errorf("failed to count reviews: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save review count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	review, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get review")

		return fmt.Errorf("failed to get review: %w", err)
	}

	if review.ID == constant.Empty {
		return failure.NotFound("review not found") // nolint:wrapcheck
	}

	if err = s.repo.DeleteAndRefreshRating(ctx, review.ID, review.CampsiteID); err != nil {
		log.Error().Err(err).Msg("failed to delete review")

		return fmt.Errorf("failed to delete review: %w", err)
	}

	go s.afterWrite(ctx, review)

	return nil
}

func filterByBookingID(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.TableName,
			},
		},
	}
}
