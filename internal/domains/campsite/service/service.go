package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"campnest/config"
	"campnest/infras/otel"
	"campnest/internal/domains/campsite/model"
	"campnest/internal/domains/campsite/model/dto"
	"campnest/internal/domains/campsite/repository"
	"campnest/shared"
	"campnest/shared/cache"
	"campnest/shared/constant"
	gDto "campnest/shared/dto"
	"campnest/shared/failure"
)

const (
	cacheGetCampsite      = "campsite:get"
	cacheGetAllCampsite   = "campsite:gets"
	cacheCountCampsite    = "campsite:count"
	cacheFeaturedCampsite = "campsite:featured"
)

type Campsite interface {
	Create(ctx context.Context, req dto.CreateCampsiteRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, window *dto.DateWindow) (dto.GetCampsitesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.CampsiteResponse, error)
	Availability(ctx context.Context, id string, window dto.DateWindow) (dto.AvailabilityResponse, error)
	Featured(ctx context.Context) (dto.FeaturedCampsitesResponse, error)
	Update(ctx context.Context, req dto.UpdateCampsiteRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Campsite
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Campsite, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Campsite {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCampsiteRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.PricePerNight.Cmp(decimal.Zero) <= 0 {
		return failure.BadRequestFromString("price_per_night must be greater than zero") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create campsite")

		return fmt.Errorf("failed to create campsite: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCampsite, cacheCountCampsite, cacheFeaturedCampsite)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, window *dto.DateWindow) (res dto.GetCampsitesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Availability-filtered listings are never cached, the result changes
	// with every booking.
	if window != nil {
		models, err := s.repo.GetAvailable(ctx, req, filter, window.CheckIn, window.CheckOut)
		if err != nil {
			log.Error().Err(err).Msg("failed to get available campsites")

			return res, fmt.Errorf("failed to get available campsites: %w", err)
		}

		res.FromModels(models, len(models), req.Limit)

		return res, nil
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCampsite, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for campsites")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count campsites")

		return res, fmt.Errorf("failed to count campsites: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get campsites")

		return res, fmt.Errorf("failed to get campsites: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save campsites to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCampsite, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for campsite count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count campsites")

		return res, fmt.Errorf("failed to count campsites: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save campsite count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CampsiteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCampsite, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for campsite")

		return res, nil
	}

	campsite, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get campsite")

		return res, fmt.Errorf("failed to get campsite: %w", err)
	}

	if campsite.ID == constant.Empty {
		return res, failure.NotFound("campsite not found") // nolint:wrapcheck
	}

	res.FromModel(campsite)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save campsite to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Availability(ctx context.Context, id string, window dto.DateWindow) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	campsite, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get campsite")

		return res, fmt.Errorf("failed to get campsite: %w", err)
	}

	if campsite.ID == constant.Empty {
		return res, failure.NotFound("campsite not found") // nolint:wrapcheck
	}

	res.CampsiteID = campsite.ID
	res.CheckIn = window.CheckIn.Format(constant.BookingDateFmt)
	res.CheckOut = window.CheckOut.Format(constant.BookingDateFmt)

	// A campsite under maintenance or retired is never bookable.
	if campsite.Status != model.StatusActive {
		return res, nil
	}

	models, err := s.repo.GetAvailable(ctx, gDto.QueryParams{Page: 1, Limit: 1}, filter, window.CheckIn, window.CheckOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to check campsite availability")

		return res, fmt.Errorf("failed to check campsite availability: %w", err)
	}

	res.Available = len(models) > 0

	return res, nil
}

func (s *serviceImpl) Featured(ctx context.Context) (res dto.FeaturedCampsitesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Featured")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.Featured(ctx, constant.FeaturedCampsiteCount)
	if err != nil {
		log.Error().Err(err).Msg("failed to get featured campsites")

		return res, fmt.Errorf("failed to get featured campsites: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCampsiteRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if campsite exists")

		return fmt.Errorf("failed to check if campsite exists: %w", err)
	}

	if !exist {
		log.Error().Msg("campsite not found")

		return failure.NotFound("campsite not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update campsite")

		return fmt.Errorf("failed to update campsite: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCampsite, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete campsite from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCampsite, cacheCountCampsite, cacheFeaturedCampsite)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if campsite exists")

		return fmt.Errorf("failed to check if campsite exists: %w", err)
	}

	if !exist {
		log.Error().Msg("campsite not found")

		return failure.NotFound("campsite not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete campsite")

		return fmt.Errorf("failed to delete campsite: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCampsite, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete campsite from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCampsite, cacheCountCampsite, cacheFeaturedCampsite)
	}()

	return nil
}
