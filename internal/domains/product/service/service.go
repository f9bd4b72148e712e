package service

import (
	"context"
	"fmt"
	"path"
	"wbrent/config"
	"wbrent/infras/otel"
	"wbrent/infras/s3"
	"wbrent/internal/domains/product/model"
	"wbrent/internal/domains/product/model/dto"
	"wbrent/internal/domains/product/repository"
	"wbrent/shared"
	"wbrent/shared/cache"
	"wbrent/shared/constant"
	gDto "wbrent/shared/dto"
	"wbrent/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetProduct    = "product:get"
	cacheGetAllProduct = "product:gets"
	cacheCountProduct  = "product:count"
	cacheGetImages     = "product:images"
)

type Product interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetProductsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ProductResponse, error)
	GetImages(ctx context.Context, productID string) (dto.GetImagesResponse, error)
	UploadImage(ctx context.Context, productID string, req dto.UploadImageRequest) (dto.ImageResponse, error)
	DeleteImage(ctx context.Context, productID, imageID string) error
}

type serviceImpl struct {
	repo      repository.Product
	imageRepo repository.Image
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	s3        s3.S3
}

func New(repo repository.Product, imageRepo repository.Image, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Product {
	return &serviceImpl{
		repo:      repo,
		imageRepo: imageRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		s3:        s3,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetProductsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllProduct, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for products")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count products")

		return res, err
	}

	products, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get products")

		return res, fmt.Errorf("failed to get products: %w", err)
	}

	res.FromModels(products, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save products to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountProduct, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for product count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count products")

		return total, fmt.Errorf("failed to count products: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save product count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ProductResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheGetProduct, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for product")

		return res, nil
	}

	product, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get product")

		return res, fmt.Errorf("failed to get product: %w", err)
	}

	if product.ID == constant.Empty {
		return res, failure.NotFound("product not found") // nolint:wrapcheck
	}

	res.FromModel(product)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save product to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetImages(ctx context.Context, productID string) (res dto.GetImagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetImages")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheGetImages, productID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for product images")

		return res, nil
	}

	if err = s.ensureProduct(ctx, productID); err != nil {
		return res, err
	}

	params := gDto.QueryParams{SortBy: model.ImageTableName + "." + model.FieldImagePosition, SortDir: gDto.SortDirAsc}

	images, err := s.imageRepo.GetAll(ctx, params, shared.FilterByID(productID, model.FieldImageProductID, model.ImageTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get product images")

		return res, fmt.Errorf("failed to get product images: %w", err)
	}

	res.FromModels(images)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save product images to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, productID string, req dto.UploadImageRequest) (res dto.ImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = s.ensureProduct(ctx, productID); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	fileName := uuid.NewString() + path.Ext(req.Image.Filename)

	url, err := s.s3.UploadFile(ctx, productID, fileName, req.ImageFile, req.Image)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload product image")

		return res, fmt.Errorf("failed to upload product image: %w", err)
	}

	image := req.ToModel(productID, url, user)

	if err = s.imageRepo.Insert(ctx, image); err != nil {
		log.Error().Err(err).Msg("failed to save product image")

		s.removeObject(context.WithoutCancel(ctx), url)

		return res, fmt.Errorf("failed to save product image: %w", err)
	}

	res.FromModel(image)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetImages, productID)); err != nil {
			log.Error().Err(err).Msg("failed to delete product images cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) DeleteImage(ctx context.Context, productID, imageID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteImage")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldImageID, Value: imageID, Operator: gDto.FilterOperatorEq, Table: model.ImageTableName},
			gDto.Filter{Field: model.FieldImageProductID, Value: productID, Operator: gDto.FilterOperatorEq, Table: model.ImageTableName},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	image, err := s.imageRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get product image")

		return fmt.Errorf("failed to get product image: %w", err)
	}

	if image.ID == constant.Empty {
		return failure.NotFound("product image not found") // nolint:wrapcheck
	}

	if err = s.imageRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete product image")

		return fmt.Errorf("failed to delete product image: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetImages, productID)); err != nil {
			log.Error().Err(err).Msg("failed to delete product images cache")
		}

		s.removeObject(c, image.URL)
	}()

	return nil
}

func (s *serviceImpl) ensureProduct(ctx context.Context, productID string) error {
	exist, err := s.repo.Exist(ctx, shared.FilterByID(productID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check product existence")

		return fmt.Errorf("failed to check product existence: %w", err)
	}

	if !exist {
		return failure.NotFound("product not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) removeObject(ctx context.Context, url string) {
	objectKey := s.s3.ObjectKeyFromURL(url)
	if objectKey == constant.Empty {
		log.Warn().Str("url", url).Msg("image url does not belong to the bucket")

		return
	}

	if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
		log.Error().Err(err).Str("objectKey", objectKey).Msg("failed to delete product image from S3")
	}
}
