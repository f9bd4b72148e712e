package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"wbrent/config"
	"wbrent/infras/otel"
	"wbrent/internal/domains/pricing"
	productModel "wbrent/internal/domains/product/model"
	productRepo "wbrent/internal/domains/product/repository"
	"wbrent/internal/domains/quote/model"
	"wbrent/shared"
	"wbrent/shared/constant"
	"wbrent/shared/failure"

	"github.com/rs/zerolog/log"
)

type Quote interface {
	Calculate(ctx context.Context, in model.Input) (model.Quote, error)
}

type serviceImpl struct {
	productRepo productRepo.Product
	cfg         *config.Config
	otel        otel.Otel
}

func New(productRepo productRepo.Product, cfg *config.Config, otel otel.Otel) Quote {
	return &serviceImpl{
		productRepo: productRepo,
		cfg:         cfg,
		otel:        otel,
	}
}

// Calculate prices a rental for one product. Invalid periods and unknown
// products are validation failures.
func (s *serviceImpl) Calculate(ctx context.Context, in model.Input) (res model.Quote, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Calculate")
	defer scope.End()
	defer scope.TraceIfError(&err)

	res.Range, err = pricing.ParseRange(in.StartDate, in.EndDate, in.StartTime, in.EndTime)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res.Days, err = pricing.CountDays(res.Range)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res.Product, err = s.productRepo.Get(ctx, shared.FilterByID(in.ProductID, productModel.FieldID, productModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("productId", in.ProductID).Msg("failed to get product for quote")

		return res, fmt.Errorf("failed to get product: %w", err)
	}

	if res.Product.ID == constant.Empty {
		return res, failure.BadRequestFromString("product not found") // nolint:wrapcheck
	}

	res.Flags = pricing.CalendarFlags(res.Range.Start, res.Days)
	res.Flags.WithDelivery = in.Delivery

	res.Breakdown, err = pricing.Calculate(res.Product.Tariff(), res.Days, res.Flags, pricing.Fees{
		DeliveryUnitFee: s.cfg.Pricing.DeliveryUnitFee,
	})
	if errors.Is(err, pricing.ErrInvalidDays) {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err != nil {
		return res, fmt.Errorf("failed to calculate price: %w", err)
	}

	scope.SetAttributes(map[string]any{
		"quote.product": res.Product.ID,
		"quote.days":    res.Days,
		"quote.total":   res.Breakdown.Total,
	})

	return res, nil
}
