package stocknotify

import (
	"net/http"
	"wbrent/infras/otel"
	"wbrent/internal/domains/stocknotify/model"
	"wbrent/internal/domains/stocknotify/model/dto"
	"wbrent/internal/domains/stocknotify/service"
	"wbrent/shared/constant"
	gDto "wbrent/shared/dto"
	"wbrent/shared/validator"
	"wbrent/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.StockNotification
	otel    otel.Otel
}

func New(service service.StockNotification, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/stock-notifications", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Subscribe)
		routerGroup.Get("/", handler.GetSubscriptions)
	})
}

// Subscribe puts an email on the waiting list of an unavailable product.
// @Summary Subscribe to a stock notification
// @Description Repeating the same request is accepted and does not create a second entry.
// @Tags StockNotification
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Subscribe Request"
// @Success 201 {object} response.Message
// @Success 200 {object} response.Message "Already subscribed"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stock-notifications [post]
func (handler *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Subscribe")
	defer scope.End()

	req := dto.SubscribeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	created, err := handler.service.Subscribe(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("product_id", req.ProductID).Msg("failed to subscribe to stock notification")

		response.WithError(w, err)

		return
	}

	if !created {
		response.WithMessage(w, http.StatusOK, dto.MessageAlreadySubscribed)

		return
	}

	response.WithMessage(w, http.StatusCreated, dto.MessageSubscribed)
}

// GetSubscriptions lists waiting-list entries.
// @Summary Get stock notifications
// @Tags StockNotification
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param productId query string false "Filter by product"
// @Param pending query boolean false "Only entries not notified yet"
// @Success 200 {object} response.Data[dto.GetSubscriptionsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/stock-notifications [get]
// @Security BearerAuth
func (handler *Handler) GetSubscriptions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSubscriptions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: []any{}}

	if productID := r.URL.Query().Get(constant.RequestParamProductID); productID != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldProductID,
			Operator: gDto.FilterOperatorEq,
			Value:    productID,
			Table:    model.TableName,
		})
	}

	if r.URL.Query().Get("pending") == "true" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldNotifiedAt,
			Operator: gDto.FilterIsNull,
			Table:    model.TableName,
		})
	}

	subscriptions, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stock notifications")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, subscriptions)
}
