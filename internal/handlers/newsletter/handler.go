package newsletter

import (
	"net/http"
	"wbrent/infras/otel"
	"wbrent/internal/domains/newsletter/model"
	"wbrent/internal/domains/newsletter/model/dto"
	"wbrent/internal/domains/newsletter/service"
	"wbrent/shared"
	"wbrent/shared/constant"
	gDto "wbrent/shared/dto"
	"wbrent/shared/validator"
	"wbrent/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Newsletter
	otel    otel.Otel
}

func New(service service.Newsletter, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/newsletter", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Subscribe)
		routerGroup.Get("/", handler.GetSubscribers)
		routerGroup.Delete("/{token}", handler.Unsubscribe)
	})
}

// Subscribe adds an address to the newsletter.
// @Summary Subscribe to the newsletter
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Subscribe Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/newsletter [post]
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

	if err := handler.service.Subscribe(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to subscribe to newsletter")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, dto.MessageSubscribed)
}

// Unsubscribe deactivates the address owning token.
// @Summary Unsubscribe from the newsletter
// @Tags Newsletter
// @Produce json
// @Param token path string true "Unsubscribe token"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/newsletter/{token} [delete]
func (handler *Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Unsubscribe")
	defer scope.End()

	token := chi.URLParam(r, constant.RequestParamToken)

	if err := handler.service.Unsubscribe(ctx, token); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to unsubscribe from newsletter")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, dto.MessageUnsubscribed)
}

// GetSubscribers lists newsletter addresses.
// @Summary Get newsletter subscribers
// @Tags Newsletter
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param email query string false "Filter by email"
// @Param active query boolean false "Filter by subscription state"
// @Success 200 {object} response.Data[dto.GetSubscribersResponse]
// @Failure 500 {object} response.Error
// @Router /v1/newsletter [get]
// @Security BearerAuth
func (handler *Handler) GetSubscribers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSubscribers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: []any{}}

	if email := r.URL.Query().Get(model.FieldEmail); email != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorLike,
			Value:    email,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	subscribers, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get newsletter subscribers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, subscribers)
}
