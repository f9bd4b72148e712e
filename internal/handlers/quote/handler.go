package quote

import (
	"net/http"
	"wbrent/infras/otel"
	"wbrent/internal/domains/quote/model/dto"
	"wbrent/internal/domains/quote/service"
	"wbrent/shared/constant"
	"wbrent/shared/validator"
	"wbrent/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Quote
	otel    otel.Otel
}

func New(service service.Quote, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/quote", handler.CreateQuote)
}

// CreateQuote prices a rental without booking it.
// @Summary Preview a rental price
// @Description Runs the same day count and tariff the reservation endpoint uses.
// @Tags Quote
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Quote Request"
// @Success 200 {object} response.Data[dto.QuoteResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/quote [post]
func (handler *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateQuote")
	defer scope.End()

	req := dto.QuoteRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	quote, err := handler.service.Calculate(ctx, req.ToInput())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("product_id", req.ProductID).Msg("failed to calculate quote")

		response.WithError(w, err)

		return
	}

	res := dto.QuoteResponse{}
	res.FromModel(quote)

	response.WithJSON(w, http.StatusOK, res)
}
