package delivery

import (
	"net/http"
	"wbrent/infras/otel"
	"wbrent/internal/domains/distance/service"
	"wbrent/shared/constant"
	"wbrent/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	gate service.Gate
	otel otel.Otel
}

func New(gate service.Gate, otel otel.Otel) Handler {
	return Handler{
		gate: gate,
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/delivery/distance", handler.GetDistance)
}

// GetDistance tells whether an address is inside the delivery radius.
// @Summary Check delivery distance
// @Tags Delivery
// @Produce json
// @Param city query string true "City"
// @Param address query string false "Street address"
// @Success 200 {object} response.Data[model.Result]
// @Failure 400 {object} response.Error
// @Router /v1/delivery/distance [get]
func (handler *Handler) GetDistance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDistance")
	defer scope.End()

	city := r.URL.Query().Get(constant.RequestParamCity)
	address := r.URL.Query().Get(constant.RequestParamAddress)

	result, err := handler.gate.Check(ctx, city, address)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("city", city).Msg("failed to check delivery distance")

		response.WithError(w, err)

		return
	}

	scope.SetAttribute("distance.status", string(result.Status))

	response.WithJSON(w, http.StatusOK, result)
}
