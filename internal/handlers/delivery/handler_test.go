package delivery_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "wbrent/infras/otel/mocks"
	"wbrent/internal/domains/distance/mocks"
	"wbrent/internal/domains/distance/model"
	"wbrent/internal/handlers/delivery"
	"wbrent/shared/failure"
)

func setup(t *testing.T) (*chi.Mux, *mocks.MockGate) {
	t.Helper()

	gate := mocks.NewMockGate(gomock.NewController(t))
	handler := delivery.New(gate, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router, gate
}

func get(router http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestHandler_GetDistance(t *testing.T) {
	t.Run("inside the radius", func(t *testing.T) {
		router, gate := setup(t)

		km := 2.58
		gate.EXPECT().Check(gomock.Any(), "Rzeszów", "ul. Lwowska 5").
			Return(model.Result{Status: model.StatusOK, DistanceKm: &km, MaxKm: 30}, nil)

		rec := get(router, "/v1/delivery/distance?city=Rzesz%C3%B3w&address=ul.%20Lwowska%205")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"status":"ok","distanceKm":2.58,"maxKm":30}}`, rec.Body.String())
	})

	t.Run("unresolved address keeps a null distance", func(t *testing.T) {
		router, gate := setup(t)

		gate.EXPECT().Check(gomock.Any(), "Nigdzie", "").Return(model.Result{Status: model.StatusUnresolved, MaxKm: 30}, nil)

		rec := get(router, "/v1/delivery/distance?city=Nigdzie")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"status":"unresolved","distanceKm":null,"maxKm":30}}`, rec.Body.String())
	})

	t.Run("missing city", func(t *testing.T) {
		router, gate := setup(t)

		gate.EXPECT().Check(gomock.Any(), "", "").Return(model.Result{}, failure.BadRequestFromString("city is required for delivery"))

		rec := get(router, "/v1/delivery/distance")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
