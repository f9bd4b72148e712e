package handler

import (
	"net/http"
	"sync"
	"wbrent/config"
	"wbrent/di"
	"wbrent/shared/logger"
	transport "wbrent/transport/http"
)

var (
	server *transport.HTTP
	once   sync.Once
)

// Handler is the serverless entrypoint. Warm invocations reuse the wired server.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.Configure(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
