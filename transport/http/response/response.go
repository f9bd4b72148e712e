package response

import (
	"bytes"
	"encoding/json"
	"net/http"
	"wbrent/shared/constant"
	"wbrent/shared/failure"
	"wbrent/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error   *string `json:"error,omitempty"`
	Details any     `json:"details,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

// WithJSON wraps payload in the {"data": ...} envelope used by the admin API.
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: &payload})
}

// WithRaw writes payload as-is. The public reservation endpoints answer with
// flat objects.
func WithRaw(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, payload)
}

// WithError maps err to its failure code. Anything that is not a failure is
// logged with its stack and answered with a generic 500 body.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	if code >= http.StatusInternalServerError {
		logger.ErrorWithStack(err)

		message := constant.ResponseErrorInternal
		write(writer, code, Error{Error: &message})

		return
	}

	message := err.Error()
	write(writer, code, Error{Error: &message, Details: failure.GetDetails(err)})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, payload any) {
	var body bytes.Buffer

	encoder := json.NewEncoder(&body)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(payload); err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err := writer.Write(body.Bytes()); err != nil {
		logger.ErrorWithStack(err)
	}
}
