package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"wbrent/shared/constant"
	"wbrent/shared/failure"

	val "github.com/go-playground/validator/v10"
)

const megabyte = 1 << 20

var (
	validate     = val.New(val.WithRequiredStructEnabled())
	clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

func init() {
	validate.RegisterTagNameFunc(jsonFieldName)

	tags := map[string]val.Func{
		"mimetypes":   validMimetype,
		"maxfilesize": validFileSize,
		"date":        validDate,
		"clock":       validClock,
	}

	for tag, fn := range tags {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// RegisterValidation lets domain packages add their own string tags, e.g.
// enum checks.
func RegisterValidation(tag string, fn func(value string) bool) {
	err := validate.RegisterValidation(tag, func(fl val.FieldLevel) bool {
		return fn(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// Validate decodes a JSON body into data and validates it. Both failures are
// reported as 400.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestWithDetails(message(err), details(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" || name == constant.Empty {
		return field.Name
	}

	return name
}

// upload describes either a multipart file or a base64 data URI.
func upload(fl val.FieldLevel) (contentType string, size int) {
	switch v := fl.Field().Interface().(type) {
	case multipart.FileHeader:
		return v.Header.Get(constant.RequestHeaderContentType), int(v.Size)
	case *multipart.FileHeader:
		return v.Header.Get(constant.RequestHeaderContentType), int(v.Size)
	case string:
		return dataURIContentType(v), len(v)
	default:
		return constant.Empty, 0
	}
}

// dataURIContentType returns the media type of a "data:<type>;base64,..." string.
func dataURIContentType(uri string) string {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return constant.Empty
	}

	header, _, ok := strings.Cut(rest, ",")
	if !ok {
		return constant.Empty
	}

	mediaType, ok := strings.CutSuffix(header, ";base64")
	if !ok {
		return constant.Empty
	}

	mediaType, _, _ = strings.Cut(mediaType, ";")

	return mediaType
}

func validMimetype(fl val.FieldLevel) bool {
	contentType, _ := upload(fl)

	return contentType != constant.Empty && slices.Contains(strings.Fields(fl.Param()), contentType)
}

// validFileSize takes the limit in megabytes, fractions allowed.
func validFileSize(fl val.FieldLevel) bool {
	limit, err := strconv.ParseFloat(fl.Param(), 64)
	if err != nil {
		return false
	}

	_, size := upload(fl)

	return float64(size) <= limit*megabyte
}

func validDate(fl val.FieldLevel) bool {
	value := fl.Field().String()
	if value == constant.Empty {
		return true
	}

	_, err := time.Parse(constant.DateOnlyFormat, value)

	return err == nil
}

func validClock(fl val.FieldLevel) bool {
	value := fl.Field().String()

	return value == constant.Empty || clockPattern.MatchString(value)
}
