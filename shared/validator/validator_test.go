package validator_test

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"wbrent/shared/failure"
	"wbrent/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customer struct {
	Name  string `json:"firstName" validate:"required,max=20"`
	Email string `json:"email"     validate:"required,email"`
	Days  int    `json:"days"      validate:"gte=1,lte=30"`
	Plan  string `json:"plan"      validate:"oneof=day weekend"`
}

func valid() customer {
	return customer{Name: "Jan", Email: "jan@example.com", Days: 2, Plan: "day"}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *customer)
		wantErr string
	}{
		{name: "valid", mutate: func(*customer) {}},
		{name: "missing name", mutate: func(c *customer) { c.Name = "" }, wantErr: "firstName is required"},
		{name: "bad email", mutate: func(c *customer) { c.Email = "jan" }, wantErr: "email must be a valid email address"},
		{name: "too many days", mutate: func(c *customer) { c.Days = 31 }, wantErr: "days must be less than or equal to 30"},
		{name: "unknown plan", mutate: func(c *customer) { c.Plan = "month" }, wantErr: "plan must be one of day weekend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)

			err := validator.ValidateStruct(&c)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, 400, failure.GetCode(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidateStruct_DetailsListEveryField(t *testing.T) {
	err := validator.ValidateStruct(&customer{Email: "x", Plan: "x"})

	require.Error(t, err)
	assert.Equal(t, []string{
		"firstName is required",
		"email must be a valid email address",
		"days must be greater than or equal to 1",
		"plan must be one of day weekend",
	}, failure.GetDetails(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"firstName":"Jan","email":"jan@example.com","days":2,"plan":"weekend"}`},
		{name: "fails validation", body: `{"firstName":"Jan","email":"nope","days":2,"plan":"day"}`, wantErr: true},
		{name: "malformed", body: `{"firstName":`, wantErr: true},
		{name: "wrong type", body: `{"days":"two"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c customer
			err := validator.Validate(strings.NewReader(tt.body), &c)

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	png := "data:image/png;base64,iVBORw0KGgo="

	tests := []struct {
		name    string
		field   any
		tag     string
		wantErr bool
	}{
		{name: "required", field: "", tag: "required", wantErr: true},
		{name: "email", field: "biuro@wb-rent.pl", tag: "email"},
		{name: "range", field: 150, tag: "gte=0,lte=100", wantErr: true},
		{name: "date", field: "2026-01-21", tag: "date"},
		{name: "impossible date", field: "2026-02-30", tag: "date", wantErr: true},
		{name: "foreign date layout", field: "21.01.2026", tag: "date", wantErr: true},
		{name: "clock", field: "09:00", tag: "clock"},
		{name: "clock out of range", field: "24:00", tag: "clock", wantErr: true},
		{name: "clock without leading zero", field: "9:00", tag: "clock", wantErr: true},
		{name: "allowed data uri type", field: png, tag: "mimetypes=image/png image/webp"},
		{name: "data uri with charset", field: "data:image/svg+xml;charset=utf-8;base64,PHN2Zz4=", tag: "mimetypes=image/svg+xml"},
		{name: "disallowed data uri type", field: png, tag: "mimetypes=image/jpeg", wantErr: true},
		{name: "not a data uri", field: "image/png;base64,iVBORw0KGgo=", tag: "mimetypes=image/png", wantErr: true},
		{name: "data uri not base64", field: "data:image/png,raw", tag: "mimetypes=image/png", wantErr: true},
		{name: "within size", field: png, tag: "maxfilesize=1"},
		{name: "over size", field: "data:image/png;base64," + strings.Repeat("A", 2048), tag: "maxfilesize=0.001", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

type photo struct {
	Image *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/webp,maxfilesize=1"`
}

func TestMultipartUpload(t *testing.T) {
	file := func(contentType string, size int64) *multipart.FileHeader {
		return &multipart.FileHeader{
			Filename: "koparka.png",
			Header:   textproto.MIMEHeader{"Content-Type": {contentType}},
			Size:     size,
		}
	}

	assert.NoError(t, validator.ValidateStruct(&photo{Image: file("image/png", 512<<10)}))

	err := validator.ValidateStruct(&photo{Image: file("image/gif", 512<<10)})
	assert.ErrorContains(t, err, "image must be one of image/png image/webp")

	err = validator.ValidateStruct(&photo{Image: file("image/webp", 2<<20)})
	assert.ErrorContains(t, err, "image must not exceed 1 MB")

	assert.Error(t, validator.ValidateStruct(&photo{}))
}
