package dto

import (
	"mime/multipart"
	"wbrent/internal/domains/product/model"
	"wbrent/shared"
	gModel "wbrent/shared/model"
	"wbrent/shared/timezone"

	"github.com/google/uuid"
)

type ProductResponse struct {
	ID               string `json:"id"`
	CategoryID       string `json:"categoryId"`
	Name             string `json:"name"`
	PricePerDay      int64  `json:"pricePerDay"`
	PriceNextDay     int64  `json:"priceNextDay"`
	PriceWeekend     int64  `json:"priceWeekend"`
	TransportPrice   int64  `json:"transportPrice"`
	WeekendPickupFee int64  `json:"weekendPickupFee"`
	Available        bool   `json:"available"`
}

func (r *ProductResponse) FromModel(model model.Product) {
	r.ID = model.ID
	r.CategoryID = model.CategoryID
	r.Name = model.Name
	r.PricePerDay = model.PricePerDay
	r.PriceNextDay = model.PriceNextDay
	r.PriceWeekend = model.PriceWeekend
	r.TransportPrice = model.TransportPrice
	r.WeekendPickupFee = model.WeekendPickupFee
	r.Available = model.Available
}

type GetProductsResponse struct {
	Products  []ProductResponse `json:"products"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetProductsResponse) FromModels(models []model.Product, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Products = make([]ProductResponse, len(models))
	for i, m := range models {
		r.Products[i].FromModel(m)
	}
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"`
	Alt       string                `json:"alt"   validate:"omitempty,max=200"`
	Position  int                   `json:"position" validate:"gte=0"`
}

func (r *UploadImageRequest) ToModel(productID, url, user string) model.Image {
	return model.Image{
		ID:        uuid.NewString(),
		ProductID: productID,
		URL:       url,
		Alt:       r.Alt,
		Position:  r.Position,
		Metadata:  gModel.NewMetadata(user, timezone.Now()),
	}
}

type ImageResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	URL       string `json:"url"`
	Alt       string `json:"alt"`
	Position  int    `json:"position"`
}

func (r *ImageResponse) FromModel(model model.Image) {
	r.ID = model.ID
	r.ProductID = model.ProductID
	r.URL = model.URL
	r.Alt = model.Alt
	r.Position = model.Position
}

type GetImagesResponse struct {
	Images []ImageResponse `json:"images"`
}

func (r *GetImagesResponse) FromModels(models []model.Image) {
	r.Images = make([]ImageResponse, len(models))
	for i, m := range models {
		r.Images[i].FromModel(m)
	}
}
