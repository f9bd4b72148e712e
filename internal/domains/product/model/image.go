package model

import "wbrent/shared/model"

const (
	ImageTableName  = "product_images"
	ImageEntityName = "product_image"

	FieldImageID        = "id"
	FieldImageProductID = "product_id"
	FieldImageURL       = "url"
	FieldImagePosition  = "position"
)

type Image struct {
	ID        string `db:"id"`
	ProductID string `db:"product_id"`
	URL       string `db:"url"`
	Alt       string `db:"alt"`
	Position  int    `db:"position"`
	model.Metadata
}
