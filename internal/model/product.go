package model

// Product is a stocked item. (Name, AreaID) is unique.
type Product struct {
	Base
	Name       string  `json:"name" db:"name"`
	Price      float64 `json:"price" db:"price"`
	Quantity   int     `json:"quantity" db:"quantity"`
	CategoryID int     `json:"category_id" db:"category_id"`
	AreaID     int     `json:"area_id" db:"area_id"`
}

// CreateProductPayload is the body of POST /products.
//
// Numeric fields accept JSON numbers and numeric strings, the same inputs the
// request validators accept.
type CreateProductPayload struct {
	Name       string    `json:"name" validate:"required,max=255"`
	Price      FlexFloat `json:"price" validate:"gte=0"`
	Quantity   FlexInt   `json:"quantity" validate:"gte=0"`
	CategoryID FlexInt   `json:"category_id" validate:"required"`
	AreaID     FlexInt   `json:"area_id" validate:"required"`
}

func (p *CreateProductPayload) Validate() error {
	return validate.Struct(p)
}

// ToProduct converts the payload into a Product ready to be inserted.
func (p *CreateProductPayload) ToProduct() Product {
	return Product{
		Name:       p.Name,
		Price:      float64(p.Price),
		Quantity:   int(p.Quantity),
		CategoryID: int(p.CategoryID),
		AreaID:     int(p.AreaID),
	}
}

// UpdateProductPayload is the body of PUT /products/:id.
type UpdateProductPayload struct {
	ID int `param:"id" json:"-" validate:"required,min=1,max=2147483647"`
	CreateProductPayload
}

func (p *UpdateProductPayload) Validate() error {
	return validate.Struct(p)
}

// ToProduct converts the payload into a Product carrying the path id.
func (p *UpdateProductPayload) ToProduct() Product {
	product := p.CreateProductPayload.ToProduct()
	product.ID = p.ID
	return product
}

type GetProductPayload = IDParam

type DeleteProductPayload = IDParam

// ListProductsQuery filters and paginates GET /products.
// Zero values mean "no filter".
type ListProductsQuery struct {
	CategoryID int    `query:"category_id" validate:"omitempty,min=1,max=2147483647"`
	AreaID     int    `query:"area_id" validate:"omitempty,min=1,max=2147483647"`
	Search     string `query:"search" validate:"omitempty,max=255"`
	Page       int    `query:"page" validate:"omitempty,min=1"`
	Limit      int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

func (q *ListProductsQuery) Validate() error {
	return validate.Struct(q)
}

// Offset returns the row offset for the requested page.
func (q *ListProductsQuery) Offset() int {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}
