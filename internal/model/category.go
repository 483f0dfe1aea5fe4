package model

// Category groups products by kind.
type Category struct {
	Base
	Name string `json:"name" db:"name"`
}

type CreateCategoryPayload struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

func (p *CreateCategoryPayload) Validate() error {
	return validate.Struct(p)
}

type GetCategoryPayload = IDParam

// ListCategoriesQuery has no filters; it exists so the list route goes
// through the same bind/validate pipeline as every other route.
type ListCategoriesQuery struct{}

func (q *ListCategoriesQuery) Validate() error {
	return nil
}
