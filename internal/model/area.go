package model

// Area is a physical storage zone where products are kept.
type Area struct {
	Base
	Name string `json:"name" db:"name"`
}

type CreateAreaPayload struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

func (p *CreateAreaPayload) Validate() error {
	return validate.Struct(p)
}

type GetAreaPayload = IDParam

type ListAreasQuery struct{}

func (q *ListAreasQuery) Validate() error {
	return nil
}
