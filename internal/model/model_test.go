package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductPayloadDecodesNumericStrings(t *testing.T) {
	body := `{"name":"Widget","price":"9.5","quantity":"3","category_id":2,"area_id":"7"}`

	var p CreateProductPayload
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	require.NoError(t, p.Validate())

	assert.Equal(t, Product{
		Name:       "Widget",
		Price:      9.5,
		Quantity:   3,
		CategoryID: 2,
		AreaID:     7,
	}, p.ToProduct())
}

func TestFlexIntRejectsFractions(t *testing.T) {
	var n FlexInt
	assert.Error(t, json.Unmarshal([]byte(`"1.5"`), &n))
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &n))

	require.NoError(t, json.Unmarshal([]byte(`null`), &n))
	assert.Equal(t, FlexInt(0), n)
}

func TestFlexIntRejectsValuesBeyondInt4(t *testing.T) {
	var n FlexInt
	assert.Error(t, json.Unmarshal([]byte(`99999999999`), &n))
	assert.Error(t, json.Unmarshal([]byte(`"3000000000"`), &n))

	require.NoError(t, json.Unmarshal([]byte(`2147483647`), &n))
	assert.Equal(t, FlexInt(2147483647), n)
}

func TestIDParamRejectsValuesBeyondInt4(t *testing.T) {
	assert.Error(t, (&IDParam{ID: 3000000000}).Validate())
	assert.NoError(t, (&IDParam{ID: 2147483647}).Validate())
	assert.Error(t, (&ListProductsQuery{CategoryID: 3000000000}).Validate())
}

func TestCreateProductPayloadValidate(t *testing.T) {
	t.Run("negative quantity", func(t *testing.T) {
		p := CreateProductPayload{Name: "Widget", Quantity: -1, CategoryID: 1, AreaID: 1}
		assert.Error(t, p.Validate())
	})

	t.Run("missing area", func(t *testing.T) {
		p := CreateProductPayload{Name: "Widget", CategoryID: 1}
		assert.Error(t, p.Validate())
	})

	t.Run("zero price and quantity are allowed", func(t *testing.T) {
		p := CreateProductPayload{Name: "Widget", CategoryID: 1, AreaID: 1}
		assert.NoError(t, p.Validate())
	})
}

func TestUpdateProductPayloadToProduct(t *testing.T) {
	p := UpdateProductPayload{
		ID: 4,
		CreateProductPayload: CreateProductPayload{
			Name: "Bolt", Price: 1.25, Quantity: 10, CategoryID: 1, AreaID: 2,
		},
	}

	require.NoError(t, p.Validate())
	assert.Equal(t, 4, p.ToProduct().ID)
}

func TestListProductsQueryOffset(t *testing.T) {
	assert.Equal(t, 0, (&ListProductsQuery{}).Offset())
	assert.Equal(t, 0, (&ListProductsQuery{Page: 1, Limit: 20}).Offset())
	assert.Equal(t, 40, (&ListProductsQuery{Page: 3, Limit: 20}).Offset())
}

func TestNewPaginatedResponse(t *testing.T) {
	resp := NewPaginatedResponse[Product](nil, 2, 10, 21)

	assert.Equal(t, 3, resp.TotalPages)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
}
