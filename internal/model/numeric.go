package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexInt decodes from a JSON integer or a string holding one ("5"). Values
// must fit the INTEGER columns they are stored in.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	raw := unquote(data)
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid integer %s", data)
	}

	*n = FlexInt(v)
	return nil
}

// FlexFloat decodes from a JSON number or a string holding one ("9.99").
type FlexFloat float64

func (n *FlexFloat) UnmarshalJSON(data []byte) error {
	raw := unquote(data)
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid number %s", data)
	}

	*n = FlexFloat(v)
	return nil
}

// unquote strips JSON string quotes; "null" yields "".
func unquote(data []byte) string {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return ""
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return string(data)
		}
		return s
	}

	return string(data)
}
