package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexibleID is an identifier the upstream backend may hand out either as a
// JSON number or as a string. It is always held and compared as a string.
type FlexibleID string

func (id FlexibleID) String() string {
	return string(id)
}

// Equal compares ids by their string form.
func (id FlexibleID) Equal(other string) bool {
	return string(id) == other
}

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*id = FlexibleID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = FlexibleID(n.String())
	return nil
}
