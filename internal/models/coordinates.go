package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Coordinates is a picked map position. The column is NULL/empty when no
// location was picked; that is not the same as 0/0.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// EncodeCoordinates serializes a picked position, or returns nil for "none".
func EncodeCoordinates(c *Coordinates) datatypes.JSON {
	if c == nil {
		return nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

// DecodeCoordinates parses a stored coordinates column. The second return
// is false when the column is empty or does not hold a valid {lat,lng} pair.
func DecodeCoordinates(raw datatypes.JSON) (*Coordinates, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var c Coordinates
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, false
	}
	if !c.Valid() {
		return nil, false
	}
	return &c, true
}

// EncodeStringList serializes an image/url list, or returns nil when empty.
func EncodeStringList(items []string) datatypes.JSON {
	if len(items) == 0 {
		return nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

// DecodeStringList parses a stored list column; an unreadable or empty
// column decodes to an empty slice.
func DecodeStringList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}
	return items
}
