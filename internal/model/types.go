package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Variant is a derived rendition of a photo (a WebP thumbnail at a fixed
// width), stored alongside the original.
type Variant struct {
	ObjectKey string `json:"object_key"`
	SizeBytes int64  `json:"size_bytes"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

func (v Variant) Value() (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal Variant: %w", err)
	}
	return b, nil
}
func (v *Variant) Scan(src interface{}) error {
	if src == nil {
		*v = Variant{}
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("Variant.Scan: expected []byte, got %T", src)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal Variant: %w", err)
	}
	return nil
}

type Variants []Variant

func (v Variants) Value() (driver.Value, error) {
	return json.Marshal(v)
}
func (v *Variants) Scan(src interface{}) error {
	if src == nil {
		*v = nil
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("Variants.Scan: expected []byte, got %T", src)
	}
	return json.Unmarshal(data, v)
}
