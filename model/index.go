package model

import (
	"encoding/json"
	"time"
)

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TokenClaim struct {
	UserId uint   `json:"id"`
	Email  string `json:"email"`
}

type ResponseCustom struct {
	Rows       any   `json:"rows"`
	Limit      *int  `json:"limit"`
	Page       *int  `json:"page"`
	TotalCount int64 `json:"totalCount"`
}

type Pagination struct {
	Limit  *int `query:"limit" json:"limit"`
	Page   *int `query:"page" json:"page"`
	Offset *int `query:"offset" json:"offset"`
}

// FlexNumber is a numeric edit field that accepts both JSON shapes: a number
// (3000) and a numeric string ("3000"). Empty means "leave unchanged", the
// same as the other sparse edit fields.
type FlexNumber string

func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexNumber(s)
		return nil
	}
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexNumber(n.String())
	return nil
}

func (f FlexNumber) String() string {
	return string(f)
}

// SortSpec is the query-level sort contract shared by every list endpoint.
// SortBy is checked against a per-entity allow-list; unknown fields fall back
// to the entity's default order.
type SortSpec struct {
	SortBy    string `query:"sortBy" json:"sortBy"`
	SortOrder string `query:"sortOrder" json:"sortOrder"`
}
