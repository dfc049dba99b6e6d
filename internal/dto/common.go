package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/SscSPs/bizdesk/internal/notify"
)

// DateLayout is the calendar date format used by date-only fields.
const DateLayout = "2006-01-02"

// Date is a calendar date encoded as "YYYY-MM-DD".
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// DatePtr converts an optional Date into an optional time.
func DatePtr(d *Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// BulkIDsRequest lists the ids a bulk operation applies to.
type BulkIDsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,required"`
}

// BulkStatusRequest sets one status on many records.
type BulkStatusRequest struct {
	IDs    []string `json:"ids" binding:"required,min=1,dive,required"`
	Status string   `json:"status" binding:"required"`
}

// BulkResponse reports how many records a bulk operation touched.
type BulkResponse struct {
	Count         int64                 `json:"count"`
	Notifications []notify.Notification `json:"notifications"`
}

// MutationResponse is returned by create/update/delete endpoints.
type MutationResponse struct {
	Data          any                   `json:"data,omitempty"`
	Notifications []notify.Notification `json:"notifications"`
}
