package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Reservation is a stay joined with the booked property and its average rating.
type Reservation struct {
	ID                int64    `json:"id" gorm:"column:id;primaryKey"`
	GuestID           int64    `json:"guest_id" gorm:"column:guest_id"`
	PropertyID        int64    `json:"property_id" gorm:"column:property_id"`
	StartDate         Date     `json:"start_date" gorm:"column:start_date"`
	EndDate           Date     `json:"end_date" gorm:"column:end_date"`
	Title             string   `json:"title" gorm:"-"`
	ThumbnailPhotoURL string   `json:"thumbnail_photo_url" gorm:"-"`
	CostPerNight      int64    `json:"cost_per_night" gorm:"-"`
	NumberOfBedrooms  int      `json:"number_of_bedrooms" gorm:"-"`
	NumberOfBathrooms int      `json:"number_of_bathrooms" gorm:"-"`
	ParkingSpaces     int      `json:"parking_spaces" gorm:"-"`
	AverageRating     *float64 `json:"average_rating" gorm:"-"`
}

func (Reservation) TableName() string {
	return "reservations"
}

// Date is a calendar day. The zero Date stores and encodes as NULL.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		d.Time = time.Time{}
		return nil
	case time.Time:
		d.Time = v
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

func (d *Date) parse(s string) error {
	for _, layout := range []string{dateLayout, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date: %q", s)
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Format(dateLayout), nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return d.parse(s)
}
