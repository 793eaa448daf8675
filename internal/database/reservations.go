package database

import (
	"context"
	"database/sql"

	"github.com/dcminogue/LightBnB/internal/models"
)

const reservationsForGuestQuery = `
        SELECT
            reservations.id,
            reservations.guest_id,
            reservations.property_id,
            reservations.start_date,
            reservations.end_date,
            properties.title,
            COALESCE(properties.thumbnail_photo_url, '') AS thumbnail_photo_url,
            properties.cost_per_night,
            properties.number_of_bedrooms,
            properties.number_of_bathrooms,
            properties.parking_spaces,
            AVG(property_reviews.rating) AS average_rating
        FROM reservations
        JOIN properties ON reservations.property_id = properties.id
        LEFT JOIN property_reviews ON properties.id = property_reviews.property_id
        WHERE reservations.guest_id = ?
        GROUP BY properties.id, reservations.id
        ORDER BY reservations.start_date, reservations.id
        LIMIT ?`

// GetReservationsForGuest returns the guest's reservations by ascending start
// date. A guest without reservations gets an empty slice and no error.
func (d *Database) GetReservationsForGuest(ctx context.Context, guestID int64, limit int) ([]models.Reservation, error) {
	rows, err := d.db.WithContext(ctx).Raw(reservationsForGuestQuery, guestID, limitOrDefault(limit)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]models.Reservation, 0)
	for rows.Next() {
		var r models.Reservation
		var averageRating sql.NullFloat64

		err := rows.Scan(
			&r.ID,
			&r.GuestID,
			&r.PropertyID,
			&r.StartDate,
			&r.EndDate,
			&r.Title,
			&r.ThumbnailPhotoURL,
			&r.CostPerNight,
			&r.NumberOfBedrooms,
			&r.NumberOfBathrooms,
			&r.ParkingSpaces,
			&averageRating,
		)
		if err != nil {
			return nil, err
		}

		if averageRating.Valid {
			rating := averageRating.Float64
			r.AverageRating = &rating
		}

		reservations = append(reservations, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reservations, nil
}
