package database

import (
	"context"
	"database/sql"

	"github.com/dcminogue/LightBnB/internal/models"
)

// SearchProperties returns up to limit properties matching every filter set in
// search, cheapest first.
func (d *Database) SearchProperties(ctx context.Context, search PropertySearch, limit int) ([]models.Property, error) {
	query, args := search.Compile(limitOrDefault(limit))

	rows, err := d.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	properties := make([]models.Property, 0)
	for rows.Next() {
		var p models.Property
		var averageRating sql.NullFloat64

		err := rows.Scan(
			&p.ID,
			&p.OwnerID,
			&p.Title,
			&p.Description,
			&p.ThumbnailPhotoURL,
			&p.CoverPhotoURL,
			&p.CostPerNight,
			&p.Street,
			&p.City,
			&p.Province,
			&p.PostCode,
			&p.Country,
			&p.ParkingSpaces,
			&p.NumberOfBathrooms,
			&p.NumberOfBedrooms,
			&averageRating,
		)
		if err != nil {
			return nil, err
		}

		if averageRating.Valid {
			rating := averageRating.Float64
			p.AverageRating = &rating
		}

		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return properties, nil
}

// AddProperty inserts a property and returns the stored row with its assigned id.
func (d *Database) AddProperty(ctx context.Context, property models.Property) (*models.Property, error) {
	property.ID = 0
	property.AverageRating = nil

	result := d.db.WithContext(ctx).Create(&property)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNoRowsReturned
	}
	return &property, nil
}
