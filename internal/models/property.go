package models

// Property is a rental listing. CostPerNight is stored in cents.
type Property struct {
	ID                int64    `json:"id" gorm:"column:id;primaryKey"`
	OwnerID           int64    `json:"owner_id" gorm:"column:owner_id"`
	Title             string   `json:"title" gorm:"column:title"`
	Description       string   `json:"description" gorm:"column:description"`
	ThumbnailPhotoURL string   `json:"thumbnail_photo_url" gorm:"column:thumbnail_photo_url"`
	CoverPhotoURL     string   `json:"cover_photo_url" gorm:"column:cover_photo_url"`
	CostPerNight      int64    `json:"cost_per_night" gorm:"column:cost_per_night"`
	Street            string   `json:"street" gorm:"column:street"`
	City              string   `json:"city" gorm:"column:city"`
	Province          string   `json:"province" gorm:"column:province"`
	PostCode          string   `json:"post_code" gorm:"column:post_code"`
	Country           string   `json:"country" gorm:"column:country"`
	ParkingSpaces     int      `json:"parking_spaces" gorm:"column:parking_spaces"`
	NumberOfBathrooms int      `json:"number_of_bathrooms" gorm:"column:number_of_bathrooms"`
	NumberOfBedrooms  int      `json:"number_of_bedrooms" gorm:"column:number_of_bedrooms"`
	AverageRating     *float64 `json:"average_rating" gorm:"column:average_rating;->"`
}

func (Property) TableName() string {
	return "properties"
}

// PropertyReview is only used to seed ratings; reads aggregate it.
type PropertyReview struct {
	ID            int64  `json:"id" gorm:"column:id;primaryKey"`
	GuestID       int64  `json:"guest_id" gorm:"column:guest_id"`
	PropertyID    int64  `json:"property_id" gorm:"column:property_id"`
	ReservationID *int64 `json:"reservation_id" gorm:"column:reservation_id"`
	Rating        int    `json:"rating" gorm:"column:rating"`
	Message       string `json:"message" gorm:"column:message"`
}

func (PropertyReview) TableName() string {
	return "property_reviews"
}
