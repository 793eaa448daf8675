package database_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcminogue/LightBnB/config"
	"github.com/dcminogue/LightBnB/internal/database"
	"github.com/dcminogue/LightBnB/internal/database/dbtest"
	"github.com/dcminogue/LightBnB/internal/models"
)

func newProperty(ownerID int64, title, city string, costPerNight int64) *models.Property {
	return &models.Property{
		OwnerID:           ownerID,
		Title:             title,
		Description:       "description",
		ThumbnailPhotoURL: "https://images.example.com/thumb.jpg",
		CoverPhotoURL:     "https://images.example.com/cover.jpg",
		CostPerNight:      costPerNight,
		Street:            "536 Namsub Highway",
		City:              city,
		Province:          "Quebec",
		PostCode:          "28142",
		Country:           "Canada",
		ParkingSpaces:     1,
		NumberOfBathrooms: 2,
		NumberOfBedrooms:  3,
	}
}

func review(guestID, propertyID int64, rating int) *models.PropertyReview {
	return &models.PropertyReview{GuestID: guestID, PropertyID: propertyID, Rating: rating}
}

func TestNewDatabase_UnsupportedDriver(t *testing.T) {
	_, err := database.NewDatabase(config.Database{Driver: "oracle"}, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestGetUserByEmail_CaseInsensitive(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()

	created, err := db.AddUser(ctx, models.User{Name: "Devin Sanders", Email: "A@B.com", Password: "hash"})
	require.NoError(t, err)

	lower, err := db.GetUserByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	upper, err := db.GetUserByEmail(ctx, "A@B.COM")
	require.NoError(t, err)

	require.NotNil(t, lower)
	require.NotNil(t, upper)
	assert.Equal(t, created, lower)
	assert.Equal(t, lower, upper)
}

func TestGetUserByEmail_Miss(t *testing.T) {
	db := dbtest.New(t)

	user, err := db.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestGetUserByID(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	seeded := dbtest.User(t, db, "eva@example.com")

	user, err := db.GetUserByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "eva@example.com", user.Email)

	missing, err := db.GetUserByID(ctx, seeded.ID+100)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAddUser_RoundTrip(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	input := models.User{Name: "Kira Vasquez", Email: "kira@example.com", Password: "$2a$10$opaque"}

	created, err := db.AddUser(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotZero(t, created.ID)
	assert.Equal(t, input.Name, created.Name)
	assert.Equal(t, input.Email, created.Email)
	assert.Equal(t, input.Password, created.Password)

	stored, err := db.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, stored)
}

func TestAddUser_DuplicateEmailPropagatesError(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()

	_, err := db.AddUser(ctx, models.User{Name: "First", Email: "dup@example.com", Password: "x"})
	require.NoError(t, err)

	created, err := db.AddUser(ctx, models.User{Name: "Second", Email: "DUP@example.com", Password: "y"})
	assert.Error(t, err)
	assert.Nil(t, created)
}

func TestSearchProperties_NoFilters(t *testing.T) {
	db := dbtest.New(t)
	owner := dbtest.User(t, db, "owner@example.com")

	for i := 12; i >= 1; i-- {
		dbtest.Seed(t, db, newProperty(owner.ID, fmt.Sprintf("Listing %d", i), "Vancouver", int64(i*1000)))
	}

	properties, err := db.SearchProperties(context.Background(), database.PropertySearch{}, 10)
	require.NoError(t, err)
	require.Len(t, properties, 10)

	for i := 1; i < len(properties); i++ {
		assert.LessOrEqual(t, properties[i-1].CostPerNight, properties[i].CostPerNight)
	}
	assert.Equal(t, int64(1000), properties[0].CostPerNight)
}

func TestSearchProperties_DefaultLimit(t *testing.T) {
	db := dbtest.New(t)
	owner := dbtest.User(t, db, "owner@example.com")
	for i := 0; i < database.DefaultLimit+3; i++ {
		dbtest.Seed(t, db, newProperty(owner.ID, "Listing", "Vancouver", int64(100+i)))
	}

	properties, err := db.SearchProperties(context.Background(), database.PropertySearch{}, 0)
	require.NoError(t, err)
	assert.Len(t, properties, database.DefaultLimit)
}

func TestSearchProperties_PriceRange(t *testing.T) {
	db := dbtest.New(t)
	owner := dbtest.User(t, db, "owner@example.com")
	for _, cost := range []int64{4999, 5000, 9000, 15000, 15001} {
		dbtest.Seed(t, db, newProperty(owner.ID, "Listing", "Toronto", cost))
	}

	minimum := decimal.NewFromInt(50)
	maximum := decimal.NewFromInt(150)
	properties, err := db.SearchProperties(context.Background(), database.PropertySearch{
		MinimumPricePerNight: &minimum,
		MaximumPricePerNight: &maximum,
	}, 10)
	require.NoError(t, err)

	require.Len(t, properties, 3)
	for _, p := range properties {
		assert.GreaterOrEqual(t, p.CostPerNight, int64(5000))
		assert.LessOrEqual(t, p.CostPerNight, int64(15000))
	}
}

func TestSearchProperties_SubCentBoundsExcludeOutsideCosts(t *testing.T) {
	db := dbtest.New(t)
	owner := dbtest.User(t, db, "owner@example.com")
	for _, cost := range []int64{4999, 5000, 15000, 15001} {
		dbtest.Seed(t, db, newProperty(owner.ID, "Listing", "Toronto", cost))
	}

	minimum := decimal.RequireFromString("49.994")
	maximum := decimal.RequireFromString("150.005")
	properties, err := db.SearchProperties(context.Background(), database.PropertySearch{
		MinimumPricePerNight: &minimum,
		MaximumPricePerNight: &maximum,
	}, 10)
	require.NoError(t, err)

	require.Len(t, properties, 2)
	assert.Equal(t, int64(5000), properties[0].CostPerNight)
	assert.Equal(t, int64(15000), properties[1].CostPerNight)
}

func TestSearchProperties_MinimumRating(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	owner := dbtest.User(t, db, "owner@example.com")
	guest := dbtest.User(t, db, "guest@example.com")

	good := newProperty(owner.ID, "Good", "Halifax", 10000)
	poor := newProperty(owner.ID, "Poor", "Halifax", 9000)
	unrated := newProperty(owner.ID, "Unrated", "Halifax", 8000)
	dbtest.Seed(t, db, good, poor, unrated)
	dbtest.Seed(t, db,
		review(guest.ID, good.ID, 5), review(guest.ID, good.ID, 4),
		review(guest.ID, poor.ID, 2), review(guest.ID, poor.ID, 3),
	)

	rating := 4.0
	properties, err := db.SearchProperties(ctx, database.PropertySearch{MinimumRating: &rating}, 10)
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "Good", properties[0].Title)
	require.NotNil(t, properties[0].AverageRating)
	assert.InDelta(t, 4.5, *properties[0].AverageRating, 0.0001)

	all, err := db.SearchProperties(ctx, database.PropertySearch{}, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Unrated", all[0].Title)
	assert.Nil(t, all[0].AverageRating)
}

func TestSearchProperties_CityAndOwner(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	alice := dbtest.User(t, db, "alice@example.com")
	bob := dbtest.User(t, db, "bob@example.com")

	dbtest.Seed(t, db,
		newProperty(alice.ID, "North Van", "North Vancouver", 100),
		newProperty(alice.ID, "Calgary Loft", "Calgary", 200),
		newProperty(bob.ID, "Van Condo", "Vancouver", 300),
	)

	city := "Vancouver"
	byCity, err := db.SearchProperties(ctx, database.PropertySearch{City: &city}, 10)
	require.NoError(t, err)
	require.Len(t, byCity, 2)
	assert.Equal(t, "North Van", byCity[0].Title)
	assert.Equal(t, "Van Condo", byCity[1].Title)

	byCityAndOwner, err := db.SearchProperties(ctx, database.PropertySearch{City: &city, OwnerID: &bob.ID}, 10)
	require.NoError(t, err)
	require.Len(t, byCityAndOwner, 1)
	assert.Equal(t, "Van Condo", byCityAndOwner[0].Title)
}

func TestSearchProperties_CityWildcardsAreLiteral(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	owner := dbtest.User(t, db, "owner@example.com")

	dbtest.Seed(t, db,
		newProperty(owner.ID, "Plain", "Vancouver", 100),
		newProperty(owner.ID, "Odd", "St_Jean 100%", 200),
	)

	for _, city := range []string{"%", "_"} {
		properties, err := db.SearchProperties(ctx, database.PropertySearch{City: &city}, 10)
		require.NoError(t, err)
		require.Len(t, properties, 1, city)
		assert.Equal(t, "Odd", properties[0].Title)
	}

	city := "St_J"
	properties, err := db.SearchProperties(ctx, database.PropertySearch{City: &city}, 10)
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "Odd", properties[0].Title)
}

func TestSearchProperties_NoMatchesIsEmpty(t *testing.T) {
	db := dbtest.New(t)

	city := "Atlantis"
	properties, err := db.SearchProperties(context.Background(), database.PropertySearch{City: &city}, 10)
	require.NoError(t, err)
	assert.NotNil(t, properties)
	assert.Empty(t, properties)
}

func TestAddProperty_RoundTrip(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	owner := dbtest.User(t, db, "owner@example.com")
	input := *newProperty(owner.ID, "Speed Lamp", "Sotboske", 93061)

	created, err := db.AddProperty(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotZero(t, created.ID)

	expected := input
	expected.ID = created.ID
	assert.Equal(t, &expected, created)

	found, err := db.SearchProperties(ctx, database.PropertySearch{OwnerID: &owner.ID}, 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, created.ID, found[0].ID)
	assert.Equal(t, input.CostPerNight, found[0].CostPerNight)
}

func TestGetReservationsForGuest(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	owner := dbtest.User(t, db, "owner@example.com")
	guest := dbtest.User(t, db, "guest@example.com")
	other := dbtest.User(t, db, "other@example.com")

	cabin := newProperty(owner.ID, "Cabin", "Banff", 20000)
	loft := newProperty(owner.ID, "Loft", "Montreal", 12000)
	dbtest.Seed(t, db, cabin, loft)
	dbtest.Seed(t, db, review(other.ID, cabin.ID, 3), review(other.ID, cabin.ID, 5))

	dbtest.Seed(t, db,
		&models.Reservation{GuestID: guest.ID, PropertyID: cabin.ID,
			StartDate: models.NewDate(2024, time.March, 10), EndDate: models.NewDate(2024, time.March, 14)},
		&models.Reservation{GuestID: guest.ID, PropertyID: loft.ID,
			StartDate: models.NewDate(2023, time.July, 1)},
		&models.Reservation{GuestID: other.ID, PropertyID: loft.ID,
			StartDate: models.NewDate(2022, time.January, 5)},
	)

	reservations, err := db.GetReservationsForGuest(ctx, guest.ID, 10)
	require.NoError(t, err)
	require.Len(t, reservations, 2)

	assert.Equal(t, "Loft", reservations[0].Title)
	assert.Equal(t, "2023-07-01", reservations[0].StartDate.Format("2006-01-02"))
	assert.True(t, reservations[0].EndDate.IsZero())
	assert.Nil(t, reservations[0].AverageRating)

	assert.Equal(t, "Cabin", reservations[1].Title)
	assert.Equal(t, int64(20000), reservations[1].CostPerNight)
	assert.Equal(t, "2024-03-14", reservations[1].EndDate.Format("2006-01-02"))
	require.NotNil(t, reservations[1].AverageRating)
	assert.InDelta(t, 4.0, *reservations[1].AverageRating, 0.0001)

	limited, err := db.GetReservationsForGuest(ctx, guest.ID, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "Loft", limited[0].Title)
}

func TestGetReservationsForGuest_NoneIsEmpty(t *testing.T) {
	db := dbtest.New(t)
	guest := dbtest.User(t, db, "guest@example.com")

	reservations, err := db.GetReservationsForGuest(context.Background(), guest.ID, 10)
	assert.NoError(t, err)
	assert.NotNil(t, reservations)
	assert.Empty(t, reservations)
}

func TestClosedDatabasePropagatesErrors(t *testing.T) {
	db := dbtest.New(t)
	require.NoError(t, db.Close())
	ctx := context.Background()

	_, err := db.GetUserByEmail(ctx, "a@b.com")
	assert.Error(t, err)

	_, err = db.SearchProperties(ctx, database.PropertySearch{}, 10)
	assert.Error(t, err)

	_, err = db.GetReservationsForGuest(ctx, 1, 10)
	assert.Error(t, err)
}

func TestRunScript_ReportsFailingStatement(t *testing.T) {
	db := dbtest.New(t)

	err := db.RunScript(context.Background(), `
		CREATE TABLE amenities (id INTEGER PRIMARY KEY);
		CREATE TABLE amenities (id INTEGER PRIMARY KEY);
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "statement 2")
}

func TestNewFromGorm_SharesHandle(t *testing.T) {
	db := dbtest.New(t)
	dbtest.User(t, db, "shared@example.com")

	wrapped := database.NewFromGorm(db.GetDB(), nil)
	user, err := wrapped.GetUserByEmail(context.Background(), "SHARED@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "shared@example.com", user.Email)
}
