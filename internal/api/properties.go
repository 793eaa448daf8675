package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/dcminogue/LightBnB/internal/database"
	"github.com/dcminogue/LightBnB/internal/models"
)

// PropertyRequest is the body of POST /api/properties. CostPerNight is in cents.
type PropertyRequest struct {
	Title             string `json:"title" binding:"required"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url" binding:"required"`
	CoverPhotoURL     string `json:"cover_photo_url" binding:"required"`
	CostPerNight      int64  `json:"cost_per_night" binding:"gte=0"`
	Street            string `json:"street" binding:"required"`
	City              string `json:"city" binding:"required"`
	Province          string `json:"province" binding:"required"`
	PostCode          string `json:"post_code" binding:"required"`
	Country           string `json:"country" binding:"required"`
	ParkingSpaces     int    `json:"parking_spaces" binding:"gte=0"`
	NumberOfBathrooms int    `json:"number_of_bathrooms" binding:"gte=0"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms" binding:"gte=0"`
}

func (h *Handler) SearchProperties(c *gin.Context) {
	search, err := parsePropertySearch(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	properties, err := h.store.SearchProperties(c.Request.Context(), search, parseLimit(c))
	if err != nil {
		h.logger.WithError(err).Error("Failed to search properties")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get properties"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"properties": properties})
}

func (h *Handler) AddProperty(c *gin.Context) {
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	property, err := h.store.AddProperty(c.Request.Context(), models.Property{
		OwnerID:           sessionUserID(c),
		Title:             req.Title,
		Description:       req.Description,
		ThumbnailPhotoURL: req.ThumbnailPhotoURL,
		CoverPhotoURL:     req.CoverPhotoURL,
		CostPerNight:      req.CostPerNight,
		Street:            req.Street,
		City:              req.City,
		Province:          req.Province,
		PostCode:          req.PostCode,
		Country:           req.Country,
		ParkingSpaces:     req.ParkingSpaces,
		NumberOfBathrooms: req.NumberOfBathrooms,
		NumberOfBedrooms:  req.NumberOfBedrooms,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to add property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add property"})
		return
	}

	c.JSON(http.StatusCreated, property)
}

func (h *Handler) GetReservations(c *gin.Context) {
	reservations, err := h.store.GetReservationsForGuest(c.Request.Context(), sessionUserID(c), parseLimit(c))
	if err != nil {
		h.logger.WithError(err).Error("Failed to get reservations")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get reservations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

// parsePropertySearch reads the search filters from the query string. Empty
// parameters are treated as absent.
func parsePropertySearch(c *gin.Context) (database.PropertySearch, error) {
	var search database.PropertySearch

	if city := c.Query("city"); city != "" {
		search.City = &city
	}

	if raw := c.Query("owner_id"); raw != "" {
		ownerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return search, fmt.Errorf("invalid owner_id: %q", raw)
		}
		search.OwnerID = &ownerID
	}

	var err error
	if search.MinimumPricePerNight, err = parsePrice(c, "minimum_price_per_night"); err != nil {
		return search, err
	}
	if search.MaximumPricePerNight, err = parsePrice(c, "maximum_price_per_night"); err != nil {
		return search, err
	}

	if raw := c.Query("minimum_rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return search, fmt.Errorf("invalid minimum_rating: %q", raw)
		}
		search.MinimumRating = &rating
	}

	return search, nil
}

func parsePrice(c *gin.Context, key string) (*decimal.Decimal, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return nil, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return &price, nil
}

// maxLimit caps the page size a client can request.
const maxLimit = 100

func parseLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		return database.DefaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
