package database

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PropertySearch holds the optional property filters. A nil field adds no
// predicate. Prices are in major currency units and compared in cents.
type PropertySearch struct {
	City                 *string
	OwnerID              *int64
	MinimumPricePerNight *decimal.Decimal
	MaximumPricePerNight *decimal.Decimal
	MinimumRating        *float64
}

type predicate struct {
	clause string
	args   []interface{}
}

const propertyColumns = `
        properties.id,
        properties.owner_id,
        properties.title,
        COALESCE(properties.description, '') AS description,
        COALESCE(properties.thumbnail_photo_url, '') AS thumbnail_photo_url,
        COALESCE(properties.cover_photo_url, '') AS cover_photo_url,
        properties.cost_per_night,
        COALESCE(properties.street, '') AS street,
        COALESCE(properties.city, '') AS city,
        COALESCE(properties.province, '') AS province,
        COALESCE(properties.post_code, '') AS post_code,
        COALESCE(properties.country, '') AS country,
        properties.parking_spaces,
        properties.number_of_bathrooms,
        properties.number_of_bedrooms,
        AVG(property_reviews.rating) AS average_rating`

// MinimumCents is the smallest whole-cent cost at or above a major-unit bound.
func MinimumCents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Ceil().IntPart()
}

// MaximumCents is the largest whole-cent cost at or below a major-unit bound.
func MaximumCents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Floor().IntPart()
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern matches value as a literal substring under LIKE ... ESCAPE '!'.
func containsPattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}

// wherePredicates apply to rows before grouping.
func (s PropertySearch) wherePredicates() []predicate {
	var preds []predicate

	if s.City != nil {
		preds = append(preds, predicate{
			clause: "properties.city LIKE ? ESCAPE '!'",
			args:   []interface{}{containsPattern(*s.City)},
		})
	}
	if s.OwnerID != nil {
		preds = append(preds, predicate{
			clause: "properties.owner_id = ?",
			args:   []interface{}{*s.OwnerID},
		})
	}
	if s.MinimumPricePerNight != nil {
		preds = append(preds, predicate{
			clause: "properties.cost_per_night >= ?",
			args:   []interface{}{MinimumCents(*s.MinimumPricePerNight)},
		})
	}
	if s.MaximumPricePerNight != nil {
		preds = append(preds, predicate{
			clause: "properties.cost_per_night <= ?",
			args:   []interface{}{MaximumCents(*s.MaximumPricePerNight)},
		})
	}

	return preds
}

// havingPredicates apply to the per-property rating aggregate.
func (s PropertySearch) havingPredicates() []predicate {
	var preds []predicate

	if s.MinimumRating != nil {
		preds = append(preds, predicate{
			clause: "AVG(property_reviews.rating) >= ?",
			args:   []interface{}{*s.MinimumRating},
		})
	}

	return preds
}

// Compile renders the search as a single statement with ? placeholders and
// its bound arguments in placeholder order.
func (s PropertySearch) Compile(limit int) (string, []interface{}) {
	var query strings.Builder
	var args []interface{}

	query.WriteString("SELECT")
	query.WriteString(propertyColumns)
	query.WriteString(`
FROM properties
LEFT JOIN property_reviews ON properties.id = property_reviews.property_id`)

	args = appendConjunction(&query, "\nWHERE ", s.wherePredicates(), args)
	query.WriteString("\nGROUP BY properties.id")
	args = appendConjunction(&query, "\nHAVING ", s.havingPredicates(), args)

	query.WriteString("\nORDER BY properties.cost_per_night, properties.id\nLIMIT ?")
	args = append(args, limit)

	return query.String(), args
}

func appendConjunction(query *strings.Builder, keyword string, preds []predicate, args []interface{}) []interface{} {
	if len(preds) == 0 {
		return args
	}

	clauses := make([]string, len(preds))
	for i, p := range preds {
		clauses[i] = p.clause
		args = append(args, p.args...)
	}

	query.WriteString(keyword)
	query.WriteString(strings.Join(clauses, " AND "))
	return args
}
