package mongodb

import (
	"regexp"

	"moviecatalog/query"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func fieldName(field string) string {
	if field == query.Identity {
		return "_id"
	}
	return field
}

// Filter renders conditions as a bson filter. Conditions on the same field
// share one operator document, so a date range becomes
// {releaseDate: {$gte: from, $lte: to}}. Match is a case-insensitive
// substring match on the literal text; regex metacharacters in the search
// are quoted, the same as the postgres ILIKE scope.
func Filter(conditions []query.Condition) bson.D {
	filter := bson.D{}
	positions := make(map[string]int, len(conditions))

	for _, c := range conditions {
		field := fieldName(c.Field)
		i, ok := positions[field]
		if !ok {
			i = len(filter)
			positions[field] = i
			filter = append(filter, bson.E{Key: field, Value: bson.D{}})
		}
		filter[i].Value = append(filter[i].Value.(bson.D), operator(c)...)
	}

	return filter
}

func operator(c query.Condition) bson.D {
	switch c.Op {
	case query.Match:
		pattern, _ := c.Value.(string)
		return bson.D{
			{Key: "$regex", Value: regexp.QuoteMeta(pattern)},
			{Key: "$options", Value: "i"},
		}
	case query.AtLeast:
		return bson.D{{Key: "$gte", Value: c.Value}}
	case query.AtMost:
		return bson.D{{Key: "$lte", Value: c.Value}}
	case query.Contains:
		return bson.D{{Key: "$in", Value: bson.A{c.Value}}}
	}
	return bson.D{}
}

// Sort renders the sort order. Ties on anything but the id are broken by id
// so that consecutive pages never overlap.
func Sort(s query.Sort) bson.D {
	if s.Field == "" {
		return bson.D{{Key: "_id", Value: -1}}
	}
	field := fieldName(s.Field)
	sort := bson.D{{Key: field, Value: int(s.Direction)}}
	if field != "_id" {
		sort = append(sort, bson.E{Key: "_id", Value: int(s.Direction)})
	}
	return sort
}

func findOptions(spec query.Spec) *options.FindOptionsBuilder {
	return options.Find().
		SetSort(Sort(spec.Sort)).
		SetSkip(spec.Skip).
		SetLimit(spec.Limit)
}
