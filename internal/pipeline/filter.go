// Package pipeline builds the aggregation pipelines behind the listing and
// dashboard endpoints. It only produces bson; executing them is the job of the
// repositories.
package pipeline

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VideoFilter is the parsed form of the optional list parameters.
type VideoFilter struct {
	Query string              // case-insensitive substring of title
	Owner *primitive.ObjectID // restrict to one channel
}

// Build returns the match criteria. An empty filter matches everything.
func (f VideoFilter) Build() bson.D {
	match := bson.D{}
	if q := strings.TrimSpace(f.Query); q != "" {
		match = append(match, bson.E{Key: "title", Value: primitive.Regex{
			Pattern: regexp.QuoteMeta(q),
			Options: "i",
		}})
	}
	if f.Owner != nil {
		match = append(match, bson.E{Key: "owner", Value: *f.Owner})
	}
	return match
}

// ByField is an equality filter keyed by a path parameter.
func ByField(field string, id primitive.ObjectID) bson.D {
	return bson.D{{Key: field, Value: id}}
}
