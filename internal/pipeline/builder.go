package pipeline

import (
	"github.com/thehamzasani/primeTube/internal/common"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Builder composes stages in call order.
type Builder struct {
	stages mongo.Pipeline
}

func New() *Builder {
	return &Builder{stages: mongo.Pipeline{}}
}

func (b *Builder) add(stage string, value interface{}) *Builder {
	b.stages = append(b.stages, bson.D{{Key: stage, Value: value}})
	return b
}

func (b *Builder) Match(filter bson.D) *Builder {
	if filter == nil {
		filter = bson.D{}
	}
	return b.add("$match", filter)
}

// Lookup joins every document of from whose foreignField equals localField
// into the array field as.
func (b *Builder) Lookup(from, localField, foreignField, as string) *Builder {
	return b.add("$lookup", bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: foreignField},
		{Key: "as", Value: as},
	})
}

// LookupOne joins a single referenced document and stores it in refField,
// replacing the raw reference. A dangling reference becomes
// {_id: <ref>, unresolved: true}.
func (b *Builder) LookupOne(from, refField string) *Builder {
	joined := refField + "Details"
	b.Lookup(from, refField, "_id", joined)
	return b.AddFields(bson.D{{Key: refField, Value: bson.D{{Key: "$ifNull", Value: bson.A{
		bson.D{{Key: "$arrayElemAt", Value: bson.A{"$" + joined, 0}}},
		bson.D{{Key: "_id", Value: "$" + refField}, {Key: "unresolved", Value: true}},
	}}}}})
}

// CountOf is the $size expression for an array field, treating missing as empty.
func CountOf(array string) bson.D {
	return bson.D{{Key: "$size", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$" + array, bson.A{}}}}}}
}

func (b *Builder) AddFields(fields bson.D) *Builder {
	return b.add("$addFields", fields)
}

func (b *Builder) Project(fields bson.D) *Builder {
	return b.add("$project", fields)
}

func (b *Builder) Group(spec bson.D) *Builder {
	return b.add("$group", spec)
}

// Sort orders by field and breaks ties on _id ascending, which follows
// insertion order for generated ObjectIDs.
func (b *Builder) Sort(field string, order common.SortOrder) *Builder {
	sort := bson.D{{Key: field, Value: int(order)}}
	if field != "_id" {
		sort = append(sort, bson.E{Key: "_id", Value: 1})
	}
	return b.add("$sort", sort)
}

func (b *Builder) Skip(n int64) *Builder {
	return b.add("$skip", n)
}

func (b *Builder) Limit(n int64) *Builder {
	return b.add("$limit", n)
}

// Paginate appends a plain skip/limit window.
func (b *Builder) Paginate(p common.Pagination) *Builder {
	return b.Skip(p.Skip()).Limit(p.Limit)
}

// PaginateWithCount appends a $facet producing {docs: [...], total: [{count}]}
// so one round trip returns the window and the number of matches.
func (b *Builder) PaginateWithCount(p common.Pagination) *Builder {
	return b.add("$facet", bson.D{
		{Key: "docs", Value: New().Paginate(p).Pipeline()},
		{Key: "total", Value: mongo.Pipeline{
			bson.D{{Key: "$count", Value: "count"}},
		}},
	})
}

func (b *Builder) Pipeline() mongo.Pipeline {
	out := make(mongo.Pipeline, len(b.stages))
	copy(out, b.stages)
	return out
}
