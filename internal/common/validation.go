package common

import (
	"encoding/json"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// MaxJSONBody caps JSON request bodies.
	MaxJSONBody = 1 << 20
)

// Pagination is a validated page window. Page and Limit are always >= 1.
type Pagination struct {
	Page  int64
	Limit int64
}

func (p Pagination) Skip() int64 {
	return (p.Page - 1) * p.Limit
}

// SortOrder is 1 for ascending and -1 for descending, as the store expects.
type SortOrder int

const (
	SortAsc  SortOrder = 1
	SortDesc SortOrder = -1
)

// sortable video fields
var sortableFields = map[string]bool{
	"createdAt": true,
	"updatedAt": true,
	"title":     true,
	"views":     true,
	"duration":  true,
}

// ParseObjectID validates a hex reference coming from a path or query parameter.
func ParseObjectID(name, raw string) (primitive.ObjectID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return primitive.NilObjectID, MissingField(name)
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, InvalidParameter("invalid %s: %q", name, raw)
	}
	return id, nil
}

// ParseOptionalObjectID is ParseObjectID for filters: an empty value yields nil.
func ParseOptionalObjectID(name, raw string) (*primitive.ObjectID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	id, err := ParseObjectID(name, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parsePositive(name, raw string, def int64) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 1 {
		return 0, InvalidParameter("%s must be a positive integer, got %q", name, raw)
	}
	return n, nil
}

// ParsePagination reads page and limit from the query string.
func ParsePagination(q url.Values) (Pagination, error) {
	page, err := parsePositive("page", q.Get("page"), DefaultPage)
	if err != nil {
		return Pagination{}, err
	}
	limit, err := parsePositive("limit", q.Get("limit"), DefaultLimit)
	if err != nil {
		return Pagination{}, err
	}
	if limit > MaxLimit {
		return Pagination{}, InvalidParameter("limit must not exceed %d", MaxLimit)
	}
	// (page-1)*limit must fit in an int64 skip
	if page-1 > math.MaxInt64/limit {
		return Pagination{}, InvalidParameter("page %d is out of range", page)
	}
	return Pagination{Page: page, Limit: limit}, nil
}

// ParseSort reads sortBy and sortType. Defaults to createdAt descending.
func ParseSort(q url.Values) (string, SortOrder, error) {
	field := strings.TrimSpace(q.Get("sortBy"))
	if field == "" {
		field = "createdAt"
	}
	if !sortableFields[field] {
		return "", 0, InvalidParameter("cannot sort by %q", field)
	}

	switch strings.ToLower(strings.TrimSpace(q.Get("sortType"))) {
	case "", "-1", "desc", "descending":
		return field, SortDesc, nil
	case "1", "asc", "ascending":
		return field, SortAsc, nil
	default:
		return "", 0, InvalidParameter("sortType must be asc or desc, got %q", q.Get("sortType"))
	}
}

func RequireField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return MissingField(name)
	}
	return nil
}

// DecodeJSON reads at most MaxJSONBody bytes of r.Body into v.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return InvalidParameter("request body exceeds %d bytes", MaxJSONBody)
		}
		return InvalidParameter("malformed JSON body")
	}
	return nil
}
