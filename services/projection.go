package services

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Feni2Backend/util"
)

/*
* Coercion helpers for raw store documents. Every reader backfills a
* type-correct default, a half-written record never panics a projection.
 */

func docString(doc bson.M, key string, def string) string {
	if v, ok := doc[key].(string); ok && v != "" {
		return v
	}
	return def
}

func docInt(doc bson.M, key string, def int) int {
	if v, ok := util.ToInt(doc[key]); ok {
		return v
	}
	return def
}

func docTime(doc bson.M, key string, def time.Time) time.Time {
	switch v := doc[key].(type) {
	case time.Time:
		return v
	case primitive.DateTime:
		return v.Time()
	}
	return def
}

func docTimePtr(doc bson.M, key string) *time.Time {
	switch v := doc[key].(type) {
	case time.Time:
		return &v
	case primitive.DateTime:
		t := v.Time()
		return &t
	}
	return nil
}

func docObjectIDHex(doc bson.M, key string) string {
	switch v := doc[key].(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	}
	return ""
}
