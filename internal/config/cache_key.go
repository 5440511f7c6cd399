package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// ClassAverageRatingKey returns the cache key for a class's average rating.
func (r *CacheKeyStruct) ClassAverageRatingKey(classID string) string {
	return fmt.Sprintf("rating:avg:%s", classID)
}

var CacheKey = NewCacheKeyStruct()
