package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// CourseCatalogKey returns the cache key for the full public course catalog.
func (r *CacheKeyStruct) CourseCatalogKey() string {
	return "courses:catalog"
}

// CourseKey returns the cache key for a single course payload.
func (r *CacheKeyStruct) CourseKey(courseID string) string {
	return fmt.Sprintf("course:%s", courseID)
}

var CacheKey = NewCacheKeyStruct()
