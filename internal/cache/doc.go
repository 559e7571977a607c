// Package cache provides a small generic LRU cache.
//
// The pipeline uses it to remember which kernel served a request
// signature, so repeated composites of the same kind skip the table scan.
//
//	c := cache.New[string, int](64)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
