// Package seeker provides an incremental search cache.
//
// An Incremental wraps an expensive search function. When a new criterion
// contains the last one that reached the search function, the last results
// already hold every match, so the search can be answered by filtering them
// locally instead of searching again.
package seeker
