// Package engine evaluates goal progress, strength tier unlocks and search
// relevance. Every function is pure: results depend only on the arguments,
// nothing is retained between calls, and all of it is safe for concurrent use.
package engine
