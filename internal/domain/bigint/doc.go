// Package bigint provides Int, an immutable arbitrary-precision signed integer.
//
// Every operation returns a new value and never touches its operands, so Int values
// may be shared freely between goroutines without locking. The zero value of Int
// is the integer 0.
package bigint
