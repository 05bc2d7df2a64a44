// Package ring provides a fixed-capacity circular buffer.
//
// A [Ring] retains only the most recent Cap() values. Writes go to the cursor,
// which then advances with wraparound; reads address values by their age, so
// At(0) is the newest value and At(Cap()-1) the oldest one still held.
package ring
