// Package arraybuffer provides the array buffer object: an engine object
// owning a fixed-size data block, with a byte length, raw storage access,
// and a detachment flag.
//
// The typed-array core never detaches a buffer itself. Detachment is driven
// by the embedding host (or by script through host-exposed operations) and
// is only ever observed here: every access through a view re-checks the
// flag at the moment of the access.
package arraybuffer
