// Package catalog holds the catalog state of one storefront session and
// the pure transitions over it.
//
// A State is a value. Reduce never mutates the State it receives; the
// ProductCache inside it is copy-on-write, so snapshots handed out to
// readers stay valid after later transitions.
package catalog
