// Package snapshot persists cache contents through the afs abstraction so a
// cache can survive process restarts. Any afs URL works as a destination,
// e.g. file://, mem:// or s3://.
package snapshot
