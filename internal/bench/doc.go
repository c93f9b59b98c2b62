// Package bench drives the record reader over files and measures how long
// loading them into a store takes.
//
// One repetition opens the file, parses it to the end into a fresh store,
// records counts and timings, then releases every record. Any error ends
// the repetitions for that file; nothing is retried.
package bench
