// Package vecsink implements a sink block that publishes the most recent
// vector of float32 samples through a file.
//
// The file always holds exactly VecLen samples in the host byte order, with
// no header. Every vector handed to the sink is written at offset 0 over the
// previous one, so a poller reading the file sees the latest snapshot of a
// live spectrum. Readers are not coordinated with the writer and may observe
// a torn vector.
//
// A FileSink follows the three hooks a dataflow host drives: New opens and
// zeroes the file, Work consumes a batch of vectors and Stop closes the file.
// Run is a minimal host that feeds a Source into a Block.
package vecsink
