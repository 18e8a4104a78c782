// Package fs is the seam between the sink and the operating system.
//
// Production code uses [Default], which is [LocalFS]. Tests wrap it in a
// [FaultyFS] to make opens, writes, seeks, syncs or closes fail on demand:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("spectrum.bin", fs.Fault{FailAfterBytes: 1024})
//
// There is no context.Context here: local file calls are not interruptible at
// the syscall level.
package fs
