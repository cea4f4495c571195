package main

import "io/fs"

// FS is what the data folder is read through: the embedded copy (embed.FS),
// the folder on disk (os.DirFS) or, in tests, an fstest.MapFS. All three can
// open, read and list files, which is all the loading code needs.
type FS interface {
	fs.FS
	fs.ReadFileFS
	fs.ReadDirFS
}
