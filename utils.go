package main

import (
	"image"
	"io/fs"
	"os"
	"time"
)

var CheckCrashes = true
var CheckFailed error

func Check(e error) {
	if e != nil {
		CheckFailed = e
		if CheckCrashes {
			panic(e)
		}
	}
}

// DecodeImage reads and decodes an image file. Unlike most file helpers here
// it returns the error instead of calling Check(), because it runs on the
// loader's goroutine and a failed load must not take the program down.
func DecodeImage(fsys FS, name string) (image.Image, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer func(file fs.File) { _ = file.Close() }(file)

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func CloseFile(f fs.File) {
	Check(f.Close())
}

func ReadFile(name string) []byte {
	data, err := os.ReadFile(name)
	Check(err)
	return data
}

func FileExists(fsys FS, name string) bool {
	file, err := fsys.Open(name)
	if err == nil {
		CloseFile(file)
		return true
	} else {
		return false
	}
}

// FolderWatcher tells if any file in a folder was modified since the last
// time it was asked. Only the files directly in the folder are checked.
type FolderWatcher struct {
	Folder string
	times  []time.Time
}

func (f *FolderWatcher) FolderContentsChanged() bool {
	if f.Folder == "" {
		return false
	}

	files, err := os.ReadDir(f.Folder)
	Check(err)
	if len(files) != len(f.times) {
		f.times = make([]time.Time, len(files))
	}
	changed := false
	for idx, file := range files {
		info, err := file.Info()
		Check(err)
		if f.times[idx] != info.ModTime() {
			changed = true
			f.times[idx] = info.ModTime()
		}
	}
	return changed
}
