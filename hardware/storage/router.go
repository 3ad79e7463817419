// This file is part of nanosim.
//
// nanosim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nanosim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nanosim.  If not, see <https://www.gnu.org/licenses/>.

package storage

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/nanosim/curated"
	"github.com/jetsetilly/nanosim/environment"
	"github.com/jetsetilly/nanosim/logger"
)

// Sentinal error returned by Bind().
const BindError = "storage: drive %d: %v"

// Image is a disk image file bound to a drive.
type Image struct {
	Path string
	Size int64

	f *os.File
}

// Router directs sector reads and writes to the image bound to a drive.
type Router struct {
	env *environment.Environment

	images [NumDrives]*Image
}

// NewRouter is the preferred method of initialisation for the Router type.
// All drives are unbound.
func NewRouter(env *environment.Environment) *Router {
	return &Router{
		env: env,
	}
}

func (r *Router) String() string {
	s := ""
	for d, img := range r.images {
		if img != nil {
			s = fmt.Sprintf("%s#%d %s (%d bytes) ", s, d, img.Path, img.Size)
		}
	}
	if s == "" {
		return "no images bound"
	}
	return s[:len(s)-1]
}

// Bind a disk image file to a drive. The file is opened for reading and
// writing and stays open until Close() is called.
//
// If the file cannot be opened the error is logged and returned and the drive
// stays unbound.
func (r *Router) Bind(drive int, path string) error {
	if drive < 0 || drive >= NumDrives {
		return curated.Errorf(BindError, drive, "no such drive")
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		logger.Logf(r.env, "storage", "could not bind image to drive %d: %v", drive, err)
		return curated.Errorf(BindError, drive, err)
	}

	// size of image is found by seeking to the end of the file
	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		f.Close()
		logger.Logf(r.env, "storage", "could not bind image to drive %d: %v", drive, err)
		return curated.Errorf(BindError, drive, err)
	}

	// replace any existing image
	if r.images[drive] != nil {
		r.unbind(drive)
	}

	r.images[drive] = &Image{
		Path: path,
		Size: size,
		f:    f,
	}

	logger.Logf(r.env, "storage", "drive %d bound to %s, size = %d", drive, path, size)

	return nil
}

func (r *Router) unbind(drive int) error {
	img := r.images[drive]
	r.images[drive] = nil
	logger.Logf(r.env, "storage", "closing image for drive %d", drive)
	return img.f.Close()
}

// Image returns the image bound to the drive or nil if the drive is unbound.
func (r *Router) Image(drive int) *Image {
	if drive < 0 || drive >= NumDrives {
		return nil
	}
	return r.images[drive]
}

// Bound returns true if an image is bound to the drive.
func (r *Router) Bound(drive int) bool {
	return r.Image(drive) != nil
}

// Resolve the device selector to a drive number. The lowest set bit selects
// the drive.
//
// If no bits are set, the request can not be routed and ok is false. The
// request should then be treated as if it was for an unbound drive.
func (r *Router) Resolve(selector uint8) (drive int, ok bool) {
	drive, n := lowest(selector)
	switch n {
	case 0:
		logger.Log(r.env, "storage", "warning: empty device selector")
		return -1, false
	case 1:
	default:
		logger.Logf(r.env, "storage", "warning: device selector %#02x has more than one bit set. using drive %d", selector, drive)
	}
	return drive, true
}

// ReadSector fills buf with the contents of the block. The buffer is zero
// filled if the drive is unbound or if the block cannot be read.
func (r *Router) ReadSector(drive int, block uint32, buf []byte) {
	buf = buf[:SectorSize]

	img := r.Image(drive)
	if img == nil {
		clear(buf)
		return
	}

	n, err := ReadBlock(img.f, block, buf)
	if err != nil {
		if err == io.EOF {
			logger.Logf(r.env, "storage", "short read of block %d on drive %d (%d bytes)", block, drive, n)
		} else {
			logger.Logf(r.env, "storage", "could not read block %d on drive %d: %v", block, drive, err)
		}
	}
}

// ReadBlock reads one block from an image. If the whole block cannot be read
// the buffer is zero filled and the error is returned. The error is io.EOF
// if the block is fully or partially beyond the end of the image.
func ReadBlock(f io.ReaderAt, block uint32, buf []byte) (int, error) {
	buf = buf[:SectorSize]
	n, err := f.ReadAt(buf, int64(block)*SectorSize)
	if n < SectorSize {
		clear(buf)
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return n, err
	}
	return n, nil
}

// WriteSector writes data to the block. The write is dropped if the drive is
// unbound or if the persistence preference is off. Returns true if the block
// was written to the image.
func (r *Router) WriteSector(drive int, block uint32, data []byte) bool {
	img := r.Image(drive)
	if img == nil {
		logger.Logf(r.env, "storage", "no image bound to drive %d. write to block %d dropped", drive, block)
		return false
	}

	if !r.env.Prefs.Persist.Get().(bool) {
		logger.Logf(r.env, "storage", "persistence disabled. write to block %d on drive %d dropped", block, drive)
		return false
	}

	_, err := img.f.WriteAt(data[:SectorSize], int64(block)*SectorSize)
	if err != nil {
		logger.Logf(r.env, "storage", "could not write block %d on drive %d: %v", block, drive, err)
		return false
	}

	end := int64(block+1) * SectorSize
	if end > img.Size {
		img.Size = end
	}

	logger.Logf(r.env, "storage", "block %d written to drive %d", block, drive)
	return true
}

// Close all bound images. The first error encountered is returned but every
// image is closed regardless.
func (r *Router) Close() error {
	var err error
	for d := range r.images {
		if r.images[d] != nil {
			if e := r.unbind(d); e != nil && err == nil {
				err = curated.Errorf(BindError, d, e)
			}
		}
	}
	return err
}
