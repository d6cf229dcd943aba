// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

// A mega archive bundles many mod sub-files into one file: a filename
// table, then a file-info table (crc32, file index, size, offset, name
// index) addressing each sub-file by a hash of its upper-cased name. The
// archive is memory-mapped for its whole lifetime (mmapFile, implemented
// per-OS in vfs_mega_unix.go / vfs_mega_windows.go) so opening a sub-file
// never copies its bytes.

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/tacticus/engine/render"
)

// subFileInfo mirrors one entry of a mega archive's file-info table.
type subFileInfo struct {
	CRC32      uint32
	FileIndex  uint32
	FileSize   uint32
	FileOffset uint32
	NameIndex  uint32
}

// MegaArchive is a read-only, memory-mapped view over one mega archive.
type MegaArchive struct {
	file  *os.File
	data  []byte
	unmap func() error

	infos       []subFileInfo
	hashToIndex map[uint64]int
}

// OpenMegaArchive opens and memory-maps the mega archive at path and
// parses its filename/file-info tables.
func OpenMegaArchive(path string) (*MegaArchive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open mega archive %q: %v", render.ErrIoFailure, path, err)
	}
	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: stat mega archive %q: %v", render.ErrIoFailure, path, err)
	}
	data, unmap, err := mmapFile(f, int(stat.Size()))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: mmap mega archive %q: %v", render.ErrIoFailure, path, err)
	}
	arc := &MegaArchive{file: f, data: data, unmap: unmap, hashToIndex: map[uint64]int{}}
	if err := arc.parseMetadata(); err != nil {
		arc.Close()
		return nil, err
	}
	return arc, nil
}

// Close releases the archive's memory mapping and closes its file handle.
func (a *MegaArchive) Close() error {
	var err error
	if a.unmap != nil {
		err = a.unmap()
	}
	if cerr := a.file.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func (a *MegaArchive) parseMetadata() error {
	r := bytes.NewReader(a.data)
	var nameCount, infoCount uint32
	if err := binary.Read(r, binary.LittleEndian, &nameCount); err != nil {
		return fmt.Errorf("%w: mega archive header: %v", render.ErrInvalidFormat, err)
	}
	if err := binary.Read(r, binary.LittleEndian, &infoCount); err != nil {
		return fmt.Errorf("%w: mega archive header: %v", render.ErrInvalidFormat, err)
	}
	names := make([]string, nameCount)
	for i := range names {
		var length uint16
		if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
			return fmt.Errorf("%w: mega archive filename table: %v", render.ErrInvalidFormat, err)
		}
		buf := make([]byte, length)
		if _, err := io.ReadFull(r, buf); err != nil {
			return fmt.Errorf("%w: mega archive filename table: %v", render.ErrInvalidFormat, err)
		}
		names[i] = string(buf)
	}
	a.infos = make([]subFileInfo, infoCount)
	if err := binary.Read(r, binary.LittleEndian, a.infos); err != nil {
		return fmt.Errorf("%w: mega archive file-info table: %v", render.ErrInvalidFormat, err)
	}
	for i, info := range a.infos {
		if int(info.NameIndex) >= len(names) {
			return fmt.Errorf("%w: mega archive file-info %d: name index %d out of range", render.ErrInvalidFormat, i, info.NameIndex)
		}
		a.hashToIndex[megaHash(names[info.NameIndex])] = i
	}
	return nil
}

// OpenFile returns a seekable, read-only view onto the sub-file whose name
// hashes (case-insensitively) to path, or ErrNotFound.
func (a *MegaArchive) OpenFile(path string) (*SubFileReader, error) {
	idx, ok := a.hashToIndex[megaHash(path)]
	if !ok {
		return nil, fmt.Errorf("%w: mega archive: %q", render.ErrNotFound, path)
	}
	info := a.infos[idx]
	start, end := info.FileOffset, info.FileOffset+info.FileSize
	if int64(end) > int64(len(a.data)) {
		return nil, fmt.Errorf("%w: mega archive: %q extends past archive end", render.ErrInvalidFormat, path)
	}
	return &SubFileReader{data: a.data[start:end]}, nil
}

// megaHash is the case-insensitive name hash sub-files are addressed by.
// It is an FNV-1a hash of the upper-cased name, folding case as it goes so
// callers never need to allocate an uppercased copy of the name first.
func megaHash(name string) uint64 {
	const offsetBasis = 14695981039346656037
	const prime = 1099511628211
	h := uint64(offsetBasis)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		h ^= uint64(c)
		h *= prime
	}
	return h
}

// SubFileReader is a seekable, read-only byte stream over one sub-file's
// extent within its archive's memory-mapped bytes. Its position tracking
// is local to the view: two readers over the same or different sub-files
// never interfere with each other's position.
type SubFileReader struct {
	data []byte
	pos  int
}

// Size returns the sub-file's total byte length.
func (s *SubFileReader) Size() int { return len(s.data) }

func (s *SubFileReader) Read(p []byte) (int, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}
	n := copy(p, s.data[s.pos:])
	s.pos += n
	return n, nil
}

func (s *SubFileReader) Seek(offset int64, whence int) (int64, error) {
	var newPos int64
	switch whence {
	case io.SeekStart:
		newPos = offset
	case io.SeekCurrent:
		newPos = int64(s.pos) + offset
	case io.SeekEnd:
		newPos = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("%w: sub-file reader: invalid whence %d", render.ErrBadArgument, whence)
	}
	if newPos < 0 {
		newPos = 0
	}
	if newPos > int64(len(s.data)) {
		newPos = int64(len(s.data))
	}
	s.pos = int(newPos)
	return int64(s.pos), nil
}
