// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/tacticus/engine/render"
)

// buildMegaArchive assembles a minimal mega archive: a filename table
// followed by a file-info table, with sub-file contents concatenated after
// the tables (offsets point into that trailing region).
func buildMegaArchive(t *testing.T, files map[string][]byte) []byte {
	t.Helper()
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}

	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(len(names)))
	binary.Write(&buf, binary.LittleEndian, uint32(len(names)))
	for _, name := range names {
		binary.Write(&buf, binary.LittleEndian, uint16(len(name)))
		buf.WriteString(name)
	}

	var contents bytes.Buffer
	infos := make([]subFileInfo, len(names))
	headerSize := uint32(buf.Len()) + uint32(len(names))*20 // tables so far + file-info table
	offset := headerSize
	for i, name := range names {
		data := files[name]
		infos[i] = subFileInfo{FileSize: uint32(len(data)), FileOffset: offset, NameIndex: uint32(i)}
		contents.Write(data)
		offset += uint32(len(data))
	}
	for _, info := range infos {
		binary.Write(&buf, binary.LittleEndian, info)
	}
	buf.Write(contents.Bytes())
	return buf.Bytes()
}

func openTestArchive(t *testing.T, files map[string][]byte) *MegaArchive {
	t.Helper()
	data := buildMegaArchive(t, files)
	path := filepath.Join(t.TempDir(), "test.meg")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	arc, err := OpenMegaArchive(path)
	if err != nil {
		t.Fatalf("OpenMegaArchive: %v", err)
	}
	t.Cleanup(func() { arc.Close() })
	return arc
}

func TestMegaArchiveOpenFileCaseInsensitive(t *testing.T) {
	arc := openTestArchive(t, map[string][]byte{"Textures/Hull.dds": []byte("dds-bytes")})

	sub, err := arc.OpenFile("textures/HULL.dds")
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	got, err := io.ReadAll(sub)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "dds-bytes" {
		t.Errorf("contents = %q, want dds-bytes", got)
	}
}

func TestMegaArchiveOpenFileNotFound(t *testing.T) {
	arc := openTestArchive(t, map[string][]byte{"a.txt": []byte("x")})
	if _, err := arc.OpenFile("missing.txt"); !errors.Is(err, render.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSubFileReaderSeekIsLocalToEachView(t *testing.T) {
	arc := openTestArchive(t, map[string][]byte{"a.txt": []byte("0123456789")})

	s1, err := arc.OpenFile("a.txt")
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	s2, err := arc.OpenFile("a.txt")
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}

	if _, err := s1.Seek(5, io.SeekStart); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	buf := make([]byte, 2)
	if _, err := s1.Read(buf); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(buf) != "56" {
		t.Errorf("s1 read %q after seek, want 56", buf)
	}

	buf2 := make([]byte, 2)
	if _, err := s2.Read(buf2); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(buf2) != "01" {
		t.Errorf("s2 should still read from position 0, got %q (seek on s1 leaked)", buf2)
	}
}

func TestSubFileReaderSeekClampsToExtent(t *testing.T) {
	arc := openTestArchive(t, map[string][]byte{"a.txt": []byte("12345")})
	s, err := arc.OpenFile("a.txt")
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if pos, err := s.Seek(100, io.SeekStart); err != nil || pos != 5 {
		t.Errorf("Seek past end = (%d, %v), want (5, nil)", pos, err)
	}
	if pos, err := s.Seek(-100, io.SeekStart); err != nil || pos != 0 {
		t.Errorf("Seek before start = (%d, %v), want (0, nil)", pos, err)
	}
}
