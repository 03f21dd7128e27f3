// Package fileops performs the whole-file read and write steps of a patch run.
package fileops

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zeebo/xxh3"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// State captures a target file as read before patching.
type State struct {
	// Path is the resolved path (symlinks followed) that will be written.
	Path         string
	OriginalPath string
	Permissions  os.FileMode
	Encoding     string
	Raw          []byte
	Content      string
}

// Resolve expands a leading ~ and joins relative paths onto root.
func Resolve(root, path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			path = home
		} else if strings.HasPrefix(path, "~/") {
			path = filepath.Join(home, path[2:])
		}
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	if strings.TrimSpace(root) != "" {
		path = filepath.Join(root, path)
	}
	return filepath.Abs(path)
}

// Read loads and decodes the file at path. A missing file is an error.
func Read(path, enc string) (*State, error) {
	state := &State{
		Path:         path,
		OriginalPath: path,
		Encoding:     enc,
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil, err
	}
	state.Path = resolved

	info, err := os.Stat(state.Path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", state.Path)
	}
	state.Permissions = info.Mode().Perm()

	data, err := os.ReadFile(state.Path)
	if err != nil {
		return nil, err
	}
	state.Raw = data

	decoded, err := Decode(data, enc)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", enc, err)
	}
	state.Content = decoded
	return state, nil
}

// WriteAtomic replaces path with data via a temp file and rename. The temp
// file is removed on every failure path.
func WriteAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".graft-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(perm); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Backup writes content next to path (or into backupDir) as
// <base>.<UTC timestamp>.bak and returns the backup path.
func Backup(path, backupDir string, content []byte, perm os.FileMode) (string, error) {
	targetDir := filepath.Dir(path)
	if strings.TrimSpace(backupDir) != "" {
		expanded, err := Resolve("", backupDir)
		if err != nil {
			return "", err
		}
		targetDir = expanded
	}

	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", err
	}

	base := filepath.Base(path)
	timestamp := time.Now().UTC().Format("20060102T150405")
	backupPath := filepath.Join(targetDir, fmt.Sprintf("%s.%s.bak", base, timestamp))

	if err := os.WriteFile(backupPath, content, perm); err != nil {
		return "", err
	}

	return backupPath, nil
}

// Fingerprint returns the hex xxh3-128 digest of data.
func Fingerprint(data []byte) string {
	return fmt.Sprintf("%x", xxh3.Hash128(data).Bytes())
}

// IsSupportedEncoding reports whether name is an encoding Decode understands.
func IsSupportedEncoding(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8", "latin-1", "latin1", "iso-8859-1", "windows-1252", "ascii",
		"utf-16", "utf-16le", "utf-16be":
		return true
	}
	return false
}

// Decode converts raw bytes in the named encoding to a UTF-8 string.
func Decode(data []byte, name string) (string, error) {
	enc := encodingByName(name)
	if enc == nil {
		return string(data), nil
	}

	reader := transform.NewReader(bytes.NewReader(data), enc.NewDecoder())
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// Encode converts a UTF-8 string to the named encoding.
func Encode(content string, name string) ([]byte, error) {
	enc := encodingByName(name)
	if enc == nil {
		return []byte(content), nil
	}
	var buf bytes.Buffer
	writer := transform.NewWriter(&buf, enc.NewEncoder())
	if _, err := writer.Write([]byte(content)); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodingByName(name string) encoding.Encoding {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil
	case "latin-1", "latin1", "iso-8859-1", "ascii":
		return charmap.ISO8859_1
	case "windows-1252":
		return charmap.Windows1252
	case "utf-16", "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	default:
		return nil
	}
}

// IsNotExist reports whether err means the target file is missing.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
