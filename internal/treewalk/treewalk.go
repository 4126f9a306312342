// Copyright 2026 Continusec Pty Ltd.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package treewalk is the pure path logic shared by publish and fetch: how a
// local tree flattens into upload entries, and how an object URL maps back to
// a local file name.
package treewalk

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Entry is one file to upload. Rel is the slash-separated path relative to
// the enumerated root, empty when the root itself was a single file.
type Entry struct {
	Rel string
	Abs string
}

// Enumerate lists every regular file under root. A root that is itself a file
// yields exactly one entry with an empty Rel. Directory entries are never
// yielded, only the files within them.
func Enumerate(root string) ([]Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("error inspecting path %s: %w", root, err)
	}
	if !info.IsDir() {
		return []Entry{{Rel: "", Abs: root}}, nil
	}

	var rv []Entry
	if err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("error computing relative path for %s: %w", path, err)
		}
		rv = append(rv, Entry{Rel: filepath.ToSlash(rel), Abs: path})
		return nil
	}); err != nil {
		return nil, fmt.Errorf("error walking %s: %w", root, err)
	}
	return rv, nil
}

// BaseName returns the final slash-delimited component of an object URL.
// Fetch writes every downloaded object directly under the target directory by
// this name - nested structure from the upload is not reproduced.
func BaseName(rawURL string) string {
	if i := strings.LastIndex(rawURL, "/"); i >= 0 {
		return rawURL[i+1:]
	}
	return rawURL
}
