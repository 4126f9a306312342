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

package treewalk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerateSingleFile(t *testing.T) {
	td := t.TempDir()
	p := filepath.Join(td, "a.txt")
	require.NoError(t, os.WriteFile(p, []byte("hello"), 0o644))

	entries, err := Enumerate(p)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "", entries[0].Rel)
	assert.Equal(t, p, entries[0].Abs)
}

func TestEnumerateNestedTree(t *testing.T) {
	td := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(td, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(td, "sub", "deeper"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(td, "sub", "b.txt"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(td, "sub", "deeper", "c.txt"), []byte("c"), 0o644))

	entries, err := Enumerate(td)
	require.NoError(t, err)

	rels := make([]string, 0, len(entries))
	for _, e := range entries {
		rels = append(rels, e.Rel)
	}
	// files only - no directory entries, relative paths keep their nesting
	assert.ElementsMatch(t, []string{"a.txt", "sub/b.txt", "sub/deeper/c.txt"}, rels)
}

func TestEnumerateMissingPath(t *testing.T) {
	_, err := Enumerate(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "b.txt", BaseName("https://bucket.s3.us-east-1.amazonaws.com/p/d/d-20260101-000000000000/sub/b.txt"))
	assert.Equal(t, "plain", BaseName("plain"))
}
