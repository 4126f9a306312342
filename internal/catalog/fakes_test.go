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

package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/continusec/librarian/internal/ledger"
	"github.com/continusec/librarian/internal/store"
)

// fakeLedger holds everything in memory with the same first-match-wins union
// semantics as the real thing.
type fakeLedger struct {
	projects []string
	records  []ledger.Record
}

var _ ledger.Ledger = &fakeLedger{}

func (f *fakeLedger) ListProjects(ctx context.Context) ([]string, error) {
	return f.projects, nil
}

func (f *fakeLedger) ProjectExists(ctx context.Context, name string) (bool, error) {
	for _, p := range f.projects {
		if p == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLedger) CreateProject(ctx context.Context, name, comment string) error {
	exists, _ := f.ProjectExists(ctx, name)
	if exists {
		return fmt.Errorf("%w: %s", ledger.ErrProjectExists, name)
	}
	f.projects = append(f.projects, name)
	return nil
}

func (f *fakeLedger) ListSubmissions(ctx context.Context, project string) ([]ledger.Submission, error) {
	exists, _ := f.ProjectExists(ctx, project)
	if !exists {
		return nil, fmt.Errorf("%w: %s", ledger.ErrProjectNotFound, project)
	}
	var rv []ledger.Submission
	for _, r := range f.records {
		if r.Project == project {
			rv = append(rv, ledger.Submission{Name: r.Name, Version: r.Version, Timestamp: r.Timestamp})
		}
	}
	return rv, nil
}

func (f *fakeLedger) RecordSubmission(ctx context.Context, rec ledger.Record) error {
	exists, _ := f.ProjectExists(ctx, rec.Project)
	if !exists {
		return fmt.Errorf("%w: %s", ledger.ErrProjectNotFound, rec.Project)
	}
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeLedger) ResolveManifest(ctx context.Context, project, name, version string) ([]string, []string, error) {
	for _, r := range f.records {
		if r.Project == project && r.Name == name && r.Version == version {
			return r.URLs, r.Checksums, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: %s/%s@%s", ledger.ErrDatasetNotFound, project, name, version)
}

func (f *fakeLedger) Close() error {
	return nil
}

const fakeURLPrefix = "https://test-bucket.s3.test-region.amazonaws.com/"

// fakeStore keeps object bytes in a map keyed by store key. failOn aborts the
// matching upload to exercise the partial-publish path.
type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	failOn  string
}

var _ store.Store = &fakeStore{}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string][]byte)}
}

func (f *fakeStore) Upload(ctx context.Context, localPath, key string) (string, error) {
	if f.failOn != "" && strings.Contains(key, f.failOn) {
		return "", fmt.Errorf("%w: %s", store.ErrUploadFailed, key)
	}
	bb, err := os.ReadFile(localPath)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = bb
	return fakeURLPrefix + key, nil
}

func (f *fakeStore) Download(ctx context.Context, url, localPath string) error {
	key := strings.TrimPrefix(url, fakeURLPrefix)
	f.mu.Lock()
	bb, ok := f.objects[key]
	f.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", store.ErrRetrievalFailed, url)
	}
	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(localPath, bb, 0o644)
}
