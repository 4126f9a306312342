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

	"github.com/continusec/librarian/internal/jobs"
	"github.com/continusec/librarian/internal/ledger"
	"github.com/continusec/librarian/internal/store"
	"github.com/continusec/librarian/internal/treewalk"
	"github.com/sirupsen/logrus"
)

// Fetcher resolves a (project, dataset, version) triple to its manifest and
// replays the objects into a local directory.
type Fetcher struct {
	Ledger ledger.Ledger
	Store  store.Store
}

func NewFetcher(l ledger.Ledger, s store.Store) *Fetcher {
	return &Fetcher{
		Ledger: l,
		Store:  s,
	}
}

// Fetch downloads every object of the manifest into targetDir, each under its
// base file name (the upload's directory nesting is not reproduced).
// Downloads run in parallel; any that fail are reported together, and files
// already written stay written.
func (f *Fetcher) Fetch(ctx context.Context, project, dataset, version, targetDir string) error {
	exists, err := f.Ledger.ProjectExists(ctx, project)
	if err != nil {
		return fmt.Errorf("error checking project: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ledger.ErrProjectNotFound, project)
	}
	info, err := os.Stat(targetDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrInvalidLocalPath, targetDir)
	}

	urls, _, err := f.Ledger.ResolveManifest(ctx, project, dataset, version)
	if err != nil {
		return fmt.Errorf("error resolving manifest: %w", err)
	}

	mt := jobs.NewMultiTasker()
	for _, u := range urls {
		mt.Queue(func() error {
			dest := filepath.Join(targetDir, treewalk.BaseName(u))
			if err := f.Store.Download(ctx, u, dest); err != nil {
				return fmt.Errorf("error downloading %s: %w", u, err)
			}
			logrus.Infof("Downloaded %s -> %s", u, dest)
			filesDownloaded.Inc()
			if info, err := os.Stat(dest); err == nil {
				bytesDownloaded.Add(float64(info.Size()))
			}
			return nil
		})
	}
	return mt.Wait(func(err error) {
		logrus.Errorf("error during download: %v", err)
	})
}
