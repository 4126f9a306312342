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
	"errors"
	"fmt"
	"os"
	"os/user"
	"path"
	"path/filepath"
	"time"

	"github.com/continusec/librarian/internal/ledger"
	"github.com/continusec/librarian/internal/store"
	"github.com/continusec/librarian/internal/treewalk"
	"github.com/opencontainers/go-digest"
	"github.com/sirupsen/logrus"
)

var ErrInvalidLocalPath = errors.New("invalid local path specified")

type PublishRequest struct {
	LocalPath string
	Project   string
	Dataset   string
	Version   string
	Comment   string
	Direction ledger.Direction
}

// Publisher pushes a local file or tree into the object store and commits the
// resulting manifest to the ledger.
type Publisher struct {
	Ledger ledger.Ledger
	Store  store.Store

	// identity recorded against each submission
	Username string
	Hostname string

	// overridden in tests
	now func() time.Time
}

func NewPublisher(l ledger.Ledger, s store.Store) *Publisher {
	return &Publisher{
		Ledger:   l,
		Store:    s,
		Username: currentUsername(),
		Hostname: currentHostname(),
		now:      time.Now,
	}
}

func currentUsername() string {
	u, err := user.Current()
	if err != nil {
		return "unknown"
	}
	return u.Username
}

func currentHostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}

// submissionPrefix names the per-submission namespace in the store. The
// timestamp renders to microseconds with no separator after the seconds,
// matching the key layout of every previously published submission.
func submissionPrefix(dataset string, ts time.Time) string {
	return fmt.Sprintf("%s-%s%06d", dataset, ts.Format("20060102-150405"), ts.Nanosecond()/1000)
}

// Publish uploads everything under req.LocalPath to a fresh namespace in the
// store and records the manifest in the ledger. Uploads happen one file at a
// time, and the ledger is only written once every upload has succeeded. A
// failed upload aborts the call without compensation: objects already
// uploaded stay in the store with no ledger entry, and re-running publish is
// the retry.
func (p *Publisher) Publish(ctx context.Context, req PublishRequest) error {
	if _, err := os.Stat(req.LocalPath); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidLocalPath, req.LocalPath)
	}
	exists, err := p.Ledger.ProjectExists(ctx, req.Project)
	if err != nil {
		return fmt.Errorf("error checking project: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s - create it first", ledger.ErrProjectNotFound, req.Project)
	}

	entries, err := treewalk.Enumerate(req.LocalPath)
	if err != nil {
		return fmt.Errorf("error enumerating local tree: %w", err)
	}

	ts := p.now()
	prefix := submissionPrefix(req.Dataset, ts)

	var urls, checksums []string
	for _, e := range entries {
		rel := e.Rel
		if rel == "" {
			// a single-file publish still gets a real final key component
			rel = filepath.Base(e.Abs)
		}
		key := path.Join(req.Project, req.Dataset, prefix, rel)

		sum, size, err := digestFile(e.Abs)
		if err != nil {
			return fmt.Errorf("error computing checksum for %s: %w", e.Abs, err)
		}
		url, err := p.Store.Upload(ctx, e.Abs, key)
		if err != nil {
			return fmt.Errorf("error uploading %s: %w", e.Abs, err)
		}
		logrus.Infof("Uploaded %s -> %s", e.Abs, url)
		filesUploaded.Inc()
		bytesUploaded.Add(float64(size))

		urls = append(urls, url)
		checksums = append(checksums, sum.String())
	}

	if err := p.Ledger.RecordSubmission(ctx, ledger.Record{
		Project:   req.Project,
		Name:      req.Dataset,
		Version:   req.Version,
		Timestamp: ts,
		URLs:      urls,
		Checksums: checksums,
		Comment:   req.Comment,
		Username:  p.Username,
		Hostname:  p.Hostname,
		Direction: req.Direction,
	}); err != nil {
		return fmt.Errorf("error recording submission: %w", err)
	}
	submissionsRecorded.Inc()
	return nil
}

func digestFile(path string) (retDigest digest.Digest, retSize int64, retErr error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("error opening file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && retErr == nil {
			retErr = fmt.Errorf("error closing file: %w", err)
		}
	}()
	info, err := f.Stat()
	if err != nil {
		return "", 0, fmt.Errorf("error statting file: %w", err)
	}
	d, err := digest.Canonical.FromReader(f)
	if err != nil {
		return "", 0, fmt.Errorf("error digesting file: %w", err)
	}
	return d, info.Size(), nil
}
