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

package ledger

import (
	"context"
	"errors"
	"time"
)

var (
	ErrProjectExists     = errors.New("project already exists")
	ErrProjectNotFound   = errors.New("project does not exist")
	ErrDatasetNotFound   = errors.New("no dataset found for the given project, name and version")
	ErrLedgerUnavailable = errors.New("ledger not available")
)

// Direction says whether a submission records data entering or leaving a
// project.
type Direction string

const (
	Incoming Direction = "in"
	Outgoing Direction = "out"
)

// Submission is one row of a project listing.
type Submission struct {
	Name      string
	Version   string
	Timestamp time.Time
}

// Record is a full submission as written by a publish. URLs and Checksums are
// positionally paired and must have equal length.
type Record struct {
	Project     string
	Name        string
	Version     string
	Timestamp   time.Time
	URLs        []string
	Checksums   []string
	MetadataURL string
	Comment     string
	Username    string
	Hostname    string
	Direction   Direction
}

type Ledger interface {
	// ListProjects returns all project names in ledger iteration order.
	ListProjects(ctx context.Context) ([]string, error)

	ProjectExists(ctx context.Context, name string) (bool, error)

	// CreateProject inserts a new project row, ErrProjectExists if the name
	// is taken.
	CreateProject(ctx context.Context, name, comment string) error

	// ListSubmissions returns every incoming and outgoing submission under a
	// project.
	ListSubmissions(ctx context.Context, project string) ([]Submission, error)

	// RecordSubmission appends one submission record. Never updates in place.
	RecordSubmission(ctx context.Context, rec Record) error

	// ResolveManifest returns the urls and checksums of the first record
	// matching (project, name, version) across both directions. Re-publishing
	// the same name and version creates additional records sharing the
	// triple, and which of them is returned is then unspecified.
	ResolveManifest(ctx context.Context, project, name, version string) (urls, checksums []string, err error)

	Close() error
}
