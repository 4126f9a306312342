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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// label-free counters with the librarian_ prefix so the app shutdown hook can
// dump them in simple key=value form
var (
	filesUploaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "librarian_files_uploaded_total",
		Help: "Number of files uploaded to the object store.",
	})
	bytesUploaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "librarian_bytes_uploaded_total",
		Help: "Total bytes uploaded to the object store.",
	})
	filesDownloaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "librarian_files_downloaded_total",
		Help: "Number of files downloaded from the object store.",
	})
	bytesDownloaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "librarian_bytes_downloaded_total",
		Help: "Total bytes downloaded from the object store.",
	})
	submissionsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "librarian_submissions_recorded_total",
		Help: "Number of submission records committed to the ledger.",
	})
)
