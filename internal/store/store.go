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

package store

import (
	"context"
	"errors"
)

var (
	ErrStoreUnavailable = errors.New("object store not available")
	ErrUploadFailed     = errors.New("upload failed")
	ErrRetrievalFailed  = errors.New("retrieval failed")
)

type Store interface {
	// Upload streams the file at localPath to key in the backing bucket and
	// returns a URL that resolves without further authentication.
	Upload(ctx context.Context, localPath, key string) (string, error)

	// Download retrieves url and writes it to localPath, creating parent
	// directories as needed.
	Download(ctx context.Context, url, localPath string) error
}
