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

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAndLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")

	_, err := Load(p)
	assert.ErrorIs(t, err, ErrConfigMissing)

	require.NoError(t, Init(p))
	assert.ErrorIs(t, Init(p), ErrConfigExists)

	f, err := Load(p)
	require.NoError(t, err)
	assert.Empty(t, f.Credentials())
}

func TestSetCredentialRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, Init(p))

	f, err := Load(p)
	require.NoError(t, err)
	require.NoError(t, f.SetCredential("mysql", map[string]string{
		"host":     "db.example.com",
		"port":     "3306",
		"user":     "librarian",
		"password": "hunter2",
	}))
	require.NoError(t, f.SetCredential("aws", map[string]string{
		"access_key_id":     "AKIAEXAMPLE",
		"secret_access_key": "secret",
		"region":            "us-east-1",
		"bucket":            "librarian-data",
	}))

	// re-load from disk and check both typed views
	f2, err := Load(p)
	require.NoError(t, err)

	mc, err := f2.MySQLCredentials()
	require.NoError(t, err)
	assert.Equal(t, MySQLCredentials{Host: "db.example.com", Port: 3306, User: "librarian", Password: "hunter2"}, mc)

	sc, err := f2.ObjectStoreCredentials()
	require.NoError(t, err)
	assert.Equal(t, "librarian-data", sc.Bucket)
	assert.Equal(t, "us-east-1", sc.Region)
}

func TestMissingOrPartialCredentials(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, Init(p))

	f, err := Load(p)
	require.NoError(t, err)

	_, err = f.MySQLCredentials()
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, f.SetCredential("mysql", map[string]string{
		"host": "db.example.com",
		"port": "3306",
		"user": "librarian",
		// no password
	}))
	_, err = f.MySQLCredentials()
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, f.SetCredential("mysql", map[string]string{
		"host":     "db.example.com",
		"port":     "not-a-port",
		"user":     "librarian",
		"password": "hunter2",
	}))
	_, err = f.MySQLCredentials()
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
