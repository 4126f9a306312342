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

package librarian

import (
	"path/filepath"
	"testing"

	"github.com/continusec/librarian/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitThenSetCredentials(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")

	ic := &InitCommand{}
	ic.ConfigFile = p
	require.NoError(t, ic.Execute(nil))

	// init again must refuse
	assert.ErrorIs(t, ic.Execute(nil), config.ErrConfigExists)

	mc := &SetMySQLCredCommand{}
	mc.ConfigFile = p
	mc.Args.Host = "db.example.com"
	mc.Args.Port = 3306
	mc.Args.User = "librarian"
	mc.Args.Password = "hunter2"
	require.NoError(t, mc.Execute(nil))

	ac := &SetAWSCredCommand{}
	ac.ConfigFile = p
	ac.Region = "us-east-1"
	ac.Bucket = "librarian-data"
	ac.Args.AccessKeyID = "AKIAEXAMPLE"
	ac.Args.SecretAccessKey = "secret"
	require.NoError(t, ac.Execute(nil))

	cfg, err := config.Load(p)
	require.NoError(t, err)

	mysql, err := cfg.MySQLCredentials()
	require.NoError(t, err)
	assert.Equal(t, "db.example.com", mysql.Host)
	assert.Equal(t, 3306, mysql.Port)

	aws, err := cfg.ObjectStoreCredentials()
	require.NoError(t, err)
	assert.Equal(t, "librarian-data", aws.Bucket)
}

func TestCommandsWithoutConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.json")

	lc := &ListCredentialsCommand{}
	lc.ConfigFile = missing
	assert.ErrorIs(t, lc.Execute(nil), config.ErrConfigMissing)

	mc := &SetMySQLCredCommand{}
	mc.ConfigFile = missing
	assert.ErrorIs(t, mc.Execute(nil), config.ErrConfigMissing)
}
