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
	"context"
	"fmt"

	"github.com/continusec/librarian/internal/config"
	"github.com/continusec/librarian/internal/ledger"
	"github.com/continusec/librarian/internal/ledger/mysqlledger"
	"github.com/continusec/librarian/internal/store"
	"github.com/continusec/librarian/internal/store/s3store"
	"github.com/sirupsen/logrus"
)

// CatalogOptions is embedded by every command that needs the config document
// or the collaborators built from it.
type CatalogOptions struct {
	ConfigFile string `long:"config" description:"Location of the librarian config file. Defaults to the XDG config dir."`
}

func (o *CatalogOptions) configPath() (string, error) {
	if o.ConfigFile != "" {
		return o.ConfigFile, nil
	}
	return config.DefaultPath()
}

func (o *CatalogOptions) loadConfig() (*config.File, error) {
	p, err := o.configPath()
	if err != nil {
		return nil, err
	}
	logrus.Debugf("loading config from: %s", p)
	return config.Load(p)
}

// MakeLedger opens the MySQL ledger with the configured credentials. Caller
// must Close() it.
func (o *CatalogOptions) MakeLedger(ctx context.Context) (ledger.Ledger, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	creds, err := cfg.MySQLCredentials()
	if err != nil {
		return nil, err
	}
	l, err := mysqlledger.Open(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("error connecting to ledger: %w", err)
	}
	return l, nil
}

func (o *CatalogOptions) MakeStore(ctx context.Context) (store.Store, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	creds, err := cfg.ObjectStoreCredentials()
	if err != nil {
		return nil, err
	}
	s, err := s3store.New(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("error connecting to object store: %w", err)
	}
	return s, nil
}
