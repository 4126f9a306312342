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
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/danjacques/gofslock/fslock"
)

var (
	ErrConfigMissing      = errors.New("librarian config file does not exist - run librarian init to create it")
	ErrConfigExists       = errors.New("librarian config file already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type MySQLCredentials struct {
	Host     string
	Port     int
	User     string
	Password string
}

type ObjectStoreCredentials struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
}

// Provider gives the catalog its collaborator credentials. Backed by a local
// JSON document in the default implementation, faked in tests.
type Provider interface {
	MySQLCredentials() (MySQLCredentials, error)
	ObjectStoreCredentials() (ObjectStoreCredentials, error)
	SetCredential(name string, fields map[string]string) error
	Credentials() map[string]map[string]string
}

type document struct {
	Credentials map[string]map[string]string `json:"credentials"`
}

// File is a Provider reading and rewriting a config document on disk.
type File struct {
	path string
	doc  document
}

var _ Provider = &File{}

// DefaultPath is where the config document lives unless --config says
// otherwise.
func DefaultPath() (string, error) {
	p, err := xdg.ConfigFile("librarian/config.json")
	if err != nil {
		return "", fmt.Errorf("error getting config path with xdg: %w", err)
	}
	return p, nil
}

// Init writes an empty config document at path, failing if one exists.
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error checking for existing config: %w", err)
	}
	f := &File{
		path: path,
		doc:  document{Credentials: make(map[string]map[string]string)},
	}
	return f.save()
}

func Load(path string) (*File, error) {
	bb, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w (looked at %s)", ErrConfigMissing, path)
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	rv := &File{path: path}
	if err := json.Unmarshal(bb, &rv.doc); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	if rv.doc.Credentials == nil {
		rv.doc.Credentials = make(map[string]map[string]string)
	}
	return rv, nil
}

func (f *File) Credentials() map[string]map[string]string {
	return f.doc.Credentials
}

// SetCredential replaces the named credential block and rewrites the whole
// document. An exclusive lock is held for the duration so concurrent updates
// don't clobber each other, and the file is replaced by rename.
func (f *File) SetCredential(name string, fields map[string]string) (retErr error) {
	lockPath := f.path + ".lock"
	lock, err := fslock.Lock(lockPath)
	if err != nil {
		return fmt.Errorf("error getting lock on config file (%s): %w", f.path, err)
	}
	defer func() {
		if err := lock.Unlock(); err != nil && retErr == nil {
			retErr = fmt.Errorf("error releasing config lock: %w", err)
		}
		if err := os.Remove(lockPath); err != nil && retErr == nil {
			retErr = err
		}
	}()

	f.doc.Credentials[name] = fields
	return f.save()
}

func (f *File) save() error {
	bb, err := json.MarshalIndent(&f.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("error creating config dir: %w", err)
	}

	// write to a temp file in the same dir, then rename over the target so
	// readers never see a torn document
	tf, err := os.CreateTemp(filepath.Dir(f.path), "tmp")
	if err != nil {
		return fmt.Errorf("error creating temp config file: %w", err)
	}
	if _, err := tf.Write(bb); err != nil {
		_ = tf.Close()
		_ = os.Remove(tf.Name())
		return fmt.Errorf("error writing temp config file: %w", err)
	}
	if err := tf.Close(); err != nil {
		_ = os.Remove(tf.Name())
		return fmt.Errorf("error closing temp config file: %w", err)
	}
	if err := os.Rename(tf.Name(), f.path); err != nil {
		_ = os.Remove(tf.Name())
		return fmt.Errorf("error replacing config file: %w", err)
	}
	return nil
}

func (f *File) credential(name string, required []string) (map[string]string, error) {
	cred, ok := f.doc.Credentials[name]
	if !ok {
		return nil, fmt.Errorf("%w: no %q credential in config - run librarian set-%s-cred", ErrInvalidCredentials, name, name)
	}
	for _, k := range required {
		if cred[k] == "" {
			return nil, fmt.Errorf("%w: %q credential is missing field %q", ErrInvalidCredentials, name, k)
		}
	}
	return cred, nil
}

func (f *File) MySQLCredentials() (MySQLCredentials, error) {
	cred, err := f.credential("mysql", []string{"host", "port", "user", "password"})
	if err != nil {
		return MySQLCredentials{}, err
	}
	port, err := strconv.Atoi(cred["port"])
	if err != nil {
		return MySQLCredentials{}, fmt.Errorf("%w: bad mysql port %q: %v", ErrInvalidCredentials, cred["port"], err)
	}
	return MySQLCredentials{
		Host:     cred["host"],
		Port:     port,
		User:     cred["user"],
		Password: cred["password"],
	}, nil
}

func (f *File) ObjectStoreCredentials() (ObjectStoreCredentials, error) {
	cred, err := f.credential("aws", []string{"access_key_id", "secret_access_key", "region", "bucket"})
	if err != nil {
		return ObjectStoreCredentials{}, err
	}
	return ObjectStoreCredentials{
		AccessKeyID:     cred["access_key_id"],
		SecretAccessKey: cred["secret_access_key"],
		Region:          cred["region"],
		Bucket:          cred["bucket"],
	}, nil
}
