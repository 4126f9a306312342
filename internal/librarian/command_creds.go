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
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"
)

var (
	_ flags.Commander = &SetAWSCredCommand{}
	_ flags.Commander = &SetMySQLCredCommand{}
	_ flags.Commander = &ListCredentialsCommand{}
)

type SetAWSCredCommand struct {
	CatalogOptions

	Region string `long:"region" default:"us-east-1" description:"AWS region the bucket lives in"`
	Bucket string `long:"bucket" default:"librarian-upload-test" description:"S3 bucket holding published data"`

	Args struct {
		AccessKeyID     string `positional-arg-name:"access-key-id"`
		SecretAccessKey string `positional-arg-name:"secret-access-key"`
	} `positional-args:"yes" required:"yes"`
}

func (rc *SetAWSCredCommand) Execute(args []string) error {
	cfg, err := rc.loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.SetCredential("aws", map[string]string{
		"access_key_id":     rc.Args.AccessKeyID,
		"secret_access_key": rc.Args.SecretAccessKey,
		"region":            rc.Region,
		"bucket":            rc.Bucket,
	}); err != nil {
		return fmt.Errorf("error saving aws credential: %w", err)
	}
	fmt.Println("Stored aws credential")
	return nil
}

type SetMySQLCredCommand struct {
	CatalogOptions

	Args struct {
		Host     string `positional-arg-name:"host"`
		Port     int    `positional-arg-name:"port"`
		User     string `positional-arg-name:"user"`
		Password string `positional-arg-name:"password"`
	} `positional-args:"yes" required:"yes"`
}

func (rc *SetMySQLCredCommand) Execute(args []string) error {
	cfg, err := rc.loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.SetCredential("mysql", map[string]string{
		"host":     rc.Args.Host,
		"port":     strconv.Itoa(rc.Args.Port),
		"user":     rc.Args.User,
		"password": rc.Args.Password,
	}); err != nil {
		return fmt.Errorf("error saving mysql credential: %w", err)
	}
	fmt.Println("Stored mysql credential")
	return nil
}

type ListCredentialsCommand struct {
	CatalogOptions
}

func (rc *ListCredentialsCommand) Execute(args []string) error {
	cfg, err := rc.loadConfig()
	if err != nil {
		return err
	}
	creds := cfg.Credentials()
	fmt.Printf("There are %d credential(s) available\n", len(creds))

	names := make([]string, 0, len(creds))
	for name := range creds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fields := make([]string, 0, len(creds[name]))
		for k := range creds[name] {
			fields = append(fields, k)
		}
		sort.Strings(fields)
		fmt.Printf("  %s: %s\n", name, strings.Join(fields, ", "))
	}
	return nil
}
