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

	"github.com/jessevdk/go-flags"
)

var (
	_ flags.Commander = &ListProjectsCommand{}
	_ flags.Commander = &ListCommand{}
	_ flags.Commander = &CreateCommand{}
)

type ListProjectsCommand struct {
	CatalogOptions
}

func (rc *ListProjectsCommand) Execute(args []string) (retErr error) {
	ctx := context.Background()
	l, err := rc.MakeLedger(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := l.Close(); err != nil && retErr == nil {
			retErr = err
		}
	}()

	names, err := l.ListProjects(ctx)
	if err != nil {
		return err
	}
	fmt.Println("List of all known projects:")
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

type ListCommand struct {
	CatalogOptions

	Args struct {
		Project string `positional-arg-name:"project"`
	} `positional-args:"yes" required:"yes"`
}

func (rc *ListCommand) Execute(args []string) (retErr error) {
	ctx := context.Background()
	l, err := rc.MakeLedger(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := l.Close(); err != nil && retErr == nil {
			retErr = err
		}
	}()

	subs, err := l.ListSubmissions(ctx, rc.Args.Project)
	if err != nil {
		return err
	}
	fmt.Printf("List of all datasets in project %s:\n", rc.Args.Project)
	for _, s := range subs {
		fmt.Printf("%-25s %-8s %s\n", s.Name, s.Version, s.Timestamp)
	}
	return nil
}

type CreateCommand struct {
	CatalogOptions

	Args struct {
		Project string `positional-arg-name:"project"`
		Comment string `positional-arg-name:"comment"`
	} `positional-args:"yes" required:"yes"`
}

func (rc *CreateCommand) Execute(args []string) (retErr error) {
	ctx := context.Background()
	l, err := rc.MakeLedger(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := l.Close(); err != nil && retErr == nil {
			retErr = err
		}
	}()

	if err := l.CreateProject(ctx, rc.Args.Project, rc.Args.Comment); err != nil {
		return err
	}
	fmt.Printf("Created project %s\n", rc.Args.Project)
	return nil
}
