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

	"github.com/continusec/librarian/internal/catalog"
	"github.com/jessevdk/go-flags"
)

var _ flags.Commander = &GetCommand{}

type GetCommand struct {
	CatalogOptions

	Args struct {
		Project string `positional-arg-name:"project"`
		Dataset string `positional-arg-name:"dataset"`
		Version string `positional-arg-name:"version"`
		Dir     string `positional-arg-name:"dir"`
	} `positional-args:"yes" required:"yes"`
}

func (rc *GetCommand) Execute(args []string) (retErr error) {
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

	s, err := rc.MakeStore(ctx)
	if err != nil {
		return err
	}

	if err := catalog.NewFetcher(l, s).Fetch(ctx, rc.Args.Project, rc.Args.Dataset, rc.Args.Version, rc.Args.Dir); err != nil {
		return err
	}
	fmt.Printf("Files stored in the directory %s\n", rc.Args.Dir)
	return nil
}
