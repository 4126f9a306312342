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
	"github.com/continusec/librarian/internal/ledger"
	"github.com/jessevdk/go-flags"
)

var _ flags.Commander = &PublishCommand{}

type PublishCommand struct {
	CatalogOptions

	Type string `long:"type" choice:"in" choice:"out" required:"yes" description:"Whether the data is incoming or outgoing"`

	Args struct {
		Path    string `positional-arg-name:"path"`
		Project string `positional-arg-name:"project"`
		Name    string `positional-arg-name:"name"`
		Version string `positional-arg-name:"version"`
		Comment string `positional-arg-name:"comment"`
	} `positional-args:"yes" required:"yes"`
}

func (rc *PublishCommand) Execute(args []string) (retErr error) {
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

	if err := catalog.NewPublisher(l, s).Publish(ctx, catalog.PublishRequest{
		LocalPath: rc.Args.Path,
		Project:   rc.Args.Project,
		Dataset:   rc.Args.Name,
		Version:   rc.Args.Version,
		Comment:   rc.Args.Comment,
		Direction: ledger.Direction(rc.Type),
	}); err != nil {
		return err
	}
	fmt.Println("File(s) successfully uploaded")
	return nil
}
