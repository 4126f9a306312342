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

	"github.com/continusec/librarian/internal/config"
	"github.com/jessevdk/go-flags"
)

var _ flags.Commander = &InitCommand{}

type InitCommand struct {
	CatalogOptions
}

func (rc *InitCommand) Execute(args []string) error {
	p, err := rc.configPath()
	if err != nil {
		return err
	}
	if err := config.Init(p); err != nil {
		return err
	}
	fmt.Printf("Created librarian config at %s\n", p)
	return nil
}
