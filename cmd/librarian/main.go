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

package main

import (
	"github.com/continusec/librarian/internal/app"
	"github.com/continusec/librarian/internal/librarian"
)

func main() {
	opts := &struct {
		app.FlagsCommon
		Init         librarian.InitCommand            `command:"init" description:"Create the initial config file"`
		SetAWSCred   librarian.SetAWSCredCommand      `command:"set-aws-cred" description:"Store an AWS credential pair in the config file"`
		SetMySQLCred librarian.SetMySQLCredCommand    `command:"set-mysql-cred" description:"Store MySQL connection info in the config file"`
		ListCreds    librarian.ListCredentialsCommand `command:"list-credentials" description:"List all known credentials"`
		ListProjects librarian.ListProjectsCommand    `command:"list-projects" description:"List all projects"`
		List         librarian.ListCommand            `command:"list" description:"List all datasets in a project"`
		Create       librarian.CreateCommand          `command:"create" description:"Create a new project"`
		Publish      librarian.PublishCommand         `command:"publish" description:"Publish a file or directory to a project"`
		Get          librarian.GetCommand             `command:"get" description:"Fetch all files of a dataset version into a directory"`
	}{}
	// not 100% clear to me why we need to wrap opts.FlagsCommon.Apply, but I suspect it's because the value changes
	// and it's not a proper pointer? Anyway this works, and not doing so doesn't.
	app.RunWithFlags(opts, func() error { return opts.FlagsCommon.Apply() }, func() error { return opts.FlagsCommon.OnShutdown() })
}
