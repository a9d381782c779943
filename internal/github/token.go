// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package github

import "os"

// TokenSource supplies the credential attached to outgoing requests.
// An empty token means the request is sent anonymously.
type TokenSource interface {
	Token() string
}

// EnvToken reads the named environment variable on every call, so a value
// changed between requests takes effect on the next one.
type EnvToken string

// Token implements TokenSource.
func (e EnvToken) Token() string {
	if e == "" {
		return ""
	}
	return os.Getenv(string(e))
}

// StaticToken is a fixed credential, typically from the --token flag.
type StaticToken string

// Token implements TokenSource.
func (s StaticToken) Token() string {
	return string(s)
}
