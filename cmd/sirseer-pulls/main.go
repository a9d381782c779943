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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	relaierrors "github.com/sirseerhq/sirseer-pulls/internal/errors"
	"github.com/sirseerhq/sirseer-pulls/pkg/version"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sirseer-pulls",
		Short: "List the pull requests active in a date window",
		Long: `sirseer-pulls lists the pull requests of a GitHub repository that were
created, updated, merged or closed between two dates, and prints each one as
{id, state, title, user, created_at}.`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	rootCmd.AddCommand(newFetchCommand())
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(mapErrorToExitCode(err))
	}
}

// errorMessage formats err for the terminal. A failed repository lookup
// prints its message as is.
func errorMessage(err error) string {
	var lookupErr *relaierrors.RepoLookupError
	if errors.As(err, &lookupErr) {
		return lookupErr.Error()
	}
	return "Error: " + err.Error()
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, relaierrors.ErrRepoNotFound) ||
		errors.Is(err, relaierrors.ErrInvalidToken) ||
		errors.Is(err, relaierrors.ErrListingNotFound) ||
		errors.Is(err, relaierrors.ErrRateLimit) {
		return 2
	}

	if errors.Is(err, relaierrors.ErrNetworkFailure) {
		return 3
	}

	return 1
}
