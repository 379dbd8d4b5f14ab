package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// Version is the build version, overridden at link time with
// -ldflags "-X github.com/jakoblorz/go-tasks/internal/cli.Version=v1.2.3"
var Version = "v0.1.0"

const devVersion = "v0.0.0-dev"

// buildVersion returns Version in canonical semver form ("1.2" becomes
// "v1.2.0"); unparseable versions report as a development build
func buildVersion() string {
	v := strings.TrimSpace(Version)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return devVersion
	}
	return semver.Canonical(v)
}

// NewVersionCommand creates a new version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "tasks %s\n", buildVersion())
			return err
		},
	}
}
