package cli

import (
	"errors"
	"fmt"

	"github.com/ayushukla02/panda-react-library/internal/config"
	"github.com/ayushukla02/panda-react-library/internal/doctor"
	"github.com/spf13/cobra"
)

var checkManifest string

func init() {
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a package.json file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that node, npm and git are available",
	Long: `Run diagnostic checks on the tools a scaffolding run depends on. The Node.js
version is checked against the node_constraint setting.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Toolchain check:")
		d := &doctor.Doctor{
			NodeConstraint: config.Get(config.KeyNodeConstraint),
			Runner:         newRunner(out, cmd.ErrOrStderr()),
		}
		checks := d.Run(cmd.Context())
		doctor.Print(out, checks)

		if checkManifest != "" {
			fmt.Fprintf(out, "Manifest validation: %s\n", checkManifest)
			mc := doctor.CheckManifest(checkManifest)
			doctor.Print(out, mc)
			checks = append(checks, mc...)
		}

		if doctor.Failed(checks) {
			return errors.New("doctor found problems")
		}
		return nil
	},
}
