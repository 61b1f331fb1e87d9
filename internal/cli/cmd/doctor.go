package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/wui/internal/application/usecase"
	"github.com/bnema/wui/internal/cli/styles"
	"github.com/bnema/wui/internal/infrastructure/deps"
	"github.com/bnema/wui/internal/infrastructure/webkit"
)

var doctorPrefix string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the native libraries needed by the webkit engine",
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().StringVar(&doctorPrefix, "prefix", "", "custom runtime prefix (e.g. /opt/webkitgtk)")
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	uc := usecase.NewCheckRuntimeDependenciesUseCase(deps.NewPkgConfigProbe())
	out, err := uc.Execute(app.Ctx(), usecase.CheckRuntimeDependenciesInput{Prefix: doctorPrefix})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewDoctorRenderer(app.Theme).Render(out, webkit.Available()))
	if !out.OK {
		return fmt.Errorf("runtime requirements not met")
	}
	return nil
}
