package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/wui/internal/domain/entity"
	"github.com/bnema/wui/internal/infrastructure/keymap"
	"github.com/bnema/wui/internal/infrastructure/script"
)

var (
	scriptContextMenu string
	scriptKey         string
	scriptUpdate      bool
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Print the script injected into webview content",
	Long: `Print the bootstrap script a new webview receives, or with --update the
script that re-applies a changed context menu policy.

The bootstrap token is random for every invocation.`,
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(scriptCmd)
	scriptCmd.Flags().StringVar(&scriptContextMenu, "context-menu", entity.PolicyDebug, "context menu policy: always, debug or never")
	scriptCmd.Flags().StringVar(&scriptKey, "key", "", "key code that toggles the context menu (e.g. AltLeft)")
	scriptCmd.Flags().BoolVar(&scriptUpdate, "update", false, "print the policy update script instead of the bootstrap")
}

func runScript(cmd *cobra.Command, _ []string) error {
	menu, err := entity.ParseContextMenu(scriptContextMenu, scriptKey)
	if err != nil {
		return err
	}
	if menu.Key != "" && !keymap.IsKnownCode(string(menu.Key)) {
		return fmt.Errorf("unknown key code %q", menu.Key)
	}

	injector := script.NewContentInjector()
	var src string
	if scriptUpdate {
		src, err = injector.ContextMenuUpdate(menu.Resolve())
	} else {
		src, err = injector.Bootstrap(menu.Resolve())
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), src)
	return err
}
