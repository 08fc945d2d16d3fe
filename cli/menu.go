package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"momo-pos/models"
	"momo-pos/services"
)

var (
	menuOutFile     string
	templateOutFile string
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Manage the menu catalog",
}

var menuListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		printMenu()
	},
}

var menuImportCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Replace the catalog from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		items := services.ParseMenuCSV(string(content), logger)
		if len(items) == 0 {
			return fmt.Errorf("no valid items found in %s", args[0])
		}
		pos.SetMenuItems(cmd.Context(), items)
		fmt.Printf("Imported %d menu items.\n", len(items))
		return nil
	},
}

var menuExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the catalog as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeCSV(services.ExportMenuToCSV(pos.Menu()), menuOutFile)
	},
}

var menuTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write an import template with one example row",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeCSV(services.MenuCSVTemplate(), templateOutFile)
	},
}

var menuResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default catalog",
	Run: func(cmd *cobra.Command, args []string) {
		pos.ResetMenu(cmd.Context())
		fmt.Printf("Menu reset to %d default items.\n", len(models.DefaultMenu()))
	},
}

func writeCSV(content, outFile string) error {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if outFile == "" {
		fmt.Print(content)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(content), 0o644); err != nil {
		return err
	}
	fmt.Println("Wrote", outFile)
	return nil
}

func init() {
	menuExportCmd.Flags().StringVarP(&menuOutFile, "out", "o", "", "output file (default stdout)")
	menuTemplateCmd.Flags().StringVarP(&templateOutFile, "out", "o", "", "output file (default stdout)")
	menuCmd.AddCommand(menuListCmd, menuImportCmd, menuExportCmd, menuTemplateCmd, menuResetCmd)
}
