package admincmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/SscSPs/bizdesk/internal/roles"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newRolesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Inspect the role catalog",
	}

	var format, file string
	list := &cobra.Command{
		Use:   "list",
		Short: "List roles and their permissions",
		Long: `List the role catalog. Signup takes the role id shown here.

Examples:
  bizadmin roles list
  bizadmin roles list --format yaml
  bizadmin roles list --file ./catalog.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := roles.Default()
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("failed to read catalog: %w", err)
				}
				if dir, err = roles.Parse(data); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			switch format {
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				defer enc.Close()
				return enc.Encode(map[string]any{"roles": dir.All()})
			case "table", "":
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tTYPE\tNAME\tPERMISSIONS")
				for _, r := range dir.All() {
					perms := make([]string, len(r.Permissions))
					for i, p := range r.Permissions {
						perms[i] = string(p)
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, r.Type, r.Name, strings.Join(perms, ","))
				}
				return tw.Flush()
			}
			return fmt.Errorf("unknown format %q, want table or yaml", format)
		},
	}
	list.Flags().StringVar(&format, "format", "table", "output format: table or yaml")
	list.Flags().StringVar(&file, "file", "", "validate and list this catalog instead of the embedded one")

	cmd.AddCommand(list)
	return cmd
}
