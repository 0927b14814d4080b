package cli

import (
	"fmt"

	"github.com/alexanderramin/shopfloor/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newGuideCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "guide",
		Aliases: []string{"faq"},
		Short:   "Browse the team guide",
	}

	var category string
	list := &cobra.Command{
		Use:   "list",
		Short: "List guide questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := a.Guide.List(category)
			if len(items) == 0 && category != "" {
				return fmt.Errorf("no guide entries in category %q (categories: %v)", category, a.Guide.Categories())
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatFAQList(items))
			return nil
		},
	}
	list.Flags().StringVarP(&category, "category", "c", "", "Only this category")

	show := &cobra.Command{
		Use:   "show ID",
		Short: "Show the answer to a guide question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := a.Guide.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatFAQ(item))
			return nil
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}
