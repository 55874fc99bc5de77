package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/fincontrol/fincontrol/internal/cli"
	"github.com/fincontrol/fincontrol/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage income and expense categories",
		Long:  `List, add, and delete the categories incomes and expenses are grouped by.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			ledgerSvc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			state, err := ledgerSvc.State(ctx)
			if err != nil {
				return err
			}

			if len(state.Categories) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categories found. Use 'fincontrol categories add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Name"),
				headerStyle.Render("Type"))
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				strings.Repeat("-", 36),
				strings.Repeat("-", 20),
				strings.Repeat("-", 8))

			for _, cat := range state.Categories {
				fmt.Fprintf(w, "%s\t%s\t%s\n", cat.ID, cat.Name, cat.Type)
			}

			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var categoryType string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ledgerSvc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			category, err := ledgerSvc.AddCategory(ctx, args[0], model.CategoryType(categoryType))
			if err != nil {
				return fmt.Errorf("failed to add category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s category %q", category.Type, category.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryType, "type", "expense", "category type (income, expense)")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long: `Delete a category. When records still reference it you are asked to
confirm; deleting leaves those references dangling rather than cascading.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ledgerSvc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			confirm := func() bool {
				if force {
					return true
				}
				fmt.Println(cli.FormatWarning("Category is still referenced by existing records."))
				reader := cli.NewNonBlockingReader(os.Stdin)
				return cli.Confirm(ctx, reader, os.Stdout, "Delete anyway?")
			}

			deleted, err := ledgerSvc.RemoveCategory(ctx, args[0], confirm)
			if err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}
			if !deleted {
				fmt.Println(cli.InfoStyle.Render("Category kept."))
				return nil
			}

			fmt.Println(cli.FormatSuccess("Category deleted"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "delete without confirmation even when in use")

	return cmd
}
