package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/fincontrol/fincontrol/internal/budget"
	"github.com/fincontrol/fincontrol/internal/cli"
)

func cardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Manage credit cards",
		Long:  `List, add, and delete the credit cards that card expenses bill against.`,
	}

	cmd.AddCommand(listCardsCmd())
	cmd.AddCommand(addCardCmd())
	cmd.AddCommand(deleteCardCmd())

	return cmd
}

func listCardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all cards",
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

			if len(state.Cards) == 0 {
				fmt.Println(cli.InfoStyle.Render("No cards found. Use 'fincontrol cards add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Name"))
			fmt.Fprintf(w, "%s\t%s\n",
				strings.Repeat("-", 36),
				strings.Repeat("-", 20))

			for _, card := range state.Cards {
				fmt.Fprintf(w, "%s\t%s %s\n", card.ID, cli.CardIcon, card.Name)
			}

			return nil
		},
	}
}

func addCardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ledgerSvc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			card, err := ledgerSvc.AddCard(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to add card: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added card %q (%s)", card.Name, card.ID)))
			return nil
		},
	}
}

func deleteCardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a card",
		Long:  `Delete a card. Installments already billed against it keep their card reference.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			if budget.CardInUse(state, args[0]) {
				fmt.Println(cli.FormatWarning("Card is still referenced by existing installments; they keep the reference."))
			}

			if err := ledgerSvc.RemoveCard(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete card: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Card deleted"))
			return nil
		},
	}
}
