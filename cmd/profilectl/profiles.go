package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	profilesvc "github.com/janisto/profile-maps/internal/service/profile"
)

// loadStore builds the directory the server would start with.
func loadStore(ctx context.Context, seedFile string) (*profilesvc.MemoryStore, error) {
	v := profilesvc.NewValidator()
	var (
		seed []profilesvc.Fields
		err  error
	)
	if seedFile != "" {
		seed, err = profilesvc.LoadSeedFile(v, seedFile)
	} else {
		seed, err = profilesvc.DefaultSeed(v)
	}
	if err != nil {
		return nil, err
	}
	store := profilesvc.NewMemoryStore()
	profilesvc.Seed(ctx, store, seed)
	return store, nil
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := loadStore(cmd.Context(), opts.seedFile)
			if err != nil {
				return err
			}
			return printProfiles(cmd.OutOrStdout(), store.List(cmd.Context()))
		},
	}
}

func newSearchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search profiles by name, description or address",
		Long: `Search profiles with a case-insensitive substring match on name,
description and address. Interests and contact details are not searched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd.Context(), opts.seedFile)
			if err != nil {
				return err
			}
			matched := profilesvc.Filter(store.List(cmd.Context()), args[0])
			if len(matched) == 0 {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "No profiles match %q\n", args[0])
				return err
			}
			return printProfiles(cmd.OutOrStdout(), matched)
		},
	}
}

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one profile and its map view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid profile id %q", args[0])
			}
			store, err := loadStore(cmd.Context(), opts.seedFile)
			if err != nil {
				return err
			}
			p, err := store.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			view := profilesvc.ViewFor(&p)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "ID:\t%d\n", p.ID)
			fmt.Fprintf(w, "Name:\t%s\n", p.Name)
			fmt.Fprintf(w, "Description:\t%s\n", p.Description)
			fmt.Fprintf(w, "Address:\t%s\n", p.Address)
			fmt.Fprintf(w, "Coordinates:\t%g, %g\n", p.Coordinates.Latitude, p.Coordinates.Longitude)
			fmt.Fprintf(w, "Interests:\t%s\n", strings.Join(p.Interests, ", "))
			fmt.Fprintf(w, "Email:\t%s\n", p.Contact.Email)
			fmt.Fprintf(w, "Phone:\t%s\n", p.Contact.Phone)
			fmt.Fprintf(w, "Map zoom:\t%d\n", view.Zoom)
			return w.Flush()
		},
	}
}

func newSeedCmd() *cobra.Command {
	seed := &cobra.Command{
		Use:   "seed",
		Short: "Work with seed files",
	}
	seed.AddCommand(&cobra.Command{
		Use:   "check <file>",
		Short: "Validate a seed file",
		Long: `Validate every entry of a seed file with the same rules as the admin
form. Reports the first invalid entry.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := profilesvc.LoadSeedFile(profilesvc.NewValidator(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d profiles OK\n", args[0], len(fields))
			return err
		},
	})
	return seed
}

func printProfiles(out io.Writer, profiles []profilesvc.Profile) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tADDRESS")
	for _, p := range profiles {
		fmt.Fprintf(w, "%d\t%s\t%s\n", p.ID, p.Name, p.Address)
	}
	return w.Flush()
}
