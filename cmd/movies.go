package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"

	"github.com/spf13/cobra"
)

var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "Inspect or edit the stored catalog without the server",
}

var moviesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the stored movies in insertion order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.Close()

		movies := rt.app.Service.Catalog.List(cmd.Context())
		out := cmd.OutOrStdout()
		if len(movies) == 0 {
			fmt.Fprintln(out, "No movies loaded.")
			return nil
		}

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tGENRE\tYEAR\tREVIEW")
		for _, m := range movies {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", m.ID, m.Title, m.Genre, m.Year, m.Review)
		}
		return tw.Flush()
	},
}

var addDraft request.MovieDraft

var moviesAddCmd = &cobra.Command{
	Use:     "add",
	Short:   "Validate and store a new movie",
	Example: `  movie-catalog movies add --title Titanic --genre Drama --year 1997-12-19 --review "Great film"`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.Close()

		movie, err := rt.app.Service.Catalog.Submit(cmd.Context(), addDraft)
		var verr *usecase.ValidationError
		if errors.As(err, &verr) {
			for _, msg := range verr.Messages {
				fmt.Fprintln(cmd.ErrOrStderr(), "-", msg)
			}
			return errors.New("movie not saved")
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s, %d) as %s\n", movie.Title, movie.Genre, movie.Year, movie.ID)
		return nil
	},
}

var moviesRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a movie by id; unknown ids are ignored",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.Close()

		removed, err := rt.app.Service.Catalog.Remove(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if removed {
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "No movie with id %s\n", args[0])
		}
		return nil
	},
}

func init() {
	moviesAddCmd.Flags().StringVar(&addDraft.Title, "title", "", "movie title")
	moviesAddCmd.Flags().StringVar(&addDraft.Genre, "genre", "", "one of Action, Comedy, Drama, Horror, Science Fiction, Romance")
	moviesAddCmd.Flags().StringVar(&addDraft.Year, "year", "", "release date as YYYY, YYYY-MM or YYYY-MM-DD")
	moviesAddCmd.Flags().StringVar(&addDraft.Review, "review", "", "short review, at most 50 characters")

	moviesCmd.AddCommand(moviesListCmd, moviesAddCmd, moviesRemoveCmd)
}
