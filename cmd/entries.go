package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/kinolist/catalog"
	"github.com/s0up4200/kinolist/filter"
	"github.com/s0up4200/kinolist/page"
)

var (
	listFilter  string
	listDetails bool

	// listFilterExamples are shown in the list help
	listFilterExamples = []string{
		`Rating >= 8`,
		`hasText(Title, "alien")`,
		`Title startsWith "The" and Rating > 5`,
		`Description == ""`,
	}

	entryTitle       string
	entryPoster      string
	entryRating      string
	entryDescription string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List rated movies",
	Long:  listLongHelp(),
	RunE:  runList,
}

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one rated movie",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a rated movie",
	Long: `Add a movie to the collection. Title, poster, rating and description are
all required; the title is at most 30 characters and the rating is a number
from 1 to 10.`,
	RunE: runAdd,
}

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a rated movie",
	Long:  `Edit a movie in the collection. Only the flags you pass are changed.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete ID...",
	Short: "Delete rated movies",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(listCmd, showCmd, addCmd, editCmd, deleteCmd)

	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "filter expression")
	listCmd.Flags().BoolVarP(&listDetails, "details", "d", false, "show poster, description and id")

	for _, c := range []*cobra.Command{addCmd, editCmd} {
		c.Flags().StringVar(&entryTitle, "title", "", "movie title")
		c.Flags().StringVar(&entryPoster, "poster", "", "poster image URL")
		c.Flags().StringVar(&entryRating, "rating", "", "rating from 1 to 10")
		c.Flags().StringVar(&entryDescription, "description", "", "free-form description")
	}
}

func listLongHelp() string {
	var sb strings.Builder
	sb.WriteString("List every rated movie in the collection.\n\n")
	sb.WriteString("hasText, beginsWith and finishesWith ignore case; the contains,\n")
	sb.WriteString("startsWith and endsWith operators do not.\n\nFilter examples:")
	for _, example := range listFilterExamples {
		fmt.Fprintf(&sb, "\n  --filter '%s'", example)
	}
	return sb.String()
}

func runList(cmd *cobra.Command, args []string) error {
	compiled, err := filter.NewCompiler(cfg.Filter.CacheSize).Compile(listFilter)
	if err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}

	entries, err := catalogClient.ListAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list movies: %w", err)
	}

	matched := filter.Apply(compiled, entries)
	logger.Debug().Int("total", len(entries)).Int("matched", len(matched)).Str("filter", compiled.String()).Msg("Listed movies")

	fmt.Fprint(cmd.OutOrStdout(), catalog.NewConsoleFormatter(listDetails).FormatEntryList(matched))
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	p := newPage()
	if res := p.SelectForDetail(cmd.Context(), args[0]); !res.OK() {
		return fmt.Errorf("failed to fetch movie: %w", res.Failure())
	}

	fmt.Fprint(cmd.OutOrStdout(), catalog.NewConsoleFormatter(true).FormatEntry(*p.State().Selected))
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	p := newPage()
	p.SetField(page.FieldTitle, entryTitle)
	p.SetField(page.FieldPoster, entryPoster)
	p.SetField(page.FieldRating, entryRating)
	p.SetField(page.FieldDescription, entryDescription)

	res := p.Submit(cmd.Context())
	if !res.OK() {
		return fmt.Errorf("failed to add movie: %w", res.Failure())
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Added %q (ID: %s)\n", res.Entry.Title, res.Entry.ID)
	fmt.Fprintf(out, "- Rated movies: %d\n", len(p.State().Entries))
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	p := newPage()
	if res := p.Mount(cmd.Context()); !res.OK() {
		return fmt.Errorf("failed to load movies: %w", res.Failure())
	}
	if res := p.StartEdit(args[0]); !res.OK() {
		return res.Failure()
	}

	flags := cmd.Flags()
	changes := map[page.Field]string{
		page.FieldTitle:       entryTitle,
		page.FieldPoster:      entryPoster,
		page.FieldRating:      entryRating,
		page.FieldDescription: entryDescription,
	}
	for _, field := range page.Fields {
		if flags.Changed(string(field)) {
			p.SetField(field, changes[field])
		}
	}

	res := p.Submit(cmd.Context())
	if !res.OK() {
		return fmt.Errorf("failed to update movie: %w", res.Failure())
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated %q (ID: %s)\n", res.Entry.Title, res.Entry.ID)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	result := catalog.RemoveMany(cmd.Context(), catalogClient, args)

	out := cmd.OutOrStdout()
	for _, id := range result.Removed {
		fmt.Fprintf(out, "✓ Deleted %s\n", id)
	}
	for _, failure := range result.Failed {
		fmt.Fprintf(out, "✗ %s\n", failure.Error())
	}

	if entries, err := catalogClient.ListAll(cmd.Context()); err != nil {
		logger.Warn().Err(err).Msg("Failed to refresh movies after delete")
	} else {
		fmt.Fprintf(out, "- Rated movies: %d\n", len(entries))
	}

	if len(result.Failed) > 0 {
		return fmt.Errorf("failed to delete %d of %d movies", len(result.Failed), result.Requested)
	}
	return nil
}
