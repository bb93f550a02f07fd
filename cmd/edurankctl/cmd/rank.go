package cmd

import (
	"fmt"
	"net/url"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edurank-nepal/api/internal/catalog"
	"github.com/edurank-nepal/api/internal/ranking"
)

func newRankCmd(c *cli) *cobra.Command {
	var (
		catalogFile string
		sortKey     string
		limit       int
		minFee      int64
		maxFee      int64
		params      = map[string]*string{}
		lists       = map[string]*[]string{}
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Preview match scores for a search",
		Long: `Rank loads the catalog the way the API does, applies the filters and prints
the ordered results with their match scores. PREMIUM listings come first.`,
		Example: `  edurankctl rank --type SCHOOL --city Lalitpur --max-fee 300000 --facility Library,Transport
  edurankctl rank --type CONSULTANCY --dest USA --sort rating`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			query := url.Values{}
			for key, v := range params {
				if *v != "" {
					query.Set(key, *v)
				}
			}
			for key, v := range lists {
				for _, item := range *v {
					query.Add(key, item)
				}
			}
			if cmd.Flags().Changed("min-fee") {
				query.Set("minFee", strconv.FormatInt(minFee, 10))
			}
			if cmd.Flags().Changed("max-fee") {
				query.Set("maxFee", strconv.FormatInt(maxFee, 10))
			}
			filter := ranking.FilterFromQuery(query)

			list := catalog.NewLoader(catalogFile, c.logger.Named("catalog")).Load(cmd.Context())
			matched := list[:0:0]
			for _, inst := range list {
				if ranking.Matches(inst, filter) {
					matched = append(matched, inst)
				}
			}
			scored := ranking.Score(matched, filter)
			ranking.SortInstitutions(scored, ranking.ParseSortKey(sortKey))
			if limit > 0 && len(scored) > limit {
				scored = scored[:limit]
			}
			c.logger.Debug("ranked", zap.Int("catalog", len(list)), zap.Int("matched", len(matched)))

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "#\tMATCH\tNAME\tTYPE\tTIER\tCITY\tANNUAL FEE\tRATING")
			for i, s := range scored {
				inst := s.Institution
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%d\t%.1f\n",
					i+1, s.MatchScore, inst.Name, inst.Type, inst.Tier, inst.City, inst.AnnualFee(), inst.Rating)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d institutions matched\n", len(matched), len(list))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&catalogFile, "catalog", "data/schools.json", "schools.json to load; the built-in catalog is used if it is missing")
	flags.StringVar(&sortKey, "sort", string(ranking.SortMatch), "Order within a tier: match, rating, fees_low, fees_high")
	flags.IntVar(&limit, "limit", 20, "Maximum rows printed (0 for all)")
	flags.Int64Var(&minFee, "min-fee", 0, "Minimum annual fee in NPR")
	flags.Int64Var(&maxFee, "max-fee", ranking.DefaultMaxBudget, "Maximum annual fee in NPR")

	for _, p := range []struct{ flag, key, usage string }{
		{"q", "q", "Free-text query over name, city, address and programs"},
		{"type", "type", "Institution type, e.g. SCHOOL or CONSULTANCY"},
		{"city", "city", "City"},
	} {
		params[p.key] = flags.String(p.flag, "", p.usage)
	}
	for _, l := range []struct{ flag, key, usage string }{
		{"facility", "facility", "Required facilities"},
		{"affiliation", "affiliation", "Affiliations"},
		{"program", "program", "Programs"},
		{"safety", "safety", "Safety features"},
		{"dest", "dest", "Study destinations"},
	} {
		lists[l.key] = flags.StringSlice(l.flag, nil, l.usage)
	}
	return cmd
}
