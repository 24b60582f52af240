package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	response "vehicle_quotation/internal/adapter/http/dto/response"
	"vehicle_quotation/internal/domain/entities"
	"vehicle_quotation/internal/domain/pricing"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// quoteFile is a self-contained quotation: catalog entries are inlined, nothing is
// read from storage.
type quoteFile struct {
	Vehicle        *entities.Vehicle          `json:"vehicle"`
	Variation      *entities.VehicleVariation `json:"variation"`
	Options        []entities.Option          `json:"optionals"`
	FirstQuotation bool                       `json:"first_quotation"`
	Date           string                     `json:"date"`
}

func newPriceCmd(_ *session) *cobra.Command {
	var (
		file     string
		format   string
		resolver string
	)

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price a quotation offline and print the breakdown",
		Long: `Run the pricing pipeline on a quotation file without touching storage.

The optional "date" (YYYY-MM-DD) fixes the pricing clock, which drives the
registration promo and depreciation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatText && format != formatJSON {
				return fmt.Errorf("unknown format %q (use %s or %s)", format, formatText, formatJSON)
			}

			qf, err := readQuoteFile(file)
			if err != nil {
				return err
			}
			now, err := qf.clock()
			if err != nil {
				return err
			}

			base, err := pricing.NewResolver(resolver, now)
			if err != nil {
				return err
			}
			pipeline := pricing.NewPipeline(base, pricing.WithClock(now))
			q := qf.quotation()
			res := pipeline.ComputeFinalPrice(q)
			q.FinalPrice = res.FinalPrice
			priced := entities.PricedQuotation{Quotation: q, Adjustments: res.Adjustments}

			if format == formatJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(response.FromPricedQuotation(priced))
			}
			return printBreakdown(cmd, priced)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "quotation JSON file")
	cmd.Flags().StringVarP(&format, "format", "o", formatText, "output format (text, json)")
	cmd.Flags().StringVar(&resolver, "resolver", pricing.ResolverList, "base price resolver (list, catalog)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readQuoteFile(path string) (quoteFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return quoteFile{}, fmt.Errorf("read quotation: %w", err)
	}
	var qf quoteFile
	if err := json.Unmarshal(raw, &qf); err != nil {
		return quoteFile{}, fmt.Errorf("decode quotation %s: %w", path, err)
	}
	return qf, nil
}

func (qf quoteFile) clock() (func() time.Time, error) {
	if qf.Date == "" {
		return time.Now, nil
	}
	at, err := time.Parse(time.DateOnly, qf.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", qf.Date, err)
	}
	return func() time.Time { return at }, nil
}

func (qf quoteFile) quotation() entities.Quotation {
	return entities.Quotation{
		ID:        "offline",
		Vehicle:   qf.Vehicle,
		Variation: qf.Variation,
		Options:   qf.Options,
		Customer:  &entities.Customer{FirstQuotation: qf.FirstQuotation},
	}
}

func printBreakdown(cmd *cobra.Command, p entities.PricedQuotation) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	if v := p.Quotation.Vehicle; v != nil {
		fmt.Fprintf(w, "%s %s (list price)\t%s\t\n", v.Brand, v.Model, v.BasePrice.StringFixed(2))
	}
	for _, o := range p.Quotation.Options {
		if o.Price != nil {
			fmt.Fprintf(w, "+ %s\t%s\t\n", o.NameIt, o.Price.StringFixed(2))
		}
	}
	for _, a := range p.Adjustments {
		fmt.Fprintf(w, "%s\t%s\t\n", a.Label, a.Amount.StringFixed(2))
	}
	fmt.Fprintf(w, "Total\t%s\t\n", p.Quotation.FinalPrice.StringFixed(2))
	return w.Flush()
}
