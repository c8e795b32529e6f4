package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/holdem"
	md "github.com/nao1215/markdown"
)

// ReviewMarkdown renders the study review: the most frequent hand tags and
// the trend of the last sessions.
func ReviewMarkdown(r *holdem.Review) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Review")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{md.Bold("Top Leaks"), LeaksString(r.Leaks)},
			{md.Bold("Trend"), TrendString(r.Trend)},
			{md.Bold("Hands Reviewed"), fmt.Sprint(r.Hands)},
			{md.Bold("Mean Session"), fmt.Sprintf("%.1f h", r.MeanSession)},
		},
	})
	return doc.String()
}
