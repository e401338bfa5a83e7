package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ytpilot/labeler"
)

var labelDict string

// labelCmd labels a single text and explains the decision.
var labelCmd = &cobra.Command{
	Use:   "label <text>",
	Short: "Label one comment text and show the decision trace",
	Long: `Label runs the dictionary labeler on a single text and prints the final
verdict for all seven categories, the keywords that matched, and the
priority rules that fired. Useful for auditing dictionary coverage and
conflict resolution.

Example:
  ytpilot label "みんなで投票に行こう！友達も誘って"`,
	Args: cobra.ExactArgs(1),
	RunE: runLabel,
}

func init() {
	rootCmd.AddCommand(labelCmd)

	labelCmd.Flags().StringVar(&labelDict, "dict", "", "YAML dictionary file (default: built-in)")
}

func runLabel(cmd *cobra.Command, args []string) error {
	l, err := newLabeler(labelDict)
	if err != nil {
		return err
	}

	pred, err := l.PredictDetailed(args[0])
	if err != nil {
		return err
	}

	for _, label := range labeler.Labels() {
		mark := "0"
		if pred.Final[label] {
			mark = "1"
		}
		line := fmt.Sprintf("%-10s %s", label.Column(), mark)
		if words := pred.Detections.Keywords(label); len(words) > 0 {
			line += "    matched: " + strings.Join(words, ", ")
		}
		fmt.Println(line)
	}

	if len(pred.Trace) > 0 {
		fmt.Printf("\nrules fired: %s\n", strings.Join(pred.Trace, ", "))
	} else {
		fmt.Println("\nrules fired: none")
	}
	return nil
}
