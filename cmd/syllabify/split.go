package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/syllabify/internal/syllable"
	"github.com/spf13/cobra"
)

var splitExplain bool

var splitCmd = &cobra.Command{
	Use:   "split <word> <phonetic>",
	Short: "Segment one word",
	Long: `Print the word with syllable boundaries marked by "·".
Words that cannot be segmented are printed unchanged.`,
	Example: `  syllabify split current /ˈkʌrənt/
  syllabify split --explain repository /rɪˈpɑːzətɔːri/`,
	Args: cobra.ExactArgs(2),
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().BoolVar(&splitExplain, "explain", false, "Show nuclei, vowel groups and each cut decision")
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	a := newSegmenter().Analyze(args[0], args[1])

	if !splitExplain {
		_, err := fmt.Fprintln(out, a.Result)
		return err
	}
	return writeExplanation(out, a)
}

func writeExplanation(out io.Writer, a syllable.Analysis) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "word:     %s\n", a.Word)
	fmt.Fprintf(&sb, "phonetic: %s\n", a.Phonetic)

	nuclei := make([]string, len(a.Nuclei))
	for i, n := range a.Nuclei {
		nuclei[i] = n.Phoneme
		if n.Stressed {
			nuclei[i] = "ˈ" + nuclei[i]
		}
		if n.Short {
			nuclei[i] += "(short)"
		}
	}
	fmt.Fprintf(&sb, "nuclei:   %s\n", strings.Join(nuclei, " "))

	fmt.Fprintf(&sb, "groups:   %s\n", joinGroups(a.Groups))
	if len(a.Aligned) != len(a.Groups) {
		fmt.Fprintf(&sb, "aligned:  %s\n", joinGroups(a.Aligned))
	}

	for i, b := range a.Boundaries {
		fmt.Fprintf(&sb, "cut %d:    bridge %q after %s -> offset %d (%s)\n",
			i+1, b.Bridge, b.Nucleus.Phoneme, b.Offset, b.Rule)
	}
	fmt.Fprintf(&sb, "result:   %s\n", a.Result)

	_, err := io.WriteString(out, sb.String())
	return err
}

func joinGroups(groups []syllable.VowelGroup) string {
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = g.Text
	}
	return strings.Join(parts, " ")
}
