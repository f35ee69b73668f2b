// Command sdlprint parses a GraphQL schema document and prints it back as
// canonical SDL: directives in declaration order, types sorted by name, one
// block per definition.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/graph-gophers/sdlprint"
)

var (
	introspection       bool
	commentDescriptions bool
)

var rootCmd = &cobra.Command{
	Use:   "sdlprint [file]",
	Short: "Reprint a GraphQL schema as canonical SDL",
	Long: `sdlprint reads a GraphQL schema document from a file or stdin and prints
its canonical SDL rendering. With --introspection it prints the meta schema
(the introspection types and specification directives) instead of the
user-defined types.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func run(cmd *cobra.Command, args []string) error {
	var source []byte
	var err error
	if len(args) == 1 {
		source, err = os.ReadFile(args[0])
	} else {
		source, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return err
	}

	var parseOpts []sdlprint.ParseOpt
	if commentDescriptions {
		parseOpts = append(parseOpts, sdlprint.CommentDescriptions())
	}

	s, err := sdlprint.ParseSchema(string(source), parseOpts...)
	if err != nil {
		return err
	}

	if introspection {
		fmt.Print(sdlprint.PrintIntrospectionSchema(s))
	} else {
		fmt.Print(sdlprint.PrintSchema(s))
	}
	return nil
}

func main() {
	rootCmd.Flags().BoolVar(&introspection, "introspection", false, "print the introspection schema instead of the public one")
	rootCmd.Flags().BoolVar(&commentDescriptions, "comment-descriptions", false, "treat '#' comments as descriptions (pre-June-2018 documents)")

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
