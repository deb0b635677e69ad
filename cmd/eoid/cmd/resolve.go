package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/earthobs/eoid"
)

// result is the renderable outcome of one resolved identifier.
type result struct {
	Input   string          `json:"input" yaml:"input"`
	Grammar string          `json:"grammar" yaml:"grammar"`
	Mission string          `json:"mission" yaml:"mission"`
	Record  eoid.Identifier `json:"record" yaml:"record"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [identifier ...]",
	Short: "Decode identifiers into structured records",
	Long: `Decode each identifier given as an argument. With no arguments,
identifiers are read from standard input, one per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := outputFormat()
		if err != nil {
			return err
		}
		reg, err := registry()
		if err != nil {
			return err
		}

		inputs := args
		if len(inputs) == 0 {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				if line := scanner.Text(); line != "" {
					inputs = append(inputs, line)
				}
			}
			if err := scanner.Err(); err != nil {
				return err
			}
		}

		failed := 0
		for _, input := range inputs {
			ident, name, err := reg.ResolveNamed(input)
			if err != nil {
				failed++
				var pe *eoid.Error
				if errors.As(err, &pe) {
					logger.Debug("no grammar matched",
						zap.String("input", input),
						zap.Int("offset", pe.Offset))
					fmt.Fprintf(os.Stderr, "%s: parse failed at character %d\n", input, pe.Offset)
				} else {
					printError(input, err)
				}
				continue
			}
			logger.Debug("resolved",
				zap.String("input", input),
				zap.String("grammar", name))
			if err := render(f, result{
				Input:   input,
				Grammar: name,
				Mission: ident.Mission().Name(),
				Record:  ident,
			}); err != nil {
				return err
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d identifiers not recognized", failed, len(inputs))
		}
		return nil
	},
}

func render(format string, res result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(res)
	case "yaml":
		out, err := yaml.Marshal(res)
		if err != nil {
			return err
		}
		fmt.Printf("---\n%s", out)
		return nil
	}
	fmt.Printf("%s\t%s\t%s\t%s\n",
		res.Input, res.Grammar, res.Mission,
		res.Record.StartTime().Format(time.RFC3339))
	return nil
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
