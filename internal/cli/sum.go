package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gork-labs/strcalc/pkg/calc"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newSumCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sum [input...]",
		Short: "Sum each input, or stdin when no input is given",
		Long: `Sum evaluates each argument as one calculator input. The two-character
sequence \n in an argument is read as a newline, so a custom delimiter
header can be typed as "//;\n1;2;3". Without arguments the whole of stdin
is read as a single input.

Inputs starting with "-" must follow "--" so they are not read as flags:

  strcalc sum -- -2 "1,-2"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := collectInputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			results := a.evaluate(inputs)
			if err := a.writeResults(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			if n := countFailures(results); n > 0 {
				return fmt.Errorf("%d of %d inputs failed", n, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&a.format, "format", "f", "", "Output format: text, json or yaml")
	return cmd
}

// result is the printable outcome of one evaluation.
type result struct {
	Input     string `json:"input" yaml:"input"`
	Rule      string `json:"rule" yaml:"rule"`
	Sum       *int32 `json:"sum,omitempty" yaml:"sum,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorKind string `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
}

func collectInputs(r io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		inputs := make([]string, len(args))
		for i, arg := range args {
			inputs[i] = unescapeNewlines(arg)
		}
		return inputs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	s = strings.TrimSuffix(s, "\r")
	return []string{s}, nil
}

func unescapeNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

func (a *app) evaluate(inputs []string) []result {
	results := make([]result, 0, len(inputs))
	for _, in := range inputs {
		rule := calc.Select(in, a.opts...)
		a.logger.Debug("rule selected", "input", in, "rule", rule.Kind().String())

		res := result{Input: rule.Input(), Rule: rule.Kind().String()}
		sum, err := rule.Evaluate()
		if err != nil {
			a.logger.Warn("evaluation failed", "input", in, "rule", rule.Kind().String(), "err", err)
			res.Error = err.Error()
			res.ErrorKind = calc.KindOf(err).String()
		} else {
			res.Sum = &sum
		}
		results = append(results, res)
	}
	return results
}

func countFailures(results []result) int {
	n := 0
	for _, r := range results {
		if r.Error != "" {
			n++
		}
	}
	return n
}

func (a *app) writeResults(w io.Writer, results []result) error {
	switch strings.ToLower(a.cfg.Output.Format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	default:
		for _, r := range results {
			if err := a.writeText(w, r); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *app) writeText(w io.Writer, r result) error {
	if r.Error != "" {
		_, err := a.fail.Fprintf(w, "%q\t%s\terror: %s\n", r.Input, r.Rule, r.Error)
		return err
	}
	_, err := a.ok.Fprintf(w, "%q\t%s\t%d\n", r.Input, r.Rule, *r.Sum)
	return err
}
