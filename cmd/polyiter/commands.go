package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"polyiter/engine"
	"polyiter/internal/common"
	"polyiter/kind"
	"polyiter/object"
	"polyiter/options"
	"polyiter/shape"
)

type demoStep struct {
	label string
	run   func(e *engine.Engine) (any, error)
}

func isNumber(v, _ any) any { return kind.Classify(v).IsNumber() }

func plusOne(v, _ any) any { return v.(int) + 1 }

var demoSteps = []demoStep{
	{"map [1 2 3] +1", func(e *engine.Engine) (any, error) {
		return e.Map([]int{1, 2, 3}, plusOne)
	}},
	{"map {a:1 b:2 c:3} +1", func(e *engine.Engine) (any, error) {
		return e.Map(map[string]int{"a": 1, "b": 2, "c": 3}, plusOne)
	}},
	{"map 1 +1", func(e *engine.Engine) (any, error) {
		return e.Map(1, plusOne)
	}},
	{"map undefined", func(e *engine.Engine) (any, error) {
		return e.Map(nil, plusOne)
	}},
	{"filterMap ids below 10", func(e *engine.Engine) (any, error) {
		return e.FilterMap([]int{1, 8, 14}, false, func(v, _ any) any {
			if v.(int) < 10 {
				return v
			}
			return false
		})
	}},
	{"buildMapping active ages", func(e *engine.Engine) (any, error) {
		people := []struct {
			Name   string
			Age    int
			Active bool
		}{{"Pepe", 68, true}, {"Dimitri", 34, false}}

		return e.BuildMapping(people, func(_, k any) any {
			if p := people[k.(int)]; p.Active {
				return []any{p.Name, p.Age}
			}
			return nil
		})
	}},
	{"keysOf {foo bar hip}", func(e *engine.Engine) (any, error) {
		return e.KeysOf(object.New(nil).With("foo", true).With("bar", false).With("hip", nil))
	}},
	{"stopOnMatch [1 2 clank 4]", func(e *engine.Engine) (any, error) {
		var out []any
		_, err := e.StopOnMatch([]any{1, 2, "clank", 4}, false, func(v, _ any) any {
			n, ok := v.(int)
			if !ok {
				return false
			}
			out = append(out, n*10)
			return nil
		})
		return out, err
	}},
	{"stopOnMatch [2 trois 4] isNumber", func(e *engine.Engine) (any, error) {
		return e.StopOnMatch([]any{2, "trois", 4}, false, isNumber)
	}},
	{"stopOnMismatch [2 3 4] isNumber", func(e *engine.Engine) (any, error) {
		return e.StopOnMismatch([]any{2, 3, 4}, true, isNumber)
	}},
	{"reduce [1 2 3] +", func(e *engine.Engine) (any, error) {
		return e.Reduce([]int{1, 2, 3}, func(acc, v any) any { return acc.(int) + v.(int) })
	}},
	{"times 3 squared", func(e *engine.Engine) (any, error) {
		return e.Times(3, func(v, _ any) any { return v.(int) * v.(int) })
	}},
}

func (c *cli) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the classic traversals and print their results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, step := range demoSteps {
				res, err := step.run(c.engine)
				if err != nil {
					return errors.Wrap(err, step.label)
				}
				fmt.Fprintf(out, "%-36s %v\n", step.label, res)
			}
			return nil
		},
	}
}

func (c *cli) newSeqCmd() *cobra.Command {
	var sum bool

	cmd := &cobra.Command{
		Use:   "seq COUNT [START [STEP]]",
		Short: "Print an arithmetic sequence",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseScalars(args)
			if err != nil {
				return err
			}

			seq, err := c.engine.ArithmeticSequence(values[0], values[1:]...)
			if err != nil {
				return err
			}

			if sum {
				total, err := c.engine.ReduceSeed(seq, 0.0, func(acc, v any) any {
					return acc.(float64) + toFloat(v)
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), total)
				return nil
			}

			printList(cmd.OutOrStdout(), seq)
			return nil
		},
	}
	cmd.Flags().BoolVar(&sum, "sum", false, "print the sum of the sequence instead")

	return cmd
}

func (c *cli) newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys DOC [PROTO...]",
		Short: "List the keys of a YAML document, each following document is the prototype of the previous one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := parseInput(args)
			if err != nil {
				return err
			}

			keys, err := c.engine.KeysOf(input)
			if err != nil {
				return err
			}

			printList(cmd.OutOrStdout(), keys)
			return nil
		},
	}
}

func (c *cli) newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify VALUE...",
		Short: "Print the semantic tag and traversal shape of YAML values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseScalars(args)
			if err != nil {
				return err
			}

			for i, v := range values {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", args[i], kind.Classify(v), shape.Dispatch(v))
			}
			return nil
		},
	}
}

func (c *cli) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := options.MarshalConfig(&c.cfg)
			if err != nil {
				return errors.Wrap(err, "failed to marshal config")
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// parseScalars decodes every argument as a YAML value.
func parseScalars(args []string) ([]any, error) {
	values := make([]any, len(args))
	for i, arg := range args {
		if err := yaml.Unmarshal([]byte(arg), &values[i]); err != nil {
			return nil, errors.Wrapf(err, "argument %q", arg)
		}
	}

	return values, nil
}

// parseInput decodes docs[0] as the traversal input. When it is a mapping,
// every further document becomes the prototype of the one before it.
func parseInput(docs []string) (any, error) {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(docs[0]), &node); err != nil {
		return nil, errors.Wrapf(err, "argument %q", docs[0])
	}

	if len(node.Content) == 0 {
		// an empty document is the undefined input
		return nil, nil
	}

	if node.Content[0].Kind != yaml.MappingNode {
		if len(docs) > 1 {
			return nil, errors.New("prototypes are only allowed for a mapping document")
		}

		var v any
		if err := node.Decode(&v); err != nil {
			return nil, errors.Wrapf(err, "argument %q", docs[0])
		}
		return v, nil
	}

	var proto *object.Object
	for i := len(docs) - 1; i >= 0; i-- {
		obj := object.New(proto)
		if err := yaml.Unmarshal([]byte(docs[i]), obj); err != nil {
			return nil, errors.Wrapf(err, "argument %q", docs[i])
		}
		proto = obj
	}

	return proto, nil
}

func printList(w io.Writer, values []any) {
	if common.IsEmpty(values) {
		fmt.Fprintln(w, "(empty)")
		return
	}

	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case float64:
		return n
	}
	return 0
}
