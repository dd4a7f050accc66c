package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/typehash/internal/config"
	"github.com/standardbeagle/typehash/internal/errors"
	"github.com/standardbeagle/typehash/internal/idcodec"
	"github.com/standardbeagle/typehash/internal/types"
	"github.com/standardbeagle/typehash/internal/version"
	"github.com/standardbeagle/typehash/pkg/typehash"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                   "typehash",
		Usage:                  "Compute and verify native-metadata identity hashes",
		Version:                version.Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.DefaultFileName,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: hex, base63, decimal",
			},
		},
		Commands: []*cli.Command{
			nameCommand(),
			arrayCommand(),
			pointerCommand(),
			byrefCommand(),
			nestedCommand(),
			genericCommand(),
			methodCommand(),
			sigvarCommand(),
			manifestCommand(),
			{
				Name:  "version",
				Usage: "Show detailed version information",
				Action: func(c *cli.Context) error {
					fmt.Println(version.FullInfo())
					fmt.Printf("hash algorithm version: %d\n", version.AlgorithmVersion)
					return nil
				},
			},
		},
	}
}

// loadConfigWithOverrides loads configuration and applies CLI flag overrides
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if format := c.String("format"); format != "" {
		cfg.Output.Format = format
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printHash(c *cli.Context, h types.HashCode) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}
	fmt.Println(idcodec.FormatHash(h, cfg.Output.Format))
	return nil
}

// hashArg parses positional operand i as a hash literal.
func hashArg(c *cli.Context, i int, field string) (types.HashCode, error) {
	raw := c.Args().Get(i)
	h, err := idcodec.ParseHashLiteral(raw)
	if err != nil {
		return 0, errors.NewInputError(errors.ErrorTypeBadLiteral, field, raw).WithUnderlying(err)
	}
	return h, nil
}

func requireArgs(c *cli.Context, min int, usage string) error {
	if c.Args().Len() < min {
		return cli.Exit("usage: typehash "+usage, 2)
	}
	return nil
}

func nameCommand() *cli.Command {
	return &cli.Command{
		Name:      "name",
		Aliases:   []string{"n"},
		Usage:     "Hash a type or member name",
		ArgsUsage: "<text>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "ascii",
				Aliases: []string{"a"},
				Usage:   "Use the byte-buffer fast path and report the ASCII flag",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() < 1 {
				return cli.Exit("usage: typehash name <text>", 2)
			}
			text := c.Args().First()

			if c.Bool("ascii") {
				hash, isASCII := typehash.ComputeASCIINameHash([]byte(text))
				if err := printHash(c, types.HashCode(hash)); err != nil {
					return err
				}
				fmt.Printf("ascii: %v\n", isASCII)
				return nil
			}
			return printHash(c, types.HashCode(typehash.ComputeNameHash(text)))
		},
	}
}

func arrayCommand() *cli.Command {
	return &cli.Command{
		Name:      "array",
		Usage:     "Hash an array type from its element hash and rank",
		ArgsUsage: "<element-hash>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "rank",
				Aliases: []string{"r"},
				Usage:   "Array rank (>= 1)",
				Value:   1,
			},
		},
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 1, "array [--rank N] <element-hash>"); err != nil {
				return err
			}
			rank := c.Int("rank")
			if rank < 1 {
				return errors.NewInputError(errors.ErrorTypeBadRank, "rank", strconv.Itoa(rank))
			}
			elem, err := hashArg(c, 0, "element")
			if err != nil {
				return err
			}
			return printHash(c, types.HashCode(typehash.ComputeArrayTypeHash(int32(elem), rank)))
		},
	}
}

func pointerCommand() *cli.Command {
	return &cli.Command{
		Name:      "pointer",
		Aliases:   []string{"ptr"},
		Usage:     "Hash a pointer type from its pointee hash",
		ArgsUsage: "<pointee-hash>",
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 1, "pointer <pointee-hash>"); err != nil {
				return err
			}
			pointee, err := hashArg(c, 0, "pointee")
			if err != nil {
				return err
			}
			return printHash(c, types.HashCode(typehash.ComputePointerTypeHash(int32(pointee))))
		},
	}
}

func byrefCommand() *cli.Command {
	return &cli.Command{
		Name:      "byref",
		Usage:     "Hash a byref type from its parameter type hash",
		ArgsUsage: "<parameter-hash>",
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 1, "byref <parameter-hash>"); err != nil {
				return err
			}
			param, err := hashArg(c, 0, "parameter")
			if err != nil {
				return err
			}
			return printHash(c, types.HashCode(typehash.ComputeByrefTypeHash(int32(param))))
		},
	}
}

func nestedCommand() *cli.Command {
	return &cli.Command{
		Name:      "nested",
		Usage:     "Hash a nested type, chaining outermost-first across operands",
		ArgsUsage: "<enclosing-hash> <nested-name-hash>...",
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 2, "nested <enclosing-hash> <nested-name-hash>..."); err != nil {
				return err
			}
			acc, err := hashArg(c, 0, "enclosing")
			if err != nil {
				return err
			}
			for i := 1; i < c.Args().Len(); i++ {
				nested, err := hashArg(c, i, "nested")
				if err != nil {
					return err
				}
				acc = types.HashCode(typehash.ComputeNestedTypeHash(int32(acc), int32(nested)))
			}
			return printHash(c, acc)
		},
	}
}

func genericCommand() *cli.Command {
	return &cli.Command{
		Name:      "generic",
		Aliases:   []string{"gen"},
		Usage:     "Hash a generic instantiation from its definition and argument hashes",
		ArgsUsage: "<definition-hash> [arg-hash...]",
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 1, "generic <definition-hash> [arg-hash...]"); err != nil {
				return err
			}
			def, err := hashArg(c, 0, "definition")
			if err != nil {
				return err
			}
			args := make([]int32, 0, c.Args().Len()-1)
			for i := 1; i < c.Args().Len(); i++ {
				a, err := hashArg(c, i, "argument")
				if err != nil {
					return err
				}
				args = append(args, int32(a))
			}
			return printHash(c, types.HashCode(typehash.ComputeGenericInstanceHash(int32(def), args)))
		},
	}
}

func methodCommand() *cli.Command {
	return &cli.Command{
		Name:      "method",
		Usage:     "Hash a method from its declaring type hash and name hash",
		ArgsUsage: "<type-hash> <name-hash>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "id",
				Usage: "Print the lossless composite method ID instead of the XOR hash",
			},
		},
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 2, "method <type-hash> <name-hash>"); err != nil {
				return err
			}
			typeHash, err := hashArg(c, 0, "type")
			if err != nil {
				return err
			}
			nameHash, err := hashArg(c, 1, "name")
			if err != nil {
				return err
			}
			if c.Bool("id") {
				fmt.Println(idcodec.EncodeMethodID(typeHash, nameHash))
				return nil
			}
			return printHash(c, types.HashCode(typehash.ComputeMethodHash(int32(typeHash), int32(nameHash))))
		},
	}
}

func sigvarCommand() *cli.Command {
	return &cli.Command{
		Name:      "sigvar",
		Usage:     "Hash a signature variable by its zero-based index",
		ArgsUsage: "<index>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "method",
				Aliases: []string{"m"},
				Usage:   "Method-level variable (default is type-level)",
			},
		},
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 1, "sigvar [--method] <index>"); err != nil {
				return err
			}
			raw := c.Args().First()
			index, err := strconv.Atoi(raw)
			if err != nil || index < 0 {
				inputErr := errors.NewInputError(errors.ErrorTypeBadIndex, "index", raw)
				if err != nil {
					inputErr = inputErr.WithUnderlying(err)
				}
				return inputErr
			}
			return printHash(c, types.HashCode(typehash.ComputeSignatureVariableHash(index, c.Bool("method"))))
		},
	}
}
