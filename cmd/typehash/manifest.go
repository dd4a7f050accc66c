package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/typehash/internal/errors"
	"github.com/standardbeagle/typehash/internal/manifest"
	"github.com/standardbeagle/typehash/internal/version"
)

// descriptorFile is the input document for manifest build: entries
// without computed outputs.
type descriptorFile struct {
	Entries []manifest.Entry `toml:"entry"`
}

func manifestCommand() *cli.Command {
	return &cli.Command{
		Name:    "manifest",
		Aliases: []string{"m"},
		Usage:   "Build and verify persisted hash manifests",
		Subcommands: []*cli.Command{
			{
				Name:      "build",
				Aliases:   []string{"b"},
				Usage:     "Compute hashes for a descriptor file and write the manifest",
				ArgsUsage: "<descriptors.toml>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Manifest output path (default from config)",
					},
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Usage:   "Parallel hash workers (0 = all CPUs)",
					},
					&cli.BoolFlag{
						Name:  "no-fingerprint",
						Usage: "Skip the xxhash64 content fingerprint",
					},
				},
				Action: buildManifest,
			},
			{
				Name:      "verify",
				Aliases:   []string{"v"},
				Usage:     "Recompute a manifest's hashes and report mismatches",
				ArgsUsage: "[manifest.toml]",
				Action:    verifyManifest,
			},
		},
	}
}

func buildManifest(c *cli.Context) error {
	if c.Args().Len() < 1 {
		return cli.Exit("usage: typehash manifest build <descriptors.toml>", 2)
	}
	descriptorPath := c.Args().First()

	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(descriptorPath)
	if err != nil {
		return errors.NewManifestError(errors.ErrorTypeManifestIO, "read descriptors", err).WithPath(descriptorPath)
	}
	var descriptors descriptorFile
	if err := toml.Unmarshal(content, &descriptors); err != nil {
		return errors.NewManifestError(errors.ErrorTypeManifestDecode, "decode descriptors", err).WithPath(descriptorPath)
	}
	if len(descriptors.Entries) == 0 {
		return errors.NewManifestError(errors.ErrorTypeManifestDecode, "decode descriptors",
			fmt.Errorf("no [[entry]] tables in %s", descriptorPath)).WithPath(descriptorPath)
	}

	workers := cfg.EffectiveWorkers()
	if w := c.Int("workers"); w > 0 {
		workers = w
	}

	m, err := manifest.Build(descriptors.Entries, manifest.Options{
		Workers:     workers,
		Fingerprint: cfg.Manifest.Fingerprint && !c.Bool("no-fingerprint"),
		ToolVersion: version.Version,
	})
	if err != nil {
		return err
	}

	outPath := cfg.Manifest.Path
	if out := c.String("out"); out != "" {
		outPath = out
	}
	if err := m.Write(outPath); err != nil {
		return err
	}

	fmt.Printf("wrote %d entries to %s", len(m.Entries), outPath)
	if m.Fingerprint != "" {
		fmt.Printf(" (fingerprint %s)", m.Fingerprint)
	}
	fmt.Println()
	return nil
}

func verifyManifest(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	path := cfg.Manifest.Path
	if c.Args().Len() > 0 {
		path = c.Args().First()
	}

	m, err := manifest.Read(path)
	if err != nil {
		return err
	}

	result, err := manifest.Verify(m)
	if err != nil {
		return err
	}

	if !result.OK() {
		for _, mismatch := range result.Mismatches {
			fmt.Fprintln(os.Stderr, mismatch.Error())
		}
		return cli.Exit(fmt.Sprintf("%d of %d entries failed verification", len(result.Mismatches), result.Checked), 1)
	}

	fmt.Printf("verified %d entries in %s\n", result.Checked, path)
	return nil
}
