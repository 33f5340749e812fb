package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/bethejack/internal/profile"
	"github.com/jonathan/bethejack/internal/types"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage stored profiles",
}

var profileSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Store a profile from an about-me text file or a profile JSON document",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileSave,
}

var profileShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print a stored profile as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProfileShow,
}

var (
	profileAboutMe string
	profileJSON    string
)

func init() {
	profileSaveCmd.Flags().StringVar(&profileAboutMe, "about-me", "", `Plain text file with the skeleton work history, or "-" for stdin`)
	profileSaveCmd.Flags().StringVar(&profileJSON, "json", "", `Profile JSON document ({"about_me": "..."}), or "-" for stdin`)

	for _, c := range []*cobra.Command{profileSaveCmd, profileShowCmd} {
		c.Flags().String("profile-dir", "", "Directory of profile JSON files")
		c.Flags().String("db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	}

	profileCmd.AddCommand(profileSaveCmd, profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileSave(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := args[0]
	if err := profile.ValidateName(name); err != nil {
		return err
	}

	p, err := readProfile(cmd.InOrStdin())
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	profiles, closeProfiles, err := openProfiles(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeProfiles()

	if err := profiles.Save(ctx, name, p); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved profile %q\n", name)
	return nil
}

// readProfile builds a profile from exactly one of --about-me and --json.
func readProfile(stdin io.Reader) (types.Profile, error) {
	switch {
	case profileAboutMe != "" && profileJSON != "":
		return types.Profile{}, fmt.Errorf("--about-me and --json are mutually exclusive")
	case profileJSON != "":
		r, closeFn, err := openInput(profileJSON, stdin)
		if err != nil {
			return types.Profile{}, err
		}
		defer closeFn()
		return profile.Load(r)
	case profileAboutMe != "":
		r, closeFn, err := openInput(profileAboutMe, stdin)
		if err != nil {
			return types.Profile{}, err
		}
		defer closeFn()
		data, err := io.ReadAll(r)
		if err != nil {
			return types.Profile{}, fmt.Errorf("failed to read about-me text: %w", err)
		}
		return types.Profile{AboutMe: string(data)}, nil
	default:
		return types.Profile{}, fmt.Errorf("either --about-me or --json must be provided")
	}
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := profile.DefaultName
	if len(args) == 1 {
		name = args[0]
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	profiles, closeProfiles, err := openProfiles(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeProfiles()

	p, err := profiles.Load(ctx, name)
	if errors.Is(err, profile.ErrNotFound) && name == profile.DefaultName {
		p, err = profile.Default(), nil
	}
	if err != nil {
		return fmt.Errorf("profile %q: %w", name, err)
	}
	return profile.Save(cmd.OutOrStdout(), p)
}
