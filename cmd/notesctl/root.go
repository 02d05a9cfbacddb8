package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/admin-notes-service/internal/ports"
)

const defaultProfile = "local"

// session is the note service for one command invocation.
type session struct {
	svc   ports.NoteService
	now   func() time.Time
	close func() error
}

type sessionOptions struct {
	profile   string
	configDir string
	driver    string
	verbose   bool
}

// sessionOpener builds a session. Tests replace it with an in-memory one.
type sessionOpener func(ctx context.Context, opts sessionOptions) (*session, error)

// cli holds state shared by all subcommands.
type cli struct {
	open   sessionOpener
	opts   sessionOptions
	asJSON bool
}

func newRootCmd(open sessionOpener) *cobra.Command {
	c := &cli{open: open}

	root := &cobra.Command{
		Use:           "notesctl",
		Short:         "Manage admin notes",
		Long:          "notesctl creates, inspects and transitions admin notes in the configured note store.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}
	root.PersistentFlags().StringVar(&c.opts.profile, "profile", profile, "config profile (configs/<profile>.yaml)")
	root.PersistentFlags().StringVar(&c.opts.configDir, "config-dir", "", "directory holding base.yaml and profile files")
	root.PersistentFlags().StringVar(&c.opts.driver, "store", "", "override storage.driver (memory, sqlite, postgres, remote)")
	root.PersistentFlags().BoolVarP(&c.opts.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&c.asJSON, "json", false, "print JSON instead of a table")

	root.AddCommand(
		c.newCreateCmd(),
		c.newGetCmd(),
		c.newListCmd(),
		c.newUpdateCmd(),
		c.newDeleteCmd(),
		c.newActionCmd(),
		c.newSnoozeCmd(),
		c.newUnsnoozeCmd(),
	)
	return root
}

// run opens a session for the duration of fn and closes it afterwards.
func (c *cli) run(fn func(cmd *cobra.Command, args []string, s *session) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		s, err := c.open(cmd.Context(), c.opts)
		if err != nil {
			return err
		}
		defer func() {
			if s.close != nil {
				err = errors.Join(err, s.close())
			}
		}()
		return fn(cmd, args, s)
	}
}
