package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/notejson"
	"github.com/jsamuelsen11/admin-notes-service/internal/domain"
	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
)

const maxListLimit = 100

func (c *cli) newCreateCmd() *cobra.Command {
	var (
		req     notejson.CreateNoteRequest
		file    string
		data    string
		actions []string
		primary string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a note",
		Long: `Create a note from flags or from a JSON document with the same shape
as the POST /api/v1/notes body (--file, "-" reads stdin).`,
		Example: `  notesctl create --name wc-update --title "Update available" --content "Version 9.1 is out" \
    --action "update-now:Update now" --primary-action update-now --snoozable`,
		Args: cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, _ []string, s *session) error {
			svc := s.svc

			if file != "" {
				req = notejson.CreateNoteRequest{}
				if err := readJSONFile(cmd.InOrStdin(), file, &req); err != nil {
					return err
				}
			} else {
				if data != "" {
					req.ContentData = json.RawMessage(data)
				}
				parsed, err := parseActionFlags(actions, primary)
				if err != nil {
					return err
				}
				req.Actions = parsed
			}

			if err := req.Validate(); err != nil {
				return err
			}
			n, err := svc.Create(cmd.Context(), req.ToInput())
			if err != nil {
				return err
			}
			return c.printNote(cmd.OutOrStdout(), n)
		}),
	}

	f := cmd.Flags()
	f.StringVarP(&file, "file", "f", "", `read the note from a JSON file ("-" for stdin)`)
	f.StringVar(&req.Name, "name", "", "note name")
	f.StringVar(&req.Type, "type", "", "note type (error, warning, update, info)")
	f.StringVar(&req.Locale, "locale", "", "note locale")
	f.StringVar(&req.Title, "title", "", "note title")
	f.StringVar(&req.Content, "content", "", "note content (limited HTML)")
	f.StringVar(&req.Icon, "icon", "", "note icon")
	f.StringVar(&req.Status, "status", "", "initial status")
	f.StringVar(&req.Source, "source", "", "note source")
	f.BoolVar(&req.IsSnoozable, "snoozable", false, "allow the note to be snoozed")
	f.StringVar(&data, "data", "", "content data as a JSON object")
	f.StringArrayVar(&actions, "action", nil, `action as "name:label[:status]", repeatable`)
	f.StringVar(&primary, "primary-action", "", "name of the action to mark as primary")
	cmd.MarkFlagsMutuallyExclusive("file", "name")
	return cmd
}

func (c *cli) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a note",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string, s *session) error {
			svc := s.svc
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			n, found, err := svc.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("note %d: %w", id, domain.ErrNotFound)
			}
			return c.printNote(cmd.OutOrStdout(), n)
		}),
	}
}

func (c *cli) newListCmd() *cobra.Command {
	var (
		types    []string
		statuses []string
		filter   note.Filter
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes",
		Args:    cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, _ []string, s *session) error {
			svc := s.svc
			if filter.Limit < 1 || filter.Limit > maxListLimit {
				return domain.NewFieldError("limit", fmt.Sprintf("must be between 1 and %d", maxListLimit))
			}
			if filter.Offset < 0 {
				return domain.NewFieldError("offset", "must not be negative")
			}
			for _, t := range types {
				filter.Types = append(filter.Types, note.Type(t))
			}
			for _, s := range statuses {
				filter.Statuses = append(filter.Statuses, note.Status(s))
			}

			page, err := svc.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return c.printPage(cmd.OutOrStdout(), page)
		}),
	}

	f := cmd.Flags()
	f.StringSliceVar(&types, "type", nil, "filter by type, repeatable or comma separated")
	f.StringSliceVar(&statuses, "status", nil, "filter by status, repeatable or comma separated")
	f.IntVar(&filter.Limit, "limit", 25, "page size")
	f.IntVar(&filter.Offset, "offset", 0, "number of notes to skip")
	return cmd
}

func (c *cli) newUpdateCmd() *cobra.Command {
	var (
		file          string
		status        string
		title         string
		content       string
		clearReminder bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a note",
		Long: `Apply a partial update from flags or from a JSON document with the same
shape as the PATCH /api/v1/notes/{id} body (--file, "-" reads stdin).`,
		Args: cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string, s *session) error {
			svc := s.svc
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var req notejson.UpdateNoteRequest
			if file != "" {
				if err := readJSONFile(cmd.InOrStdin(), file, &req); err != nil {
					return err
				}
			}
			flags := cmd.Flags()
			if flags.Changed("status") {
				req.Status = &status
			}
			if flags.Changed("title") {
				req.Title = &title
			}
			if flags.Changed("content") {
				req.Content = &content
			}
			if clearReminder {
				req.ClearReminder = true
			}

			if err := req.Validate(); err != nil {
				return err
			}
			n, err := svc.Update(cmd.Context(), id, req.ToPatch())
			if err != nil {
				return err
			}
			return c.printNote(cmd.OutOrStdout(), n)
		}),
	}

	f := cmd.Flags()
	f.StringVarP(&file, "file", "f", "", `read the patch from a JSON file ("-" for stdin)`)
	f.StringVar(&status, "status", "", "new status")
	f.StringVar(&title, "title", "", "new title")
	f.StringVar(&content, "content", "", "new content")
	f.BoolVar(&clearReminder, "clear-reminder", false, "remove the reminder date")
	return cmd
}

func (c *cli) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string, s *session) error {
			svc := s.svc
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := svc.Delete(cmd.Context(), id); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted note %d\n", id)
			return err
		}),
	}
}

func (c *cli) newActionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "action <id> <action>",
		Short: "Trigger a note action",
		Long:  "Trigger a named action on a note, moving the note to the status the action targets.",
		Args:  cobra.ExactArgs(2),
		RunE: c.run(func(cmd *cobra.Command, args []string, s *session) error {
			svc := s.svc
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			n, err := svc.TriggerAction(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			return c.printNote(cmd.OutOrStdout(), n)
		}),
	}
}

func (c *cli) newSnoozeCmd() *cobra.Command {
	var (
		until string
		dur   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "snooze <id>",
		Short: "Snooze a note until a time",
		Example: `  notesctl snooze 12 --until 2026-11-01T09:00:00Z
  notesctl snooze 12 --for 72h`,
		Args: cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string, s *session) error {
			svc := s.svc
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			req := notejson.SnoozeRequest{Until: until}
			if dur > 0 {
				req.Until = s.now().Add(dur).Format(time.RFC3339)
			}
			if err := req.Validate(); err != nil {
				return err
			}

			n, err := svc.Snooze(cmd.Context(), id, req.UntilTime())
			if err != nil {
				return err
			}
			return c.printNote(cmd.OutOrStdout(), n)
		}),
	}

	cmd.Flags().StringVar(&until, "until", "", "RFC 3339 time the note reappears")
	cmd.Flags().DurationVar(&dur, "for", 0, "snooze for a duration from now")
	cmd.MarkFlagsMutuallyExclusive("until", "for")
	cmd.MarkFlagsOneRequired("until", "for")
	return cmd
}

func (c *cli) newUnsnoozeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unsnooze",
		Short: "Return due snoozed notes to unactioned",
		Long:  "Run one reminder sweep now: every snoozed note whose reminder has passed goes back to unactioned.",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, _ []string, s *session) error {
			svc := s.svc
			result, err := svc.UnsnoozeDue(cmd.Context(), s.now())
			if err != nil {
				return err
			}
			return c.printUnsnooze(cmd.OutOrStdout(), result)
		}),
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewFieldError("id", "must be a positive integer")
	}
	return id, nil
}

// parseActionFlags turns "name:label[:status]" values into action requests.
func parseActionFlags(values []string, primary string) ([]notejson.ActionRequest, error) {
	actions := make([]notejson.ActionRequest, 0, len(values))
	found := primary == ""
	for _, v := range values {
		parts := strings.SplitN(v, ":", 3)
		if len(parts) < 2 {
			return nil, fmt.Errorf("invalid --action %q: want name:label[:status]", v)
		}
		a := notejson.ActionRequest{Name: parts[0], Label: parts[1]}
		if len(parts) == 3 {
			a.Status = parts[2]
		}
		if a.Name == primary {
			a.Primary = true
			found = true
		}
		actions = append(actions, a)
	}
	if !found {
		return nil, fmt.Errorf("--primary-action %q does not name an action", primary)
	}
	return actions, nil
}

var errEmptyDocument = errors.New("empty JSON document")

func readJSONFile(stdin io.Reader, path string, v any) error {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return fmt.Errorf("reading %s: %w", path, errEmptyDocument)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}
