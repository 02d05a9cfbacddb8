package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/notejson"
	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
	"github.com/jsamuelsen11/admin-notes-service/internal/ports"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) printNote(w io.Writer, n *note.Note) error {
	resp := notejson.ToNoteResponse(n)
	if c.asJSON {
		return writeJSON(w, resp)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", resp.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", resp.Name)
	fmt.Fprintf(tw, "Type:\t%s\n", resp.Type)
	fmt.Fprintf(tw, "Status:\t%s\n", resp.Status)
	fmt.Fprintf(tw, "Title:\t%s\n", resp.Title)
	fmt.Fprintf(tw, "Content:\t%s\n", resp.Content)
	fmt.Fprintf(tw, "Source:\t%s\n", resp.Source)
	fmt.Fprintf(tw, "Created:\t%s\n", resp.DateCreated)
	if resp.DateReminder != nil {
		fmt.Fprintf(tw, "Reminder:\t%s\n", *resp.DateReminder)
	}
	fmt.Fprintf(tw, "Snoozable:\t%t\n", resp.IsSnoozable)
	for _, a := range resp.Actions {
		primary := ""
		if a.Primary {
			primary = " (primary)"
		}
		fmt.Fprintf(tw, "Action:\t%s -> %s%s\n", a.Name, a.Status, primary)
	}
	return tw.Flush()
}

func (c *cli) printPage(w io.Writer, page *ports.NotePage) error {
	resp := notejson.ToNoteListResponse(page)
	if c.asJSON {
		return writeJSON(w, resp)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tSTATUS\tNAME\tTITLE\tREMINDER")
	for _, n := range resp.Notes {
		reminder := "-"
		if n.DateReminder != nil {
			reminder = *n.DateReminder
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", n.ID, n.Type, n.Status, n.Name, n.Title, reminder)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d of %d notes\n", resp.Count, resp.Total)
	return err
}

func (c *cli) printUnsnooze(w io.Writer, result *ports.UnsnoozeResult) error {
	resp := notejson.ToUnsnoozeResponse(result)
	if c.asJSON {
		return writeJSON(w, resp)
	}

	fmt.Fprintf(w, "unsnoozed %d of %d notes\n", resp.Succeeded, resp.Total)
	for _, e := range resp.Errors {
		fmt.Fprintf(w, "  note %d: %s\n", e.NoteID, e.Message)
	}
	if len(resp.Unsnoozed) > 0 {
		ids := make([]string, len(resp.Unsnoozed))
		for i, id := range resp.Unsnoozed {
			ids[i] = fmt.Sprint(id)
		}
		fmt.Fprintf(w, "ids: %s\n", strings.Join(ids, ", "))
	}
	return nil
}
