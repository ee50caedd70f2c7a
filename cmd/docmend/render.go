package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/docmend/go-docmend/internal/config"
	"github.com/docmend/go-docmend/pkg/docmend"
)

// renderRepairSummary prints one repair run's summary in the configured
// format. json and yaml emit the library struct unchanged so pipeline
// consumers can parse it.
func renderRepairSummary(w io.Writer, root string, s *docmend.RepairSummary) error {
	switch cfg.Format {
	case config.FormatJSON:
		return renderJSON(w, s)
	case config.FormatYAML:
		return renderYAML(w, s)
	}

	fmt.Fprintln(w, TitleStyle.Render("Repair Summary"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("package"), root)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", KeyStyle.Render("id_deconfliction"))
	fmt.Fprintf(w, "  comments_renumbered: %s\n", count(s.IDDeconfliction.CommentsRenumbered))
	fmt.Fprintf(w, "  changes_renumbered: %s\n", count(s.IDDeconfliction.ChangesRenumbered))
	fmt.Fprintf(w, "%s:\n", KeyStyle.Render("relationship_dedup"))
	fmt.Fprintf(w, "  content_types_removed: %s\n", count(s.RelationshipDedup.ContentTypesRemoved))
	fmt.Fprintf(w, "  rels_removed: %s\n", count(s.RelationshipDedup.RelsRemoved))
	fmt.Fprintf(w, "%s:\n", KeyStyle.Render("orphan_cleanup"))
	fmt.Fprintf(w, "  orphans_removed: %s\n", count(s.OrphanCleanup.OrphansRemoved))
	fmt.Fprintf(w, "%s:\n", KeyStyle.Render("xml_space_fix"))
	fmt.Fprintf(w, "  space_attrs_added: %s\n", count(s.XMLSpaceFix.SpaceAttrsAdded))
	fmt.Fprintln(w)
	if s.TotalChanges == 0 {
		fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("total_changes"), SubtitleStyle.Render("0 (already clean)"))
		return nil
	}
	fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("total_changes"), SuccessStyle.Render(strconv.Itoa(s.TotalChanges)))
	return nil
}

// renderValidationReport prints a validation report in the configured format.
func renderValidationReport(w io.Writer, root string, r *docmend.ValidationReport) error {
	switch cfg.Format {
	case config.FormatJSON:
		return renderJSON(w, r)
	case config.FormatYAML:
		return renderYAML(w, r)
	}

	fmt.Fprintln(w, TitleStyle.Render("Validation Report"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("package"), root)
	fmt.Fprintln(w)

	if len(r.Issues) > 0 {
		for i, issue := range r.Issues {
			fmt.Fprintf(w, "  %2d. %s %s\n", i+1, WarningStyle.Render("["+string(issue.Check)+"]"), issue.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Passed() {
		fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("verdict"), SuccessStyle.Render(string(r.Status)))
		return nil
	}
	noun := "issues"
	if r.IssueCount == 1 {
		noun = "issue"
	}
	fmt.Fprintf(w, "%s: %s (%d %s)\n", KeyStyle.Render("verdict"), ErrorStyle.Render(string(r.Status)), r.IssueCount, noun)
	return nil
}

// renderConfig prints the effective configuration in the configured format.
func renderConfig(w io.Writer, c *config.Config, path string) error {
	switch c.Format {
	case config.FormatJSON:
		return renderJSON(w, c)
	case config.FormatYAML:
		return renderYAML(w, c)
	}

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)
	if path != "" {
		fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("format"), ValueStyle.Render(c.Format))
	fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("log_level"), ValueStyle.Render(c.LogLevel))
	fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("quiet"), ValueStyle.Render(strconv.FormatBool(c.Quiet)))
	return nil
}

func count(n int) string {
	return ValueStyle.Render(strconv.Itoa(n))
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
