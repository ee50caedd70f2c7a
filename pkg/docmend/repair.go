package docmend

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// RepairSummary aggregates the per-phase change counters of one repair run.
// Field order matches the order the phases run in.
type RepairSummary struct {
	IDDeconfliction   DeconflictResult `json:"id_deconfliction" yaml:"id_deconfliction"`
	RelationshipDedup DedupResult      `json:"relationship_dedup" yaml:"relationship_dedup"`
	OrphanCleanup     OrphanResult     `json:"orphan_cleanup" yaml:"orphan_cleanup"`
	XMLSpaceFix       WhitespaceResult `json:"xml_space_fix" yaml:"xml_space_fix"`
	TotalChanges      int              `json:"total_changes" yaml:"total_changes"`
}

// Repair runs the four repair phases in order: identifier deconfliction,
// relationship deduplication, orphaned-metadata cleanup and whitespace
// normalization. The summary is always non-nil, all-zero for a clean package,
// and a second run over the same package reports zero changes.
//
// Each phase is independently best-effort: a write failure in one phase does
// not stop the others. Every phase error is collected and returned alongside
// the summary; a non-nil error means the summary may not match what is on
// disk.
func (p *Package) Repair() (*RepairSummary, error) {
	summary := &RepairSummary{}
	var errs *multierror.Error

	dec, err := p.DeconflictIDs()
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("failed to deconflict identifiers: %w", err))
	}
	summary.IDDeconfliction = dec

	dedup, err := p.DedupRelationships()
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("failed to deduplicate relationships: %w", err))
	}
	summary.RelationshipDedup = dedup

	orphans, err := p.CleanOrphans()
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("failed to clean orphaned metadata: %w", err))
	}
	summary.OrphanCleanup = orphans

	space, err := p.NormalizeWhitespace()
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("failed to normalize whitespace: %w", err))
	}
	summary.XMLSpaceFix = space

	summary.TotalChanges = dec.Changes() + dedup.Changes() + orphans.Changes() + space.Changes()

	p.log.Info("repair finished", "total_changes", summary.TotalChanges)
	return summary, errs.ErrorOrNil()
}
