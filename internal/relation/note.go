package relation

import (
	"regexp"
	"slices"

	"github.com/hgb-basel/lineage/internal/dossier"
)

// direction bundles the asymmetries between the two statement kinds:
// "Nachher siehe ..." names successors (current dossier is the source),
// "Vorher siehe ..." names predecessors (current dossier is the target).
type direction struct {
	forward     bool
	capture     [3]*regexp.Regexp // 3-, 2- and 1-number patterns, tried in order
	sentence    *regexp.Regexp    // bounded statement fragment for slash extension
	noteUnited  string
	noteFound   string
	noteMissing string
}

const (
	numberSep = `(?:, | und | u\. )`
	slashOpt  = `(?:/ ?[0-9]+)?`
)

// newDirection compiles the patterns for one keyword. keyword is the
// case-folded alternation ("(?:N|n)achher"); sentenceClass is the
// character class of a statement sentence, which historically differs
// between the two directions.
func newDirection(keyword, sentenceClass string, forward bool, united, found, missing string) direction {
	prefix := keyword + ` (?:siehe|s\.|S\.) `
	return direction{
		forward: forward,
		capture: [3]*regexp.Regexp{
			regexp.MustCompile(prefix +
				`(?P<number1>[0-9]+)` + slashOpt + numberSep +
				`(?P<number2>[0-9]+)` + slashOpt + numberSep +
				`(?P<number3>[0-9]+)`),
			regexp.MustCompile(prefix +
				`(?P<number1>[0-9]+)` + slashOpt + numberSep +
				`(?P<number2>[0-9]+)`),
			regexp.MustCompile(prefix + `(?P<number1>[0-9]+)`),
		},
		sentence:    regexp.MustCompile(prefix + sentenceClass + `+\.`),
		noteUnited:  united,
		noteFound:   found,
		noteMissing: missing,
	}
}

var (
	successorDir = newDirection(`(?:N|n)achher`, `[A-Za-z0-9/\s]`, true,
		"Relation found on following united. ",
		"Relation found on following. ",
		"No following relation found. ")
	predecessorDir = newDirection(`(?:V|v)orher`, `[A-Za-z0-9/\s-]`, false,
		"Relation found on before united. ",
		"Relation found on before. ",
		"No before relation found. ")

	letterRe      = regexp.MustCompile(`[A-Za-z]`)
	slashNumberRe = regexp.MustCompile(`/ ?([0-9]+)`)

	// Residue that is pure boilerplate once all statements are stripped:
	// keywords, years, slash numbers, punctuation and ellipsis brackets.
	boilerplateRe = regexp.MustCompile(
		`^(Bis|Seit|ganz|vereinigt|getrennt|[0-9]{4}|/[0-9]{3,4}|[., ]|\[...\])+$`)
)

// ExtractNotes parses the dossier's descriptive note for predecessor and
// successor statements and resolves them against the street siblings.
// siblings are all dossiers on the same street; d itself and fractional
// (part-of) dossiers are excluded from candidate matching.
//
// Matched statements are stripped from d.OutsideMatch; when the residue
// reduces to boilerplate it is cleared, otherwise the dossier is flagged
// for manual review. Resolved statements append edges to rels, unresolved
// ones append postprocessing notes. Dossiers whose own numbers carry a
// letter suffix are flagged and skipped entirely: their statements cannot
// be resolved numerically.
func ExtractNotes(d *dossier.Dossier, siblings []*dossier.Dossier, rels *Set) {
	note := d.OutsideMatch
	if note == "" {
		return
	}

	for _, n := range d.Numbers {
		if letterRe.MatchString(n) {
			if d.OutsideMatch != "" {
				d.AppendPostprocessing("Not (all) content of descriptiveNote automatically processed. ")
			}
			return
		}
	}

	extractDirection(d, note, siblings, rels, successorDir)
	extractDirection(d, note, siblings, rels, predecessorDir)

	if d.OutsideMatch != "" && d.Note != "" && boilerplateRe.MatchString(d.OutsideMatch) {
		d.OutsideMatch = ""
	}
	if d.OutsideMatch != "" {
		d.AppendPostprocessing("Not (all) content of descriptiveNote automatically processed. ")
	}
}

// extractDirection handles one statement direction against the full note
// snapshot. note is the buffer content before either direction ran, so a
// successor match never hides a predecessor match in the same note.
func extractDirection(d *dossier.Dossier, note string, siblings []*dossier.Dossier, rels *Set, dir direction) {
	matched, captured := captureNumbers(dir, note)
	if matched == "" {
		return
	}

	// Slash tails within the statement sentence name renumbered plots
	// ("Nachher siehe 10/ 12."). Tokens longer than two digits are years
	// or archive numbers, not house numbers.
	if frag := dir.sentence.FindString(note); frag != "" {
		for _, m := range slashNumberRe.FindAllStringSubmatch(frag, -1) {
			if len(m[1]) <= 2 && !slices.Contains(captured, m[1]) {
				captured = append(captured, m[1])
			}
		}
	}

	unitedRe, err := regexp.Compile(regexp.QuoteMeta(matched) + slashOpt + `,? vereinigt`)
	if err != nil {
		// QuoteMeta makes this unreachable; keep the statement unresolved.
		return
	}
	if unitedRe.MatchString(note) {
		resolveUnited(d, captured, siblings, rels, dir, unitedRe)
		return
	}
	resolveEach(d, matched, captured, siblings, rels, dir)
}

// captureNumbers matches the directional statement, preferring the longest
// number list. It returns the matched text and the captured numbers, or
// ("", nil).
func captureNumbers(dir direction, note string) (string, []string) {
	for _, re := range dir.capture {
		m := re.FindStringSubmatch(note)
		if m == nil {
			continue
		}
		var captured []string
		for _, name := range []string{"number1", "number2", "number3"} {
			if i := re.SubexpIndex(name); i >= 0 {
				captured = append(captured, m[i])
			}
		}
		return m[0], captured
	}
	return "", nil
}

// resolveUnited handles "... 45, 49 vereinigt": the captured numbers were
// merged into a single plot, so exactly one sibling must list the whole
// set (in any order). A unique hit yields one edge; anything else yields
// nothing, by the no-guessing policy.
func resolveUnited(d *dossier.Dossier, captured []string, siblings []*dossier.Dossier, rels *Set, dir direction, unitedRe *regexp.Regexp) {
	var candidates []*dossier.Dossier
	for _, s := range siblings {
		if s.ID == d.ID || s.IsPartOf() {
			continue
		}
		if len(captured) >= 2 && matchesPermutation(s.Numbers, captured) {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) != 1 {
		return
	}
	rels.Add(edge(dir, d, candidates[0]))
	d.OutsideMatch = unitedRe.ReplaceAllString(d.OutsideMatch, "")
	d.AppendNote(dir.noteUnited)
}

// resolveEach resolves every captured number independently to a unique
// single-number sibling. Before doing so it verifies that no combined
// dossier exists for any multi-number subset of the captured set: if the
// numbers are latently merged elsewhere, per-number resolution would split
// a plot that the register kept together, so the whole statement is
// skipped silently.
func resolveEach(d *dossier.Dossier, matched string, captured []string, siblings []*dossier.Dossier, rels *Set, dir direction) {
	for size := 2; size <= len(captured); size++ {
		for _, subset := range permutations(captured, size) {
			for _, s := range siblings {
				if s.ID != d.ID && slices.Equal(s.Numbers, subset) {
					return
				}
			}
		}
	}

	literalRe := regexp.MustCompile(regexp.QuoteMeta(matched))
	for _, n := range captured {
		var candidates []*dossier.Dossier
		for _, s := range siblings {
			if s.ID == d.ID || s.IsPartOf() {
				continue
			}
			if sn, ok := s.SingleNumber(); ok && sn == n {
				candidates = append(candidates, s)
			}
		}
		if len(candidates) != 1 {
			d.AppendPostprocessing(dir.noteMissing)
			continue
		}
		rels.Add(edge(dir, d, candidates[0]))
		d.OutsideMatch = literalRe.ReplaceAllString(d.OutsideMatch, "")
		d.AppendNote(dir.noteFound)
	}
}

func edge(dir direction, d, other *dossier.Dossier) dossier.Relation {
	if dir.forward {
		return dossier.Relation{Origin: []string{d.ID}, Source: d.ID, Target: other.ID}
	}
	return dossier.Relation{Origin: []string{d.ID}, Source: other.ID, Target: d.ID}
}
