package address

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Result holds the outcome of parsing one title.
//
// Numbers is nil when no house number could be read; the unconsumed
// remainder is then kept in Leftover for manual review. A single-element
// Numbers is a scalar house number, longer slices come from comma- or
// slash-separated lists.
type Result struct {
	Street   string   `json:"street"`
	Numbers  []string `json:"numbers,omitempty"`
	Leftover string   `json:"leftover,omitempty"`
}

var (
	// Leading run of letters, diacritics, dots, hyphens and spaces ending
	// in a letter: the street name candidate.
	streetRe = regexp.MustCompile(`^[a-zA-Zäöü.\-\s]*[a-zA-Zäöü]+`)

	// Street candidate accidentally swallowing a part-of marker, as in
	// "Eisengasse Th. v. 21". The marker and everything after it must be
	// stripped from the street again.
	streetPartOfRe = regexp.MustCompile(
		`^(?P<street>[a-zA-Zäöü.\-\s]*[a-zA-Zäöü]+)(?: Theil| Th\.| Th| T\.| Tv\.)(?: von| v)?(?P<postfix>.*)$`)

	// "Marktplatz Theil von ..." keeps "Theil von" after the generic
	// strip; the street is plain "Marktplatz".
	marktplatzRe = regexp.MustCompile(`^Marktplatz Theil von`)

	// Trailing qualifiers that are not part of the street name
	// ("Eisengasse Bank vor 26"). When present the street is truncated
	// to its first token.
	qualifierRe = regexp.MustCompile(` vor| unter| bei| alt| abgebrochen| innerhalb`)

	// House-number list: "21", "64, 66", "34/ 36", "11a".
	numberListRe = regexp.MustCompile(`^((?:, | ?/ )?[0-9]+(?: ?[a-z])?)+$`)

	// Remainder beginning with a part-of marker, for example
	// "Th. v. 20 neben 18". The numbers that follow still belong to the
	// dossier's number set; the part-of semantics are resolved later by
	// ApplyPartOf.
	partOfPrefixRe = regexp.MustCompile(
		`^(?:Theil|Th\.|Th|T\.|Tv\.) (?:von |v\. )?(?P<postfix>.*)$`)

	partOfNumbersRe = regexp.MustCompile(
		`^(?P<numbers>(?:(?:, | / )?[0-9]+(?: ?[a-zA-Z] | ?[a-zA-Z]$)?)+)(?P<postfix>.*)$`)

	// Word or dot immediately after the captured numbers means the last
	// "number" was a false positive and belongs to the remainder.
	runOnPostfixRe = regexp.MustCompile(`^[.\w]`)

	// Additional numbers dangling at the end of the remainder:
	// "... u. 12" or "... und 10, 12".
	trailingNumbersRe = regexp.MustCompile(
		`^(?P<postfix>.*) (?:u\.|und) (?P<numbers>(?:, )?[0-9]+(?:(?:, )?[0-9]+)*)$`)
)

// Parse extracts the street name and house numbers from a raw title.
// Titles are NFC-normalized before matching so that decomposed umlauts
// from OCR sources compare equal to the grammar's literals.
//
// Parsing never fails: when the grammar does not match, the unconsumed
// remainder is returned in Leftover and all other fields stay empty.
func Parse(title string) Result {
	title = norm.NFC.String(title)

	street := streetRe.FindString(title)
	if street == "" {
		return Result{Leftover: title}
	}

	if m := streetPartOfRe.FindStringSubmatch(street); m != nil {
		street = m[streetPartOfRe.SubexpIndex("street")]
		if marktplatzRe.MatchString(street) {
			street = "Marktplatz"
		}
	}
	if qualifierRe.MatchString(street) {
		street = strings.Fields(street)[0]
	}

	rest := strings.TrimLeft(strings.Replace(title, street, "", 1), " \t")

	if numberListRe.MatchString(rest) {
		return Result{Street: street, Numbers: splitNumbers(rest)}
	}

	if m := partOfPrefixRe.FindStringSubmatch(rest); m != nil {
		return parsePartOfRemainder(street, m[partOfPrefixRe.SubexpIndex("postfix")], rest)
	}

	return Result{Street: street, Leftover: rest}
}

// parsePartOfRemainder handles remainders like "Th. v. 20 neben 18" or
// "Theil von 5, 6 und 8": numbers directly after the marker, possibly with
// run-on text and trailing "und"-joined numbers.
func parsePartOfRemainder(street, afterMarker, rest string) Result {
	m := partOfNumbersRe.FindStringSubmatch(afterMarker)
	if m == nil {
		return Result{Street: street, Leftover: rest}
	}
	numbers := m[partOfNumbersRe.SubexpIndex("numbers")]
	postfix := m[partOfNumbersRe.SubexpIndex("postfix")]

	if runOnPostfixRe.MatchString(postfix) {
		if i := strings.LastIndex(numbers, ","); i >= 0 {
			postfix = "," + numbers[i+1:] + postfix
			numbers = numbers[:i]
		} else {
			postfix = "," + numbers + postfix
			numbers = ""
		}
	}

	if tm := trailingNumbersRe.FindStringSubmatch(postfix); tm != nil {
		numbers = numbers + ", " + tm[trailingNumbersRe.SubexpIndex("numbers")]
		postfix = tm[trailingNumbersRe.SubexpIndex("postfix")]
	}

	return Result{Street: street, Numbers: splitNumbers(numbers), Leftover: postfix}
}

// splitNumbers turns a matched number run into tokens. Comma lists split
// on ", "; slash lists drop their inner spaces first ("34/ 36" -> 34, 36).
func splitNumbers(numbers string) []string {
	switch {
	case numbers == "":
		return nil
	case strings.Contains(numbers, ","):
		return strings.Split(numbers, ", ")
	case strings.Contains(numbers, "/"):
		return strings.Split(strings.ReplaceAll(numbers, " ", ""), "/")
	default:
		return []string{numbers}
	}
}
