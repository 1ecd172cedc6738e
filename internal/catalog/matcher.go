package catalog

import (
	"strings"

	"github.com/smontoya/kickstore-backend/pkg/enums"
)

// The matcher is substring-based over free text on purpose: product names
// and image filenames are the only signal the storefront has ever carried.
// Exclusion rules below exist to keep mutually exclusive labels apart
// (a "Jordan 11" must not also satisfy "Jordan 1"); anything beyond the
// explicit exclusions is unspecified and inconsistent filenames can still
// land a product in the wrong bucket.

type predicate func(corpus string) bool

// filterEntry binds one public label to its predicate. Entries are ordered;
// catch-alls are appended last so they only see products no specific label
// claimed.
type filterEntry struct {
	label string
	match predicate
}

func contains(corpus string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(corpus, keyword) {
			return true
		}
	}
	return false
}

func jordan11(corpus string) bool { return contains(corpus, "jordan 11", "jordan11") }
func jordan14(corpus string) bool { return contains(corpus, "jordan 14", "jordan14") }

// jordan1 must not fire on Jordan 11/14 corpora, whose text also contains
// the "jordan 1" substring.
func jordan1(corpus string) bool {
	return contains(corpus, "jordan 1", "jordan1") && !jordan11(corpus) && !jordan14(corpus)
}

func jordan4(corpus string) bool { return contains(corpus, "jordan 4", "jordan4") }

func airmaxKeyword(corpus string) bool { return contains(corpus, "airmax", "air max") }

// airmax1 special case: any corpus containing "97" is rejected outright,
// because filenames like airmax97_1.jpg substring-match the generic "1"
// test.
func airmax1(corpus string) bool {
	if strings.Contains(corpus, "97") {
		return false
	}
	return airmaxKeyword(corpus) && strings.Contains(corpus, "1")
}

func airmax90(corpus string) bool { return airmaxKeyword(corpus) && strings.Contains(corpus, "90") }
func airmax97(corpus string) bool { return airmaxKeyword(corpus) && strings.Contains(corpus, "97") }

func brandNike(corpus string) bool   { return strings.Contains(corpus, "nike") }
func brandAdidas(corpus string) bool { return strings.Contains(corpus, "adidas") }
func brandPuma(corpus string) bool   { return strings.Contains(corpus, "puma") }
func brandReebok(corpus string) bool { return strings.Contains(corpus, "reebok") }

// catchAll matches corpora that satisfy the family keyword but none of the
// family's specific predicates.
func catchAll(familyKeyword predicate, specifics ...predicate) predicate {
	return func(corpus string) bool {
		if !familyKeyword(corpus) {
			return false
		}
		for _, specific := range specifics {
			if specific(corpus) {
				return false
			}
		}
		return true
	}
}

var families = map[enums.ProductFamily][]filterEntry{
	enums.ProductFamilyJordan: {
		{label: "Jordan 1", match: jordan1},
		{label: "Jordan 4", match: jordan4},
		{label: "Jordan 11", match: jordan11},
		{label: "Jordan 14", match: jordan14},
	},
	enums.ProductFamilyAirmax: {
		{label: "Airmax 1", match: airmax1},
		{label: "Airmax 90", match: airmax90},
		{label: "Airmax 97", match: airmax97},
		{label: "Other", match: catchAll(airmaxKeyword, airmax1, airmax90, airmax97)},
	},
	enums.ProductFamilyCasual: {
		{label: "Nike", match: brandNike},
		{label: "Adidas", match: brandAdidas},
		{label: "Puma", match: brandPuma},
		{label: "Reebok", match: brandReebok},
		{label: "Other", match: catchAll(
			func(corpus string) bool { return strings.Contains(corpus, "casual") },
			brandNike, brandAdidas, brandPuma, brandReebok,
		)},
	},
}

// Labels returns the family's filter labels in display order. Unknown
// families return nil.
func Labels(family enums.ProductFamily) []string {
	entries, ok := families[family]
	if !ok {
		return nil
	}
	labels := make([]string, len(entries))
	for i, entry := range entries {
		labels[i] = entry.label
	}
	return labels
}

func predicateFor(family enums.ProductFamily, label string) predicate {
	for _, entry := range families[family] {
		if entry.label == label {
			return entry.match
		}
	}
	return nil
}

// Filter returns the sub-sequence of products whose corpus satisfies the
// label's predicate, preserving input order. Unknown labels match nothing.
func Filter(products []Product, family enums.ProductFamily, label string) []Product {
	match := predicateFor(family, label)
	if match == nil {
		return nil
	}
	var matched []Product
	for _, product := range products {
		if match(product.Corpus()) {
			matched = append(matched, product)
		}
	}
	return matched
}

// HasMatches reports whether any product satisfies the label's predicate.
func HasMatches(products []Product, family enums.ProductFamily, label string) bool {
	match := predicateFor(family, label)
	if match == nil {
		return false
	}
	for _, product := range products {
		if match(product.Corpus()) {
			return true
		}
	}
	return false
}
