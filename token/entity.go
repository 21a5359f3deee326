package token

import "strings"

// matchEntity implements the longest-prefix named-character-reference
// lookup (spec.md C2 / §4.2). s starts immediately after the leading
// '&'. It returns the replacement text and the number of bytes of s
// consumed (not counting the '&' itself), or ok=false if no reference
// name in the table is a prefix of s.
//
// inAttribute selects the attribute-value special rule: a match that
// lacks a trailing semicolon is rejected, and '&' is emitted literally,
// if the byte following the match is '=' or an ASCII alphanumeric. This
// is what keeps "?lang=en&copy=1" from decoding "&copy" as U+00A9 inside
// an attribute value.
func matchEntity(s string, inAttribute bool) (replacement string, consumed int, ok bool) {
	// Matching tries successively shorter candidate lengths so the
	// longest table key that is a prefix of s wins; the table is small
	// enough that this beats building a trie (the full WHATWG table, by
	// contrast, is generated as external static data — see
	// entity_table.go's doc comment).
	name, repl, hasSemi, found := longestEntityPrefix(s)
	if !found {
		return "", 0, false
	}
	if !hasSemi && inAttribute {
		next := byte(0)
		if len(s) > len(name) {
			next = s[len(name)]
		}
		if next == '=' || isASCIIAlphanumeric(next) {
			return "", 0, false
		}
	}
	return repl, len(name), true
}

func isASCIIAlphanumeric(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// longestEntityPrefix finds the longest key in entityTable that is a
// prefix of s, trying successively shorter candidate lengths so that,
// e.g., "copy;x" prefers matching "copy;" over the shorter "copy".
func longestEntityPrefix(s string) (name, replacement string, hasSemicolon, found bool) {
	maxLen := maxEntityNameLen
	if len(s) < maxLen {
		maxLen = len(s)
	}
	for l := maxLen; l > 0; l-- {
		cand := s[:l]
		if repl, ok := entityTable[cand]; ok {
			return cand, repl, strings.HasSuffix(cand, ";"), true
		}
	}
	return "", "", false, false
}

// numericCharRefCodepoint applies spec.md §4.2's transform to a decoded
// numeric character reference codepoint.
func numericCharRefCodepoint(cp rune) rune {
	if cp == 0 {
		return 0xFFFD
	}
	if cp > 0x10FFFF {
		return 0xFFFD
	}
	if cp >= 0xD800 && cp <= 0xDFFF {
		return 0xFFFD
	}
	if r, ok := windows1252Table[cp]; ok {
		return r
	}
	return cp
}

// windows1252Table maps the C1 control range 0x80-0x9F that numeric
// character references historically aliased to Windows-1252, onto the
// Unicode codepoints the HTML Standard mandates (spec.md §4.2).
var windows1252Table = map[rune]rune{
	0x80: 0x20AC, 0x82: 0x201A, 0x83: 0x0192, 0x84: 0x201E,
	0x85: 0x2026, 0x86: 0x2020, 0x87: 0x2021, 0x88: 0x02C6,
	0x89: 0x2030, 0x8A: 0x0160, 0x8B: 0x2039, 0x8C: 0x0152,
	0x8E: 0x017D, 0x91: 0x2018, 0x92: 0x2019, 0x93: 0x201C,
	0x94: 0x201D, 0x95: 0x2022, 0x96: 0x2013, 0x97: 0x2014,
	0x98: 0x02DC, 0x99: 0x2122, 0x9A: 0x0161, 0x9B: 0x203A,
	0x9C: 0x0153, 0x9E: 0x017E, 0x9F: 0x0178,
}
