package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// The line-matching rules are modeled on the gfwlist2dnsmasq shell
// implementation (github.com/cokebar/gfwlist2dnsmasq).
var (
	// Ignore:
	// 1. comments starting with '!' and metadata containing '['
	// 2. white-list exceptions starting with '@@'
	// 3. rules anchored to a literal IPv4 address, bare or behind a scheme
	ignorePattern = regexp.MustCompile(`^!|\[|^@@|(https?://)?[0-9]+\.[0-9]+\.[0-9]+\.[0-9]+`)

	// Strip a leading '||' or '|' anchor and the URL scheme
	headFilterPattern = regexp.MustCompile(`^(\|\|?)?(https?://)?`)

	// Strip the path and query string, including percent-encoded slashes
	tailFilterPattern = regexp.MustCompile(`/.*$|%2F.*$`)

	// Two or more dot-separated alphanumeric-and-hyphen labels
	domainPattern = regexp.MustCompile(`([a-zA-Z0-9][-a-zA-Z0-9]*(\.[a-zA-Z0-9][-a-zA-Z0-9]*)+)`)

	// Like domainPattern, but tolerating one leading wildcard segment and
	// one trailing wildcard suffix; group 4 captures the core domain
	wildcardPattern = regexp.MustCompile(`^(([a-zA-Z0-9]*\*[-a-zA-Z0-9]*)?(\.))?([a-zA-Z0-9][-a-zA-Z0-9]*(\.[a-zA-Z0-9][-a-zA-Z0-9]*)+)(\*[a-zA-Z0-9]*)?$`)
)

// lineResult classifies the outcome of parsing a single list entry
type lineResult int

const (
	// lineIgnored is an ordinary discard: comment, exception, IP rule,
	// or no domain shape in the entry
	lineIgnored lineResult = iota

	// lineNeedsReview is a discarded regex-style rule; the blocked site
	// has to be added to the output by hand
	lineNeedsReview

	// lineExtracted means a domain was added to the set
	lineExtracted
)

// GFWList parses an AutoProxy document and accumulates the blocked domains
type GFWList struct {
	domains *DomainSet
	stats   *Stats
	logger  *log.Logger
	diag    io.Writer
	verbose bool
}

// NewGFWList creates a parser writing manual-review diagnostics to stderr
func NewGFWList(config *Config, logger *log.Logger) *GFWList {
	return &GFWList{
		domains: NewDomainSet(),
		stats:   NewStats(),
		logger:  logger,
		diag:    os.Stderr,
		verbose: config.Verbose,
	}
}

// Domains returns the accumulated domain set
func (g *GFWList) Domains() *DomainSet {
	return g.domains
}

// Parse validates the document shape and classifies every line. The
// accepted domains accumulate in the domain set; how many lines were
// discarded does not affect the result.
func (g *GFWList) Parse(text string) error {
	scanner := bufio.NewScanner(strings.NewReader(text))

	lineNum := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 && !strings.HasPrefix(line, "[AutoProxy") {
			return fmt.Errorf("gfwlist is not in AutoProxy format")
		}

		g.parseLine(line)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading gfwlist: %v", err)
	}

	if lineNum == 0 {
		return fmt.Errorf("gfwlist is empty")
	}

	g.stats.lines = lineNum
	return nil
}

// parseLine classifies one list entry and, when it encodes a domain rule,
// extracts the canonical domain into the set. It never fails: every entry
// is either extracted or discarded.
func (g *GFWList) parseLine(line string) (string, lineResult) {
	originLine := line

	// A leading '/' marks a regex-style rule. The flag does not change
	// the parsing below, only whether a discard is reported for manual
	// review or dropped silently.
	isRegexRule := strings.HasPrefix(line, "/")

	if ignorePattern.MatchString(line) {
		return "", g.discard(originLine, isRegexRule)
	}

	line = headFilterPattern.ReplaceAllString(line, "")
	line = tailFilterPattern.ReplaceAllString(line, "")

	if !domainPattern.MatchString(line) {
		return "", g.discard(originLine, isRegexRule)
	}

	m := wildcardPattern.FindStringSubmatch(line)
	if m == nil {
		// The wildcard pattern should accept everything the domain
		// pattern does; if it disagrees, discard rather than guess.
		fmt.Fprintf(g.diag, "Warning: cannot extract domain from rule: %s\n", originLine)
		g.stats.IncrementInconsistent()
		return "", lineNeedsReview
	}

	domain := m[4]
	if isRegexRule {
		fmt.Fprintf(g.diag, "regex rule %s -> %s\n", line, domain)
	}

	if g.verbose {
		if _, icann := publicsuffix.PublicSuffix(domain); !icann {
			g.logger.Printf("Domain %q has no ICANN public suffix, please double-check", domain)
		}
	}

	if g.domains.Add(domain) {
		g.stats.IncrementExtracted()
	} else {
		g.stats.IncrementDuplicates()
	}
	return domain, lineExtracted
}

// discard records a dropped line, surfacing regex-style rules so that an
// equivalent domain can be added by hand
func (g *GFWList) discard(originLine string, isRegexRule bool) lineResult {
	g.stats.IncrementIgnored()
	if isRegexRule {
		g.stats.IncrementNeedsReview()
		fmt.Fprintf(g.diag, "please add domain manually for ignored regex rule: %s\n", originLine)
		return lineNeedsReview
	}
	return lineIgnored
}
