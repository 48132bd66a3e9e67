package main

import (
	"sort"

	"github.com/miekg/dns"
)

// DomainSet is a deduplicated collection of canonical domain names
type DomainSet struct {
	members map[string]bool
}

// NewDomainSet creates an empty domain set
func NewDomainSet() *DomainSet {
	return &DomainSet{
		members: make(map[string]bool),
	}
}

// Add inserts a domain into the set. Re-adding an existing domain is a
// no-op. Strings that are not valid multi-label domain names are rejected
// so that a formatter never sees a malformed override entry.
func (s *DomainSet) Add(domain string) bool {
	if labels, ok := dns.IsDomainName(domain); !ok || labels < 2 {
		return false
	}
	if s.members[domain] {
		return false
	}
	s.members[domain] = true
	return true
}

// AddAll inserts every domain from the given list
func (s *DomainSet) AddAll(domains []string) {
	for _, domain := range domains {
		s.Add(domain)
	}
}

// Contains reports whether the set holds the given domain
func (s *DomainSet) Contains(domain string) bool {
	return s.members[domain]
}

// Len returns the number of domains in the set
func (s *DomainSet) Len() int {
	return len(s.members)
}

// Sorted returns the members in lexical order, so that repeated runs
// produce byte-identical output files
func (s *DomainSet) Sorted() []string {
	domains := make([]string, 0, len(s.members))
	for domain := range s.members {
		domains = append(domains, domain)
	}
	sort.Strings(domains)
	return domains
}

// AddExtraDomains unions the static supplementary tables into the set.
// GFWList matches these sites with regex rules the parser cannot turn
// into plain domains, so they are carried as reference data instead.
func (g *GFWList) AddExtraDomains() {
	g.logger.Println("adding google domains")
	g.domains.AddAll(googleDomains)

	g.logger.Println("adding blogspot domains")
	g.domains.AddAll(blogspotDomains)

	g.logger.Println("adding twimg.edgesuite.net")
	g.domains.Add("twimg.edgesuite.net")
}

// googleDomains lists the regional Google search domains
var googleDomains = []string{
	"google.com", "google.ad", "google.ae", "google.com.af",
	"google.com.ag", "google.com.ai", "google.al", "google.am",
	"google.co.ao", "google.com.ar", "google.as", "google.at",
	"google.com.au", "google.az", "google.ba", "google.com.bd",
	"google.be", "google.bf", "google.bg", "google.com.bh",
	"google.bi", "google.bj", "google.com.bn", "google.com.bo",
	"google.com.br", "google.bs", "google.bt", "google.co.bw",
	"google.by", "google.com.bz", "google.ca", "google.cd",
	"google.cf", "google.cg", "google.ch", "google.ci",
	"google.co.ck", "google.cl", "google.cm", "google.cn",
	"google.com.co", "google.co.cr", "google.com.cu", "google.cv",
	"google.com.cy", "google.cz", "google.de", "google.dj",
	"google.dk", "google.dm", "google.com.do", "google.dz",
	"google.com.ec", "google.ee", "google.com.eg", "google.es",
	"google.com.et", "google.fi", "google.com.fj", "google.fm",
	"google.fr", "google.ga", "google.ge", "google.gg",
	"google.com.gh", "google.com.gi", "google.gl", "google.gm",
	"google.gp", "google.gr", "google.com.gt", "google.gy",
	"google.com.hk", "google.hn", "google.hr", "google.ht",
	"google.hu", "google.co.id", "google.ie", "google.co.il",
	"google.im", "google.co.in", "google.iq", "google.is",
	"google.it", "google.je", "google.com.jm", "google.jo",
	"google.co.jp", "google.co.ke", "google.com.kh", "google.ki",
	"google.kg", "google.co.kr", "google.com.kw", "google.kz",
	"google.la", "google.com.lb", "google.li", "google.lk",
	"google.co.ls", "google.lt", "google.lu", "google.lv",
	"google.com.ly", "google.co.ma", "google.md", "google.me",
	"google.mg", "google.mk", "google.ml", "google.com.mm",
	"google.mn", "google.ms", "google.com.mt", "google.mu",
	"google.mv", "google.mw", "google.com.mx", "google.com.my",
	"google.co.mz", "google.com.na", "google.com.nf", "google.com.ng",
	"google.com.ni", "google.ne", "google.nl", "google.no",
	"google.com.np", "google.nr", "google.nu", "google.co.nz",
	"google.com.om", "google.com.pa", "google.com.pe", "google.com.pg",
	"google.com.ph", "google.com.pk", "google.pl", "google.pn",
	"google.com.pr", "google.ps", "google.pt", "google.com.py",
	"google.com.qa", "google.ro", "google.ru", "google.rw",
	"google.com.sa", "google.com.sb", "google.sc", "google.se",
	"google.com.sg", "google.sh", "google.si", "google.sk",
	"google.com.sl", "google.sn", "google.so", "google.sm",
	"google.sr", "google.st", "google.com.sv", "google.td",
	"google.tg", "google.co.th", "google.com.tj", "google.tk",
	"google.tl", "google.tm", "google.tn", "google.to",
	"google.com.tr", "google.tt", "google.com.tw", "google.co.tz",
	"google.com.ua", "google.co.ug", "google.co.uk", "google.com.uy",
	"google.co.uz", "google.com.vc", "google.co.ve", "google.vg",
	"google.co.vi", "google.com.vn", "google.vu", "google.ws",
	"google.rs", "google.co.za", "google.co.zm", "google.co.zw",
	"google.cat",
}

// blogspotDomains lists the regional Blogspot hosting domains
var blogspotDomains = []string{
	"blogspot.ca", "blogspot.co.uk", "blogspot.com", "blogspot.com.ar",
	"blogspot.com.au", "blogspot.com.br", "blogspot.com.by",
	"blogspot.com.co", "blogspot.com.cy", "blogspot.com.ee",
	"blogspot.com.eg", "blogspot.com.es", "blogspot.com.mt",
	"blogspot.com.ng", "blogspot.com.tr", "blogspot.com.uy",
	"blogspot.de", "blogspot.gr", "blogspot.in", "blogspot.mx",
	"blogspot.ch", "blogspot.fr", "blogspot.ie", "blogspot.it",
	"blogspot.pt", "blogspot.ro", "blogspot.sg", "blogspot.be",
	"blogspot.no", "blogspot.se", "blogspot.jp", "blogspot.ae",
	"blogspot.al", "blogspot.am", "blogspot.ba", "blogspot.bg",
	"blogspot.cl", "blogspot.cz", "blogspot.dk", "blogspot.fi",
	"blogspot.hk", "blogspot.hr", "blogspot.hu", "blogspot.is",
	"blogspot.kr", "blogspot.li", "blogspot.lt", "blogspot.lu",
	"blogspot.md", "blogspot.mk", "blogspot.my", "blogspot.nl",
	"blogspot.pe", "blogspot.qa", "blogspot.ru", "blogspot.si",
	"blogspot.sk", "blogspot.sn", "blogspot.tw", "blogspot.ug",
	"blogspot.cat",
}
