package main

// Config holds all configuration options for the converter
type Config struct {
	// Source options
	Download    bool
	GFWListFile string
	Mirrors     string

	// Output options
	OutputFile   string
	OutputFormat string
	ExtraFile    string
	LogFile      string

	// Override options
	DNSServer string

	// Network options
	Timeout int

	// Feature flags
	Check   bool
	Verbose bool
	Help    bool
	Version bool
}

const (
	defaultTimeout   = 30
	defaultFormat    = "raw"
	defaultExtraFile = "extra.txt"

	// Google public DNS, chosen because it supports ECS
	defaultDNSServer = "8.8.8.8"
)

// GetDefaultMirrors returns the GFWList mirror endpoints, tried in order
// until one of them answers with a non-empty body
func GetDefaultMirrors() []string {
	return []string{
		"https://pagure.io/gfwlist/raw/master/f/gfwlist.txt",
		"http://repo.or.cz/gfwlist.git/blob_plain/HEAD:/gfwlist.txt",
		"https://bitbucket.org/gfwlist/gfwlist/raw/HEAD/gfwlist.txt",
		"https://gitlab.com/gfwlist/gfwlist/raw/master/gfwlist.txt",
		"https://git.tuxfamily.org/gfwlist/gfwlist.git/plain/gfwlist.txt",
		"https://raw.githubusercontent.com/gfwlist/gfwlist/master/gfwlist.txt",
	}
}

// GetBaseDNSServers returns the upstream resolvers emitted at the top of
// the adguardhome output, handling every domain without an override line
func GetBaseDNSServers() []string {
	return []string{
		"223.5.5.5",         // AliDNS
		"223.6.6.6",         // AliDNS
		"2400:3200::1",      // AliDNS IPv6
		"2400:3200:baba::1", // AliDNS IPv6
	}
}
