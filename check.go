package main

import (
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
)

// checkFallbackDomain is probed when the set is somehow empty
const checkFallbackDomain = "google.com"

// resolverAddress turns the configured server into a dialable host:port,
// defaulting the port to 53. Bare IPv6 literals are bracketed so the
// colons are not mistaken for a port separator.
func resolverAddress(server string) (string, error) {
	address := server
	if ip := net.ParseIP(server); ip != nil && ip.To4() == nil {
		address = net.JoinHostPort(server, "53")
	} else if !strings.Contains(address, ":") {
		address = address + ":53"
	}
	if _, _, err := net.SplitHostPort(address); err != nil {
		return "", fmt.Errorf("invalid resolver address %s: %v", server, err)
	}
	return address, nil
}

// CheckResolver sends an A query for one of the blocked domains to the
// secure DNS server named in the generated overrides, so a broken server
// address is caught before the config is deployed
func CheckResolver(config *Config, domains *DomainSet, logger *log.Logger) error {
	address, err := resolverAddress(config.DNSServer)
	if err != nil {
		return err
	}

	domain := checkFallbackDomain
	if sorted := domains.Sorted(); len(sorted) > 0 {
		domain = sorted[0]
	}

	client := &dns.Client{
		Timeout: time.Duration(config.Timeout) * time.Second,
		Net:     "udp",
	}

	msg := &dns.Msg{}
	msg.SetQuestion(dns.Fqdn(domain), dns.TypeA)

	logger.Printf("Probing %s with an A query for %s", address, domain)
	resp, rtt, err := client.Exchange(msg, address)
	if err != nil {
		return fmt.Errorf("resolver probe failed: %v", err)
	}

	logger.Printf("Resolver %s answered %s in %v (%s)",
		address, domain, rtt.Round(time.Millisecond), dns.RcodeToString[resp.Rcode])
	return nil
}
