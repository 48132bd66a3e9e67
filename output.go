package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
)

// OutputHandler renders a domain set into one of the supported formats
type OutputHandler struct {
	path      string
	format    string
	dnsServer string
	extraFile string
	logger    *log.Logger
}

// NewOutputHandler creates an output handler for the configured format
func NewOutputHandler(config *Config, logger *log.Logger) *OutputHandler {
	return &OutputHandler{
		path:      config.OutputFile,
		format:    config.OutputFormat,
		dnsServer: config.DNSServer,
		extraFile: config.ExtraFile,
		logger:    logger,
	}
}

// Write renders the domain set to the output file
func (o *OutputHandler) Write(domains *DomainSet) error {
	file, err := os.Create(o.path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %v", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	switch o.format {
	case "adguardhome":
		err = o.writeAdGuardHome(writer, domains.Sorted())
	case "raw", "":
		err = o.writeRaw(writer, domains.Sorted())
	default:
		return fmt.Errorf("unsupported output format: %s", o.format)
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %v", err)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %v", err)
	}

	o.logger.Printf("Wrote %d domains to %s (format: %s)", domains.Len(), o.path, o.format)
	return nil
}

// writeRaw writes one domain per line
func (o *OutputHandler) writeRaw(w io.Writer, domains []string) error {
	for _, domain := range domains {
		if _, err := fmt.Fprintf(w, "%s\n", domain); err != nil {
			return err
		}
	}
	return nil
}

// writeAdGuardHome writes an AdGuardHome upstream_dns_file: the base
// resolvers first, then one override directive per blocked domain, then
// the verbatim contents of the local extra file if it exists
func (o *OutputHandler) writeAdGuardHome(w io.Writer, domains []string) error {
	for _, server := range GetBaseDNSServers() {
		if _, err := fmt.Fprintf(w, "%s\n", server); err != nil {
			return err
		}
	}

	for _, domain := range domains {
		if _, err := fmt.Fprintf(w, "[/%s/]%s\n", domain, o.dnsServer); err != nil {
			return err
		}
	}

	return o.appendExtraFile(w)
}

// appendExtraFile copies the manual-override file into the output. A
// missing file is not an error; anything else is reported.
func (o *OutputHandler) appendExtraFile(w io.Writer) error {
	if o.extraFile == "" {
		return nil
	}

	file, err := os.Open(o.extraFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open extra file: %v", err)
	}
	defer file.Close()

	o.logger.Printf("Appending manual overrides from %s", o.extraFile)
	_, err = io.Copy(w, file)
	return err
}
