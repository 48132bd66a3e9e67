// Command gfwlist2x converts the GFWList block-list into DNS server
// configuration: a raw domain list or an AdGuardHome upstream_dns_file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
)

const version = "1.0.0"

// Process exit codes. The distinction matters for automation: a cron job
// regenerating resolver config must be able to tell a dead mirror from a
// corrupt list.
const (
	exitOK         = 0
	exitUsage      = 1
	exitFetch      = 2
	exitValidation = 3
	exitOutput     = 4
)

func main() {
	config := parseFlags()

	if config.Help {
		printUsage()
		return
	}

	if config.Version {
		fmt.Printf("gfwlist2x v%s\n", version)
		return
	}

	logger := setupLogger(config.LogFile, config.Verbose)

	os.Exit(run(config, logger))
}

// run drives the pipeline: acquire, parse, augment, format
func run(config *Config, logger *log.Logger) int {
	if config.OutputFile == "" {
		logger.Println("an output file must be specified with -o")
		printUsage()
		return exitUsage
	}

	text, code := acquireList(config, logger)
	if code != exitOK {
		return code
	}

	gfwlist := NewGFWList(config, logger)
	if err := gfwlist.Parse(text); err != nil {
		logger.Printf("Error parsing gfwlist: %v", err)
		return exitValidation
	}

	gfwlist.AddExtraDomains()

	output := NewOutputHandler(config, logger)
	if err := output.Write(gfwlist.Domains()); err != nil {
		logger.Printf("Error writing output: %v", err)
		return exitOutput
	}

	gfwlist.stats.PrintSummary(logger, gfwlist.Domains().Len())

	if config.Check {
		if err := CheckResolver(config, gfwlist.Domains(), logger); err != nil {
			logger.Printf("Warning: %v", err)
		}
	}

	return exitOK
}

// acquireList obtains the decoded list text in download or local-file mode
func acquireList(config *Config, logger *log.Logger) (string, int) {
	switch {
	case config.Download:
		fetcher := NewFetcher(config, logger)
		raw, err := fetcher.Fetch(context.Background())
		if err != nil {
			logger.Printf("Error downloading gfwlist: %v", err)
			return "", exitFetch
		}

		text, err := DecodeList(raw)
		if err != nil {
			logger.Printf("Error decoding gfwlist: %v", err)
			return "", exitFetch
		}

		// Save the decoded list so later runs can use -g instead of
		// hitting the mirrors again.
		if config.GFWListFile != "" {
			if err := os.WriteFile(config.GFWListFile, []byte(text), 0644); err != nil {
				logger.Printf("Warning: failed to save gfwlist to %s: %v", config.GFWListFile, err)
			}
		}

		return text, exitOK

	case config.GFWListFile != "":
		data, err := os.ReadFile(config.GFWListFile)
		if err != nil {
			logger.Printf("Error reading gfwlist file: %v", err)
			return "", exitUsage
		}
		return string(data), exitOK

	default:
		logger.Println("either -d or -g must be specified")
		printUsage()
		return "", exitUsage
	}
}

func parseFlags() *Config {
	config := &Config{}

	flag.BoolVar(&config.Download, "d", false, "Download gfwlist from the mirror list")
	flag.StringVar(&config.GFWListFile, "g", "", "Local gfwlist file; with -d, the decoded download is saved here")
	flag.StringVar(&config.Mirrors, "m", "", "Comma-separated mirror URLs overriding the built-in list")
	flag.StringVar(&config.OutputFile, "o", "", "Output file (required)")
	flag.StringVar(&config.DNSServer, "s", defaultDNSServer, "DNS server used in generated override directives")
	flag.StringVar(&config.OutputFormat, "f", defaultFormat, "Output format: raw, adguardhome")
	flag.StringVar(&config.ExtraFile, "e", defaultExtraFile, "Manual-override file appended to adguardhome output")
	flag.StringVar(&config.LogFile, "l", "", "Log file for diagnostics (default: stderr)")
	flag.IntVar(&config.Timeout, "timeout", defaultTimeout, "Network timeout in seconds")
	flag.BoolVar(&config.Check, "check", false, "Probe the DNS server after generating output")
	flag.BoolVar(&config.Verbose, "v", false, "Verbose logging")
	flag.BoolVar(&config.Help, "h", false, "Show help message")
	flag.BoolVar(&config.Version, "version", false, "Show version information")

	flag.Parse()

	// Validate and set defaults
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}
	if config.OutputFormat == "" {
		config.OutputFormat = defaultFormat
	}

	return config
}

func printUsage() {
	fmt.Println("gfwlist2x - Convert gfwlist to DNS server configuration")
	fmt.Println()
	fmt.Println("Usage: gfwlist2x [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  gfwlist2x -d -o domains.txt")
	fmt.Println("  gfwlist2x -d -g gfwlist.txt -o adg.txt -f adguardhome")
	fmt.Println("  gfwlist2x -g gfwlist.txt -o adg.txt -f adguardhome -s 8.8.4.4 -check")
	fmt.Println()
	fmt.Println("For AdGuardHome, point upstream_dns_file at the generated output.")
}

func setupLogger(logFile string, verbose bool) *log.Logger {
	var logOutput *os.File = os.Stderr

	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		logOutput = file
	}

	flags := log.LstdFlags
	if verbose {
		flags |= log.Lshortfile
	}

	return log.New(logOutput, "[GFWLIST2X] ", flags)
}
