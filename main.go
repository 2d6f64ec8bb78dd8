package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"
)

var logger *Logger

func main() {
	var (
		compartmentID  string
		region         string
		filterSpec     string
		outputDir      string
		logLevel       string
		timeout        int
		noProgress     bool
		interactive    bool
		sessionFile    string
		generateConfig bool
	)

	flag.StringVar(&compartmentID, "compartment", "", "Compartment OCID to discover instances in")
	flag.StringVar(&compartmentID, "c", "", "Compartment OCID to discover instances in (shorthand)")
	flag.StringVar(&region, "region", "", "OCI region, e.g. us-ashburn-1")
	flag.StringVar(&region, "r", "", "OCI region (shorthand)")
	flag.StringVar(&filterSpec, "filters", "", "Comma-separated name filter patterns (regular expressions); empty matches everything")
	flag.StringVar(&filterSpec, "f", "", "Comma-separated name filter patterns (shorthand)")
	flag.StringVar(&outputDir, "output", "", "Directory artifacts are written into")
	flag.StringVar(&outputDir, "o", "", "Directory artifacts are written into (shorthand)")
	flag.StringVar(&logLevel, "log-level", "", "Log level: silent, normal, verbose, debug")
	flag.StringVar(&logLevel, "l", "", "Log level (shorthand)")
	flag.IntVar(&timeout, "timeout", 0, "Per-remote-call timeout in seconds")
	flag.IntVar(&timeout, "t", 0, "Per-remote-call timeout in seconds (shorthand)")
	flag.BoolVar(&noProgress, "no-progress", false, "Disable the progress line")
	flag.BoolVar(&interactive, "interactive", false, "Prompt for compartment, region and filters")
	flag.BoolVar(&interactive, "i", false, "Prompt for compartment, region and filters (shorthand)")
	flag.StringVar(&sessionFile, "session", "", "Generate a session file from the given artifact instead of discovering")
	flag.StringVar(&sessionFile, "s", "", "Generate a session file from the given artifact (shorthand)")
	flag.BoolVar(&generateConfig, "generate-config", false, "Write the default configuration to ./oci-ssh-inventory.yaml and exit")
	flag.Parse()

	if generateConfig {
		if err := GenerateDefaultConfigFile("oci-ssh-inventory.yaml"); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating configuration file: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Wrote oci-ssh-inventory.yaml")
		return
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	MergeWithCLIArgs(config, timeout, logLevel, outputDir, noProgress)

	level, err := ParseLogLevel(config.General.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger = NewLogger(level)

	if sessionFile != "" {
		if err := runSessionMode(sessionFile, config); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating session file: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var in RunInput
	if interactive || compartmentID == "" || region == "" {
		in, err = promptRunInput(os.Stdin, os.Stderr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			os.Exit(1)
		}
	} else {
		if !isValidCompartmentOCID(compartmentID) {
			fmt.Fprintf(os.Stderr, "Error: invalid compartment OCID %q\n", compartmentID)
			os.Exit(1)
		}
		in = RunInput{
			CompartmentID: compartmentID,
			Region:        region,
			Filters:       parseFilterList(filterSpec),
		}
	}

	clients, err := initOCIClients(in.Region)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing OCI clients: %v\n", err)
		os.Exit(1)
	}

	callTimeout := time.Duration(config.General.Timeout) * time.Second
	deps := newRunDeps(clients, in, callTimeout)

	if _, err := runInventory(context.Background(), deps, config, in); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var discoveryErr *DiscoveryError
		if errors.As(err, &discoveryErr) {
			fmt.Fprintln(os.Stderr, "Check that the compartment OCID and region are correct and that your")
			fmt.Fprintln(os.Stderr, "OCI credentials have permission to list instances in the compartment.")
		}
		os.Exit(1)
	}
}
