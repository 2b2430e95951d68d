// Package cli provides command-line interface commands for nmap-navigator.
// This file implements the import command for inspecting scan reports offline.
package cli

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/theawkwardchild/nmap-navigator/internal/classify"
	"github.com/theawkwardchild/nmap-navigator/internal/nmap"
)

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:   "import [FILE]",
	Short: "Parse a scan report and print its contents",
	Long: `Parse an nmap XML report and print the hosts and services it contains
without starting a server. Useful for checking what an upload would produce.`,
	Example: `  nmap-navigator import scan.xml`,
	Args:    cobra.ExactArgs(1),
	RunE:    runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read scan report: %w", err)
	}

	result, err := nmap.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse scan report: %w", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("IP", "Hostname", "Status", "Port", "Service", "Type", "Version")

	serviceCount := 0
	for _, host := range result.Hosts {
		services := result.ServicesByIP[host.IP]
		if len(services) == 0 {
			_ = table.Append([]string{host.IP, host.Hostname, host.Status, "-", "-", "-", "-"})
			continue
		}

		for _, svc := range services {
			serviceCount++
			_ = table.Append([]string{
				host.IP,
				host.Hostname,
				host.Status,
				fmt.Sprintf("%d/%s", svc.Port, svc.Protocol),
				svc.Name,
				classify.Classify(svc.Name),
				svc.Version,
			})
		}
	}

	_ = table.Render()
	fmt.Printf("\n%d hosts, %d services\n", len(result.Hosts), serviceCount)

	return nil
}
