// Package cli provides command-line interface commands for nmap-navigator.
// This file implements the hosts command for listing the inventory held by a
// running server.
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/theawkwardchild/nmap-navigator/internal/store"
)

var hostsStatus string

// hostsCmd represents the hosts command.
var hostsCmd = &cobra.Command{
	Use:   "hosts",
	Short: "List hosts from a running server",
	Long: `List the hosts currently held by a running nmap-navigator server,
with their discovered services.`,
	Example: `  nmap-navigator hosts
  nmap-navigator hosts --status up`,
	RunE: runHosts,
}

func init() {
	rootCmd.AddCommand(hostsCmd)

	hostsCmd.Flags().StringVar(&hostsStatus, "status", "", "Filter by host status: up, down")
}

func runHosts(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client := NewAPIClient(cfg)

	var hosts []store.Host
	if err := client.Get("/api/hosts", &hosts); err != nil {
		return err
	}

	var services []store.Service
	if err := client.Get("/api/services", &services); err != nil {
		return err
	}

	servicesByHost := make(map[string]int)
	openByHost := make(map[string]int)
	for _, svc := range services {
		servicesByHost[svc.HostID]++
		if svc.State == store.ServiceStateOpen {
			openByHost[svc.HostID]++
		}
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("IP", "Hostname", "OS", "Status", "Services", "Open")

	shown := 0
	for _, host := range hosts {
		if hostsStatus != "" && host.Status != hostsStatus {
			continue
		}
		shown++
		_ = table.Append([]string{
			host.IP,
			host.Hostname,
			host.OS,
			host.Status,
			strconv.Itoa(servicesByHost[host.ID]),
			strconv.Itoa(openByHost[host.ID]),
		})
	}

	_ = table.Render()
	fmt.Printf("\n%d hosts\n", shown)

	return nil
}
