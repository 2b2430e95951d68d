// Package checklist holds the static task templates seeded into the store at
// process start. Items carry stable ids so progress rows keyed against them
// survive re-seeding across restarts.
package checklist

import "github.com/theawkwardchild/nmap-navigator/internal/store"

// Command templates use {IP} and {PORT} placeholders that the UI substitutes
// with the selected service's target.

// DefaultItems returns the built-in checklist templates, grouped by canonical
// service type.
func DefaultItems() []store.ChecklistItem {
	var items []store.ChecklistItem
	items = append(items, smbItems()...)
	items = append(items, httpItems()...)
	items = append(items, sshItems()...)
	items = append(items, ftpItems()...)
	items = append(items, dnsItems()...)
	items = append(items, ldapItems()...)
	items = append(items, rdpItems()...)
	items = append(items, mssqlItems()...)
	items = append(items, mysqlItems()...)
	items = append(items, smtpItems()...)
	items = append(items, snmpItems()...)
	items = append(items, winrmItems()...)
	return items
}

func smbItems() []store.ChecklistItem {
	return []store.ChecklistItem{
		{
			ID:          "smb-enum-version",
			ServiceType: "smb",
			Category:    store.CategoryEnumeration,
			Title:       "Identify SMB version and OS",
			Command:     "nmap -p {PORT} --script smb-protocols,smb-os-discovery {IP}",
			Order:       1,
		},
		{
			ID:          "smb-enum-shares",
			ServiceType: "smb",
			Category:    store.CategoryEnumeration,
			Title:       "Enumerate shares",
			Description: "List available shares and note any that allow anonymous access.",
			Command:     "smbclient -N -L //{IP}",
			Order:       2,
		},
		{
			ID:          "smb-enum-null-session",
			ServiceType: "smb",
			Category:    store.CategoryUnauthenticated,
			Title:       "Check null session",
			Command:     "enum4linux-ng -A {IP}",
			Links:       []string{"https://github.com/cddmp/enum4linux-ng"},
			Order:       3,
			ParentID:    "smb-enum-shares",
		},
		{
			ID:          "smb-enum-vulns",
			ServiceType: "smb",
			Category:    store.CategoryUnauthenticated,
			Title:       "Scan for known SMB vulnerabilities",
			Command:     "nmap -p {PORT} --script smb-vuln* {IP}",
			Order:       4,
		},
		{
			ID:          "smb-auth-shares",
			ServiceType: "smb",
			Category:    store.CategoryAuthenticated,
			Title:       "Re-enumerate shares with credentials",
			Command:     "smbmap -H {IP} -u <user> -p <pass> -r",
			Order:       5,
		},
		{
			ID:          "smb-auth-secrets",
			ServiceType: "smb",
			Category:    store.CategoryAuthenticated,
			Title:       "Dump secrets with valid credentials",
			Command:     "impacket-secretsdump <domain>/<user>:<pass>@{IP}",
			Order:       6,
		},
		{
			ID:          "smb-exploit-psexec",
			ServiceType: "smb",
			Category:    store.CategoryExploitation,
			Title:       "Attempt remote execution",
			Description: "Requires local admin credentials or a relayable hash.",
			Command:     "impacket-psexec <domain>/<user>:<pass>@{IP}",
			Order:       7,
		},
	}
}

func httpItems() []store.ChecklistItem {
	return []store.ChecklistItem{
		{
			ID:          "http-enum-tech",
			ServiceType: "http",
			Category:    store.CategoryEnumeration,
			Title:       "Fingerprint web technologies",
			Command:     "whatweb http://{IP}:{PORT}",
			Order:       1,
		},
		{
			ID:          "http-enum-dirs",
			ServiceType: "http",
			Category:    store.CategoryEnumeration,
			Title:       "Brute-force directories and files",
			Command:     "gobuster dir -u http://{IP}:{PORT} -w /usr/share/wordlists/dirb/common.txt",
			Links:       []string{"https://github.com/OJ/gobuster"},
			Order:       2,
		},
		{
			ID:          "http-enum-vhosts",
			ServiceType: "http",
			Category:    store.CategoryEnumeration,
			Title:       "Enumerate virtual hosts",
			Command:     "gobuster vhost -u http://{IP}:{PORT} -w /usr/share/wordlists/subdomains-top1million-5000.txt",
			Order:       3,
			ParentID:    "http-enum-dirs",
		},
		{
			ID:          "http-unauth-nikto",
			ServiceType: "http",
			Category:    store.CategoryUnauthenticated,
			Title:       "Run a baseline vulnerability scan",
			Command:     "nikto -h http://{IP}:{PORT}",
			Order:       4,
		},
		{
			ID:          "http-unauth-default-creds",
			ServiceType: "http",
			Category:    store.CategoryUnauthenticated,
			Title:       "Try default credentials on login panels",
			Description: "Check vendor documentation for the identified product's defaults.",
			Order:       5,
		},
		{
			ID:          "http-auth-session",
			ServiceType: "http",
			Category:    store.CategoryAuthenticated,
			Title:       "Review authenticated functionality",
			Description: "Look for file uploads, admin panels, and template editors reachable after login.",
			Order:       6,
		},
		{
			ID:          "http-exploit-known",
			ServiceType: "http",
			Category:    store.CategoryExploitation,
			Title:       "Search exploits for identified versions",
			Command:     "searchsploit <product> <version>",
			Links:       []string{"https://www.exploit-db.com"},
			Order:       7,
		},
	}
}

func sshItems() []store.ChecklistItem {
	return []store.ChecklistItem{
		{
			ID:          "ssh-enum-banner",
			ServiceType: "ssh",
			Category:    store.CategoryEnumeration,
			Title:       "Grab banner and supported algorithms",
			Command:     "nmap -p {PORT} --script ssh2-enum-algos,ssh-hostkey {IP}",
			Order:       1,
		},
		{
			ID:          "ssh-unauth-auth-methods",
			ServiceType: "ssh",
			Category:    store.CategoryUnauthenticated,
			Title:       "Check accepted authentication methods",
			Command:     "ssh -o PreferredAuthentications=none -o StrictHostKeyChecking=no root@{IP} -p {PORT}",
			Order:       2,
		},
		{
			ID:          "ssh-unauth-spray",
			ServiceType: "ssh",
			Category:    store.CategoryUnauthenticated,
			Title:       "Spray collected credentials",
			Description: "Use the credential list gathered from other services; keep attempts low to avoid lockouts.",
			Command:     "hydra -L users.txt -P passwords.txt -s {PORT} ssh://{IP}",
			Order:       3,
		},
		{
			ID:          "ssh-auth-keys",
			ServiceType: "ssh",
			Category:    store.CategoryAuthenticated,
			Title:       "Harvest keys and history after access",
			Description: "Check ~/.ssh, shell history, and sudo rights of the compromised account.",
			Order:       4,
		},
	}
}

func ftpItems() []store.ChecklistItem {
	return []store.ChecklistItem{
		{
			ID:          "ftp-enum-banner",
			ServiceType: "ftp",
			Category:    store.CategoryEnumeration,
			Title:       "Identify server and version",
			Command:     "nmap -p {PORT} -sV --script ftp-anon {IP}",
			Order:       1,
		},
		{
			ID:          "ftp-unauth-anonymous",
			ServiceType: "ftp",
			Category:    store.CategoryUnauthenticated,
			Title:       "Test anonymous login",
			Command:     "ftp -n {IP} {PORT}",
			Description: "Log in as anonymous with a blank password; if it works, mirror the tree.",
			Order:       2,
		},
		{
			ID:          "ftp-unauth-mirror",
			ServiceType: "ftp",
			Category:    store.CategoryUnauthenticated,
			Title:       "Mirror accessible files",
			Command:     "wget -m ftp://anonymous:anonymous@{IP}:{PORT}",
			Order:       3,
			ParentID:    "ftp-unauth-anonymous",
		},
		{
			ID:          "ftp-auth-writable",
			ServiceType: "ftp",
			Category:    store.CategoryAuthenticated,
			Title:       "Check for writable directories",
			Description: "A writable web root can turn file upload into code execution.",
			Order:       4,
		},
	}
}

func dnsItems() []store.ChecklistItem {
	return []store.ChecklistItem{
		{
			ID:          "dns-enum-any",
			ServiceType: "dns",
			Category:    store.CategoryEnumeration,
			Title:       "Query records for the target domain",
			Command:     "dig any <domain> @{IP}",
			Order:       1,
		},
		{
			ID:          "dns-enum-axfr",
			ServiceType: "dns",
			Category:    store.CategoryEnumeration,
			Title:       "Attempt zone transfer",
			Command:     "dig axfr <domain> @{IP}",
			Order:       2,
		},
		{
			ID:          "dns-enum-brute",
			ServiceType: "dns",
			Category:    store.CategoryEnumeration,
			Title:       "Brute-force subdomains",
			Command:     "dnsenum --dnsserver {IP} <domain>",
			Order:       3,
		},
	}
}

func ldapItems() []store.ChecklistItem {
	return []store.ChecklistItem{
		{
			ID:          "ldap-enum-base",
			ServiceType: "ldap",
			Category:    store.CategoryEnumeration,
			Title:       "Read the root DSE and naming contexts",
			Command:     "ldapsearch -x -H ldap://{IP}:{PORT} -s base namingContexts",
			Order:       1,
		},
		{
			ID:          "ldap-unauth-anon-bind",
			ServiceType: "ldap",
			Category:    store.CategoryUnauthenticated,
			Title:       "Attempt anonymous bind dump",
			Command:     "ldapsearch -x -H ldap://{IP}:{PORT} -b <base-dn>",
			Order:       2,
		},
		{
			ID:          "ldap-auth-bloodhound",
			ServiceType: "ldap",
			Category:    store.CategoryAuthenticated,
			Title:       "Collect directory data with credentials",
			Command:     "bloodhound-python -u <user> -p <pass> -d <domain> -ns {IP} -c all",
			Links:       []string{"https://github.com/dirkjanm/BloodHound.py"},
			Order:       3,
		},
	}
}

func rdpItems() []store.ChecklistItem {
	return []store.ChecklistItem{
		{
			ID:          "rdp-enum-security",
			ServiceType: "rdp",
			Category:    store.CategoryEnumeration,
			Title:       "Check encryption and NLA settings",
			Command:     "nmap -p {PORT} --script rdp-enum-encryption,rdp-ntlm-info {IP}",
			Order:       1,
		},
		{
			ID:          "rdp-auth-login",
			ServiceType: "rdp",
			Category:    store.CategoryAuthenticated,
			Title:       "Log in with valid credentials",
			Command:     "xfreerdp /v:{IP}:{PORT} /u:<user> /p:<pass> /cert:ignore",
			Order:       2,
		},
	}
}

func mssqlItems() []store.ChecklistItem {
	return []store.ChecklistItem{
		{
			ID:          "mssql-enum-info",
			ServiceType: "mssql",
			Category:    store.CategoryEnumeration,
			Title:       "Gather instance information",
			Command:     "nmap -p {PORT} --script ms-sql-info,ms-sql-ntlm-info {IP}",
			Order:       1,
		},
		{
			ID:          "mssql-unauth-default",
			ServiceType: "mssql",
			Category:    store.CategoryUnauthenticated,
			Title:       "Try sa with weak passwords",
			Command:     "nmap -p {PORT} --script ms-sql-brute {IP}",
			Order:       2,
		},
		{
			ID:          "mssql-auth-shell",
			ServiceType: "mssql",
			Category:    store.CategoryAuthenticated,
			Title:       "Connect and check xp_cmdshell",
			Command:     "impacket-mssqlclient <user>:<pass>@{IP} -port {PORT}",
			Description: "enable_xp_cmdshell if the login has sysadmin.",
			Order:       3,
		},
	}
}

func mysqlItems() []store.ChecklistItem {
	return []store.ChecklistItem{
		{
			ID:          "mysql-enum-version",
			ServiceType: "mysql",
			Category:    store.CategoryEnumeration,
			Title:       "Identify version and auth plugins",
			Command:     "nmap -p {PORT} --script mysql-info {IP}",
			Order:       1,
		},
		{
			ID:          "mysql-unauth-root",
			ServiceType: "mysql",
			Category:    store.CategoryUnauthenticated,
			Title:       "Try root with no password",
			Command:     "mysql -h {IP} -P {PORT} -u root",
			Order:       2,
		},
		{
			ID:          "mysql-auth-files",
			ServiceType: "mysql",
			Category:    store.CategoryAuthenticated,
			Title:       "Check FILE privilege for read/write primitives",
			Description: "SELECT LOAD_FILE and INTO OUTFILE can expose or plant files when secure_file_priv allows.",
			Order:       3,
		},
	}
}

func smtpItems() []store.ChecklistItem {
	return []store.ChecklistItem{
		{
			ID:          "smtp-enum-commands",
			ServiceType: "smtp",
			Category:    store.CategoryEnumeration,
			Title:       "Enumerate supported commands",
			Command:     "nmap -p {PORT} --script smtp-commands {IP}",
			Order:       1,
		},
		{
			ID:          "smtp-enum-users",
			ServiceType: "smtp",
			Category:    store.CategoryEnumeration,
			Title:       "Enumerate users via VRFY/EXPN/RCPT",
			Command:     "smtp-user-enum -M VRFY -U users.txt -t {IP} -p {PORT}",
			Order:       2,
		},
		{
			ID:          "smtp-unauth-relay",
			ServiceType: "smtp",
			Category:    store.CategoryUnauthenticated,
			Title:       "Test for open relay",
			Command:     "nmap -p {PORT} --script smtp-open-relay {IP}",
			Order:       3,
		},
	}
}

func snmpItems() []store.ChecklistItem {
	return []store.ChecklistItem{
		{
			ID:          "snmp-unauth-community",
			ServiceType: "snmp",
			Category:    store.CategoryUnauthenticated,
			Title:       "Brute-force community strings",
			Command:     "onesixtyone -c /usr/share/wordlists/seclists/Discovery/SNMP/common-snmp-community-strings.txt {IP}",
			Order:       1,
		},
		{
			ID:          "snmp-unauth-walk",
			ServiceType: "snmp",
			Category:    store.CategoryUnauthenticated,
			Title:       "Walk the MIB tree",
			Command:     "snmpwalk -v2c -c public {IP}",
			Description: "Running processes and installed software often leak credentials.",
			Order:       2,
			ParentID:    "snmp-unauth-community",
		},
	}
}

func winrmItems() []store.ChecklistItem {
	return []store.ChecklistItem{
		{
			ID:          "winrm-auth-login",
			ServiceType: "winrm",
			Category:    store.CategoryAuthenticated,
			Title:       "Authenticate with collected credentials",
			Command:     "evil-winrm -i {IP} -u <user> -p <pass>",
			Links:       []string{"https://github.com/Hackplayers/evil-winrm"},
			Order:       1,
		},
		{
			ID:          "winrm-auth-hash",
			ServiceType: "winrm",
			Category:    store.CategoryAuthenticated,
			Title:       "Pass the hash",
			Command:     "evil-winrm -i {IP} -u <user> -H <ntlm-hash>",
			Order:       2,
		},
	}
}
