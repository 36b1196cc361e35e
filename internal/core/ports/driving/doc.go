// Package driving defines the driving ports (use-case interfaces) for
// markdown-doc. Driving adapters (CLI, MCP, TUI) depend on these
// interfaces; the core services implement them.
package driving
