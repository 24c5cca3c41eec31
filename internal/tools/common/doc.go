// Package common provides shared helpers for MCP tool registration,
// primarily the instrumented handler wrappers that record metrics and audit
// events around every tool invocation.
package common
