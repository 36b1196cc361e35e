// Package services implements the driving port interfaces.
// Services contain the core business logic: parsing markdown into
// sections, resolving heading patterns, computing edits and keeping
// TOC blocks in sync. All file access goes through driven ports.
package services
