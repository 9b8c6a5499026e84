// Package project defines the Selection record built from the user's answers:
// project name, UI library, extra libraries, git preference and package manager.
package project
