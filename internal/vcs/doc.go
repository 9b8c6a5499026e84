// Package vcs initializes a git repository in a generated project.
package vcs
