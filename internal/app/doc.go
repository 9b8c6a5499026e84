// Package app sequences one scaffolding run: check the target directory,
// run the create tool, rewrite templates, install dependencies, optionally
// initialize git and print the next steps.
package app
