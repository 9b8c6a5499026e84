// Package doctor checks that the tools a scaffolding run shells out to are
// installed: node (at a supported version), npm and git.
package doctor
