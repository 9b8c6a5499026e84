// Package prompt asks the four scaffolding questions: project name, UI
// library, extra libraries and whether to initialize git.
//
// Two front ends share the same questions. RunTUI is a bubbletea program for
// terminals; Collect reads numbered answers line by line and is used when
// stdin is piped.
package prompt
