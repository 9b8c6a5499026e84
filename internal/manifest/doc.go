// Package manifest reads, patches and validates the package.json generated
// for a new project. Edits are made in place on the raw JSON so a patch only
// touches the fields it defaults, and validation runs against an embedded
// JSON schema describing the fields the scaffolder relies on.
package manifest
