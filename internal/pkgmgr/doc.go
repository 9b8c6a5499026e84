// Package pkgmgr maps a JavaScript package manager name to the commands the
// scaffolder needs: base install, production add, dev add, script run and
// project creation. npm is the only manager reachable from the CLI; the
// others are tabulated so adding a prompt for them is a one-line change.
package pkgmgr
