// Package deps resolves and installs the npm packages for a selection and
// runs the per-UI-library setup that depends on them.
package deps
