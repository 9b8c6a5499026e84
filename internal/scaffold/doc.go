// Package scaffold rewrites the entry-point files of a freshly generated
// Vite + React project from embedded templates. It lays down the source
// directory skeleton, the root component and entry point matching the
// chosen extra libraries, and helper modules for axios and formik.
package scaffold
