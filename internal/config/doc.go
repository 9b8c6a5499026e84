// Package config manages user-level settings stored at ~/.panda-react/config.yaml.
// It provides functions to load, read and write the few keys the CLI honours:
// the log level, the create package handed to npm and the Node.js version
// constraint checked by doctor.
package config
